package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the lifecycle stage of an appointment
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "PENDING"
	AppointmentStatusConfirmed AppointmentStatus = "CONFIRMED"
	AppointmentStatusRejected  AppointmentStatus = "REJECTED"
	AppointmentStatusCompleted AppointmentStatus = "COMPLETED"
)

// Appointment represents a booking request from a patient to a doctor.
// Status moves PENDING -> CONFIRMED or REJECTED, and CONFIRMED -> COMPLETED;
// REJECTED and COMPLETED are terminal. The owning patient may delete the row
// outright in any status.
type Appointment struct {
	ID        uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID uuid.UUID         `gorm:"type:uuid;not null;index" json:"patient_id"`
	DoctorID  uuid.UUID         `gorm:"type:uuid;not null;index" json:"doctor_id"`
	Date      time.Time         `gorm:"type:date;not null;index" json:"date"`
	Time      string            `gorm:"type:varchar(5);not null" json:"time"`
	Symptoms  string            `gorm:"type:text" json:"symptoms,omitempty"`
	Status    AppointmentStatus `gorm:"type:varchar(10);not null;default:'PENDING';index" json:"status"`
	CreatedAt time.Time         `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Patient User `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  User `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsPending checks if the appointment awaits a doctor decision
func (a *Appointment) IsPending() bool {
	return a.Status == AppointmentStatusPending
}

// IsConfirmed checks if the appointment has been accepted
func (a *Appointment) IsConfirmed() bool {
	return a.Status == AppointmentStatusConfirmed
}

// DateString returns the appointment date in YYYY-MM-DD form
func (a *Appointment) DateString() string {
	return a.Date.Format("2006-01-02")
}
