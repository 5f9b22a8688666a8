package entity

import (
	"time"

	"github.com/google/uuid"
)

// PatientSummary is a derived roster row: one distinct patient of a doctor
// with appointment aggregates. Never stored.
type PatientSummary struct {
	PatientID             uuid.UUID `gorm:"column:patient_id" json:"patient_id"`
	FullName              string    `gorm:"column:full_name" json:"full_name"`
	Phone                 string    `gorm:"column:phone" json:"phone,omitempty"`
	Gender                string    `gorm:"column:gender" json:"gender,omitempty"`
	DateOfBirth           time.Time `gorm:"column:date_of_birth" json:"date_of_birth"`
	TotalAppointments     int64     `gorm:"column:total_appointments" json:"total_appointments"`
	CompletedAppointments int64     `gorm:"column:completed_appointments" json:"completed_appointments"`
	LastVisit             time.Time `gorm:"column:last_visit" json:"last_visit"`
}
