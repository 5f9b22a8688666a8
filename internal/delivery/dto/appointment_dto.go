package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateAppointmentRequest struct {
	DoctorID uuid.UUID `json:"doctor_id" validate:"required"`
	Date     string    `json:"date" validate:"required"` // Format: YYYY-MM-DD
	Time     string    `json:"time" validate:"required"` // Format: HH:MM (24h)
	Symptoms string    `json:"symptoms" validate:"omitempty,max=1000"`
}

// Response DTOs

type AppointmentDoctorInfo struct {
	ID              uuid.UUID `json:"id"`
	FullName        string    `json:"full_name"`
	Specialization  string    `json:"specialization,omitempty"`
	ConsultationFee string    `json:"consultation_fee,omitempty"`
}

type AppointmentPatientInfo struct {
	ID       uuid.UUID `json:"id"`
	FullName string    `json:"full_name"`
	Phone    string    `json:"phone,omitempty"`
	Gender   string    `json:"gender,omitempty"`
	Age      int       `json:"age,omitempty"`
}

type AppointmentResponse struct {
	ID        uuid.UUID               `json:"id"`
	Date      string                  `json:"date"` // Format: YYYY-MM-DD
	Time      string                  `json:"time"` // Format: HH:MM (24h)
	Symptoms  string                  `json:"symptoms,omitempty"`
	Status    string                  `json:"status"`
	Doctor    *AppointmentDoctorInfo  `json:"doctor,omitempty"`
	Patient   *AppointmentPatientInfo `json:"patient,omitempty"`
	CreatedAt time.Time               `json:"created_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

type DoctorDashboardResponse struct {
	PendingAppointments int64 `json:"pending_appointments"`
	TodayAppointments   int64 `json:"today_appointments"`
	TotalPatients       int64 `json:"total_patients"`
}

type PatientSummaryResponse struct {
	ID                    uuid.UUID `json:"id"`
	FullName              string    `json:"full_name"`
	Phone                 string    `json:"phone,omitempty"`
	Gender                string    `json:"gender,omitempty"`
	Age                   int       `json:"age,omitempty"`
	TotalAppointments     int64     `json:"total_appointments"`
	CompletedAppointments int64     `json:"completed_appointments"`
	LastVisit             string    `json:"last_visit,omitempty"` // Format: YYYY-MM-DD
}

type PatientListResponse struct {
	Patients []PatientSummaryResponse `json:"patients"`
	Total    int                      `json:"total"`
}
