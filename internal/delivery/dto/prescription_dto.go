package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type MedicineRequest struct {
	Name     string `json:"name" validate:"omitempty,max=200"`
	Dosage   string `json:"dosage" validate:"omitempty,max=200"`
	Duration string `json:"duration" validate:"omitempty,max=200"`
}

type CreatePrescriptionRequest struct {
	PatientID     uuid.UUID         `json:"patient_id" validate:"required"`
	AppointmentID *uuid.UUID        `json:"appointment_id" validate:"omitempty"`
	Diagnosis     string            `json:"diagnosis" validate:"required,max=1000"`
	Medicines     []MedicineRequest `json:"medicines" validate:"omitempty,dive"`
	Notes         string            `json:"notes" validate:"omitempty,max=2000"`
}

// Response DTOs

type MedicineResponse struct {
	Name     string `json:"name"`
	Dosage   string `json:"dosage,omitempty"`
	Duration string `json:"duration,omitempty"`
}

type PrescriptionResponse struct {
	ID             uuid.UUID          `json:"id"`
	AppointmentID  *uuid.UUID         `json:"appointment_id,omitempty"`
	Diagnosis      string             `json:"diagnosis"`
	Medicines      []MedicineResponse `json:"medicines"`
	Notes          string             `json:"notes,omitempty"`
	DoctorName     string             `json:"doctor_name,omitempty"`
	Specialization string             `json:"specialization,omitempty"`
	PatientName    string             `json:"patient_name,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`
}

type PrescriptionListResponse struct {
	Prescriptions []PrescriptionResponse `json:"prescriptions"`
	Total         int                    `json:"total"`
}
