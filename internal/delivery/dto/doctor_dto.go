package dto

import (
	"github.com/google/uuid"
)

// Request DTOs

type DoctorFilterRequest struct {
	Name           string `json:"name"`
	Specialization string `json:"specialization"`
}

// Response DTOs

type DoctorResponse struct {
	ID              uuid.UUID `json:"id"`
	FullName        string    `json:"full_name"`
	Gender          string    `json:"gender,omitempty"`
	Specialization  string    `json:"specialization"`
	Qualification   string    `json:"qualification,omitempty"`
	ExperienceYears int       `json:"experience_years"`
	ConsultationFee string    `json:"consultation_fee"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}
