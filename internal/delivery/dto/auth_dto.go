package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type RegisterPatientRequest struct {
	FullName          string `json:"full_name" validate:"required,min=3,max=100"`
	Email             string `json:"email" validate:"required,email"`
	Password          string `json:"password" validate:"required,min=6"`
	ConfirmPassword   string `json:"confirm_password" validate:"required,eqfield=Password"`
	Phone             string `json:"phone" validate:"omitempty,min=8,max=20"`
	Gender            string `json:"gender" validate:"omitempty,oneof=MALE FEMALE OTHER"`
	DateOfBirth       string `json:"date_of_birth" validate:"omitempty"` // Format: YYYY-MM-DD
	BloodGroup        string `json:"blood_group" validate:"omitempty,max=5"`
	Allergies         string `json:"allergies" validate:"omitempty,max=500"`
	ChronicConditions string `json:"chronic_conditions" validate:"omitempty,max=500"`
	EmergencyContact  string `json:"emergency_contact" validate:"omitempty,max=100"`
}

type RegisterDoctorRequest struct {
	FullName        string `json:"full_name" validate:"required,min=3,max=100"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
	Phone           string `json:"phone" validate:"omitempty,min=8,max=20"`
	Gender          string `json:"gender" validate:"omitempty,oneof=MALE FEMALE OTHER"`
	DateOfBirth     string `json:"date_of_birth" validate:"omitempty"` // Format: YYYY-MM-DD
	Specialization  string `json:"specialization" validate:"required,min=3,max=100"`
	Qualification   string `json:"qualification" validate:"omitempty,max=200"`
	ExperienceYears int    `json:"experience_years" validate:"omitempty,min=0,max=80"`
	ConsultationFee string `json:"consultation_fee" validate:"omitempty"` // Decimal string, e.g. "150.00"
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type UpdateProfileRequest struct {
	FullName    string `json:"full_name" validate:"omitempty,min=3,max=100"`
	Phone       string `json:"phone" validate:"omitempty,min=8,max=20"`
	Gender      string `json:"gender" validate:"omitempty,oneof=MALE FEMALE OTHER"`
	DateOfBirth string `json:"date_of_birth" validate:"omitempty"` // Format: YYYY-MM-DD

	// Patient-only fields, ignored for doctors.
	BloodGroup        string `json:"blood_group" validate:"omitempty,max=5"`
	Allergies         string `json:"allergies" validate:"omitempty,max=500"`
	ChronicConditions string `json:"chronic_conditions" validate:"omitempty,max=500"`
	EmergencyContact  string `json:"emergency_contact" validate:"omitempty,max=100"`

	// Doctor-only fields, ignored for patients.
	Specialization  string `json:"specialization" validate:"omitempty,min=3,max=100"`
	Qualification   string `json:"qualification" validate:"omitempty,max=200"`
	ExperienceYears *int   `json:"experience_years" validate:"omitempty,min=0,max=80"`
	ConsultationFee string `json:"consultation_fee" validate:"omitempty"` // Decimal string, e.g. "150.00"
}

// Response DTOs

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

type PatientDetailsResponse struct {
	BloodGroup        string `json:"blood_group,omitempty"`
	Allergies         string `json:"allergies,omitempty"`
	ChronicConditions string `json:"chronic_conditions,omitempty"`
	EmergencyContact  string `json:"emergency_contact,omitempty"`
}

type DoctorDetailsResponse struct {
	Specialization  string `json:"specialization"`
	Qualification   string `json:"qualification,omitempty"`
	ExperienceYears int    `json:"experience_years"`
	ConsultationFee string `json:"consultation_fee"`
}

type UserResponse struct {
	ID             uuid.UUID               `json:"id"`
	FullName       string                  `json:"full_name"`
	Email          string                  `json:"email"`
	Role           string                  `json:"role"`
	Phone          string                  `json:"phone,omitempty"`
	Gender         string                  `json:"gender,omitempty"`
	DateOfBirth    string                  `json:"date_of_birth,omitempty"` // Format: YYYY-MM-DD
	PatientDetails *PatientDetailsResponse `json:"patient_details,omitempty"`
	DoctorDetails  *DoctorDetailsResponse  `json:"doctor_details,omitempty"`
	CreatedAt      time.Time               `json:"created_at"`
}
