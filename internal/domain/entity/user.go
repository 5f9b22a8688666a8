package entity

import (
	"time"

	"github.com/google/uuid"
)

// Role is fixed at account creation and never changes afterwards.
type Role string

const (
	RolePatient Role = "PATIENT"
	RoleDoctor  Role = "DOCTOR"
)

// User represents the shared identity record; role-specific data lives in
// exactly one of PatientDetails or DoctorDetails.
type User struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	FullName    string    `gorm:"type:varchar(255);not null" json:"full_name"`
	Email       string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password    string    `gorm:"column:password_hash;type:text;not null" json:"-"`
	Role        Role      `gorm:"type:varchar(10);not null;index" json:"role"`
	Phone       string    `gorm:"type:varchar(20)" json:"phone,omitempty"`
	Gender      string    `gorm:"type:varchar(10)" json:"gender,omitempty"`
	DateOfBirth time.Time `gorm:"type:date" json:"date_of_birth"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	PatientDetails *PatientDetails `gorm:"foreignKey:UserID" json:"patient_details,omitempty"`
	DoctorDetails  *DoctorDetails  `gorm:"foreignKey:UserID" json:"doctor_details,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// IsDoctor checks if the user holds the doctor role
func (u *User) IsDoctor() bool {
	return u.Role == RoleDoctor
}

// IsPatient checks if the user holds the patient role
func (u *User) IsPatient() bool {
	return u.Role == RolePatient
}

// Age returns full years elapsed between the date of birth and now.
func (u *User) Age(now time.Time) int {
	return AgeAt(u.DateOfBirth, now)
}

// AgeAt returns full years between dob and now, clamped at zero. A zero dob
// yields zero so callers can skip the field for users who never supplied one.
func AgeAt(dob, now time.Time) int {
	if dob.IsZero() {
		return 0
	}
	years := now.Year() - dob.Year()
	anniversary := time.Date(now.Year(), dob.Month(), dob.Day(), 0, 0, 0, 0, now.Location())
	if now.Before(anniversary) {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}
