package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DoctorDetails represents doctor-specific profile data
type DoctorDetails struct {
	UserID          uuid.UUID       `gorm:"type:uuid;primaryKey" json:"user_id"`
	Specialization  string          `gorm:"type:varchar(100);not null;index" json:"specialization"`
	Qualification   string          `gorm:"type:varchar(255)" json:"qualification,omitempty"`
	ExperienceYears int             `gorm:"not null;default:0" json:"experience_years"`
	ConsultationFee decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"consultation_fee"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (DoctorDetails) TableName() string {
	return "doctor_details"
}
