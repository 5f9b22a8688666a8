package entity

import "github.com/google/uuid"

// PatientDetails represents patient-specific profile data
type PatientDetails struct {
	UserID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	BloodGroup        string    `gorm:"type:varchar(5)" json:"blood_group,omitempty"`
	Allergies         string    `gorm:"type:text" json:"allergies,omitempty"`
	ChronicConditions string    `gorm:"type:text" json:"chronic_conditions,omitempty"`
	EmergencyContact  string    `gorm:"type:varchar(20)" json:"emergency_contact,omitempty"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (PatientDetails) TableName() string {
	return "patient_details"
}
