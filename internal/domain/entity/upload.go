package entity

import (
	"time"

	"github.com/google/uuid"
)

// UploadType classifies an analyzed document
type UploadType string

const (
	UploadTypePrescription UploadType = "PRESCRIPTION"
	UploadTypeLabReport    UploadType = "LAB_REPORT"
	UploadTypeOther        UploadType = "OTHER"
)

// Upload represents an analyzed prescription image owned by a patient.
// Only the extraction result is persisted, never the image itself.
type Upload struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"patient_id"`
	Filename      string     `gorm:"type:varchar(255);not null" json:"filename"`
	ExtractedData JSON       `gorm:"type:jsonb" json:"extracted_data,omitempty"`
	Explanation   string     `gorm:"type:text" json:"explanation,omitempty"`
	UploadType    UploadType `gorm:"type:varchar(15);not null;default:'PRESCRIPTION'" json:"upload_type"`
	UploadedAt    time.Time  `gorm:"autoCreateTime" json:"uploaded_at"`

	// Relationships
	Patient User `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (Upload) TableName() string {
	return "uploads"
}
