package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Medicine is a single entry on a prescription
type Medicine struct {
	Name     string `json:"name"`
	Dosage   string `json:"dosage"`
	Duration string `json:"duration"`
}

// Medicines is an ordered medicine list stored as JSONB
type Medicines []Medicine

// Value returns json value, implement driver.Valuer interface
func (m Medicines) Value() (driver.Value, error) {
	if m == nil {
		return json.Marshal(Medicines{})
	}
	return json.Marshal(m)
}

// Scan scan value into Medicines, implements sql.Scanner interface
func (m *Medicines) Scan(value interface{}) error {
	if value == nil {
		*m = Medicines{}
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New(fmt.Sprint("Failed to unmarshal JSONB value:", value))
	}

	result := Medicines{}
	err := json.Unmarshal(bytes, &result)
	*m = result
	return err
}

// Prescription represents a doctor-authored prescription for a patient.
// Immutable once created; no update or delete is exposed.
type Prescription struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	DoctorID      uuid.UUID  `gorm:"type:uuid;not null;index" json:"doctor_id"`
	PatientID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"patient_id"`
	AppointmentID *uuid.UUID `gorm:"type:uuid" json:"appointment_id,omitempty"`
	Diagnosis     string     `gorm:"type:text;not null" json:"diagnosis"`
	Medicines     Medicines  `gorm:"type:jsonb" json:"medicines"`
	Notes         string     `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Doctor      User         `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Patient     User         `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Appointment *Appointment `gorm:"foreignKey:AppointmentID" json:"appointment,omitempty"`
}

func (Prescription) TableName() string {
	return "prescriptions"
}
