package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType represents the event a notification reports
type NotificationType string

const (
	NotificationAppointmentRequested NotificationType = "APPOINTMENT_REQUESTED"
	NotificationAppointmentAccepted  NotificationType = "APPOINTMENT_ACCEPTED"
	NotificationAppointmentRejected  NotificationType = "APPOINTMENT_REJECTED"
	NotificationPrescriptionWritten  NotificationType = "PRESCRIPTION_WRITTEN"
)

// Notification represents an append-only inbox entry for one user.
// Read rows expire after 7 days on the next list fetch; every row expires
// after 30 days in the startup sweep.
type Notification struct {
	ID             int64            `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID         uuid.UUID        `gorm:"type:uuid;not null;index" json:"user_id"`
	Type           NotificationType `gorm:"type:varchar(30);not null" json:"type"`
	Message        string           `gorm:"type:text;not null" json:"message"`
	Link           *string          `gorm:"type:varchar(255)" json:"link,omitempty"`
	IsRead         bool             `gorm:"not null;default:false;index" json:"is_read"`
	AppointmentID  *uuid.UUID       `gorm:"type:uuid" json:"appointment_id,omitempty"`
	PrescriptionID *uuid.UUID       `gorm:"type:uuid" json:"prescription_id,omitempty"`
	CreatedAt      time.Time        `gorm:"autoCreateTime;index" json:"created_at"`

	// Relationships
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Notification) TableName() string {
	return "notifications"
}
