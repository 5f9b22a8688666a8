package repository

import (
	"context"

	"medifriend/internal/domain/entity"

	"github.com/google/uuid"
)

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *entity.Appointment) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error)
	FindByPatientID(ctx context.Context, patientID uuid.UUID) ([]entity.Appointment, error)
	FindByDoctorID(ctx context.Context, doctorID uuid.UUID) ([]entity.Appointment, error)
	// UpdateStatus transitions an appointment from one status to another.
	// Returns affected rows: 1 = transition applied, 0 = row missing or no
	// longer in the expected prior status.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.AppointmentStatus) (int64, error)
	// DeleteByIDAndPatientID hard-deletes an appointment owned by the given
	// patient regardless of status. Returns affected rows.
	DeleteByIDAndPatientID(ctx context.Context, id, patientID uuid.UUID) (int64, error)
	GetDoctorStats(ctx context.Context, doctorID uuid.UUID, today string) (*entity.DoctorStats, error)
	FindPatientsByDoctorID(ctx context.Context, doctorID uuid.UUID) ([]entity.PatientSummary, error)
}
