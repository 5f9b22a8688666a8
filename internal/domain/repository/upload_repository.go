package repository

import (
	"context"

	"medifriend/internal/domain/entity"

	"github.com/google/uuid"
)

type UploadRepository interface {
	Create(ctx context.Context, upload *entity.Upload) error
	FindByPatientID(ctx context.Context, patientID uuid.UUID) ([]entity.Upload, error)
	// DeleteByIDAndPatientID deletes an upload owned by the given patient.
	// Returns affected rows.
	DeleteByIDAndPatientID(ctx context.Context, id, patientID uuid.UUID) (int64, error)
}
