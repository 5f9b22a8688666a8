package repository

import (
	"context"

	"medifriend/internal/domain/entity"

	"github.com/google/uuid"
)

type PatientDetailsRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.PatientDetails, error)
	Update(ctx context.Context, details *entity.PatientDetails) error
}

type DoctorDetailsRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.DoctorDetails, error)
	Update(ctx context.Context, details *entity.DoctorDetails) error
}
