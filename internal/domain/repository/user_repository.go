package repository

import (
	"context"

	"medifriend/internal/domain/entity"

	"github.com/google/uuid"
)

type UserRepository interface {
	CreatePatient(ctx context.Context, user *entity.User, details *entity.PatientDetails) error
	CreateDoctor(ctx context.Context, user *entity.User, details *entity.DoctorDetails) error
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByIDWithDetails(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindDoctors(ctx context.Context, filter entity.DoctorFilter) ([]entity.User, error)
	FindDoctorByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
}
