package repository

import (
	"context"
	"errors"

	"medifriend/internal/domain/entity"
	domainRepo "medifriend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type patientDetailsRepository struct {
	db *gorm.DB
}

func NewPatientDetailsRepository(db *gorm.DB) domainRepo.PatientDetailsRepository {
	return &patientDetailsRepository{db: db}
}

func (r *patientDetailsRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.PatientDetails, error) {
	var details entity.PatientDetails
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&details).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &details, nil
}

func (r *patientDetailsRepository) Update(ctx context.Context, details *entity.PatientDetails) error {
	return r.db.WithContext(ctx).Save(details).Error
}
