package repository

import (
	"context"
	"errors"

	"medifriend/internal/domain/entity"
	domainRepo "medifriend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type doctorDetailsRepository struct {
	db *gorm.DB
}

func NewDoctorDetailsRepository(db *gorm.DB) domainRepo.DoctorDetailsRepository {
	return &doctorDetailsRepository{db: db}
}

func (r *doctorDetailsRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.DoctorDetails, error) {
	var details entity.DoctorDetails
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&details).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &details, nil
}

func (r *doctorDetailsRepository) Update(ctx context.Context, details *entity.DoctorDetails) error {
	return r.db.WithContext(ctx).Save(details).Error
}
