package repository

import (
	"context"

	"medifriend/internal/domain/entity"
	domainRepo "medifriend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type uploadRepository struct {
	db *gorm.DB
}

func NewUploadRepository(db *gorm.DB) domainRepo.UploadRepository {
	return &uploadRepository{db: db}
}

func (r *uploadRepository) Create(ctx context.Context, upload *entity.Upload) error {
	return r.db.WithContext(ctx).Create(upload).Error
}

func (r *uploadRepository) FindByPatientID(ctx context.Context, patientID uuid.UUID) ([]entity.Upload, error) {
	var uploads []entity.Upload
	err := r.db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("uploaded_at DESC").
		Find(&uploads).Error
	if err != nil {
		return nil, err
	}
	return uploads, nil
}

func (r *uploadRepository) DeleteByIDAndPatientID(ctx context.Context, id, patientID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("id = ? AND patient_id = ?", id, patientID).
		Delete(&entity.Upload{})
	return result.RowsAffected, result.Error
}
