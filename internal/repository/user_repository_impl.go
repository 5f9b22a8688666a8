package repository

import (
	"context"
	"errors"

	"medifriend/internal/domain/entity"
	domainRepo "medifriend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) domainRepo.UserRepository {
	return &userRepository{db: db}
}

// CreatePatient inserts the identity row and its patient details in one
// transaction; neither row survives without the other.
func (r *userRepository) CreatePatient(ctx context.Context, user *entity.User, details *entity.PatientDetails) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		details.UserID = user.ID
		return tx.Create(details).Error
	})
}

// CreateDoctor inserts the identity row and its doctor details in one
// transaction.
func (r *userRepository) CreateDoctor(ctx context.Context, user *entity.User, details *entity.DoctorDetails) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		details.UserID = user.ID
		return tx.Create(details).Error
	})
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var user entity.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var user entity.User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByIDWithDetails(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var user entity.User
	err := r.db.WithContext(ctx).
		Preload("PatientDetails").
		Preload("DoctorDetails").
		Where("id = ?", id).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindDoctors(ctx context.Context, filter entity.DoctorFilter) ([]entity.User, error) {
	query := r.db.WithContext(ctx).
		Preload("DoctorDetails").
		Joins("JOIN doctor_details ON doctor_details.user_id = users.id").
		Where("users.role = ?", entity.RoleDoctor)

	if filter.Name != "" {
		query = query.Where("users.full_name ILIKE ?", "%"+filter.Name+"%")
	}
	if filter.Specialization != "" {
		query = query.Where("doctor_details.specialization ILIKE ?", "%"+filter.Specialization+"%")
	}

	var doctors []entity.User
	err := query.Order("users.full_name ASC").Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *userRepository) FindDoctorByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var doctor entity.User
	err := r.db.WithContext(ctx).
		Preload("DoctorDetails").
		Where("id = ? AND role = ?", id, entity.RoleDoctor).
		First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}
