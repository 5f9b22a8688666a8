package usecase

import (
	"context"
	"errors"

	"medifriend/internal/converter"
	"medifriend/internal/delivery/dto"
	"medifriend/internal/domain/entity"
	"medifriend/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var ErrDoctorNotFound = errors.New("doctor not found")

type DoctorUsecase interface {
	GetAllDoctors(ctx context.Context, filter entity.DoctorFilter) (*dto.DoctorListResponse, error)
	GetDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorResponse, error)
}

type doctorUsecase struct {
	log      *logrus.Logger
	userRepo repository.UserRepository
}

func NewDoctorUsecase(log *logrus.Logger, userRepo repository.UserRepository) DoctorUsecase {
	return &doctorUsecase{
		log:      log,
		userRepo: userRepo,
	}
}

func (u *doctorUsecase) GetAllDoctors(ctx context.Context, filter entity.DoctorFilter) (*dto.DoctorListResponse, error) {
	doctors, err := u.userRepo.FindDoctors(ctx, filter)
	if err != nil {
		u.log.Warnf("Failed to find doctors: %+v", err)
		return nil, err
	}

	responses := converter.DoctorsToResponse(doctors)
	return &dto.DoctorListResponse{
		Doctors: responses,
		Total:   len(responses),
	}, nil
}

func (u *doctorUsecase) GetDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorResponse, error) {
	doctor, err := u.userRepo.FindDoctorByID(ctx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor by ID: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	return converter.DoctorToResponse(doctor), nil
}
