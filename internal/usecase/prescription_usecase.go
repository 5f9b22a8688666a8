package usecase

import (
	"context"
	"errors"
	"strings"

	"medifriend/internal/converter"
	"medifriend/internal/delivery/dto"
	"medifriend/internal/delivery/http/middleware"
	"medifriend/internal/domain/entity"
	"medifriend/internal/domain/repository"
	"medifriend/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrPrescriptionNotFound       = errors.New("prescription not found")
	ErrPrescriptionNotOwned       = errors.New("prescription does not belong to you")
	ErrDiagnosisRequired          = errors.New("diagnosis must not be blank")
	ErrPatientNotFound            = errors.New("patient not found")
	ErrAppointmentPatientMismatch = errors.New("appointment does not belong to this patient")
)

type PrescriptionUsecase interface {
	CreatePrescription(ctx context.Context, req *dto.CreatePrescriptionRequest) (*dto.PrescriptionResponse, error)
	GetDoctorPrescriptions(ctx context.Context) (*dto.PrescriptionListResponse, error)
	GetPatientPrescriptions(ctx context.Context) (*dto.PrescriptionListResponse, error)
	GetPrescription(ctx context.Context, prescriptionID uuid.UUID) (*dto.PrescriptionResponse, error)
}

type prescriptionUsecase struct {
	log                 *logrus.Logger
	prescriptionRepo    repository.PrescriptionRepository
	appointmentRepo     repository.AppointmentRepository
	userRepo            repository.UserRepository
	notificationService service.NotificationService
}

func NewPrescriptionUsecase(
	log *logrus.Logger,
	prescriptionRepo repository.PrescriptionRepository,
	appointmentRepo repository.AppointmentRepository,
	userRepo repository.UserRepository,
	notificationService service.NotificationService,
) PrescriptionUsecase {
	return &prescriptionUsecase{
		log:                 log,
		prescriptionRepo:    prescriptionRepo,
		appointmentRepo:     appointmentRepo,
		userRepo:            userRepo,
		notificationService: notificationService,
	}
}

// CreatePrescription writes a prescription for one of the doctor's patients.
//
// Flow:
// 1. Validate diagnosis is non-blank and the patient exists
// 2. If an appointment is referenced, verify it links this doctor and patient
// 3. Drop incomplete medicine entries; an empty list is legal
// 4. Insert prescription
// 5. Notify the patient (non-fatal)
func (u *prescriptionUsecase) CreatePrescription(ctx context.Context, req *dto.CreatePrescriptionRequest) (*dto.PrescriptionResponse, error) {
	doctorID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	// Step 1: Validate diagnosis and patient
	diagnosis := strings.TrimSpace(req.Diagnosis)
	if diagnosis == "" {
		return nil, ErrDiagnosisRequired
	}

	patient, err := u.userRepo.FindByID(ctx, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", req.PatientID, err)
		return nil, err
	}
	if patient == nil || !patient.IsPatient() {
		return nil, ErrPatientNotFound
	}

	// Step 2: Verify the referenced appointment, if any
	if req.AppointmentID != nil {
		appointment, err := u.appointmentRepo.FindByID(ctx, *req.AppointmentID)
		if err != nil {
			u.log.Warnf("Failed to find appointment %s: %+v", *req.AppointmentID, err)
			return nil, err
		}
		if appointment == nil {
			return nil, ErrAppointmentNotFound
		}
		if appointment.DoctorID != doctorID {
			return nil, ErrAppointmentNotOwned
		}
		if appointment.PatientID != req.PatientID {
			return nil, ErrAppointmentPatientMismatch
		}
	}

	// Step 3: Keep only fully specified medicines
	medicines := make(entity.Medicines, 0, len(req.Medicines))
	for _, m := range req.Medicines {
		name := strings.TrimSpace(m.Name)
		dosage := strings.TrimSpace(m.Dosage)
		duration := strings.TrimSpace(m.Duration)
		if name == "" || dosage == "" || duration == "" {
			continue
		}
		medicines = append(medicines, entity.Medicine{
			Name:     name,
			Dosage:   dosage,
			Duration: duration,
		})
	}

	// Step 4: Insert prescription
	prescription := &entity.Prescription{
		DoctorID:      doctorID,
		PatientID:     req.PatientID,
		AppointmentID: req.AppointmentID,
		Diagnosis:     diagnosis,
		Medicines:     medicines,
		Notes:         strings.TrimSpace(req.Notes),
	}

	if err := u.prescriptionRepo.Create(ctx, prescription); err != nil {
		u.log.Warnf("Failed to create prescription: %+v", err)
		return nil, err
	}

	// Step 5: Notify the patient (log but don't fail, the prescription exists)
	doctor, err := u.userRepo.FindByID(ctx, doctorID)
	if err != nil || doctor == nil {
		u.log.Warnf("Failed to load doctor %s for notification (non-fatal): %+v", doctorID, err)
	} else if err := u.notificationService.PrescriptionWritten(ctx, prescription, doctor); err != nil {
		u.log.Warnf("Failed to notify patient %s (non-fatal): %+v", req.PatientID, err)
	}

	u.log.Infof("Prescription created: id=%s, doctor=%s, patient=%s, medicines=%d",
		prescription.ID, doctorID, req.PatientID, len(medicines))

	prescription.Patient = *patient
	return converter.PrescriptionToResponse(prescription), nil
}

// GetDoctorPrescriptions returns prescriptions the doctor has written, newest first
func (u *prescriptionUsecase) GetDoctorPrescriptions(ctx context.Context) (*dto.PrescriptionListResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	prescriptions, err := u.prescriptionRepo.FindByDoctorID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to find prescriptions for doctor %s: %+v", userID, err)
		return nil, err
	}

	return &dto.PrescriptionListResponse{
		Prescriptions: converter.PrescriptionsToResponse(prescriptions),
		Total:         len(prescriptions),
	}, nil
}

// GetPatientPrescriptions returns prescriptions written for the patient, newest first
func (u *prescriptionUsecase) GetPatientPrescriptions(ctx context.Context) (*dto.PrescriptionListResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	prescriptions, err := u.prescriptionRepo.FindByPatientID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to find prescriptions for patient %s: %+v", userID, err)
		return nil, err
	}

	return &dto.PrescriptionListResponse{
		Prescriptions: converter.PrescriptionsToResponse(prescriptions),
		Total:         len(prescriptions),
	}, nil
}

// GetPrescription returns one prescription, visible only to the doctor who
// wrote it and the patient it names.
func (u *prescriptionUsecase) GetPrescription(ctx context.Context, prescriptionID uuid.UUID) (*dto.PrescriptionResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	prescription, err := u.prescriptionRepo.FindByID(ctx, prescriptionID)
	if err != nil {
		u.log.Warnf("Failed to find prescription %s: %+v", prescriptionID, err)
		return nil, err
	}
	if prescription == nil {
		return nil, ErrPrescriptionNotFound
	}

	if prescription.DoctorID != userID && prescription.PatientID != userID {
		return nil, ErrPrescriptionNotOwned
	}

	return converter.PrescriptionToResponse(prescription), nil
}
