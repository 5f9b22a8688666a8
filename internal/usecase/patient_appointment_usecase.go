package usecase

import (
	"context"
	"errors"
	"time"

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
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrAppointmentNotOwned = errors.New("appointment does not belong to you")
	ErrInvalidTimeFormat   = errors.New("invalid time format, use HH:MM")
)

type PatientAppointmentUsecase interface {
	CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	GetMyAppointments(ctx context.Context) (*dto.AppointmentListResponse, error)
	GetAppointment(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error)
	CancelAppointment(ctx context.Context, appointmentID uuid.UUID) error
}

type patientAppointmentUsecase struct {
	log                 *logrus.Logger
	appointmentRepo     repository.AppointmentRepository
	userRepo            repository.UserRepository
	notificationService service.NotificationService
}

func NewPatientAppointmentUsecase(
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	userRepo repository.UserRepository,
	notificationService service.NotificationService,
) PatientAppointmentUsecase {
	return &patientAppointmentUsecase{
		log:                 log,
		appointmentRepo:     appointmentRepo,
		userRepo:            userRepo,
		notificationService: notificationService,
	}
}

// CreateAppointment books a new PENDING appointment with a doctor.
//
// Flow:
// 1. Validate date and time formats
// 2. Validate doctor exists
// 3. Insert appointment as PENDING
// 4. Notify the doctor (non-fatal)
func (u *patientAppointmentUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	// Step 1: Validate formats, normalizing the time to zero-padded HH:MM
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	parsedTime, err := time.Parse("15:04", req.Time)
	if err != nil {
		return nil, ErrInvalidTimeFormat
	}

	// Step 2: Validate doctor exists
	doctor, err := u.userRepo.FindDoctorByID(ctx, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", req.DoctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	patient, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", userID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrUserNotFound
	}

	// Step 3: Insert appointment as PENDING
	appointment := &entity.Appointment{
		PatientID: userID,
		DoctorID:  req.DoctorID,
		Date:      date,
		Time:      parsedTime.Format("15:04"),
		Symptoms:  req.Symptoms,
		Status:    entity.AppointmentStatusPending,
	}

	if err := u.appointmentRepo.Create(ctx, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	// Step 4: Notify the doctor (log but don't fail, the appointment exists)
	if err := u.notificationService.AppointmentRequested(ctx, appointment, patient); err != nil {
		u.log.Warnf("Failed to notify doctor %s (non-fatal): %+v", req.DoctorID, err)
	}

	u.log.Infof("Appointment requested: id=%s, patient=%s, doctor=%s, date=%s %s",
		appointment.ID, userID, req.DoctorID, appointment.DateString(), appointment.Time)

	appointment.Doctor = *doctor
	return converter.AppointmentToResponse(appointment), nil
}

// GetMyAppointments returns the patient's appointments, newest first.
// Rejected ones are dropped: the patient already saw the rejection
// notification and the slot is dead.
func (u *patientAppointmentUsecase) GetMyAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	appointments, err := u.appointmentRepo.FindByPatientID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to find appointments for patient %s: %+v", userID, err)
		return nil, err
	}

	visible := make([]entity.Appointment, 0, len(appointments))
	for _, appointment := range appointments {
		if appointment.Status == entity.AppointmentStatusRejected {
			continue
		}
		visible = append(visible, appointment)
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponse(visible),
		Total:        len(visible),
	}, nil
}

func (u *patientAppointmentUsecase) GetAppointment(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	appointment, err := u.appointmentRepo.FindByID(ctx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	if appointment.PatientID != userID {
		return nil, ErrAppointmentNotOwned
	}

	return converter.AppointmentToResponse(appointment), nil
}

// CancelAppointment removes the patient's appointment outright, whatever its
// status. The delete is scoped to the owning patient so a guessed ID owned by
// someone else reads as not found.
func (u *patientAppointmentUsecase) CancelAppointment(ctx context.Context, appointmentID uuid.UUID) error {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return errors.New("user not found in context")
	}

	rows, err := u.appointmentRepo.DeleteByIDAndPatientID(ctx, appointmentID, userID)
	if err != nil {
		u.log.Warnf("Failed to cancel appointment %s: %+v", appointmentID, err)
		return err
	}
	if rows == 0 {
		return ErrAppointmentNotFound
	}

	u.log.Infof("Appointment cancelled: id=%s, patient=%s", appointmentID, userID)
	return nil
}
