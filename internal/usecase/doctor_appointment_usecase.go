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
	ErrAppointmentNotPending   = errors.New("appointment is no longer awaiting a decision")
	ErrAppointmentNotConfirmed = errors.New("appointment is not confirmed")
)

type DoctorAppointmentUsecase interface {
	GetMyAppointments(ctx context.Context) (*dto.AppointmentListResponse, error)
	GetAppointment(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error)
	AcceptAppointment(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error)
	RejectAppointment(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error)
	CompleteAppointment(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error)
	GetDashboard(ctx context.Context) (*dto.DoctorDashboardResponse, error)
	GetMyPatients(ctx context.Context) (*dto.PatientListResponse, error)
}

type doctorAppointmentUsecase struct {
	log                 *logrus.Logger
	appointmentRepo     repository.AppointmentRepository
	userRepo            repository.UserRepository
	notificationService service.NotificationService
}

func NewDoctorAppointmentUsecase(
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	userRepo repository.UserRepository,
	notificationService service.NotificationService,
) DoctorAppointmentUsecase {
	return &doctorAppointmentUsecase{
		log:                 log,
		appointmentRepo:     appointmentRepo,
		userRepo:            userRepo,
		notificationService: notificationService,
	}
}

// GetMyAppointments returns every appointment addressed to the doctor,
// including rejected ones, newest first.
func (u *doctorAppointmentUsecase) GetMyAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	appointments, err := u.appointmentRepo.FindByDoctorID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to find appointments for doctor %s: %+v", userID, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponse(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *doctorAppointmentUsecase) GetAppointment(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error) {
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

	if appointment.DoctorID != userID {
		return nil, ErrAppointmentNotOwned
	}

	return converter.AppointmentToResponse(appointment), nil
}

// AcceptAppointment confirms a pending appointment and notifies the patient.
func (u *doctorAppointmentUsecase) AcceptAppointment(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error) {
	return u.decide(ctx, appointmentID, entity.AppointmentStatusConfirmed)
}

// RejectAppointment declines a pending appointment and notifies the patient.
func (u *doctorAppointmentUsecase) RejectAppointment(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error) {
	return u.decide(ctx, appointmentID, entity.AppointmentStatusRejected)
}

// decide applies the doctor's accept/reject verdict on a PENDING appointment.
//
// Flow:
// 1. Find appointment and verify ownership
// 2. Verify still pending
// 3. Conditional status update, guarded on the prior status
// 4. Notify the patient (non-fatal)
func (u *doctorAppointmentUsecase) decide(ctx context.Context, appointmentID uuid.UUID, verdict entity.AppointmentStatus) (*dto.AppointmentResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	// Step 1: Find appointment
	appointment, err := u.appointmentRepo.FindByID(ctx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	// Verify ownership
	if appointment.DoctorID != userID {
		return nil, ErrAppointmentNotOwned
	}

	// Step 2: Check still pending
	if !appointment.IsPending() {
		return nil, ErrAppointmentNotPending
	}

	// Step 3: Guarded update. Zero rows means another request decided first.
	rows, err := u.appointmentRepo.UpdateStatus(ctx, appointmentID, entity.AppointmentStatusPending, verdict)
	if err != nil {
		u.log.Warnf("Failed to update appointment %s status: %+v", appointmentID, err)
		return nil, err
	}
	if rows == 0 {
		return nil, ErrAppointmentNotPending
	}
	appointment.Status = verdict

	// Step 4: Notify the patient (log but don't fail, the decision is stored)
	doctor, err := u.userRepo.FindByID(ctx, userID)
	if err != nil || doctor == nil {
		u.log.Warnf("Failed to load doctor %s for notification (non-fatal): %+v", userID, err)
	} else if verdict == entity.AppointmentStatusConfirmed {
		if err := u.notificationService.AppointmentAccepted(ctx, appointment, doctor); err != nil {
			u.log.Warnf("Failed to notify patient %s (non-fatal): %+v", appointment.PatientID, err)
		}
	} else {
		if err := u.notificationService.AppointmentRejected(ctx, appointment, doctor); err != nil {
			u.log.Warnf("Failed to notify patient %s (non-fatal): %+v", appointment.PatientID, err)
		}
	}

	u.log.Infof("Appointment %s: id=%s, doctor=%s", verdict, appointmentID, userID)
	return converter.AppointmentToResponse(appointment), nil
}

// CompleteAppointment marks a confirmed appointment as done. No notification
// goes out; completion is bookkeeping, not news for the patient.
func (u *doctorAppointmentUsecase) CompleteAppointment(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error) {
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

	if appointment.DoctorID != userID {
		return nil, ErrAppointmentNotOwned
	}

	if !appointment.IsConfirmed() {
		return nil, ErrAppointmentNotConfirmed
	}

	rows, err := u.appointmentRepo.UpdateStatus(ctx, appointmentID, entity.AppointmentStatusConfirmed, entity.AppointmentStatusCompleted)
	if err != nil {
		u.log.Warnf("Failed to complete appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if rows == 0 {
		return nil, ErrAppointmentNotConfirmed
	}
	appointment.Status = entity.AppointmentStatusCompleted

	u.log.Infof("Appointment completed: id=%s, doctor=%s", appointmentID, userID)
	return converter.AppointmentToResponse(appointment), nil
}

// GetDashboard returns the doctor's counters: pending requests, appointments
// scheduled for today, and distinct patients seen.
func (u *doctorAppointmentUsecase) GetDashboard(ctx context.Context) (*dto.DoctorDashboardResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	today := time.Now().Format("2006-01-02")
	stats, err := u.appointmentRepo.GetDoctorStats(ctx, userID, today)
	if err != nil {
		u.log.Warnf("Failed to get stats for doctor %s: %+v", userID, err)
		return nil, err
	}

	return converter.DoctorStatsToResponse(stats), nil
}

// GetMyPatients returns the roster of distinct patients who ever booked with
// the doctor, most recently seen first.
func (u *doctorAppointmentUsecase) GetMyPatients(ctx context.Context) (*dto.PatientListResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	patients, err := u.appointmentRepo.FindPatientsByDoctorID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to get patients for doctor %s: %+v", userID, err)
		return nil, err
	}

	return &dto.PatientListResponse{
		Patients: converter.PatientSummariesToResponse(patients),
		Total:    len(patients),
	}, nil
}
