package service

import (
	"context"
	"fmt"

	"medifriend/internal/domain/entity"
	"medifriend/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

// Panel links carried on notifications. A rejected appointment gets no link:
// it is read-only information with nothing to act on.
const (
	LinkDoctorAppointments   = "/doctor/appointments"
	LinkPatientAppointments  = "/patient/appointments"
	LinkPatientPrescriptions = "/patient/prescriptions"
)

// NotificationService writes the inbox entry for each lifecycle event. The
// caller passes the already-loaded appointment or prescription together with
// the acting party, so every value in the message text comes from a read the
// caller performed, never from a hidden re-query.
type NotificationService interface {
	AppointmentRequested(ctx context.Context, appointment *entity.Appointment, patient *entity.User) error
	AppointmentAccepted(ctx context.Context, appointment *entity.Appointment, doctor *entity.User) error
	AppointmentRejected(ctx context.Context, appointment *entity.Appointment, doctor *entity.User) error
	PrescriptionWritten(ctx context.Context, prescription *entity.Prescription, doctor *entity.User) error
}

type notificationService struct {
	log              *logrus.Logger
	notificationRepo repository.NotificationRepository
}

func NewNotificationService(log *logrus.Logger, notificationRepo repository.NotificationRepository) NotificationService {
	return &notificationService{
		log:              log,
		notificationRepo: notificationRepo,
	}
}

// AppointmentRequested notifies the doctor about a new PENDING appointment
func (s *notificationService) AppointmentRequested(ctx context.Context, appointment *entity.Appointment, patient *entity.User) error {
	message := fmt.Sprintf("%s has requested an appointment for %s at %s",
		patient.FullName, appointment.DateString(), appointment.Time)

	notification := &entity.Notification{
		UserID:        appointment.DoctorID,
		Type:          entity.NotificationAppointmentRequested,
		Message:       message,
		Link:          link(LinkDoctorAppointments),
		AppointmentID: &appointment.ID,
	}

	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		s.log.Warnf("Failed to create appointment-requested notification: %+v", err)
		return err
	}

	return nil
}

// AppointmentAccepted notifies the patient that the doctor confirmed
func (s *notificationService) AppointmentAccepted(ctx context.Context, appointment *entity.Appointment, doctor *entity.User) error {
	message := fmt.Sprintf("Dr. %s accepted your appointment for %s at %s",
		doctor.FullName, appointment.DateString(), appointment.Time)

	notification := &entity.Notification{
		UserID:        appointment.PatientID,
		Type:          entity.NotificationAppointmentAccepted,
		Message:       message,
		Link:          link(LinkPatientAppointments),
		AppointmentID: &appointment.ID,
	}

	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		s.log.Warnf("Failed to create appointment-accepted notification: %+v", err)
		return err
	}

	return nil
}

// AppointmentRejected notifies the patient that the doctor declined.
// No link on purpose.
func (s *notificationService) AppointmentRejected(ctx context.Context, appointment *entity.Appointment, doctor *entity.User) error {
	message := fmt.Sprintf("Dr. %s declined your appointment request for %s at %s",
		doctor.FullName, appointment.DateString(), appointment.Time)

	notification := &entity.Notification{
		UserID:        appointment.PatientID,
		Type:          entity.NotificationAppointmentRejected,
		Message:       message,
		AppointmentID: &appointment.ID,
	}

	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		s.log.Warnf("Failed to create appointment-rejected notification: %+v", err)
		return err
	}

	return nil
}

// PrescriptionWritten notifies the patient about a new prescription
func (s *notificationService) PrescriptionWritten(ctx context.Context, prescription *entity.Prescription, doctor *entity.User) error {
	message := fmt.Sprintf("Dr. %s has written a prescription for you", doctor.FullName)

	notification := &entity.Notification{
		UserID:         prescription.PatientID,
		Type:           entity.NotificationPrescriptionWritten,
		Message:        message,
		Link:           link(LinkPatientPrescriptions),
		PrescriptionID: &prescription.ID,
	}

	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		s.log.Warnf("Failed to create prescription-written notification: %+v", err)
		return err
	}

	return nil
}

func link(path string) *string {
	return &path
}
