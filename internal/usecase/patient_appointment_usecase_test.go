package usecase

import (
	"context"
	"errors"
	"testing"

	"medifriend/internal/delivery/dto"
	"medifriend/internal/domain/entity"
	"medifriend/internal/service"

	"github.com/google/uuid"
)

// appointmentFixture wires both appointment usecases against shared in-memory
// repositories and a real notification service writing into a recorder.
type appointmentFixture struct {
	users        *mockUserRepo
	appointments *mockAppointmentRepo
	inbox        *recordingNotificationRepo
	patientUC    PatientAppointmentUsecase
	doctorUC     DoctorAppointmentUsecase
	patient      *entity.User
	doctor       *entity.User
}

func newAppointmentFixture() *appointmentFixture {
	users := newMockUserRepo()
	appointments := newMockAppointmentRepo()
	inbox := &recordingNotificationRepo{}
	log := testLogger()
	notifier := service.NewNotificationService(log, inbox)

	f := &appointmentFixture{
		users:        users,
		appointments: appointments,
		inbox:        inbox,
		patientUC:    NewPatientAppointmentUsecase(log, appointments, users, notifier),
		doctorUC:     NewDoctorAppointmentUsecase(log, appointments, users, notifier),
	}
	f.patient = seedPatient(users, "Ana Lovelace", "ana@example.com")
	f.doctor = seedDoctor(users, "Greg House", "house@example.com", "Diagnostics")
	return f
}

// ---------- CreateAppointment ----------

func TestCreateAppointment_Success(t *testing.T) {
	f := newAppointmentFixture()

	resp, err := f.patientUC.CreateAppointment(ctxWithUser(f.patient.ID), &dto.CreateAppointmentRequest{
		DoctorID: f.doctor.ID,
		Date:     "2026-09-01",
		Time:     "9:30",
		Symptoms: "persistent cough",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Status != string(entity.AppointmentStatusPending) {
		t.Errorf("status = %q, want PENDING", resp.Status)
	}
	if resp.Time != "09:30" {
		t.Errorf("time = %q, want zero-padded 09:30", resp.Time)
	}
	if resp.Doctor == nil || resp.Doctor.FullName != "Greg House" {
		t.Errorf("response should carry the doctor info, got %+v", resp.Doctor)
	}

	stored, err := f.appointments.FindByID(context.Background(), resp.ID)
	if err != nil || stored == nil {
		t.Fatalf("appointment was not stored")
	}
	if stored.PatientID != f.patient.ID || stored.DoctorID != f.doctor.ID {
		t.Errorf("stored parties = patient %s doctor %s, want %s / %s",
			stored.PatientID, stored.DoctorID, f.patient.ID, f.doctor.ID)
	}
}

func TestCreateAppointment_NotifiesDoctorOnce(t *testing.T) {
	f := newAppointmentFixture()

	_, err := f.patientUC.CreateAppointment(ctxWithUser(f.patient.ID), &dto.CreateAppointmentRequest{
		DoctorID: f.doctor.ID,
		Date:     "2026-09-01",
		Time:     "10:30",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(f.inbox.notifications) != 1 {
		t.Fatalf("expected exactly 1 notification, got %d", len(f.inbox.notifications))
	}
	notification := f.inbox.notifications[0]
	if notification.UserID != f.doctor.ID {
		t.Errorf("notification went to %s, want the doctor %s", notification.UserID, f.doctor.ID)
	}
	if notification.Type != entity.NotificationAppointmentRequested {
		t.Errorf("type = %q, want APPOINTMENT_REQUESTED", notification.Type)
	}
	if notification.AppointmentID == nil {
		t.Error("notification should reference the appointment")
	}
}

func TestCreateAppointment_NotificationFailureIsNonFatal(t *testing.T) {
	f := newAppointmentFixture()
	f.inbox.createErr = errors.New("inbox down")

	resp, err := f.patientUC.CreateAppointment(ctxWithUser(f.patient.ID), &dto.CreateAppointmentRequest{
		DoctorID: f.doctor.ID,
		Date:     "2026-09-01",
		Time:     "10:30",
	})
	if err != nil {
		t.Fatalf("appointment creation must survive a notification failure, got %v", err)
	}
	if stored, _ := f.appointments.FindByID(context.Background(), resp.ID); stored == nil {
		t.Error("appointment should be stored despite the failed notification")
	}
}

func TestCreateAppointment_UnknownDoctor(t *testing.T) {
	f := newAppointmentFixture()

	_, err := f.patientUC.CreateAppointment(ctxWithUser(f.patient.ID), &dto.CreateAppointmentRequest{
		DoctorID: uuid.New(),
		Date:     "2026-09-01",
		Time:     "10:30",
	})
	if !errors.Is(err, ErrDoctorNotFound) {
		t.Errorf("err = %v, want ErrDoctorNotFound", err)
	}
}

func TestCreateAppointment_RejectsBadFormats(t *testing.T) {
	f := newAppointmentFixture()
	ctx := ctxWithUser(f.patient.ID)

	_, err := f.patientUC.CreateAppointment(ctx, &dto.CreateAppointmentRequest{
		DoctorID: f.doctor.ID,
		Date:     "01-09-2026",
		Time:     "10:30",
	})
	if !errors.Is(err, ErrInvalidDateFormat) {
		t.Errorf("date err = %v, want ErrInvalidDateFormat", err)
	}

	_, err = f.patientUC.CreateAppointment(ctx, &dto.CreateAppointmentRequest{
		DoctorID: f.doctor.ID,
		Date:     "2026-09-01",
		Time:     "half past ten",
	})
	if !errors.Is(err, ErrInvalidTimeFormat) {
		t.Errorf("time err = %v, want ErrInvalidTimeFormat", err)
	}

	if len(f.appointments.appointments) != 0 {
		t.Error("no appointment should be stored for malformed input")
	}
}

func TestCreateAppointment_RequiresIdentity(t *testing.T) {
	f := newAppointmentFixture()

	_, err := f.patientUC.CreateAppointment(context.Background(), &dto.CreateAppointmentRequest{
		DoctorID: f.doctor.ID,
		Date:     "2026-09-01",
		Time:     "10:30",
	})
	if err == nil {
		t.Fatal("expected error without an authenticated user in context")
	}
}

// ---------- Listing and single fetch ----------

func TestGetMyAppointments_HidesRejected(t *testing.T) {
	f := newAppointmentFixture()
	seedAppointment(f.appointments, f.patient.ID, f.doctor.ID, entity.AppointmentStatusPending)
	rejected := seedAppointment(f.appointments, f.patient.ID, f.doctor.ID, entity.AppointmentStatusRejected)
	seedAppointment(f.appointments, f.patient.ID, f.doctor.ID, entity.AppointmentStatusCompleted)

	resp, err := f.patientUC.GetMyAppointments(ctxWithUser(f.patient.ID))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Total != 2 {
		t.Errorf("total = %d, want 2 (rejected hidden)", resp.Total)
	}
	for _, appointment := range resp.Appointments {
		if appointment.ID == rejected.ID {
			t.Error("rejected appointment must not appear in the patient listing")
		}
	}
}

func TestGetAppointment_ScopedToOwner(t *testing.T) {
	f := newAppointmentFixture()
	other := seedPatient(f.users, "Bob Stone", "bob@example.com")
	appointment := seedAppointment(f.appointments, other.ID, f.doctor.ID, entity.AppointmentStatusPending)

	_, err := f.patientUC.GetAppointment(ctxWithUser(f.patient.ID), appointment.ID)
	if !errors.Is(err, ErrAppointmentNotOwned) {
		t.Errorf("err = %v, want ErrAppointmentNotOwned", err)
	}

	_, err = f.patientUC.GetAppointment(ctxWithUser(f.patient.ID), uuid.New())
	if !errors.Is(err, ErrAppointmentNotFound) {
		t.Errorf("err = %v, want ErrAppointmentNotFound", err)
	}
}

// ---------- CancelAppointment ----------

func TestCancelAppointment_DeletesRegardlessOfStatus(t *testing.T) {
	f := newAppointmentFixture()
	confirmed := seedAppointment(f.appointments, f.patient.ID, f.doctor.ID, entity.AppointmentStatusConfirmed)

	if err := f.patientUC.CancelAppointment(ctxWithUser(f.patient.ID), confirmed.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored, _ := f.appointments.FindByID(context.Background(), confirmed.ID); stored != nil {
		t.Error("cancelled appointment should be deleted outright")
	}
}

func TestCancelAppointment_SomeoneElses(t *testing.T) {
	f := newAppointmentFixture()
	other := seedPatient(f.users, "Bob Stone", "bob@example.com")
	appointment := seedAppointment(f.appointments, other.ID, f.doctor.ID, entity.AppointmentStatusPending)

	err := f.patientUC.CancelAppointment(ctxWithUser(f.patient.ID), appointment.ID)
	if !errors.Is(err, ErrAppointmentNotFound) {
		t.Errorf("err = %v, want ErrAppointmentNotFound for a foreign appointment", err)
	}
	if stored, _ := f.appointments.FindByID(context.Background(), appointment.ID); stored == nil {
		t.Error("foreign appointment must not be deleted")
	}
}
