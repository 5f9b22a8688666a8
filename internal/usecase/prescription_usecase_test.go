package usecase

import (
	"errors"
	"testing"

	"medifriend/internal/delivery/dto"
	"medifriend/internal/domain/entity"
	"medifriend/internal/service"

	"github.com/google/uuid"
)

type prescriptionFixture struct {
	users         *mockUserRepo
	appointments  *mockAppointmentRepo
	prescriptions *mockPrescriptionRepo
	inbox         *recordingNotificationRepo
	uc            PrescriptionUsecase
	patient       *entity.User
	doctor        *entity.User
}

func newPrescriptionFixture() *prescriptionFixture {
	users := newMockUserRepo()
	appointments := newMockAppointmentRepo()
	prescriptions := newMockPrescriptionRepo()
	inbox := &recordingNotificationRepo{}
	log := testLogger()

	f := &prescriptionFixture{
		users:         users,
		appointments:  appointments,
		prescriptions: prescriptions,
		inbox:         inbox,
		uc:            NewPrescriptionUsecase(log, prescriptions, appointments, users, service.NewNotificationService(log, inbox)),
	}
	f.patient = seedPatient(users, "Ana Lovelace", "ana@example.com")
	f.doctor = seedDoctor(users, "Greg House", "house@example.com", "Diagnostics")
	return f
}

// ---------- CreatePrescription ----------

func TestCreatePrescription_Success(t *testing.T) {
	f := newPrescriptionFixture()

	resp, err := f.uc.CreatePrescription(ctxWithUser(f.doctor.ID), &dto.CreatePrescriptionRequest{
		PatientID: f.patient.ID,
		Diagnosis: "  Seasonal flu  ",
		Medicines: []dto.MedicineRequest{
			{Name: "Paracetamol 500mg", Dosage: "1-0-1", Duration: "5 days"},
		},
		Notes: "  Plenty of fluids.  ",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Diagnosis != "Seasonal flu" {
		t.Errorf("diagnosis = %q, want trimmed %q", resp.Diagnosis, "Seasonal flu")
	}
	if resp.Notes != "Plenty of fluids." {
		t.Errorf("notes = %q, want trimmed", resp.Notes)
	}
	if len(resp.Medicines) != 1 || resp.Medicines[0].Name != "Paracetamol 500mg" {
		t.Errorf("medicines = %+v", resp.Medicines)
	}
	if resp.PatientName != "Ana Lovelace" {
		t.Errorf("patient name = %q, want Ana Lovelace", resp.PatientName)
	}

	if len(f.inbox.notifications) != 1 {
		t.Fatalf("expected exactly 1 notification, got %d", len(f.inbox.notifications))
	}
	notification := f.inbox.notifications[0]
	if notification.UserID != f.patient.ID {
		t.Errorf("notification went to %s, want the patient", notification.UserID)
	}
	if notification.Type != entity.NotificationPrescriptionWritten {
		t.Errorf("type = %q, want PRESCRIPTION_WRITTEN", notification.Type)
	}
	if notification.PrescriptionID == nil {
		t.Error("notification should reference the prescription")
	}
}

func TestCreatePrescription_BlankDiagnosis(t *testing.T) {
	f := newPrescriptionFixture()

	_, err := f.uc.CreatePrescription(ctxWithUser(f.doctor.ID), &dto.CreatePrescriptionRequest{
		PatientID: f.patient.ID,
		Diagnosis: "   \t ",
	})
	if !errors.Is(err, ErrDiagnosisRequired) {
		t.Errorf("err = %v, want ErrDiagnosisRequired", err)
	}
	if len(f.prescriptions.prescriptions) != 0 {
		t.Error("nothing should be stored for a blank diagnosis")
	}
}

func TestCreatePrescription_DropsIncompleteMedicines(t *testing.T) {
	f := newPrescriptionFixture()

	resp, err := f.uc.CreatePrescription(ctxWithUser(f.doctor.ID), &dto.CreatePrescriptionRequest{
		PatientID: f.patient.ID,
		Diagnosis: "Bronchitis",
		Medicines: []dto.MedicineRequest{
			{Name: "Amoxicillin", Dosage: "500mg twice daily", Duration: "7 days"},
			{Name: "Cough syrup", Dosage: "  ", Duration: "5 days"},
			{Name: " ", Dosage: "", Duration: ""},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Medicines) != 1 {
		t.Fatalf("medicines = %d, want 1 (incomplete entries dropped)", len(resp.Medicines))
	}
	if resp.Medicines[0].Name != "Amoxicillin" {
		t.Errorf("kept medicine = %q, want Amoxicillin", resp.Medicines[0].Name)
	}
}

func TestCreatePrescription_PatientMustHavePatientRole(t *testing.T) {
	f := newPrescriptionFixture()

	// Unknown user.
	_, err := f.uc.CreatePrescription(ctxWithUser(f.doctor.ID), &dto.CreatePrescriptionRequest{
		PatientID: uuid.New(),
		Diagnosis: "Flu",
	})
	if !errors.Is(err, ErrPatientNotFound) {
		t.Errorf("err = %v, want ErrPatientNotFound for an unknown user", err)
	}

	// A doctor cannot be the target of a prescription.
	otherDoctor := seedDoctor(f.users, "Jane Foster", "jane@example.com", "Cardiology")
	_, err = f.uc.CreatePrescription(ctxWithUser(f.doctor.ID), &dto.CreatePrescriptionRequest{
		PatientID: otherDoctor.ID,
		Diagnosis: "Flu",
	})
	if !errors.Is(err, ErrPatientNotFound) {
		t.Errorf("err = %v, want ErrPatientNotFound for a doctor target", err)
	}
}

func TestCreatePrescription_VerifiesAppointmentLinkage(t *testing.T) {
	f := newPrescriptionFixture()

	missing := uuid.New()
	_, err := f.uc.CreatePrescription(ctxWithUser(f.doctor.ID), &dto.CreatePrescriptionRequest{
		PatientID:     f.patient.ID,
		AppointmentID: &missing,
		Diagnosis:     "Flu",
	})
	if !errors.Is(err, ErrAppointmentNotFound) {
		t.Errorf("err = %v, want ErrAppointmentNotFound", err)
	}

	// Appointment carried out by a different doctor.
	otherDoctor := seedDoctor(f.users, "Jane Foster", "jane@example.com", "Cardiology")
	foreign := seedAppointment(f.appointments, f.patient.ID, otherDoctor.ID, entity.AppointmentStatusCompleted)
	_, err = f.uc.CreatePrescription(ctxWithUser(f.doctor.ID), &dto.CreatePrescriptionRequest{
		PatientID:     f.patient.ID,
		AppointmentID: &foreign.ID,
		Diagnosis:     "Flu",
	})
	if !errors.Is(err, ErrAppointmentNotOwned) {
		t.Errorf("err = %v, want ErrAppointmentNotOwned", err)
	}

	// Appointment belongs to this doctor but names another patient.
	otherPatient := seedPatient(f.users, "Bob Stone", "bob@example.com")
	mismatched := seedAppointment(f.appointments, otherPatient.ID, f.doctor.ID, entity.AppointmentStatusCompleted)
	_, err = f.uc.CreatePrescription(ctxWithUser(f.doctor.ID), &dto.CreatePrescriptionRequest{
		PatientID:     f.patient.ID,
		AppointmentID: &mismatched.ID,
		Diagnosis:     "Flu",
	})
	if !errors.Is(err, ErrAppointmentPatientMismatch) {
		t.Errorf("err = %v, want ErrAppointmentPatientMismatch", err)
	}
}

// ---------- Reads ----------

func TestGetPrescription_VisibleToBothParties(t *testing.T) {
	f := newPrescriptionFixture()

	resp, err := f.uc.CreatePrescription(ctxWithUser(f.doctor.ID), &dto.CreatePrescriptionRequest{
		PatientID: f.patient.ID,
		Diagnosis: "Flu",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := f.uc.GetPrescription(ctxWithUser(f.doctor.ID), resp.ID); err != nil {
		t.Errorf("author doctor should see the prescription: %v", err)
	}
	if _, err := f.uc.GetPrescription(ctxWithUser(f.patient.ID), resp.ID); err != nil {
		t.Errorf("named patient should see the prescription: %v", err)
	}

	stranger := seedPatient(f.users, "Bob Stone", "bob@example.com")
	if _, err := f.uc.GetPrescription(ctxWithUser(stranger.ID), resp.ID); !errors.Is(err, ErrPrescriptionNotOwned) {
		t.Errorf("err = %v, want ErrPrescriptionNotOwned for a third party", err)
	}
}

func TestGetPatientPrescriptions_OnlyOwn(t *testing.T) {
	f := newPrescriptionFixture()
	other := seedPatient(f.users, "Bob Stone", "bob@example.com")

	for _, target := range []uuid.UUID{f.patient.ID, f.patient.ID, other.ID} {
		_, err := f.uc.CreatePrescription(ctxWithUser(f.doctor.ID), &dto.CreatePrescriptionRequest{
			PatientID: target,
			Diagnosis: "Flu",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	resp, err := f.uc.GetPatientPrescriptions(ctxWithUser(f.patient.ID))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Total != 2 {
		t.Errorf("total = %d, want 2", resp.Total)
	}

	doctorView, err := f.uc.GetDoctorPrescriptions(ctxWithUser(f.doctor.ID))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doctorView.Total != 3 {
		t.Errorf("doctor total = %d, want 3", doctorView.Total)
	}
}
