package usecase

import (
	"bytes"
	"context"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"
	"testing"
	"time"

	"medifriend/internal/delivery/http/middleware"
	"medifriend/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
)

// ---------- Shared helpers ----------

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func ctxWithUser(userID uuid.UUID) context.Context {
	return context.WithValue(context.Background(), middleware.UserIDKey, userID)
}

// pngPayload builds a small decodable image and returns it base64-encoded,
// the way browser clients submit prescription photos.
func pngPayload(t *testing.T) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, color.RGBA{R: uint8(60 * x), G: uint8(60 * y), B: 120, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode test image: %v", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}

// ---------- User repository mock ----------

type mockUserRepo struct {
	users          map[uuid.UUID]*entity.User
	patientDetails map[uuid.UUID]*entity.PatientDetails
	doctorDetails  map[uuid.UUID]*entity.DoctorDetails
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{
		users:          make(map[uuid.UUID]*entity.User),
		patientDetails: make(map[uuid.UUID]*entity.PatientDetails),
		doctorDetails:  make(map[uuid.UUID]*entity.DoctorDetails),
	}
}

func (m *mockUserRepo) seed(user *entity.User) *entity.User {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	m.users[user.ID] = user
	return user
}

func seedPatient(repo *mockUserRepo, name, email string) *entity.User {
	return repo.seed(&entity.User{FullName: name, Email: email, Role: entity.RolePatient})
}

func seedDoctor(repo *mockUserRepo, name, email, specialization string) *entity.User {
	user := repo.seed(&entity.User{FullName: name, Email: email, Role: entity.RoleDoctor})
	repo.doctorDetails[user.ID] = &entity.DoctorDetails{UserID: user.ID, Specialization: specialization}
	return user
}

func (m *mockUserRepo) emailTaken(email string) bool {
	for _, user := range m.users {
		if user.Email == email {
			return true
		}
	}
	return false
}

func (m *mockUserRepo) CreatePatient(ctx context.Context, user *entity.User, details *entity.PatientDetails) error {
	if m.emailTaken(user.Email) {
		return &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}
	}
	user.ID = uuid.New()
	details.UserID = user.ID
	m.users[user.ID] = user
	m.patientDetails[user.ID] = details
	return nil
}

func (m *mockUserRepo) CreateDoctor(ctx context.Context, user *entity.User, details *entity.DoctorDetails) error {
	if m.emailTaken(user.Email) {
		return &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}
	}
	user.ID = uuid.New()
	details.UserID = user.ID
	m.users[user.ID] = user
	m.doctorDetails[user.ID] = details
	return nil
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, user := range m.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return m.users[id], nil
}

func (m *mockUserRepo) FindByIDWithDetails(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	withDetails := *user
	withDetails.PatientDetails = m.patientDetails[id]
	withDetails.DoctorDetails = m.doctorDetails[id]
	return &withDetails, nil
}

func (m *mockUserRepo) FindDoctors(ctx context.Context, filter entity.DoctorFilter) ([]entity.User, error) {
	result := make([]entity.User, 0)
	for _, user := range m.users {
		if !user.IsDoctor() {
			continue
		}
		details := m.doctorDetails[user.ID]
		if filter.Name != "" && !strings.Contains(strings.ToLower(user.FullName), strings.ToLower(filter.Name)) {
			continue
		}
		if filter.Specialization != "" {
			if details == nil || !strings.Contains(strings.ToLower(details.Specialization), strings.ToLower(filter.Specialization)) {
				continue
			}
		}
		withDetails := *user
		withDetails.DoctorDetails = details
		result = append(result, withDetails)
	}
	return result, nil
}

func (m *mockUserRepo) FindDoctorByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, ok := m.users[id]
	if !ok || !user.IsDoctor() {
		return nil, nil
	}
	withDetails := *user
	withDetails.DoctorDetails = m.doctorDetails[id]
	return &withDetails, nil
}

func (m *mockUserRepo) Update(ctx context.Context, user *entity.User) error {
	m.users[user.ID] = user
	return nil
}

// ---------- Details repository mocks ----------

type mockPatientDetailsRepo struct {
	details map[uuid.UUID]*entity.PatientDetails
}

func newMockPatientDetailsRepo() *mockPatientDetailsRepo {
	return &mockPatientDetailsRepo{details: make(map[uuid.UUID]*entity.PatientDetails)}
}

func (m *mockPatientDetailsRepo) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.PatientDetails, error) {
	return m.details[userID], nil
}

func (m *mockPatientDetailsRepo) Update(ctx context.Context, details *entity.PatientDetails) error {
	m.details[details.UserID] = details
	return nil
}

type mockDoctorDetailsRepo struct {
	details map[uuid.UUID]*entity.DoctorDetails
}

func newMockDoctorDetailsRepo() *mockDoctorDetailsRepo {
	return &mockDoctorDetailsRepo{details: make(map[uuid.UUID]*entity.DoctorDetails)}
}

func (m *mockDoctorDetailsRepo) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.DoctorDetails, error) {
	return m.details[userID], nil
}

func (m *mockDoctorDetailsRepo) Update(ctx context.Context, details *entity.DoctorDetails) error {
	m.details[details.UserID] = details
	return nil
}

// ---------- Appointment repository mock ----------

type mockAppointmentRepo struct {
	appointments map[uuid.UUID]*entity.Appointment
	order        []uuid.UUID
	createErr    error
	updateRows   *int64 // overrides the UpdateStatus result when set
	stats        *entity.DoctorStats
	patients     []entity.PatientSummary
}

func newMockAppointmentRepo() *mockAppointmentRepo {
	return &mockAppointmentRepo{appointments: make(map[uuid.UUID]*entity.Appointment)}
}

func seedAppointment(repo *mockAppointmentRepo, patientID, doctorID uuid.UUID, status entity.AppointmentStatus) *entity.Appointment {
	appointment := &entity.Appointment{
		ID:        uuid.New(),
		PatientID: patientID,
		DoctorID:  doctorID,
		Date:      time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		Time:      "10:30",
		Symptoms:  "persistent cough",
		Status:    status,
	}
	repo.appointments[appointment.ID] = appointment
	repo.order = append(repo.order, appointment.ID)
	return appointment
}

func (m *mockAppointmentRepo) Create(ctx context.Context, appointment *entity.Appointment) error {
	if m.createErr != nil {
		return m.createErr
	}
	if appointment.ID == uuid.Nil {
		appointment.ID = uuid.New()
	}
	m.appointments[appointment.ID] = appointment
	m.order = append(m.order, appointment.ID)
	return nil
}

func (m *mockAppointmentRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	return m.appointments[id], nil
}

func (m *mockAppointmentRepo) FindByPatientID(ctx context.Context, patientID uuid.UUID) ([]entity.Appointment, error) {
	result := make([]entity.Appointment, 0)
	for i := len(m.order) - 1; i >= 0; i-- {
		appointment := m.appointments[m.order[i]]
		if appointment != nil && appointment.PatientID == patientID {
			result = append(result, *appointment)
		}
	}
	return result, nil
}

func (m *mockAppointmentRepo) FindByDoctorID(ctx context.Context, doctorID uuid.UUID) ([]entity.Appointment, error) {
	result := make([]entity.Appointment, 0)
	for i := len(m.order) - 1; i >= 0; i-- {
		appointment := m.appointments[m.order[i]]
		if appointment != nil && appointment.DoctorID == doctorID {
			result = append(result, *appointment)
		}
	}
	return result, nil
}

func (m *mockAppointmentRepo) UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.AppointmentStatus) (int64, error) {
	if m.updateRows != nil {
		return *m.updateRows, nil
	}
	appointment, ok := m.appointments[id]
	if !ok || appointment.Status != from {
		return 0, nil
	}
	appointment.Status = to
	return 1, nil
}

func (m *mockAppointmentRepo) DeleteByIDAndPatientID(ctx context.Context, id, patientID uuid.UUID) (int64, error) {
	appointment, ok := m.appointments[id]
	if !ok || appointment.PatientID != patientID {
		return 0, nil
	}
	delete(m.appointments, id)
	return 1, nil
}

func (m *mockAppointmentRepo) GetDoctorStats(ctx context.Context, doctorID uuid.UUID, today string) (*entity.DoctorStats, error) {
	if m.stats != nil {
		return m.stats, nil
	}
	return &entity.DoctorStats{}, nil
}

func (m *mockAppointmentRepo) FindPatientsByDoctorID(ctx context.Context, doctorID uuid.UUID) ([]entity.PatientSummary, error) {
	return m.patients, nil
}

// ---------- Prescription repository mock ----------

type mockPrescriptionRepo struct {
	prescriptions map[uuid.UUID]*entity.Prescription
	order         []uuid.UUID
}

func newMockPrescriptionRepo() *mockPrescriptionRepo {
	return &mockPrescriptionRepo{prescriptions: make(map[uuid.UUID]*entity.Prescription)}
}

func (m *mockPrescriptionRepo) Create(ctx context.Context, prescription *entity.Prescription) error {
	if prescription.ID == uuid.Nil {
		prescription.ID = uuid.New()
	}
	m.prescriptions[prescription.ID] = prescription
	m.order = append(m.order, prescription.ID)
	return nil
}

func (m *mockPrescriptionRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Prescription, error) {
	return m.prescriptions[id], nil
}

func (m *mockPrescriptionRepo) FindByPatientID(ctx context.Context, patientID uuid.UUID) ([]entity.Prescription, error) {
	result := make([]entity.Prescription, 0)
	for i := len(m.order) - 1; i >= 0; i-- {
		prescription := m.prescriptions[m.order[i]]
		if prescription != nil && prescription.PatientID == patientID {
			result = append(result, *prescription)
		}
	}
	return result, nil
}

func (m *mockPrescriptionRepo) FindByDoctorID(ctx context.Context, doctorID uuid.UUID) ([]entity.Prescription, error) {
	result := make([]entity.Prescription, 0)
	for i := len(m.order) - 1; i >= 0; i-- {
		prescription := m.prescriptions[m.order[i]]
		if prescription != nil && prescription.DoctorID == doctorID {
			result = append(result, *prescription)
		}
	}
	return result, nil
}

// ---------- Upload repository mock ----------

type mockUploadRepo struct {
	uploads   map[uuid.UUID]*entity.Upload
	order     []uuid.UUID
	createErr error
}

func newMockUploadRepo() *mockUploadRepo {
	return &mockUploadRepo{uploads: make(map[uuid.UUID]*entity.Upload)}
}

func (m *mockUploadRepo) Create(ctx context.Context, upload *entity.Upload) error {
	if m.createErr != nil {
		return m.createErr
	}
	if upload.ID == uuid.Nil {
		upload.ID = uuid.New()
	}
	m.uploads[upload.ID] = upload
	m.order = append(m.order, upload.ID)
	return nil
}

func (m *mockUploadRepo) FindByPatientID(ctx context.Context, patientID uuid.UUID) ([]entity.Upload, error) {
	result := make([]entity.Upload, 0)
	for i := len(m.order) - 1; i >= 0; i-- {
		upload := m.uploads[m.order[i]]
		if upload != nil && upload.PatientID == patientID {
			result = append(result, *upload)
		}
	}
	return result, nil
}

func (m *mockUploadRepo) DeleteByIDAndPatientID(ctx context.Context, id, patientID uuid.UUID) (int64, error) {
	upload, ok := m.uploads[id]
	if !ok || upload.PatientID != patientID {
		return 0, nil
	}
	delete(m.uploads, id)
	return 1, nil
}

// ---------- Notification repository recorder ----------

// recordingNotificationRepo stores notifications in memory and records which
// repository calls happened, so tests can assert both outcomes and ordering.
type recordingNotificationRepo struct {
	notifications []*entity.Notification
	calls         []string
	createErr     error

	findUnreadOnly bool
	findLimit      int
	readCutoff     time.Time
	sweepCutoff    time.Time
}

func (m *recordingNotificationRepo) Create(ctx context.Context, notification *entity.Notification) error {
	m.calls = append(m.calls, "Create")
	if m.createErr != nil {
		return m.createErr
	}
	notification.ID = int64(len(m.notifications) + 1)
	if notification.CreatedAt.IsZero() {
		notification.CreatedAt = time.Now()
	}
	m.notifications = append(m.notifications, notification)
	return nil
}

func (m *recordingNotificationRepo) FindByUserID(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit int) ([]entity.Notification, error) {
	m.calls = append(m.calls, "FindByUserID")
	m.findUnreadOnly = unreadOnly
	m.findLimit = limit
	result := make([]entity.Notification, 0)
	for _, notification := range m.notifications {
		if notification.UserID != userID {
			continue
		}
		if unreadOnly && notification.IsRead {
			continue
		}
		result = append(result, *notification)
		if len(result) == limit {
			break
		}
	}
	return result, nil
}

func (m *recordingNotificationRepo) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	m.calls = append(m.calls, "CountUnread")
	var count int64
	for _, notification := range m.notifications {
		if notification.UserID == userID && !notification.IsRead {
			count++
		}
	}
	return count, nil
}

func (m *recordingNotificationRepo) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	m.calls = append(m.calls, "MarkAllRead")
	for _, notification := range m.notifications {
		if notification.UserID == userID {
			notification.IsRead = true
		}
	}
	return nil
}

func (m *recordingNotificationRepo) DeleteRead(ctx context.Context, userID uuid.UUID) error {
	m.calls = append(m.calls, "DeleteRead")
	kept := make([]*entity.Notification, 0, len(m.notifications))
	for _, notification := range m.notifications {
		if notification.UserID == userID && notification.IsRead {
			continue
		}
		kept = append(kept, notification)
	}
	m.notifications = kept
	return nil
}

func (m *recordingNotificationRepo) DeleteReadBefore(ctx context.Context, userID uuid.UUID, cutoff time.Time) error {
	m.calls = append(m.calls, "DeleteReadBefore")
	m.readCutoff = cutoff
	kept := make([]*entity.Notification, 0, len(m.notifications))
	for _, notification := range m.notifications {
		if notification.UserID == userID && notification.IsRead && notification.CreatedAt.Before(cutoff) {
			continue
		}
		kept = append(kept, notification)
	}
	m.notifications = kept
	return nil
}

func (m *recordingNotificationRepo) DeleteCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	m.calls = append(m.calls, "DeleteCreatedBefore")
	m.sweepCutoff = cutoff
	kept := make([]*entity.Notification, 0, len(m.notifications))
	var removed int64
	for _, notification := range m.notifications {
		if notification.CreatedAt.Before(cutoff) {
			removed++
			continue
		}
		kept = append(kept, notification)
	}
	m.notifications = kept
	return removed, nil
}

func (m *recordingNotificationRepo) forUser(userID uuid.UUID) []*entity.Notification {
	result := make([]*entity.Notification, 0)
	for _, notification := range m.notifications {
		if notification.UserID == userID {
			result = append(result, notification)
		}
	}
	return result
}

// ---------- Extraction service stub ----------

type stubExtraction struct {
	explainText  string
	explainErr   error
	extractData  entity.JSON
	extractErr   error
	explainCalls int
	extractCalls int
}

func (s *stubExtraction) Explain(ctx context.Context, original, enhanced []byte) (string, error) {
	s.explainCalls++
	if s.explainErr != nil {
		return "", s.explainErr
	}
	return s.explainText, nil
}

func (s *stubExtraction) Extract(ctx context.Context, original, enhanced []byte) (entity.JSON, error) {
	s.extractCalls++
	if s.extractErr != nil {
		return nil, s.extractErr
	}
	return s.extractData, nil
}

// ---------- Chat stubs ----------

type stubChatModel struct {
	reply      string
	err        error
	gotHistory []entity.ChatTurn
	gotMessage string
}

func (s *stubChatModel) GenerateChat(ctx context.Context, history []entity.ChatTurn, message string) (string, error) {
	s.gotHistory = history
	s.gotMessage = message
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

type memHistoryStore struct {
	sessions  map[string][]entity.ChatTurn
	appendErr error
}

func newMemHistoryStore() *memHistoryStore {
	return &memHistoryStore{sessions: make(map[string][]entity.ChatTurn)}
}

func (s *memHistoryStore) History(ctx context.Context, sessionID string) ([]entity.ChatTurn, error) {
	return s.sessions[sessionID], nil
}

func (s *memHistoryStore) Append(ctx context.Context, sessionID string, turns ...entity.ChatTurn) error {
	if s.appendErr != nil {
		return s.appendErr
	}
	s.sessions[sessionID] = append(s.sessions[sessionID], turns...)
	return nil
}

func (s *memHistoryStore) Reset(ctx context.Context, sessionID string) error {
	delete(s.sessions, sessionID)
	return nil
}
