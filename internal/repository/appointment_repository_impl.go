package repository

import (
	"context"
	"errors"

	"medifriend/internal/domain/entity"
	domainRepo "medifriend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var transitionedStatuses = []entity.AppointmentStatus{
	entity.AppointmentStatusConfirmed,
	entity.AppointmentStatusCompleted,
}

type appointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) domainRepo.AppointmentRepository {
	return &appointmentRepository{db: db}
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	return r.db.WithContext(ctx).Create(appointment).Error
}

func (r *appointmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := r.db.WithContext(ctx).
		Preload("Patient").
		Preload("Doctor.DoctorDetails").
		Where("id = ?", id).
		First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindByPatientID(ctx context.Context, patientID uuid.UUID) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := r.db.WithContext(ctx).
		Preload("Doctor.DoctorDetails").
		Where("patient_id = ?", patientID).
		Order("date DESC, time DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByDoctorID(ctx context.Context, doctorID uuid.UUID) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := r.db.WithContext(ctx).
		Preload("Patient").
		Where("doctor_id = ?", doctorID).
		Order("created_at DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

// UpdateStatus atomically applies one transition ONLY if the row is still in
// the expected prior status. Returns affected rows: 1 = applied, 0 = missing
// or already transitioned (prevents double accept/reject race).
func (r *appointmentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.AppointmentStatus) (int64, error) {
	result := r.db.WithContext(ctx).Model(&entity.Appointment{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	return result.RowsAffected, result.Error
}

func (r *appointmentRepository) DeleteByIDAndPatientID(ctx context.Context, id, patientID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("id = ? AND patient_id = ?", id, patientID).
		Delete(&entity.Appointment{})
	return result.RowsAffected, result.Error
}

// GetDoctorStats runs the three dashboard aggregates. The caller supplies
// "today" as a YYYY-MM-DD string so the date comparison stays a plain
// equality against the date column.
func (r *appointmentRepository) GetDoctorStats(ctx context.Context, doctorID uuid.UUID, today string) (*entity.DoctorStats, error) {
	stats := &entity.DoctorStats{}

	err := r.db.WithContext(ctx).Model(&entity.Appointment{}).
		Where("doctor_id = ? AND status = ?", doctorID, entity.AppointmentStatusPending).
		Count(&stats.PendingCount).Error
	if err != nil {
		return nil, err
	}

	err = r.db.WithContext(ctx).Model(&entity.Appointment{}).
		Where("doctor_id = ? AND date = ? AND status IN ?", doctorID, today, transitionedStatuses).
		Count(&stats.TodayCount).Error
	if err != nil {
		return nil, err
	}

	err = r.db.WithContext(ctx).Model(&entity.Appointment{}).
		Where("doctor_id = ? AND status IN ?", doctorID, transitionedStatuses).
		Distinct("patient_id").
		Count(&stats.TotalPatients).Error
	if err != nil {
		return nil, err
	}

	return stats, nil
}

// FindPatientsByDoctorID derives the roster: distinct patients with at least
// one CONFIRMED or COMPLETED appointment, most recent first.
func (r *appointmentRepository) FindPatientsByDoctorID(ctx context.Context, doctorID uuid.UUID) ([]entity.PatientSummary, error) {
	var summaries []entity.PatientSummary
	err := r.db.WithContext(ctx).
		Table("appointments").
		Select(`users.id AS patient_id,
			users.full_name,
			users.phone,
			users.gender,
			users.date_of_birth,
			COUNT(DISTINCT appointments.id) AS total_appointments,
			SUM(CASE WHEN appointments.status = ? THEN 1 ELSE 0 END) AS completed_appointments,
			MAX(appointments.date) AS last_visit`, entity.AppointmentStatusCompleted).
		Joins("JOIN users ON users.id = appointments.patient_id").
		Where("appointments.doctor_id = ? AND appointments.status IN ?", doctorID, transitionedStatuses).
		Group("users.id, users.full_name, users.phone, users.gender, users.date_of_birth").
		Order("MAX(appointments.date) DESC").
		Scan(&summaries).Error
	if err != nil {
		return nil, err
	}
	return summaries, nil
}
