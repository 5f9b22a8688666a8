package converter

import (
	"time"

	"medifriend/internal/delivery/dto"
	"medifriend/internal/domain/entity"

	"github.com/google/uuid"
)

// AppointmentToResponse converts entity.Appointment to dto.AppointmentResponse.
// Doctor and Patient sub-objects are filled only when the relationship was
// preloaded, so patient listings carry doctor info and vice versa.
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	resp := &dto.AppointmentResponse{
		ID:        appointment.ID,
		Date:      appointment.DateString(),
		Time:      appointment.Time,
		Symptoms:  appointment.Symptoms,
		Status:    string(appointment.Status),
		CreatedAt: appointment.CreatedAt,
	}

	if appointment.Doctor.ID != uuid.Nil {
		info := &dto.AppointmentDoctorInfo{
			ID:       appointment.Doctor.ID,
			FullName: appointment.Doctor.FullName,
		}
		if appointment.Doctor.DoctorDetails != nil {
			info.Specialization = appointment.Doctor.DoctorDetails.Specialization
			info.ConsultationFee = appointment.Doctor.DoctorDetails.ConsultationFee.StringFixed(2)
		}
		resp.Doctor = info
	}

	if appointment.Patient.ID != uuid.Nil {
		resp.Patient = &dto.AppointmentPatientInfo{
			ID:       appointment.Patient.ID,
			FullName: appointment.Patient.FullName,
			Phone:    appointment.Patient.Phone,
			Gender:   appointment.Patient.Gender,
			Age:      appointment.Patient.Age(time.Now()),
		}
	}

	return resp
}

// AppointmentsToResponse converts a slice of appointments to response DTOs
func AppointmentsToResponse(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, 0, len(appointments))
	for i := range appointments {
		responses = append(responses, *AppointmentToResponse(&appointments[i]))
	}
	return responses
}

// DoctorStatsToResponse converts entity.DoctorStats to the dashboard DTO
func DoctorStatsToResponse(stats *entity.DoctorStats) *dto.DoctorDashboardResponse {
	if stats == nil {
		return nil
	}

	return &dto.DoctorDashboardResponse{
		PendingAppointments: stats.PendingCount,
		TodayAppointments:   stats.TodayCount,
		TotalPatients:       stats.TotalPatients,
	}
}

// PatientSummaryToResponse converts entity.PatientSummary to dto.PatientSummaryResponse
func PatientSummaryToResponse(summary *entity.PatientSummary) *dto.PatientSummaryResponse {
	if summary == nil {
		return nil
	}

	resp := &dto.PatientSummaryResponse{
		ID:                    summary.PatientID,
		FullName:              summary.FullName,
		Phone:                 summary.Phone,
		Gender:                summary.Gender,
		Age:                   entity.AgeAt(summary.DateOfBirth, time.Now()),
		TotalAppointments:     summary.TotalAppointments,
		CompletedAppointments: summary.CompletedAppointments,
	}

	if !summary.LastVisit.IsZero() {
		resp.LastVisit = summary.LastVisit.Format("2006-01-02")
	}

	return resp
}

// PatientSummariesToResponse converts a slice of roster rows to response DTOs
func PatientSummariesToResponse(summaries []entity.PatientSummary) []dto.PatientSummaryResponse {
	responses := make([]dto.PatientSummaryResponse, 0, len(summaries))
	for i := range summaries {
		responses = append(responses, *PatientSummaryToResponse(&summaries[i]))
	}
	return responses
}
