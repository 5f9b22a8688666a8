package converter

import (
	"medifriend/internal/delivery/dto"
	"medifriend/internal/domain/entity"

	"github.com/google/uuid"
)

// PrescriptionToResponse converts entity.Prescription to dto.PrescriptionResponse
func PrescriptionToResponse(prescription *entity.Prescription) *dto.PrescriptionResponse {
	if prescription == nil {
		return nil
	}

	medicines := make([]dto.MedicineResponse, 0, len(prescription.Medicines))
	for _, m := range prescription.Medicines {
		medicines = append(medicines, dto.MedicineResponse{
			Name:     m.Name,
			Dosage:   m.Dosage,
			Duration: m.Duration,
		})
	}

	resp := &dto.PrescriptionResponse{
		ID:            prescription.ID,
		AppointmentID: prescription.AppointmentID,
		Diagnosis:     prescription.Diagnosis,
		Medicines:     medicines,
		Notes:         prescription.Notes,
		CreatedAt:     prescription.CreatedAt,
	}

	if prescription.Doctor.ID != uuid.Nil {
		resp.DoctorName = prescription.Doctor.FullName
		if prescription.Doctor.DoctorDetails != nil {
			resp.Specialization = prescription.Doctor.DoctorDetails.Specialization
		}
	}

	if prescription.Patient.ID != uuid.Nil {
		resp.PatientName = prescription.Patient.FullName
	}

	return resp
}

// PrescriptionsToResponse converts a slice of prescriptions to response DTOs
func PrescriptionsToResponse(prescriptions []entity.Prescription) []dto.PrescriptionResponse {
	responses := make([]dto.PrescriptionResponse, 0, len(prescriptions))
	for i := range prescriptions {
		responses = append(responses, *PrescriptionToResponse(&prescriptions[i]))
	}
	return responses
}
