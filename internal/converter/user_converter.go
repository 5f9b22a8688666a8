package converter

import (
	"medifriend/internal/delivery/dto"
	"medifriend/internal/domain/entity"
)

// UserToResponse converts entity.User to dto.UserResponse
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	resp := &dto.UserResponse{
		ID:        user.ID,
		FullName:  user.FullName,
		Email:     user.Email,
		Role:      string(user.Role),
		Phone:     user.Phone,
		Gender:    user.Gender,
		CreatedAt: user.CreatedAt,
	}

	if !user.DateOfBirth.IsZero() {
		resp.DateOfBirth = user.DateOfBirth.Format("2006-01-02")
	}

	if user.PatientDetails != nil {
		resp.PatientDetails = &dto.PatientDetailsResponse{
			BloodGroup:        user.PatientDetails.BloodGroup,
			Allergies:         user.PatientDetails.Allergies,
			ChronicConditions: user.PatientDetails.ChronicConditions,
			EmergencyContact:  user.PatientDetails.EmergencyContact,
		}
	}

	if user.DoctorDetails != nil {
		resp.DoctorDetails = &dto.DoctorDetailsResponse{
			Specialization:  user.DoctorDetails.Specialization,
			Qualification:   user.DoctorDetails.Qualification,
			ExperienceYears: user.DoctorDetails.ExperienceYears,
			ConsultationFee: user.DoctorDetails.ConsultationFee.StringFixed(2),
		}
	}

	return resp
}
