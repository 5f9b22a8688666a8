package converter

import (
	"medifriend/internal/delivery/dto"
	"medifriend/internal/domain/entity"
)

// DoctorToResponse converts a doctor entity.User to dto.DoctorResponse.
// Expects DoctorDetails to be loaded.
func DoctorToResponse(user *entity.User) *dto.DoctorResponse {
	if user == nil {
		return nil
	}

	resp := &dto.DoctorResponse{
		ID:       user.ID,
		FullName: user.FullName,
		Gender:   user.Gender,
	}

	if user.DoctorDetails != nil {
		resp.Specialization = user.DoctorDetails.Specialization
		resp.Qualification = user.DoctorDetails.Qualification
		resp.ExperienceYears = user.DoctorDetails.ExperienceYears
		resp.ConsultationFee = user.DoctorDetails.ConsultationFee.StringFixed(2)
	}

	return resp
}

// DoctorsToResponse converts a slice of doctor users to response DTOs
func DoctorsToResponse(users []entity.User) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, 0, len(users))
	for i := range users {
		responses = append(responses, *DoctorToResponse(&users[i]))
	}
	return responses
}
