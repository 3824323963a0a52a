package converter

import (
	"github.com/anonymous-574/MediQ/internal/delivery/dto"
	"github.com/anonymous-574/MediQ/internal/domain/entity"
)

// DoctorProfileToResponse converts a DoctorProfile entity to DoctorResponse DTO
func DoctorProfileToResponse(profile *entity.DoctorProfile) *dto.DoctorResponse {
	if profile == nil {
		return nil
	}

	resp := &dto.DoctorResponse{
		ID:              profile.UserID,
		DoctorCode:      profile.DoctorCode,
		FullName:        profile.User.FullName,
		Email:           profile.User.Email,
		Specialty:       profile.Specialty,
		Qualification:   profile.Qualification,
		LicenseNumber:   profile.LicenseNumber,
		ExperienceYears: profile.ExperienceYears,
	}
	if profile.IsAvailable != nil {
		resp.IsAvailable = *profile.IsAvailable
	}
	if profile.Hospital != nil {
		resp.HospitalCode = profile.Hospital.HospitalCode
	}
	return resp
}

// DoctorProfilesToResponses converts a slice of DoctorProfile entities to slice of DoctorResponse DTOs
func DoctorProfilesToResponses(profiles []entity.DoctorProfile) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(profiles))
	for i := range profiles {
		responses[i] = *DoctorProfileToResponse(&profiles[i])
	}
	return responses
}
