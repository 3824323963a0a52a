package converter

import (
	"github.com/anonymous-574/MediQ/internal/delivery/dto"
	"github.com/anonymous-574/MediQ/internal/domain/entity"
)

// PatientProfileToResponse converts a PatientProfile entity to PatientResponse DTO
func PatientProfileToResponse(profile *entity.PatientProfile) *dto.PatientResponse {
	if profile == nil {
		return nil
	}

	resp := &dto.PatientResponse{
		ID:             profile.UserID,
		PatientCode:    profile.PatientCode,
		FullName:       profile.User.FullName,
		Email:          profile.User.Email,
		Phone:          profile.User.Phone,
		MedicalHistory: profile.MedicalHistory,
		AccountStatus:  profile.AccountStatus,
	}
	if profile.IsRegistered != nil {
		resp.IsRegistered = *profile.IsRegistered
	}
	return resp
}
