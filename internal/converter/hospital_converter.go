package converter

import (
	"github.com/anonymous-574/MediQ/internal/delivery/dto"
	"github.com/anonymous-574/MediQ/internal/domain/entity"
)

// HospitalToResponse converts a Hospital entity to HospitalResponse DTO
func HospitalToResponse(hospital *entity.Hospital) *dto.HospitalResponse {
	if hospital == nil {
		return nil
	}

	return &dto.HospitalResponse{
		HospitalCode:    hospital.HospitalCode,
		Name:            hospital.Name,
		Address:         hospital.Address,
		Capacity:        hospital.Capacity,
		CongestionLevel: hospital.CongestionLevel,
		Departments:     hospital.DepartmentList(),
	}
}

// HospitalsToResponses converts a slice of Hospital entities to slice of HospitalResponse DTOs
func HospitalsToResponses(hospitals []entity.Hospital) []dto.HospitalResponse {
	responses := make([]dto.HospitalResponse, len(hospitals))
	for i := range hospitals {
		responses[i] = *HospitalToResponse(&hospitals[i])
	}
	return responses
}
