package converter

import (
	"github.com/anonymous-574/MediQ/internal/delivery/dto"
	"github.com/anonymous-574/MediQ/internal/domain/entity"
)

// TimeSlotToResponse converts a TimeSlot entity to SlotResponse DTO
func TimeSlotToResponse(slot *entity.TimeSlot) *dto.SlotResponse {
	if slot == nil {
		return nil
	}

	resp := &dto.SlotResponse{
		SlotCode:     slot.SlotCode,
		DoctorCode:   slot.Doctor.DoctorCode,
		HospitalCode: slot.Hospital.HospitalCode,
		StartTime:    slot.StartTime,
		EndTime:      slot.EndTime,
		SlotType:     slot.SlotType,
	}
	if slot.IsAvailable != nil {
		resp.IsAvailable = *slot.IsAvailable
	}
	return resp
}

// TimeSlotsToResponses converts a slice of TimeSlot entities to slice of SlotResponse DTOs
func TimeSlotsToResponses(slots []entity.TimeSlot) []dto.SlotResponse {
	responses := make([]dto.SlotResponse, len(slots))
	for i := range slots {
		responses[i] = *TimeSlotToResponse(&slots[i])
	}
	return responses
}
