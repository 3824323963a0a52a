package converter

import (
	"github.com/anonymous-574/MediQ/internal/delivery/dto"
	"github.com/anonymous-574/MediQ/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	resp := &dto.AppointmentResponse{
		AppointmentCode: appointment.AppointmentCode,
		PatientID:       appointment.PatientID,
		DoctorID:        appointment.DoctorID,
		HospitalID:      appointment.HospitalID,
		ScheduledAt:     appointment.ScheduledAt,
		Status:          string(appointment.Status),
		AppointmentType: appointment.AppointmentType,
		Notes:           appointment.Notes,
		CreatedAt:       appointment.CreatedAt,
		UpdatedAt:       appointment.UpdatedAt,
	}
	if appointment.Doctor.DoctorCode != "" {
		resp.Doctor = DoctorProfileToResponse(&appointment.Doctor)
	}
	return resp
}

// AppointmentsToResponses converts a slice of Appointment entities to slice of AppointmentResponse DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}
