package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

// BookAppointmentRequest reserves a doctor for a patient. DoctorRef accepts
// either the internal UUID or the external doctor code; SlotCode, when set,
// consumes that slot atomically with the booking.
type BookAppointmentRequest struct {
	DoctorRef       string `json:"doctor_ref" validate:"required,max=50"`
	HospitalCode    string `json:"hospital_code" validate:"required,max=50"`
	ScheduledAt     string `json:"scheduled_at" validate:"required"` // RFC 3339
	SlotCode        string `json:"slot_code" validate:"omitempty,max=50"`
	AppointmentType string `json:"appointment_type" validate:"omitempty,max=50"`
	Notes           string `json:"notes" validate:"omitempty"`
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Completed Cancelled"`
}

// Response DTOs

type AppointmentResponse struct {
	AppointmentCode string          `json:"appointment_code"`
	PatientID       uuid.UUID       `json:"patient_id"`
	DoctorID        uuid.UUID       `json:"doctor_id"`
	HospitalID      uuid.UUID       `json:"hospital_id"`
	ScheduledAt     time.Time       `json:"scheduled_at"`
	Status          string          `json:"status"`
	AppointmentType string          `json:"appointment_type"`
	Notes           string          `json:"notes,omitempty"`
	Doctor          *DoctorResponse `json:"doctor,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
