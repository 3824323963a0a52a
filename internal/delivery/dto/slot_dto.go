package dto

import "time"

// Request DTOs

// CreateSlotItem is one slot in a batch-create request. Times are RFC 3339.
type CreateSlotItem struct {
	SlotCode     string `json:"slot_code" validate:"omitempty,max=50"`
	HospitalCode string `json:"hospital_code" validate:"required,max=50"`
	StartTime    string `json:"start_time" validate:"required"`
	EndTime      string `json:"end_time" validate:"required"`
	SlotType     string `json:"slot_type" validate:"omitempty,oneof=consultation follow_up procedure"`
}

type CreateSlotsRequest struct {
	Slots []CreateSlotItem `json:"slots" validate:"required,min=1,dive"`
}

// Response DTOs

type SlotResponse struct {
	SlotCode     string    `json:"slot_code"`
	DoctorCode   string    `json:"doctor_code,omitempty"`
	HospitalCode string    `json:"hospital_code,omitempty"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	IsAvailable  bool      `json:"is_available"`
	SlotType     string    `json:"slot_type"`
}

// RejectedSlot reports a batch item that failed validation, with the reason.
type RejectedSlot struct {
	SlotCode string `json:"slot_code,omitempty"`
	Reason   string `json:"reason"`
}

type CreateSlotsResponse struct {
	Created  []SlotResponse `json:"created"`
	Rejected []RejectedSlot `json:"rejected,omitempty"`
}

type SlotListResponse struct {
	Slots []SlotResponse `json:"slots"`
	Total int            `json:"total"`
}
