package dto

import "github.com/google/uuid"

// Response DTOs

type PatientResponse struct {
	ID             uuid.UUID `json:"id"`
	PatientCode    string    `json:"patient_code"`
	FullName       string    `json:"full_name"`
	Email          string    `json:"email,omitempty"`
	Phone          string    `json:"phone,omitempty"`
	MedicalHistory string    `json:"medical_history,omitempty"`
	IsRegistered   bool      `json:"is_registered"`
	AccountStatus  string    `json:"account_status"`
}
