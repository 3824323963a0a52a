package dto

import "github.com/google/uuid"

// Response DTOs

type DoctorResponse struct {
	ID              uuid.UUID `json:"id"`
	DoctorCode      string    `json:"doctor_code"`
	FullName        string    `json:"full_name"`
	Email           string    `json:"email,omitempty"`
	Specialty       string    `json:"specialty"`
	Qualification   string    `json:"qualification,omitempty"`
	LicenseNumber   string    `json:"license_number,omitempty"`
	ExperienceYears int       `json:"experience_years"`
	IsAvailable     bool      `json:"is_available"`
	HospitalCode    string    `json:"hospital_code,omitempty"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}
