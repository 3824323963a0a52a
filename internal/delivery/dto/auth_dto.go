package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type RegisterPatientRequest struct {
	Email            string `json:"email" validate:"required,email"`
	Password         string `json:"password" validate:"required,min=8"`
	FullName         string `json:"full_name" validate:"required,max=255"`
	Phone            string `json:"phone" validate:"omitempty,max=30"`
	DateOfBirth      string `json:"date_of_birth" validate:"omitempty"` // Format: YYYY-MM-DD
	Address          string `json:"address" validate:"omitempty"`
	MedicalHistory   string `json:"medical_history" validate:"omitempty"`
	InsuranceDetails string `json:"insurance_details" validate:"omitempty"`
}

type RegisterDoctorRequest struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	FullName        string `json:"full_name" validate:"required,max=255"`
	Phone           string `json:"phone" validate:"omitempty,max=30"`
	Specialty       string `json:"specialty" validate:"required,max=120"`
	Qualification   string `json:"qualification" validate:"omitempty,max=120"`
	LicenseNumber   string `json:"license_number" validate:"omitempty,max=80"`
	ExperienceYears int    `json:"experience_years" validate:"omitempty,gte=0"`
	HospitalCode    string `json:"hospital_code" validate:"omitempty,max=50"`
}

type RegisterNurseRequest struct {
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=8"`
	FullName     string `json:"full_name" validate:"required,max=255"`
	Phone        string `json:"phone" validate:"omitempty,max=30"`
	Department   string `json:"department" validate:"required,max=120"`
	ShiftTimings string `json:"shift_timings" validate:"omitempty,max=80"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// Response DTOs

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}
