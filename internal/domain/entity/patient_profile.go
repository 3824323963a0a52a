package entity

import (
	"time"

	"github.com/google/uuid"
)

// PatientProfile represents patient-specific profile data
type PatientProfile struct {
	UserID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	PatientCode      string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"patient_code"`
	DateOfBirth      time.Time `gorm:"type:date" json:"date_of_birth"`
	Address          string    `gorm:"type:text" json:"address,omitempty"`
	MedicalHistory   string    `gorm:"type:text" json:"medical_history,omitempty"`
	InsuranceDetails string    `gorm:"type:text" json:"insurance_details,omitempty"`
	IsRegistered     *bool     `gorm:"not null;default:false;index" json:"is_registered"`
	AccountStatus    string    `gorm:"type:varchar(50);not null;default:'active'" json:"account_status"`

	// Relationships
	User         User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Appointments []Appointment `gorm:"foreignKey:PatientID" json:"appointments,omitempty"`
}

func (PatientProfile) TableName() string {
	return "patient_profiles"
}

// Patient account status constants
const (
	PatientStatusActive    = "active"
	PatientStatusSuspended = "suspended"
)
