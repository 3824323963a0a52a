package entity

import "github.com/google/uuid"

// DoctorProfile represents doctor-specific profile data.
// DoctorCode is the external display identifier; all relations use UserID.
type DoctorProfile struct {
	UserID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"user_id"`
	DoctorCode      string     `gorm:"type:varchar(50);uniqueIndex;not null" json:"doctor_code"`
	Specialty       string     `gorm:"type:varchar(120);not null;index" json:"specialty"`
	Qualification   string     `gorm:"type:varchar(120)" json:"qualification,omitempty"`
	LicenseNumber   string     `gorm:"type:varchar(80)" json:"license_number,omitempty"`
	ExperienceYears int        `gorm:"default:0" json:"experience_years"`
	IsAvailable     *bool      `gorm:"not null;default:true;index" json:"is_available"`
	HospitalID      *uuid.UUID `gorm:"type:uuid;index" json:"hospital_id,omitempty"`

	// Relationships
	User     User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Hospital *Hospital `gorm:"foreignKey:HospitalID" json:"hospital,omitempty"`
	Slots    []TimeSlot `gorm:"foreignKey:DoctorID" json:"slots,omitempty"`
}

func (DoctorProfile) TableName() string {
	return "doctor_profiles"
}
