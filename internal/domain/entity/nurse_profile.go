package entity

import "github.com/google/uuid"

// NurseProfile represents nurse-specific profile data
type NurseProfile struct {
	UserID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	NurseCode    string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"nurse_code"`
	Department   string    `gorm:"type:varchar(120);not null;index" json:"department"`
	ShiftTimings string    `gorm:"type:varchar(80)" json:"shift_timings,omitempty"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (NurseProfile) TableName() string {
	return "nurse_profiles"
}
