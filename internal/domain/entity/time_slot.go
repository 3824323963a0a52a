package entity

import (
	"time"

	"github.com/google/uuid"
)

// Slot type constants
const (
	SlotTypeConsultation = "consultation"
	SlotTypeFollowUp     = "follow_up"
	SlotTypeProcedure    = "procedure"
)

// TimeSlot is a bounded interval of a doctor's availability.
// SlotCode is unique per doctor; consumption flips IsAvailable to false and
// a slot is never resurrected automatically - release is an explicit action.
type TimeSlot struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	SlotCode    string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_doctor_slot_code" json:"slot_code"`
	DoctorID    uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_doctor_slot_code" json:"doctor_id"`
	HospitalID  uuid.UUID `gorm:"type:uuid;not null;index" json:"hospital_id"`
	StartTime   time.Time `gorm:"not null;index" json:"start_time"`
	EndTime     time.Time `gorm:"not null" json:"end_time"`
	IsAvailable *bool     `gorm:"not null;default:true;index" json:"is_available"`
	SlotType    string    `gorm:"type:varchar(50);not null;default:'consultation'" json:"slot_type"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctor   DoctorProfile `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Hospital Hospital      `gorm:"foreignKey:HospitalID" json:"hospital,omitempty"`
}

func (TimeSlot) TableName() string {
	return "time_slots"
}

// DurationMinutes returns the slot length in whole minutes.
func (s *TimeSlot) DurationMinutes() int {
	return int(s.EndTime.Sub(s.StartTime).Minutes())
}

// Overlaps reports whether the [start, end) intervals of two slots intersect.
func (s *TimeSlot) Overlaps(other *TimeSlot) bool {
	return s.StartTime.Before(other.EndTime) && other.StartTime.Before(s.EndTime)
}
