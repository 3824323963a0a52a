package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Hospital represents an outpatient facility in the network.
// CongestionLevel is an unvalidated gauge (convention 0-100) mutated only
// through the admin/doctor congestion endpoint.
type Hospital struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	HospitalCode    string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"hospital_code"`
	Name            string    `gorm:"type:varchar(200);not null" json:"name"`
	Address         string    `gorm:"type:varchar(255)" json:"address,omitempty"`
	Capacity        int       `gorm:"default:0" json:"capacity"`
	CongestionLevel float64   `gorm:"default:0" json:"congestion_level"`
	ContactInfo     string    `gorm:"type:varchar(255)" json:"contact_info,omitempty"`
	Departments     string    `gorm:"type:text" json:"departments,omitempty"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctors []DoctorProfile `gorm:"foreignKey:HospitalID" json:"doctors,omitempty"`
	Slots   []TimeSlot      `gorm:"foreignKey:HospitalID" json:"slots,omitempty"`
	Reports []QueueReport   `gorm:"foreignKey:HospitalID" json:"reports,omitempty"`
}

func (Hospital) TableName() string {
	return "hospitals"
}

// DepartmentList splits the csv departments column.
func (h *Hospital) DepartmentList() []string {
	if h.Departments == "" {
		return nil
	}
	parts := strings.Split(h.Departments, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
