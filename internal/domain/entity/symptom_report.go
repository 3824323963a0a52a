package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// SymptomReport records a triage classification for a patient's free-text
// symptoms. Write-once: never mutated after creation.
type SymptomReport struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ReportCode      string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"report_code"`
	PatientID       uuid.UUID `gorm:"type:uuid;not null;index" json:"patient_id"`
	Symptoms        string    `gorm:"type:text" json:"symptoms"`
	UrgencyLevel    string    `gorm:"type:varchar(20);not null" json:"urgency_level"`
	Classification  string    `gorm:"type:varchar(120);not null" json:"classification"`
	Recommendations string    `gorm:"type:text" json:"recommendations"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Patient PatientProfile `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (SymptomReport) TableName() string {
	return "symptom_reports"
}

// IsEmergency reports whether the derived urgency is High.
func (r *SymptomReport) IsEmergency() bool {
	return strings.EqualFold(r.UrgencyLevel, "High")
}

// RecommendationList splits the serialized recommendations column.
func (r *SymptomReport) RecommendationList() []string {
	if r.Recommendations == "" {
		return nil
	}
	return strings.Split(r.Recommendations, ";")
}
