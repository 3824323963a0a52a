package entity

import (
	"time"

	"github.com/google/uuid"
)

// QueueReportExpiry is the window after which a report no longer counts for
// "current state" reads. Older reports still feed historical averaging.
const QueueReportExpiry = 30 * time.Minute

// QueueReport is a crowd-sourced or staff-submitted observation of the
// current queue for a hospital department.
type QueueReport struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ReportCode    string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"report_code"`
	HospitalID    uuid.UUID `gorm:"type:uuid;not null;index" json:"hospital_id"`
	SubmittedBy   string    `gorm:"type:varchar(120)" json:"submitted_by"`
	SubmitterRole string    `gorm:"type:varchar(50)" json:"submitter_role"`
	QueueLength   int       `gorm:"not null;default:0" json:"queue_length"`
	WaitMinutes   int       `gorm:"not null;default:0" json:"wait_minutes"`
	Department    string    `gorm:"type:varchar(120);not null;index" json:"department"`
	IsValidated   *bool     `gorm:"not null;default:false" json:"is_validated"`
	CreatedAt     time.Time `gorm:"autoCreateTime;index" json:"created_at"`

	// Relationships
	Hospital Hospital `gorm:"foreignKey:HospitalID" json:"hospital,omitempty"`
}

func (QueueReport) TableName() string {
	return "queue_reports"
}

// IsExpired reports whether the observation is too old for current-state reads.
func (r *QueueReport) IsExpired() bool {
	return time.Since(r.CreatedAt) > QueueReportExpiry
}

// MarkValidated flags the report as staff-validated.
func (r *QueueReport) MarkValidated() {
	validated := true
	r.IsValidated = &validated
}
