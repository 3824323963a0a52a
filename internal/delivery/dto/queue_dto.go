package dto

import "time"

// Request DTOs

type SubmitQueueReportRequest struct {
	HospitalCode string `json:"hospital_code" validate:"required,max=50"`
	Department   string `json:"department" validate:"required,max=120"`
	QueueLength  int    `json:"queue_length" validate:"gte=0"`
	WaitMinutes  int    `json:"wait_minutes" validate:"gte=0"`
}

// Response DTOs

type QueueReportResponse struct {
	ReportCode    string    `json:"report_code"`
	Department    string    `json:"department"`
	QueueLength   int       `json:"queue_length"`
	WaitMinutes   int       `json:"wait_minutes"`
	SubmittedBy   string    `json:"submitted_by"`
	SubmitterRole string    `json:"submitter_role,omitempty"`
	IsValidated   bool      `json:"is_validated"`
	IsExpired     bool      `json:"is_expired"`
	CreatedAt     time.Time `json:"created_at"`
}

type QueueReportListResponse struct {
	Reports []QueueReportResponse `json:"reports"`
	Total   int                   `json:"total"`
}

type WaitEstimateResponse struct {
	HospitalCode         string `json:"hospital_code"`
	Department           string `json:"department"`
	PredictedWaitMinutes int    `json:"predicted_wait_minutes"`
}

type WaitTrendResponse struct {
	HospitalCode  string  `json:"hospital_code"`
	Department    string  `json:"department"`
	Trend         string  `json:"trend"`
	ChangePercent float64 `json:"change_percent"`
}
