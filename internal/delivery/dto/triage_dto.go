package dto

import "time"

// Request DTOs

type TriageRequest struct {
	Symptoms string `json:"symptoms" validate:"max=2000"`
}

// Response DTOs

type TriageResponse struct {
	ReportCode      string    `json:"report_code,omitempty"`
	Symptoms        string    `json:"symptoms"`
	UrgencyLevel    string    `json:"urgency_level"`
	Classification  string    `json:"classification"`
	Recommendations []string  `json:"recommendations"`
	CreatedAt       time.Time `json:"created_at,omitempty"`
}

type TriageHistoryResponse struct {
	Reports []TriageResponse `json:"reports"`
	Total   int              `json:"total"`
}
