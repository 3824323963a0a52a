package converter

import (
	"github.com/anonymous-574/MediQ/internal/delivery/dto"
	"github.com/anonymous-574/MediQ/internal/domain/entity"
)

// SymptomReportToResponse converts a SymptomReport entity to TriageResponse DTO
func SymptomReportToResponse(report *entity.SymptomReport) *dto.TriageResponse {
	if report == nil {
		return nil
	}

	return &dto.TriageResponse{
		ReportCode:      report.ReportCode,
		Symptoms:        report.Symptoms,
		UrgencyLevel:    report.UrgencyLevel,
		Classification:  report.Classification,
		Recommendations: report.RecommendationList(),
		CreatedAt:       report.CreatedAt,
	}
}

// SymptomReportsToResponses converts a slice of SymptomReport entities to slice of TriageResponse DTOs
func SymptomReportsToResponses(reports []entity.SymptomReport) []dto.TriageResponse {
	responses := make([]dto.TriageResponse, len(reports))
	for i := range reports {
		responses[i] = *SymptomReportToResponse(&reports[i])
	}
	return responses
}
