package converter

import (
	"github.com/anonymous-574/MediQ/internal/delivery/dto"
	"github.com/anonymous-574/MediQ/internal/domain/entity"
)

// QueueReportToResponse converts a QueueReport entity to QueueReportResponse DTO
func QueueReportToResponse(report *entity.QueueReport) *dto.QueueReportResponse {
	if report == nil {
		return nil
	}

	resp := &dto.QueueReportResponse{
		ReportCode:    report.ReportCode,
		Department:    report.Department,
		QueueLength:   report.QueueLength,
		WaitMinutes:   report.WaitMinutes,
		SubmittedBy:   report.SubmittedBy,
		SubmitterRole: report.SubmitterRole,
		IsExpired:     report.IsExpired(),
		CreatedAt:     report.CreatedAt,
	}
	if report.IsValidated != nil {
		resp.IsValidated = *report.IsValidated
	}
	return resp
}

// QueueReportsToResponses converts a slice of QueueReport entities to slice of QueueReportResponse DTOs
func QueueReportsToResponses(reports []entity.QueueReport) []dto.QueueReportResponse {
	responses := make([]dto.QueueReportResponse, len(reports))
	for i := range reports {
		responses[i] = *QueueReportToResponse(&reports[i])
	}
	return responses
}
