package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/anonymous-574/MediQ/internal/converter"
	"github.com/anonymous-574/MediQ/internal/delivery/dto"
	"github.com/anonymous-574/MediQ/internal/delivery/http/middleware"
	"github.com/anonymous-574/MediQ/internal/domain/entity"
	"github.com/anonymous-574/MediQ/internal/domain/repository"
	"github.com/anonymous-574/MediQ/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type TriageUsecase interface {
	Analyze(ctx context.Context, req *dto.TriageRequest) (*dto.TriageResponse, error)
	History(ctx context.Context) (*dto.TriageHistoryResponse, error)
}

type triageUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	reportRepo   repository.SymptomReportRepository
	auditService service.AuditService
	notifier     service.NotificationService
}

func NewTriageUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	reportRepo repository.SymptomReportRepository,
	auditService service.AuditService,
	notifier service.NotificationService,
) TriageUsecase {
	return &triageUsecase{
		db:           db,
		log:          log,
		reportRepo:   reportRepo,
		auditService: auditService,
		notifier:     notifier,
	}
}

// Analyze classifies the patient's symptoms and persists the result. The
// classification itself never fails; only persistence can.
func (u *triageUsecase) Analyze(ctx context.Context, req *dto.TriageRequest) (*dto.TriageResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	result := service.AnalyzeSymptoms(req.Symptoms)

	report := &entity.SymptomReport{
		ReportCode:      generateReportCode("SR"),
		PatientID:       userID,
		Symptoms:        req.Symptoms,
		UrgencyLevel:    result.Urgency,
		Classification:  result.Classification,
		Recommendations: strings.Join(result.Recommendations, ";"),
	}

	if err := u.reportRepo.Create(ctx, u.db, report); err != nil {
		u.log.Warnf("Failed to create symptom report: %+v", err)
		return nil, err
	}

	u.auditService.LogAction(ctx, u.db, &userID, entity.AuditActionTriageSubmit, "symptom_report", report.ReportCode, result.Urgency)
	if report.IsEmergency() {
		u.notifier.SendEmergencyAlert(report)
	}

	return converter.SymptomReportToResponse(report), nil
}

// History returns the logged-in patient's past triage results, newest first.
func (u *triageUsecase) History(ctx context.Context) (*dto.TriageHistoryResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	reports, err := u.reportRepo.FindByPatientID(ctx, u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to list symptom reports for %s: %+v", userID, err)
		return nil, err
	}

	return &dto.TriageHistoryResponse{
		Reports: converter.SymptomReportsToResponses(reports),
		Total:   len(reports),
	}, nil
}
