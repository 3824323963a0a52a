package usecase

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/anonymous-574/MediQ/config"
	"github.com/anonymous-574/MediQ/internal/converter"
	"github.com/anonymous-574/MediQ/internal/delivery/dto"
	"github.com/anonymous-574/MediQ/internal/delivery/http/middleware"
	"github.com/anonymous-574/MediQ/internal/domain/entity"
	"github.com/anonymous-574/MediQ/internal/domain/repository"
	"github.com/anonymous-574/MediQ/internal/service"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrReportNotFound = errors.New("queue report not found")

// Trend labels returned by Trend.
const (
	TrendIncreasing       = "increasing"
	TrendDecreasing       = "decreasing"
	TrendStable           = "stable"
	TrendInsufficientData = "insufficient_data"
)

const (
	reportHistoryWindow = 24 * time.Hour
	trendWindow         = 6 * time.Hour
	trendMinReports     = 4
	trendThresholdPct   = 10.0
)

type QueueUsecase interface {
	PredictWait(ctx context.Context, hospitalCode, department string) (*dto.WaitEstimateResponse, error)
	Trend(ctx context.Context, hospitalCode, department string) (*dto.WaitTrendResponse, error)
	SubmitReport(ctx context.Context, req *dto.SubmitQueueReportRequest) (*dto.QueueReportResponse, error)
	ValidateReport(ctx context.Context, reportCode string) error
	ListReports(ctx context.Context, hospitalCode string) (*dto.QueueReportListResponse, error)
}

type queueUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	reportRepo      repository.QueueReportRepository
	appointmentRepo repository.AppointmentRepository
	hospitalRepo    repository.HospitalRepository
	redisClient     *redis.Client
	estimateCfg     config.EstimateConfig
	auditService    service.AuditService
}

func NewQueueUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	reportRepo repository.QueueReportRepository,
	appointmentRepo repository.AppointmentRepository,
	hospitalRepo repository.HospitalRepository,
	redisClient *redis.Client,
	estimateCfg config.EstimateConfig,
	auditService service.AuditService,
) QueueUsecase {
	return &queueUsecase{
		db:              db,
		log:             log,
		reportRepo:      reportRepo,
		appointmentRepo: appointmentRepo,
		hospitalRepo:    hospitalRepo,
		redisClient:     redisClient,
		estimateCfg:     estimateCfg,
		auditService:    auditService,
	}
}

// PredictWait estimates the wait in minutes for a hospital department.
//
// The estimate starts from scheduled load (base + per-appointment minutes)
// and, when the hospital has crowd reports from the last 24h, blends in
// their hospital-wide average with equal weight. The result truncates to whole minutes and never drops
// below the configured floor. Estimates are served from a short-lived Redis
// cache; cache errors degrade to direct computation.
func (u *queueUsecase) PredictWait(ctx context.Context, hospitalCode, department string) (*dto.WaitEstimateResponse, error) {
	cacheKey := fmt.Sprintf("wait:%s:%s", hospitalCode, department)

	if u.redisClient != nil {
		cached, err := u.redisClient.Get(ctx, cacheKey).Result()
		if err == nil {
			var resp dto.WaitEstimateResponse
			if unmarshalErr := json.Unmarshal([]byte(cached), &resp); unmarshalErr == nil {
				return &resp, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			u.log.Warnf("Failed to read wait estimate cache (non-fatal): %+v", err)
		}
	}

	hospital, err := u.hospitalRepo.FindByCode(ctx, u.db, hospitalCode)
	if err != nil {
		u.log.Warnf("Failed to find hospital %s: %+v", hospitalCode, err)
		return nil, err
	}
	if hospital == nil {
		return nil, ErrHospitalNotFound
	}

	scheduled, err := u.appointmentRepo.CountScheduledByHospital(ctx, u.db, hospital.ID)
	if err != nil {
		u.log.Warnf("Failed to count scheduled appointments for %s: %+v", hospitalCode, err)
		return nil, err
	}

	// Reports blend hospital-wide: a busy hospital is busy at every desk,
	// and sparse crowd data cannot support per-department averages.
	since := time.Now().Add(-reportHistoryWindow)
	reports, err := u.reportRepo.FindByHospitalSince(ctx, u.db, hospital.ID, since)
	if err != nil {
		u.log.Warnf("Failed to load queue reports for %s: %+v", hospitalCode, err)
		return nil, err
	}

	estimate := float64(u.estimateCfg.BaseMinutes) + float64(u.estimateCfg.PerAppointmentMinutes)*float64(scheduled)

	if len(reports) > 0 {
		var sum int
		for _, r := range reports {
			sum += r.WaitMinutes
		}
		reportAvg := float64(sum) / float64(len(reports))
		estimate = (estimate + reportAvg) / 2
	}

	minutes := int(estimate)
	if minutes < u.estimateCfg.FloorMinutes {
		minutes = u.estimateCfg.FloorMinutes
	}

	resp := &dto.WaitEstimateResponse{
		HospitalCode:         hospitalCode,
		Department:           department,
		PredictedWaitMinutes: minutes,
	}

	if u.redisClient != nil {
		payload, _ := json.Marshal(resp)
		if err := u.redisClient.Set(ctx, cacheKey, payload, u.estimateCfg.CacheTTL).Err(); err != nil {
			u.log.Warnf("Failed to cache wait estimate (non-fatal): %+v", err)
		}
	}

	return resp, nil
}

// Trend classifies the direction of reported waits over the last six hours.
// The window splits into chronological halves (the first half takes the odd
// item) and the halves' means are compared. Fewer than four reports cannot
// support a direction and yield insufficient_data.
func (u *queueUsecase) Trend(ctx context.Context, hospitalCode, department string) (*dto.WaitTrendResponse, error) {
	hospital, err := u.hospitalRepo.FindByCode(ctx, u.db, hospitalCode)
	if err != nil {
		u.log.Warnf("Failed to find hospital %s: %+v", hospitalCode, err)
		return nil, err
	}
	if hospital == nil {
		return nil, ErrHospitalNotFound
	}

	since := time.Now().Add(-trendWindow)
	reports, err := u.reportRepo.FindByHospitalAndDepartmentSince(ctx, u.db, hospital.ID, department, since)
	if err != nil {
		u.log.Warnf("Failed to load queue reports for %s: %+v", hospitalCode, err)
		return nil, err
	}

	resp := &dto.WaitTrendResponse{
		HospitalCode: hospitalCode,
		Department:   department,
	}

	if len(reports) < trendMinReports {
		resp.Trend = TrendInsufficientData
		return resp, nil
	}

	mid := (len(reports) + 1) / 2
	firstMean := meanWait(reports[:mid])
	secondMean := meanWait(reports[mid:])

	if firstMean == 0 {
		resp.Trend = TrendStable
		return resp, nil
	}

	change := (secondMean - firstMean) / firstMean * 100
	resp.ChangePercent = change

	switch {
	case change > trendThresholdPct:
		resp.Trend = TrendIncreasing
	case change < -trendThresholdPct:
		resp.Trend = TrendDecreasing
	default:
		resp.Trend = TrendStable
	}

	return resp, nil
}

// SubmitReport records a queue observation from the logged-in patient or
// nurse and drops the cached estimate for that department.
func (u *queueUsecase) SubmitReport(ctx context.Context, req *dto.SubmitQueueReportRequest) (*dto.QueueReportResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	hospital, err := u.hospitalRepo.FindByCode(ctx, u.db, req.HospitalCode)
	if err != nil {
		u.log.Warnf("Failed to find hospital %s: %+v", req.HospitalCode, err)
		return nil, err
	}
	if hospital == nil {
		return nil, ErrHospitalNotFound
	}

	submittedBy := userID.String()
	if email, ok := middleware.GetUserEmailFromContext(ctx); ok {
		submittedBy = email
	}

	submitterRole := ""
	if roleID, ok := middleware.GetRoleIDFromContext(ctx); ok {
		submitterRole = entity.RoleNameByID(roleID)
	}

	report := &entity.QueueReport{
		ReportCode:    generateReportCode("QR"),
		HospitalID:    hospital.ID,
		SubmittedBy:   submittedBy,
		SubmitterRole: submitterRole,
		QueueLength:   req.QueueLength,
		WaitMinutes:   req.WaitMinutes,
		Department:    req.Department,
	}

	if err := u.reportRepo.Create(ctx, u.db, report); err != nil {
		u.log.Warnf("Failed to create queue report: %+v", err)
		return nil, err
	}

	if u.redisClient != nil {
		cacheKey := fmt.Sprintf("wait:%s:%s", req.HospitalCode, req.Department)
		if err := u.redisClient.Del(ctx, cacheKey).Err(); err != nil {
			u.log.Warnf("Failed to invalidate wait estimate cache (non-fatal): %+v", err)
		}
	}

	u.auditService.LogAction(ctx, u.db, &userID, entity.AuditActionQueueReportSubmit, "queue_report", report.ReportCode, req.Department)
	return converter.QueueReportToResponse(report), nil
}

// ValidateReport marks a report as staff-validated.
func (u *queueUsecase) ValidateReport(ctx context.Context, reportCode string) error {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return errors.New("user not found in context")
	}

	affected, err := u.reportRepo.MarkValidated(ctx, u.db, reportCode)
	if err != nil {
		u.log.Warnf("Failed to validate queue report %s: %+v", reportCode, err)
		return err
	}
	if affected == 0 {
		return ErrReportNotFound
	}

	u.auditService.LogAction(ctx, u.db, &userID, entity.AuditActionQueueReportApprove, "queue_report", reportCode, nil)
	return nil
}

// ListReports returns a hospital's reports, newest first, each flagged with
// its expiry state.
func (u *queueUsecase) ListReports(ctx context.Context, hospitalCode string) (*dto.QueueReportListResponse, error) {
	hospital, err := u.hospitalRepo.FindByCode(ctx, u.db, hospitalCode)
	if err != nil {
		u.log.Warnf("Failed to find hospital %s: %+v", hospitalCode, err)
		return nil, err
	}
	if hospital == nil {
		return nil, ErrHospitalNotFound
	}

	reports, err := u.reportRepo.FindByHospitalID(ctx, u.db, hospital.ID)
	if err != nil {
		u.log.Warnf("Failed to list queue reports for %s: %+v", hospitalCode, err)
		return nil, err
	}

	return &dto.QueueReportListResponse{
		Reports: converter.QueueReportsToResponses(reports),
		Total:   len(reports),
	}, nil
}

func meanWait(reports []entity.QueueReport) float64 {
	if len(reports) == 0 {
		return 0
	}
	var sum int
	for _, r := range reports {
		sum += r.WaitMinutes
	}
	return float64(sum) / float64(len(reports))
}

// generateReportCode generates a random report code: <prefix>-XXXXXX
func generateReportCode(prefix string) string {
	randomBytes := make([]byte, 3)
	rand.Read(randomBytes)
	return fmt.Sprintf("%s-%06X", prefix, randomBytes)
}
