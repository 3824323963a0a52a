package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/anonymous-574/MediQ/internal/delivery/dto"
	"github.com/anonymous-574/MediQ/internal/domain/entity"
	"github.com/anonymous-574/MediQ/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newTriageFixture() (TriageUsecase, *MockSymptomReportRepository, *stubNotifier) {
	reportRepo := &MockSymptomReportRepository{}
	notifier := &stubNotifier{}
	uc := NewTriageUsecase(nil, newTestLogger(), reportRepo, noopAuditService{}, notifier)
	return uc, reportRepo, notifier
}

func TestAnalyze_PersistsClassification(t *testing.T) {
	uc, reportRepo, notifier := newTriageFixture()

	var created *entity.SymptomReport
	reportRepo.CreateFunc = func(ctx context.Context, db *gorm.DB, report *entity.SymptomReport) error {
		created = report
		return nil
	}

	patientID := uuid.New()
	resp, err := uc.Analyze(authedCtx(patientID), &dto.TriageRequest{Symptoms: "fever and a persistent cough"})

	assert.NoError(t, err)
	assert.NotNil(t, created)
	assert.Equal(t, patientID, created.PatientID)
	assert.Equal(t, service.UrgencyMedium, created.UrgencyLevel)
	assert.Equal(t, service.ClassificationInfection, created.Classification)
	assert.Regexp(t, `^SR-[0-9A-F]{6}$`, created.ReportCode)

	assert.Equal(t, service.UrgencyMedium, resp.UrgencyLevel)
	assert.Contains(t, resp.Recommendations, "Book an appointment with a physician")
	assert.Zero(t, notifier.emergencyAlerts)
}

func TestAnalyze_EmergencyInput(t *testing.T) {
	uc, _, notifier := newTriageFixture()

	resp, err := uc.Analyze(authedCtx(uuid.New()), &dto.TriageRequest{Symptoms: "crushing chest pain"})

	assert.NoError(t, err)
	assert.Equal(t, service.UrgencyHigh, resp.UrgencyLevel)
	assert.Equal(t, service.ClassificationEmergency, resp.Classification)
	assert.Equal(t, 1, notifier.emergencyAlerts)
}

func TestAnalyze_EmptySymptomsDegrade(t *testing.T) {
	uc, _, _ := newTriageFixture()

	resp, err := uc.Analyze(authedCtx(uuid.New()), &dto.TriageRequest{Symptoms: ""})

	assert.NoError(t, err)
	assert.Equal(t, service.UrgencyUnknown, resp.UrgencyLevel)
	assert.Equal(t, service.ClassificationInsufficient, resp.Classification)
}

func TestAnalyze_PersistenceFailure(t *testing.T) {
	uc, reportRepo, _ := newTriageFixture()

	reportRepo.CreateFunc = func(ctx context.Context, db *gorm.DB, report *entity.SymptomReport) error {
		return errRepoDown
	}

	_, err := uc.Analyze(authedCtx(uuid.New()), &dto.TriageRequest{Symptoms: "mild headache"})

	assert.ErrorIs(t, err, errRepoDown)
}

func TestAnalyze_MissingIdentity(t *testing.T) {
	uc, _, _ := newTriageFixture()

	_, err := uc.Analyze(context.Background(), &dto.TriageRequest{Symptoms: "mild headache"})

	assert.Error(t, err)
}

func TestHistory_ReturnsPatientReports(t *testing.T) {
	uc, reportRepo, _ := newTriageFixture()

	patientID := uuid.New()
	reportRepo.FindByPatientIDFunc = func(ctx context.Context, db *gorm.DB, id uuid.UUID) ([]entity.SymptomReport, error) {
		assert.Equal(t, patientID, id)
		return []entity.SymptomReport{
			{ReportCode: "SR-000001", PatientID: patientID, UrgencyLevel: service.UrgencyLow, CreatedAt: time.Now()},
			{ReportCode: "SR-000002", PatientID: patientID, UrgencyLevel: service.UrgencyHigh, CreatedAt: time.Now().Add(-time.Hour)},
		}, nil
	}

	resp, err := uc.History(authedCtx(patientID))

	assert.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
	assert.Len(t, resp.Reports, 2)
}
