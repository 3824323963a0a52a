package repository

import (
	"context"

	"github.com/anonymous-574/MediQ/internal/domain/entity"
	domainRepo "github.com/anonymous-574/MediQ/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type symptomReportRepository struct{}

func NewSymptomReportRepository() domainRepo.SymptomReportRepository {
	return &symptomReportRepository{}
}

func (r *symptomReportRepository) Create(ctx context.Context, db *gorm.DB, report *entity.SymptomReport) error {
	return db.WithContext(ctx).Create(report).Error
}

func (r *symptomReportRepository) FindByPatientID(ctx context.Context, db *gorm.DB, patientID uuid.UUID) ([]entity.SymptomReport, error) {
	var reports []entity.SymptomReport
	err := db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("created_at DESC").
		Find(&reports).Error
	if err != nil {
		return nil, err
	}
	return reports, nil
}
