package repository

import (
	"context"
	"time"

	"github.com/anonymous-574/MediQ/internal/domain/entity"
	domainRepo "github.com/anonymous-574/MediQ/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type queueReportRepository struct{}

func NewQueueReportRepository() domainRepo.QueueReportRepository {
	return &queueReportRepository{}
}

func (r *queueReportRepository) Create(ctx context.Context, db *gorm.DB, report *entity.QueueReport) error {
	return db.WithContext(ctx).Create(report).Error
}

func (r *queueReportRepository) FindByHospitalSince(ctx context.Context, db *gorm.DB, hospitalID uuid.UUID, since time.Time) ([]entity.QueueReport, error) {
	var reports []entity.QueueReport
	err := db.WithContext(ctx).
		Where("hospital_id = ? AND created_at >= ?", hospitalID, since).
		Order("created_at ASC").
		Find(&reports).Error
	if err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *queueReportRepository) FindByHospitalAndDepartmentSince(ctx context.Context, db *gorm.DB, hospitalID uuid.UUID, department string, since time.Time) ([]entity.QueueReport, error) {
	var reports []entity.QueueReport
	err := db.WithContext(ctx).
		Where("hospital_id = ? AND department = ? AND created_at >= ?", hospitalID, department, since).
		Order("created_at ASC").
		Find(&reports).Error
	if err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *queueReportRepository) FindByHospitalID(ctx context.Context, db *gorm.DB, hospitalID uuid.UUID) ([]entity.QueueReport, error) {
	var reports []entity.QueueReport
	err := db.WithContext(ctx).
		Where("hospital_id = ?", hospitalID).
		Order("created_at DESC").
		Find(&reports).Error
	if err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *queueReportRepository) MarkValidated(ctx context.Context, db *gorm.DB, reportCode string) (int64, error) {
	result := db.WithContext(ctx).Model(&entity.QueueReport{}).
		Where("report_code = ?", reportCode).
		Update("is_validated", true)
	return result.RowsAffected, result.Error
}
