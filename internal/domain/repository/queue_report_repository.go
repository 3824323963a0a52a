package repository

import (
	"context"
	"time"

	"github.com/anonymous-574/MediQ/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QueueReportRepository interface {
	Create(ctx context.Context, db *gorm.DB, report *entity.QueueReport) error
	// FindByHospitalSince returns reports for a hospital submitted after
	// since, oldest first.
	FindByHospitalSince(ctx context.Context, db *gorm.DB, hospitalID uuid.UUID, since time.Time) ([]entity.QueueReport, error)
	// FindByHospitalAndDepartmentSince is FindByHospitalSince narrowed to a
	// department label, oldest first.
	FindByHospitalAndDepartmentSince(ctx context.Context, db *gorm.DB, hospitalID uuid.UUID, department string, since time.Time) ([]entity.QueueReport, error)
	FindByHospitalID(ctx context.Context, db *gorm.DB, hospitalID uuid.UUID) ([]entity.QueueReport, error)
	MarkValidated(ctx context.Context, db *gorm.DB, reportCode string) (int64, error)
}
