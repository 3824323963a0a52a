package repository

import (
	"context"

	"github.com/anonymous-574/MediQ/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SymptomReportRepository interface {
	Create(ctx context.Context, db *gorm.DB, report *entity.SymptomReport) error
	FindByPatientID(ctx context.Context, db *gorm.DB, patientID uuid.UUID) ([]entity.SymptomReport, error)
}
