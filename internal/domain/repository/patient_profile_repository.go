package repository

import (
	"context"

	"github.com/anonymous-574/MediQ/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PatientProfileRepository interface {
	Create(ctx context.Context, db *gorm.DB, profile *entity.PatientProfile) error
	FindByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*entity.PatientProfile, error)
	FindByCode(ctx context.Context, db *gorm.DB, patientCode string) (*entity.PatientProfile, error)
	SetRegistered(ctx context.Context, db *gorm.DB, userID uuid.UUID, registered bool) (int64, error)
}
