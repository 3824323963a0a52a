package repository

import (
	"context"

	"github.com/anonymous-574/MediQ/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type HospitalRepository interface {
	Create(ctx context.Context, db *gorm.DB, hospital *entity.Hospital) error
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Hospital, error)
	FindByCode(ctx context.Context, db *gorm.DB, hospitalCode string) (*entity.Hospital, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.Hospital, error)
	UpdateCongestion(ctx context.Context, db *gorm.DB, id uuid.UUID, level float64) (int64, error)
}
