package repository

import (
	"context"

	"github.com/anonymous-574/MediQ/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NurseProfileRepository interface {
	Create(ctx context.Context, db *gorm.DB, profile *entity.NurseProfile) error
	FindByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*entity.NurseProfile, error)
}
