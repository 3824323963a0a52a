package repository

import (
	"context"

	"github.com/anonymous-574/MediQ/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DoctorProfileRepository interface {
	Create(ctx context.Context, db *gorm.DB, profile *entity.DoctorProfile) error
	FindByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*entity.DoctorProfile, error)
	FindByCode(ctx context.Context, db *gorm.DB, doctorCode string) (*entity.DoctorProfile, error)
	FindByHospitalID(ctx context.Context, db *gorm.DB, hospitalID uuid.UUID) ([]entity.DoctorProfile, error)
	Update(ctx context.Context, db *gorm.DB, profile *entity.DoctorProfile) error
}
