package repository

import (
	"context"
	"errors"

	"github.com/anonymous-574/MediQ/internal/domain/entity"
	domainRepo "github.com/anonymous-574/MediQ/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type hospitalRepository struct{}

func NewHospitalRepository() domainRepo.HospitalRepository {
	return &hospitalRepository{}
}

func (r *hospitalRepository) Create(ctx context.Context, db *gorm.DB, hospital *entity.Hospital) error {
	return db.WithContext(ctx).Create(hospital).Error
}

func (r *hospitalRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Hospital, error) {
	var hospital entity.Hospital
	err := db.WithContext(ctx).Where("id = ?", id).First(&hospital).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &hospital, nil
}

func (r *hospitalRepository) FindByCode(ctx context.Context, db *gorm.DB, hospitalCode string) (*entity.Hospital, error) {
	var hospital entity.Hospital
	err := db.WithContext(ctx).Where("hospital_code = ?", hospitalCode).First(&hospital).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &hospital, nil
}

func (r *hospitalRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Hospital, error) {
	var hospitals []entity.Hospital
	err := db.WithContext(ctx).Order("hospital_code ASC").Find(&hospitals).Error
	if err != nil {
		return nil, err
	}
	return hospitals, nil
}

func (r *hospitalRepository) UpdateCongestion(ctx context.Context, db *gorm.DB, id uuid.UUID, level float64) (int64, error) {
	result := db.WithContext(ctx).Model(&entity.Hospital{}).
		Where("id = ?", id).
		Update("congestion_level", level)
	return result.RowsAffected, result.Error
}
