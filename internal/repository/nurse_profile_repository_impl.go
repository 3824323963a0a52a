package repository

import (
	"context"
	"errors"

	"github.com/anonymous-574/MediQ/internal/domain/entity"
	domainRepo "github.com/anonymous-574/MediQ/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type nurseProfileRepository struct{}

func NewNurseProfileRepository() domainRepo.NurseProfileRepository {
	return &nurseProfileRepository{}
}

func (r *nurseProfileRepository) Create(ctx context.Context, db *gorm.DB, profile *entity.NurseProfile) error {
	return db.WithContext(ctx).Create(profile).Error
}

func (r *nurseProfileRepository) FindByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*entity.NurseProfile, error) {
	var profile entity.NurseProfile
	err := db.WithContext(ctx).Preload("User").Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}
