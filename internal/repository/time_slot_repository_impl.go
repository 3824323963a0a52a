package repository

import (
	"context"
	"errors"
	"time"

	"github.com/anonymous-574/MediQ/internal/domain/entity"
	domainRepo "github.com/anonymous-574/MediQ/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type timeSlotRepository struct{}

func NewTimeSlotRepository() domainRepo.TimeSlotRepository {
	return &timeSlotRepository{}
}

func (r *timeSlotRepository) Create(ctx context.Context, db *gorm.DB, slot *entity.TimeSlot) error {
	return db.WithContext(ctx).Create(slot).Error
}

func (r *timeSlotRepository) FindByDoctorAndCode(ctx context.Context, db *gorm.DB, doctorID uuid.UUID, slotCode string) (*entity.TimeSlot, error) {
	var slot entity.TimeSlot
	err := db.WithContext(ctx).
		Where("doctor_id = ? AND slot_code = ?", doctorID, slotCode).
		First(&slot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &slot, nil
}

func (r *timeSlotRepository) FindAvailable(ctx context.Context, db *gorm.DB, filter *entity.SlotFilter) ([]entity.TimeSlot, error) {
	query := db.WithContext(ctx).Where("is_available = ?", true)

	if filter != nil {
		if filter.DoctorID != nil {
			query = query.Where("doctor_id = ?", *filter.DoctorID)
		}
		if filter.HospitalID != nil {
			query = query.Where("hospital_id = ?", *filter.HospitalID)
		}
		if filter.OnDate != nil {
			dayStart := filter.OnDate.UTC().Truncate(24 * time.Hour)
			dayEnd := dayStart.Add(24 * time.Hour)
			query = query.Where("start_time >= ? AND start_time < ?", dayStart, dayEnd)
		}
	}

	var slots []entity.TimeSlot
	err := query.Order("start_time ASC").Find(&slots).Error
	if err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *timeSlotRepository) CountAvailableOverlapping(ctx context.Context, db *gorm.DB, doctorID uuid.UUID, start, end time.Time) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&entity.TimeSlot{}).
		Where("doctor_id = ? AND is_available = ?", doctorID, true).
		Where("start_time < ? AND end_time > ?", end, start).
		Count(&count).Error
	return count, err
}

// Consume flips an available slot to consumed in a single conditional update.
// Affected rows 0 means the slot is gone or was consumed by a racing booking.
func (r *timeSlotRepository) Consume(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.WithContext(ctx).Model(&entity.TimeSlot{}).
		Where("id = ? AND is_available = ?", id, true).
		Update("is_available", false)
	return result.RowsAffected, result.Error
}

func (r *timeSlotRepository) Release(ctx context.Context, db *gorm.DB, doctorID uuid.UUID, slotCode string) (int64, error) {
	result := db.WithContext(ctx).Model(&entity.TimeSlot{}).
		Where("doctor_id = ? AND slot_code = ? AND is_available = ?", doctorID, slotCode, false).
		Update("is_available", true)
	return result.RowsAffected, result.Error
}

func (r *timeSlotRepository) Delete(ctx context.Context, db *gorm.DB, doctorID uuid.UUID, slotCode string) (int64, error) {
	result := db.WithContext(ctx).
		Where("doctor_id = ? AND slot_code = ? AND is_available = ?", doctorID, slotCode, true).
		Delete(&entity.TimeSlot{})
	return result.RowsAffected, result.Error
}
