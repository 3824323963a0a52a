package repository

import (
	"context"
	"time"

	"github.com/anonymous-574/MediQ/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TimeSlotRepository interface {
	Create(ctx context.Context, db *gorm.DB, slot *entity.TimeSlot) error
	FindByDoctorAndCode(ctx context.Context, db *gorm.DB, doctorID uuid.UUID, slotCode string) (*entity.TimeSlot, error)
	FindAvailable(ctx context.Context, db *gorm.DB, filter *entity.SlotFilter) ([]entity.TimeSlot, error)
	CountAvailableOverlapping(ctx context.Context, db *gorm.DB, doctorID uuid.UUID, start, end time.Time) (int64, error)
	// Consume atomically flips an available slot to consumed.
	// Returns affected rows: 1 = consumed, 0 = missing or already consumed.
	Consume(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error)
	Release(ctx context.Context, db *gorm.DB, doctorID uuid.UUID, slotCode string) (int64, error)
	Delete(ctx context.Context, db *gorm.DB, doctorID uuid.UUID, slotCode string) (int64, error)
}
