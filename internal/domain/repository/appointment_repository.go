package repository

import (
	"context"

	"github.com/anonymous-574/MediQ/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error
	FindByCodeAndDoctor(ctx context.Context, db *gorm.DB, appointmentCode string, doctorID uuid.UUID) (*entity.Appointment, error)
	FindByCodeAndPatient(ctx context.Context, db *gorm.DB, appointmentCode string, patientID uuid.UUID) (*entity.Appointment, error)
	FindScheduledByPatientAndDoctor(ctx context.Context, db *gorm.DB, patientID, doctorID uuid.UUID) (*entity.Appointment, error)
	FindByPatientID(ctx context.Context, db *gorm.DB, patientID uuid.UUID) ([]entity.Appointment, error)
	FindByDoctorID(ctx context.Context, db *gorm.DB, doctorID uuid.UUID) ([]entity.Appointment, error)
	CountScheduledByHospital(ctx context.Context, db *gorm.DB, hospitalID uuid.UUID) (int64, error)
	// UpdateStatus transitions an appointment only when its current status
	// matches from. Returns affected rows: 0 = concurrent transition lost.
	UpdateStatus(ctx context.Context, db *gorm.DB, id uuid.UUID, from, to entity.AppointmentStatus) (int64, error)
	CodeExists(ctx context.Context, db *gorm.DB, appointmentCode string) (bool, error)
}
