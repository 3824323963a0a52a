package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"github.com/anonymous-574/MediQ/internal/converter"
	"github.com/anonymous-574/MediQ/internal/delivery/dto"
	"github.com/anonymous-574/MediQ/internal/delivery/http/middleware"
	"github.com/anonymous-574/MediQ/internal/domain/entity"
	"github.com/anonymous-574/MediQ/internal/domain/repository"
	"github.com/anonymous-574/MediQ/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound       = errors.New("appointment not found")
	ErrActiveAppointmentExists   = errors.New("you already have an active appointment with this doctor")
	ErrAppointmentPast           = errors.New("cannot book an appointment in the past")
	ErrAppointmentNotCancellable = errors.New("appointment is not in a cancellable state")
	ErrInvalidStatusTransition   = errors.New("appointment status transition not allowed")
	ErrSlotUnavailable           = errors.New("slot is no longer available")
	ErrPatientNotRegistered      = errors.New("patient account is pending approval")
	ErrInvalidScheduledAt        = errors.New("invalid scheduled_at, use RFC 3339")
)

type BookingUsecase interface {
	Book(ctx context.Context, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error)
	Cancel(ctx context.Context, appointmentCode string) error
	UpdateStatus(ctx context.Context, appointmentCode string, req *dto.UpdateAppointmentStatusRequest) error
	ListForPatient(ctx context.Context) (*dto.AppointmentListResponse, error)
	ListForDoctor(ctx context.Context) (*dto.AppointmentListResponse, error)
}

type bookingUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	slotRepo        repository.TimeSlotRepository
	doctorRepo      repository.DoctorProfileRepository
	patientRepo     repository.PatientProfileRepository
	hospitalRepo    repository.HospitalRepository
	auditService    service.AuditService
	notifier        service.NotificationService
}

func NewBookingUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	slotRepo repository.TimeSlotRepository,
	doctorRepo repository.DoctorProfileRepository,
	patientRepo repository.PatientProfileRepository,
	hospitalRepo repository.HospitalRepository,
	auditService service.AuditService,
	notifier service.NotificationService,
) BookingUsecase {
	return &bookingUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		slotRepo:        slotRepo,
		doctorRepo:      doctorRepo,
		patientRepo:     patientRepo,
		hospitalRepo:    hospitalRepo,
		auditService:    auditService,
		notifier:        notifier,
	}
}

// Book commits a reservation for the logged-in patient.
//
// Flow:
// 1. Resolve patient, doctor (uuid or code) and hospital
// 2. Check no active appointment with this doctor
// 3. Generate appointment code, re-rolling on collision
// 4. In one transaction: consume the slot (conditional update) and insert
//    the appointment, so a consumed slot can never outlive a failed insert
func (u *bookingUsecase) Book(ctx context.Context, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	scheduledAt, err := time.Parse(time.RFC3339, req.ScheduledAt)
	if err != nil {
		return nil, ErrInvalidScheduledAt
	}
	if scheduledAt.Before(time.Now()) {
		return nil, ErrAppointmentPast
	}

	// Step 1: Resolve the three parties
	patient, err := u.patientRepo.FindByUserID(ctx, u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to find patient profile %s: %+v", userID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}
	if patient.IsRegistered == nil || !*patient.IsRegistered {
		return nil, ErrPatientNotRegistered
	}

	doctor, err := u.resolveDoctor(ctx, req.DoctorRef)
	if err != nil {
		return nil, err
	}

	hospital, err := u.hospitalRepo.FindByCode(ctx, u.db, req.HospitalCode)
	if err != nil {
		u.log.Warnf("Failed to find hospital %s: %+v", req.HospitalCode, err)
		return nil, err
	}
	if hospital == nil {
		return nil, ErrHospitalNotFound
	}

	// Step 2: One active appointment per patient-doctor pair
	existing, err := u.appointmentRepo.FindScheduledByPatientAndDoctor(ctx, u.db, userID, doctor.UserID)
	if err != nil {
		u.log.Warnf("Failed to check active appointment: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrActiveAppointmentExists
	}

	// Step 3: Resolve the slot outside the transaction; consumption waits
	// for the write phase below.
	var slot *entity.TimeSlot
	if req.SlotCode != "" {
		slot, err = u.slotRepo.FindByDoctorAndCode(ctx, u.db, doctor.UserID, req.SlotCode)
		if err != nil {
			u.log.Warnf("Failed to find slot %s: %+v", req.SlotCode, err)
			return nil, err
		}
		if slot == nil {
			return nil, ErrSlotNotFound
		}
	}

	// Step 4: Generate appointment code with collision re-check
	appointmentCode, err := u.uniqueAppointmentCode(ctx, scheduledAt)
	if err != nil {
		return nil, err
	}

	appointmentType := req.AppointmentType
	if appointmentType == "" {
		appointmentType = entity.AppointmentTypeOPD
	}

	appointment := &entity.Appointment{
		AppointmentCode: appointmentCode,
		PatientID:       userID,
		DoctorID:        doctor.UserID,
		HospitalID:      hospital.ID,
		ScheduledAt:     scheduledAt,
		Status:          entity.AppointmentStatusScheduled,
		AppointmentType: appointmentType,
		Notes:           req.Notes,
	}

	// Step 5: Consume the slot and insert the appointment as one unit. The
	// conditional update is the critical section: two racing bookings for
	// one slot cannot both win, and a rollback undoes the consumption.
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if slot != nil {
		affected, err := u.slotRepo.Consume(ctx, tx, slot.ID)
		if err != nil {
			u.log.Warnf("Failed to consume slot %s: %+v", req.SlotCode, err)
			return nil, err
		}
		if affected == 0 {
			return nil, ErrSlotUnavailable
		}
	}

	if err := u.appointmentRepo.Create(ctx, tx, appointment); err != nil {
		u.log.Warnf("Failed to insert appointment: %+v", err)

		// The partial unique index catches the race the pre-check missed
		if isDuplicateKeyError(err, "uq_active_patient_doctor") {
			return nil, ErrActiveAppointmentExists
		}
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Errorf("Failed to commit booking %s: %+v", appointmentCode, err)
		return nil, err
	}

	u.auditService.LogAction(ctx, u.db, &userID, entity.AuditActionAppointmentBook, "appointment", appointmentCode, req.DoctorRef)
	u.log.Infof("Appointment booked: code=%s, patient=%s, doctor=%s", appointmentCode, patient.PatientCode, doctor.DoctorCode)

	recipient := patient.PatientCode
	if email, ok := middleware.GetUserEmailFromContext(ctx); ok {
		recipient = email
	}
	u.notifier.SendBookingConfirmation(appointment, recipient)

	resp := converter.AppointmentToResponse(appointment)
	resp.Doctor = converter.DoctorProfileToResponse(doctor)
	return resp, nil
}

// Cancel transitions the logged-in patient's appointment from Scheduled to
// Cancelled. The consumed slot is not resurrected; release is an explicit
// doctor action.
func (u *bookingUsecase) Cancel(ctx context.Context, appointmentCode string) error {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return errors.New("user not found in context")
	}

	appointment, err := u.appointmentRepo.FindByCodeAndPatient(ctx, u.db, appointmentCode, userID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", appointmentCode, err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}

	affected, err := u.appointmentRepo.UpdateStatus(ctx, u.db, appointment.ID,
		entity.AppointmentStatusScheduled, entity.AppointmentStatusCancelled)
	if err != nil {
		u.log.Warnf("Failed to cancel appointment %s: %+v", appointmentCode, err)
		return err
	}
	if affected == 0 {
		return ErrAppointmentNotCancellable
	}

	u.auditService.LogAction(ctx, u.db, &userID, entity.AuditActionAppointmentCancel, "appointment", appointmentCode, nil)
	u.log.Infof("Appointment cancelled: code=%s, patient=%s", appointmentCode, userID)
	return nil
}

// UpdateStatus lets the owning doctor complete or cancel an appointment.
// Only Scheduled appointments transition; terminal states never move.
func (u *bookingUsecase) UpdateStatus(ctx context.Context, appointmentCode string, req *dto.UpdateAppointmentStatusRequest) error {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return errors.New("user not found in context")
	}

	target := entity.AppointmentStatus(req.Status)
	if target != entity.AppointmentStatusCompleted && target != entity.AppointmentStatusCancelled {
		return ErrInvalidStatusTransition
	}

	appointment, err := u.appointmentRepo.FindByCodeAndDoctor(ctx, u.db, appointmentCode, userID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", appointmentCode, err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}

	affected, err := u.appointmentRepo.UpdateStatus(ctx, u.db, appointment.ID,
		entity.AppointmentStatusScheduled, target)
	if err != nil {
		u.log.Warnf("Failed to update appointment %s status: %+v", appointmentCode, err)
		return err
	}
	if affected == 0 {
		return ErrInvalidStatusTransition
	}

	u.auditService.LogAction(ctx, u.db, &userID, entity.AuditActionAppointmentStatus, "appointment", appointmentCode, string(target))
	u.log.Infof("Appointment status updated: code=%s, status=%s", appointmentCode, target)
	return nil
}

// ListForPatient returns all appointments of the logged-in patient.
func (u *bookingUsecase) ListForPatient(ctx context.Context) (*dto.AppointmentListResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	appointments, err := u.appointmentRepo.FindByPatientID(ctx, u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to find appointments for patient %s: %+v", userID, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

// ListForDoctor returns all appointments held with the logged-in doctor.
func (u *bookingUsecase) ListForDoctor(ctx context.Context) (*dto.AppointmentListResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	appointments, err := u.appointmentRepo.FindByDoctorID(ctx, u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to find appointments for doctor %s: %+v", userID, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

// resolveDoctor accepts either the internal uuid or the external doctor code.
func (u *bookingUsecase) resolveDoctor(ctx context.Context, ref string) (*entity.DoctorProfile, error) {
	var (
		doctor *entity.DoctorProfile
		err    error
	)

	if id, parseErr := uuid.Parse(ref); parseErr == nil {
		doctor, err = u.doctorRepo.FindByUserID(ctx, u.db, id)
	} else {
		doctor, err = u.doctorRepo.FindByCode(ctx, u.db, ref)
	}
	if err != nil {
		u.log.Warnf("Failed to resolve doctor %s: %+v", ref, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}
	return doctor, nil
}

// uniqueAppointmentCode rolls codes until one is free. Collisions on six
// random hex chars are rare; the retry bound keeps the loop total.
func (u *bookingUsecase) uniqueAppointmentCode(ctx context.Context, scheduledAt time.Time) (string, error) {
	for i := 0; i < 5; i++ {
		code := generateAppointmentCode(scheduledAt)
		exists, err := u.appointmentRepo.CodeExists(ctx, u.db, code)
		if err != nil {
			u.log.Warnf("Failed to check appointment code %s: %+v", code, err)
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
	return "", errors.New("could not generate a unique appointment code")
}

// generateAppointmentCode generates a unique appointment code: APT-YYYYMMDD-XXXXXX
func generateAppointmentCode(scheduledAt time.Time) string {
	dateStr := scheduledAt.UTC().Format("20060102")
	randomBytes := make([]byte, 3)
	rand.Read(randomBytes)
	return fmt.Sprintf("APT-%s-%06X", dateStr, randomBytes)
}
