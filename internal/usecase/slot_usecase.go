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

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrSlotNotFound     = errors.New("slot not found")
	ErrSlotNotAvailable = errors.New("slot is not available")
	ErrDoctorNotFound   = errors.New("doctor not found")
	ErrHospitalNotFound = errors.New("hospital not found")
	ErrInvalidSlotDate  = errors.New("invalid date format, use YYYY-MM-DD")
)

type SlotUsecase interface {
	CreateSlots(ctx context.Context, req *dto.CreateSlotsRequest) (*dto.CreateSlotsResponse, error)
	ListAvailableSlots(ctx context.Context, doctorCode, hospitalCode, date string) (*dto.SlotListResponse, error)
	ReleaseSlot(ctx context.Context, slotCode string) error
	DeleteSlot(ctx context.Context, slotCode string) error
}

type slotUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	slotRepo     repository.TimeSlotRepository
	doctorRepo   repository.DoctorProfileRepository
	hospitalRepo repository.HospitalRepository
	auditService service.AuditService
}

func NewSlotUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	slotRepo repository.TimeSlotRepository,
	doctorRepo repository.DoctorProfileRepository,
	hospitalRepo repository.HospitalRepository,
	auditService service.AuditService,
) SlotUsecase {
	return &slotUsecase{
		db:           db,
		log:          log,
		slotRepo:     slotRepo,
		doctorRepo:   doctorRepo,
		hospitalRepo: hospitalRepo,
		auditService: auditService,
	}
}

// CreateSlots registers a batch of availability slots for the logged-in
// doctor. Valid items are created and invalid items are rejected with a
// reason; one bad item never sinks the batch.
func (u *slotUsecase) CreateSlots(ctx context.Context, req *dto.CreateSlotsRequest) (*dto.CreateSlotsResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	doctor, err := u.doctorRepo.FindByUserID(ctx, u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile %s: %+v", userID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	resp := &dto.CreateSlotsResponse{
		Created:  []dto.SlotResponse{},
		Rejected: []dto.RejectedSlot{},
	}

	// Accepted items from this batch, to catch intra-batch overlaps that
	// the database cannot see yet.
	var accepted []*entity.TimeSlot

	for _, item := range req.Slots {
		slot, reason := u.buildSlot(ctx, doctor, &item, accepted)
		if reason != "" {
			resp.Rejected = append(resp.Rejected, dto.RejectedSlot{SlotCode: item.SlotCode, Reason: reason})
			continue
		}

		if err := u.slotRepo.Create(ctx, u.db, slot); err != nil {
			if isDuplicateKeyError(err, "idx_doctor_slot_code") {
				resp.Rejected = append(resp.Rejected, dto.RejectedSlot{SlotCode: slot.SlotCode, Reason: "slot code already exists for this doctor"})
				continue
			}
			u.log.Warnf("Failed to create slot %s for doctor %s: %+v", slot.SlotCode, doctor.DoctorCode, err)
			return nil, err
		}

		accepted = append(accepted, slot)
		created := converter.TimeSlotToResponse(slot)
		created.DoctorCode = doctor.DoctorCode
		created.HospitalCode = item.HospitalCode
		resp.Created = append(resp.Created, *created)
	}

	if len(accepted) > 0 {
		u.auditService.LogAction(ctx, u.db, &userID, entity.AuditActionSlotCreate, "time_slot", doctor.DoctorCode, len(accepted))
	}

	u.log.Infof("Slot batch for doctor %s: created=%d, rejected=%d", doctor.DoctorCode, len(resp.Created), len(resp.Rejected))
	return resp, nil
}

// buildSlot validates one batch item. A non-empty reason means rejection.
func (u *slotUsecase) buildSlot(ctx context.Context, doctor *entity.DoctorProfile, item *dto.CreateSlotItem, accepted []*entity.TimeSlot) (*entity.TimeSlot, string) {
	start, err := time.Parse(time.RFC3339, item.StartTime)
	if err != nil {
		return nil, "invalid start_time, use RFC 3339"
	}
	end, err := time.Parse(time.RFC3339, item.EndTime)
	if err != nil {
		return nil, "invalid end_time, use RFC 3339"
	}
	if !start.Before(end) {
		return nil, "start_time must be before end_time"
	}

	hospital, err := u.hospitalRepo.FindByCode(ctx, u.db, item.HospitalCode)
	if err != nil {
		u.log.Warnf("Failed to find hospital %s: %+v", item.HospitalCode, err)
		return nil, "hospital lookup failed"
	}
	if hospital == nil {
		return nil, "hospital not found"
	}

	slotCode := item.SlotCode
	if slotCode == "" {
		slotCode = generateSlotCode()
	}

	existing, err := u.slotRepo.FindByDoctorAndCode(ctx, u.db, doctor.UserID, slotCode)
	if err != nil {
		u.log.Warnf("Failed to check slot code %s: %+v", slotCode, err)
		return nil, "slot lookup failed"
	}
	if existing != nil {
		return nil, "slot code already exists for this doctor"
	}

	slot := &entity.TimeSlot{
		SlotCode:   slotCode,
		DoctorID:   doctor.UserID,
		HospitalID: hospital.ID,
		StartTime:  start,
		EndTime:    end,
		SlotType:   item.SlotType,
	}
	if slot.SlotType == "" {
		slot.SlotType = entity.SlotTypeConsultation
	}

	for _, prev := range accepted {
		if slot.Overlaps(prev) {
			return nil, "overlaps another slot in this batch"
		}
	}

	overlapping, err := u.slotRepo.CountAvailableOverlapping(ctx, u.db, doctor.UserID, start, end)
	if err != nil {
		u.log.Warnf("Failed to check overlapping slots: %+v", err)
		return nil, "slot lookup failed"
	}
	if overlapping > 0 {
		return nil, "overlaps an existing available slot"
	}

	return slot, ""
}

// ListAvailableSlots returns open slots, optionally narrowed by doctor code,
// hospital code and calendar date (YYYY-MM-DD, UTC).
func (u *slotUsecase) ListAvailableSlots(ctx context.Context, doctorCode, hospitalCode, date string) (*dto.SlotListResponse, error) {
	filter := &entity.SlotFilter{}

	if doctorCode != "" {
		doctor, err := u.doctorRepo.FindByCode(ctx, u.db, doctorCode)
		if err != nil {
			u.log.Warnf("Failed to find doctor %s: %+v", doctorCode, err)
			return nil, err
		}
		if doctor == nil {
			return nil, ErrDoctorNotFound
		}
		filter.DoctorID = &doctor.UserID
	}

	if hospitalCode != "" {
		hospital, err := u.hospitalRepo.FindByCode(ctx, u.db, hospitalCode)
		if err != nil {
			u.log.Warnf("Failed to find hospital %s: %+v", hospitalCode, err)
			return nil, err
		}
		if hospital == nil {
			return nil, ErrHospitalNotFound
		}
		filter.HospitalID = &hospital.ID
	}

	if date != "" {
		day, err := time.Parse("2006-01-02", date)
		if err != nil {
			return nil, ErrInvalidSlotDate
		}
		filter.OnDate = &day
	}

	slots, err := u.slotRepo.FindAvailable(ctx, u.db, filter)
	if err != nil {
		u.log.Warnf("Failed to list available slots: %+v", err)
		return nil, err
	}

	return &dto.SlotListResponse{
		Slots: converter.TimeSlotsToResponses(slots),
		Total: len(slots),
	}, nil
}

// ReleaseSlot flips a consumed slot of the logged-in doctor back to
// available. Releasing an already-available slot is a no-op conflict.
func (u *slotUsecase) ReleaseSlot(ctx context.Context, slotCode string) error {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return errors.New("user not found in context")
	}

	slot, err := u.slotRepo.FindByDoctorAndCode(ctx, u.db, userID, slotCode)
	if err != nil {
		u.log.Warnf("Failed to find slot %s: %+v", slotCode, err)
		return err
	}
	if slot == nil {
		return ErrSlotNotFound
	}

	affected, err := u.slotRepo.Release(ctx, u.db, userID, slotCode)
	if err != nil {
		u.log.Warnf("Failed to release slot %s: %+v", slotCode, err)
		return err
	}
	if affected == 0 {
		return ErrSlotNotAvailable
	}

	u.auditService.LogAction(ctx, u.db, &userID, entity.AuditActionSlotRelease, "time_slot", slotCode, nil)
	return nil
}

// DeleteSlot removes a slot of the logged-in doctor. Consumed slots stay:
// the conditional delete only matches available rows, so a slot backing a
// booked appointment cannot disappear underneath it.
func (u *slotUsecase) DeleteSlot(ctx context.Context, slotCode string) error {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return errors.New("user not found in context")
	}

	slot, err := u.slotRepo.FindByDoctorAndCode(ctx, u.db, userID, slotCode)
	if err != nil {
		u.log.Warnf("Failed to find slot %s: %+v", slotCode, err)
		return err
	}
	if slot == nil {
		return ErrSlotNotFound
	}

	affected, err := u.slotRepo.Delete(ctx, u.db, userID, slotCode)
	if err != nil {
		u.log.Warnf("Failed to delete slot %s: %+v", slotCode, err)
		return err
	}
	if affected == 0 {
		return ErrSlotNotAvailable
	}

	u.auditService.LogAction(ctx, u.db, &userID, entity.AuditActionSlotDelete, "time_slot", slotCode, nil)
	return nil
}

// generateSlotCode generates a random slot code: TS-XXXXXX
func generateSlotCode() string {
	randomBytes := make([]byte, 3)
	rand.Read(randomBytes)
	return fmt.Sprintf("TS-%06X", randomBytes)
}
