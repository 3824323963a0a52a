package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/anonymous-574/MediQ/internal/delivery/dto"
	"github.com/anonymous-574/MediQ/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type slotFixture struct {
	usecase      SlotUsecase
	slotRepo     *MockTimeSlotRepository
	doctorRepo   *MockDoctorProfileRepository
	hospitalRepo *MockHospitalRepository

	doctorID   uuid.UUID
	hospitalID uuid.UUID
}

func newSlotFixture() *slotFixture {
	f := &slotFixture{
		slotRepo:     &MockTimeSlotRepository{},
		doctorRepo:   &MockDoctorProfileRepository{},
		hospitalRepo: &MockHospitalRepository{},
		doctorID:     uuid.New(),
		hospitalID:   uuid.New(),
	}

	f.doctorRepo.FindByUserIDFunc = func(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*entity.DoctorProfile, error) {
		if userID == f.doctorID {
			return &entity.DoctorProfile{UserID: f.doctorID, DoctorCode: "DR-001", Specialty: "Cardiology"}, nil
		}
		return nil, nil
	}
	f.doctorRepo.FindByCodeFunc = func(ctx context.Context, db *gorm.DB, doctorCode string) (*entity.DoctorProfile, error) {
		if doctorCode == "DR-001" {
			return &entity.DoctorProfile{UserID: f.doctorID, DoctorCode: "DR-001", Specialty: "Cardiology"}, nil
		}
		return nil, nil
	}
	f.hospitalRepo.FindByCodeFunc = func(ctx context.Context, db *gorm.DB, hospitalCode string) (*entity.Hospital, error) {
		if hospitalCode == "H-001" {
			return &entity.Hospital{ID: f.hospitalID, HospitalCode: "H-001", Name: "Central"}, nil
		}
		return nil, nil
	}

	f.usecase = NewSlotUsecase(nil, newTestLogger(),
		f.slotRepo, f.doctorRepo, f.hospitalRepo, noopAuditService{})
	return f
}

func slotItem(code string, start time.Time, minutes int) dto.CreateSlotItem {
	return dto.CreateSlotItem{
		SlotCode:     code,
		HospitalCode: "H-001",
		StartTime:    start.Format(time.RFC3339),
		EndTime:      start.Add(time.Duration(minutes) * time.Minute).Format(time.RFC3339),
	}
}

func TestCreateSlots_Success(t *testing.T) {
	f := newSlotFixture()

	var created []*entity.TimeSlot
	f.slotRepo.CreateFunc = func(ctx context.Context, db *gorm.DB, slot *entity.TimeSlot) error {
		created = append(created, slot)
		return nil
	}

	start := time.Now().Add(24 * time.Hour).Truncate(time.Hour)
	req := &dto.CreateSlotsRequest{Slots: []dto.CreateSlotItem{
		slotItem("TS-000001", start, 30),
		slotItem("TS-000002", start.Add(30*time.Minute), 30),
	}}

	resp, err := f.usecase.CreateSlots(authedCtx(f.doctorID), req)

	assert.NoError(t, err)
	assert.Len(t, resp.Created, 2)
	assert.Empty(t, resp.Rejected)
	assert.Len(t, created, 2)
	assert.Equal(t, f.doctorID, created[0].DoctorID)
	assert.Equal(t, f.hospitalID, created[0].HospitalID)
	assert.Equal(t, entity.SlotTypeConsultation, created[0].SlotType)
}

func TestCreateSlots_GeneratesCodeWhenOmitted(t *testing.T) {
	f := newSlotFixture()

	start := time.Now().Add(24 * time.Hour)
	req := &dto.CreateSlotsRequest{Slots: []dto.CreateSlotItem{
		slotItem("", start, 30),
	}}

	resp, err := f.usecase.CreateSlots(authedCtx(f.doctorID), req)

	assert.NoError(t, err)
	assert.Len(t, resp.Created, 1)
	assert.Regexp(t, `^TS-[0-9A-F]{6}$`, resp.Created[0].SlotCode)
}

func TestCreateSlots_RejectsInvertedRange(t *testing.T) {
	f := newSlotFixture()

	start := time.Now().Add(24 * time.Hour)
	item := slotItem("TS-000001", start, 30)
	item.EndTime = start.Add(-time.Hour).Format(time.RFC3339)

	resp, err := f.usecase.CreateSlots(authedCtx(f.doctorID), &dto.CreateSlotsRequest{Slots: []dto.CreateSlotItem{item}})

	assert.NoError(t, err)
	assert.Empty(t, resp.Created)
	assert.Len(t, resp.Rejected, 1)
	assert.Equal(t, "start_time must be before end_time", resp.Rejected[0].Reason)
}

func TestCreateSlots_RejectsDuplicateCode(t *testing.T) {
	f := newSlotFixture()

	available := true
	f.slotRepo.FindByDoctorAndCodeFunc = func(ctx context.Context, db *gorm.DB, doctorID uuid.UUID, slotCode string) (*entity.TimeSlot, error) {
		if slotCode == "TS-TAKEN1" {
			return &entity.TimeSlot{SlotCode: slotCode, DoctorID: doctorID, IsAvailable: &available}, nil
		}
		return nil, nil
	}

	start := time.Now().Add(24 * time.Hour)
	resp, err := f.usecase.CreateSlots(authedCtx(f.doctorID), &dto.CreateSlotsRequest{Slots: []dto.CreateSlotItem{
		slotItem("TS-TAKEN1", start, 30),
	}})

	assert.NoError(t, err)
	assert.Empty(t, resp.Created)
	assert.Len(t, resp.Rejected, 1)
	assert.Equal(t, "slot code already exists for this doctor", resp.Rejected[0].Reason)
}

func TestCreateSlots_RejectsIntraBatchOverlap(t *testing.T) {
	f := newSlotFixture()

	start := time.Now().Add(24 * time.Hour)
	resp, err := f.usecase.CreateSlots(authedCtx(f.doctorID), &dto.CreateSlotsRequest{Slots: []dto.CreateSlotItem{
		slotItem("TS-000001", start, 60),
		slotItem("TS-000002", start.Add(30*time.Minute), 60),
	}})

	assert.NoError(t, err)
	assert.Len(t, resp.Created, 1)
	assert.Len(t, resp.Rejected, 1)
	assert.Equal(t, "TS-000002", resp.Rejected[0].SlotCode)
	assert.Equal(t, "overlaps another slot in this batch", resp.Rejected[0].Reason)
}

func TestCreateSlots_RejectsExistingOverlap(t *testing.T) {
	f := newSlotFixture()

	f.slotRepo.CountAvailableOverlappingFunc = func(ctx context.Context, db *gorm.DB, doctorID uuid.UUID, start, end time.Time) (int64, error) {
		return 1, nil
	}

	start := time.Now().Add(24 * time.Hour)
	resp, err := f.usecase.CreateSlots(authedCtx(f.doctorID), &dto.CreateSlotsRequest{Slots: []dto.CreateSlotItem{
		slotItem("TS-000001", start, 30),
	}})

	assert.NoError(t, err)
	assert.Empty(t, resp.Created)
	assert.Equal(t, "overlaps an existing available slot", resp.Rejected[0].Reason)
}

func TestCreateSlots_RejectsUnknownHospital(t *testing.T) {
	f := newSlotFixture()

	start := time.Now().Add(24 * time.Hour)
	item := slotItem("TS-000001", start, 30)
	item.HospitalCode = "H-999"

	resp, err := f.usecase.CreateSlots(authedCtx(f.doctorID), &dto.CreateSlotsRequest{Slots: []dto.CreateSlotItem{item}})

	assert.NoError(t, err)
	assert.Equal(t, "hospital not found", resp.Rejected[0].Reason)
}

func TestCreateSlots_PartialBatch(t *testing.T) {
	f := newSlotFixture()

	start := time.Now().Add(24 * time.Hour)
	bad := slotItem("TS-000002", start.Add(time.Hour), 30)
	bad.StartTime = "not-a-time"

	resp, err := f.usecase.CreateSlots(authedCtx(f.doctorID), &dto.CreateSlotsRequest{Slots: []dto.CreateSlotItem{
		slotItem("TS-000001", start, 30),
		bad,
	}})

	assert.NoError(t, err)
	assert.Len(t, resp.Created, 1)
	assert.Len(t, resp.Rejected, 1)
}

func TestCreateSlots_NoDoctorProfile(t *testing.T) {
	f := newSlotFixture()

	start := time.Now().Add(24 * time.Hour)
	_, err := f.usecase.CreateSlots(authedCtx(uuid.New()), &dto.CreateSlotsRequest{Slots: []dto.CreateSlotItem{
		slotItem("TS-000001", start, 30),
	}})

	assert.ErrorIs(t, err, ErrDoctorNotFound)
}

func TestListAvailableSlots_Filters(t *testing.T) {
	f := newSlotFixture()

	var gotFilter *entity.SlotFilter
	f.slotRepo.FindAvailableFunc = func(ctx context.Context, db *gorm.DB, filter *entity.SlotFilter) ([]entity.TimeSlot, error) {
		gotFilter = filter
		available := true
		return []entity.TimeSlot{
			{SlotCode: "TS-000001", DoctorID: f.doctorID, IsAvailable: &available, StartTime: time.Now(), EndTime: time.Now().Add(30 * time.Minute)},
		}, nil
	}

	resp, err := f.usecase.ListAvailableSlots(context.Background(), "DR-001", "H-001", "2026-09-01")

	assert.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
	assert.NotNil(t, gotFilter.DoctorID)
	assert.Equal(t, f.doctorID, *gotFilter.DoctorID)
	assert.NotNil(t, gotFilter.HospitalID)
	assert.Equal(t, f.hospitalID, *gotFilter.HospitalID)
	assert.NotNil(t, gotFilter.OnDate)
}

func TestListAvailableSlots_BadDate(t *testing.T) {
	f := newSlotFixture()

	_, err := f.usecase.ListAvailableSlots(context.Background(), "", "", "01-09-2026")

	assert.ErrorIs(t, err, ErrInvalidSlotDate)
}

func TestListAvailableSlots_UnknownDoctor(t *testing.T) {
	f := newSlotFixture()

	_, err := f.usecase.ListAvailableSlots(context.Background(), "DR-999", "", "")

	assert.ErrorIs(t, err, ErrDoctorNotFound)
}

func TestReleaseSlot_Success(t *testing.T) {
	f := newSlotFixture()

	consumed := false
	f.slotRepo.FindByDoctorAndCodeFunc = func(ctx context.Context, db *gorm.DB, doctorID uuid.UUID, slotCode string) (*entity.TimeSlot, error) {
		return &entity.TimeSlot{SlotCode: slotCode, DoctorID: doctorID, IsAvailable: &consumed}, nil
	}

	err := f.usecase.ReleaseSlot(authedCtx(f.doctorID), "TS-000001")

	assert.NoError(t, err)
}

func TestReleaseSlot_NotFound(t *testing.T) {
	f := newSlotFixture()

	err := f.usecase.ReleaseSlot(authedCtx(f.doctorID), "TS-999999")

	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestReleaseSlot_AlreadyAvailable(t *testing.T) {
	f := newSlotFixture()

	available := true
	f.slotRepo.FindByDoctorAndCodeFunc = func(ctx context.Context, db *gorm.DB, doctorID uuid.UUID, slotCode string) (*entity.TimeSlot, error) {
		return &entity.TimeSlot{SlotCode: slotCode, DoctorID: doctorID, IsAvailable: &available}, nil
	}
	f.slotRepo.ReleaseFunc = func(ctx context.Context, db *gorm.DB, doctorID uuid.UUID, slotCode string) (int64, error) {
		return 0, nil
	}

	err := f.usecase.ReleaseSlot(authedCtx(f.doctorID), "TS-000001")

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestDeleteSlot_Success(t *testing.T) {
	f := newSlotFixture()

	available := true
	f.slotRepo.FindByDoctorAndCodeFunc = func(ctx context.Context, db *gorm.DB, doctorID uuid.UUID, slotCode string) (*entity.TimeSlot, error) {
		return &entity.TimeSlot{SlotCode: slotCode, DoctorID: doctorID, IsAvailable: &available}, nil
	}

	err := f.usecase.DeleteSlot(authedCtx(f.doctorID), "TS-000001")

	assert.NoError(t, err)
}

func TestDeleteSlot_ConsumedSlotProtected(t *testing.T) {
	f := newSlotFixture()

	consumed := false
	f.slotRepo.FindByDoctorAndCodeFunc = func(ctx context.Context, db *gorm.DB, doctorID uuid.UUID, slotCode string) (*entity.TimeSlot, error) {
		return &entity.TimeSlot{SlotCode: slotCode, DoctorID: doctorID, IsAvailable: &consumed}, nil
	}
	f.slotRepo.DeleteFunc = func(ctx context.Context, db *gorm.DB, doctorID uuid.UUID, slotCode string) (int64, error) {
		return 0, nil
	}

	err := f.usecase.DeleteSlot(authedCtx(f.doctorID), "TS-000001")

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestDeleteSlot_NotFound(t *testing.T) {
	f := newSlotFixture()

	err := f.usecase.DeleteSlot(authedCtx(f.doctorID), "TS-999999")

	assert.ErrorIs(t, err, ErrSlotNotFound)
}
