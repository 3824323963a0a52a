package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/anonymous-574/MediQ/internal/converter"
	"github.com/anonymous-574/MediQ/internal/delivery/dto"
	"github.com/anonymous-574/MediQ/internal/delivery/http/middleware"
	"github.com/anonymous-574/MediQ/internal/domain/entity"
	"github.com/anonymous-574/MediQ/internal/domain/repository"
	"github.com/anonymous-574/MediQ/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type HospitalUsecase interface {
	CreateHospital(ctx context.Context, req *dto.CreateHospitalRequest) (*dto.HospitalResponse, error)
	ListHospitals(ctx context.Context) (*dto.HospitalListResponse, error)
	GetHospital(ctx context.Context, hospitalCode string) (*dto.HospitalResponse, error)
	ListDoctors(ctx context.Context, hospitalCode string) (*dto.DoctorListResponse, error)
	UpdateCongestion(ctx context.Context, hospitalCode string, req *dto.UpdateCongestionRequest) (*dto.HospitalResponse, error)
}

type hospitalUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	hospitalRepo repository.HospitalRepository
	doctorRepo   repository.DoctorProfileRepository
	auditService service.AuditService
}

func NewHospitalUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	hospitalRepo repository.HospitalRepository,
	doctorRepo repository.DoctorProfileRepository,
	auditService service.AuditService,
) HospitalUsecase {
	return &hospitalUsecase{
		db:           db,
		log:          log,
		hospitalRepo: hospitalRepo,
		doctorRepo:   doctorRepo,
		auditService: auditService,
	}
}

// CreateHospital registers a facility in the directory. Admin only.
func (u *hospitalUsecase) CreateHospital(ctx context.Context, req *dto.CreateHospitalRequest) (*dto.HospitalResponse, error) {
	hospital := &entity.Hospital{
		HospitalCode: generateReportCode("H"),
		Name:         req.Name,
		Address:      req.Address,
		Capacity:     req.Capacity,
		Departments:  strings.Join(req.Departments, ","),
	}

	if err := u.hospitalRepo.Create(ctx, u.db, hospital); err != nil {
		u.log.Warnf("Failed to create hospital: %+v", err)
		return nil, err
	}

	u.log.Infof("Hospital created: code=%s, name=%s", hospital.HospitalCode, hospital.Name)
	return converter.HospitalToResponse(hospital), nil
}

// ListHospitals returns the full facility directory.
func (u *hospitalUsecase) ListHospitals(ctx context.Context) (*dto.HospitalListResponse, error) {
	hospitals, err := u.hospitalRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to list hospitals: %+v", err)
		return nil, err
	}

	return &dto.HospitalListResponse{
		Hospitals: converter.HospitalsToResponses(hospitals),
		Total:     len(hospitals),
	}, nil
}

// GetHospital returns one facility by its external code.
func (u *hospitalUsecase) GetHospital(ctx context.Context, hospitalCode string) (*dto.HospitalResponse, error) {
	hospital, err := u.hospitalRepo.FindByCode(ctx, u.db, hospitalCode)
	if err != nil {
		u.log.Warnf("Failed to find hospital %s: %+v", hospitalCode, err)
		return nil, err
	}
	if hospital == nil {
		return nil, ErrHospitalNotFound
	}

	return converter.HospitalToResponse(hospital), nil
}

// ListDoctors returns the doctors attached to a facility.
func (u *hospitalUsecase) ListDoctors(ctx context.Context, hospitalCode string) (*dto.DoctorListResponse, error) {
	hospital, err := u.hospitalRepo.FindByCode(ctx, u.db, hospitalCode)
	if err != nil {
		u.log.Warnf("Failed to find hospital %s: %+v", hospitalCode, err)
		return nil, err
	}
	if hospital == nil {
		return nil, ErrHospitalNotFound
	}

	doctors, err := u.doctorRepo.FindByHospitalID(ctx, u.db, hospital.ID)
	if err != nil {
		u.log.Warnf("Failed to list doctors for hospital %s: %+v", hospitalCode, err)
		return nil, err
	}

	return &dto.DoctorListResponse{
		Doctors: converter.DoctorProfilesToResponses(doctors),
		Total:   len(doctors),
	}, nil
}

// UpdateCongestion sets the facility's congestion gauge. The value is a
// convention (0-100), not validated beyond its range.
func (u *hospitalUsecase) UpdateCongestion(ctx context.Context, hospitalCode string, req *dto.UpdateCongestionRequest) (*dto.HospitalResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	hospital, err := u.hospitalRepo.FindByCode(ctx, u.db, hospitalCode)
	if err != nil {
		u.log.Warnf("Failed to find hospital %s: %+v", hospitalCode, err)
		return nil, err
	}
	if hospital == nil {
		return nil, ErrHospitalNotFound
	}

	affected, err := u.hospitalRepo.UpdateCongestion(ctx, u.db, hospital.ID, *req.CongestionLevel)
	if err != nil {
		u.log.Warnf("Failed to update congestion for %s: %+v", hospitalCode, err)
		return nil, err
	}
	if affected == 0 {
		return nil, ErrHospitalNotFound
	}

	hospital.CongestionLevel = *req.CongestionLevel
	u.auditService.LogAction(ctx, u.db, &userID, entity.AuditActionCongestionUpdate, "hospital", hospitalCode, *req.CongestionLevel)
	u.log.Infof("Congestion updated: hospital=%s, level=%.1f", hospitalCode, *req.CongestionLevel)

	return converter.HospitalToResponse(hospital), nil
}
