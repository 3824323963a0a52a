package usecase

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"time"

	"github.com/anonymous-574/MediQ/internal/delivery/http/middleware"
	"github.com/anonymous-574/MediQ/internal/domain/entity"
	"github.com/anonymous-574/MediQ/internal/domain/repository"
	"github.com/anonymous-574/MediQ/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"
)

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// newTestDB returns a gorm handle whose Begin/Commit/Rollback run against an
// in-memory stub, so usecases can open transactions while the repository
// mocks ignore the handle itself.
func newTestDB() *gorm.DB {
	db, _ := gorm.Open(tests.DummyDialector{}, &gorm.Config{ConnPool: stubConnPool{}})
	return db
}

type stubConnPool struct{}

func (stubConnPool) PrepareContext(ctx context.Context, query string) (*sql.Stmt, error) {
	return nil, sql.ErrConnDone
}

func (stubConnPool) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return nil, sql.ErrConnDone
}

func (stubConnPool) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return nil, sql.ErrConnDone
}

func (stubConnPool) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return nil
}

func (stubConnPool) BeginTx(ctx context.Context, opts *sql.TxOptions) (gorm.ConnPool, error) {
	return &stubTx{}, nil
}

type stubTx struct{ stubConnPool }

func (*stubTx) Commit() error   { return nil }
func (*stubTx) Rollback() error { return nil }

// authedCtx builds a context carrying the identity the auth middleware would
// have attached.
func authedCtx(userID uuid.UUID) context.Context {
	return context.WithValue(context.Background(), middleware.UserIDKey, userID)
}

// Compile-time checks
var (
	_ repository.TimeSlotRepository      = (*MockTimeSlotRepository)(nil)
	_ repository.AppointmentRepository   = (*MockAppointmentRepository)(nil)
	_ repository.DoctorProfileRepository = (*MockDoctorProfileRepository)(nil)
	_ repository.PatientProfileRepository = (*MockPatientProfileRepository)(nil)
	_ repository.HospitalRepository      = (*MockHospitalRepository)(nil)
	_ repository.QueueReportRepository   = (*MockQueueReportRepository)(nil)
	_ repository.SymptomReportRepository = (*MockSymptomReportRepository)(nil)

	_ service.AuditService        = noopAuditService{}
	_ service.NotificationService = (*stubNotifier)(nil)
)

// MockTimeSlotRepository is a func-field mock of TimeSlotRepository.
type MockTimeSlotRepository struct {
	CreateFunc                    func(ctx context.Context, db *gorm.DB, slot *entity.TimeSlot) error
	FindByDoctorAndCodeFunc       func(ctx context.Context, db *gorm.DB, doctorID uuid.UUID, slotCode string) (*entity.TimeSlot, error)
	FindAvailableFunc             func(ctx context.Context, db *gorm.DB, filter *entity.SlotFilter) ([]entity.TimeSlot, error)
	CountAvailableOverlappingFunc func(ctx context.Context, db *gorm.DB, doctorID uuid.UUID, start, end time.Time) (int64, error)
	ConsumeFunc                   func(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error)
	ReleaseFunc                   func(ctx context.Context, db *gorm.DB, doctorID uuid.UUID, slotCode string) (int64, error)
	DeleteFunc                    func(ctx context.Context, db *gorm.DB, doctorID uuid.UUID, slotCode string) (int64, error)
}

func (m *MockTimeSlotRepository) Create(ctx context.Context, db *gorm.DB, slot *entity.TimeSlot) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, db, slot)
	}
	return nil
}

func (m *MockTimeSlotRepository) FindByDoctorAndCode(ctx context.Context, db *gorm.DB, doctorID uuid.UUID, slotCode string) (*entity.TimeSlot, error) {
	if m.FindByDoctorAndCodeFunc != nil {
		return m.FindByDoctorAndCodeFunc(ctx, db, doctorID, slotCode)
	}
	return nil, nil
}

func (m *MockTimeSlotRepository) FindAvailable(ctx context.Context, db *gorm.DB, filter *entity.SlotFilter) ([]entity.TimeSlot, error) {
	if m.FindAvailableFunc != nil {
		return m.FindAvailableFunc(ctx, db, filter)
	}
	return nil, nil
}

func (m *MockTimeSlotRepository) CountAvailableOverlapping(ctx context.Context, db *gorm.DB, doctorID uuid.UUID, start, end time.Time) (int64, error) {
	if m.CountAvailableOverlappingFunc != nil {
		return m.CountAvailableOverlappingFunc(ctx, db, doctorID, start, end)
	}
	return 0, nil
}

func (m *MockTimeSlotRepository) Consume(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error) {
	if m.ConsumeFunc != nil {
		return m.ConsumeFunc(ctx, db, id)
	}
	return 1, nil
}

func (m *MockTimeSlotRepository) Release(ctx context.Context, db *gorm.DB, doctorID uuid.UUID, slotCode string) (int64, error) {
	if m.ReleaseFunc != nil {
		return m.ReleaseFunc(ctx, db, doctorID, slotCode)
	}
	return 1, nil
}

func (m *MockTimeSlotRepository) Delete(ctx context.Context, db *gorm.DB, doctorID uuid.UUID, slotCode string) (int64, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, db, doctorID, slotCode)
	}
	return 1, nil
}

// MockAppointmentRepository is a func-field mock of AppointmentRepository.
type MockAppointmentRepository struct {
	CreateFunc                          func(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error
	FindByCodeAndDoctorFunc             func(ctx context.Context, db *gorm.DB, appointmentCode string, doctorID uuid.UUID) (*entity.Appointment, error)
	FindByCodeAndPatientFunc            func(ctx context.Context, db *gorm.DB, appointmentCode string, patientID uuid.UUID) (*entity.Appointment, error)
	FindScheduledByPatientAndDoctorFunc func(ctx context.Context, db *gorm.DB, patientID, doctorID uuid.UUID) (*entity.Appointment, error)
	FindByPatientIDFunc                 func(ctx context.Context, db *gorm.DB, patientID uuid.UUID) ([]entity.Appointment, error)
	FindByDoctorIDFunc                  func(ctx context.Context, db *gorm.DB, doctorID uuid.UUID) ([]entity.Appointment, error)
	CountScheduledByHospitalFunc        func(ctx context.Context, db *gorm.DB, hospitalID uuid.UUID) (int64, error)
	UpdateStatusFunc                    func(ctx context.Context, db *gorm.DB, id uuid.UUID, from, to entity.AppointmentStatus) (int64, error)
	CodeExistsFunc                      func(ctx context.Context, db *gorm.DB, appointmentCode string) (bool, error)
}

func (m *MockAppointmentRepository) Create(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, db, appointment)
	}
	return nil
}

func (m *MockAppointmentRepository) FindByCodeAndDoctor(ctx context.Context, db *gorm.DB, appointmentCode string, doctorID uuid.UUID) (*entity.Appointment, error) {
	if m.FindByCodeAndDoctorFunc != nil {
		return m.FindByCodeAndDoctorFunc(ctx, db, appointmentCode, doctorID)
	}
	return nil, nil
}

func (m *MockAppointmentRepository) FindByCodeAndPatient(ctx context.Context, db *gorm.DB, appointmentCode string, patientID uuid.UUID) (*entity.Appointment, error) {
	if m.FindByCodeAndPatientFunc != nil {
		return m.FindByCodeAndPatientFunc(ctx, db, appointmentCode, patientID)
	}
	return nil, nil
}

func (m *MockAppointmentRepository) FindScheduledByPatientAndDoctor(ctx context.Context, db *gorm.DB, patientID, doctorID uuid.UUID) (*entity.Appointment, error) {
	if m.FindScheduledByPatientAndDoctorFunc != nil {
		return m.FindScheduledByPatientAndDoctorFunc(ctx, db, patientID, doctorID)
	}
	return nil, nil
}

func (m *MockAppointmentRepository) FindByPatientID(ctx context.Context, db *gorm.DB, patientID uuid.UUID) ([]entity.Appointment, error) {
	if m.FindByPatientIDFunc != nil {
		return m.FindByPatientIDFunc(ctx, db, patientID)
	}
	return nil, nil
}

func (m *MockAppointmentRepository) FindByDoctorID(ctx context.Context, db *gorm.DB, doctorID uuid.UUID) ([]entity.Appointment, error) {
	if m.FindByDoctorIDFunc != nil {
		return m.FindByDoctorIDFunc(ctx, db, doctorID)
	}
	return nil, nil
}

func (m *MockAppointmentRepository) CountScheduledByHospital(ctx context.Context, db *gorm.DB, hospitalID uuid.UUID) (int64, error) {
	if m.CountScheduledByHospitalFunc != nil {
		return m.CountScheduledByHospitalFunc(ctx, db, hospitalID)
	}
	return 0, nil
}

func (m *MockAppointmentRepository) UpdateStatus(ctx context.Context, db *gorm.DB, id uuid.UUID, from, to entity.AppointmentStatus) (int64, error) {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, db, id, from, to)
	}
	return 1, nil
}

func (m *MockAppointmentRepository) CodeExists(ctx context.Context, db *gorm.DB, appointmentCode string) (bool, error) {
	if m.CodeExistsFunc != nil {
		return m.CodeExistsFunc(ctx, db, appointmentCode)
	}
	return false, nil
}

// MockDoctorProfileRepository is a func-field mock of DoctorProfileRepository.
type MockDoctorProfileRepository struct {
	CreateFunc           func(ctx context.Context, db *gorm.DB, profile *entity.DoctorProfile) error
	FindByUserIDFunc     func(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*entity.DoctorProfile, error)
	FindByCodeFunc       func(ctx context.Context, db *gorm.DB, doctorCode string) (*entity.DoctorProfile, error)
	FindByHospitalIDFunc func(ctx context.Context, db *gorm.DB, hospitalID uuid.UUID) ([]entity.DoctorProfile, error)
	UpdateFunc           func(ctx context.Context, db *gorm.DB, profile *entity.DoctorProfile) error
}

func (m *MockDoctorProfileRepository) Create(ctx context.Context, db *gorm.DB, profile *entity.DoctorProfile) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, db, profile)
	}
	return nil
}

func (m *MockDoctorProfileRepository) FindByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*entity.DoctorProfile, error) {
	if m.FindByUserIDFunc != nil {
		return m.FindByUserIDFunc(ctx, db, userID)
	}
	return nil, nil
}

func (m *MockDoctorProfileRepository) FindByCode(ctx context.Context, db *gorm.DB, doctorCode string) (*entity.DoctorProfile, error) {
	if m.FindByCodeFunc != nil {
		return m.FindByCodeFunc(ctx, db, doctorCode)
	}
	return nil, nil
}

func (m *MockDoctorProfileRepository) FindByHospitalID(ctx context.Context, db *gorm.DB, hospitalID uuid.UUID) ([]entity.DoctorProfile, error) {
	if m.FindByHospitalIDFunc != nil {
		return m.FindByHospitalIDFunc(ctx, db, hospitalID)
	}
	return nil, nil
}

func (m *MockDoctorProfileRepository) Update(ctx context.Context, db *gorm.DB, profile *entity.DoctorProfile) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, db, profile)
	}
	return nil
}

// MockPatientProfileRepository is a func-field mock of PatientProfileRepository.
type MockPatientProfileRepository struct {
	CreateFunc        func(ctx context.Context, db *gorm.DB, profile *entity.PatientProfile) error
	FindByUserIDFunc  func(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*entity.PatientProfile, error)
	FindByCodeFunc    func(ctx context.Context, db *gorm.DB, patientCode string) (*entity.PatientProfile, error)
	SetRegisteredFunc func(ctx context.Context, db *gorm.DB, userID uuid.UUID, registered bool) (int64, error)
}

func (m *MockPatientProfileRepository) Create(ctx context.Context, db *gorm.DB, profile *entity.PatientProfile) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, db, profile)
	}
	return nil
}

func (m *MockPatientProfileRepository) FindByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*entity.PatientProfile, error) {
	if m.FindByUserIDFunc != nil {
		return m.FindByUserIDFunc(ctx, db, userID)
	}
	return nil, nil
}

func (m *MockPatientProfileRepository) FindByCode(ctx context.Context, db *gorm.DB, patientCode string) (*entity.PatientProfile, error) {
	if m.FindByCodeFunc != nil {
		return m.FindByCodeFunc(ctx, db, patientCode)
	}
	return nil, nil
}

func (m *MockPatientProfileRepository) SetRegistered(ctx context.Context, db *gorm.DB, userID uuid.UUID, registered bool) (int64, error) {
	if m.SetRegisteredFunc != nil {
		return m.SetRegisteredFunc(ctx, db, userID, registered)
	}
	return 1, nil
}

// MockHospitalRepository is a func-field mock of HospitalRepository.
type MockHospitalRepository struct {
	CreateFunc           func(ctx context.Context, db *gorm.DB, hospital *entity.Hospital) error
	FindByIDFunc         func(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Hospital, error)
	FindByCodeFunc       func(ctx context.Context, db *gorm.DB, hospitalCode string) (*entity.Hospital, error)
	FindAllFunc          func(ctx context.Context, db *gorm.DB) ([]entity.Hospital, error)
	UpdateCongestionFunc func(ctx context.Context, db *gorm.DB, id uuid.UUID, level float64) (int64, error)
}

func (m *MockHospitalRepository) Create(ctx context.Context, db *gorm.DB, hospital *entity.Hospital) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, db, hospital)
	}
	return nil
}

func (m *MockHospitalRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Hospital, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, db, id)
	}
	return nil, nil
}

func (m *MockHospitalRepository) FindByCode(ctx context.Context, db *gorm.DB, hospitalCode string) (*entity.Hospital, error) {
	if m.FindByCodeFunc != nil {
		return m.FindByCodeFunc(ctx, db, hospitalCode)
	}
	return nil, nil
}

func (m *MockHospitalRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Hospital, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx, db)
	}
	return nil, nil
}

func (m *MockHospitalRepository) UpdateCongestion(ctx context.Context, db *gorm.DB, id uuid.UUID, level float64) (int64, error) {
	if m.UpdateCongestionFunc != nil {
		return m.UpdateCongestionFunc(ctx, db, id, level)
	}
	return 1, nil
}

// MockQueueReportRepository is a func-field mock of QueueReportRepository.
type MockQueueReportRepository struct {
	CreateFunc                           func(ctx context.Context, db *gorm.DB, report *entity.QueueReport) error
	FindByHospitalSinceFunc              func(ctx context.Context, db *gorm.DB, hospitalID uuid.UUID, since time.Time) ([]entity.QueueReport, error)
	FindByHospitalAndDepartmentSinceFunc func(ctx context.Context, db *gorm.DB, hospitalID uuid.UUID, department string, since time.Time) ([]entity.QueueReport, error)
	FindByHospitalIDFunc                 func(ctx context.Context, db *gorm.DB, hospitalID uuid.UUID) ([]entity.QueueReport, error)
	MarkValidatedFunc                    func(ctx context.Context, db *gorm.DB, reportCode string) (int64, error)
}

func (m *MockQueueReportRepository) Create(ctx context.Context, db *gorm.DB, report *entity.QueueReport) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, db, report)
	}
	return nil
}

func (m *MockQueueReportRepository) FindByHospitalSince(ctx context.Context, db *gorm.DB, hospitalID uuid.UUID, since time.Time) ([]entity.QueueReport, error) {
	if m.FindByHospitalSinceFunc != nil {
		return m.FindByHospitalSinceFunc(ctx, db, hospitalID, since)
	}
	return nil, nil
}

func (m *MockQueueReportRepository) FindByHospitalAndDepartmentSince(ctx context.Context, db *gorm.DB, hospitalID uuid.UUID, department string, since time.Time) ([]entity.QueueReport, error) {
	if m.FindByHospitalAndDepartmentSinceFunc != nil {
		return m.FindByHospitalAndDepartmentSinceFunc(ctx, db, hospitalID, department, since)
	}
	return nil, nil
}

func (m *MockQueueReportRepository) FindByHospitalID(ctx context.Context, db *gorm.DB, hospitalID uuid.UUID) ([]entity.QueueReport, error) {
	if m.FindByHospitalIDFunc != nil {
		return m.FindByHospitalIDFunc(ctx, db, hospitalID)
	}
	return nil, nil
}

func (m *MockQueueReportRepository) MarkValidated(ctx context.Context, db *gorm.DB, reportCode string) (int64, error) {
	if m.MarkValidatedFunc != nil {
		return m.MarkValidatedFunc(ctx, db, reportCode)
	}
	return 1, nil
}

// MockSymptomReportRepository is a func-field mock of SymptomReportRepository.
type MockSymptomReportRepository struct {
	CreateFunc          func(ctx context.Context, db *gorm.DB, report *entity.SymptomReport) error
	FindByPatientIDFunc func(ctx context.Context, db *gorm.DB, patientID uuid.UUID) ([]entity.SymptomReport, error)
}

func (m *MockSymptomReportRepository) Create(ctx context.Context, db *gorm.DB, report *entity.SymptomReport) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, db, report)
	}
	return nil
}

func (m *MockSymptomReportRepository) FindByPatientID(ctx context.Context, db *gorm.DB, patientID uuid.UUID) ([]entity.SymptomReport, error) {
	if m.FindByPatientIDFunc != nil {
		return m.FindByPatientIDFunc(ctx, db, patientID)
	}
	return nil, nil
}

// stubNotifier counts notifications instead of delivering them.
type stubNotifier struct {
	bookingConfirmations int
	emergencyAlerts      int
}

func (n *stubNotifier) SendBookingConfirmation(appointment *entity.Appointment, recipient string) {
	n.bookingConfirmations++
}

func (n *stubNotifier) SendEmergencyAlert(report *entity.SymptomReport) {
	n.emergencyAlerts++
}

// noopAuditService swallows audit writes in tests.
type noopAuditService struct{}

func (noopAuditService) LogAction(ctx context.Context, db *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, detail interface{}) error {
	return nil
}

var errRepoDown = errors.New("record store unreachable")
