package service

import (
	"github.com/anonymous-574/MediQ/internal/domain/entity"

	"github.com/sirupsen/logrus"
)

// NotificationService delivers patient-facing notices. The current
// implementation writes structured log lines; a mail or SMS channel can
// replace it behind the same interface.
type NotificationService interface {
	SendBookingConfirmation(appointment *entity.Appointment, recipient string)
	SendEmergencyAlert(report *entity.SymptomReport)
}

type notificationService struct {
	log *logrus.Logger
}

func NewNotificationService(log *logrus.Logger) NotificationService {
	return &notificationService{log: log}
}

func (s *notificationService) SendBookingConfirmation(appointment *entity.Appointment, recipient string) {
	s.log.WithFields(logrus.Fields{
		"appointment_code": appointment.AppointmentCode,
		"scheduled_at":     appointment.ScheduledAt,
		"recipient":        recipient,
	}).Info("Booking confirmation sent")
}

func (s *notificationService) SendEmergencyAlert(report *entity.SymptomReport) {
	s.log.WithFields(logrus.Fields{
		"report_code": report.ReportCode,
		"patient_id":  report.PatientID,
		"urgency":     report.UrgencyLevel,
	}).Warn("Emergency triage alert")
}
