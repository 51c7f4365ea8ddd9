// FILE: internal/service/reminder_service.go
package service

import (
	"context"
	"time"

	"medtriage-be/internal/entity"
	"medtriage-be/internal/pkg/logger"
	"medtriage-be/internal/pkg/mailer"
	"medtriage-be/internal/repository/specification"
	"medtriage-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IReminderService interface {
	Start(ctx context.Context)
	SweepOnce(ctx context.Context) error
}

// reminderService periodically emails patients about appointments starting
// within the next 24 hours. MarkReminderSent keeps the sweep idempotent
// across restarts and overlapping ticks.
type reminderService struct {
	uowFactory   unitofwork.RepositoryFactory
	emailService mailer.IEmailService
	interval     time.Duration
	logger       logger.ILogger
}

func NewReminderService(
	uowFactory unitofwork.RepositoryFactory,
	emailService mailer.IEmailService,
	log logger.ILogger,
) IReminderService {
	return &reminderService{
		uowFactory:   uowFactory,
		emailService: emailService,
		interval:     15 * time.Minute,
		logger:       log,
	}
}

func (s *reminderService) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := s.SweepOnce(ctx); err != nil {
					s.logger.Error("REMINDER", "Sweep failed", map[string]interface{}{
						"error": err.Error(),
					})
				}
			}
		}
	}()
}

func (s *reminderService) SweepOnce(ctx context.Context) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	due, err := uow.AppointmentRepository().FindAll(ctx,
		specification.ReminderDue{Before: time.Now().Add(24 * time.Hour)},
	)
	if err != nil {
		return err
	}

	for _, appointment := range due {
		patient, err := uow.PatientRepository().FindOne(ctx, specification.ByID{ID: appointment.PatientId})
		if err != nil || patient == nil {
			continue
		}
		user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: patient.UserId})
		if err != nil || user == nil {
			continue
		}
		doctor, err := uow.HospitalRepository().FindDoctor(ctx, appointment.DoctorId)
		if err != nil || doctor == nil {
			continue
		}
		hospital, err := uow.HospitalRepository().FindOne(ctx, specification.ByID{ID: appointment.HospitalId})
		if err != nil || hospital == nil {
			continue
		}

		if err := s.emailService.SendAppointmentReminder(
			user.Email, patient.FullName, doctor.FullName, hospital.Name,
			appointment.ScheduledAt.Format("Mon, 02 Jan 2006 15:04"),
		); err != nil {
			s.logger.Warn("REMINDER", "Failed to send reminder email", map[string]interface{}{
				"appointment_id": appointment.Id.String(),
				"error":          err.Error(),
			})
			continue
		}

		notification := &entity.Notification{
			Id:        uuid.New(),
			UserId:    patient.UserId,
			Type:      entity.NotificationTypeReminder,
			Title:     "Appointment reminder",
			Body:      "Your appointment with " + doctor.FullName + " is coming up on " + appointment.ScheduledAt.Format("Mon, 02 Jan 2006 15:04") + ".",
			CreatedAt: time.Now(),
		}
		if err := uow.NotificationRepository().Create(ctx, notification); err != nil {
			s.logger.Warn("REMINDER", "Failed to create reminder notification", map[string]interface{}{
				"appointment_id": appointment.Id.String(),
				"error":          err.Error(),
			})
		}

		if err := uow.AppointmentRepository().MarkReminderSent(ctx, appointment.Id, time.Now()); err != nil {
			s.logger.Error("REMINDER", "Failed to mark reminder sent", map[string]interface{}{
				"appointment_id": appointment.Id.String(),
				"error":          err.Error(),
			})
		}
	}

	return nil
}
