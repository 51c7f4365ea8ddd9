// FILE: internal/service/notification_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"medtriage-be/internal/dto"
	"medtriage-be/internal/entity"
	"medtriage-be/internal/pkg/logger"
	"medtriage-be/internal/pkg/mailer"
	"medtriage-be/internal/repository/specification"
	"medtriage-be/internal/repository/unitofwork"
	"medtriage-be/pkg/events"

	"github.com/google/uuid"
)

type INotificationService interface {
	ListForUser(ctx context.Context, userId uuid.UUID, unreadOnly bool) ([]*dto.NotificationResponse, error)
	MarkRead(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
	MarkAllRead(ctx context.Context, userId uuid.UUID) error
	CountUnread(ctx context.Context, userId uuid.UUID) (int64, error)

	// Event handlers wired to the NATS subscriber.
	HandleCaseEscalated(ctx context.Context, event events.Event) error
	HandleAppointmentBooked(ctx context.Context, event events.Event) error
}

type notificationService struct {
	uowFactory   unitofwork.RepositoryFactory
	emailService mailer.IEmailService
	alertEmail   string
	logger       logger.ILogger
}

func NewNotificationService(
	uowFactory unitofwork.RepositoryFactory,
	emailService mailer.IEmailService,
	alertEmail string,
	log logger.ILogger,
) INotificationService {
	return &notificationService{
		uowFactory:   uowFactory,
		emailService: emailService,
		alertEmail:   alertEmail,
		logger:       log,
	}
}

func (s *notificationService) ListForUser(ctx context.Context, userId uuid.UUID, unreadOnly bool) ([]*dto.NotificationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{specification.ByUserId{UserID: userId}}
	if unreadOnly {
		specs = append(specs, specification.UnreadOnly{})
	}

	notifications, err := uow.NotificationRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.NotificationResponse, len(notifications))
	for i, n := range notifications {
		out[i] = &dto.NotificationResponse{
			Id:        n.Id,
			Type:      string(n.Type),
			Title:     n.Title,
			Body:      n.Body,
			Read:      n.Read,
			CreatedAt: n.CreatedAt,
		}
	}
	return out, nil
}

func (s *notificationService) MarkRead(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	notifications, err := uow.NotificationRepository().FindAll(ctx,
		specification.ByID{ID: id},
		specification.ByUserId{UserID: userId},
	)
	if err != nil {
		return err
	}
	if len(notifications) == 0 {
		return errors.New("notification not found")
	}

	return uow.NotificationRepository().MarkRead(ctx, id)
}

func (s *notificationService) MarkAllRead(ctx context.Context, userId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.NotificationRepository().MarkAllRead(ctx, userId)
}

func (s *notificationService) CountUnread(ctx context.Context, userId uuid.UUID) (int64, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.NotificationRepository().CountUnread(ctx, userId)
}

// HandleCaseEscalated notifies the patient that their case was handed to a
// clinician.
func (s *notificationService) HandleCaseEscalated(ctx context.Context, event events.Event) error {
	payload := event.Payload()
	patientId, err := uuid.Parse(stringField(payload, "patient_id"))
	if err != nil {
		// Malformed payloads are dropped, not retried.
		s.logger.Warn("NOTIFICATION", "Escalation event with invalid patient_id", map[string]interface{}{
			"payload": payload,
		})
		return nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	patient, err := uow.PatientRepository().FindOne(ctx, specification.ByID{ID: patientId})
	if err != nil {
		return err
	}
	if patient == nil {
		return nil
	}

	body := "A clinician will review your case shortly."
	if reason := stringField(payload, "reason"); reason != "" {
		body = reason
	}

	notification := &entity.Notification{
		Id:        uuid.New(),
		UserId:    patient.UserId,
		Type:      entity.NotificationTypeEscalation,
		Title:     "Your case has been escalated",
		Body:      body,
		CreatedAt: time.Now(),
	}
	if err := uow.NotificationRepository().Create(ctx, notification); err != nil {
		return err
	}

	// The clinician inbox gets a mail per escalation. A mail failure must
	// not Nak the event; the notification row is already in place.
	if s.alertEmail != "" {
		steps := []string{
			"Severity: " + stringField(payload, "severity"),
			"Interaction: " + stringField(payload, "interaction_id"),
		}
		if err := s.emailService.SendEscalationAlert(s.alertEmail, patientId.String(), body, steps); err != nil {
			s.logger.Error("NOTIFICATION", "Failed to send escalation alert email", map[string]interface{}{
				"patient_id": patientId.String(),
				"error":      err.Error(),
			})
		}
	}
	return nil
}

func (s *notificationService) HandleAppointmentBooked(ctx context.Context, event events.Event) error {
	payload := event.Payload()
	patientId, err := uuid.Parse(stringField(payload, "patient_id"))
	if err != nil {
		s.logger.Warn("NOTIFICATION", "Booking event with invalid patient_id", map[string]interface{}{
			"payload": payload,
		})
		return nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	patient, err := uow.PatientRepository().FindOne(ctx, specification.ByID{ID: patientId})
	if err != nil {
		return err
	}
	if patient == nil {
		return nil
	}

	notification := &entity.Notification{
		Id:        uuid.New(),
		UserId:    patient.UserId,
		Type:      entity.NotificationTypeAppointment,
		Title:     "Appointment confirmed",
		Body:      fmt.Sprintf("Your appointment is scheduled for %s.", stringField(payload, "scheduled_at")),
		CreatedAt: time.Now(),
	}
	return uow.NotificationRepository().Create(ctx, notification)
}

func stringField(payload map[string]interface{}, key string) string {
	if v, ok := payload[key].(string); ok {
		return v
	}
	return ""
}
