package service

import (
	"context"
	"errors"
	"testing"

	"medtriage-be/internal/entity"
	"medtriage-be/pkg/events"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleCaseEscalated(t *testing.T) {
	patientId := uuid.New()
	userId := uuid.New()
	interactionId := uuid.New()

	newService := func(email *stubEmailService, alertEmail string) (INotificationService, *stubNotificationRepo) {
		notifRepo := &stubNotificationRepo{}
		uow := &stubUow{
			patients:      &stubPatientRepo{patient: &entity.Patient{Id: patientId, UserId: userId}},
			notifications: notifRepo,
		}
		return NewNotificationService(&stubUowFactory{uow: uow}, email, alertEmail, nopLogger{}), notifRepo
	}

	event := events.NewCaseEscalatedEvent(
		patientId.String(), interactionId.String(), "emergency", "Emergency detected, case requires immediate clinician review", true,
	)

	t.Run("notifies the patient and alerts the clinician inbox", func(t *testing.T) {
		email := &stubEmailService{}
		svc, notifRepo := newService(email, "oncall@clinic.example")

		require.NoError(t, svc.HandleCaseEscalated(context.Background(), event))

		require.Len(t, notifRepo.created, 1)
		assert.Equal(t, entity.NotificationTypeEscalation, notifRepo.created[0].Type)
		assert.Equal(t, userId, notifRepo.created[0].UserId)

		require.Len(t, email.escalations, 1)
		assert.Equal(t, "oncall@clinic.example", email.escalations[0].to)
		assert.Equal(t, patientId.String(), email.escalations[0].patientID)
		assert.Equal(t, "Emergency detected, case requires immediate clinician review", email.escalations[0].reason)
	})

	t.Run("no alert address disables the mail", func(t *testing.T) {
		email := &stubEmailService{}
		svc, notifRepo := newService(email, "")

		require.NoError(t, svc.HandleCaseEscalated(context.Background(), event))

		assert.Len(t, notifRepo.created, 1)
		assert.Empty(t, email.escalations)
	})

	t.Run("mail failure does not fail the handler", func(t *testing.T) {
		email := &stubEmailService{err: errors.New("smtp: connection refused")}
		svc, notifRepo := newService(email, "oncall@clinic.example")

		require.NoError(t, svc.HandleCaseEscalated(context.Background(), event))
		assert.Len(t, notifRepo.created, 1)
	})
}
