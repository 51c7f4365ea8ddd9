package service

import (
	"context"
	"errors"

	"medtriage-be/internal/entity"
	"medtriage-be/internal/repository/contract"
	"medtriage-be/internal/repository/specification"
	"medtriage-be/internal/repository/unitofwork"
	"medtriage-be/pkg/llm"

	"github.com/google/uuid"
)

// Shared in-memory doubles for service-level tests. Unused repository
// methods are inherited from the embedded nil interface and panic if a
// test reaches them unexpectedly.

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error {
	return nil
}

type stubUowFactory struct {
	uow unitofwork.UnitOfWork
}

func (f *stubUowFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

type stubUow struct {
	patients      contract.PatientRepository
	interactions  contract.InteractionRepository
	notifications contract.NotificationRepository
}

func (u *stubUow) Begin(ctx context.Context) error { return nil }
func (u *stubUow) Commit() error                   { return nil }
func (u *stubUow) Rollback() error                 { return nil }

func (u *stubUow) UserRepository() contract.UserRepository               { return nil }
func (u *stubUow) PatientRepository() contract.PatientRepository         { return u.patients }
func (u *stubUow) InteractionRepository() contract.InteractionRepository { return u.interactions }
func (u *stubUow) HospitalRepository() contract.HospitalRepository       { return nil }
func (u *stubUow) AppointmentRepository() contract.AppointmentRepository { return nil }
func (u *stubUow) NotificationRepository() contract.NotificationRepository {
	return u.notifications
}

type stubPatientRepo struct {
	contract.PatientRepository
	patient *entity.Patient
}

func (r *stubPatientRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Patient, error) {
	return r.patient, nil
}

type stubInteractionRepo struct {
	contract.InteractionRepository
	recent []*entity.Interaction
}

func (r *stubInteractionRepo) FindRecentByPatient(ctx context.Context, patientId uuid.UUID, limit int) ([]*entity.Interaction, error) {
	return r.recent, nil
}

type stubNotificationRepo struct {
	contract.NotificationRepository
	created []*entity.Notification
}

func (r *stubNotificationRepo) Create(ctx context.Context, notification *entity.Notification) error {
	r.created = append(r.created, notification)
	return nil
}

type stubQuota struct {
	allowed   bool
	remaining int
	err       error
}

func (q *stubQuota) Consume(ctx context.Context, patientID string) (bool, error) {
	return q.allowed, q.err
}

func (q *stubQuota) Remaining(ctx context.Context, patientID string) (int, error) {
	return q.remaining, q.err
}

type escalationMail struct {
	to        string
	patientID string
	reason    string
	steps     []string
}

type stubEmailService struct {
	err         error
	escalations []escalationMail
}

func (s *stubEmailService) SendAppointmentConfirmation(toEmail, patientName, doctorName, hospitalName, scheduledAt string) error {
	return s.err
}

func (s *stubEmailService) SendAppointmentReminder(toEmail, patientName, doctorName, hospitalName, scheduledAt string) error {
	return s.err
}

func (s *stubEmailService) SendEscalationAlert(toEmail, patientID, reason string, steps []string) error {
	s.escalations = append(s.escalations, escalationMail{
		to:        toEmail,
		patientID: patientID,
		reason:    reason,
		steps:     steps,
	})
	return s.err
}

// scriptedModel replays canned replies in order.
type scriptedModel struct {
	replies []string
	calls   int
}

func (s *scriptedModel) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	if s.calls >= len(s.replies) {
		return "", errors.New("scripted model: no reply configured")
	}
	reply := s.replies[s.calls]
	s.calls++
	return reply, nil
}

func (s *scriptedModel) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	if len(history) == 0 {
		return "", errors.New("scripted model: empty history")
	}
	return s.Generate(ctx, history[len(history)-1].Content, options...)
}
