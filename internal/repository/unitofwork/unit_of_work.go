package unitofwork

import (
	"context"

	"medtriage-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	PatientRepository() contract.PatientRepository
	InteractionRepository() contract.InteractionRepository
	HospitalRepository() contract.HospitalRepository
	AppointmentRepository() contract.AppointmentRepository
	NotificationRepository() contract.NotificationRepository
}
