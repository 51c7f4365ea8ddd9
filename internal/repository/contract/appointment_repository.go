package contract

import (
	"context"
	"time"

	"medtriage-be/internal/entity"
	"medtriage-be/internal/repository/specification"

	"github.com/google/uuid"
)

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *entity.Appointment) error
	Update(ctx context.Context, appointment *entity.Appointment) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Appointment, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Appointment, error)

	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	MarkReminderSent(ctx context.Context, id uuid.UUID, at time.Time) error

	// ExistsConflict reports whether the doctor already has a booked
	// appointment at the given time.
	ExistsConflict(ctx context.Context, doctorId uuid.UUID, scheduledAt time.Time) (bool, error)
}
