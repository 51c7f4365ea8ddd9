package contract

import (
	"context"

	"medtriage-be/internal/entity"
	"medtriage-be/internal/repository/specification"

	"github.com/google/uuid"
)

type PatientRepository interface {
	Create(ctx context.Context, patient *entity.Patient) error
	Update(ctx context.Context, patient *entity.Patient) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Patient, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Patient, error)

	CreateMedicalEvent(ctx context.Context, event *entity.MedicalEvent) error
	FindMedicalEvents(ctx context.Context, specs ...specification.Specification) ([]*entity.MedicalEvent, error)
}
