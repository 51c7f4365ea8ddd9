package contract

import (
	"context"

	"medtriage-be/internal/entity"
	"medtriage-be/internal/repository/specification"

	"github.com/google/uuid"
)

type HospitalRepository interface {
	Create(ctx context.Context, hospital *entity.Hospital) error
	Update(ctx context.Context, hospital *entity.Hospital) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Hospital, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Hospital, error)

	CreateDoctor(ctx context.Context, doctor *entity.Doctor) error
	FindDoctor(ctx context.Context, id uuid.UUID) (*entity.Doctor, error)
	FindDoctors(ctx context.Context, specs ...specification.Specification) ([]*entity.Doctor, error)
}
