package contract

import (
	"context"

	"medtriage-be/internal/entity"
	"medtriage-be/internal/repository/specification"

	"github.com/google/uuid"
)

type InteractionRepository interface {
	Create(ctx context.Context, interaction *entity.Interaction) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Interaction, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Interaction, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// FindRecentByPatient returns the newest interactions first, capped at
	// limit. Used to rebuild conversation history on cache miss.
	FindRecentByPatient(ctx context.Context, patientId uuid.UUID, limit int) ([]*entity.Interaction, error)
}
