package contract

import (
	"context"

	"medtriage-be/internal/entity"
	"medtriage-be/internal/repository/specification"

	"github.com/google/uuid"
)

type NotificationRepository interface {
	Create(ctx context.Context, notification *entity.Notification) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Notification, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
	MarkAllRead(ctx context.Context, userId uuid.UUID) error
	CountUnread(ctx context.Context, userId uuid.UUID) (int64, error)
}
