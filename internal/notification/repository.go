package notification

import (
	"context"

	"github.com/averine/opshub-service/internal/model"
)

type Repository interface {
	Create(ctx context.Context, n *model.Notification) error
	FindByID(ctx context.Context, id int64) (*model.Notification, error)
	FindAll(ctx context.Context) ([]model.Notification, error)
	CountUnread(ctx context.Context) (int64, error)

	// MarkRead reports whether a row with the given id existed.
	MarkRead(ctx context.Context, id int64) (bool, error)
	MarkAllRead(ctx context.Context) error

	// DeleteByEntity removes every notification whose soft reference matches
	// the (entityType, entityID) pair exactly. Notifications without a
	// reference are never touched.
	DeleteByEntity(ctx context.Context, entityType model.EntityType, entityID int64) error
}
