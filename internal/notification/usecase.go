package notification

import (
	"context"

	"github.com/averine/opshub-service/internal/model"
	"github.com/averine/opshub-service/internal/notification/dto"
)

type UseCase interface {
	CreateNotification(ctx context.Context, input *dto.CreateNotificationInput) (*model.Notification, error)
	ListNotifications(ctx context.Context) ([]model.Notification, error)
	CountUnread(ctx context.Context) (int64, error)
	MarkRead(ctx context.Context, id int64) (*model.Notification, error)
	MarkAllRead(ctx context.Context) error
}
