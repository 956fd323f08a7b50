package usecase

import (
	"context"
	"time"

	"github.com/averine/opshub-service/internal/model"
	"github.com/averine/opshub-service/internal/notification"
	"github.com/averine/opshub-service/internal/notification/dto"
	"github.com/averine/opshub-service/pkg/apperrors"
	"github.com/averine/opshub-service/pkg/logger"
)

type notificationUseCase struct {
	repo   notification.Repository
	logger logger.ZapLogger
}

func NewNotificationUseCase(repo notification.Repository, log logger.ZapLogger) notification.UseCase {
	return &notificationUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *notificationUseCase) CreateNotification(ctx context.Context, input *dto.CreateNotificationInput) (*model.Notification, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Read always starts false regardless of input.
	n := &model.Notification{
		Title:     input.Title,
		Message:   input.Message,
		Type:      input.Type,
		Read:      false,
		Entity:    input.EntityRef(),
		CreatedAt: time.Now().UTC(),
	}

	if err := uc.repo.Create(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

func (uc *notificationUseCase) ListNotifications(ctx context.Context) ([]model.Notification, error) {
	return uc.repo.FindAll(ctx)
}

func (uc *notificationUseCase) CountUnread(ctx context.Context) (int64, error) {
	return uc.repo.CountUnread(ctx)
}

func (uc *notificationUseCase) MarkRead(ctx context.Context, id int64) (*model.Notification, error) {
	found, err := uc.repo.MarkRead(ctx, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperrors.NewNotFound("notification", id)
	}
	return uc.repo.FindByID(ctx, id)
}

func (uc *notificationUseCase) MarkAllRead(ctx context.Context) error {
	return uc.repo.MarkAllRead(ctx)
}
