package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/averine/opshub-service/internal/model"
	notificationRepository "github.com/averine/opshub-service/internal/notification/repository"
	"github.com/averine/opshub-service/internal/notifier"
	productRepository "github.com/averine/opshub-service/internal/product/repository"
	"github.com/averine/opshub-service/internal/task"
	"github.com/averine/opshub-service/internal/task/dto"
	"github.com/averine/opshub-service/internal/task/repository"
	"github.com/averine/opshub-service/internal/testutil"
	"github.com/averine/opshub-service/pkg/apperrors"
	"github.com/averine/opshub-service/pkg/logger"
	"github.com/averine/opshub-service/pkg/optional"
)

func newUseCase(t *testing.T) (task.UseCase, *notificationRepository.SQLiteRepository) {
	db := testutil.NewDB(t)
	notificationRepo := notificationRepository.NewSQLiteRepository(db)
	events := notifier.NewService(notificationRepo, productRepository.NewSQLiteRepository(db), logger.NewNop())
	return NewTaskUseCase(repository.NewSQLiteRepository(db), events, logger.NewNop()), notificationRepo
}

func TestCreateTaskDefaults(t *testing.T) {
	ctx := context.Background()
	uc, _ := newUseCase(t)

	created, err := uc.CreateTask(ctx, &dto.CreateTaskInput{Title: "Write report"})
	require.NoError(t, err)
	assert.Equal(t, model.TaskStatusPending, created.Status)
	assert.Equal(t, model.TaskPriorityMedium, created.Priority)
	assert.NotZero(t, created.ID)
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)
}

func TestCreateTaskHighPriorityNotifies(t *testing.T) {
	ctx := context.Background()
	uc, notificationRepo := newUseCase(t)

	created, err := uc.CreateTask(ctx, &dto.CreateTaskInput{
		Title:    "Patch servers",
		Priority: model.TaskPriorityUrgent,
	})
	require.NoError(t, err)

	notifications, err := notificationRepo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, model.NewEntityRef(model.EntityTask, created.ID), notifications[0].Entity)
}

func TestCreateTaskValidation(t *testing.T) {
	ctx := context.Background()
	uc, _ := newUseCase(t)

	_, err := uc.CreateTask(ctx, &dto.CreateTaskInput{Title: "   "})
	assert.True(t, apperrors.IsValidation(err))

	_, err = uc.CreateTask(ctx, &dto.CreateTaskInput{Title: "x", Status: "paused"})
	assert.True(t, apperrors.IsValidation(err))
}

func TestUpdateTaskPartial(t *testing.T) {
	ctx := context.Background()
	uc, _ := newUseCase(t)

	desc := "quarterly numbers"
	due := time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC)
	created, err := uc.CreateTask(ctx, &dto.CreateTaskInput{
		Title:       "Write report",
		Description: &desc,
		DueDate:     &due,
	})
	require.NoError(t, err)

	// Omitted fields stay, null fields clear.
	updated, err := uc.UpdateTask(ctx, &dto.UpdateTaskInput{
		ID:      created.ID,
		Status:  optional.Set(model.TaskStatusInProgress),
		DueDate: optional.Null[time.Time](),
	})
	require.NoError(t, err)
	assert.Equal(t, "Write report", updated.Title)
	require.NotNil(t, updated.Description)
	assert.Equal(t, desc, *updated.Description)
	assert.Equal(t, model.TaskStatusInProgress, updated.Status)
	assert.Nil(t, updated.DueDate)
	assert.True(t, updated.UpdatedAt.After(created.CreatedAt) || updated.UpdatedAt.Equal(created.CreatedAt))
}

func TestUpdateTaskExplicitNullTitleRejected(t *testing.T) {
	ctx := context.Background()
	uc, _ := newUseCase(t)

	created, err := uc.CreateTask(ctx, &dto.CreateTaskInput{Title: "Write report"})
	require.NoError(t, err)

	_, err = uc.UpdateTask(ctx, &dto.UpdateTaskInput{
		ID:    created.ID,
		Title: optional.Null[string](),
	})
	assert.True(t, apperrors.IsValidation(err))
}

func TestUpdateTaskMissingIsNotFound(t *testing.T) {
	ctx := context.Background()
	uc, _ := newUseCase(t)

	_, err := uc.UpdateTask(ctx, &dto.UpdateTaskInput{
		ID:     999,
		Status: optional.Set(model.TaskStatusCompleted),
	})
	assert.True(t, apperrors.IsNotFound(err))
}

func TestUpdateTaskCompletionNotifiesOnce(t *testing.T) {
	ctx := context.Background()
	uc, notificationRepo := newUseCase(t)

	created, err := uc.CreateTask(ctx, &dto.CreateTaskInput{Title: "Write report"})
	require.NoError(t, err)

	_, err = uc.UpdateTask(ctx, &dto.UpdateTaskInput{
		ID:     created.ID,
		Status: optional.Set(model.TaskStatusCompleted),
	})
	require.NoError(t, err)

	// Re-saving a completed task stays silent.
	_, err = uc.UpdateTask(ctx, &dto.UpdateTaskInput{
		ID:     created.ID,
		Status: optional.Set(model.TaskStatusCompleted),
	})
	require.NoError(t, err)

	notifications, err := notificationRepo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, "Task Completed", notifications[0].Title)
}

func TestDeleteTaskIdempotent(t *testing.T) {
	ctx := context.Background()
	uc, _ := newUseCase(t)

	created, err := uc.CreateTask(ctx, &dto.CreateTaskInput{Title: "Write report"})
	require.NoError(t, err)

	require.NoError(t, uc.DeleteTask(ctx, created.ID))
	require.NoError(t, uc.DeleteTask(ctx, created.ID))

	got, err := uc.GetTask(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestDeleteTaskCascadesNotifications(t *testing.T) {
	ctx := context.Background()
	uc, notificationRepo := newUseCase(t)

	created, err := uc.CreateTask(ctx, &dto.CreateTaskInput{
		Title:    "Patch servers",
		Priority: model.TaskPriorityHigh,
	})
	require.NoError(t, err)

	notifications, err := notificationRepo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, notifications, 1)

	require.NoError(t, uc.DeleteTask(ctx, created.ID))

	notifications, err = notificationRepo.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, notifications)
}
