package usecase

import (
	"context"
	"time"

	"github.com/averine/opshub-service/internal/model"
	"github.com/averine/opshub-service/internal/notifier"
	"github.com/averine/opshub-service/internal/task"
	"github.com/averine/opshub-service/internal/task/dto"
	"github.com/averine/opshub-service/pkg/apperrors"
	"github.com/averine/opshub-service/pkg/logger"
)

type taskUseCase struct {
	repo   task.Repository
	events notifier.Events
	logger logger.ZapLogger
}

func NewTaskUseCase(repo task.Repository, events notifier.Events, log logger.ZapLogger) task.UseCase {
	return &taskUseCase{
		repo:   repo,
		events: events,
		logger: log,
	}
}

func (uc *taskUseCase) CreateTask(ctx context.Context, input *dto.CreateTaskInput) (*model.Task, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	t := &model.Task{
		BaseModel:   model.BaseModel{CreatedAt: now, UpdatedAt: now},
		Title:       input.Title,
		Description: input.Description,
		Status:      input.Status,
		Priority:    input.Priority,
		DueDate:     input.DueDate,
	}

	if err := uc.repo.Create(ctx, t); err != nil {
		return nil, err
	}

	uc.events.TaskCreated(ctx, t)
	return t, nil
}

func (uc *taskUseCase) GetTask(ctx context.Context, id int64) (*model.Task, error) {
	return uc.repo.FindByID(ctx, id)
}

func (uc *taskUseCase) ListTasks(ctx context.Context, filters *dto.TaskFilters) ([]model.Task, error) {
	return uc.repo.FindAll(ctx, filters)
}

func (uc *taskUseCase) UpdateTask(ctx context.Context, input *dto.UpdateTaskInput) (*model.Task, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	t, err := uc.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, apperrors.NewNotFound("task", input.ID)
	}

	before := *t

	if input.Title.Present {
		t.Title = input.Title.Value
	}
	if input.Description.Present {
		t.Description = input.Description.Ptr()
	}
	if input.Status.Present {
		t.Status = input.Status.Value
	}
	if input.Priority.Present {
		t.Priority = input.Priority.Value
	}
	if input.DueDate.Present {
		t.DueDate = input.DueDate.Ptr()
	}

	// Touched even when no business field changed.
	t.UpdatedAt = time.Now().UTC()

	if err := uc.repo.Update(ctx, t); err != nil {
		return nil, err
	}

	uc.events.TaskUpdated(ctx, &before, t)
	return t, nil
}

// DeleteTask is idempotent: deleting an absent id succeeds silently.
func (uc *taskUseCase) DeleteTask(ctx context.Context, id int64) error {
	t, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if t == nil {
		return nil
	}

	uc.events.EntityDeleted(ctx, model.EntityTask, id)
	return uc.repo.Delete(ctx, id)
}
