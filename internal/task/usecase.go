package task

import (
	"context"

	"github.com/averine/opshub-service/internal/model"
	"github.com/averine/opshub-service/internal/task/dto"
)

type UseCase interface {
	CreateTask(ctx context.Context, input *dto.CreateTaskInput) (*model.Task, error)
	GetTask(ctx context.Context, id int64) (*model.Task, error)
	ListTasks(ctx context.Context, filters *dto.TaskFilters) ([]model.Task, error)
	UpdateTask(ctx context.Context, input *dto.UpdateTaskInput) (*model.Task, error)
	DeleteTask(ctx context.Context, id int64) error
}
