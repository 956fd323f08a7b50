package task

import (
	"context"

	"github.com/averine/opshub-service/internal/model"
	"github.com/averine/opshub-service/internal/task/dto"
)

type Repository interface {
	Create(ctx context.Context, t *model.Task) error
	FindByID(ctx context.Context, id int64) (*model.Task, error)
	FindAll(ctx context.Context, filters *dto.TaskFilters) ([]model.Task, error)
	Update(ctx context.Context, t *model.Task) error
	Delete(ctx context.Context, id int64) error
}
