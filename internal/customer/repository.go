package customer

import (
	"context"

	"github.com/averine/opshub-service/internal/customer/dto"
	"github.com/averine/opshub-service/internal/model"
)

type Repository interface {
	Create(ctx context.Context, c *model.Customer) error
	FindByID(ctx context.Context, id int64) (*model.Customer, error)
	FindAll(ctx context.Context, filters *dto.CustomerFilters) ([]model.Customer, error)
	Update(ctx context.Context, c *model.Customer) error
	Delete(ctx context.Context, id int64) error

	// IsEmailUnique ignores the row with excludeID (0 for creates).
	IsEmailUnique(ctx context.Context, email string, excludeID int64) (bool, error)
}
