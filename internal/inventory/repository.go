package inventory

import (
	"context"

	"github.com/averine/opshub-service/internal/inventory/dto"
	"github.com/averine/opshub-service/internal/model"
)

type Repository interface {
	Create(ctx context.Context, inv *model.Inventory) error
	FindByID(ctx context.Context, id int64) (*model.Inventory, error)
	FindAll(ctx context.Context, filters *dto.InventoryFilters) ([]model.Inventory, error)
	FindByProduct(ctx context.Context, productID int64) ([]model.Inventory, error)
	Update(ctx context.Context, inv *model.Inventory) error
	Delete(ctx context.Context, id int64) error
}
