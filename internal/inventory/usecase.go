package inventory

import (
	"context"

	"github.com/averine/opshub-service/internal/inventory/dto"
	"github.com/averine/opshub-service/internal/model"
)

type UseCase interface {
	CreateInventory(ctx context.Context, input *dto.CreateInventoryInput) (*model.Inventory, error)
	GetInventory(ctx context.Context, id int64) (*model.Inventory, error)
	ListInventory(ctx context.Context, filters *dto.InventoryFilters) ([]model.Inventory, error)
	UpdateInventory(ctx context.Context, input *dto.UpdateInventoryInput) (*model.Inventory, error)
	DeleteInventory(ctx context.Context, id int64) error
}
