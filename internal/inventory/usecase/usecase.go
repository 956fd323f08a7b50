package usecase

import (
	"context"
	"time"

	"github.com/averine/opshub-service/internal/inventory"
	"github.com/averine/opshub-service/internal/inventory/dto"
	"github.com/averine/opshub-service/internal/model"
	"github.com/averine/opshub-service/internal/notifier"
	"github.com/averine/opshub-service/pkg/apperrors"
	"github.com/averine/opshub-service/pkg/logger"
)

type inventoryUseCase struct {
	repo   inventory.Repository
	events notifier.Events
	logger logger.ZapLogger
}

func NewInventoryUseCase(repo inventory.Repository, events notifier.Events, log logger.ZapLogger) inventory.UseCase {
	return &inventoryUseCase{
		repo:   repo,
		events: events,
		logger: log,
	}
}

func (uc *inventoryUseCase) CreateInventory(ctx context.Context, input *dto.CreateInventoryInput) (*model.Inventory, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	inv := &model.Inventory{
		ProductID:     input.ProductID,
		Quantity:      *input.Quantity,
		MinStockLevel: *input.MinStockLevel,
		MaxStockLevel: *input.MaxStockLevel,
		Location:      input.Location,
		CreatedAt:     now,
		LastUpdated:   now,
	}

	if err := uc.repo.Create(ctx, inv); err != nil {
		return nil, err
	}

	uc.events.InventoryCreated(ctx, inv)
	return inv, nil
}

func (uc *inventoryUseCase) GetInventory(ctx context.Context, id int64) (*model.Inventory, error) {
	return uc.repo.FindByID(ctx, id)
}

func (uc *inventoryUseCase) ListInventory(ctx context.Context, filters *dto.InventoryFilters) ([]model.Inventory, error) {
	return uc.repo.FindAll(ctx, filters)
}

func (uc *inventoryUseCase) UpdateInventory(ctx context.Context, input *dto.UpdateInventoryInput) (*model.Inventory, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	inv, err := uc.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, apperrors.NewNotFound("inventory", input.ID)
	}

	before := *inv

	// Supplied fields win; everything else keeps its pre-update value. The
	// low-stock rule sees this merged row.
	if input.ProductID.Present {
		inv.ProductID = input.ProductID.Value
	}
	if input.Quantity.Present {
		inv.Quantity = input.Quantity.Value
	}
	if input.MinStockLevel.Present {
		inv.MinStockLevel = input.MinStockLevel.Value
	}
	if input.MaxStockLevel.Present {
		inv.MaxStockLevel = input.MaxStockLevel.Value
	}
	if input.Location.Present {
		inv.Location = input.Location.Ptr()
	}

	inv.LastUpdated = time.Now().UTC()

	if err := uc.repo.Update(ctx, inv); err != nil {
		return nil, err
	}

	uc.events.InventoryUpdated(ctx, &before, inv)
	return inv, nil
}

// DeleteInventory is idempotent: deleting an absent id succeeds silently.
func (uc *inventoryUseCase) DeleteInventory(ctx context.Context, id int64) error {
	inv, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if inv == nil {
		return nil
	}

	uc.events.EntityDeleted(ctx, model.EntityInventory, id)
	return uc.repo.Delete(ctx, id)
}
