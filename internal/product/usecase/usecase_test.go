package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	inventoryRepository "github.com/averine/opshub-service/internal/inventory/repository"
	"github.com/averine/opshub-service/internal/model"
	notificationRepository "github.com/averine/opshub-service/internal/notification/repository"
	"github.com/averine/opshub-service/internal/notifier"
	"github.com/averine/opshub-service/internal/product"
	"github.com/averine/opshub-service/internal/product/dto"
	"github.com/averine/opshub-service/internal/product/repository"
	"github.com/averine/opshub-service/internal/testutil"
	"github.com/averine/opshub-service/pkg/apperrors"
	"github.com/averine/opshub-service/pkg/logger"
	"github.com/averine/opshub-service/pkg/optional"
)

type fixture struct {
	uc            product.UseCase
	inventories   *inventoryRepository.SQLiteRepository
	notifications *notificationRepository.SQLiteRepository
}

func newFixture(t *testing.T) fixture {
	db := testutil.NewDB(t)
	productRepo := repository.NewSQLiteRepository(db)
	inventoryRepo := inventoryRepository.NewSQLiteRepository(db)
	notificationRepo := notificationRepository.NewSQLiteRepository(db)
	events := notifier.NewService(notificationRepo, productRepo, logger.NewNop())

	return fixture{
		uc:            NewProductUseCase(productRepo, inventoryRepo, nil, events, logger.NewNop()),
		inventories:   inventoryRepo,
		notifications: notificationRepo,
	}
}

func createProduct(t *testing.T, uc product.UseCase, name, sku string) *model.Product {
	t.Helper()
	p, err := uc.CreateProduct(context.Background(), &dto.CreateProductInput{
		Name:  name,
		Price: decimal.RequireFromString("19.99"),
		SKU:   sku,
	})
	require.NoError(t, err)
	return p
}

func TestCreateProductDuplicateSKU(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	createProduct(t, f.uc, "Widget", "WID-1")

	_, err := f.uc.CreateProduct(ctx, &dto.CreateProductInput{
		Name:  "Other Widget",
		Price: decimal.NewFromInt(5),
		SKU:   "WID-1",
	})
	assert.True(t, apperrors.IsConflict(err))

	// The first product is untouched by the failed create.
	products, err := f.uc.ListProducts(ctx, nil)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Widget", products[0].Name)
}

func TestCreateProductValidation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.uc.CreateProduct(ctx, &dto.CreateProductInput{
		Name:  "Widget",
		Price: decimal.Zero,
		SKU:   "WID-1",
	})
	assert.True(t, apperrors.IsValidation(err))

	_, err = f.uc.CreateProduct(ctx, &dto.CreateProductInput{
		Name:  "Widget",
		Price: decimal.NewFromInt(-3),
		SKU:   "WID-1",
	})
	assert.True(t, apperrors.IsValidation(err))
}

func TestProductPriceRoundTrip(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	created := createProduct(t, f.uc, "Widget", "WID-1")

	got, err := f.uc.GetProduct(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Price.Equal(decimal.RequireFromString("19.99")), "got %s", got.Price)
}

func TestUpdateProductSKUConflictExcludesSelf(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	a := createProduct(t, f.uc, "Widget", "WID-1")
	createProduct(t, f.uc, "Gadget", "GAD-1")

	// Re-sending a product's own sku is not a conflict.
	_, err := f.uc.UpdateProduct(ctx, &dto.UpdateProductInput{
		ID:  a.ID,
		SKU: optional.Set("WID-1"),
	})
	require.NoError(t, err)

	// Taking another product's sku is.
	_, err = f.uc.UpdateProduct(ctx, &dto.UpdateProductInput{
		ID:  a.ID,
		SKU: optional.Set("GAD-1"),
	})
	assert.True(t, apperrors.IsConflict(err))
}

func TestUpdateProductMissingIsNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.UpdateProduct(context.Background(), &dto.UpdateProductInput{
		ID:   77,
		Name: optional.Set("Renamed"),
	})
	assert.True(t, apperrors.IsNotFound(err))
}

func TestDeleteProductCascades(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	p := createProduct(t, f.uc, "Widget", "WID-1")
	other := createProduct(t, f.uc, "Gadget", "GAD-1")

	now := time.Now().UTC()
	inv := &model.Inventory{ProductID: p.ID, Quantity: 3, MinStockLevel: 10, MaxStockLevel: 50, CreatedAt: now, LastUpdated: now}
	require.NoError(t, f.inventories.Create(ctx, inv))
	otherInv := &model.Inventory{ProductID: other.ID, Quantity: 3, MinStockLevel: 10, MaxStockLevel: 50, CreatedAt: now, LastUpdated: now}
	require.NoError(t, f.inventories.Create(ctx, otherInv))

	seed := []model.Notification{
		{Title: "inv-alert", Message: "m", Type: model.NotificationWarning, Entity: model.NewEntityRef(model.EntityInventory, inv.ID), CreatedAt: now},
		{Title: "prod-note", Message: "m", Type: model.NotificationInfo, Entity: model.NewEntityRef(model.EntityProduct, p.ID), CreatedAt: now},
		{Title: "other", Message: "m", Type: model.NotificationInfo, Entity: model.NewEntityRef(model.EntityInventory, otherInv.ID), CreatedAt: now},
	}
	for i := range seed {
		require.NoError(t, f.notifications.Create(ctx, &seed[i]))
	}

	require.NoError(t, f.uc.DeleteProduct(ctx, p.ID))

	got, err := f.uc.GetProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	rows, err := f.inventories.FindByProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.Empty(t, rows)

	remaining, err := f.notifications.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "other", remaining[0].Title)

	// The other product's inventory survives.
	rows, err = f.inventories.FindByProduct(ctx, other.ID)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestDeleteProductIdempotent(t *testing.T) {
	f := newFixture(t)
	assert.NoError(t, f.uc.DeleteProduct(context.Background(), 404))
}
