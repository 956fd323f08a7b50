package notifier

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/averine/opshub-service/internal/model"
	notificationRepository "github.com/averine/opshub-service/internal/notification/repository"
	productRepository "github.com/averine/opshub-service/internal/product/repository"
	"github.com/averine/opshub-service/internal/testutil"
	"github.com/averine/opshub-service/pkg/logger"
)

func newService(t *testing.T) (*Service, *notificationRepository.SQLiteRepository, *productRepository.SQLiteRepository) {
	db := testutil.NewDB(t)
	notificationRepo := notificationRepository.NewSQLiteRepository(db)
	productRepo := productRepository.NewSQLiteRepository(db)
	return NewService(notificationRepo, productRepo, logger.NewNop()), notificationRepo, productRepo
}

func TestTaskCreatedInsertsNotification(t *testing.T) {
	ctx := context.Background()
	svc, notificationRepo, _ := newService(t)

	svc.TaskCreated(ctx, &model.Task{
		BaseModel: model.BaseModel{ID: 12},
		Title:     "Rotate credentials",
		Priority:  model.TaskPriorityHigh,
		Status:    model.TaskStatusPending,
	})

	notifications, err := notificationRepo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, notifications, 1)

	n := notifications[0]
	assert.Equal(t, "New high priority task created", n.Title)
	assert.Equal(t, model.NotificationInfo, n.Type)
	assert.False(t, n.Read)
	assert.Equal(t, model.NewEntityRef(model.EntityTask, 12), n.Entity)
}

func TestTaskCreatedLowPriorityIsSilent(t *testing.T) {
	ctx := context.Background()
	svc, notificationRepo, _ := newService(t)

	svc.TaskCreated(ctx, &model.Task{
		BaseModel: model.BaseModel{ID: 12},
		Title:     "Tidy desk",
		Priority:  model.TaskPriorityLow,
		Status:    model.TaskStatusPending,
	})

	notifications, err := notificationRepo.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, notifications)
}

func TestInventoryCreatedResolvesProduct(t *testing.T) {
	ctx := context.Background()
	svc, notificationRepo, productRepo := newService(t)

	now := time.Now().UTC()
	p := &model.Product{
		BaseModel: model.BaseModel{CreatedAt: now, UpdatedAt: now},
		Name:      "Widget",
		Price:     decimal.NewFromInt(5),
		SKU:       "WID-1",
	}
	require.NoError(t, productRepo.Create(ctx, p))

	svc.InventoryCreated(ctx, &model.Inventory{
		ID:            4,
		ProductID:     p.ID,
		Quantity:      1,
		MinStockLevel: 10,
	})

	notifications, err := notificationRepo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, "Widget (SKU: WID-1) is running low: 1 units in stock, minimum is 10", notifications[0].Message)
}

func TestInventoryCreatedDanglingProductFallsBack(t *testing.T) {
	ctx := context.Background()
	svc, notificationRepo, _ := newService(t)

	svc.InventoryCreated(ctx, &model.Inventory{
		ID:            4,
		ProductID:     999,
		Quantity:      1,
		MinStockLevel: 10,
	})

	notifications, err := notificationRepo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, "Unknown Product (SKU: ) is running low: 1 units in stock, minimum is 10", notifications[0].Message)
}

func TestEntityDeletedRemovesOnlyMatchingReferences(t *testing.T) {
	ctx := context.Background()
	svc, notificationRepo, _ := newService(t)

	now := time.Now().UTC()
	seed := []model.Notification{
		{Title: "a", Message: "m", Type: model.NotificationInfo, Entity: model.NewEntityRef(model.EntityProduct, 5), CreatedAt: now},
		{Title: "b", Message: "m", Type: model.NotificationInfo, Entity: model.NewEntityRef(model.EntityInventory, 5), CreatedAt: now},
		{Title: "c", Message: "m", Type: model.NotificationInfo, CreatedAt: now},
	}
	for i := range seed {
		require.NoError(t, notificationRepo.Create(ctx, &seed[i]))
	}

	svc.EntityDeleted(ctx, model.EntityProduct, 5)

	remaining, err := notificationRepo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 2)

	titles := []string{remaining[0].Title, remaining[1].Title}
	assert.Contains(t, titles, "b") // inventory 5 shares the number, not the type
	assert.Contains(t, titles, "c") // unreferenced rows are never touched
}
