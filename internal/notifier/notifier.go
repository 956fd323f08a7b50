// Package notifier runs the notification side effects of entity mutations:
// rule evaluation right after a successful write, and cascade cleanup when an
// entity is deleted. Everything here is best-effort; a failure is logged and
// never propagated into the mutation that triggered it.
package notifier

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/averine/opshub-service/internal/model"
	"github.com/averine/opshub-service/internal/notification"
	"github.com/averine/opshub-service/internal/notifier/rules"
	"github.com/averine/opshub-service/pkg/logger"
)

// Events is what entity use cases call after their mutations commit.
type Events interface {
	TaskCreated(ctx context.Context, t *model.Task)
	TaskUpdated(ctx context.Context, before, after *model.Task)
	InventoryCreated(ctx context.Context, inv *model.Inventory)
	InventoryUpdated(ctx context.Context, before, after *model.Inventory)
	EntityDeleted(ctx context.Context, entityType model.EntityType, entityID int64)
}

// ProductResolver looks up the product an inventory row references.
// Satisfied by the product repository.
type ProductResolver interface {
	FindByID(ctx context.Context, id int64) (*model.Product, error)
}

type Service struct {
	notifications notification.Repository
	products      ProductResolver
	logger        logger.ZapLogger
}

func NewService(notifications notification.Repository, products ProductResolver, log logger.ZapLogger) *Service {
	return &Service{
		notifications: notifications,
		products:      products,
		logger:        log,
	}
}

func (s *Service) TaskCreated(ctx context.Context, t *model.Task) {
	s.insert(ctx, rules.TaskCreated(t))
}

func (s *Service) TaskUpdated(ctx context.Context, before, after *model.Task) {
	s.insert(ctx, rules.TaskCompleted(before, after))
}

func (s *Service) InventoryCreated(ctx context.Context, inv *model.Inventory) {
	s.insert(ctx, rules.InventoryCreated(inv, s.productInfo(ctx, inv.ProductID)))
}

func (s *Service) InventoryUpdated(ctx context.Context, _, after *model.Inventory) {
	s.insert(ctx, rules.InventoryAdjusted(after, s.productInfo(ctx, after.ProductID)))
}

// EntityDeleted removes the notifications referencing the deleted entity.
// Matching is on the (type, id) pair; a numerically equal id under another
// entity type is left alone, as are notifications without a reference.
func (s *Service) EntityDeleted(ctx context.Context, entityType model.EntityType, entityID int64) {
	if err := s.notifications.DeleteByEntity(ctx, entityType, entityID); err != nil {
		s.logger.Error("failed to cascade-delete notifications",
			zap.String("entity_type", string(entityType)),
			zap.Int64("entity_id", entityID),
			zap.Error(err),
		)
	}
}

// productInfo resolves the product referenced by an inventory row. A lookup
// failure or a dangling reference degrades to the placeholder instead of
// failing the mutation.
func (s *Service) productInfo(ctx context.Context, productID int64) rules.ProductInfo {
	p, err := s.products.FindByID(ctx, productID)
	if err != nil {
		s.logger.Warn("failed to resolve product for notification",
			zap.Int64("product_id", productID),
			zap.Error(err),
		)
		return rules.UnknownProduct
	}
	if p == nil {
		return rules.UnknownProduct
	}
	return rules.ProductInfo{Name: p.Name, SKU: p.SKU}
}

func (s *Service) insert(ctx context.Context, d *rules.Draft) {
	if d == nil {
		return
	}
	n := &model.Notification{
		Title:     d.Title,
		Message:   d.Message,
		Type:      d.Type,
		Entity:    d.Entity,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.notifications.Create(ctx, n); err != nil {
		s.logger.Error("failed to create notification",
			zap.String("title", d.Title),
			zap.Error(err),
		)
	}
}
