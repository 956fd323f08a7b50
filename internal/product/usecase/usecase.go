package usecase

import (
	"context"
	"crypto/md5"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/averine/opshub-service/internal/inventory"
	"github.com/averine/opshub-service/internal/model"
	"github.com/averine/opshub-service/internal/notifier"
	"github.com/averine/opshub-service/internal/product"
	"github.com/averine/opshub-service/internal/product/dto"
	"github.com/averine/opshub-service/pkg/apperrors"
	"github.com/averine/opshub-service/pkg/cache"
	"github.com/averine/opshub-service/pkg/logger"
)

const listCacheTTL = 5 * time.Minute

type productUseCase struct {
	repo      product.Repository
	inventory inventory.Repository
	cache     *cache.RedisClient // nil when Redis is unavailable
	events    notifier.Events
	logger    logger.ZapLogger
}

func NewProductUseCase(
	repo product.Repository,
	inventoryRepo inventory.Repository,
	redisCache *cache.RedisClient,
	events notifier.Events,
	log logger.ZapLogger,
) product.UseCase {
	return &productUseCase{
		repo:      repo,
		inventory: inventoryRepo,
		cache:     redisCache,
		events:    events,
		logger:    log,
	}
}

func (uc *productUseCase) CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	unique, err := uc.repo.IsSKUUnique(ctx, input.SKU, 0)
	if err != nil {
		return nil, err
	}
	if !unique {
		return nil, apperrors.NewConflict("sku", input.SKU)
	}

	now := time.Now().UTC()
	p := &model.Product{
		BaseModel:   model.BaseModel{CreatedAt: now, UpdatedAt: now},
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		SKU:         input.SKU,
		Category:    input.Category,
	}

	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	go uc.invalidateListCache(context.Background())
	return p, nil
}

func (uc *productUseCase) GetProduct(ctx context.Context, id int64) (*model.Product, error) {
	return uc.repo.FindByID(ctx, id)
}

func (uc *productUseCase) ListProducts(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, error) {
	cacheKey := uc.listCacheKey(filters)

	if uc.cache != nil && cacheKey != "" {
		if val, err := uc.cache.Client.Get(ctx, cacheKey).Result(); err == nil {
			var cached []model.Product
			if err := json.Unmarshal([]byte(val), &cached); err == nil {
				return cached, nil
			}
		}
	}

	products, err := uc.repo.FindAll(ctx, filters)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil && cacheKey != "" {
		if data, err := json.Marshal(products); err == nil {
			uc.cache.Client.Set(ctx, cacheKey, data, listCacheTTL)
		}
	}

	return products, nil
}

func (uc *productUseCase) UpdateProduct(ctx context.Context, input *dto.UpdateProductInput) (*model.Product, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	p, err := uc.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperrors.NewNotFound("product", input.ID)
	}

	if input.SKU.Present {
		// The row being updated is excluded from the check.
		unique, err := uc.repo.IsSKUUnique(ctx, input.SKU.Value, p.ID)
		if err != nil {
			return nil, err
		}
		if !unique {
			return nil, apperrors.NewConflict("sku", input.SKU.Value)
		}
		p.SKU = input.SKU.Value
	}
	if input.Name.Present {
		p.Name = input.Name.Value
	}
	if input.Description.Present {
		p.Description = input.Description.Ptr()
	}
	if input.Price.Present {
		p.Price = input.Price.Value
	}
	if input.Category.Present {
		p.Category = input.Category.Ptr()
	}

	p.UpdatedAt = time.Now().UTC()

	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	go uc.invalidateListCache(context.Background())
	return p, nil
}

// DeleteProduct removes the product, its inventory rows, and the
// notifications referencing any of them. The steps are sequential store
// operations, not one transaction; a crash mid-way can leave orphans.
func (uc *productUseCase) DeleteProduct(ctx context.Context, id int64) error {
	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return nil // Already deleted
	}

	rows, err := uc.inventory.FindByProduct(ctx, id)
	if err != nil {
		return err
	}
	for i := range rows {
		uc.events.EntityDeleted(ctx, model.EntityInventory, rows[i].ID)
		if err := uc.inventory.Delete(ctx, rows[i].ID); err != nil {
			return err
		}
	}

	uc.events.EntityDeleted(ctx, model.EntityProduct, id)
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	go uc.invalidateListCache(context.Background())
	return nil
}

func (uc *productUseCase) listCacheKey(filters *dto.ProductFilters) string {
	data, err := json.Marshal(filters)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("products:list:%x", md5.Sum(data))
}

func (uc *productUseCase) invalidateListCache(ctx context.Context) {
	if uc.cache == nil {
		return
	}
	keys, err := uc.cache.Client.Keys(ctx, "products:list:*").Result()
	if err != nil {
		uc.logger.Warn("failed to scan product list cache keys", zap.Error(err))
		return
	}
	if len(keys) > 0 {
		uc.cache.Client.Del(ctx, keys...)
	}
}
