package product

import (
	"context"

	"github.com/averine/opshub-service/internal/model"
	"github.com/averine/opshub-service/internal/product/dto"
)

type Repository interface {
	Create(ctx context.Context, p *model.Product) error
	FindByID(ctx context.Context, id int64) (*model.Product, error)
	FindAll(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, error)
	Update(ctx context.Context, p *model.Product) error
	Delete(ctx context.Context, id int64) error

	// IsSKUUnique checks SKU uniqueness with a case-sensitive exact match,
	// ignoring the row with excludeID (0 for creates).
	IsSKUUnique(ctx context.Context, sku string, excludeID int64) (bool, error)
}
