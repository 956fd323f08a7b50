package dto

import (
	"github.com/averine/opshub-service/pkg/apperrors"
	"github.com/averine/opshub-service/pkg/optional"
)

type CreateInventoryInput struct {
	ProductID     int64   `json:"product_id"`
	Quantity      *int64  `json:"quantity"`
	MinStockLevel *int64  `json:"min_stock_level"`
	MaxStockLevel *int64  `json:"max_stock_level"`
	Location      *string `json:"location"`
}

// Validate checks ranges only; min exceeding max is a caller mistake the
// system deliberately does not reject.
func (in *CreateInventoryInput) Validate() error {
	if in.ProductID <= 0 {
		return apperrors.NewValidation("product_id", "is required")
	}
	if in.Quantity == nil {
		return apperrors.NewValidation("quantity", "is required")
	}
	if *in.Quantity < 0 {
		return apperrors.NewValidation("quantity", "must not be negative")
	}
	if in.MinStockLevel == nil {
		return apperrors.NewValidation("min_stock_level", "is required")
	}
	if *in.MinStockLevel < 0 {
		return apperrors.NewValidation("min_stock_level", "must not be negative")
	}
	if in.MaxStockLevel == nil {
		return apperrors.NewValidation("max_stock_level", "is required")
	}
	if *in.MaxStockLevel < 1 {
		return apperrors.NewValidation("max_stock_level", "must be at least 1")
	}
	return nil
}

type UpdateInventoryInput struct {
	ID            int64                  `json:"id"`
	ProductID     optional.Field[int64]  `json:"product_id"`
	Quantity      optional.Field[int64]  `json:"quantity"`
	MinStockLevel optional.Field[int64]  `json:"min_stock_level"`
	MaxStockLevel optional.Field[int64]  `json:"max_stock_level"`
	Location      optional.Field[string] `json:"location"`
}

func (in *UpdateInventoryInput) Validate() error {
	if in.ID <= 0 {
		return apperrors.NewValidation("id", "is required")
	}
	if in.ProductID.Present && (!in.ProductID.Valid || in.ProductID.Value <= 0) {
		return apperrors.NewValidation("product_id", "must reference a product")
	}
	if in.Quantity.Present && (!in.Quantity.Valid || in.Quantity.Value < 0) {
		return apperrors.NewValidation("quantity", "must not be negative")
	}
	if in.MinStockLevel.Present && (!in.MinStockLevel.Valid || in.MinStockLevel.Value < 0) {
		return apperrors.NewValidation("min_stock_level", "must not be negative")
	}
	if in.MaxStockLevel.Present && (!in.MaxStockLevel.Valid || in.MaxStockLevel.Value < 1) {
		return apperrors.NewValidation("max_stock_level", "must be at least 1")
	}
	return nil
}
