package dto

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/averine/opshub-service/pkg/apperrors"
	"github.com/averine/opshub-service/pkg/optional"
)

type CreateProductInput struct {
	Name        string          `json:"name"`
	Description *string         `json:"description"`
	Price       decimal.Decimal `json:"price"`
	SKU         string          `json:"sku"`
	Category    *string         `json:"category"`
}

func (in *CreateProductInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return apperrors.NewValidation("name", "must not be empty")
	}
	if strings.TrimSpace(in.SKU) == "" {
		return apperrors.NewValidation("sku", "must not be empty")
	}
	if !in.Price.IsPositive() {
		return apperrors.NewValidation("price", "must be greater than zero")
	}
	return nil
}

type UpdateProductInput struct {
	ID          int64                           `json:"id"`
	Name        optional.Field[string]          `json:"name"`
	Description optional.Field[string]          `json:"description"`
	Price       optional.Field[decimal.Decimal] `json:"price"`
	SKU         optional.Field[string]          `json:"sku"`
	Category    optional.Field[string]          `json:"category"`
}

func (in *UpdateProductInput) Validate() error {
	if in.ID <= 0 {
		return apperrors.NewValidation("id", "is required")
	}
	if in.Name.Present && (!in.Name.Valid || strings.TrimSpace(in.Name.Value) == "") {
		return apperrors.NewValidation("name", "must not be empty")
	}
	if in.SKU.Present && (!in.SKU.Valid || strings.TrimSpace(in.SKU.Value) == "") {
		return apperrors.NewValidation("sku", "must not be empty")
	}
	if in.Price.Present && (!in.Price.Valid || !in.Price.Value.IsPositive()) {
		return apperrors.NewValidation("price", "must be greater than zero")
	}
	return nil
}
