package model

import "github.com/shopspring/decimal"

// Product.Price is fixed-point; it is stored as text and crosses the wire as a
// decimal string so two-decimal amounts never pick up float drift.
type Product struct {
	BaseModel
	Name        string          `db:"name"`
	Description *string         `db:"description"` // Nullable
	Price       decimal.Decimal `db:"price"`
	SKU         string          `db:"sku"`
	Category    *string         `db:"category"` // Nullable
}
