package model

import "time"

// Inventory links to a product by id only; the link is not enforced and may
// dangle. The update timestamp is named last_updated, unlike other entities.
type Inventory struct {
	ID            int64     `db:"id"`
	ProductID     int64     `db:"product_id"`
	Quantity      int64     `db:"quantity"`
	MinStockLevel int64     `db:"min_stock_level"`
	MaxStockLevel int64     `db:"max_stock_level"`
	Location      *string   `db:"location"` // Nullable
	CreatedAt     time.Time `db:"created_at"`
	LastUpdated   time.Time `db:"last_updated"`
}
