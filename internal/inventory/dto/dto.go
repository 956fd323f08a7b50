package dto

type InventoryFilters struct {
	Location *string `json:"location"`
	// LowStockOnly keeps rows with quantity <= min_stock_level. The listing
	// filter counts at-minimum rows as low; the notification trigger does not.
	LowStockOnly bool `json:"low_stock_only"`
}
