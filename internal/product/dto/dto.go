package dto

type ProductFilters struct {
	Category *string `json:"category"`
	Search   string  `json:"search"` // Matches name or SKU
}
