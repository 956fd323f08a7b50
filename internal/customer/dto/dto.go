package dto

import "github.com/averine/opshub-service/internal/model"

type CustomerFilters struct {
	Status *model.CustomerStatus `json:"status"`
	Search string                `json:"search"` // Matches name, email or company
}
