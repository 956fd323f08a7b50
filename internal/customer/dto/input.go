package dto

import (
	"strings"

	"github.com/averine/opshub-service/internal/model"
	"github.com/averine/opshub-service/pkg/apperrors"
	"github.com/averine/opshub-service/pkg/optional"
)

type CreateCustomerInput struct {
	Name    string               `json:"name"`
	Email   string               `json:"email"`
	Phone   *string              `json:"phone"`
	Address *string              `json:"address"`
	Company *string              `json:"company"`
	Status  model.CustomerStatus `json:"status"`
}

func (in *CreateCustomerInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return apperrors.NewValidation("name", "must not be empty")
	}
	if strings.TrimSpace(in.Email) == "" {
		return apperrors.NewValidation("email", "must not be empty")
	}
	if in.Status == "" {
		in.Status = model.CustomerStatusActive
	}
	if !in.Status.Valid() {
		return apperrors.NewValidation("status", "must be one of active, inactive")
	}
	return nil
}

type UpdateCustomerInput struct {
	ID      int64                                `json:"id"`
	Name    optional.Field[string]               `json:"name"`
	Email   optional.Field[string]               `json:"email"`
	Phone   optional.Field[string]               `json:"phone"`
	Address optional.Field[string]               `json:"address"`
	Company optional.Field[string]               `json:"company"`
	Status  optional.Field[model.CustomerStatus] `json:"status"`
}

func (in *UpdateCustomerInput) Validate() error {
	if in.ID <= 0 {
		return apperrors.NewValidation("id", "is required")
	}
	if in.Name.Present && (!in.Name.Valid || strings.TrimSpace(in.Name.Value) == "") {
		return apperrors.NewValidation("name", "must not be empty")
	}
	if in.Email.Present && (!in.Email.Valid || strings.TrimSpace(in.Email.Value) == "") {
		return apperrors.NewValidation("email", "must not be empty")
	}
	if in.Status.Present && (!in.Status.Valid || !in.Status.Value.Valid()) {
		return apperrors.NewValidation("status", "must be one of active, inactive")
	}
	return nil
}
