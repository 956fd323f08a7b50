package customer

import (
	"context"

	"github.com/averine/opshub-service/internal/customer/dto"
	"github.com/averine/opshub-service/internal/model"
)

type UseCase interface {
	CreateCustomer(ctx context.Context, input *dto.CreateCustomerInput) (*model.Customer, error)
	GetCustomer(ctx context.Context, id int64) (*model.Customer, error)
	ListCustomers(ctx context.Context, filters *dto.CustomerFilters) ([]model.Customer, error)
	UpdateCustomer(ctx context.Context, input *dto.UpdateCustomerInput) (*model.Customer, error)
	DeleteCustomer(ctx context.Context, id int64) error
}
