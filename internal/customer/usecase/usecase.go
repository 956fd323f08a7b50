package usecase

import (
	"context"
	"time"

	"github.com/averine/opshub-service/internal/customer"
	"github.com/averine/opshub-service/internal/customer/dto"
	"github.com/averine/opshub-service/internal/model"
	"github.com/averine/opshub-service/internal/notifier"
	"github.com/averine/opshub-service/pkg/apperrors"
	"github.com/averine/opshub-service/pkg/logger"
)

type customerUseCase struct {
	repo   customer.Repository
	events notifier.Events
	logger logger.ZapLogger
}

func NewCustomerUseCase(repo customer.Repository, events notifier.Events, log logger.ZapLogger) customer.UseCase {
	return &customerUseCase{
		repo:   repo,
		events: events,
		logger: log,
	}
}

func (uc *customerUseCase) CreateCustomer(ctx context.Context, input *dto.CreateCustomerInput) (*model.Customer, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	unique, err := uc.repo.IsEmailUnique(ctx, input.Email, 0)
	if err != nil {
		return nil, err
	}
	if !unique {
		return nil, apperrors.NewConflict("email", input.Email)
	}

	now := time.Now().UTC()
	c := &model.Customer{
		BaseModel: model.BaseModel{CreatedAt: now, UpdatedAt: now},
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		Address:   input.Address,
		Company:   input.Company,
		Status:    input.Status,
	}

	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (uc *customerUseCase) GetCustomer(ctx context.Context, id int64) (*model.Customer, error) {
	return uc.repo.FindByID(ctx, id)
}

func (uc *customerUseCase) ListCustomers(ctx context.Context, filters *dto.CustomerFilters) ([]model.Customer, error) {
	return uc.repo.FindAll(ctx, filters)
}

func (uc *customerUseCase) UpdateCustomer(ctx context.Context, input *dto.UpdateCustomerInput) (*model.Customer, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	c, err := uc.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperrors.NewNotFound("customer", input.ID)
	}

	if input.Email.Present {
		unique, err := uc.repo.IsEmailUnique(ctx, input.Email.Value, c.ID)
		if err != nil {
			return nil, err
		}
		if !unique {
			return nil, apperrors.NewConflict("email", input.Email.Value)
		}
		c.Email = input.Email.Value
	}
	if input.Name.Present {
		c.Name = input.Name.Value
	}
	if input.Phone.Present {
		c.Phone = input.Phone.Ptr()
	}
	if input.Address.Present {
		c.Address = input.Address.Ptr()
	}
	if input.Company.Present {
		c.Company = input.Company.Ptr()
	}
	if input.Status.Present {
		c.Status = input.Status.Value
	}

	c.UpdatedAt = time.Now().UTC()

	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// DeleteCustomer is idempotent: deleting an absent id succeeds silently.
func (uc *customerUseCase) DeleteCustomer(ctx context.Context, id int64) error {
	c, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if c == nil {
		return nil
	}

	uc.events.EntityDeleted(ctx, model.EntityCustomer, id)
	return uc.repo.Delete(ctx, id)
}
