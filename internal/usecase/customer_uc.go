package usecase

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/freshfold/freshfold/internal/domain"
)

type CustomerUC struct {
	Customers domain.CustomerRepo
}

// Add validates the input and inserts a new customer. The phone unique
// constraint is the final arbiter of duplicates.
func (uc *CustomerUC) Add(ctx context.Context, in CustomerInput) (*domain.Customer, error) {
	if err := validateCustomer(&in); err != nil {
		return nil, err
	}
	c := &domain.Customer{
		Name:    in.Name,
		Phone:   in.Phone,
		Email:   in.Email,
		Address: in.Address,
	}
	if err := uc.Customers.Create(ctx, c); err != nil {
		if errors.Is(err, domain.ErrDuplicatePhone) {
			return nil, domain.ErrDuplicatePhone
		}
		log.Error().Err(err).Str("phone", in.Phone).Msg("create customer")
		return nil, err
	}
	return c, nil
}

// List returns all customers, most recently created first.
func (uc *CustomerUC) List(ctx context.Context) ([]domain.Customer, error) {
	return uc.Customers.List(ctx)
}

// Update re-validates the input and pre-checks the phone against other
// customers before writing. Two concurrent updates can both pass the
// pre-check; the unique constraint still rejects the loser, the pre-check
// only buys a better error message.
func (uc *CustomerUC) Update(ctx context.Context, id uint, in CustomerInput) (*domain.Customer, error) {
	if err := validateCustomer(&in); err != nil {
		return nil, err
	}
	taken, err := uc.Customers.PhoneInUse(ctx, in.Phone, id)
	if err != nil {
		log.Error().Err(err).Uint("customer_id", id).Msg("phone pre-check")
		return nil, err
	}
	if taken {
		return nil, domain.ErrDuplicatePhone
	}
	c := &domain.Customer{
		ID:      id,
		Name:    in.Name,
		Phone:   in.Phone,
		Email:   in.Email,
		Address: in.Address,
	}
	if err := uc.Customers.Update(ctx, c); err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrDuplicatePhone) {
			return nil, err
		}
		log.Error().Err(err).Uint("customer_id", id).Msg("update customer")
		return nil, err
	}
	return c, nil
}

// Delete removes a customer. Deletion is blocked while any order still
// references the customer.
func (uc *CustomerUC) Delete(ctx context.Context, id uint) error {
	err := uc.Customers.Delete(ctx, id)
	if err != nil && !errors.Is(err, domain.ErrNotFound) && !errors.Is(err, domain.ErrHasDependentOrders) {
		log.Error().Err(err).Uint("customer_id", id).Msg("delete customer")
	}
	return err
}
