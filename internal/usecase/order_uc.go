package usecase

import (
	"context"
	"errors"
	"math"

	"github.com/rs/zerolog/log"

	"github.com/freshfold/freshfold/internal/domain"
	"github.com/freshfold/freshfold/internal/pricing"
)

type OrderUC struct {
	Orders domain.OrderRepo
	Prices *pricing.Table
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Create validates the input, derives the unit price when none was supplied,
// computes the total once, and inserts the order. A supplied price must be
// positive to be honored; zero or negative falls back to the pricing table.
func (uc *OrderUC) Create(ctx context.Context, in OrderInput) (*domain.Order, error) {
	if err := validateOrder(&in); err != nil {
		return nil, err
	}

	unit := uc.Prices.PriceFor(in.ServiceName)
	if in.PricePerUnit != nil && *in.PricePerUnit > 0 {
		unit = *in.PricePerUnit
	}

	priority := domain.OrderPriority(in.Priority)
	if !domain.ValidPriority(priority) {
		priority = domain.PriorityMedium
	}

	o := &domain.Order{
		CustomerID:   in.CustomerID,
		ServiceName:  in.ServiceName,
		Quantity:     in.Quantity,
		PricePerUnit: unit,
		TotalAmount:  round2(float64(in.Quantity) * unit),
		Status:       domain.OrderStatusReceived,
		Priority:     priority,
		Notes:        in.Notes,
	}
	if err := uc.Orders.Create(ctx, o); err != nil {
		if errors.Is(err, domain.ErrInvalidCustomer) {
			return nil, domain.ErrInvalidCustomer
		}
		log.Error().Err(err).Uint("customer_id", in.CustomerID).Msg("create order")
		return nil, err
	}
	return o, nil
}

// List returns the full order book joined with customer identity, most
// recent first. Orders whose customer was removed out-of-band still appear
// with null customer fields.
func (uc *OrderUC) List(ctx context.Context) ([]domain.OrderWithCustomer, error) {
	return uc.Orders.ListWithCustomer(ctx)
}

// UpdateStatus moves an order to any member of the canonical status set.
func (uc *OrderUC) UpdateStatus(ctx context.Context, id uint, status domain.OrderStatus) error {
	if !domain.ValidStatus(status) {
		return domain.ErrInvalidStatus
	}
	err := uc.Orders.UpdateStatus(ctx, id, status)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		log.Error().Err(err).Uint("order_id", id).Msg("update order status")
	}
	return err
}

// Delete removes an order. Customers are never cascaded.
func (uc *OrderUC) Delete(ctx context.Context, id uint) error {
	err := uc.Orders.Delete(ctx, id)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		log.Error().Err(err).Uint("order_id", id).Msg("delete order")
	}
	return err
}
