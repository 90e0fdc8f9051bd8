package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/freshfold/freshfold/internal/domain"
)

type OrderRepo struct{ db *gorm.DB }

func NewOrderRepo(db *gorm.DB) *OrderRepo { return &OrderRepo{db: db} }

func (r *OrderRepo) Create(ctx context.Context, o *domain.Order) error {
	if err := r.db.WithContext(ctx).Create(o).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return domain.ErrInvalidCustomer
		}
		return err
	}
	return nil
}

// ListWithCustomer left-joins customer identity so orders survive the loss
// of their customer row.
func (r *OrderRepo) ListWithCustomer(ctx context.Context) ([]domain.OrderWithCustomer, error) {
	var rows []domain.OrderWithCustomer
	err := r.db.WithContext(ctx).
		Table("orders o").
		Select(`o.*,
			c.name AS customer_name,
			c.phone AS customer_phone,
			c.email AS customer_email,
			c.address AS customer_address`).
		Joins("LEFT JOIN customers c ON o.customer_id = c.id").
		Order("o.created_date DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *OrderRepo) UpdateStatus(ctx context.Context, id uint, status domain.OrderStatus) error {
	res := r.db.WithContext(ctx).Model(&domain.Order{}).Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *OrderRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&domain.Order{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
