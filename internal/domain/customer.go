package domain

import (
	"context"
	"time"
)

type Customer struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Phone     string    `gorm:"size:20;not null;uniqueIndex" json:"phone"`
	Email     string    `gorm:"size:255" json:"email"`
	Address   string    `gorm:"type:text;not null" json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CustomerRepo interface {
	Create(ctx context.Context, c *Customer) error
	List(ctx context.Context) ([]Customer, error)
	FindByID(ctx context.Context, id uint) (*Customer, error)
	// PhoneInUse reports whether phone belongs to a customer other than excludeID.
	PhoneInUse(ctx context.Context, phone string, excludeID uint) (bool, error)
	Update(ctx context.Context, c *Customer) error
	Delete(ctx context.Context, id uint) error
}
