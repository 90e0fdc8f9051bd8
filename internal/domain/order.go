package domain

import (
	"context"
	"time"
)

type OrderStatus string

const (
	OrderStatusReceived   OrderStatus = "Received"
	OrderStatusInProgress OrderStatus = "In Progress"
	OrderStatusCompleted  OrderStatus = "Completed"
	OrderStatusDelivered  OrderStatus = "Delivered"
)

// ValidStatus reports membership in the canonical status set. There is no
// transition graph: any status may follow any other.
func ValidStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusReceived, OrderStatusInProgress, OrderStatusCompleted, OrderStatusDelivered:
		return true
	}
	return false
}

type OrderPriority string

const (
	PriorityLow    OrderPriority = "Low"
	PriorityMedium OrderPriority = "Medium"
	PriorityHigh   OrderPriority = "High"
)

func ValidPriority(p OrderPriority) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

type Order struct {
	ID           uint          `gorm:"primaryKey" json:"id"`
	CustomerID   uint          `gorm:"not null;index" json:"customer_id"`
	Customer     *Customer     `gorm:"foreignKey:CustomerID;constraint:OnDelete:RESTRICT" json:"-"`
	ServiceName  string        `gorm:"size:255;not null" json:"service_name"`
	Quantity     int           `gorm:"not null" json:"quantity"`
	PricePerUnit float64       `gorm:"type:decimal(10,2);not null;default:0.00" json:"price_per_unit"`
	TotalAmount  float64       `gorm:"type:decimal(10,2);not null;default:0.00" json:"total_amount"`
	Status       OrderStatus   `gorm:"type:varchar(20);default:'Received';index" json:"status"`
	Priority     OrderPriority `gorm:"type:varchar(10);default:'Medium'" json:"priority"`
	Notes        string        `gorm:"type:text" json:"notes"`
	CreatedAt    time.Time     `gorm:"column:created_date" json:"created_date"`
	UpdatedAt    time.Time     `gorm:"column:updated_date" json:"updated_date"`
}

// OrderWithCustomer is one row of the order book joined with the owning
// customer's identity. The customer columns are nullable so orders whose
// customer vanished out-of-band still list.
type OrderWithCustomer struct {
	Order
	CustomerName    *string `json:"customer_name"`
	CustomerPhone   *string `json:"customer_phone"`
	CustomerEmail   *string `json:"customer_email"`
	CustomerAddress *string `json:"customer_address"`
}

type OrderRepo interface {
	Create(ctx context.Context, o *Order) error
	ListWithCustomer(ctx context.Context) ([]OrderWithCustomer, error)
	UpdateStatus(ctx context.Context, id uint, status OrderStatus) error
	Delete(ctx context.Context, id uint) error
}
