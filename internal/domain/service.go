package domain

import (
	"context"
	"time"
)

// Service is a catalog entry for a named laundry service type. The catalog
// is informational; order pricing reads the in-memory pricing table.
type Service struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	Name               string    `gorm:"size:255;not null;uniqueIndex" json:"name"`
	Description        string    `gorm:"type:text" json:"description"`
	BasePrice          float64   `gorm:"type:decimal(10,2);not null" json:"base_price"`
	EstimatedTimeHours int       `gorm:"default:24" json:"estimated_time_hours"`
	IsActive           bool      `gorm:"default:true" json:"is_active"`
	CreatedAt          time.Time `json:"created_at"`
}

type ServiceRepo interface {
	List(ctx context.Context) ([]Service, error)
	Upsert(ctx context.Context, s *Service) error
}
