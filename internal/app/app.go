package app

import (
	"context"
	"net/http"

	"gorm.io/gorm"

	"github.com/freshfold/freshfold/internal/adapters/httpserver"
	"github.com/freshfold/freshfold/internal/adapters/repo/postgres"
	"github.com/freshfold/freshfold/internal/config"
	"github.com/freshfold/freshfold/internal/domain"
	"github.com/freshfold/freshfold/internal/pricing"
	"github.com/freshfold/freshfold/internal/usecase"
)

type App struct {
	DB         *gorm.DB
	Prices     *pricing.Table
	CustomerUC *usecase.CustomerUC
	OrderUC    *usecase.OrderUC
	ReportUC   *usecase.ReportUC
	Services   domain.ServiceRepo
}

func NewApp(db *gorm.DB, cfg *config.Config) (*App, error) {
	custRepo := postgres.NewCustomerRepo(db)
	orderRepo := postgres.NewOrderRepo(db)
	svcRepo := postgres.NewServiceRepo(db)

	prices := pricing.NewTable(cfg.Services)

	app := &App{
		DB:         db,
		Prices:     prices,
		CustomerUC: &usecase.CustomerUC{Customers: custRepo},
		OrderUC:    &usecase.OrderUC{Orders: orderRepo, Prices: prices},
		ReportUC:   &usecase.ReportUC{Customers: custRepo, Orders: orderRepo},
		Services:   svcRepo,
	}
	return app, nil
}

func (a *App) HTTPHandler() http.Handler {
	return httpserver.New(a.CustomerUC, a.OrderUC, a.ReportUC, a.Services, a.DB)
}

var serviceDescriptions = map[string]struct {
	desc  string
	hours int
}{
	"Wash & Fold":     {"Regular washing and folding service", 24},
	"Dry Cleaning":    {"Professional dry cleaning", 48},
	"Ironing":         {"Ironing service only", 12},
	"Stain Removal":   {"Special stain treatment", 24},
	"Express Service": {"Priority service with faster turnaround", 6},
	"Special Care":    {"Delicate garment handling", 48},
}

// MigrateAndSeed creates the schema and refreshes the service catalog from
// the pricing table. Safe to run on every start.
func (a *App) MigrateAndSeed(ctx context.Context) error {
	if err := a.DB.AutoMigrate(
		&domain.Customer{}, &domain.Order{}, &domain.Service{},
	); err != nil {
		return err
	}

	for name, price := range a.Prices.Known() {
		svc := &domain.Service{
			Name:               name,
			BasePrice:          price,
			EstimatedTimeHours: 24,
			IsActive:           true,
		}
		if meta, ok := serviceDescriptions[name]; ok {
			svc.Description = meta.desc
			svc.EstimatedTimeHours = meta.hours
		}
		if err := a.Services.Upsert(ctx, svc); err != nil {
			return err
		}
	}
	return nil
}
