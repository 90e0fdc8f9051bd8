package usecase

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/freshfold/freshfold/internal/domain"
)

// DashboardStats is the read-side aggregation over the current customer and
// order sets. It is recomputed per request, never maintained incrementally.
type DashboardStats struct {
	TotalCustomers  int                        `json:"totalCustomers"`
	TotalOrders     int                        `json:"totalOrders"`
	PendingOrders   int                        `json:"pendingOrders"`
	CompletedOrders int                        `json:"completedOrders"`
	TotalRevenue    float64                    `json:"totalRevenue"`
	AvgOrderValue   float64                    `json:"avgOrderValue"`
	RecentOrders    []domain.OrderWithCustomer `json:"recentOrders"`
}

type ReportUC struct {
	Customers domain.CustomerRepo
	Orders    domain.OrderRepo
}

// Dashboard folds over the full customer and order lists.
func (uc *ReportUC) Dashboard(ctx context.Context) (*DashboardStats, error) {
	customers, err := uc.Customers.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	orders, err := uc.Orders.ListWithCustomer(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	stats := &DashboardStats{
		TotalCustomers: len(customers),
		TotalOrders:    len(orders),
		RecentOrders:   []domain.OrderWithCustomer{},
	}
	for _, o := range orders {
		switch o.Status {
		case domain.OrderStatusReceived, domain.OrderStatusInProgress:
			stats.PendingOrders++
		case domain.OrderStatusCompleted, domain.OrderStatusDelivered:
			stats.CompletedOrders++
		}
		stats.TotalRevenue += o.TotalAmount
	}
	stats.TotalRevenue = round2(stats.TotalRevenue)
	if stats.TotalOrders > 0 {
		stats.AvgOrderValue = round2(stats.TotalRevenue / float64(stats.TotalOrders))
	}

	// Orders arrive newest-first; the first five are the recent ones.
	if len(orders) > 5 {
		stats.RecentOrders = orders[:5]
	} else {
		stats.RecentOrders = orders
	}
	return stats, nil
}

// OrdersXLSX renders the full order book as a spreadsheet.
func (uc *ReportUC) OrdersXLSX(ctx context.Context) ([]byte, error) {
	orders, err := uc.Orders.ListWithCustomer(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	headers := []string{"ID", "Customer", "Phone", "Service", "Quantity", "Price/Unit", "Total", "Status", "Priority", "Created"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}
	for row, o := range orders {
		name, phone := "", ""
		if o.CustomerName != nil {
			name = *o.CustomerName
		}
		if o.CustomerPhone != nil {
			phone = *o.CustomerPhone
		}
		values := []any{
			o.ID, name, phone, o.ServiceName, o.Quantity,
			o.PricePerUnit, o.TotalAmount, string(o.Status), string(o.Priority),
			o.CreatedAt.Format("2006-01-02 15:04"),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write xlsx: %w", err)
	}
	return buf.Bytes(), nil
}
