package usecase

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/freshfold/freshfold/internal/domain"
)

func orderRow(id uint, status domain.OrderStatus, total float64) domain.OrderWithCustomer {
	return domain.OrderWithCustomer{
		Order: domain.Order{ID: id, Status: status, TotalAmount: total},
	}
}

func TestDashboard_EmptySets(t *testing.T) {
	custRepo := new(mockCustomerRepo)
	orderRepo := new(mockOrderRepo)
	custRepo.On("List", mock.Anything).Return([]domain.Customer{}, nil)
	orderRepo.On("ListWithCustomer", mock.Anything).Return([]domain.OrderWithCustomer{}, nil)
	uc := &ReportUC{Customers: custRepo, Orders: orderRepo}

	stats, err := uc.Dashboard(context.Background())

	require.NoError(t, err)
	assert.Zero(t, stats.TotalOrders)
	assert.Zero(t, stats.TotalRevenue)
	assert.Zero(t, stats.AvgOrderValue) // no division by zero
	assert.Empty(t, stats.RecentOrders)
}

func TestDashboard_CountsAndRevenue(t *testing.T) {
	custRepo := new(mockCustomerRepo)
	orderRepo := new(mockOrderRepo)
	custRepo.On("List", mock.Anything).Return([]domain.Customer{{ID: 1}, {ID: 2}}, nil)
	orderRepo.On("ListWithCustomer", mock.Anything).Return([]domain.OrderWithCustomer{
		orderRow(6, domain.OrderStatusDelivered, 30.00),
		orderRow(5, domain.OrderStatusCompleted, 12.50),
		orderRow(4, domain.OrderStatusInProgress, 8.00),
		orderRow(3, domain.OrderStatusReceived, 5.00),
		orderRow(2, domain.OrderStatusReceived, 20.00),
		orderRow(1, domain.OrderStatusDelivered, 24.50),
	}, nil)
	uc := &ReportUC{Customers: custRepo, Orders: orderRepo}

	stats, err := uc.Dashboard(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalCustomers)
	assert.Equal(t, 6, stats.TotalOrders)
	assert.Equal(t, 3, stats.PendingOrders)
	assert.Equal(t, 3, stats.CompletedOrders)
	assert.Equal(t, 100.00, stats.TotalRevenue)
	assert.Equal(t, 16.67, stats.AvgOrderValue)
	require.Len(t, stats.RecentOrders, 5)
	assert.Equal(t, uint(6), stats.RecentOrders[0].ID)
}

func TestOrdersXLSX(t *testing.T) {
	custRepo := new(mockCustomerRepo)
	orderRepo := new(mockOrderRepo)
	name := "Asha"
	orderRepo.On("ListWithCustomer", mock.Anything).Return([]domain.OrderWithCustomer{
		{
			Order:        domain.Order{ID: 1, ServiceName: "Ironing", Quantity: 4, PricePerUnit: 3, TotalAmount: 12, Status: domain.OrderStatusDelivered, Priority: domain.PriorityMedium},
			CustomerName: &name,
		},
	}, nil)
	uc := &ReportUC{Customers: custRepo, Orders: orderRepo}

	data, err := uc.OrdersXLSX(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	sheet := f.GetSheetName(0)
	got, err := f.GetCellValue(sheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, "Asha", got)
}
