package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/freshfold/freshfold/internal/domain"
)

var validCustomer = CustomerInput{
	Name:    "Asha",
	Phone:   "9876543210",
	Address: "12 MG Road",
}

func TestCustomerAdd_Success(t *testing.T) {
	repo := new(mockCustomerRepo)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Customer")).Return(nil)
	uc := &CustomerUC{Customers: repo}

	c, err := uc.Add(context.Background(), validCustomer)

	require.NoError(t, err)
	assert.Equal(t, "Asha", c.Name)
	assert.Equal(t, "9876543210", c.Phone)
	repo.AssertExpectations(t)
}

func TestCustomerAdd_ReportsAllViolations(t *testing.T) {
	repo := new(mockCustomerRepo)
	uc := &CustomerUC{Customers: repo}

	_, err := uc.Add(context.Background(), CustomerInput{
		Name:    "   ",
		Phone:   "",
		Address: "\t",
	})

	ve, ok := domain.IsValidation(err)
	require.True(t, ok)
	assert.Len(t, ve.Fields, 3)
	repo.AssertNotCalled(t, "Create")
}

func TestCustomerAdd_ShortPhone(t *testing.T) {
	repo := new(mockCustomerRepo)
	uc := &CustomerUC{Customers: repo}

	in := validCustomer
	in.Phone = "12345"
	_, err := uc.Add(context.Background(), in)

	ve, ok := domain.IsValidation(err)
	require.True(t, ok)
	require.Len(t, ve.Fields, 1)
	assert.Equal(t, "phone", ve.Fields[0].Field)
}

func TestCustomerAdd_DuplicatePhone(t *testing.T) {
	repo := new(mockCustomerRepo)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Customer")).Return(domain.ErrDuplicatePhone)
	uc := &CustomerUC{Customers: repo}

	_, err := uc.Add(context.Background(), validCustomer)
	assert.ErrorIs(t, err, domain.ErrDuplicatePhone)
}

func TestCustomerUpdate_PhoneTakenByOther(t *testing.T) {
	repo := new(mockCustomerRepo)
	repo.On("PhoneInUse", mock.Anything, "9876543210", uint(2)).Return(true, nil)
	uc := &CustomerUC{Customers: repo}

	_, err := uc.Update(context.Background(), 2, validCustomer)

	assert.ErrorIs(t, err, domain.ErrDuplicatePhone)
	repo.AssertNotCalled(t, "Update")
}

func TestCustomerUpdate_NotFound(t *testing.T) {
	repo := new(mockCustomerRepo)
	repo.On("PhoneInUse", mock.Anything, "9876543210", uint(5)).Return(false, nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Customer")).Return(domain.ErrNotFound)
	uc := &CustomerUC{Customers: repo}

	_, err := uc.Update(context.Background(), 5, validCustomer)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCustomerUpdate_Success(t *testing.T) {
	repo := new(mockCustomerRepo)
	repo.On("PhoneInUse", mock.Anything, "9876543210", uint(1)).Return(false, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(c *domain.Customer) bool {
		return c.ID == 1 && c.Phone == "9876543210"
	})).Return(nil)
	uc := &CustomerUC{Customers: repo}

	c, err := uc.Update(context.Background(), 1, validCustomer)
	require.NoError(t, err)
	assert.Equal(t, uint(1), c.ID)
	repo.AssertExpectations(t)
}

func TestCustomerDelete_BlockedByOrders(t *testing.T) {
	repo := new(mockCustomerRepo)
	repo.On("Delete", mock.Anything, uint(1)).Return(domain.ErrHasDependentOrders)
	uc := &CustomerUC{Customers: repo}

	assert.ErrorIs(t, uc.Delete(context.Background(), 1), domain.ErrHasDependentOrders)
}

func TestCustomerDelete_Success(t *testing.T) {
	repo := new(mockCustomerRepo)
	repo.On("Delete", mock.Anything, uint(3)).Return(nil)
	uc := &CustomerUC{Customers: repo}

	assert.NoError(t, uc.Delete(context.Background(), 3))
}
