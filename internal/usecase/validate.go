package usecase

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/freshfold/freshfold/internal/domain"
)

var validate = validator.New()

// CustomerInput is the payload for creating or updating a customer.
type CustomerInput struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone" validate:"required,min=10"`
	Email   string `json:"email"`
	Address string `json:"address" validate:"required"`
}

// OrderInput is the payload for creating an order. A nil PricePerUnit (or a
// non-positive one) means the price is derived from the pricing table.
type OrderInput struct {
	CustomerID   uint     `json:"customer_id" validate:"required"`
	ServiceName  string   `json:"service_name" validate:"required"`
	Quantity     int      `json:"quantity" validate:"required,gt=0"`
	PricePerUnit *float64 `json:"price_per_unit"`
	Notes        string   `json:"notes"`
	Priority     string   `json:"priority"`
}

// normalize strips surrounding whitespace so whitespace-only fields fail the
// required checks.
func (in *CustomerInput) normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Email = strings.TrimSpace(in.Email)
	in.Address = strings.TrimSpace(in.Address)
}

func validateCustomer(in *CustomerInput) error {
	in.normalize()
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	ve := &domain.ValidationError{}
	for _, fe := range verrs {
		switch {
		case fe.Field() == "Phone" && fe.Tag() == "min":
			ve.Fields = append(ve.Fields, domain.FieldError{Field: "phone", Message: "Phone number must be at least 10 digits"})
		case fe.Field() == "Name":
			ve.Fields = append(ve.Fields, domain.FieldError{Field: "name", Message: "Name is required"})
		case fe.Field() == "Phone":
			ve.Fields = append(ve.Fields, domain.FieldError{Field: "phone", Message: "Phone is required"})
		case fe.Field() == "Address":
			ve.Fields = append(ve.Fields, domain.FieldError{Field: "address", Message: "Address is required"})
		default:
			ve.Fields = append(ve.Fields, domain.FieldError{Field: strings.ToLower(fe.Field()), Message: "Invalid value"})
		}
	}
	return ve
}

func validateOrder(in *OrderInput) error {
	in.ServiceName = strings.TrimSpace(in.ServiceName)
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	ve := &domain.ValidationError{}
	for _, fe := range verrs {
		switch {
		case fe.Field() == "Quantity" && fe.Tag() == "gt":
			ve.Fields = append(ve.Fields, domain.FieldError{Field: "quantity", Message: "Quantity must be greater than zero"})
		case fe.Field() == "CustomerID":
			ve.Fields = append(ve.Fields, domain.FieldError{Field: "customer_id", Message: "Customer ID is required"})
		case fe.Field() == "ServiceName":
			ve.Fields = append(ve.Fields, domain.FieldError{Field: "service_name", Message: "Service name is required"})
		case fe.Field() == "Quantity":
			ve.Fields = append(ve.Fields, domain.FieldError{Field: "quantity", Message: "Quantity is required"})
		default:
			ve.Fields = append(ve.Fields, domain.FieldError{Field: strings.ToLower(fe.Field()), Message: "Invalid value"})
		}
	}
	return ve
}
