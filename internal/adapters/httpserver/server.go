package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/freshfold/freshfold/internal/domain"
	"github.com/freshfold/freshfold/internal/usecase"
)

type Server struct {
	router    chi.Router
	customers *usecase.CustomerUC
	orders    *usecase.OrderUC
	reports   *usecase.ReportUC
	services  domain.ServiceRepo
	db        *gorm.DB
}

func New(customers *usecase.CustomerUC, orders *usecase.OrderUC, reports *usecase.ReportUC, services domain.ServiceRepo, db *gorm.DB) http.Handler {
	s := &Server{
		router:    chi.NewRouter(),
		customers: customers,
		orders:    orders,
		reports:   reports,
		services:  services,
		db:        db,
	}
	s.router.Use(RequestID)
	s.router.Use(Logging)
	s.router.Use(middleware.Recoverer)
	s.router.Use(CORS)
	s.routes()
	return s.router
}

func (s *Server) routes() {
	s.router.Get("/", s.handleIndex)
	s.router.Get("/health", s.handleHealth)
	s.router.Get("/services", s.handleServices)
	s.router.Get("/dashboard/stats", s.handleDashboard)
	s.router.Get("/reports/orders.xlsx", s.handleOrdersReport)

	s.router.Route("/customers", func(r chi.Router) {
		r.Post("/add", s.handleCustomerAdd)
		r.Get("/all", s.handleCustomerList)
		r.Put("/update/{customerId}", s.handleCustomerUpdate)
		r.Delete("/delete/{customerId}", s.handleCustomerDelete)
	})

	s.router.Route("/orders", func(r chi.Router) {
		r.Post("/create", s.handleOrderCreate)
		r.Get("/all", s.handleOrderList)
		r.Put("/update-status/{orderId}", s.handleOrderUpdateStatus)
		r.Delete("/delete/{orderId}", s.handleOrderDelete)
	})
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"service": "Laundry Management API",
		"version": "1.0.0",
		"endpoints": map[string]any{
			"customers": map[string]string{
				"add":    "POST /customers/add",
				"list":   "GET /customers/all",
				"update": "PUT /customers/update/{customerId}",
				"delete": "DELETE /customers/delete/{customerId}",
			},
			"orders": map[string]string{
				"create":       "POST /orders/create",
				"list":         "GET /orders/all",
				"updateStatus": "PUT /orders/update-status/{orderId}",
				"delete":       "DELETE /orders/delete/{orderId}",
			},
			"services":  "GET /services",
			"dashboard": "GET /dashboard/stats",
			"health":    "GET /health",
		},
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	database := "Connected"
	if s.db == nil {
		database = "Disconnected"
	} else if sqlDB, err := s.db.DB(); err != nil || sqlDB.PingContext(r.Context()) != nil {
		database = "Disconnected"
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "Laundry Management API",
		"database":  database,
	})
}

func (s *Server) handleServices(w http.ResponseWriter, r *http.Request) {
	services, err := s.services.List(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("list services")
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"services": services})
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := s.reports.Dashboard(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("dashboard stats")
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (s *Server) handleOrdersReport(w http.ResponseWriter, r *http.Request) {
	data, err := s.reports.OrdersXLSX(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("orders report")
		writeError(w, http.StatusInternalServerError, "Report generation failed")
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="orders.xlsx"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (s *Server) handleCustomerAdd(w http.ResponseWriter, r *http.Request) {
	var in usecase.CustomerInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	c, err := s.customers.Add(r.Context(), in)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"message":    "Customer added successfully",
		"customerId": c.ID,
	})
}

func (s *Server) handleCustomerList(w http.ResponseWriter, r *http.Request) {
	customers, err := s.customers.List(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("list customers")
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}
	if customers == nil {
		customers = []domain.Customer{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"customers": customers})
}

func (s *Server) handleCustomerUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "customerId")
	if !ok {
		return
	}
	var in usecase.CustomerInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if _, err := s.customers.Update(r.Context(), id, in); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message":    "Customer updated successfully",
		"customerId": id,
	})
}

func (s *Server) handleCustomerDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "customerId")
	if !ok {
		return
	}
	if err := s.customers.Delete(r.Context(), id); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message":           "Customer deleted successfully",
		"deletedCustomerId": id,
	})
}

func (s *Server) handleOrderCreate(w http.ResponseWriter, r *http.Request) {
	var in usecase.OrderInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	o, err := s.orders.Create(r.Context(), in)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"message":     "Order created successfully",
		"orderId":     o.ID,
		"totalAmount": o.TotalAmount,
	})
}

func (s *Server) handleOrderList(w http.ResponseWriter, r *http.Request) {
	orders, err := s.orders.List(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("list orders")
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}
	if orders == nil {
		orders = []domain.OrderWithCustomer{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"orders": orders})
}

func (s *Server) handleOrderUpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "orderId")
	if !ok {
		return
	}
	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if err := s.orders.UpdateStatus(r.Context(), id, domain.OrderStatus(req.Status)); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": "Order status updated successfully"})
}

func (s *Server) handleOrderDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "orderId")
	if !ok {
		return
	}
	if err := s.orders.Delete(r.Context(), id); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message":        "Order deleted successfully",
		"deletedOrderId": id,
	})
}

func pathID(w http.ResponseWriter, r *http.Request, name string) (uint, bool) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		writeError(w, http.StatusBadRequest, "Invalid id")
		return 0, false
	}
	return uint(id), true
}

func writeDomainError(w http.ResponseWriter, err error) {
	if ve, ok := domain.IsValidation(err); ok {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":  ve.Error(),
			"fields": ve.Fields,
		})
		return
	}
	switch {
	case errors.Is(err, domain.ErrDuplicatePhone):
		writeError(w, http.StatusBadRequest, "Phone number already exists")
	case errors.Is(err, domain.ErrInvalidCustomer):
		writeError(w, http.StatusBadRequest, "Customer does not exist")
	case errors.Is(err, domain.ErrInvalidStatus):
		writeError(w, http.StatusBadRequest, "Invalid status")
	case errors.Is(err, domain.ErrHasDependentOrders):
		writeError(w, http.StatusBadRequest, "Cannot delete customer with existing orders. Delete orders first.")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "Not found")
	default:
		// Storage failures are surfaced generically; details stay in the log.
		writeError(w, http.StatusInternalServerError, "Database error")
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]any{"error": msg})
}
