package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/bashirfakih/MoticoSolutionsWebsite-sub003/internal/api/middleware"
	"github.com/bashirfakih/MoticoSolutionsWebsite-sub003/internal/domain"
	"github.com/bashirfakih/MoticoSolutionsWebsite-sub003/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type OrderHandler struct {
	orderService *service.OrderService
}

func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

type OrderItemRequest struct {
	ProductID uuid.UUID `json:"productId" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,min=1"`
}

type CreateOrderRequest struct {
	Items           []OrderItemRequest     `json:"items" validate:"required,min=1,dive"`
	ShippingAddress domain.ShippingAddress `json:"shippingAddress" validate:"required"`
	CustomerNote    *string                `json:"customerNote"`
}

// Create places an order for the authenticated customer. Prices and totals
// are computed server-side from current product data.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())

	var req CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		http.Error(w, "Validation failed: "+err.Error(), http.StatusBadRequest)
		return
	}

	items := make([]service.OrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, service.OrderItemInput{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	order, err := h.orderService.Create(r.Context(), service.CreateOrderInput{
		CustomerID:      user.ID,
		Items:           items,
		ShippingAddress: req.ShippingAddress,
		CustomerNote:    req.CustomerNote,
	})
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

// ListMine returns the authenticated customer's own orders.
func (h *OrderHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())

	orders, err := h.orderService.List(r.Context(), domain.OrderFilter{CustomerID: &user.ID})
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

// Get returns a single order. Customers can only read their own orders;
// admins can read any.
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid order ID", http.StatusBadRequest)
		return
	}

	order, err := h.orderService.GetForUser(r.Context(), id, middleware.GetUser(r.Context()))
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *OrderHandler) ListAdmin(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.OrderFilter{Search: q.Get("search")}

	if v := q.Get("status"); v != "" {
		status := domain.OrderStatus(v)
		filter.Status = &status
	}
	if v := q.Get("paymentStatus"); v != "" {
		status := domain.PaymentStatus(v)
		filter.PaymentStatus = &status
	}
	if v := q.Get("customer"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			http.Error(w, "Invalid customer ID", http.StatusBadRequest)
			return
		}
		filter.CustomerID = &id
	}
	if v := q.Get("from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			http.Error(w, "Invalid from date", http.StatusBadRequest)
			return
		}
		filter.DateFrom = &t
	}
	if v := q.Get("to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			http.Error(w, "Invalid to date", http.StatusBadRequest)
			return
		}
		filter.DateTo = &t
	}

	orders, err := h.orderService.List(r.Context(), filter)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

type UpdateOrderStatusRequest struct {
	Status domain.OrderStatus `json:"status" validate:"required"`
}

func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid order ID", http.StatusBadRequest)
		return
	}

	var req UpdateOrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		http.Error(w, "Validation failed: "+err.Error(), http.StatusBadRequest)
		return
	}

	order, err := h.orderService.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

type MarkPaidRequest struct {
	PaymentMethod string `json:"paymentMethod" validate:"required"`
}

func (h *OrderHandler) MarkPaid(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid order ID", http.StatusBadRequest)
		return
	}

	var req MarkPaidRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		http.Error(w, "Validation failed: "+err.Error(), http.StatusBadRequest)
		return
	}

	order, err := h.orderService.MarkPaid(r.Context(), id, req.PaymentMethod)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}
