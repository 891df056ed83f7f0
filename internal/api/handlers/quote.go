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

type QuoteHandler struct {
	quoteService *service.QuoteService
}

func NewQuoteHandler(quoteService *service.QuoteService) *QuoteHandler {
	return &QuoteHandler{quoteService: quoteService}
}

type QuoteItemRequest struct {
	ProductID   *uuid.UUID `json:"productId"`
	ProductName string     `json:"productName" validate:"required"`
	Description *string    `json:"description"`
	Quantity    int        `json:"quantity" validate:"required,min=1"`
}

type SubmitQuoteRequest struct {
	CustomerName    string             `json:"customerName" validate:"required"`
	CustomerEmail   string             `json:"customerEmail" validate:"required,email"`
	CustomerPhone   *string            `json:"customerPhone"`
	Company         *string            `json:"company"`
	Items           []QuoteItemRequest `json:"items" validate:"required,min=1,dive"`
	CustomerMessage *string            `json:"message"`
}

// Submit accepts a quote request from the public storefront. A logged-in
// customer gets the quote linked to their account.
func (h *QuoteHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req SubmitQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		http.Error(w, "Validation failed: "+err.Error(), http.StatusBadRequest)
		return
	}

	items := make([]service.QuoteItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, service.QuoteItemInput{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Description: item.Description,
			Quantity:    item.Quantity,
		})
	}

	input := service.SubmitQuoteInput{
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		Company:         req.Company,
		Items:           items,
		CustomerMessage: req.CustomerMessage,
	}
	if user := middleware.GetUser(r.Context()); user != nil {
		input.CustomerID = &user.ID
	}

	quote, err := h.quoteService.Submit(r.Context(), input)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, quote)
}

// ListMine returns the authenticated customer's own quote requests.
func (h *QuoteHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())

	quotes, err := h.quoteService.List(r.Context(), domain.QuoteFilter{CustomerID: &user.ID})
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, quotes)
}

func (h *QuoteHandler) ListAdmin(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.QuoteFilter{Search: q.Get("search")}

	if v := q.Get("status"); v != "" {
		status := domain.QuoteStatus(v)
		filter.Status = &status
	}
	if v := q.Get("customer"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			http.Error(w, "Invalid customer ID", http.StatusBadRequest)
			return
		}
		filter.CustomerID = &id
	}

	quotes, err := h.quoteService.List(r.Context(), filter)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, quotes)
}

func (h *QuoteHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid quote ID", http.StatusBadRequest)
		return
	}

	quote, err := h.quoteService.Get(r.Context(), id)
	if err != nil {
		serviceError(w, err)
		return
	}

	user := middleware.GetUser(r.Context())
	if user.Role != domain.RoleAdmin {
		if quote.CustomerID == nil || *quote.CustomerID != user.ID {
			http.Error(w, domain.ErrForbidden.Error(), http.StatusForbidden)
			return
		}
	}
	writeJSON(w, http.StatusOK, quote)
}

type ReviewQuoteRequest struct {
	InternalNotes *string `json:"internalNotes"`
}

func (h *QuoteHandler) MarkReviewed(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid quote ID", http.StatusBadRequest)
		return
	}

	var req ReviewQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	quote, err := h.quoteService.MarkReviewed(r.Context(), id, req.InternalNotes)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, quote)
}

type RespondQuoteRequest struct {
	ResponseMessage string          `json:"responseMessage" validate:"required"`
	ItemPrices      map[int]float64 `json:"itemPrices"`
	Discount        *float64        `json:"discount"`
	ValidUntil      *time.Time      `json:"validUntil"`
}

func (h *QuoteHandler) Respond(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid quote ID", http.StatusBadRequest)
		return
	}

	var req RespondQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		http.Error(w, "Validation failed: "+err.Error(), http.StatusBadRequest)
		return
	}

	quote, err := h.quoteService.Respond(r.Context(), id, service.RespondQuoteInput{
		ResponseMessage: req.ResponseMessage,
		ItemPrices:      req.ItemPrices,
		Discount:        req.Discount,
		ValidUntil:      req.ValidUntil,
	})
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, quote)
}

type UpdateQuoteStatusRequest struct {
	Status domain.QuoteStatus `json:"status" validate:"required"`
}

func (h *QuoteHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid quote ID", http.StatusBadRequest)
		return
	}

	var req UpdateQuoteStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		http.Error(w, "Validation failed: "+err.Error(), http.StatusBadRequest)
		return
	}

	quote, err := h.quoteService.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, quote)
}

type ConvertQuoteRequest struct {
	ShippingAddress domain.ShippingAddress `json:"shippingAddress" validate:"required"`
}

// Convert creates an order from an accepted quote.
func (h *QuoteHandler) Convert(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid quote ID", http.StatusBadRequest)
		return
	}

	var req ConvertQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	order, err := h.quoteService.Convert(r.Context(), id, req.ShippingAddress)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}
