package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/bashirfakih/MoticoSolutionsWebsite-sub003/internal/domain"
	"github.com/bashirfakih/MoticoSolutionsWebsite-sub003/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type ProductHandler struct {
	productService *service.ProductService
}

func NewProductHandler(productService *service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

type ProductRequest struct {
	SKU               string                        `json:"sku"`
	Name              string                        `json:"name"`
	Slug              string                        `json:"slug"`
	Description       *string                       `json:"description"`
	ShortDescription  *string                       `json:"shortDescription"`
	BrandID           *uuid.UUID                    `json:"brandId"`
	CategoryID        *uuid.UUID                    `json:"categoryId"`
	Price             *float64                      `json:"price"`
	CompareAtPrice    *float64                      `json:"compareAtPrice"`
	Currency          *domain.Currency              `json:"currency"`
	StockQuantity     *int                          `json:"stockQuantity"`
	LowStockThreshold *int                          `json:"lowStockThreshold"`
	Images            []domain.ProductImage         `json:"images"`
	Specifications    []domain.ProductSpecification `json:"specifications"`
	Tags              []string                      `json:"tags"`
	IsActive          *bool                         `json:"isActive"`
	IsFeatured        *bool                         `json:"isFeatured"`
}

func (r ProductRequest) toInput() service.ProductInput {
	return service.ProductInput{
		SKU:               r.SKU,
		Name:              r.Name,
		Slug:              r.Slug,
		Description:       r.Description,
		ShortDescription:  r.ShortDescription,
		BrandID:           r.BrandID,
		CategoryID:        r.CategoryID,
		Price:             r.Price,
		CompareAtPrice:    r.CompareAtPrice,
		Currency:          r.Currency,
		StockQuantity:     r.StockQuantity,
		LowStockThreshold: r.LowStockThreshold,
		Images:            r.Images,
		Specifications:    r.Specifications,
		Tags:              r.Tags,
		IsActive:          r.IsActive,
		IsFeatured:        r.IsFeatured,
	}
}

// listInput parses the shared catalog query parameters. publicOnly limits
// results to active products for storefront listings.
func listInput(r *http.Request, publicOnly bool) (service.ListProductsInput, error) {
	q := r.URL.Query()
	input := service.ListProductsInput{
		Search:     q.Get("search"),
		PublicOnly: publicOnly,
	}

	if v := q.Get("brand"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return input, err
		}
		input.BrandID = &id
	}
	if v := q.Get("category"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return input, err
		}
		input.CategoryID = &id
	}
	if v := q.Get("stockStatus"); v != "" {
		status := domain.StockStatus(v)
		input.StockStatus = &status
	}
	if v := q.Get("featured"); v != "" {
		featured := v == "true"
		input.Featured = &featured
	}
	if v := q.Get("page"); v != "" {
		input.Page, _ = strconv.Atoi(v)
	}
	if v := q.Get("perPage"); v != "" {
		input.PerPage, _ = strconv.Atoi(v)
	}
	return input, nil
}

func (h *ProductHandler) ListPublic(w http.ResponseWriter, r *http.Request) {
	input, err := listInput(r, true)
	if err != nil {
		http.Error(w, "Invalid filter ID", http.StatusBadRequest)
		return
	}

	page, err := h.productService.List(r.Context(), input)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (h *ProductHandler) ListAdmin(w http.ResponseWriter, r *http.Request) {
	input, err := listInput(r, false)
	if err != nil {
		http.Error(w, "Invalid filter ID", http.StatusBadRequest)
		return
	}

	page, err := h.productService.List(r.Context(), input)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

// GetByIDOrSlug serves storefront product detail pages, which link by slug
// but may also carry the raw ID.
func (h *ProductHandler) GetByIDOrSlug(w http.ResponseWriter, r *http.Request) {
	product, err := h.productService.GetByIDOrSlug(r.Context(), chi.URLParam(r, "idOrSlug"))
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid product ID", http.StatusBadRequest)
		return
	}

	product, err := h.productService.Get(r.Context(), id)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.SKU == "" || req.Name == "" {
		http.Error(w, "SKU and name are required", http.StatusBadRequest)
		return
	}

	product, err := h.productService.Create(r.Context(), req.toInput())
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, product)
}

func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid product ID", http.StatusBadRequest)
		return
	}

	var req ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	product, err := h.productService.Update(r.Context(), id, req.toInput())
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

type StockAdjustRequest struct {
	Delta int `json:"delta"`
}

func (h *ProductHandler) AdjustStock(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid product ID", http.StatusBadRequest)
		return
	}

	var req StockAdjustRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	product, err := h.productService.AdjustStock(r.Context(), id, req.Delta)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid product ID", http.StatusBadRequest)
		return
	}

	if err := h.productService.Delete(r.Context(), id); err != nil {
		serviceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
