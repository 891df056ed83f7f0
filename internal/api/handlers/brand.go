package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/bashirfakih/MoticoSolutionsWebsite-sub003/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type BrandHandler struct {
	brandService *service.BrandService
}

func NewBrandHandler(brandService *service.BrandService) *BrandHandler {
	return &BrandHandler{brandService: brandService}
}

type BrandRequest struct {
	Name            string  `json:"name"`
	Slug            string  `json:"slug"`
	Logo            *string `json:"logo"`
	Description     *string `json:"description"`
	Website         *string `json:"website"`
	CountryOfOrigin *string `json:"countryOfOrigin"`
	IsActive        *bool   `json:"isActive"`
	SortOrder       *int    `json:"sortOrder"`
}

func (r BrandRequest) toInput() service.BrandInput {
	return service.BrandInput{
		Name:            r.Name,
		Slug:            r.Slug,
		Logo:            r.Logo,
		Description:     r.Description,
		Website:         r.Website,
		CountryOfOrigin: r.CountryOfOrigin,
		IsActive:        r.IsActive,
		SortOrder:       r.SortOrder,
	}
}

// ListPublic returns active brands for the storefront.
func (h *BrandHandler) ListPublic(w http.ResponseWriter, r *http.Request) {
	brands, err := h.brandService.List(r.Context(), true)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, brands)
}

func (h *BrandHandler) ListAdmin(w http.ResponseWriter, r *http.Request) {
	brands, err := h.brandService.List(r.Context(), false)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, brands)
}

func (h *BrandHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid brand ID", http.StatusBadRequest)
		return
	}

	brand, err := h.brandService.Get(r.Context(), id)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, brand)
}

func (h *BrandHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req BrandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		http.Error(w, "Name is required", http.StatusBadRequest)
		return
	}

	brand, err := h.brandService.Create(r.Context(), req.toInput())
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, brand)
}

func (h *BrandHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid brand ID", http.StatusBadRequest)
		return
	}

	var req BrandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	brand, err := h.brandService.Update(r.Context(), id, req.toInput())
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, brand)
}

func (h *BrandHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid brand ID", http.StatusBadRequest)
		return
	}

	if err := h.brandService.Delete(r.Context(), id); err != nil {
		serviceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
