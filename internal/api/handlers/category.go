package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/bashirfakih/MoticoSolutionsWebsite-sub003/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type CategoryHandler struct {
	categoryService *service.CategoryService
}

func NewCategoryHandler(categoryService *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

type CategoryRequest struct {
	Name        string     `json:"name"`
	Slug        string     `json:"slug"`
	Description *string    `json:"description"`
	Image       *string    `json:"image"`
	ParentID    *uuid.UUID `json:"parentId"`
	SortOrder   *int       `json:"sortOrder"`
	IsActive    *bool      `json:"isActive"`
}

func (r CategoryRequest) toInput() service.CategoryInput {
	return service.CategoryInput{
		Name:        r.Name,
		Slug:        r.Slug,
		Description: r.Description,
		Image:       r.Image,
		ParentID:    r.ParentID,
		SortOrder:   r.SortOrder,
		IsActive:    r.IsActive,
	}
}

// Tree returns the public category tree with product counts.
func (h *CategoryHandler) Tree(w http.ResponseWriter, r *http.Request) {
	tree, err := h.categoryService.Tree(r.Context())
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tree)
}

func (h *CategoryHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	category, err := h.categoryService.GetBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, category)
}

func (h *CategoryHandler) ListAdmin(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryService.List(r.Context(), false)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid category ID", http.StatusBadRequest)
		return
	}

	category, err := h.categoryService.Get(r.Context(), id)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, category)
}

func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		http.Error(w, "Name is required", http.StatusBadRequest)
		return
	}

	category, err := h.categoryService.Create(r.Context(), req.toInput())
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, category)
}

func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid category ID", http.StatusBadRequest)
		return
	}

	var req CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	category, err := h.categoryService.Update(r.Context(), id, req.toInput())
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, category)
}

func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid category ID", http.StatusBadRequest)
		return
	}

	if err := h.categoryService.Delete(r.Context(), id); err != nil {
		serviceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
