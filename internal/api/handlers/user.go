package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/bashirfakih/MoticoSolutionsWebsite-sub003/internal/domain"
	"github.com/bashirfakih/MoticoSolutionsWebsite-sub003/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// UserHandler is the admin account-management surface.
type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	var role *domain.Role
	if v := r.URL.Query().Get("role"); v != "" {
		parsed := domain.Role(v)
		role = &parsed
	}

	users, err := h.userService.List(r.Context(), role)
	if err != nil {
		serviceError(w, err)
		return
	}

	public := make([]*domain.PublicUser, 0, len(users))
	for _, u := range users {
		public = append(public, u.Public())
	}
	writeJSON(w, http.StatusOK, public)
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid user ID", http.StatusBadRequest)
		return
	}

	user, err := h.userService.Get(r.Context(), id)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user.Public())
}

type UpdateUserRequest struct {
	Name    *string      `json:"name"`
	Company *string      `json:"company"`
	Phone   *string      `json:"phone"`
	Avatar  *string      `json:"avatar"`
	Role    *domain.Role `json:"role"`
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid user ID", http.StatusBadRequest)
		return
	}

	var req UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	user, err := h.userService.Update(r.Context(), id, service.UpdateUserInput{
		Name:    req.Name,
		Company: req.Company,
		Phone:   req.Phone,
		Avatar:  req.Avatar,
		Role:    req.Role,
	})
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user.Public())
}

// Deactivate disables the account and revokes every live session.
func (h *UserHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid user ID", http.StatusBadRequest)
		return
	}

	user, err := h.userService.Deactivate(r.Context(), id)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user.Public())
}

func (h *UserHandler) Reactivate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid user ID", http.StatusBadRequest)
		return
	}

	user, err := h.userService.Reactivate(r.Context(), id)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user.Public())
}
