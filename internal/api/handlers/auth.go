package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/bashirfakih/MoticoSolutionsWebsite-sub003/internal/api/middleware"
	"github.com/bashirfakih/MoticoSolutionsWebsite-sub003/internal/config"
	"github.com/bashirfakih/MoticoSolutionsWebsite-sub003/internal/domain"
	"github.com/bashirfakih/MoticoSolutionsWebsite-sub003/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
	cfg         *config.Config
}

func NewAuthHandler(authService *service.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{authService: authService, cfg: cfg}
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RegisterRequest struct {
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=8"`
	Name     string  `json:"name" validate:"required"`
	Company  *string `json:"company"`
	Phone    *string `json:"phone"`
}

type UserEnvelope struct {
	User *domain.PublicUser `json:"user"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		http.Error(w, "Email and password are required", http.StatusBadRequest)
		return
	}

	result, err := h.authService.Login(r.Context(), service.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		serviceError(w, err)
		return
	}

	middleware.SetSessionCookie(w, result.Token, h.cfg.SessionExpiryHours*3600, h.cfg.IsProduction())
	writeJSON(w, http.StatusOK, UserEnvelope{User: result.User})
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		http.Error(w, "Email, password and name are required", http.StatusBadRequest)
		return
	}

	result, err := h.authService.Register(r.Context(), service.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Company:  req.Company,
		Phone:    req.Phone,
	})
	if err != nil {
		serviceError(w, err)
		return
	}

	middleware.SetSessionCookie(w, result.Token, h.cfg.SessionExpiryHours*3600, h.cfg.IsProduction())
	writeJSON(w, http.StatusCreated, UserEnvelope{User: result.User})
}

// Me returns the current authenticated user ("who am I").
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())
	if user == nil {
		http.Error(w, "Not authenticated", http.StatusUnauthorized)
		return
	}
	writeJSON(w, http.StatusOK, UserEnvelope{User: user})
}

// Logout deletes the session and clears the cookie. It does not require a
// valid session: a stale cookie still gets cleared.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token := middleware.ReadSessionToken(r)

	if err := h.authService.Logout(r.Context(), token); err != nil {
		serviceError(w, err)
		return
	}

	middleware.ClearSessionCookie(w, h.cfg.IsProduction())
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req ForgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		http.Error(w, "Email is required", http.StatusBadRequest)
		return
	}

	if err := h.authService.RequestPasswordReset(r.Context(), req.Email); err != nil {
		serviceError(w, err)
		return
	}

	// Same response whether or not the email exists.
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

type ResetPasswordRequest struct {
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}

func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		http.Error(w, "Token and password are required", http.StatusBadRequest)
		return
	}

	if err := h.authService.ResetPassword(r.Context(), req.Token, req.Password); err != nil {
		serviceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
