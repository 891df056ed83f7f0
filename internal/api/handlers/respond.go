package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bashirfakih/MoticoSolutionsWebsite-sub003/internal/domain"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// serviceError maps domain sentinel errors to HTTP statuses. Unrecognized
// errors become a generic 500.
func serviceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		http.Error(w, "Invalid email or password", http.StatusUnauthorized)
	case errors.Is(err, domain.ErrAccountDisabled):
		http.Error(w, "Account is disabled. Please contact support.", http.StatusForbidden)
	case errors.Is(err, domain.ErrNotAuthenticated):
		http.Error(w, "Not authenticated", http.StatusUnauthorized)
	case errors.Is(err, domain.ErrForbidden):
		http.Error(w, "Forbidden", http.StatusForbidden)
	case errors.Is(err, domain.ErrInvalidResetToken):
		http.Error(w, "Invalid or expired reset token", http.StatusBadRequest)
	case errors.Is(err, domain.ErrEmailExists):
		http.Error(w, "Email already registered", http.StatusConflict)
	case errors.Is(err, domain.ErrSlugExists), errors.Is(err, domain.ErrSKUExists):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, domain.ErrBrandNotFound),
		errors.Is(err, domain.ErrCategoryNotFound),
		errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrOrderNotFound),
		errors.Is(err, domain.ErrQuoteNotFound),
		errors.Is(err, domain.ErrMessageNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, domain.ErrEmptyOrder),
		errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrQuoteConverted):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
