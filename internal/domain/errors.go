package domain

import "errors"

// Auth errors
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountDisabled    = errors.New("account is disabled")
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrForbidden          = errors.New("forbidden")
	ErrTokenCollision     = errors.New("session token collision")
	ErrInvalidResetToken  = errors.New("invalid or expired reset token")
	ErrEmailExists        = errors.New("email already registered")
)

// Catalog errors
var (
	ErrBrandNotFound    = errors.New("brand not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrSlugExists       = errors.New("slug already exists")
	ErrSKUExists        = errors.New("sku already exists")
)

// Order / quote errors
var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrQuoteNotFound     = errors.New("quote not found")
	ErrEmptyOrder        = errors.New("order must contain at least one item")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrQuoteConverted    = errors.New("quote already converted to an order")
)

// Misc
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrMessageNotFound = errors.New("message not found")
)
