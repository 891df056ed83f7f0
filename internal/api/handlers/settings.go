package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/bashirfakih/MoticoSolutionsWebsite-sub003/internal/domain"
	"github.com/bashirfakih/MoticoSolutionsWebsite-sub003/internal/service"
	"gorm.io/datatypes"
)

type SettingsHandler struct {
	settingsService *service.SettingsService
}

func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// GetPublic exposes the subset of settings the storefront needs.
func (h *SettingsHandler) GetPublic(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settingsService.Get(r.Context())
	if err != nil {
		serviceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"siteName":              settings.SiteName,
		"siteDescription":       settings.SiteDescription,
		"contactEmail":          settings.ContactEmail,
		"contactPhone":          settings.ContactPhone,
		"address":               settings.Address,
		"currency":              settings.Currency,
		"shippingFee":           settings.ShippingFee,
		"freeShippingThreshold": settings.FreeShippingThreshold,
		"socialLinks":           settings.SocialLinks,
	})
}

func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settingsService.Get(r.Context())
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

type UpdateSettingsRequest struct {
	SiteName               *string          `json:"siteName"`
	SiteDescription        *string          `json:"siteDescription"`
	ContactEmail           *string          `json:"contactEmail" validate:"omitempty,email"`
	ContactPhone           *string          `json:"contactPhone"`
	Address                *string          `json:"address"`
	Currency               *domain.Currency `json:"currency"`
	TaxRate                *float64         `json:"taxRate" validate:"omitempty,min=0"`
	ShippingFee            *float64         `json:"shippingFee" validate:"omitempty,min=0"`
	FreeShippingThreshold  *float64         `json:"freeShippingThreshold"`
	OrderNotificationEmail *string          `json:"orderNotificationEmail"`
	LowStockAlertThreshold *int             `json:"lowStockAlertThreshold"`
	EnableEmailNotifs      *bool            `json:"enableEmailNotifications"`
	SocialLinks            json.RawMessage  `json:"socialLinks"`
}

// Update applies a partial settings patch. Absent fields keep their current
// values.
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		http.Error(w, "Validation failed: "+err.Error(), http.StatusBadRequest)
		return
	}

	settings, err := h.settingsService.Get(r.Context())
	if err != nil {
		serviceError(w, err)
		return
	}

	if req.SiteName != nil {
		settings.SiteName = *req.SiteName
	}
	if req.SiteDescription != nil {
		settings.SiteDescription = *req.SiteDescription
	}
	if req.ContactEmail != nil {
		settings.ContactEmail = *req.ContactEmail
	}
	if req.ContactPhone != nil {
		settings.ContactPhone = *req.ContactPhone
	}
	if req.Address != nil {
		settings.Address = *req.Address
	}
	if req.Currency != nil {
		settings.Currency = *req.Currency
	}
	if req.TaxRate != nil {
		settings.TaxRate = *req.TaxRate
	}
	if req.ShippingFee != nil {
		settings.ShippingFee = *req.ShippingFee
	}
	if req.FreeShippingThreshold != nil {
		settings.FreeShippingThreshold = req.FreeShippingThreshold
	}
	if req.OrderNotificationEmail != nil {
		settings.OrderNotificationEmail = *req.OrderNotificationEmail
	}
	if req.LowStockAlertThreshold != nil {
		settings.LowStockAlertThreshold = *req.LowStockAlertThreshold
	}
	if req.EnableEmailNotifs != nil {
		settings.EnableEmailNotifs = *req.EnableEmailNotifs
	}
	if req.SocialLinks != nil {
		settings.SocialLinks = datatypes.JSON(req.SocialLinks)
	}

	updated, err := h.settingsService.Update(r.Context(), settings)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}
