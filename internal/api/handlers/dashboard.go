package handlers

import (
	"net/http"

	"github.com/bashirfakih/MoticoSolutionsWebsite-sub003/internal/service"
)

type DashboardHandler struct {
	dashboardService *service.DashboardService
	authService      *service.AuthService
}

func NewDashboardHandler(dashboardService *service.DashboardService, authService *service.AuthService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService, authService: authService}
}

func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboardService.Stats(r.Context())
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// SweepSessions removes expired session rows on demand. The hourly sweeper
// does the same thing in the background; this endpoint exists so an admin
// can trigger it immediately.
func (h *DashboardHandler) SweepSessions(w http.ResponseWriter, r *http.Request) {
	removed, err := h.authService.SweepExpired(r.Context())
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"removed": removed})
}
