package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "ouibooking.backend/internal/domain/errors"
	"ouibooking.backend/internal/interfaces/http/response"
	"ouibooking.backend/internal/usecases"
)

// DashboardHandler serves the dashboard stat endpoints
type DashboardHandler struct {
	dashboardUsecase *usecases.DashboardUsecase
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardUsecase *usecases.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{
		dashboardUsecase: dashboardUsecase,
	}
}

// GetUserStats returns the caller's own bot figures
// GET /api/v1/dashboard/stats
func (h *DashboardHandler) GetUserStats(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	stats, err := h.dashboardUsecase.UserStats(c.Request.Context(), caller)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"stats": stats})
}

// GetPlatformStats returns the admin-only platform overview
// GET /api/v1/dashboard/platform
func (h *DashboardHandler) GetPlatformStats(c *gin.Context) {
	stats, err := h.dashboardUsecase.PlatformStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"stats": stats})
}
