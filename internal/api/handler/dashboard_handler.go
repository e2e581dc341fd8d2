package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/KrishSharma007/hostel-management/internal/service"
	apperrors "github.com/KrishSharma007/hostel-management/pkg/errors"
	"github.com/KrishSharma007/hostel-management/pkg/response"
)

// DashboardHandler serves /api/dashboard.
type DashboardHandler struct {
	dashboardSvc service.DashboardService
}

func NewDashboardHandler(dashboardSvc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardSvc: dashboardSvc}
}

// GetOccupancySummary handles GET /api/dashboard/occupancy.
func (h *DashboardHandler) GetOccupancySummary(c *gin.Context) {
	summary, err := h.dashboardSvc.OccupancySummary(c.Request.Context())
	if err != nil {
		h.handleDashboardError(c, err)
		return
	}

	response.OK(c, summary)
}

// GetFinancialSummary handles GET /api/dashboard/financial.
func (h *DashboardHandler) GetFinancialSummary(c *gin.Context) {
	summary, err := h.dashboardSvc.FinancialSummary(c.Request.Context())
	if err != nil {
		h.handleDashboardError(c, err)
		return
	}

	response.OK(c, summary)
}

func (h *DashboardHandler) handleDashboardError(c *gin.Context, err error) {
	if apperrors.IsStoreUnavailable(err) {
		response.ServiceUnavailable(c)
		return
	}
	response.InternalError(c, "Failed to build dashboard summary", err)
}
