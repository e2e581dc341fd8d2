package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KrishSharma007/hostel-management/internal/service"
	apperrors "github.com/KrishSharma007/hostel-management/pkg/errors"
	"github.com/KrishSharma007/hostel-management/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler serves /api/export.
type ExportHandler struct {
	exportSvc service.ExportService
}

func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportBills handles GET /api/export/bills.
func (h *ExportHandler) ExportBills(c *gin.Context) {
	buf, filename, err := h.exportSvc.BillsReport(c.Request.Context())
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// ExportOccupancy handles GET /api/export/occupancy.
func (h *ExportHandler) ExportOccupancy(c *gin.Context) {
	buf, filename, err := h.exportSvc.OccupancyReport(c.Request.Context())
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

func (h *ExportHandler) handleExportError(c *gin.Context, err error) {
	if apperrors.IsStoreUnavailable(err) {
		response.ServiceUnavailable(c)
		return
	}
	response.InternalError(c, "Failed to generate export", err)
}
