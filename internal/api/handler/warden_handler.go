package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/KrishSharma007/hostel-management/internal/dto"
	"github.com/KrishSharma007/hostel-management/internal/service"
	apperrors "github.com/KrishSharma007/hostel-management/pkg/errors"
	"github.com/KrishSharma007/hostel-management/pkg/response"
)

// WardenHandler serves /api/wardens.
type WardenHandler struct {
	wardenSvc service.WardenService
}

func NewWardenHandler(wardenSvc service.WardenService) *WardenHandler {
	return &WardenHandler{wardenSvc: wardenSvc}
}

// ListWardens handles GET /api/wardens.
func (h *WardenHandler) ListWardens(c *gin.Context) {
	wardens, err := h.wardenSvc.List(c.Request.Context())
	if err != nil {
		h.handleWardenError(c, err)
		return
	}

	response.OK(c, wardens)
}

// GetWarden handles GET /api/wardens/:id. The id is the person id.
func (h *WardenHandler) GetWarden(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	warden, err := h.wardenSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleWardenError(c, err)
		return
	}

	response.OK(c, warden)
}

// CreateWarden handles POST /api/wardens.
func (h *WardenHandler) CreateWarden(c *gin.Context) {
	var req dto.CreateWardenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	warden, err := h.wardenSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleWardenError(c, err)
		return
	}

	response.Created(c, warden)
}

// UpdateWarden handles PUT /api/wardens/:id.
func (h *WardenHandler) UpdateWarden(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.CreateWardenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	warden, err := h.wardenSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleWardenError(c, err)
		return
	}

	response.OK(c, warden)
}

// DeleteWarden handles DELETE /api/wardens/:id.
func (h *WardenHandler) DeleteWarden(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.wardenSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleWardenError(c, err)
		return
	}

	response.NoContent(c)
}

func (h *WardenHandler) handleWardenError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrWardenNotFound):
		response.NotFound(c, "Warden not found")
	case errors.Is(err, service.ErrHostelNotFound):
		response.NotFound(c, "Hostel not found")
	case apperrors.IsStoreUnavailable(err):
		response.ServiceUnavailable(c)
	default:
		response.InternalError(c, "Failed to process warden", err)
	}
}
