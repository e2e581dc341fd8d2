package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/KrishSharma007/hostel-management/internal/dto"
	"github.com/KrishSharma007/hostel-management/internal/service"
	apperrors "github.com/KrishSharma007/hostel-management/pkg/errors"
	"github.com/KrishSharma007/hostel-management/pkg/response"
)

// AttendantHandler serves /api/attendants.
type AttendantHandler struct {
	attendantSvc service.AttendantService
}

func NewAttendantHandler(attendantSvc service.AttendantService) *AttendantHandler {
	return &AttendantHandler{attendantSvc: attendantSvc}
}

// ListAttendants handles GET /api/attendants.
func (h *AttendantHandler) ListAttendants(c *gin.Context) {
	attendants, err := h.attendantSvc.List(c.Request.Context())
	if err != nil {
		h.handleAttendantError(c, err)
		return
	}

	response.OK(c, attendants)
}

// GetAttendant handles GET /api/attendants/:id. The id is the person id.
func (h *AttendantHandler) GetAttendant(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	attendant, err := h.attendantSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleAttendantError(c, err)
		return
	}

	response.OK(c, attendant)
}

// CreateAttendant handles POST /api/attendants.
func (h *AttendantHandler) CreateAttendant(c *gin.Context) {
	var req dto.CreateAttendantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	attendant, err := h.attendantSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleAttendantError(c, err)
		return
	}

	response.Created(c, attendant)
}

// UpdateAttendant handles PUT /api/attendants/:id.
func (h *AttendantHandler) UpdateAttendant(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.CreateAttendantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	attendant, err := h.attendantSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleAttendantError(c, err)
		return
	}

	response.OK(c, attendant)
}

// DeleteAttendant handles DELETE /api/attendants/:id.
func (h *AttendantHandler) DeleteAttendant(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.attendantSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleAttendantError(c, err)
		return
	}

	response.NoContent(c)
}

func (h *AttendantHandler) handleAttendantError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrAttendantNotFound):
		response.NotFound(c, "Attendant not found")
	case errors.Is(err, service.ErrHostelNotFound):
		response.NotFound(c, "Hostel not found")
	case apperrors.IsStoreUnavailable(err):
		response.ServiceUnavailable(c)
	default:
		response.InternalError(c, "Failed to process attendant", err)
	}
}
