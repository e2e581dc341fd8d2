package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/KrishSharma007/hostel-management/internal/dto"
	"github.com/KrishSharma007/hostel-management/internal/service"
	apperrors "github.com/KrishSharma007/hostel-management/pkg/errors"
	"github.com/KrishSharma007/hostel-management/pkg/response"
)

// HostelHandler serves /api/hostels.
type HostelHandler struct {
	hostelSvc service.HostelService
}

func NewHostelHandler(hostelSvc service.HostelService) *HostelHandler {
	return &HostelHandler{hostelSvc: hostelSvc}
}

// ListHostels handles GET /api/hostels.
func (h *HostelHandler) ListHostels(c *gin.Context) {
	hostels, err := h.hostelSvc.List(c.Request.Context())
	if err != nil {
		h.handleHostelError(c, err)
		return
	}

	response.OK(c, hostels)
}

// GetHostelStats handles GET /api/hostels/stats.
func (h *HostelHandler) GetHostelStats(c *gin.Context) {
	stats, err := h.hostelSvc.Stats(c.Request.Context())
	if err != nil {
		h.handleHostelError(c, err)
		return
	}

	response.OK(c, stats)
}

// GetHostel handles GET /api/hostels/:id.
func (h *HostelHandler) GetHostel(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	hostel, err := h.hostelSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleHostelError(c, err)
		return
	}

	response.OK(c, hostel)
}

// ListHostelRooms handles GET /api/hostels/:id/rooms.
func (h *HostelHandler) ListHostelRooms(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	rooms, err := h.hostelSvc.Rooms(c.Request.Context(), id)
	if err != nil {
		h.handleHostelError(c, err)
		return
	}

	response.OK(c, rooms)
}

// CreateHostel handles POST /api/hostels.
func (h *HostelHandler) CreateHostel(c *gin.Context) {
	var req dto.CreateHostelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	hostel, err := h.hostelSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleHostelError(c, err)
		return
	}

	response.Created(c, hostel)
}

// UpdateHostel handles PUT /api/hostels/:id.
func (h *HostelHandler) UpdateHostel(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.UpdateHostelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	hostel, err := h.hostelSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleHostelError(c, err)
		return
	}

	response.OK(c, hostel)
}

// DeleteHostel handles DELETE /api/hostels/:id.
func (h *HostelHandler) DeleteHostel(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.hostelSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleHostelError(c, err)
		return
	}

	response.NoContent(c)
}

func (h *HostelHandler) handleHostelError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrHostelNotFound):
		response.NotFound(c, "Hostel not found")
	case errors.Is(err, service.ErrRoomsOccupied):
		response.BadRequest(c, "Rooms Occupied", "Cannot remove rooms that have active allocations")
	case errors.Is(err, service.ErrHostelHasResidents):
		response.BadRequest(c, "Hostel Occupied", "Cannot delete a hostel with actively allocated students")
	case apperrors.IsStoreUnavailable(err):
		response.ServiceUnavailable(c)
	default:
		response.InternalError(c, "Failed to process hostel", err)
	}
}
