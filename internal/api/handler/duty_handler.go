package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/KrishSharma007/hostel-management/internal/dto"
	"github.com/KrishSharma007/hostel-management/internal/service"
	apperrors "github.com/KrishSharma007/hostel-management/pkg/errors"
	"github.com/KrishSharma007/hostel-management/pkg/response"
)

// DutyHandler serves /api/attendant-duties.
type DutyHandler struct {
	dutySvc service.DutyService
}

func NewDutyHandler(dutySvc service.DutyService) *DutyHandler {
	return &DutyHandler{dutySvc: dutySvc}
}

// ListDuties handles GET /api/attendant-duties.
func (h *DutyHandler) ListDuties(c *gin.Context) {
	duties, err := h.dutySvc.List(c.Request.Context())
	if err != nil {
		h.handleDutyError(c, err)
		return
	}

	response.OK(c, duties)
}

// ListAttendantDuties handles GET /api/attendants/:id/duties. The id is
// the attendant's person id.
func (h *DutyHandler) ListAttendantDuties(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	duties, err := h.dutySvc.ListByAttendant(c.Request.Context(), id)
	if err != nil {
		h.handleDutyError(c, err)
		return
	}

	response.OK(c, duties)
}

// ListHostelDuties handles GET /api/hostels/:id/attendant-duties.
func (h *DutyHandler) ListHostelDuties(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	duties, err := h.dutySvc.ListByHostel(c.Request.Context(), id)
	if err != nil {
		h.handleDutyError(c, err)
		return
	}

	response.OK(c, duties)
}

// CreateDuty handles POST /api/attendant-duties.
func (h *DutyHandler) CreateDuty(c *gin.Context) {
	var req dto.CreateAttendantDutyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	duty, err := h.dutySvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleDutyError(c, err)
		return
	}

	response.Created(c, duty)
}

// UpdateDuty handles PUT /api/attendant-duties/:id.
func (h *DutyHandler) UpdateDuty(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.UpdateAttendantDutyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	duty, err := h.dutySvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleDutyError(c, err)
		return
	}

	response.OK(c, duty)
}

// DeleteDuty handles DELETE /api/attendant-duties/:id.
func (h *DutyHandler) DeleteDuty(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.dutySvc.Delete(c.Request.Context(), id); err != nil {
		h.handleDutyError(c, err)
		return
	}

	response.NoContent(c)
}

func (h *DutyHandler) handleDutyError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrDutyNotFound):
		response.NotFound(c, "Duty not found")
	case errors.Is(err, service.ErrAttendantNotFound):
		response.NotFound(c, "Attendant not found")
	case errors.Is(err, service.ErrHostelNotFound):
		response.NotFound(c, "Hostel not found")
	case apperrors.IsStoreUnavailable(err):
		response.ServiceUnavailable(c)
	default:
		response.InternalError(c, "Failed to process duty", err)
	}
}
