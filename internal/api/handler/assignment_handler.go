package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/KrishSharma007/hostel-management/internal/dto"
	"github.com/KrishSharma007/hostel-management/internal/service"
	apperrors "github.com/KrishSharma007/hostel-management/pkg/errors"
	"github.com/KrishSharma007/hostel-management/pkg/response"
)

// AssignmentHandler serves /api/hostel-warden-assignments.
type AssignmentHandler struct {
	assignmentSvc service.AssignmentService
}

func NewAssignmentHandler(assignmentSvc service.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{assignmentSvc: assignmentSvc}
}

// ListAssignments handles GET /api/hostel-warden-assignments.
func (h *AssignmentHandler) ListAssignments(c *gin.Context) {
	assignments, err := h.assignmentSvc.List(c.Request.Context())
	if err != nil {
		h.handleAssignmentError(c, err)
		return
	}

	response.OK(c, assignments)
}

// ListHostelAssignments handles GET /api/hostels/:id/warden-assignments.
func (h *AssignmentHandler) ListHostelAssignments(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	assignments, err := h.assignmentSvc.ListByHostel(c.Request.Context(), id)
	if err != nil {
		h.handleAssignmentError(c, err)
		return
	}

	response.OK(c, assignments)
}

// ListWardenAssignments handles GET /api/wardens/:id/hostel-assignments.
// The id is the warden's person id.
func (h *AssignmentHandler) ListWardenAssignments(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	assignments, err := h.assignmentSvc.ListByWarden(c.Request.Context(), id)
	if err != nil {
		h.handleAssignmentError(c, err)
		return
	}

	response.OK(c, assignments)
}

// CreateAssignment handles POST /api/hostel-warden-assignments.
func (h *AssignmentHandler) CreateAssignment(c *gin.Context) {
	var req dto.CreateWardenAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	assignment, err := h.assignmentSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleAssignmentError(c, err)
		return
	}

	response.Created(c, assignment)
}

// UpdateAssignment handles PUT /api/hostel-warden-assignments/:id.
func (h *AssignmentHandler) UpdateAssignment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.UpdateWardenAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	assignment, err := h.assignmentSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleAssignmentError(c, err)
		return
	}

	response.OK(c, assignment)
}

func (h *AssignmentHandler) handleAssignmentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrAssignmentNotFound):
		response.NotFound(c, "Assignment not found")
	case errors.Is(err, service.ErrWardenNotFound):
		response.NotFound(c, "Warden not found")
	case errors.Is(err, service.ErrHostelNotFound):
		response.NotFound(c, "Hostel not found")
	case errors.Is(err, service.ErrAssignmentClosed):
		response.BadRequest(c, "Assignment Closed", "A closed assignment cannot be reopened")
	case apperrors.IsStoreUnavailable(err):
		response.ServiceUnavailable(c)
	default:
		response.InternalError(c, "Failed to process assignment", err)
	}
}
