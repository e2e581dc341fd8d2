package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/KrishSharma007/hostel-management/internal/dto"
	"github.com/KrishSharma007/hostel-management/internal/service"
	apperrors "github.com/KrishSharma007/hostel-management/pkg/errors"
	"github.com/KrishSharma007/hostel-management/pkg/response"
)

// StudentHandler serves /api/students.
type StudentHandler struct {
	studentSvc service.StudentService
}

func NewStudentHandler(studentSvc service.StudentService) *StudentHandler {
	return &StudentHandler{studentSvc: studentSvc}
}

// ListStudents handles GET /api/students. ?unallocated=true narrows the
// list to students without an active room allocation.
func (h *StudentHandler) ListStudents(c *gin.Context) {
	var req dto.StudentListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	students, err := h.studentSvc.List(c.Request.Context(), req.Unallocated == "true")
	if err != nil {
		h.handleStudentError(c, err)
		return
	}

	response.OK(c, students)
}

// GetStudent handles GET /api/students/:id. The id is the person id.
func (h *StudentHandler) GetStudent(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	student, err := h.studentSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleStudentError(c, err)
		return
	}

	response.OK(c, student)
}

// CreateStudent handles POST /api/students.
func (h *StudentHandler) CreateStudent(c *gin.Context) {
	var req dto.CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	student, err := h.studentSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleStudentError(c, err)
		return
	}

	response.Created(c, student)
}

// UpdateStudent handles PUT /api/students/:id.
func (h *StudentHandler) UpdateStudent(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	student, err := h.studentSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleStudentError(c, err)
		return
	}

	response.OK(c, student)
}

// DeleteStudent handles DELETE /api/students/:id.
func (h *StudentHandler) DeleteStudent(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.studentSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleStudentError(c, err)
		return
	}

	response.NoContent(c)
}

func (h *StudentHandler) handleStudentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrStudentNotFound):
		response.NotFound(c, "Student not found")
	case errors.Is(err, service.ErrRoomNotFound):
		response.NotFound(c, "Room not found")
	case errors.Is(err, service.ErrRoomFull):
		response.BadRequest(c, "Room Full", "The selected room has no free beds")
	case apperrors.IsStoreUnavailable(err):
		response.ServiceUnavailable(c)
	default:
		response.InternalError(c, "Failed to process student", err)
	}
}
