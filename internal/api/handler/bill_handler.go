package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/KrishSharma007/hostel-management/internal/dto"
	"github.com/KrishSharma007/hostel-management/internal/repository"
	"github.com/KrishSharma007/hostel-management/internal/service"
	apperrors "github.com/KrishSharma007/hostel-management/pkg/errors"
	"github.com/KrishSharma007/hostel-management/pkg/response"
)

// BillHandler serves /api/bills.
type BillHandler struct {
	billSvc service.BillService
}

func NewBillHandler(billSvc service.BillService) *BillHandler {
	return &BillHandler{billSvc: billSvc}
}

// ListBills handles GET /api/bills with optional ?status= and ?studentId=
// filters.
func (h *BillHandler) ListBills(c *gin.Context) {
	var req dto.BillListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	bills, err := h.billSvc.List(c.Request.Context(), repository.BillFilter{
		Status:    req.Status,
		StudentID: req.StudentID,
	})
	if err != nil {
		h.handleBillError(c, err)
		return
	}

	response.OK(c, bills)
}

// GetBill handles GET /api/bills/:id.
func (h *BillHandler) GetBill(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	bill, err := h.billSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleBillError(c, err)
		return
	}

	response.OK(c, bill)
}

// CreateBill handles POST /api/bills.
func (h *BillHandler) CreateBill(c *gin.Context) {
	var req dto.CreateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	bill, err := h.billSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleBillError(c, err)
		return
	}

	response.Created(c, bill)
}

// UpdateBill handles PUT /api/bills/:id.
func (h *BillHandler) UpdateBill(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.UpdateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	bill, err := h.billSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleBillError(c, err)
		return
	}

	response.OK(c, bill)
}

// DeleteBill handles DELETE /api/bills/:id. Unlike the person routes it
// confirms with a message body rather than a 204.
func (h *BillHandler) DeleteBill(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.billSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleBillError(c, err)
		return
	}

	response.OK(c, gin.H{"message": "Bill deleted successfully"})
}

func (h *BillHandler) handleBillError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrBillNotFound):
		response.NotFound(c, "Bill not found")
	case errors.Is(err, service.ErrStudentNotFound):
		response.NotFound(c, "Student not found")
	case apperrors.IsStoreUnavailable(err):
		response.ServiceUnavailable(c)
	default:
		response.InternalError(c, "Failed to process bill", err)
	}
}
