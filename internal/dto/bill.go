package dto

import "time"

// CreateBillRequest is the body for POST /api/bills. StudentID here is the
// student role-table id, as in the source API's bill schema.
type CreateBillRequest struct {
	StudentID          uint      `json:"studentId"          binding:"required,gt=0"`
	BillAmount         float64   `json:"billAmount"         binding:"gte=0"`
	BillGenerationDate time.Time `json:"billGenerationDate" binding:"required"`
	DueDate            time.Time `json:"dueDate"            binding:"required"`
	Fine               *float64  `json:"fine"               binding:"omitempty,gte=0"`
	Status             string    `json:"status"             binding:"required,oneof=GENERATED PAID OVERDUE CANCELLED"`
}

// UpdateBillRequest is the body for PUT /api/bills/:id.
type UpdateBillRequest struct {
	Status             string     `json:"status" binding:"required,oneof=GENERATED PAID OVERDUE CANCELLED"`
	Fine               *float64   `json:"fine"   binding:"omitempty,gte=0"`
	BillGenerationDate *time.Time `json:"billGenerationDate"`
	DueDate            *time.Time `json:"dueDate"`
	BillDepositDate    *time.Time `json:"billDepositDate"`
}

// BillListRequest holds the query parameters of GET /api/bills.
type BillListRequest struct {
	Status    string `form:"status"    binding:"omitempty,oneof=GENERATED PAID OVERDUE CANCELLED"`
	StudentID uint   `form:"studentId" binding:"omitempty,gt=0"`
}
