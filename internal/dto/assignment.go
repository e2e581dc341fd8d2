package dto

import "time"

// CreateWardenAssignmentRequest is the body for POST /api/hostel-warden-assignments.
// WardenID is the warden's person id, matching the rest of the API surface.
type CreateWardenAssignmentRequest struct {
	HostelID       uint       `json:"hostelId"       binding:"required,gt=0"`
	WardenID       uint       `json:"wardenId"       binding:"required,gt=0"`
	AssignmentDate time.Time  `json:"assignmentDate" binding:"required"`
	EndDate        *time.Time `json:"endDate"`
}

// UpdateWardenAssignmentRequest is the body for PUT /api/hostel-warden-assignments/:id.
// Closed assignments stay closed, so the end date is mandatory here.
type UpdateWardenAssignmentRequest struct {
	EndDate time.Time `json:"endDate" binding:"required"`
}
