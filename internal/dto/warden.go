package dto

import (
	"time"

	"github.com/KrishSharma007/hostel-management/internal/model"
)

// HostelAssignmentRequest is the optional assignment supplied when creating
// or updating a warden.
type HostelAssignmentRequest struct {
	HostelID       uint       `json:"hostelId"       binding:"required,gt=0"`
	AssignmentDate time.Time  `json:"assignmentDate" binding:"required"`
	EndDate        *time.Time `json:"endDate"`
}

// CreateWardenRequest is the body for POST and PUT /api/wardens.
type CreateWardenRequest struct {
	Name             string                   `json:"name"             binding:"required,min=2"`
	ContactNo        *string                  `json:"contactNo"        binding:"omitempty,contactno"`
	PersonalAddress  *AddressRequest          `json:"personalAddress"  binding:"omitempty"`
	HostelAssignment *HostelAssignmentRequest `json:"hostelAssignment" binding:"omitempty"`
}

// WardenResponse is a warden keyed by its person id.
type WardenResponse struct {
	ID                uint                           `json:"id"` // person id, aliased for clients
	WardenID          uint                           `json:"wardenId"`
	PersonID          uint                           `json:"personId"`
	Person            *model.Person                  `json:"person,omitempty"`
	HostelAssignments []model.HostelWardenAssignment `json:"hostelAssignments,omitempty"`
}

// NewWardenResponse maps a warden model onto the API shape.
func NewWardenResponse(w *model.Warden) *WardenResponse {
	return &WardenResponse{
		ID:                w.PersonID,
		WardenID:          w.ID,
		PersonID:          w.PersonID,
		Person:            w.Person,
		HostelAssignments: w.HostelAssignments,
	}
}
