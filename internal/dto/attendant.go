package dto

import (
	"time"

	"github.com/KrishSharma007/hostel-management/internal/model"
)

// DutyRequest is one duty in an attendant create/update payload.
type DutyRequest struct {
	HostelID  uint      `json:"hostelId"  binding:"required,gt=0"`
	DutyType  string    `json:"dutyType"  binding:"required,oneof=CLEANING ROOM_MANAGEMENT BASIC_ASSISTANCE SECURITY"`
	ShiftType string    `json:"shiftType" binding:"required,oneof=MORNING EVENING NIGHT"`
	DutyDate  time.Time `json:"dutyDate"  binding:"required"`
}

// CreateAttendantRequest is the body for POST and PUT /api/attendants.
type CreateAttendantRequest struct {
	Name            string          `json:"name"            binding:"required,min=2"`
	ContactNo       *string         `json:"contactNo"       binding:"omitempty,contactno"`
	PersonalAddress *AddressRequest `json:"personalAddress" binding:"omitempty"`
	Duties          []DutyRequest   `json:"duties"          binding:"omitempty,dive"`
}

// AttendantResponse is an attendant keyed by its person id.
type AttendantResponse struct {
	ID          uint                  `json:"id"` // person id, aliased for clients
	AttendantID uint                  `json:"attendantId"`
	PersonID    uint                  `json:"personId"`
	Person      *model.Person         `json:"person,omitempty"`
	Duties      []model.AttendantDuty `json:"duties,omitempty"`
}

// NewAttendantResponse maps an attendant model onto the API shape.
func NewAttendantResponse(a *model.Attendant) *AttendantResponse {
	return &AttendantResponse{
		ID:          a.PersonID,
		AttendantID: a.ID,
		PersonID:    a.PersonID,
		Person:      a.Person,
		Duties:      a.Duties,
	}
}
