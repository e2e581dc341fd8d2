package dto

import (
	"time"

	"github.com/KrishSharma007/hostel-management/internal/model"
)

// AddressRequest is the personal address payload shared by all person roles.
type AddressRequest struct {
	HNo     string `json:"hNo"     binding:"required,min=1"`
	Street  string `json:"street"  binding:"required,min=2"`
	City    string `json:"city"    binding:"required,min=2"`
	State   string `json:"state"   binding:"required,min=2"`
	Pincode string `json:"pincode" binding:"required,pincode"`
}

// AllocationRequest is the optional initial room allocation supplied when
// creating or updating a student.
type AllocationRequest struct {
	RoomID       uint      `json:"roomId"       binding:"required,gt=0"`
	AcademicYear string    `json:"academicYear" binding:"required,academicyear"`
	StartDate    time.Time `json:"startDate"    binding:"required"`
}

// CreateStudentRequest is the body for POST and PUT /api/students.
// The PUT route reuses the create schema, as the source API does.
type CreateStudentRequest struct {
	Name             string             `json:"name"             binding:"required,min=2"`
	ContactNo        *string            `json:"contactNo"        binding:"omitempty,contactno"`
	EmergencyContact *string            `json:"emergencyContact" binding:"omitempty,contactno"`
	FatherContact    *string            `json:"fatherContact"    binding:"omitempty,contactno"`
	MotherContact    *string            `json:"motherContact"    binding:"omitempty,contactno"`
	PersonalAddress  *AddressRequest    `json:"personalAddress"  binding:"omitempty"`
	Remark           *string            `json:"remark"`
	RoomAllocation   *AllocationRequest `json:"roomAllocation"   binding:"omitempty"`
}

// StudentListRequest holds the query parameters of GET /api/students.
type StudentListRequest struct {
	Unallocated string `form:"unallocated"`
}

// StudentResponse is a student keyed by its person id, the identifier the
// API exposes as "id". The role-table id is still carried separately.
type StudentResponse struct {
	ID               uint                   `json:"id"` // person id, aliased for clients
	StudentID        uint                   `json:"studentId"`
	PersonID         uint                   `json:"personId"`
	Remark           *string                `json:"remark,omitempty"`
	EmergencyContact *string                `json:"emergencyContact,omitempty"`
	FatherContact    *string                `json:"fatherContact,omitempty"`
	MotherContact    *string                `json:"motherContact,omitempty"`
	Person           *model.Person          `json:"person,omitempty"`
	RoomAllocations  []model.RoomAllocation `json:"roomAllocations,omitempty"`
	MessBills        []model.MessBill       `json:"messBills,omitempty"`
}

// NewStudentResponse maps a student model onto the API shape.
func NewStudentResponse(s *model.Student) *StudentResponse {
	return &StudentResponse{
		ID:               s.PersonID,
		StudentID:        s.ID,
		PersonID:         s.PersonID,
		Remark:           s.Remark,
		EmergencyContact: s.EmergencyContact,
		FatherContact:    s.FatherContact,
		MotherContact:    s.MotherContact,
		Person:           s.Person,
		RoomAllocations:  s.RoomAllocations,
		MessBills:        s.MessBills,
	}
}
