package dto

import "time"

// CreateAttendantDutyRequest is the body for POST /api/attendant-duties.
// AttendantID is the attendant's person id.
type CreateAttendantDutyRequest struct {
	AttendantID uint      `json:"attendantId" binding:"required,gt=0"`
	HostelID    uint      `json:"hostelId"    binding:"required,gt=0"`
	DutyType    string    `json:"dutyType"    binding:"required,oneof=CLEANING ROOM_MANAGEMENT BASIC_ASSISTANCE SECURITY"`
	ShiftType   string    `json:"shiftType"   binding:"required,oneof=MORNING EVENING NIGHT"`
	DutyDate    time.Time `json:"dutyDate"    binding:"required"`
}

// UpdateAttendantDutyRequest is the body for PUT /api/attendant-duties/:id.
type UpdateAttendantDutyRequest struct {
	DutyType  string    `json:"dutyType"  binding:"required,oneof=CLEANING ROOM_MANAGEMENT BASIC_ASSISTANCE SECURITY"`
	ShiftType string    `json:"shiftType" binding:"required,oneof=MORNING EVENING NIGHT"`
	DutyDate  time.Time `json:"dutyDate"  binding:"required"`
}
