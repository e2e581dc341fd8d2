package model

import "time"

// Room types and their fixed capacities.
const (
	RoomTypeSingle    = "SINGLE"
	RoomTypeDouble    = "DOUBLE"
	RoomTypeTriple    = "TRIPLE"
	RoomTypeDormitory = "DORMITORY"
)

// RoomCapacity maps each room type to its capacity.
var RoomCapacity = map[string]int{
	RoomTypeSingle:    1,
	RoomTypeDouble:    2,
	RoomTypeTriple:    3,
	RoomTypeDormitory: 10,
}

// Person types.
const (
	PersonTypeStudent   = "Student"
	PersonTypeWarden    = "Warden"
	PersonTypeAttendant = "Attendant"
)

// Mess bill statuses.
const (
	BillStatusGenerated = "GENERATED"
	BillStatusPaid      = "PAID"
	BillStatusOverdue   = "OVERDUE"
	BillStatusCancelled = "CANCELLED"
)

// BaseModel carries the audit timestamps embedded by mutable entities.
type BaseModel struct {
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updatedAt"`
}
