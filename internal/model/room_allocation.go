package model

import "time"

// RoomAllocation links a student to a room for an academic year.
// A nil EndDate marks the allocation as active; once closed it is
// never reopened.
type RoomAllocation struct {
	ID           uint       `gorm:"primaryKey"               json:"id"`
	StudentID    uint       `gorm:"not null;index"           json:"studentId"`
	RoomID       uint       `gorm:"not null;index"           json:"roomId"`
	AcademicYear string     `gorm:"type:varchar(9);not null" json:"academicYear"`
	StartDate    time.Time  `gorm:"not null"                 json:"startDate"`
	EndDate      *time.Time `json:"endDate"`

	Student *Student `gorm:"foreignKey:StudentID;references:ID" json:"student,omitempty"`
	Room    *Room    `gorm:"foreignKey:RoomID;references:ID"    json:"room,omitempty"`
}

// TableName sets the table name.
func (RoomAllocation) TableName() string { return "room_allocations" }
