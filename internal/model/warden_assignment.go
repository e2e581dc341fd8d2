package model

import "time"

// HostelWardenAssignment links a warden to a hostel. A nil EndDate marks
// the assignment as current.
type HostelWardenAssignment struct {
	ID             uint       `gorm:"primaryKey"     json:"id"`
	WardenID       uint       `gorm:"not null;index" json:"wardenId"`
	HostelID       uint       `gorm:"not null;index" json:"hostelId"`
	AssignmentDate time.Time  `gorm:"not null"       json:"assignmentDate"`
	EndDate        *time.Time `json:"endDate"`

	Warden *Warden `gorm:"foreignKey:WardenID;references:ID" json:"warden,omitempty"`
	Hostel *Hostel `gorm:"foreignKey:HostelID;references:ID" json:"hostel,omitempty"`
}

// TableName sets the table name.
func (HostelWardenAssignment) TableName() string { return "hostel_warden_assignments" }
