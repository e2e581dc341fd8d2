package model

import "time"

// AttendantDuty records one shift an attendant works at a hostel.
type AttendantDuty struct {
	ID          uint      `gorm:"primaryKey"                json:"id"`
	AttendantID uint      `gorm:"not null;index"            json:"attendantId"`
	HostelID    uint      `gorm:"not null;index"            json:"hostelId"`
	DutyType    string    `gorm:"type:varchar(20);not null" json:"dutyType"`  // CLEANING | ROOM_MANAGEMENT | BASIC_ASSISTANCE | SECURITY
	ShiftType   string    `gorm:"type:varchar(10);not null" json:"shiftType"` // MORNING | EVENING | NIGHT
	DutyDate    time.Time `gorm:"not null"                  json:"dutyDate"`

	Attendant *Attendant `gorm:"foreignKey:AttendantID;references:ID" json:"attendant,omitempty"`
	Hostel    *Hostel    `gorm:"foreignKey:HostelID;references:ID"    json:"hostel,omitempty"`
}

// TableName sets the table name.
func (AttendantDuty) TableName() string { return "attendant_duties" }
