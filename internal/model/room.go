package model

// Room belongs to a hostel; capacity is fixed by room type.
type Room struct {
	ID               uint    `gorm:"primaryKey"                json:"id"`
	HostelID         uint    `gorm:"not null;index"            json:"hostelId"`
	RoomType         string  `gorm:"type:varchar(20);not null" json:"roomType"` // SINGLE | DOUBLE | TRIPLE | DORMITORY
	Capacity         int     `gorm:"not null"                  json:"capacity"`
	FurnitureDetails *string `gorm:"type:varchar(100)"         json:"furnitureDetails,omitempty"`

	Hostel      *Hostel          `gorm:"foreignKey:HostelID;references:ID" json:"hostel,omitempty"`
	Allocations []RoomAllocation `gorm:"foreignKey:RoomID;constraint:OnDelete:CASCADE" json:"allocations,omitempty"`
}

// TableName sets the table name.
func (Room) TableName() string { return "rooms" }
