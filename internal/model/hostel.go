package model

// Hostel owns its address and rooms; both are removed with it.
type Hostel struct {
	ID        uint    `gorm:"primaryKey"                 json:"id"`
	Name      string  `gorm:"type:varchar(100);not null" json:"name"`
	ContactNo *string `gorm:"type:varchar(20)"           json:"contactNo,omitempty"`
	BaseModel

	HostelAddress     *HostelAddress           `gorm:"foreignKey:HostelID;constraint:OnDelete:CASCADE" json:"hostelAddress,omitempty"`
	Rooms             []Room                   `gorm:"foreignKey:HostelID;constraint:OnDelete:CASCADE" json:"rooms,omitempty"`
	WardenAssignments []HostelWardenAssignment `gorm:"foreignKey:HostelID;constraint:OnDelete:CASCADE" json:"wardenAssignments,omitempty"`
	AttendantDuties   []AttendantDuty          `gorm:"foreignKey:HostelID;constraint:OnDelete:CASCADE" json:"attendantDuties,omitempty"`
}

// TableName sets the table name.
func (Hostel) TableName() string { return "hostels" }

// HostelAddress is the one address a hostel owns.
type HostelAddress struct {
	ID       uint    `gorm:"primaryKey"                 json:"id"`
	HostelID uint    `gorm:"not null;uniqueIndex"       json:"hostelId"`
	Building string  `gorm:"type:varchar(50);not null"  json:"building"`
	Street   string  `gorm:"type:varchar(100);not null" json:"street"`
	City     string  `gorm:"type:varchar(50);not null"  json:"city"`
	State    string  `gorm:"type:varchar(50);not null"  json:"state"`
	Pincode  string  `gorm:"type:varchar(6);not null"   json:"pincode"`
	Landmark *string `gorm:"type:varchar(100)"          json:"landmark,omitempty"`
}

// TableName sets the table name.
func (HostelAddress) TableName() string { return "hostel_addresses" }
