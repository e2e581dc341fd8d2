package model

// Student is the role record for a person of type Student.
type Student struct {
	ID               uint    `gorm:"primaryKey"           json:"studentId"`
	PersonID         uint    `gorm:"not null;uniqueIndex" json:"personId"`
	Remark           *string `gorm:"type:text"            json:"remark,omitempty"`
	EmergencyContact *string `gorm:"type:varchar(20)"     json:"emergencyContact,omitempty"`
	FatherContact    *string `gorm:"type:varchar(20)"     json:"fatherContact,omitempty"`
	MotherContact    *string `gorm:"type:varchar(20)"     json:"motherContact,omitempty"`

	Person          *Person          `gorm:"foreignKey:PersonID;references:ID"   json:"person,omitempty"`
	RoomAllocations []RoomAllocation `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE" json:"roomAllocations,omitempty"`
	MessBills       []MessBill       `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE" json:"messBills,omitempty"`
}

// TableName sets the table name.
func (Student) TableName() string { return "students" }
