package model

// Warden is the role record for a person of type Warden.
type Warden struct {
	ID       uint `gorm:"primaryKey"           json:"wardenId"`
	PersonID uint `gorm:"not null;uniqueIndex" json:"personId"`

	Person            *Person                  `gorm:"foreignKey:PersonID;references:ID" json:"person,omitempty"`
	HostelAssignments []HostelWardenAssignment `gorm:"foreignKey:WardenID;constraint:OnDelete:CASCADE" json:"hostelAssignments,omitempty"`
}

// TableName sets the table name.
func (Warden) TableName() string { return "wardens" }
