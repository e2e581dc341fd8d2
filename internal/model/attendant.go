package model

// Attendant is the role record for a person of type Attendant.
type Attendant struct {
	ID       uint `gorm:"primaryKey"           json:"attendantId"`
	PersonID uint `gorm:"not null;uniqueIndex" json:"personId"`

	Person *Person         `gorm:"foreignKey:PersonID;references:ID" json:"person,omitempty"`
	Duties []AttendantDuty `gorm:"foreignKey:AttendantID;constraint:OnDelete:CASCADE" json:"duties,omitempty"`
}

// TableName sets the table name.
func (Attendant) TableName() string { return "attendants" }
