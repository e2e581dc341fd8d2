package model

// Person is the base identity record shared by students, wardens and
// attendants. Deleting a person cascades to its role record and address.
type Person struct {
	ID         uint    `gorm:"primaryKey"                json:"id"`
	Name       string  `gorm:"type:varchar(100);not null" json:"name"`
	PersonType string  `gorm:"type:varchar(20);not null"  json:"personType"` // Student | Warden | Attendant
	ContactNo  *string `gorm:"type:varchar(20)"           json:"contactNo,omitempty"`
	BaseModel

	PersonalAddress *PersonalAddress `gorm:"foreignKey:PersonID;constraint:OnDelete:CASCADE" json:"personalAddress,omitempty"`
}

// TableName sets the table name.
func (Person) TableName() string { return "persons" }

// PersonalAddress is the one address a person owns.
type PersonalAddress struct {
	ID       uint   `gorm:"primaryKey"                 json:"id"`
	PersonID uint   `gorm:"not null;uniqueIndex"       json:"personId"`
	HNo      string `gorm:"type:varchar(20);not null"  json:"hNo"`
	Street   string `gorm:"type:varchar(100);not null" json:"street"`
	City     string `gorm:"type:varchar(50);not null"  json:"city"`
	State    string `gorm:"type:varchar(50);not null"  json:"state"`
	Pincode  string `gorm:"type:varchar(6);not null"   json:"pincode"`
}

// TableName sets the table name.
func (PersonalAddress) TableName() string { return "personal_addresses" }
