package model

import "time"

// MessBill is a monthly mess charge raised against a student.
type MessBill struct {
	ID                 uint       `gorm:"primaryKey"                  json:"id"`
	StudentID          uint       `gorm:"not null;index"              json:"studentId"`
	BillAmount         float64    `gorm:"type:numeric(10,2);not null" json:"billAmount"`
	BillGenerationDate time.Time  `gorm:"not null"                    json:"billGenerationDate"`
	DueDate            time.Time  `gorm:"not null"                    json:"dueDate"`
	BillDepositDate    *time.Time `json:"billDepositDate"`
	Fine               float64    `gorm:"type:numeric(10,2);not null;default:0" json:"fine"`
	Status             string     `gorm:"type:varchar(10);not null"   json:"status"` // GENERATED | PAID | OVERDUE | CANCELLED

	Student *Student `gorm:"foreignKey:StudentID;references:ID" json:"student,omitempty"`
}

// TableName sets the table name.
func (MessBill) TableName() string { return "mess_bills" }
