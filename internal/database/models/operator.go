package models

import "strings"

// Operator is a technician who can be assigned maintenance
type Operator struct {
	BaseModel
	Cedula    string  `json:"cedula" gorm:"size:20;not null;uniqueIndex" validate:"required,max=20"`
	FirstName string  `json:"first_name" gorm:"size:100;not null" validate:"required,max=100"`
	LastName  string  `json:"last_name" gorm:"size:100;not null" validate:"required,max=100"`
	Email     string  `json:"email" gorm:"size:255;not null" validate:"required,email,max=255"`
	Phone     *string `json:"phone,omitempty" gorm:"size:30"`
	PhotoURL  *string `json:"photo_url,omitempty" gorm:"size:500"`
}

// TableName pins the table name
func (Operator) TableName() string {
	return "operators"
}

// FullName joins first and last name
func (o Operator) FullName() string {
	return strings.TrimSpace(o.FirstName + " " + o.LastName)
}
