package models

// Brand is an equipment manufacturer
type Brand struct {
	BaseModel
	Name string `json:"name" gorm:"size:100;not null;uniqueIndex" validate:"required,max=100"`
}

// TableName pins the table name
func (Brand) TableName() string {
	return "brands"
}
