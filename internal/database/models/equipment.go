package models

import "github.com/google/uuid"

// Equipment is a machine that receives scheduled maintenance
type Equipment struct {
	BaseModel
	Name        string    `json:"name" gorm:"size:150;not null" validate:"required,max=150"`
	Code        string    `json:"code" gorm:"size:50;not null;uniqueIndex" validate:"required,max=50"`
	Description string    `json:"description" gorm:"size:500" validate:"max=500"`
	PhotoURL    *string   `json:"photo_url,omitempty" gorm:"size:500"`
	BrandID     uuid.UUID `json:"brand_id" gorm:"type:uuid;not null;index" validate:"required"`

	// Relationships
	Brand *Brand `json:"brand,omitempty" gorm:"foreignKey:BrandID;constraint:OnDelete:RESTRICT"`
}

// TableName pins the table name; GORM would otherwise pluralize to "equipments"
func (Equipment) TableName() string {
	return "equipment"
}
