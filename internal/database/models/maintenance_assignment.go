package models

import (
	"maintenance-tracker-backend/internal/calendar"

	"github.com/google/uuid"
)

// MaintenanceIndexName is the unique index that keeps one assignment per operator per day.
// The repository matches on it when translating unique violations.
const MaintenanceIndexName = "idx_maintenance_operator_date"

// ObservationsMaxLength is the character limit for observations
const ObservationsMaxLength = 300

// MaintenanceAssignment schedules one operator on one piece of equipment for one day
type MaintenanceAssignment struct {
	BaseModel
	AuditFields
	EquipmentID   uuid.UUID     `json:"equipment_id" gorm:"type:uuid;not null;index"`
	OperatorID    uuid.UUID     `json:"operator_id" gorm:"type:uuid;not null;uniqueIndex:idx_maintenance_operator_date,priority:1"`
	ScheduledDate calendar.Date `json:"scheduled_date" gorm:"not null;index;uniqueIndex:idx_maintenance_operator_date,priority:2"`
	Observations  *string       `json:"observations,omitempty" gorm:"type:varchar(300)"`

	// Relationships
	Equipment *Equipment `json:"equipment,omitempty" gorm:"foreignKey:EquipmentID;constraint:OnDelete:RESTRICT"`
	Operator  *Operator  `json:"operator,omitempty" gorm:"foreignKey:OperatorID;constraint:OnDelete:RESTRICT"`
}

// TableName pins the table name
func (MaintenanceAssignment) TableName() string {
	return "maintenance_assignments"
}
