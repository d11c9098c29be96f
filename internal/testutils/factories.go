package testutils

import (
	"fmt"
	"sync/atomic"
	"time"

	"maintenance-tracker-backend/internal/calendar"
	"maintenance-tracker-backend/internal/database/models"

	"github.com/google/uuid"
)

// seq keeps natural keys (equipment code, cedula) unique across factory calls
var seq atomic.Int64

func next() int64 { return seq.Add(1) }

// BrandFactory provides methods to create test Brand data
type BrandFactory struct{}

// NewBrandFactory creates a new BrandFactory
func NewBrandFactory() *BrandFactory {
	return &BrandFactory{}
}

// Create creates a test Brand with default values
func (f *BrandFactory) Create() *models.Brand {
	return &models.Brand{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      fmt.Sprintf("Brand %d", next()),
	}
}

// EquipmentFactory provides methods to create test Equipment data
type EquipmentFactory struct{}

// NewEquipmentFactory creates a new EquipmentFactory
func NewEquipmentFactory() *EquipmentFactory {
	return &EquipmentFactory{}
}

// Create creates test Equipment with default values
func (f *EquipmentFactory) Create() *models.Equipment {
	n := next()
	return &models.Equipment{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		Name:        fmt.Sprintf("Hydraulic Press %d", n),
		Code:        fmt.Sprintf("EQ-%04d", n),
		Description: "Test equipment",
		BrandID:     uuid.New(),
	}
}

// WithBrand sets the brand of the equipment
func (f *EquipmentFactory) WithBrand(brandID uuid.UUID) *models.Equipment {
	e := f.Create()
	e.BrandID = brandID
	return e
}

// OperatorFactory provides methods to create test Operator data
type OperatorFactory struct{}

// NewOperatorFactory creates a new OperatorFactory
func NewOperatorFactory() *OperatorFactory {
	return &OperatorFactory{}
}

// Create creates a test Operator with default values
func (f *OperatorFactory) Create() *models.Operator {
	n := next()
	return &models.Operator{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Cedula:    fmt.Sprintf("%010d", n),
		FirstName: "Ana",
		LastName:  fmt.Sprintf("Torres %d", n),
		Email:     fmt.Sprintf("operator%d@test.com", n),
	}
}

// MaintenanceFactory provides methods to create test MaintenanceAssignment data
type MaintenanceFactory struct{}

// NewMaintenanceFactory creates a new MaintenanceFactory
func NewMaintenanceFactory() *MaintenanceFactory {
	return &MaintenanceFactory{}
}

// Create creates a test assignment scheduled a week from now
func (f *MaintenanceFactory) Create() *models.MaintenanceAssignment {
	return &models.MaintenanceAssignment{
		BaseModel:     models.BaseModel{ID: uuid.New()},
		AuditFields:   models.AuditFields{CreatedBy: "test-user", UpdatedBy: "test-user"},
		EquipmentID:   uuid.New(),
		OperatorID:    uuid.New(),
		ScheduledDate: calendar.FromTime(time.Now()).AddDays(7),
	}
}

// For builds an assignment for the given equipment, operator and date
func (f *MaintenanceFactory) For(equipmentID, operatorID uuid.UUID, date calendar.Date) *models.MaintenanceAssignment {
	a := f.Create()
	a.EquipmentID = equipmentID
	a.OperatorID = operatorID
	a.ScheduledDate = date
	return a
}

// FactorySet provides access to all factories
type FactorySet struct {
	Brand       *BrandFactory
	Equipment   *EquipmentFactory
	Operator    *OperatorFactory
	Maintenance *MaintenanceFactory
}

// NewFactorySet creates a new set of all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Brand:       NewBrandFactory(),
		Equipment:   NewEquipmentFactory(),
		Operator:    NewOperatorFactory(),
		Maintenance: NewMaintenanceFactory(),
	}
}
