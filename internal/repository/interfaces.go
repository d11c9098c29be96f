package repository

import (
	"context"

	"maintenance-tracker-backend/internal/calendar"
	"maintenance-tracker-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// MaintenanceRepositoryInterface defines the interface for maintenance assignment storage.
// Implementations report a taken (operator, date) slot as *errors.ConflictError and a
// missing row or reference as *errors.NotFoundError.
type MaintenanceRepositoryInterface interface {
	Create(ctx context.Context, assignment *models.MaintenanceAssignment) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.MaintenanceAssignment, error)
	Update(ctx context.Context, assignment *models.MaintenanceAssignment) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListAll(ctx context.Context) ([]models.MaintenanceAssignment, error)
	ListByDateRange(ctx context.Context, from, to calendar.Date) ([]models.MaintenanceAssignment, error)
}

// EquipmentRepositoryInterface defines the interface for equipment lookups
type EquipmentRepositoryInterface interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Equipment, error)
	List(ctx context.Context) ([]models.Equipment, error)
}

// OperatorRepositoryInterface defines the interface for operator lookups
type OperatorRepositoryInterface interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Operator, error)
	List(ctx context.Context) ([]models.Operator, error)
}
