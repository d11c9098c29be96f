package service

import (
	"context"

	apperrors "maintenance-tracker-backend/internal/errors"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// MaintenanceServiceInterface defines the interface for the maintenance scheduler
type MaintenanceServiceInterface interface {
	Validate(req *MaintenanceRequest) (*ValidatedMaintenance, error)
	Create(ctx context.Context, req *MaintenanceRequest, actor string) (*MaintenanceResponse, *apperrors.NotificationDeliveryWarning, error)
	Update(ctx context.Context, id uuid.UUID, req *MaintenanceRequest, actor string) (*MaintenanceResponse, *apperrors.NotificationDeliveryWarning, error)
	Delete(ctx context.Context, id uuid.UUID, actor string) (*apperrors.NotificationDeliveryWarning, error)
	GetByID(ctx context.Context, id uuid.UUID) (*MaintenanceResponse, error)
	ListForDate(ctx context.Context, date string) ([]MaintenanceResponse, error)
	ListRange(ctx context.Context, from, to string) ([]MaintenanceResponse, error)
	GetCalendar(ctx context.Context, month string) (*CalendarResponse, error)
	ExportMonth(ctx context.Context, month string) (*ExportFile, error)
}

// CatalogServiceInterface defines the interface for the form pickers
type CatalogServiceInterface interface {
	ListEquipment(ctx context.Context) ([]EquipmentResponse, error)
	ListOperators(ctx context.Context) ([]OperatorResponse, error)
}
