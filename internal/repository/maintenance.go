package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"maintenance-tracker-backend/internal/calendar"
	"maintenance-tracker-backend/internal/database/models"
	apperrors "maintenance-tracker-backend/internal/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Postgres SQLSTATE codes the repository translates
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// MaintenanceRepository handles database operations for maintenance assignments
type MaintenanceRepository struct {
	db *gorm.DB
}

// NewMaintenanceRepository creates a new maintenance repository
func NewMaintenanceRepository(db *gorm.DB) *MaintenanceRepository {
	return &MaintenanceRepository{db: db}
}

// Create inserts a new assignment. The unique index decides conflicts atomically.
func (r *MaintenanceRepository) Create(ctx context.Context, assignment *models.MaintenanceAssignment) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(assignment).Error
	if err != nil {
		return translateWriteError("create maintenance assignment", assignment, err)
	}
	return nil
}

// GetByID retrieves an assignment with its equipment and operator
func (r *MaintenanceRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.MaintenanceAssignment, error) {
	var assignment models.MaintenanceAssignment
	err := r.withDetails(ctx).First(&assignment, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMaintenanceNotFound
		}
		return nil, apperrors.NewStorageError("get maintenance assignment", err)
	}
	return &assignment, nil
}

// Update replaces the editable fields of an existing assignment.
// Zero affected rows means the assignment was deleted in the meantime.
func (r *MaintenanceRepository) Update(ctx context.Context, assignment *models.MaintenanceAssignment) error {
	assignment.UpdatedAt = time.Now()
	result := r.db.WithContext(ctx).
		Model(&models.MaintenanceAssignment{}).
		Where("id = ?", assignment.ID).
		Updates(map[string]interface{}{
			"equipment_id":   assignment.EquipmentID,
			"operator_id":    assignment.OperatorID,
			"scheduled_date": assignment.ScheduledDate,
			"observations":   assignment.Observations,
			"updated_by":     assignment.UpdatedBy,
			"updated_at":     assignment.UpdatedAt,
		})
	if result.Error != nil {
		return translateWriteError("update maintenance assignment", assignment, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrMaintenanceNotFound
	}
	return nil
}

// Delete removes an assignment
func (r *MaintenanceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.MaintenanceAssignment{}, "id = ?", id)
	if result.Error != nil {
		return apperrors.NewStorageError("delete maintenance assignment", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrMaintenanceNotFound
	}
	return nil
}

// ListAll retrieves every assignment ordered by date
func (r *MaintenanceRepository) ListAll(ctx context.Context) ([]models.MaintenanceAssignment, error) {
	var assignments []models.MaintenanceAssignment
	err := r.withDetails(ctx).
		Order("scheduled_date ASC, created_at ASC").
		Find(&assignments).Error
	if err != nil {
		return nil, apperrors.NewStorageError("list maintenance assignments", err)
	}
	return assignments, nil
}

// ListByDateRange retrieves assignments scheduled between from and to, both inclusive
func (r *MaintenanceRepository) ListByDateRange(ctx context.Context, from, to calendar.Date) ([]models.MaintenanceAssignment, error) {
	var assignments []models.MaintenanceAssignment
	err := r.withDetails(ctx).
		Where("scheduled_date BETWEEN ? AND ?", from, to).
		Order("scheduled_date ASC, created_at ASC").
		Find(&assignments).Error
	if err != nil {
		return nil, apperrors.NewStorageError("list maintenance assignments by date", err)
	}
	return assignments, nil
}

func (r *MaintenanceRepository) withDetails(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Equipment").Preload("Operator")
}

// translateWriteError maps driver errors for inserts and updates onto the domain
// taxonomy. Nothing above this layer sees SQLSTATE codes.
func translateWriteError(op string, assignment *models.MaintenanceAssignment, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			if pgErr.ConstraintName == "" || pgErr.ConstraintName == models.MaintenanceIndexName {
				return apperrors.NewConflictError(assignment.OperatorID.String(), assignment.ScheduledDate.String())
			}
		case pgForeignKeyViolation:
			ref := strings.ToLower(pgErr.ConstraintName + " " + pgErr.Detail)
			switch {
			case strings.Contains(ref, "operator"):
				return apperrors.ErrOperatorNotFound
			case strings.Contains(ref, "equipment"):
				return apperrors.ErrEquipmentNotFound
			}
		}
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperrors.NewConflictError(assignment.OperatorID.String(), assignment.ScheduledDate.String())
	}
	return apperrors.NewStorageError(op, err)
}
