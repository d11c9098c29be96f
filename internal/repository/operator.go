package repository

import (
	"context"
	"errors"

	"maintenance-tracker-backend/internal/database/models"
	apperrors "maintenance-tracker-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OperatorRepository handles read operations for operators
type OperatorRepository struct {
	db *gorm.DB
}

// NewOperatorRepository creates a new operator repository
func NewOperatorRepository(db *gorm.DB) *OperatorRepository {
	return &OperatorRepository{db: db}
}

// GetByID retrieves an operator by ID
func (r *OperatorRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Operator, error) {
	var operator models.Operator
	err := r.db.WithContext(ctx).First(&operator, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOperatorNotFound
		}
		return nil, apperrors.NewStorageError("get operator", err)
	}
	return &operator, nil
}

// List retrieves all operators ordered by last then first name
func (r *OperatorRepository) List(ctx context.Context) ([]models.Operator, error) {
	var operators []models.Operator
	err := r.db.WithContext(ctx).Order("last_name ASC, first_name ASC").Find(&operators).Error
	if err != nil {
		return nil, apperrors.NewStorageError("list operators", err)
	}
	return operators, nil
}
