package repository

import (
	"context"
	"errors"

	"maintenance-tracker-backend/internal/database/models"
	apperrors "maintenance-tracker-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EquipmentRepository handles read operations for equipment
type EquipmentRepository struct {
	db *gorm.DB
}

// NewEquipmentRepository creates a new equipment repository
func NewEquipmentRepository(db *gorm.DB) *EquipmentRepository {
	return &EquipmentRepository{db: db}
}

// GetByID retrieves equipment by ID with its brand
func (r *EquipmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Equipment, error) {
	var equipment models.Equipment
	err := r.db.WithContext(ctx).Preload("Brand").First(&equipment, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEquipmentNotFound
		}
		return nil, apperrors.NewStorageError("get equipment", err)
	}
	return &equipment, nil
}

// List retrieves all equipment ordered by name
func (r *EquipmentRepository) List(ctx context.Context) ([]models.Equipment, error) {
	var equipment []models.Equipment
	err := r.db.WithContext(ctx).Preload("Brand").Order("name ASC").Find(&equipment).Error
	if err != nil {
		return nil, apperrors.NewStorageError("list equipment", err)
	}
	return equipment, nil
}
