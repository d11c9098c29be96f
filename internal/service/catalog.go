package service

import (
	"context"

	"maintenance-tracker-backend/internal/repository"

	"github.com/google/uuid"
)

// CatalogService serves the equipment and operator pickers of the scheduling form
type CatalogService struct {
	equipmentRepo repository.EquipmentRepositoryInterface
	operatorRepo  repository.OperatorRepositoryInterface
}

// NewCatalogService creates a new catalog service
func NewCatalogService(equipmentRepo repository.EquipmentRepositoryInterface, operatorRepo repository.OperatorRepositoryInterface) *CatalogService {
	return &CatalogService{
		equipmentRepo: equipmentRepo,
		operatorRepo:  operatorRepo,
	}
}

// EquipmentResponse represents one piece of equipment
type EquipmentResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Code        string    `json:"code"`
	Description string    `json:"description,omitempty"`
	PhotoURL    *string   `json:"photo_url,omitempty"`
	BrandID     uuid.UUID `json:"brand_id"`
	BrandName   string    `json:"brand_name,omitempty"`
}

// OperatorResponse represents one operator
type OperatorResponse struct {
	ID        uuid.UUID `json:"id"`
	Cedula    string    `json:"cedula"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	PhotoURL  *string   `json:"photo_url,omitempty"`
}

// ListEquipment returns all equipment
func (s *CatalogService) ListEquipment(ctx context.Context) ([]EquipmentResponse, error) {
	items, err := s.equipmentRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]EquipmentResponse, 0, len(items))
	for _, e := range items {
		resp := EquipmentResponse{
			ID:          e.ID,
			Name:        e.Name,
			Code:        e.Code,
			Description: e.Description,
			PhotoURL:    e.PhotoURL,
			BrandID:     e.BrandID,
		}
		if e.Brand != nil {
			resp.BrandName = e.Brand.Name
		}
		out = append(out, resp)
	}
	return out, nil
}

// ListOperators returns all operators
func (s *CatalogService) ListOperators(ctx context.Context) ([]OperatorResponse, error) {
	items, err := s.operatorRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]OperatorResponse, 0, len(items))
	for _, o := range items {
		out = append(out, OperatorResponse{
			ID:        o.ID,
			Cedula:    o.Cedula,
			FirstName: o.FirstName,
			LastName:  o.LastName,
			FullName:  o.FullName(),
			Email:     o.Email,
			Phone:     o.Phone,
			PhotoURL:  o.PhotoURL,
		})
	}
	return out, nil
}
