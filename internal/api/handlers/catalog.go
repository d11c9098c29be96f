package handlers

import (
	"net/http"

	"maintenance-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the equipment and operator pickers
type CatalogHandler struct {
	catalogService service.CatalogServiceInterface
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService service.CatalogServiceInterface) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// ListEquipment handles GET /equipment
// @Summary List equipment
// @Tags catalog
// @Produce json
// @Success 200 {array} service.EquipmentResponse
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /equipment [get]
func (h *CatalogHandler) ListEquipment(c *gin.Context) {
	items, err := h.catalogService.ListEquipment(c)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// ListOperators handles GET /operators
// @Summary List operators
// @Tags catalog
// @Produce json
// @Success 200 {array} service.OperatorResponse
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /operators [get]
func (h *CatalogHandler) ListOperators(c *gin.Context) {
	items, err := h.catalogService.ListOperators(c)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}
