package handlers

import (
	"fmt"
	"net/http"
	"strings"

	apperrors "maintenance-tracker-backend/internal/errors"
	"maintenance-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MaintenanceHandler handles HTTP requests for maintenance scheduling
type MaintenanceHandler struct {
	maintenanceService service.MaintenanceServiceInterface
}

// NewMaintenanceHandler creates a new maintenance handler
func NewMaintenanceHandler(maintenanceService service.MaintenanceServiceInterface) *MaintenanceHandler {
	return &MaintenanceHandler{
		maintenanceService: maintenanceService,
	}
}

// MaintenanceWriteResponse is a stored assignment plus any delivery warnings
type MaintenanceWriteResponse struct {
	*service.MaintenanceResponse
	Warnings []string `json:"warnings,omitempty"`
}

// DeleteResponse is returned by a delete whose notification could not be sent
type DeleteResponse struct {
	Warnings []string `json:"warnings"`
}

// ValidateMaintenance handles POST /maintenance/validate
// @Summary Validate a maintenance draft
// @Description Run every check on a draft without storing it and return all field errors together
// @Tags maintenance
// @Accept json
// @Produce json
// @Param maintenance body service.MaintenanceRequest true "Maintenance draft"
// @Success 200 {object} service.ValidatedMaintenance "Draft is valid"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 422 {object} ErrorResponse "Field errors"
// @Security BearerAuth
// @Router /maintenance/validate [post]
func (h *MaintenanceHandler) ValidateMaintenance(c *gin.Context) {
	var req service.MaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	validated, err := h.maintenanceService.Validate(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, validated)
}

// CreateMaintenance handles POST /maintenance
// @Summary Schedule maintenance
// @Description Assign an operator to maintain a piece of equipment on a date. One operator can hold one assignment per day.
// @Tags maintenance
// @Accept json
// @Produce json
// @Param maintenance body service.MaintenanceRequest true "Maintenance data"
// @Success 201 {object} MaintenanceWriteResponse "Assignment created"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 404 {object} ErrorResponse "Equipment or operator not found"
// @Failure 409 {object} ErrorResponse "Operator already assigned on that date"
// @Failure 422 {object} ErrorResponse "Field errors"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /maintenance [post]
func (h *MaintenanceHandler) CreateMaintenance(c *gin.Context) {
	var req service.MaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	resp, warning, err := h.maintenanceService.Create(c, &req, c.GetString("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, MaintenanceWriteResponse{MaintenanceResponse: resp, Warnings: warningMessages(warning)})
}

// GetMaintenance handles GET /maintenance/:id
// @Summary Get maintenance assignment
// @Tags maintenance
// @Produce json
// @Param id path string true "Assignment ID (UUID)"
// @Success 200 {object} service.MaintenanceResponse
// @Failure 400 {object} ErrorResponse "Invalid assignment ID"
// @Failure 404 {object} ErrorResponse "Assignment not found"
// @Security BearerAuth
// @Router /maintenance/{id} [get]
func (h *MaintenanceHandler) GetMaintenance(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	resp, err := h.maintenanceService.GetByID(c, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListMaintenance handles GET /maintenance
// @Summary List maintenance assignments
// @Description List the assignments of one day (date) or of an inclusive range (from, to). Dates accept YYYY-MM-DD or RFC 3339.
// @Tags maintenance
// @Produce json
// @Param date query string false "Day to list"
// @Param from query string false "First day of the range"
// @Param to query string false "Last day of the range"
// @Success 200 {array} service.MaintenanceResponse
// @Failure 422 {object} ErrorResponse "Invalid or missing dates"
// @Security BearerAuth
// @Router /maintenance [get]
func (h *MaintenanceHandler) ListMaintenance(c *gin.Context) {
	date := strings.TrimSpace(c.Query("date"))
	from := strings.TrimSpace(c.Query("from"))
	to := strings.TrimSpace(c.Query("to"))

	var (
		items []service.MaintenanceResponse
		err   error
	)
	switch {
	case date != "":
		items, err = h.maintenanceService.ListForDate(c, date)
	case from != "" && to != "":
		items, err = h.maintenanceService.ListRange(c, from, to)
	default:
		err = apperrors.NewValidationError("date", "provide date, or both from and to")
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

// GetCalendar handles GET /maintenance/calendar
// @Summary Monthly maintenance calendar
// @Description Assignments of one month grouped by day; days without assignments are omitted
// @Tags maintenance
// @Produce json
// @Param month query string true "Month (YYYY-MM)"
// @Success 200 {object} service.CalendarResponse
// @Failure 422 {object} ErrorResponse "Invalid month"
// @Security BearerAuth
// @Router /maintenance/calendar [get]
func (h *MaintenanceHandler) GetCalendar(c *gin.Context) {
	resp, err := h.maintenanceService.GetCalendar(c, c.Query("month"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ExportMaintenance handles GET /maintenance/export
// @Summary Export a month as Excel
// @Tags maintenance
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param month query string true "Month (YYYY-MM)"
// @Success 200 {file} file "Workbook"
// @Failure 422 {object} ErrorResponse "Invalid month"
// @Security BearerAuth
// @Router /maintenance/export [get]
func (h *MaintenanceHandler) ExportMaintenance(c *gin.Context) {
	file, err := h.maintenanceService.ExportMonth(c, c.Query("month"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, file.Filename))
	c.Data(http.StatusOK, file.ContentType, file.Content)
}

// UpdateMaintenance handles PUT /maintenance/:id
// @Summary Edit maintenance assignment
// @Description Replace an assignment. Keeping the same operator and date never conflicts with itself.
// @Tags maintenance
// @Accept json
// @Produce json
// @Param id path string true "Assignment ID (UUID)"
// @Param maintenance body service.MaintenanceRequest true "Maintenance data"
// @Success 200 {object} MaintenanceWriteResponse "Assignment updated"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Assignment, equipment or operator not found"
// @Failure 409 {object} ErrorResponse "Operator already assigned on that date"
// @Failure 422 {object} ErrorResponse "Field errors"
// @Security BearerAuth
// @Router /maintenance/{id} [put]
func (h *MaintenanceHandler) UpdateMaintenance(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req service.MaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	resp, warning, err := h.maintenanceService.Update(c, id, &req, c.GetString("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, MaintenanceWriteResponse{MaintenanceResponse: resp, Warnings: warningMessages(warning)})
}

// DeleteMaintenance handles DELETE /maintenance/:id
// @Summary Delete maintenance assignment
// @Tags maintenance
// @Produce json
// @Param id path string true "Assignment ID (UUID)"
// @Success 204 "Assignment deleted"
// @Success 200 {object} DeleteResponse "Assignment deleted, notification not sent"
// @Failure 400 {object} ErrorResponse "Invalid assignment ID"
// @Failure 404 {object} ErrorResponse "Assignment not found"
// @Security BearerAuth
// @Router /maintenance/{id} [delete]
func (h *MaintenanceHandler) DeleteMaintenance(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	warning, err := h.maintenanceService.Delete(c, id, c.GetString("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	if warning != nil {
		c.JSON(http.StatusOK, DeleteResponse{Warnings: warningMessages(warning)})
		return
	}
	c.Status(http.StatusNoContent)
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid maintenance ID"})
		return uuid.Nil, false
	}
	return id, true
}
