package handlers

import (
	"errors"
	"net/http"

	apperrors "maintenance-tracker-backend/internal/errors"
	"maintenance-tracker-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// codeInvalidParameter marks query and path parameter failures
const codeInvalidParameter = "invalid_parameter"

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error         string             `json:"error" example:"validation failed"`
	Details       []FieldErrorDetail `json:"details,omitempty"`
	OperatorID    string             `json:"operator_id,omitempty"`
	ScheduledDate string             `json:"scheduled_date,omitempty"`
}

// FieldErrorDetail describes one rejected field
type FieldErrorDetail struct {
	Field   string `json:"field" example:"scheduled_date"`
	Code    string `json:"code" example:"past_date"`
	Message string `json:"message" example:"scheduled_date 2024-01-09 is before today (2024-01-10)"`
}

// respondError maps the error taxonomy onto status codes and the error body
func respondError(c *gin.Context, err error) {
	var set *apperrors.ValidationErrors
	var single *apperrors.ValidationError
	var conflict *apperrors.ConflictError

	switch {
	case errors.As(err, &set):
		details := make([]FieldErrorDetail, 0, len(set.Errors))
		for _, fe := range set.Errors {
			details = append(details, FieldErrorDetail{Field: fe.FieldName(), Code: fe.Code(), Message: fe.Error()})
		}
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: details})
	case errors.As(err, &single):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: []FieldErrorDetail{{Field: single.Field, Code: codeInvalidParameter, Message: single.Message}},
		})
	case errors.As(err, &conflict):
		c.JSON(http.StatusConflict, ErrorResponse{
			Error:         conflict.Error(),
			OperatorID:    conflict.OperatorID,
			ScheduledDate: conflict.ScheduledDate,
		})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	default:
		logger.WithContext(c).WithError(err).Error("request failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}

// warningMessages renders a delivery warning for the response body; nil when there is none
func warningMessages(w *apperrors.NotificationDeliveryWarning) []string {
	if w == nil {
		return nil
	}
	return []string{w.Message()}
}
