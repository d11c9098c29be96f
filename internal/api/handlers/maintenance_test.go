package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"maintenance-tracker-backend/internal/api/handlers"
	"maintenance-tracker-backend/internal/calendar"
	apperrors "maintenance-tracker-backend/internal/errors"
	"maintenance-tracker-backend/internal/mocks"
	"maintenance-tracker-backend/internal/service"
	"maintenance-tracker-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// MaintenanceHandlerTestSuite defines the test suite for MaintenanceHandler
type MaintenanceHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockMaintenanceServiceInterface
	handler     *handlers.MaintenanceHandler
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *MaintenanceHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockMaintenanceServiceInterface(suite.ctrl)
	suite.handler = handlers.NewMaintenanceHandler(suite.mockService)
	suite.httpSuite = testutils.SetupAuthenticatedHTTPTest("user-1")

	maintenance := suite.httpSuite.Router.Group("/api/v1/maintenance")
	{
		maintenance.POST("/validate", suite.handler.ValidateMaintenance)
		maintenance.POST("", suite.handler.CreateMaintenance)
		maintenance.GET("", suite.handler.ListMaintenance)
		maintenance.GET("/calendar", suite.handler.GetCalendar)
		maintenance.GET("/export", suite.handler.ExportMaintenance)
		maintenance.GET("/:id", suite.handler.GetMaintenance)
		maintenance.PUT("/:id", suite.handler.UpdateMaintenance)
		maintenance.DELETE("/:id", suite.handler.DeleteMaintenance)
	}
}

// TearDownTest cleans up after each test
func (suite *MaintenanceHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func sampleResponse() *service.MaintenanceResponse {
	return &service.MaintenanceResponse{
		ID:            uuid.New(),
		EquipmentID:   uuid.New(),
		EquipmentName: "Hydraulic Press",
		OperatorID:    uuid.New(),
		OperatorName:  "Ana Torres",
		ScheduledDate: calendar.MustDate(2024, time.January, 15),
		CreatedBy:     "user-1",
	}
}

func validBody() map[string]interface{} {
	return map[string]interface{}{
		"equipment_id":   uuid.New().String(),
		"operator_id":    uuid.New().String(),
		"scheduled_date": "2024-01-15",
	}
}

func (suite *MaintenanceHandlerTestSuite) TestCreateMaintenance() {
	suite.T().Run("Success", func(t *testing.T) {
		resp := sampleResponse()
		suite.mockService.EXPECT().
			Create(gomock.Any(), gomock.Any(), "user-1").
			DoAndReturn(func(_ context.Context, req *service.MaintenanceRequest, _ string) (*service.MaintenanceResponse, *apperrors.NotificationDeliveryWarning, error) {
				assert.Equal(t, "2024-01-15", req.ScheduledDate)
				return resp, nil, nil
			})

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/maintenance", validBody())

		assert.Equal(t, http.StatusCreated, recorder.Code)
		var body map[string]interface{}
		testutils.ParseJSONResponse(t, recorder, &body)
		assert.Equal(t, resp.ID.String(), body["id"])
		assert.Equal(t, "2024-01-15", body["scheduled_date"])
		assert.NotContains(t, body, "warnings")
	})

	suite.T().Run("Notification warning", func(t *testing.T) {
		suite.mockService.EXPECT().
			Create(gomock.Any(), gomock.Any(), "user-1").
			Return(sampleResponse(), &apperrors.NotificationDeliveryWarning{Kind: "assigned", Err: errors.New("down")}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/maintenance", validBody())

		assert.Equal(t, http.StatusCreated, recorder.Code)
		var body handlers.MaintenanceWriteResponse
		testutils.ParseJSONResponse(t, recorder, &body)
		assert.Len(t, body.Warnings, 1)
		assert.Contains(t, body.Warnings[0], "assigned")
	})

	suite.T().Run("Field errors", func(t *testing.T) {
		verrs := &apperrors.ValidationErrors{}
		verrs.Add(&apperrors.MissingFieldError{Field: "equipment_id"})
		verrs.Add(&apperrors.PastDateError{Field: "scheduled_date", Date: "2024-01-09", Today: "2024-01-10"})
		suite.mockService.EXPECT().Create(gomock.Any(), gomock.Any(), "user-1").Return(nil, nil, verrs)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/maintenance", map[string]interface{}{"scheduled_date": "2024-01-09"})

		testutils.AssertFieldErrors(t, recorder, "equipment_id", "scheduled_date")
		var body handlers.ErrorResponse
		testutils.ParseJSONResponse(t, recorder, &body)
		assert.Equal(t, apperrors.CodePastDate, body.Details[1].Code)
	})

	suite.T().Run("Conflict", func(t *testing.T) {
		operatorID := uuid.New().String()
		suite.mockService.EXPECT().
			Create(gomock.Any(), gomock.Any(), "user-1").
			Return(nil, nil, apperrors.NewConflictError(operatorID, "2024-01-15"))

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/maintenance", validBody())

		assert.Equal(t, http.StatusConflict, recorder.Code)
		var body handlers.ErrorResponse
		testutils.ParseJSONResponse(t, recorder, &body)
		assert.Equal(t, operatorID, body.OperatorID)
		assert.Equal(t, "2024-01-15", body.ScheduledDate)
	})

	suite.T().Run("Unknown operator", func(t *testing.T) {
		suite.mockService.EXPECT().Create(gomock.Any(), gomock.Any(), "user-1").Return(nil, nil, apperrors.ErrOperatorNotFound)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/maintenance", validBody())

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "operator not found")
	})

	suite.T().Run("Storage failure hides the cause", func(t *testing.T) {
		suite.mockService.EXPECT().
			Create(gomock.Any(), gomock.Any(), "user-1").
			Return(nil, nil, apperrors.NewStorageError("create", errors.New("pq: password authentication failed")))

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/maintenance", validBody())

		testutils.AssertErrorResponse(t, recorder, http.StatusInternalServerError, "internal server error")
		assert.NotContains(t, recorder.Body.String(), "password")
	})

	suite.T().Run("Invalid JSON", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodPost, "/api/v1/maintenance", bytes.NewBufferString("invalid json"))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()
		suite.httpSuite.Router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func (suite *MaintenanceHandlerTestSuite) TestCreateMaintenance_NoActor() {
	httpSuite := testutils.SetupHTTPTest()
	httpSuite.Router.POST("/maintenance", suite.handler.CreateMaintenance)
	suite.mockService.EXPECT().Create(gomock.Any(), gomock.Any(), "").Return(nil, nil, apperrors.ErrAuthRequired)

	recorder := httpSuite.MakeRequest(http.MethodPost, "/maintenance", validBody())

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusUnauthorized, "authentication required")
}

func (suite *MaintenanceHandlerTestSuite) TestValidateMaintenance() {
	suite.T().Run("Valid", func(t *testing.T) {
		suite.mockService.EXPECT().Validate(gomock.Any()).Return(&service.ValidatedMaintenance{
			EquipmentID:   uuid.New(),
			OperatorID:    uuid.New(),
			ScheduledDate: calendar.MustDate(2024, time.January, 15),
		}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/maintenance/validate", validBody())

		assert.Equal(t, http.StatusOK, recorder.Code)
		var body map[string]interface{}
		testutils.ParseJSONResponse(t, recorder, &body)
		assert.Equal(t, "2024-01-15", body["scheduled_date"])
	})

	suite.T().Run("Invalid", func(t *testing.T) {
		verrs := &apperrors.ValidationErrors{}
		verrs.Add(&apperrors.ObservationsTooLongError{Field: "observations", Length: 301, Max: 300})
		suite.mockService.EXPECT().Validate(gomock.Any()).Return(nil, verrs)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/maintenance/validate", validBody())

		testutils.AssertFieldErrors(t, recorder, "observations")
	})
}

func (suite *MaintenanceHandlerTestSuite) TestGetMaintenance() {
	suite.T().Run("Success", func(t *testing.T) {
		resp := sampleResponse()
		suite.mockService.EXPECT().GetByID(gomock.Any(), resp.ID).Return(resp, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/maintenance/"+resp.ID.String(), nil)

		var body service.MaintenanceResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &body)
		assert.Equal(t, resp.ID, body.ID)
		assert.Equal(t, resp.ScheduledDate, body.ScheduledDate)
	})

	suite.T().Run("Not found", func(t *testing.T) {
		id := uuid.New()
		suite.mockService.EXPECT().GetByID(gomock.Any(), id).Return(nil, apperrors.ErrMaintenanceNotFound)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/maintenance/"+id.String(), nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "maintenance assignment not found")
	})

	suite.T().Run("Invalid ID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/maintenance/not-a-uuid", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid maintenance ID")
	})
}

func (suite *MaintenanceHandlerTestSuite) TestListMaintenance() {
	suite.T().Run("By date", func(t *testing.T) {
		suite.mockService.EXPECT().ListForDate(gomock.Any(), "2024-01-15").Return([]service.MaintenanceResponse{*sampleResponse()}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/maintenance?date=2024-01-15", nil)

		var body []service.MaintenanceResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &body)
		assert.Len(t, body, 1)
	})

	suite.T().Run("By range", func(t *testing.T) {
		suite.mockService.EXPECT().ListRange(gomock.Any(), "2024-01-01", "2024-01-31").Return([]service.MaintenanceResponse{}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/maintenance?from=2024-01-01&to=2024-01-31", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, "[]", recorder.Body.String())
	})

	suite.T().Run("No filter", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/maintenance?from=2024-01-01", nil)

		testutils.AssertFieldErrors(t, recorder, "date")
	})

	suite.T().Run("Bad date", func(t *testing.T) {
		suite.mockService.EXPECT().ListForDate(gomock.Any(), "yesterday").Return(nil, apperrors.NewValidationError("date", "unrecognized date"))

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/maintenance?date=yesterday", nil)

		testutils.AssertFieldErrors(t, recorder, "date")
	})
}

func (suite *MaintenanceHandlerTestSuite) TestGetCalendar() {
	jan15 := calendar.MustDate(2024, time.January, 15)
	suite.mockService.EXPECT().GetCalendar(gomock.Any(), "2024-01").Return(&service.CalendarResponse{
		Month: "2024-01",
		Total: 1,
		Days:  []service.CalendarDay{{Date: jan15, Assignments: []service.MaintenanceResponse{*sampleResponse()}}},
	}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/maintenance/calendar?month=2024-01", nil)

	var body service.CalendarResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &body)
	suite.Equal(1, body.Total)
	suite.Equal(jan15, body.Days[0].Date)
}

func (suite *MaintenanceHandlerTestSuite) TestExportMaintenance() {
	suite.T().Run("Attachment", func(t *testing.T) {
		suite.mockService.EXPECT().ExportMonth(gomock.Any(), "2024-01").Return(&service.ExportFile{
			Filename:    "maintenance-2024-01.xlsx",
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Content:     []byte("PK"),
		}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/maintenance/export?month=2024-01", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, `attachment; filename="maintenance-2024-01.xlsx"`, recorder.Header().Get("Content-Disposition"))
		assert.Equal(t, "PK", recorder.Body.String())
	})

	suite.T().Run("Bad month", func(t *testing.T) {
		suite.mockService.EXPECT().ExportMonth(gomock.Any(), "").Return(nil, apperrors.NewValidationError("month", "must be YYYY-MM"))

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/maintenance/export", nil)

		testutils.AssertFieldErrors(t, recorder, "month")
	})
}

func (suite *MaintenanceHandlerTestSuite) TestUpdateMaintenance() {
	suite.T().Run("Success", func(t *testing.T) {
		resp := sampleResponse()
		suite.mockService.EXPECT().Update(gomock.Any(), resp.ID, gomock.Any(), "user-1").Return(resp, nil, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/maintenance/"+resp.ID.String(), validBody())

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("Conflict", func(t *testing.T) {
		id := uuid.New()
		suite.mockService.EXPECT().Update(gomock.Any(), id, gomock.Any(), "user-1").Return(nil, nil, apperrors.NewConflictError("op", "2024-01-16"))

		recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/maintenance/"+id.String(), validBody())

		assert.Equal(t, http.StatusConflict, recorder.Code)
	})

	suite.T().Run("Invalid ID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/maintenance/123", validBody())

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func (suite *MaintenanceHandlerTestSuite) TestDeleteMaintenance() {
	suite.T().Run("No content", func(t *testing.T) {
		id := uuid.New()
		suite.mockService.EXPECT().Delete(gomock.Any(), id, "user-1").Return(nil, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/maintenance/"+id.String(), nil)

		assert.Equal(t, http.StatusNoContent, recorder.Code)
		assert.Empty(t, recorder.Body.String())
	})

	suite.T().Run("Deleted with warning", func(t *testing.T) {
		id := uuid.New()
		suite.mockService.EXPECT().
			Delete(gomock.Any(), id, "user-1").
			Return(&apperrors.NotificationDeliveryWarning{Kind: "cancelled", Err: errors.New("down")}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/maintenance/"+id.String(), nil)

		var body handlers.DeleteResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &body)
		assert.Len(t, body.Warnings, 1)
	})

	suite.T().Run("Missing", func(t *testing.T) {
		id := uuid.New()
		suite.mockService.EXPECT().Delete(gomock.Any(), id, "user-1").Return(nil, apperrors.ErrMaintenanceNotFound)

		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/maintenance/"+id.String(), nil)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

func TestMaintenanceHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(MaintenanceHandlerTestSuite))
}

func TestErrorResponseShape(t *testing.T) {
	raw, err := json.Marshal(handlers.ErrorResponse{Error: "not found"})
	assert.NoError(t, err)
	assert.JSONEq(t, `{"error":"not found"}`, string(raw))
}
