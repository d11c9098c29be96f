package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"maintenance-tracker-backend/internal/calendar"
	"maintenance-tracker-backend/internal/database/models"
	apperrors "maintenance-tracker-backend/internal/errors"
	"maintenance-tracker-backend/internal/mocks"
	"maintenance-tracker-backend/internal/notify"
	"maintenance-tracker-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// MaintenanceServiceTestSuite defines the test suite for MaintenanceService
type MaintenanceServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockRepo     *mocks.MockMaintenanceRepositoryInterface
	mockNotifier *mocks.MockNotifier
	clock        *calendar.FixedClock
	service      *service.MaintenanceService

	equipment *models.Equipment
	operator  *models.Operator
}

// SetupTest sets up the test suite
func (suite *MaintenanceServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockMaintenanceRepositoryInterface(suite.ctrl)
	suite.mockNotifier = mocks.NewMockNotifier(suite.ctrl)
	suite.clock = calendar.NewFixedClock(time.Date(2024, time.January, 10, 9, 0, 0, 0, time.UTC))
	normalizer := calendar.NewNormalizer(suite.clock, time.UTC)
	suite.service = service.NewMaintenanceService(suite.mockRepo, suite.mockNotifier, normalizer, validator.New())

	suite.equipment = &models.Equipment{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Hydraulic Press", Code: "EQ-001"}
	suite.operator = &models.Operator{BaseModel: models.BaseModel{ID: uuid.New()}, FirstName: "Ana", LastName: "Torres", Email: "ana@example.com"}
}

// TearDownTest cleans up after each test
func (suite *MaintenanceServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *MaintenanceServiceTestSuite) request(date string) *service.MaintenanceRequest {
	return &service.MaintenanceRequest{
		EquipmentID:   suite.equipment.ID.String(),
		OperatorID:    suite.operator.ID.String(),
		ScheduledDate: date,
	}
}

func (suite *MaintenanceServiceTestSuite) stored(id uuid.UUID, date calendar.Date, observations *string) *models.MaintenanceAssignment {
	return &models.MaintenanceAssignment{
		BaseModel:     models.BaseModel{ID: id},
		AuditFields:   models.AuditFields{CreatedBy: "user-1", UpdatedBy: "user-1"},
		EquipmentID:   suite.equipment.ID,
		OperatorID:    suite.operator.ID,
		ScheduledDate: date,
		Observations:  observations,
		Equipment:     suite.equipment,
		Operator:      suite.operator,
	}
}

func strPtr(s string) *string { return &s }

func (suite *MaintenanceServiceTestSuite) TestValidate() {
	testCases := []struct {
		name           string
		request        *service.MaintenanceRequest
		expectedFields []string
		expectedCodes  []string
	}{
		{
			name:           "Empty request reports every missing field",
			request:        &service.MaintenanceRequest{},
			expectedFields: []string{"equipment_id", "operator_id", "scheduled_date"},
			expectedCodes:  []string{apperrors.CodeMissingField, apperrors.CodeMissingField, apperrors.CodeMissingField},
		},
		{
			name: "Whitespace counts as missing",
			request: &service.MaintenanceRequest{
				EquipmentID:   "   ",
				OperatorID:    suite.operator.ID.String(),
				ScheduledDate: " ",
			},
			expectedFields: []string{"equipment_id", "scheduled_date"},
			expectedCodes:  []string{apperrors.CodeMissingField, apperrors.CodeMissingField},
		},
		{
			name: "Malformed references",
			request: &service.MaintenanceRequest{
				EquipmentID:   "not-a-uuid",
				OperatorID:    "42",
				ScheduledDate: "2024-01-15",
			},
			expectedFields: []string{"equipment_id", "operator_id"},
			expectedCodes:  []string{apperrors.CodeInvalidReference, apperrors.CodeInvalidReference},
		},
		{
			name:           "Impossible date",
			request:        suite.request("2024-02-30"),
			expectedFields: []string{"scheduled_date"},
			expectedCodes:  []string{apperrors.CodeInvalidDate},
		},
		{
			name:           "Unparsable date",
			request:        suite.request("next tuesday"),
			expectedFields: []string{"scheduled_date"},
			expectedCodes:  []string{apperrors.CodeInvalidDate},
		},
		{
			name:           "Yesterday is in the past",
			request:        suite.request("2024-01-09"),
			expectedFields: []string{"scheduled_date"},
			expectedCodes:  []string{apperrors.CodePastDate},
		},
		{
			name: "Observations over the limit with every other failure",
			request: &service.MaintenanceRequest{
				OperatorID:    "bad",
				ScheduledDate: "2023-12-31",
				Observations:  strPtr(strings.Repeat("x", 301)),
			},
			expectedFields: []string{"equipment_id", "operator_id", "scheduled_date", "observations"},
			expectedCodes: []string{
				apperrors.CodeMissingField,
				apperrors.CodeInvalidReference,
				apperrors.CodePastDate,
				apperrors.CodeObservationsTooLong,
			},
		},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			result, err := suite.service.Validate(tc.request)
			assert.Nil(t, result)

			var verrs *apperrors.ValidationErrors
			if assert.True(t, errors.As(err, &verrs)) {
				assert.Equal(t, tc.expectedFields, verrs.Fields())
				codes := make([]string, 0, len(verrs.Errors))
				for _, fe := range verrs.Errors {
					codes = append(codes, fe.Code())
				}
				assert.Equal(t, tc.expectedCodes, codes)
			}
		})
	}
}

func (suite *MaintenanceServiceTestSuite) TestValidate_Accepts() {
	suite.T().Run("today is allowed", func(t *testing.T) {
		result, err := suite.service.Validate(suite.request("2024-01-10"))
		assert.NoError(t, err)
		assert.Equal(t, calendar.MustDate(2024, time.January, 10), result.ScheduledDate)
	})

	suite.T().Run("date-time input keeps its own day", func(t *testing.T) {
		result, err := suite.service.Validate(suite.request("2024-01-15T23:30:00-05:00"))
		assert.NoError(t, err)
		assert.Equal(t, calendar.MustDate(2024, time.January, 15), result.ScheduledDate)
	})

	suite.T().Run("upper case ids are accepted", func(t *testing.T) {
		req := suite.request("2024-01-15")
		req.EquipmentID = strings.ToUpper(req.EquipmentID)
		result, err := suite.service.Validate(req)
		assert.NoError(t, err)
		assert.Equal(t, suite.equipment.ID, result.EquipmentID)
	})

	suite.T().Run("blank observations become nil", func(t *testing.T) {
		req := suite.request("2024-01-15")
		req.Observations = strPtr("   ")
		result, err := suite.service.Validate(req)
		assert.NoError(t, err)
		assert.Nil(t, result.Observations)
	})

	suite.T().Run("observations limit counts characters", func(t *testing.T) {
		req := suite.request("2024-01-15")
		req.Observations = strPtr(strings.Repeat("ñ", 300))
		result, err := suite.service.Validate(req)
		assert.NoError(t, err)
		assert.Equal(t, 300, len([]rune(*result.Observations)))

		req.Observations = strPtr(strings.Repeat("ñ", 301))
		_, err = suite.service.Validate(req)
		var tooLong *apperrors.ObservationsTooLongError
		if assert.True(t, errors.As(err, &tooLong)) {
			assert.Equal(t, 301, tooLong.Length)
		}
	})

	suite.T().Run("nil request is all missing", func(t *testing.T) {
		_, err := suite.service.Validate(nil)
		var verrs *apperrors.ValidationErrors
		assert.True(t, errors.As(err, &verrs))
		assert.Len(t, verrs.Errors, 3)
	})
}

func (suite *MaintenanceServiceTestSuite) TestCreate_Success() {
	id := uuid.New()
	date := calendar.MustDate(2024, time.January, 15)

	suite.mockRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a *models.MaintenanceAssignment) error {
			suite.Equal("user-1", a.CreatedBy)
			suite.Equal(date, a.ScheduledDate)
			suite.Equal("Replace filters", *a.Observations)
			a.ID = id
			return nil
		})
	suite.mockRepo.EXPECT().GetByID(gomock.Any(), id).Return(suite.stored(id, date, strPtr("Replace filters")), nil)
	suite.mockNotifier.EXPECT().
		NotifyAssigned(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msg notify.Message) error {
			suite.Equal([]string{"ana@example.com"}, msg.To)
			suite.Equal("Ana Torres", msg.OperatorName)
			suite.Equal("Hydraulic Press", msg.EquipmentName)
			suite.Equal(date, msg.ScheduledDate)
			return nil
		})

	req := suite.request("2024-01-15")
	req.Observations = strPtr("  Replace filters ")
	resp, warning, err := suite.service.Create(context.Background(), req, "user-1")

	suite.NoError(err)
	suite.Nil(warning)
	suite.Equal(id, resp.ID)
	suite.Equal("EQ-001", resp.EquipmentCode)
	suite.Equal("Ana Torres", resp.OperatorName)
	suite.Equal(date, resp.ScheduledDate)
}

func (suite *MaintenanceServiceTestSuite) TestCreate_RequiresActor() {
	_, _, err := suite.service.Create(context.Background(), suite.request("2024-01-15"), "  ")
	suite.ErrorIs(err, apperrors.ErrAuthRequired)

	// the auth check runs before validation
	_, _, err = suite.service.Create(context.Background(), &service.MaintenanceRequest{}, "")
	suite.True(apperrors.IsAuthentication(err))
}

func (suite *MaintenanceServiceTestSuite) TestCreate_ValidationStopsBeforeStorage() {
	_, _, err := suite.service.Create(context.Background(), suite.request("2024-01-09"), "user-1")
	suite.True(apperrors.IsValidation(err))
}

func (suite *MaintenanceServiceTestSuite) TestCreate_Conflict() {
	conflict := apperrors.NewConflictError(suite.operator.ID.String(), "2024-01-15")
	suite.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(conflict)

	resp, warning, err := suite.service.Create(context.Background(), suite.request("2024-01-15"), "user-1")

	suite.Nil(resp)
	suite.Nil(warning)
	suite.True(apperrors.IsConflict(err))
	var ce *apperrors.ConflictError
	suite.Require().True(errors.As(err, &ce))
	suite.Equal(suite.operator.ID.String(), ce.OperatorID)
	suite.Equal("2024-01-15", ce.ScheduledDate)
}

func (suite *MaintenanceServiceTestSuite) TestCreate_NotificationFailureIsAWarning() {
	id := uuid.New()
	date := calendar.MustDate(2024, time.January, 15)

	suite.mockRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a *models.MaintenanceAssignment) error {
			a.ID = id
			return nil
		})
	suite.mockRepo.EXPECT().GetByID(gomock.Any(), id).Return(suite.stored(id, date, nil), nil)
	suite.mockNotifier.EXPECT().
		NotifyAssigned(gomock.Any(), gomock.Any()).
		Return(&apperrors.DeliveryError{Channel: "email", StatusCode: 503, Err: errors.New("unavailable")}).
		Times(1)

	resp, warning, err := suite.service.Create(context.Background(), suite.request("2024-01-15"), "user-1")

	suite.NoError(err)
	suite.Require().NotNil(resp)
	suite.Equal(id, resp.ID)
	suite.Require().NotNil(warning)
	suite.Equal("assigned", warning.Kind)
	var de *apperrors.DeliveryError
	suite.True(errors.As(warning, &de))
}

func (suite *MaintenanceServiceTestSuite) TestCreate_OperatorWithoutEmailWarns() {
	id := uuid.New()
	date := calendar.MustDate(2024, time.January, 15)
	stored := suite.stored(id, date, nil)
	stored.Operator = &models.Operator{BaseModel: models.BaseModel{ID: suite.operator.ID}, FirstName: "Ana"}

	suite.mockRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a *models.MaintenanceAssignment) error {
			a.ID = id
			return nil
		})
	suite.mockRepo.EXPECT().GetByID(gomock.Any(), id).Return(stored, nil)

	resp, warning, err := suite.service.Create(context.Background(), suite.request("2024-01-15"), "user-1")

	suite.NoError(err)
	suite.NotNil(resp)
	suite.Require().NotNil(warning)
	suite.Contains(warning.Message(), "assigned")
}

func (suite *MaintenanceServiceTestSuite) TestCreate_ReloadFailureKeepsWrite() {
	id := uuid.New()
	suite.mockRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a *models.MaintenanceAssignment) error {
			a.ID = id
			return nil
		})
	suite.mockRepo.EXPECT().GetByID(gomock.Any(), id).Return(nil, apperrors.NewStorageError("get", errors.New("timeout")))

	resp, warning, err := suite.service.Create(context.Background(), suite.request("2024-01-15"), "user-1")

	suite.NoError(err)
	suite.Equal(id, resp.ID)
	// without the operator record there is nobody to notify
	suite.NotNil(warning)
}

func (suite *MaintenanceServiceTestSuite) TestUpdate_ObservationsOnlySendsNothing() {
	id := uuid.New()
	date := calendar.MustDate(2024, time.January, 15)
	existing := suite.stored(id, date, strPtr("old"))
	after := suite.stored(id, date, strPtr("new"))

	gomock.InOrder(
		suite.mockRepo.EXPECT().GetByID(gomock.Any(), id).Return(existing, nil),
		suite.mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, a *models.MaintenanceAssignment) error {
				suite.Equal("new", *a.Observations)
				suite.Equal("user-2", a.UpdatedBy)
				suite.Nil(a.Operator)
				suite.Nil(a.Equipment)
				return nil
			}),
		suite.mockRepo.EXPECT().GetByID(gomock.Any(), id).Return(after, nil),
	)

	req := suite.request("2024-01-15")
	req.Observations = strPtr("new")
	resp, warning, err := suite.service.Update(context.Background(), id, req, "user-2")

	suite.NoError(err)
	suite.Nil(warning)
	suite.Equal("new", *resp.Observations)
}

func (suite *MaintenanceServiceTestSuite) TestUpdate_DateChangeNotifies() {
	id := uuid.New()
	existing := suite.stored(id, calendar.MustDate(2024, time.January, 15), nil)
	after := suite.stored(id, calendar.MustDate(2024, time.January, 20), nil)

	gomock.InOrder(
		suite.mockRepo.EXPECT().GetByID(gomock.Any(), id).Return(existing, nil),
		suite.mockRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil),
		suite.mockRepo.EXPECT().GetByID(gomock.Any(), id).Return(after, nil),
	)
	suite.mockNotifier.EXPECT().
		NotifyUpdated(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msg notify.Message) error {
			suite.Equal(calendar.MustDate(2024, time.January, 20), msg.ScheduledDate)
			return nil
		})

	resp, warning, err := suite.service.Update(context.Background(), id, suite.request("2024-01-20"), "user-1")

	suite.NoError(err)
	suite.Nil(warning)
	suite.Equal(calendar.MustDate(2024, time.January, 20), resp.ScheduledDate)
}

func (suite *MaintenanceServiceTestSuite) TestUpdate_ConflictWithAnotherAssignment() {
	id := uuid.New()
	existing := suite.stored(id, calendar.MustDate(2024, time.January, 15), nil)

	suite.mockRepo.EXPECT().GetByID(gomock.Any(), id).Return(existing, nil)
	suite.mockRepo.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		Return(apperrors.NewConflictError(suite.operator.ID.String(), "2024-01-16"))

	_, warning, err := suite.service.Update(context.Background(), id, suite.request("2024-01-16"), "user-1")

	suite.Nil(warning)
	suite.True(apperrors.IsConflict(err))
}

func (suite *MaintenanceServiceTestSuite) TestUpdate_NotFound() {
	id := uuid.New()
	suite.mockRepo.EXPECT().GetByID(gomock.Any(), id).Return(nil, apperrors.ErrMaintenanceNotFound)

	_, _, err := suite.service.Update(context.Background(), id, suite.request("2024-01-16"), "user-1")

	suite.ErrorIs(err, apperrors.ErrMaintenanceNotFound)
}

func (suite *MaintenanceServiceTestSuite) TestUpdate_RejectsPastDate() {
	_, _, err := suite.service.Update(context.Background(), uuid.New(), suite.request("2024-01-01"), "user-1")

	var past *apperrors.PastDateError
	suite.True(errors.As(err, &past))
}

func (suite *MaintenanceServiceTestSuite) TestDelete() {
	id := uuid.New()
	existing := suite.stored(id, calendar.MustDate(2024, time.January, 15), nil)

	gomock.InOrder(
		suite.mockRepo.EXPECT().GetByID(gomock.Any(), id).Return(existing, nil),
		suite.mockRepo.EXPECT().Delete(gomock.Any(), id).Return(nil),
		suite.mockNotifier.EXPECT().NotifyCancelled(gomock.Any(), gomock.Any()).Return(nil),
	)

	warning, err := suite.service.Delete(context.Background(), id, "user-1")

	suite.NoError(err)
	suite.Nil(warning)
}

func (suite *MaintenanceServiceTestSuite) TestDelete_NotificationFailure() {
	id := uuid.New()
	existing := suite.stored(id, calendar.MustDate(2024, time.January, 15), nil)

	suite.mockRepo.EXPECT().GetByID(gomock.Any(), id).Return(existing, nil)
	suite.mockRepo.EXPECT().Delete(gomock.Any(), id).Return(nil)
	suite.mockNotifier.EXPECT().NotifyCancelled(gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))

	warning, err := suite.service.Delete(context.Background(), id, "user-1")

	suite.NoError(err)
	suite.Require().NotNil(warning)
	suite.Equal("cancelled", warning.Kind)
}

func (suite *MaintenanceServiceTestSuite) TestDelete_Missing() {
	id := uuid.New()
	suite.mockRepo.EXPECT().GetByID(gomock.Any(), id).Return(nil, apperrors.ErrMaintenanceNotFound)

	warning, err := suite.service.Delete(context.Background(), id, "user-1")

	suite.Nil(warning)
	suite.True(apperrors.IsNotFound(err))
}

func (suite *MaintenanceServiceTestSuite) TestDelete_RequiresActor() {
	_, err := suite.service.Delete(context.Background(), uuid.New(), "")
	suite.ErrorIs(err, apperrors.ErrAuthRequired)
}

func (suite *MaintenanceServiceTestSuite) TestListByDate() {
	jan15 := calendar.MustDate(2024, time.January, 15)
	assignments := []models.MaintenanceAssignment{
		*suite.stored(uuid.New(), jan15, nil),
		*suite.stored(uuid.New(), calendar.MustDate(2024, time.January, 16), nil),
		*suite.stored(uuid.New(), jan15, nil),
	}

	got := suite.service.ListByDate(assignments, jan15)
	suite.Len(got, 2)
	suite.Equal(assignments[0].ID, got[0].ID)
	suite.Equal(assignments[2].ID, got[1].ID)

	suite.Empty(suite.service.ListByDate(assignments, calendar.MustDate(2024, time.January, 17)))
	suite.NotNil(suite.service.ListByDate(nil, jan15))
}

func (suite *MaintenanceServiceTestSuite) TestListForDate() {
	jan15 := calendar.MustDate(2024, time.January, 15)
	suite.mockRepo.EXPECT().
		ListByDateRange(gomock.Any(), jan15, jan15).
		Return([]models.MaintenanceAssignment{*suite.stored(uuid.New(), jan15, nil)}, nil)

	items, err := suite.service.ListForDate(context.Background(), "2024-01-15T08:00:00Z")
	suite.NoError(err)
	suite.Len(items, 1)

	_, err = suite.service.ListForDate(context.Background(), "15/01/2024")
	suite.True(apperrors.IsValidation(err))
}

func (suite *MaintenanceServiceTestSuite) TestListRange() {
	from := calendar.MustDate(2024, time.January, 1)
	to := calendar.MustDate(2024, time.January, 31)
	suite.mockRepo.EXPECT().ListByDateRange(gomock.Any(), from, to).Return(nil, nil)

	items, err := suite.service.ListRange(context.Background(), "2024-01-01", "2024-01-31")
	suite.NoError(err)
	suite.Empty(items)

	_, err = suite.service.ListRange(context.Background(), "2024-01-31", "2024-01-01")
	suite.True(apperrors.IsValidation(err))

	_, err = suite.service.ListRange(context.Background(), "2024-01-01", "2025-06-01")
	suite.True(apperrors.IsValidation(err))

	_, err = suite.service.ListRange(context.Background(), "bad", "2024-01-01")
	suite.True(apperrors.IsValidation(err))
}

func (suite *MaintenanceServiceTestSuite) TestListRange_StorageError() {
	suite.mockRepo.EXPECT().
		ListByDateRange(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, apperrors.NewStorageError("list", errors.New("connection refused")))

	_, err := suite.service.ListRange(context.Background(), "2024-01-01", "2024-01-02")
	suite.True(apperrors.IsStorage(err))
}

func (suite *MaintenanceServiceTestSuite) TestGetCalendar() {
	jan15 := calendar.MustDate(2024, time.January, 15)
	jan20 := calendar.MustDate(2024, time.January, 20)
	suite.mockRepo.EXPECT().
		ListByDateRange(gomock.Any(), calendar.MustDate(2024, time.January, 1), calendar.MustDate(2024, time.January, 31)).
		Return([]models.MaintenanceAssignment{
			*suite.stored(uuid.New(), jan20, nil),
			*suite.stored(uuid.New(), jan15, nil),
			*suite.stored(uuid.New(), jan20, nil),
		}, nil)

	resp, err := suite.service.GetCalendar(context.Background(), "2024-01")
	suite.NoError(err)
	suite.Equal("2024-01", resp.Month)
	suite.Equal(3, resp.Total)
	suite.Require().Len(resp.Days, 2)
	suite.Equal(jan15, resp.Days[0].Date)
	suite.Len(resp.Days[0].Assignments, 1)
	suite.Equal(jan20, resp.Days[1].Date)
	suite.Len(resp.Days[1].Assignments, 2)

	_, err = suite.service.GetCalendar(context.Background(), "January")
	suite.True(apperrors.IsValidation(err))
}

func (suite *MaintenanceServiceTestSuite) TestExportMonth() {
	suite.mockRepo.EXPECT().
		ListByDateRange(gomock.Any(), calendar.MustDate(2024, time.February, 1), calendar.MustDate(2024, time.February, 29)).
		Return([]models.MaintenanceAssignment{*suite.stored(uuid.New(), calendar.MustDate(2024, time.February, 29), strPtr("leap day"))}, nil)

	file, err := suite.service.ExportMonth(context.Background(), "2024-02")
	suite.NoError(err)
	suite.Equal("maintenance-2024-02.xlsx", file.Filename)
	suite.Equal("application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", file.ContentType)
	suite.NotEmpty(file.Content)

	_, err = suite.service.ExportMonth(context.Background(), "2024-13")
	suite.True(apperrors.IsValidation(err))
}

func TestMaintenanceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MaintenanceServiceTestSuite))
}
