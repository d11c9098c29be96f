package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"maintenance-tracker-backend/internal/calendar"
	"maintenance-tracker-backend/internal/database/models"
	apperrors "maintenance-tracker-backend/internal/errors"
	"maintenance-tracker-backend/internal/export"
	"maintenance-tracker-backend/internal/logger"
	"maintenance-tracker-backend/internal/metrics"
	"maintenance-tracker-backend/internal/notify"
	"maintenance-tracker-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// MaxListRangeDays bounds ListRange so one request cannot pull the whole table
const MaxListRangeDays = 366

// Request field names, as they appear in JSON and in field errors
const (
	fieldEquipmentID   = "equipment_id"
	fieldOperatorID    = "operator_id"
	fieldScheduledDate = "scheduled_date"
	fieldObservations  = "observations"
)

var fieldOrder = []string{fieldEquipmentID, fieldOperatorID, fieldScheduledDate, fieldObservations}

var structFieldNames = map[string]string{
	"EquipmentID":   fieldEquipmentID,
	"OperatorID":    fieldOperatorID,
	"ScheduledDate": fieldScheduledDate,
	"Observations":  fieldObservations,
}

var errNoRecipient = errors.New("assigned operator has no e-mail address on record")

// MaintenanceService schedules maintenance assignments
type MaintenanceService struct {
	repo       repository.MaintenanceRepositoryInterface
	notifier   notify.Notifier
	normalizer *calendar.Normalizer
	validator  *validator.Validate
}

// NewMaintenanceService creates a new maintenance service
func NewMaintenanceService(repo repository.MaintenanceRepositoryInterface, notifier notify.Notifier, normalizer *calendar.Normalizer, v *validator.Validate) *MaintenanceService {
	if normalizer == nil {
		normalizer = calendar.NewNormalizer(nil, nil)
	}
	if v == nil {
		v = validator.New()
	}
	return &MaintenanceService{
		repo:       repo,
		notifier:   notifier,
		normalizer: normalizer,
		validator:  v,
	}
}

// MaintenanceRequest is the draft sent by the scheduling form.
// ScheduledDate may be any encoding the date normalizer accepts.
type MaintenanceRequest struct {
	EquipmentID   string  `json:"equipment_id" validate:"required,uuid" example:"3f1c2a9e-8a4b-4c55-9f57-2a1e5c3d7b10"`
	OperatorID    string  `json:"operator_id" validate:"required,uuid" example:"9b2d4e61-1c3f-4a8e-b7d2-6f0e1a2b3c4d"`
	ScheduledDate string  `json:"scheduled_date" validate:"required" example:"2024-01-15"`
	Observations  *string `json:"observations,omitempty" validate:"omitempty,max=300" example:"Replace hydraulic filters"`
}

// ValidatedMaintenance is a draft that passed every check, with its date normalized
type ValidatedMaintenance struct {
	EquipmentID   uuid.UUID     `json:"equipment_id"`
	OperatorID    uuid.UUID     `json:"operator_id"`
	ScheduledDate calendar.Date `json:"scheduled_date" swaggertype:"string" example:"2024-01-15"`
	Observations  *string       `json:"observations,omitempty"`
}

// MaintenanceResponse represents a stored assignment
type MaintenanceResponse struct {
	ID            uuid.UUID     `json:"id"`
	EquipmentID   uuid.UUID     `json:"equipment_id"`
	EquipmentName string        `json:"equipment_name,omitempty"`
	EquipmentCode string        `json:"equipment_code,omitempty"`
	OperatorID    uuid.UUID     `json:"operator_id"`
	OperatorName  string        `json:"operator_name,omitempty"`
	ScheduledDate calendar.Date `json:"scheduled_date" swaggertype:"string" example:"2024-01-15"`
	Observations  *string       `json:"observations,omitempty"`
	CreatedBy     string        `json:"created_by"`
	UpdatedBy     string        `json:"updated_by,omitempty"`
	CreatedAt     string        `json:"created_at"`
	UpdatedAt     string        `json:"updated_at"`
}

// CalendarDay groups the assignments of one day
type CalendarDay struct {
	Date        calendar.Date         `json:"date" swaggertype:"string" example:"2024-01-15"`
	Assignments []MaintenanceResponse `json:"assignments"`
}

// CalendarResponse is a month of assignments grouped by day. Days without
// assignments are omitted.
type CalendarResponse struct {
	Month string        `json:"month" example:"2024-01"`
	Total int           `json:"total"`
	Days  []CalendarDay `json:"days"`
}

// ExportFile is a rendered spreadsheet ready to be sent as an attachment
type ExportFile struct {
	Filename    string
	ContentType string
	Content     []byte
}

// Validate runs every check on req and returns all failures together as
// *errors.ValidationErrors.
func (s *MaintenanceService) Validate(req *MaintenanceRequest) (*ValidatedMaintenance, error) {
	if req == nil {
		req = &MaintenanceRequest{}
	}
	draft := cleanRequest(req)
	found := make(map[string]apperrors.FieldError)

	if err := s.validator.Struct(draft); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return nil, fmt.Errorf("validate maintenance request: %w", err)
		}
		for _, fe := range verrs {
			name := structFieldNames[fe.StructField()]
			if _, seen := found[name]; seen || name == "" {
				continue
			}
			found[name] = toFieldError(name, fe, draft)
		}
	}

	var date calendar.Date
	if _, missing := found[fieldScheduledDate]; !missing {
		d, err := s.normalizer.Normalize(draft.ScheduledDate)
		switch {
		case err != nil:
			found[fieldScheduledDate] = dateFieldError(draft.ScheduledDate, err)
		case !s.normalizer.IsTodayOrFuture(d):
			found[fieldScheduledDate] = &apperrors.PastDateError{
				Field: fieldScheduledDate,
				Date:  d.String(),
				Today: s.normalizer.Today().String(),
			}
		default:
			date = d
		}
	}

	if len(found) > 0 {
		set := &apperrors.ValidationErrors{}
		for _, name := range fieldOrder {
			if fe, ok := found[name]; ok {
				set.Add(fe)
			}
		}
		return nil, set
	}

	return &ValidatedMaintenance{
		EquipmentID:   uuid.MustParse(draft.EquipmentID),
		OperatorID:    uuid.MustParse(draft.OperatorID),
		ScheduledDate: date,
		Observations:  draft.Observations,
	}, nil
}

// cleanRequest trims input, lowercases ids and turns blank observations into nil
func cleanRequest(req *MaintenanceRequest) *MaintenanceRequest {
	draft := &MaintenanceRequest{
		EquipmentID:   strings.ToLower(strings.TrimSpace(req.EquipmentID)),
		OperatorID:    strings.ToLower(strings.TrimSpace(req.OperatorID)),
		ScheduledDate: strings.TrimSpace(req.ScheduledDate),
	}
	if req.Observations != nil {
		if obs := strings.TrimSpace(*req.Observations); obs != "" {
			draft.Observations = &obs
		}
	}
	return draft
}

func toFieldError(name string, fe validator.FieldError, draft *MaintenanceRequest) apperrors.FieldError {
	switch fe.Tag() {
	case "required":
		return &apperrors.MissingFieldError{Field: name}
	case "uuid":
		return &apperrors.InvalidReferenceError{Field: name, Value: fmt.Sprint(fe.Value())}
	case "max":
		length := 0
		if draft.Observations != nil {
			length = utf8.RuneCountInString(*draft.Observations)
		}
		return &apperrors.ObservationsTooLongError{Field: name, Length: length, Max: models.ObservationsMaxLength}
	default:
		return &apperrors.InvalidReferenceError{Field: name, Value: fmt.Sprint(fe.Value())}
	}
}

func dateFieldError(raw string, err error) apperrors.FieldError {
	var invalid *apperrors.InvalidDateError
	if errors.As(err, &invalid) {
		return apperrors.NewInvalidDateError(fieldScheduledDate, raw, invalid.Err)
	}
	return apperrors.NewInvalidDateError(fieldScheduledDate, raw, err)
}

// Create validates req and stores a new assignment. A taken (operator, date) slot
// fails with *errors.ConflictError. After a successful insert one "assigned"
// notification is attempted; its failure comes back as a warning beside the result.
func (s *MaintenanceService) Create(ctx context.Context, req *MaintenanceRequest, actor string) (resp *MaintenanceResponse, warning *apperrors.NotificationDeliveryWarning, err error) {
	defer observe("create", time.Now(), &err)

	if strings.TrimSpace(actor) == "" {
		return nil, nil, apperrors.ErrAuthRequired
	}
	draft, err := s.Validate(req)
	if err != nil {
		return nil, nil, err
	}

	assignment := &models.MaintenanceAssignment{
		AuditFields:   models.AuditFields{CreatedBy: actor, UpdatedBy: actor},
		EquipmentID:   draft.EquipmentID,
		OperatorID:    draft.OperatorID,
		ScheduledDate: draft.ScheduledDate,
		Observations:  draft.Observations,
	}
	if err := s.repo.Create(ctx, assignment); err != nil {
		s.logWriteFailure(ctx, "create", assignment, err)
		return nil, nil, err
	}

	stored := s.reload(ctx, assignment)
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"assignment_id":  stored.ID.String(),
		"operator_id":    stored.OperatorID.String(),
		"scheduled_date": stored.ScheduledDate.String(),
	}).Info("maintenance assignment created")

	warning = s.sendNotification(ctx, notify.KindAssigned, stored)
	return toMaintenanceResponse(stored), warning, nil
}

// Update replaces an existing assignment with req. The unique index excludes the
// row itself, so keeping the same (operator, date) never conflicts. An "updated"
// notification goes to the currently assigned operator when the operator, date or
// equipment changed; an observations-only edit sends nothing.
func (s *MaintenanceService) Update(ctx context.Context, id uuid.UUID, req *MaintenanceRequest, actor string) (resp *MaintenanceResponse, warning *apperrors.NotificationDeliveryWarning, err error) {
	defer observe("update", time.Now(), &err)

	if strings.TrimSpace(actor) == "" {
		return nil, nil, apperrors.ErrAuthRequired
	}
	draft, err := s.Validate(req)
	if err != nil {
		return nil, nil, err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	updated := *existing
	updated.EquipmentID = draft.EquipmentID
	updated.OperatorID = draft.OperatorID
	updated.ScheduledDate = draft.ScheduledDate
	updated.Observations = draft.Observations
	updated.UpdatedBy = actor
	updated.Equipment = nil
	updated.Operator = nil

	if err := s.repo.Update(ctx, &updated); err != nil {
		s.logWriteFailure(ctx, "update", &updated, err)
		return nil, nil, err
	}

	stored := s.reload(ctx, &updated)
	if schedulingChanged(existing, stored) {
		warning = s.sendNotification(ctx, notify.KindUpdated, stored)
	}
	return toMaintenanceResponse(stored), warning, nil
}

// Delete removes an assignment and attempts one "cancelled" notification to the
// operator it belonged to. A missing id fails with *errors.NotFoundError.
func (s *MaintenanceService) Delete(ctx context.Context, id uuid.UUID, actor string) (warning *apperrors.NotificationDeliveryWarning, err error) {
	defer observe("delete", time.Now(), &err)

	if strings.TrimSpace(actor) == "" {
		return nil, apperrors.ErrAuthRequired
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithField("assignment_id", id.String()).Info("maintenance assignment deleted")
	return s.sendNotification(ctx, notify.KindCancelled, existing), nil
}

// GetByID retrieves one assignment
func (s *MaintenanceService) GetByID(ctx context.Context, id uuid.UUID) (*MaintenanceResponse, error) {
	assignment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toMaintenanceResponse(assignment), nil
}

// ListByDate keeps the assignments whose normalized scheduled date is date.
// Stored dates go through the same normalizer as validation.
func (s *MaintenanceService) ListByDate(assignments []models.MaintenanceAssignment, date calendar.Date) []models.MaintenanceAssignment {
	out := make([]models.MaintenanceAssignment, 0)
	for _, a := range assignments {
		d, err := s.normalizer.Normalize(a.ScheduledDate)
		if err != nil {
			continue
		}
		if d.Equal(date) {
			out = append(out, a)
		}
	}
	return out
}

// ListForDate returns the assignments of one day. date may be any accepted encoding.
func (s *MaintenanceService) ListForDate(ctx context.Context, date string) ([]MaintenanceResponse, error) {
	d, err := s.normalizer.Normalize(date)
	if err != nil {
		return nil, dateQueryError("date", err)
	}
	assignments, err := s.repo.ListByDateRange(ctx, d, d)
	if err != nil {
		return nil, err
	}
	return toMaintenanceResponses(s.ListByDate(assignments, d)), nil
}

// ListRange returns the assignments between from and to, both inclusive
func (s *MaintenanceService) ListRange(ctx context.Context, from, to string) ([]MaintenanceResponse, error) {
	start, err := s.normalizer.Normalize(from)
	if err != nil {
		return nil, dateQueryError("from", err)
	}
	end, err := s.normalizer.Normalize(to)
	if err != nil {
		return nil, dateQueryError("to", err)
	}
	if end.Before(start) {
		return nil, apperrors.NewValidationError("to", "must not be before from")
	}
	if start.AddDays(MaxListRangeDays).Before(end) {
		return nil, apperrors.NewValidationError("to", fmt.Sprintf("range must not exceed %d days", MaxListRangeDays))
	}

	assignments, err := s.repo.ListByDateRange(ctx, start, end)
	if err != nil {
		return nil, err
	}
	return toMaintenanceResponses(assignments), nil
}

// GetCalendar returns one month of assignments grouped by day
func (s *MaintenanceService) GetCalendar(ctx context.Context, month string) (*CalendarResponse, error) {
	first, err := calendar.ParseMonth(month)
	if err != nil {
		return nil, apperrors.NewValidationError("month", "must be YYYY-MM")
	}
	assignments, err := s.repo.ListByDateRange(ctx, first, first.LastOfMonth())
	if err != nil {
		return nil, err
	}

	projection := NewCalendarProjection(toMaintenanceResponses(assignments))
	resp := &CalendarResponse{
		Month: first.Format("2006-01"),
		Total: projection.Len(),
		Days:  make([]CalendarDay, 0),
	}
	for _, day := range projection.Days() {
		resp.Days = append(resp.Days, CalendarDay{Date: day, Assignments: projection.ForDate(day)})
	}
	return resp, nil
}

// ExportMonth renders one month of assignments as an Excel workbook
func (s *MaintenanceService) ExportMonth(ctx context.Context, month string) (file *ExportFile, err error) {
	defer observe("export", time.Now(), &err)

	first, err := calendar.ParseMonth(month)
	if err != nil {
		return nil, apperrors.NewValidationError("month", "must be YYYY-MM")
	}
	assignments, err := s.repo.ListByDateRange(ctx, first, first.LastOfMonth())
	if err != nil {
		return nil, err
	}

	rows := make([]export.Row, 0, len(assignments))
	for _, a := range assignments {
		resp := toMaintenanceResponse(&a)
		row := export.Row{
			Date:          resp.ScheduledDate,
			EquipmentCode: resp.EquipmentCode,
			EquipmentName: resp.EquipmentName,
			OperatorName:  resp.OperatorName,
		}
		if resp.Observations != nil {
			row.Observations = *resp.Observations
		}
		rows = append(rows, row)
	}

	content, err := export.BuildMonthXLSX(first, rows)
	if err != nil {
		return nil, fmt.Errorf("build export: %w", err)
	}
	return &ExportFile{
		Filename:    fmt.Sprintf("maintenance-%s.xlsx", first.Format("2006-01")),
		ContentType: export.ContentType,
		Content:     content,
	}, nil
}

// reload reads the stored row back with its equipment and operator. If that fails
// the write still stands, so the in-memory copy is returned.
func (s *MaintenanceService) reload(ctx context.Context, assignment *models.MaintenanceAssignment) *models.MaintenanceAssignment {
	stored, err := s.repo.GetByID(ctx, assignment.ID)
	if err != nil {
		logger.WithContext(ctx).WithError(err).WithField("assignment_id", assignment.ID.String()).
			Warn("could not reload maintenance assignment after write")
		return assignment
	}
	return stored
}

// sendNotification makes exactly one delivery attempt
func (s *MaintenanceService) sendNotification(ctx context.Context, kind notify.Kind, a *models.MaintenanceAssignment) *apperrors.NotificationDeliveryWarning {
	var err error
	if s.notifier == nil {
		err = errors.New("no notifier configured")
	} else if msg, buildErr := messageFor(a); buildErr != nil {
		err = buildErr
	} else {
		switch kind {
		case notify.KindAssigned:
			err = s.notifier.NotifyAssigned(ctx, msg)
		case notify.KindUpdated:
			err = s.notifier.NotifyUpdated(ctx, msg)
		case notify.KindCancelled:
			err = s.notifier.NotifyCancelled(ctx, msg)
		default:
			err = fmt.Errorf("unknown notification kind %q", kind)
		}
	}
	metrics.IncNotification(string(kind), err)

	if err != nil {
		logger.WithContext(ctx).WithError(err).WithFields(map[string]interface{}{
			"assignment_id": a.ID.String(),
			"kind":          string(kind),
		}).Warn("maintenance notification not delivered")
		return &apperrors.NotificationDeliveryWarning{Kind: string(kind), Err: err}
	}
	return nil
}

func messageFor(a *models.MaintenanceAssignment) (notify.Message, error) {
	if a.Operator == nil || strings.TrimSpace(a.Operator.Email) == "" {
		return notify.Message{}, errNoRecipient
	}
	msg := notify.Message{
		To:            []string{a.Operator.Email},
		OperatorName:  a.Operator.FullName(),
		ScheduledDate: a.ScheduledDate,
	}
	if a.Equipment != nil {
		msg.EquipmentName = a.Equipment.Name
	}
	if a.Observations != nil {
		msg.Observations = *a.Observations
	}
	return msg, nil
}

func schedulingChanged(before, after *models.MaintenanceAssignment) bool {
	return before.OperatorID != after.OperatorID ||
		before.EquipmentID != after.EquipmentID ||
		!before.ScheduledDate.Equal(after.ScheduledDate)
}

func (s *MaintenanceService) logWriteFailure(ctx context.Context, op string, a *models.MaintenanceAssignment, err error) {
	entry := logger.WithContext(ctx).WithError(err).WithFields(map[string]interface{}{
		"operation":      op,
		"operator_id":    a.OperatorID.String(),
		"scheduled_date": a.ScheduledDate.String(),
	})
	switch {
	case apperrors.IsConflict(err):
		entry.Info("maintenance slot already taken")
	case apperrors.IsNotFound(err):
		entry.Info("maintenance write referenced a missing record")
	default:
		entry.Error("maintenance write failed")
	}
}

func dateQueryError(field string, err error) error {
	return apperrors.NewValidationError(field, err.Error())
}

func observe(operation string, start time.Time, err *error) {
	metrics.ObserveOperation(operation, *err, time.Since(start))
}

func toMaintenanceResponse(a *models.MaintenanceAssignment) *MaintenanceResponse {
	resp := &MaintenanceResponse{
		ID:            a.ID,
		EquipmentID:   a.EquipmentID,
		OperatorID:    a.OperatorID,
		ScheduledDate: a.ScheduledDate,
		Observations:  a.Observations,
		CreatedBy:     a.CreatedBy,
		UpdatedBy:     a.UpdatedBy,
		CreatedAt:     a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     a.UpdatedAt.Format(time.RFC3339),
	}
	if a.Equipment != nil {
		resp.EquipmentName = a.Equipment.Name
		resp.EquipmentCode = a.Equipment.Code
	}
	if a.Operator != nil {
		resp.OperatorName = a.Operator.FullName()
	}
	return resp
}

func toMaintenanceResponses(assignments []models.MaintenanceAssignment) []MaintenanceResponse {
	out := make([]MaintenanceResponse, 0, len(assignments))
	for i := range assignments {
		out = append(out, *toMaintenanceResponse(&assignments[i]))
	}
	return out
}
