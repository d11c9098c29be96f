package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Field error codes, stable for API clients
const (
	CodeMissingField        = "missing_field"
	CodeInvalidDate         = "invalid_date"
	CodePastDate            = "past_date"
	CodeObservationsTooLong = "observations_too_long"
	CodeInvalidReference    = "invalid_reference"
)

// FieldError is a validation failure tied to one request field
type FieldError interface {
	error
	FieldName() string
	Code() string
}

// MissingFieldError reports a required field that was not supplied
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

// FieldName returns the offending field
func (e *MissingFieldError) FieldName() string { return e.Field }

// Code returns the stable error code
func (e *MissingFieldError) Code() string { return CodeMissingField }

// InvalidDateError reports a date value that could not be read as a calendar day
type InvalidDateError struct {
	Field string
	Value string
	Err   error
}

func (e *InvalidDateError) Error() string {
	msg := "invalid date"
	if e.Field != "" {
		msg = fmt.Sprintf("%s: invalid date", e.Field)
	}
	if e.Value != "" {
		msg = fmt.Sprintf("%s %q", msg, e.Value)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the parse cause
func (e *InvalidDateError) Unwrap() error { return e.Err }

// FieldName returns the offending field
func (e *InvalidDateError) FieldName() string { return e.Field }

// Code returns the stable error code
func (e *InvalidDateError) Code() string { return CodeInvalidDate }

// PastDateError reports a scheduled date earlier than today
type PastDateError struct {
	Field string
	Date  string
	Today string
}

func (e *PastDateError) Error() string {
	return fmt.Sprintf("%s %s is in the past (today is %s); it must be today or a later date", e.Field, e.Date, e.Today)
}

// FieldName returns the offending field
func (e *PastDateError) FieldName() string { return e.Field }

// Code returns the stable error code
func (e *PastDateError) Code() string { return CodePastDate }

// ObservationsTooLongError reports observations above the character limit
type ObservationsTooLongError struct {
	Field  string
	Length int
	Max    int
}

func (e *ObservationsTooLongError) Error() string {
	return fmt.Sprintf("%s must be at most %d characters (got %d)", e.Field, e.Max, e.Length)
}

// FieldName returns the offending field
func (e *ObservationsTooLongError) FieldName() string { return e.Field }

// Code returns the stable error code
func (e *ObservationsTooLongError) Code() string { return CodeObservationsTooLong }

// InvalidReferenceError reports an id that is present but malformed
type InvalidReferenceError struct {
	Field string
	Value string
}

func (e *InvalidReferenceError) Error() string {
	return fmt.Sprintf("%s %q is not a valid id", e.Field, e.Value)
}

// FieldName returns the offending field
func (e *InvalidReferenceError) FieldName() string { return e.Field }

// Code returns the stable error code
func (e *InvalidReferenceError) Code() string { return CodeInvalidReference }

// ValidationErrors is the full set of field errors found for one request
type ValidationErrors struct {
	Errors []FieldError
}

func (e *ValidationErrors) Error() string {
	if e == nil || len(e.Errors) == 0 {
		return "validation failed"
	}
	msgs := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		msgs = append(msgs, fe.Error())
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Unwrap exposes every member to errors.Is and errors.As
func (e *ValidationErrors) Unwrap() []error {
	if e == nil {
		return nil
	}
	out := make([]error, len(e.Errors))
	for i, fe := range e.Errors {
		out[i] = fe
	}
	return out
}

// Add records a field error
func (e *ValidationErrors) Add(fe FieldError) {
	e.Errors = append(e.Errors, fe)
}

// HasErrors reports whether any field error was recorded
func (e *ValidationErrors) HasErrors() bool {
	return e != nil && len(e.Errors) > 0
}

// Fields returns the offending field names in the order they were recorded
func (e *ValidationErrors) Fields() []string {
	if e == nil {
		return nil
	}
	fields := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		fields = append(fields, fe.FieldName())
	}
	return fields
}

// ValidationError represents a validation error outside the assignment payload
// (query parameters, path parameters)
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ConflictError reports that an operator is already booked on a date
type ConflictError struct {
	OperatorID    string
	ScheduledDate string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("operator %s already has a maintenance assignment on %s", e.OperatorID, e.ScheduledDate)
}

// Is enables errors.Is() comparison for ConflictError. An empty target matches any conflict.
func (e *ConflictError) Is(target error) bool {
	t, ok := target.(*ConflictError)
	if !ok {
		return false
	}
	if t.OperatorID == "" && t.ScheduledDate == "" {
		return true
	}
	return e.OperatorID == t.OperatorID && e.ScheduledDate == t.ScheduledDate
}

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// StorageError wraps an unexpected persistence failure
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error during %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying driver error
func (e *StorageError) Unwrap() error { return e.Err }

// DeliveryError is returned by notifiers when a message could not be handed off
type DeliveryError struct {
	Channel    string
	StatusCode int
	Err        error
}

func (e *DeliveryError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s delivery failed with status %d: %v", e.Channel, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s delivery failed: %v", e.Channel, e.Err)
}

// Unwrap returns the transport cause
func (e *DeliveryError) Unwrap() error { return e.Err }

// NotificationDeliveryWarning is returned beside a successful write whose
// notification could not be delivered. It never replaces the write result.
type NotificationDeliveryWarning struct {
	Kind string
	Err  error
}

func (w *NotificationDeliveryWarning) Error() string {
	return fmt.Sprintf("%s notification was not delivered: %v", w.Kind, w.Err)
}

// Unwrap returns the delivery failure
func (w *NotificationDeliveryWarning) Unwrap() error { return w.Err }

// Message is the user-facing text for the warning
func (w *NotificationDeliveryWarning) Message() string {
	return fmt.Sprintf("the change was saved but the %s notification could not be sent", w.Kind)
}

// Entity Not Found Errors
var (
	ErrMaintenanceNotFound = &NotFoundError{Entity: "maintenance assignment"}
	ErrEquipmentNotFound   = &NotFoundError{Entity: "equipment"}
	ErrOperatorNotFound    = &NotFoundError{Entity: "operator"}
	ErrBrandNotFound       = &NotFoundError{Entity: "brand"}
)

// Authentication Errors
var (
	ErrAuthRequired = &AuthenticationError{Message: "authentication required: please sign in"}
	ErrInvalidToken = &AuthenticationError{Message: "invalid or expired token"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsValidation checks if an error is a ValidationErrors set or a ValidationError
func IsValidation(err error) bool {
	var set *ValidationErrors
	var single *ValidationError
	return errors.As(err, &set) || errors.As(err, &single)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsStorage checks if an error is a StorageError
func IsStorage(err error) bool {
	var storageErr *StorageError
	return errors.As(err, &storageErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewInvalidDateError creates a new InvalidDateError
func NewInvalidDateError(field, value string, cause error) *InvalidDateError {
	return &InvalidDateError{Field: field, Value: value, Err: cause}
}

// NewConflictError creates a new ConflictError
func NewConflictError(operatorID, scheduledDate string) error {
	return &ConflictError{OperatorID: operatorID, ScheduledDate: scheduledDate}
}

// NewStorageError wraps a persistence failure
func NewStorageError(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}
