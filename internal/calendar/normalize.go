package calendar

import (
	"errors"
	"fmt"
	"strings"
	"time"

	apperrors "maintenance-tracker-backend/internal/errors"
)

// Layouts carrying an explicit offset. The date is taken in that offset.
var offsetLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04Z07:00",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05Z07",
	"2006-01-02 15:04:05.999999999Z07",
}

// Layouts without an offset. The date is taken as written.
var localLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

var errEmptyDate = errors.New("empty date")

// Normalize reduces input to the calendar date it names.
//
// Strings may be YYYY-MM-DD, an RFC 3339 date-time, or a date-time without offset.
// time.Time values and date-times with an offset resolve to the date on their own wall
// clock; no value is ever shifted into another zone. Anything unparsable, impossible
// (2024-02-30) or empty fails with *errors.InvalidDateError.
func Normalize(input interface{}) (Date, error) {
	switch v := input.(type) {
	case Date:
		return fromTriple(v)
	case *Date:
		if v == nil {
			return Date{}, apperrors.NewInvalidDateError("", "", errEmptyDate)
		}
		return fromTriple(*v)
	case time.Time:
		return fromTimeValue(v)
	case *time.Time:
		if v == nil {
			return Date{}, apperrors.NewInvalidDateError("", "", errEmptyDate)
		}
		return fromTimeValue(*v)
	case string:
		return parseString(v)
	case *string:
		if v == nil {
			return Date{}, apperrors.NewInvalidDateError("", "", errEmptyDate)
		}
		return parseString(*v)
	case nil:
		return Date{}, apperrors.NewInvalidDateError("", "", errEmptyDate)
	default:
		return Date{}, apperrors.NewInvalidDateError("", fmt.Sprintf("%v", input), fmt.Errorf("unsupported date type %T", input))
	}
}

func fromTriple(d Date) (Date, error) {
	valid, ok := NewDate(d.Year, d.Month, d.Day)
	if !ok {
		return Date{}, apperrors.NewInvalidDateError("", d.String(), errors.New("not a calendar day"))
	}
	return valid, nil
}

func fromTimeValue(t time.Time) (Date, error) {
	if t.IsZero() {
		return Date{}, apperrors.NewInvalidDateError("", "", errEmptyDate)
	}
	return FromTime(t), nil
}

func parseString(raw string) (Date, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Date{}, apperrors.NewInvalidDateError("", raw, errEmptyDate)
	}

	if len(s) == len(StorageLayout) {
		t, err := time.Parse(StorageLayout, s)
		if err != nil {
			return Date{}, apperrors.NewInvalidDateError("", raw, err)
		}
		return FromTime(t), nil
	}

	for _, layout := range offsetLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return FromTime(t), nil
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return FromTime(t), nil
		}
	}

	// Re-parse the date prefix for a precise cause ("day out of range" and friends).
	cause := fmt.Errorf("unrecognized date format %q", s)
	if len(s) >= len(StorageLayout) {
		if _, err := time.Parse(StorageLayout, s[:len(StorageLayout)]); err != nil {
			cause = err
		}
	}
	return Date{}, apperrors.NewInvalidDateError("", raw, cause)
}

// ParseMonth parses YYYY-MM and returns the first day of that month.
func ParseMonth(raw string) (Date, error) {
	t, err := time.Parse("2006-01", strings.TrimSpace(raw))
	if err != nil {
		return Date{}, apperrors.NewInvalidDateError("month", raw, err)
	}
	return FromTime(t), nil
}

// LoadLocation resolves the reference zone. Empty and "Local" mean the system zone.
func LoadLocation(name string) (*time.Location, error) {
	switch strings.TrimSpace(name) {
	case "", "Local", "local":
		return time.Local, nil
	default:
		return time.LoadLocation(name)
	}
}

// Normalizer answers "what day is today" in one reference zone and is the single
// entry point for date parsing in the scheduler.
type Normalizer struct {
	clock    Clock
	location *time.Location
}

// NewNormalizer builds a normalizer. A nil clock uses the system clock and a nil
// location uses the system zone.
func NewNormalizer(clock Clock, location *time.Location) *Normalizer {
	if clock == nil {
		clock = SystemClock{}
	}
	if location == nil {
		location = time.Local
	}
	return &Normalizer{clock: clock, location: location}
}

// Location returns the reference zone used for Today.
func (n *Normalizer) Location() *time.Location {
	return n.location
}

// Normalize delegates to the package-level Normalize.
func (n *Normalizer) Normalize(input interface{}) (Date, error) {
	return Normalize(input)
}

// Today returns the current calendar date in the reference zone.
func (n *Normalizer) Today() Date {
	return FromTime(n.clock.Now().In(n.location))
}

// IsTodayOrFuture reports whether d is today or a later day.
func (n *Normalizer) IsTodayOrFuture(d Date) bool {
	return !d.Before(n.Today())
}
