// Package notify delivers maintenance notifications to operators.
package notify

import (
	"context"

	"maintenance-tracker-backend/internal/calendar"
)

//go:generate mockgen -source=notifier.go -destination=../mocks/notifier_mocks.go -package=mocks

// Kind identifies which change a notification announces
type Kind string

const (
	KindAssigned  Kind = "assigned"
	KindUpdated   Kind = "updated"
	KindCancelled Kind = "cancelled"
)

// Message carries everything a notification needs. It is built from a stored
// assignment after the write, never from the raw request.
type Message struct {
	To            []string
	OperatorName  string
	EquipmentName string
	ScheduledDate calendar.Date
	Observations  string
}

// Notifier sends one notification per call. Implementations make a single attempt
// and return an error when the message was not handed off.
type Notifier interface {
	NotifyAssigned(ctx context.Context, msg Message) error
	NotifyUpdated(ctx context.Context, msg Message) error
	NotifyCancelled(ctx context.Context, msg Message) error
}
