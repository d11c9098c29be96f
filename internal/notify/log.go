package notify

import (
	"context"

	"maintenance-tracker-backend/internal/logger"
)

// LogNotifier writes notifications to the log instead of sending them.
// It is used when no mail API key is configured.
type LogNotifier struct{}

// NewLogNotifier creates a LogNotifier
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

// NotifyAssigned logs the notification
func (n *LogNotifier) NotifyAssigned(ctx context.Context, msg Message) error {
	n.log(ctx, KindAssigned, msg)
	return nil
}

// NotifyUpdated logs the notification
func (n *LogNotifier) NotifyUpdated(ctx context.Context, msg Message) error {
	n.log(ctx, KindUpdated, msg)
	return nil
}

// NotifyCancelled logs the notification
func (n *LogNotifier) NotifyCancelled(ctx context.Context, msg Message) error {
	n.log(ctx, KindCancelled, msg)
	return nil
}

func (n *LogNotifier) log(ctx context.Context, kind Kind, msg Message) {
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"kind":           string(kind),
		"to":             msg.To,
		"operator":       msg.OperatorName,
		"equipment":      msg.EquipmentName,
		"scheduled_date": msg.ScheduledDate.String(),
	}).Info("mail delivery disabled; notification logged only")
}
