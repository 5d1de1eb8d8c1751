// Package notify provides the outbound event notifier adapter.
// Lifecycle events are emitted as structured log records; a push channel or
// message broker can replace this without touching the use cases.
package notify

import (
	"context"
	"log/slog"

	"parcelmarket/internal/core/domain/model/kernel"
)

// SlogEventNotifier implements ports.EventNotifier on a structured logger.
// Notify never fails and never blocks the calling command; delivery of the
// notification is strictly best effort.
type SlogEventNotifier struct {
	logger *slog.Logger
}

// NewSlogEventNotifier creates a notifier writing to the given logger.
func NewSlogEventNotifier(logger *slog.Logger) *SlogEventNotifier {
	return &SlogEventNotifier{
		logger: logger.With("component", "event_notifier"),
	}
}

// Notify emits one lifecycle event record.
func (n *SlogEventNotifier) Notify(ctx context.Context, event string, parcelID kernel.UUID) {
	n.logger.InfoContext(ctx, "parcel lifecycle event",
		"event", event,
		"parcel_id", parcelID.String(),
	)
}
