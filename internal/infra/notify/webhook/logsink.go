package webhook

import (
	"context"

	"github.com/gabapcia/paysim/internal/pkg/logger"
	"github.com/gabapcia/paysim/internal/webhookrelay"
)

// logSink writes events to the application log instead of an HTTP endpoint.
// It is used when no merchant endpoint is configured, so status changes are
// still visible.
type logSink struct{}

// Compile-time assertion that logSink implements the Sink interface.
var _ webhookrelay.Sink = logSink{}

// NewLogSink creates a sink that logs every event and never fails.
func NewLogSink() logSink {
	return logSink{}
}

// Deliver implements webhookrelay.Sink.
func (logSink) Deliver(ctx context.Context, event webhookrelay.Event) error {
	logger.Info(ctx, "invoice status changed",
		"invoiceId", event.InvoiceID,
		"eventType", event.EventType,
		"status", event.Status,
		"receivedAmount", event.ReceivedAmount,
		"overpaidAmount", event.OverpaidAmount,
	)
	return nil
}
