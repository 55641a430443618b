package webhook

import (
	"github.com/gabapcia/paysim/internal/payproc"
	"github.com/gabapcia/paysim/internal/webhookrelay"
)

// notifier adapts payment processor status changes into relay events.
type notifier struct {
	relay webhookrelay.Service
}

// Compile-time assertion that notifier implements the StatusNotifier interface.
var _ payproc.StatusNotifier = (*notifier)(nil)

// NewNotifier creates the bridge between the payment processor and the
// webhook relay.
func NewNotifier(relay webhookrelay.Service) *notifier {
	return &notifier{relay: relay}
}

// NotifyStatusChange implements payproc.StatusNotifier. Enqueue never
// blocks, which keeps the processor's contract of a non-blocking handoff.
func (n *notifier) NotifyStatusChange(change payproc.StatusChange) {
	n.relay.Enqueue(webhookrelay.Event{
		InvoiceID:      change.InvoiceID,
		EventType:      change.EventType,
		Status:         string(change.Status),
		ReceivedAmount: change.ReceivedAmount,
		OverpaidAmount: change.OverpaidAmount,
		Timestamp:      change.Timestamp,
	})
}
