package payproc

import "time"

// Status-change event types emitted by the processor. Each tracks the status
// an invoice moved into; the refunded event is emitted once at refund time.
const (
	EventTypePartial  = "invoice.partial"
	EventTypePaid     = "invoice.paid"
	EventTypeOverpaid = "invoice.overpaid"
	EventTypeExpired  = "invoice.expired"
	EventTypeRefunded = "invoice.refunded"
)

// StatusChange is the snapshot handed to the notifier whenever an invoice's
// reported status changes. It carries everything an external webhook payload
// needs, so the notifier never has to read invoice state back.
type StatusChange struct {
	InvoiceID      string    // the invoice that changed
	EventType      string    // one of the EventType* constants
	Status         Status    // the status after the transition
	ReceivedAmount int64     // received amount at transition time
	OverpaidAmount int64     // overpaid amount at transition time
	Timestamp      time.Time // when the transition was applied
}

// StatusNotifier receives invoice status-change events.
//
// Implementations must treat the call as a one-way handoff: it must not
// block the caller, and delivery failures must never propagate back into
// invoice state. The processor emits exactly one event per status change.
type StatusNotifier interface {
	NotifyStatusChange(change StatusChange)
}

// eventTypeFor maps a newly entered status to its event type.
func eventTypeFor(status Status) string {
	switch status {
	case StatusPartial:
		return EventTypePartial
	case StatusPaid:
		return EventTypePaid
	case StatusOverpaid:
		return EventTypeOverpaid
	case StatusExpired:
		return EventTypeExpired
	default:
		return "invoice." + string(status)
	}
}
