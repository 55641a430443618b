package webhookrelay

import "time"

// Event is the payload delivered to the merchant's webhook endpoint for a
// single invoice status change.
type Event struct {
	InvoiceID      string    `json:"invoiceId"`
	EventType      string    `json:"eventType"`
	Status         string    `json:"status"`
	ReceivedAmount int64     `json:"receivedAmount"`
	OverpaidAmount int64     `json:"overpaidAmount"`
	Timestamp      time.Time `json:"timestamp"`
}

// DeadLetter wraps an event whose delivery was abandoned after exhausting
// all retry attempts.
type DeadLetter struct {
	Event    Event     `json:"event"`
	Attempts int       `json:"attempts"`
	LastErr  string    `json:"lastError"`
	FailedAt time.Time `json:"failedAt"`
}
