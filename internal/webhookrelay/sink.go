package webhookrelay

import "context"

// Sink delivers webhook events to the merchant's endpoint.
type Sink interface {
	// Deliver pushes a single event to the endpoint. A nil return marks
	// the event as delivered; any error counts as a failed attempt and
	// the relay decides whether to retry.
	//
	// ctx controls cancellation and deadlines for the underlying request.
	Deliver(ctx context.Context, event Event) error
}
