// Package chflow provides context-aware helpers for sending to and receiving
// from Go channels, so channel operations always respect cancellation and
// deadlines carried by a context.Context.
package chflow

import "context"

// Receive waits for a value from ch or for the context to be canceled. The
// returned boolean is false when the context was done first or the channel
// was closed; the value is then the zero value of T.
func Receive[T any](ctx context.Context, ch <-chan T) (T, bool) {
	var data T
	select {
	case <-ctx.Done():
		return data, false
	case data, ok := <-ch:
		return data, ok
	}
}

// Send attempts to deliver data to ch unless the context is canceled first.
// It reports whether the send happened.
func Send[T any](ctx context.Context, ch chan<- T, data T) bool {
	select {
	case <-ctx.Done():
		return false
	case ch <- data:
		return true
	}
}
