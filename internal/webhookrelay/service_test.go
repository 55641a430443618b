package webhookrelay_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/gabapcia/paysim/internal/pkg/logger"
	"github.com/gabapcia/paysim/internal/webhookrelay"
	webhookrelayMocks "github.com/gabapcia/paysim/internal/webhookrelay/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	// Initialize logger for tests to prevent nil pointer dereference
	_ = logger.Init("error")
}

func testEvent(invoiceID, eventType string) webhookrelay.Event {
	return webhookrelay.Event{
		InvoiceID:      invoiceID,
		EventType:      eventType,
		Status:         "paid",
		ReceivedAmount: 100,
		Timestamp:      time.Now().UTC(),
	}
}

func TestEnqueue(t *testing.T) {
	t.Run("delivers a single event", func(t *testing.T) {
		sink := webhookrelayMocks.NewSink(t)
		svc := webhookrelay.New(sink, webhookrelay.WithRetryDelay(time.Millisecond))

		delivered := make(chan webhookrelay.Event, 1)
		sink.EXPECT().Deliver(mock.Anything, mock.Anything).Run(func(_ context.Context, event webhookrelay.Event) {
			delivered <- event
		}).Return(nil).Once()

		require.NoError(t, svc.Start(t.Context()))
		defer svc.Close()

		svc.Enqueue(testEvent("inv-1", "invoice.paid"))

		select {
		case event := <-delivered:
			assert.Equal(t, "inv-1", event.InvoiceID)
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for delivery")
		}
	})

	t.Run("preserves enqueue order", func(t *testing.T) {
		sink := webhookrelayMocks.NewSink(t)
		svc := webhookrelay.New(sink, webhookrelay.WithRetryDelay(time.Millisecond))

		var (
			mu    sync.Mutex
			order []string
		)
		done := make(chan struct{})
		sink.EXPECT().Deliver(mock.Anything, mock.Anything).Run(func(_ context.Context, event webhookrelay.Event) {
			mu.Lock()
			order = append(order, event.EventType)
			if len(order) == 3 {
				close(done)
			}
			mu.Unlock()
		}).Return(nil).Times(3)

		svc.Enqueue(testEvent("inv-1", "invoice.partial"))
		svc.Enqueue(testEvent("inv-1", "invoice.paid"))
		svc.Enqueue(testEvent("inv-1", "invoice.refunded"))

		// Events enqueued before Start must survive and go out in order.
		require.NoError(t, svc.Start(t.Context()))
		defer svc.Close()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for deliveries")
		}

		mu.Lock()
		defer mu.Unlock()
		assert.Equal(t, []string{"invoice.partial", "invoice.paid", "invoice.refunded"}, order)
	})

	t.Run("retries failed deliveries until they succeed", func(t *testing.T) {
		sink := webhookrelayMocks.NewSink(t)
		svc := webhookrelay.New(sink, webhookrelay.WithRetryDelay(time.Millisecond), webhookrelay.WithRetryAttempts(3))

		delivered := make(chan struct{})
		sink.EXPECT().Deliver(mock.Anything, mock.Anything).Return(errors.New("endpoint unavailable")).Times(2)
		sink.EXPECT().Deliver(mock.Anything, mock.Anything).Run(func(_ context.Context, _ webhookrelay.Event) {
			close(delivered)
		}).Return(nil).Once()

		require.NoError(t, svc.Start(t.Context()))
		defer svc.Close()

		svc.Enqueue(testEvent("inv-1", "invoice.paid"))

		select {
		case <-delivered:
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for delivery")
		}
	})
}

func TestDeadLettering(t *testing.T) {
	t.Run("abandons an event after exhausting every attempt", func(t *testing.T) {
		sink := webhookrelayMocks.NewSink(t)
		store := webhookrelay.NewMemoryDeadLetterStorage()
		svc := webhookrelay.New(sink,
			webhookrelay.WithRetryDelay(time.Millisecond),
			webhookrelay.WithRetryAttempts(2),
			webhookrelay.WithDeadLetterStorage(store),
		)

		sink.EXPECT().Deliver(mock.Anything, mock.MatchedBy(func(event webhookrelay.Event) bool {
			return event.InvoiceID == "inv-bad"
		})).Return(errors.New("endpoint unavailable")).Times(2)

		delivered := make(chan struct{})
		sink.EXPECT().Deliver(mock.Anything, mock.MatchedBy(func(event webhookrelay.Event) bool {
			return event.InvoiceID == "inv-good"
		})).Run(func(_ context.Context, _ webhookrelay.Event) {
			close(delivered)
		}).Return(nil).Once()

		require.NoError(t, svc.Start(t.Context()))
		defer svc.Close()

		svc.Enqueue(testEvent("inv-bad", "invoice.paid"))
		svc.Enqueue(testEvent("inv-good", "invoice.paid"))

		// A poisoned event must not block the queue behind it.
		select {
		case <-delivered:
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for delivery")
		}

		require.Eventually(t, func() bool {
			return len(store.DeadLetters()) == 1
		}, time.Second, 5*time.Millisecond)

		letter := store.DeadLetters()[0]
		assert.Equal(t, "inv-bad", letter.Event.InvoiceID)
		assert.Equal(t, 2, letter.Attempts)
		assert.Equal(t, "endpoint unavailable", letter.LastErr)
		assert.False(t, letter.FailedAt.IsZero())
	})

	t.Run("dead letters go to the configured storage", func(t *testing.T) {
		sink := webhookrelayMocks.NewSink(t)
		store := webhookrelayMocks.NewDeadLetterStorage(t)
		svc := webhookrelay.New(sink,
			webhookrelay.WithRetryDelay(time.Millisecond),
			webhookrelay.WithRetryAttempts(1),
			webhookrelay.WithDeadLetterStorage(store),
		)

		sink.EXPECT().Deliver(mock.Anything, mock.Anything).Return(errors.New("endpoint unavailable")).Once()

		saved := make(chan webhookrelay.DeadLetter, 1)
		store.EXPECT().SaveDeadLetter(mock.Anything, mock.Anything).Run(func(_ context.Context, letter webhookrelay.DeadLetter) {
			saved <- letter
		}).Return(nil).Once()

		require.NoError(t, svc.Start(t.Context()))
		defer svc.Close()

		svc.Enqueue(testEvent("inv-1", "invoice.expired"))

		select {
		case letter := <-saved:
			assert.Equal(t, "inv-1", letter.Event.InvoiceID)
			assert.Equal(t, 1, letter.Attempts)
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for dead letter")
		}
	})
}

func TestStart(t *testing.T) {
	t.Run("starting twice fails", func(t *testing.T) {
		svc := webhookrelay.New(webhookrelayMocks.NewSink(t))

		require.NoError(t, svc.Start(t.Context()))
		defer svc.Close()

		assert.ErrorIs(t, svc.Start(t.Context()), webhookrelay.ErrServiceAlreadyStarted)
	})

	t.Run("close is idempotent and allows a restart", func(t *testing.T) {
		svc := webhookrelay.New(webhookrelayMocks.NewSink(t))

		require.NoError(t, svc.Start(t.Context()))
		svc.Close()
		svc.Close()

		require.NoError(t, svc.Start(t.Context()))
		svc.Close()
	})
}
