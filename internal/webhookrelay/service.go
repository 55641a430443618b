// Package webhookrelay delivers invoice status-change events to a merchant
// endpoint asynchronously. Events are queued in order, delivered one at a
// time with retries, and dead-lettered once every attempt is exhausted, so a
// slow or failing endpoint never blocks payment processing.
package webhookrelay

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/gabapcia/paysim/internal/pkg/logger"
	"github.com/gabapcia/paysim/internal/pkg/resilience/retry"
	"github.com/gabapcia/paysim/internal/pkg/x/chflow"
)

// ErrServiceAlreadyStarted is returned if Start is called while the relay
// is already running.
var ErrServiceAlreadyStarted = errors.New("service already started")

// defaultRetryAttempts bounds how many times one event is tried before it
// is abandoned.
const defaultRetryAttempts uint = 5

// Service is the asynchronous webhook relay.
type Service interface {
	// Enqueue accepts an event for delivery and returns immediately. The
	// queue is unbounded; events for the same invoice are delivered in the
	// order they were enqueued.
	Enqueue(event Event)

	// Start launches the delivery worker. Returns ErrServiceAlreadyStarted
	// if the relay is already running; call Close to stop it.
	Start(ctx context.Context) error

	// Close stops the delivery worker and waits for it to finish the
	// in-flight attempt. Events still queued are kept and delivered if the
	// relay is started again. Close is safe to call even if the relay was
	// never started.
	Close()
}

type service struct {
	mu    sync.Mutex
	queue []Event
	wake  chan struct{} // buffered, signals the worker that the queue is non-empty

	lifecycleMu sync.Mutex
	isStarted   bool
	closeFunc   func()

	sink        Sink
	retrier     retry.Retry
	deadLetters DeadLetterStorage
	attempts    uint
	retryDelay  time.Duration
}

var _ Service = (*service)(nil)

// Option configures the relay at construction time.
type Option func(*service)

// WithRetryAttempts sets how many delivery attempts each event gets before
// being dead-lettered.
func WithRetryAttempts(n uint) Option {
	return func(s *service) {
		if n > 0 {
			s.attempts = n
		}
	}
}

// WithRetryDelay sets the base backoff between delivery attempts.
func WithRetryDelay(d time.Duration) Option {
	return func(s *service) {
		if d > 0 {
			s.retryDelay = d
		}
	}
}

// WithDeadLetterStorage swaps the default in-memory dead letter store for a
// durable backend.
func WithDeadLetterStorage(storage DeadLetterStorage) Option {
	return func(s *service) {
		if storage != nil {
			s.deadLetters = storage
		}
	}
}

// New creates a relay that delivers events through the given sink.
func New(sink Sink, opts ...Option) *service {
	s := &service{
		wake:        make(chan struct{}, 1),
		sink:        sink,
		deadLetters: NewMemoryDeadLetterStorage(),
		attempts:    defaultRetryAttempts,
		retryDelay:  time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.retrier = retry.New(
		retry.WithAttempts(s.attempts),
		retry.WithDelay(s.retryDelay),
		retry.WithLastErrorOnly(true),
	)

	return s
}

// Enqueue implements Service.
func (s *service) Enqueue(event Event) {
	s.mu.Lock()
	s.queue = append(s.queue, event)
	s.mu.Unlock()

	// Non-blocking: one pending wake-up is enough, the worker drains the
	// whole queue every time it runs.
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// Start implements Service.
func (s *service) Start(ctx context.Context) error {
	s.lifecycleMu.Lock()
	defer s.lifecycleMu.Unlock()

	if s.isStarted {
		return ErrServiceAlreadyStarted
	}

	ctx, cancel := context.WithCancel(ctx)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		s.deliveryLoop(ctx)
	}()

	s.isStarted = true
	s.closeFunc = func() {
		cancel()
		wg.Wait()
	}

	return nil
}

// Close implements Service.
func (s *service) Close() {
	s.lifecycleMu.Lock()
	defer s.lifecycleMu.Unlock()

	if !s.isStarted {
		return
	}

	s.closeFunc()
	s.closeFunc = nil
	s.isStarted = false
}

// deliveryLoop drains the queue one event at a time until the context is
// done. A single worker keeps global delivery in enqueue order, which also
// preserves per-invoice ordering.
func (s *service) deliveryLoop(ctx context.Context) {
	// Catch up on anything enqueued before Start.
	s.drain(ctx)

	for {
		if _, ok := chflow.Receive(ctx, s.wake); !ok {
			return
		}
		s.drain(ctx)
	}
}

// drain delivers every queued event, stopping early if the context is
// canceled.
func (s *service) drain(ctx context.Context) {
	for {
		event, ok := s.dequeue()
		if !ok {
			return
		}

		if err := s.deliver(ctx, event); err != nil {
			if ctx.Err() != nil {
				// Shutting down mid-attempt: put the event back so it is
				// not lost nor dead-lettered.
				s.requeue(event)
				return
			}
			s.abandon(ctx, event, err)
		}
	}
}

// deliver pushes one event through the sink, retrying with backoff.
func (s *service) deliver(ctx context.Context, event Event) error {
	return s.retrier.Execute(ctx, func() error {
		return s.sink.Deliver(ctx, event)
	})
}

// abandon gives up on an event and hands it to the dead letter store.
func (s *service) abandon(ctx context.Context, event Event, cause error) {
	logger.Error(ctx, "webhook delivery abandoned",
		"invoiceId", event.InvoiceID,
		"eventType", event.EventType,
		"attempts", s.attempts,
		"error", cause.Error(),
	)

	letter := DeadLetter{
		Event:    event,
		Attempts: int(s.attempts),
		LastErr:  cause.Error(),
		FailedAt: time.Now().UTC(),
	}
	if err := s.deadLetters.SaveDeadLetter(ctx, letter); err != nil {
		logger.Error(ctx, "failed to save webhook dead letter",
			"invoiceId", event.InvoiceID,
			"error", err.Error(),
		)
	}
}

// dequeue pops the oldest queued event.
func (s *service) dequeue() (Event, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.queue) == 0 {
		return Event{}, false
	}

	event := s.queue[0]
	s.queue = s.queue[1:]
	return event, true
}

// requeue puts an event back at the head of the queue.
func (s *service) requeue(event Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.queue = append([]Event{event}, s.queue...)
}
