package webhookrelay

import (
	"context"
	"sync"
)

// DeadLetterStorage persists events whose delivery was abandoned so they can
// be inspected or replayed out of band.
type DeadLetterStorage interface {
	// SaveDeadLetter records one abandoned event.
	//
	// ctx controls cancellation and deadlines for any underlying I/O.
	SaveDeadLetter(ctx context.Context, letter DeadLetter) error
}

// memoryDeadLetterStorage keeps abandoned events in memory. It is the
// default storage when no durable backend is configured.
type memoryDeadLetterStorage struct {
	mu      sync.Mutex
	letters []DeadLetter
}

var _ DeadLetterStorage = (*memoryDeadLetterStorage)(nil)

// NewMemoryDeadLetterStorage creates an in-memory dead letter store.
func NewMemoryDeadLetterStorage() *memoryDeadLetterStorage {
	return new(memoryDeadLetterStorage)
}

// SaveDeadLetter implements DeadLetterStorage.
func (s *memoryDeadLetterStorage) SaveDeadLetter(_ context.Context, letter DeadLetter) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.letters = append(s.letters, letter)
	return nil
}

// DeadLetters returns a copy of every abandoned event saved so far, oldest
// first.
func (s *memoryDeadLetterStorage) DeadLetters() []DeadLetter {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]DeadLetter, len(s.letters))
	copy(out, s.letters)
	return out
}
