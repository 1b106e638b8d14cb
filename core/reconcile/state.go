package reconcile

import (
	"context"
	"sync"
	"time"
)

// StateStore keeps the per-track retry state: the last attempt time and the last error.
// Implementations must be safe for concurrent use.
type StateStore interface {
	// RecordSuccess stores an attempt and clears any error for name.
	RecordSuccess(ctx context.Context, name string, at time.Time) error
	// RecordFailure stores an attempt and its error message for name.
	RecordFailure(ctx context.Context, name string, at time.Time, message string) error
	// All returns the state of every known track.
	All(ctx context.Context) (map[string]Attempt, error)
	// ClearErrors removes the errors of the given names, or of every track when none
	// are given. It returns how many errors were removed.
	ClearErrors(ctx context.Context, names ...string) (int, error)
}

// MemoryStateStore keeps retry state for the lifetime of the process.
type MemoryStateStore struct {
	mu       sync.RWMutex
	attempts map[string]Attempt
}

// NewMemoryStateStore creates an empty MemoryStateStore.
func NewMemoryStateStore() *MemoryStateStore {
	return &MemoryStateStore{attempts: make(map[string]Attempt)}
}

func (s *MemoryStateStore) RecordSuccess(ctx context.Context, name string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attempts[name] = Attempt{LastAttempt: at}
	return nil
}

func (s *MemoryStateStore) RecordFailure(ctx context.Context, name string, at time.Time, message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attempts[name] = Attempt{LastAttempt: at, LastError: message}
	return nil
}

func (s *MemoryStateStore) All(ctx context.Context) (map[string]Attempt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]Attempt, len(s.attempts))
	for name, a := range s.attempts {
		out[name] = a
	}
	return out, nil
}

func (s *MemoryStateStore) ClearErrors(ctx context.Context, names ...string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cleared := 0
	drop := func(name string) {
		if a, ok := s.attempts[name]; ok && a.LastError != "" {
			a.LastError = ""
			s.attempts[name] = a
			cleared++
		}
	}

	if len(names) == 0 {
		for name := range s.attempts {
			drop(name)
		}
		return cleared, nil
	}
	for _, name := range names {
		drop(name)
	}
	return cleared, nil
}
