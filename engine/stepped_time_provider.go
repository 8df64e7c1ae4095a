package engine

import (
	"sync"
	"time"
)

// SteppedTimeProvider is a manually driven clock
// Headless runs step it once per tick; tests set or advance it directly
type SteppedTimeProvider struct {
	mu   sync.RWMutex
	now  time.Time
	step time.Duration
}

// NewSteppedTimeProvider starts at start and advances by step on each Step
func NewSteppedTimeProvider(start time.Time, step time.Duration) *SteppedTimeProvider {
	return &SteppedTimeProvider{now: start, step: step}
}

func (s *SteppedTimeProvider) Now() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.now
}

// Set jumps to t
func (s *SteppedTimeProvider) Set(t time.Time) {
	s.mu.Lock()
	s.now = t
	s.mu.Unlock()
}

// Advance moves forward by d
func (s *SteppedTimeProvider) Advance(d time.Duration) {
	s.mu.Lock()
	s.now = s.now.Add(d)
	s.mu.Unlock()
}

// Step advances by the configured step and returns the new time
func (s *SteppedTimeProvider) Step() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = s.now.Add(s.step)
	return s.now
}
