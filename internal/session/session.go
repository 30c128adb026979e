// Package session carries per-verification-flow state: a stable id for
// log correlation and explicit diagnostic counters. Each flow owns its
// session; there is no ambient process-wide state.
package session

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Session is the per-flow context object.
type Session struct {
	ID string

	l *zap.Logger

	mu       sync.Mutex
	counters map[string]int
}

// New creates a session with a fresh id. The logger is tagged with the
// session id so interleaved flows stay diagnosable.
func New(l *zap.Logger) *Session {
	id := uuid.NewString()
	return &Session{
		ID:       id,
		l:        l.With(zap.String("session", id)),
		counters: make(map[string]int),
	}
}

// Logger returns the session-tagged logger.
func (s *Session) Logger() *zap.Logger {
	return s.l
}

// Count increments the named diagnostic counter.
func (s *Session) Count(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counters[name]++
}

// Counter returns the current value of the named counter.
func (s *Session) Counter(name string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counters[name]
}

// Counters returns a copy of all counters.
func (s *Session) Counters() map[string]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]int, len(s.counters))
	for k, v := range s.counters {
		out[k] = v
	}
	return out
}
