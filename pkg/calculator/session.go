package calculator

import (
	"sync"
	"time"

	"github.com/charithe/deskcalc/pkg/brain"
)

// Result is the state of a brain after an operation, as shown to a user.
type Result struct {
	OK      bool
	Value   float64
	History string
	Program []string
}

func resultOf(b *brain.Brain, value float64, ok bool) Result {
	return Result{
		OK:      ok,
		Value:   value,
		History: b.HistoryText(),
		Program: b.Program(),
	}
}

// Session is a brain hosted by the server on behalf of one client. All access
// to the brain goes through Do so that every push and the evaluation that
// follows it happen under the same lock.
type Session struct {
	id      string
	created time.Time
	now     func() time.Time

	mu       sync.Mutex
	brain    *brain.Brain
	lastUsed time.Time
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) Created() time.Time {
	return s.created
}

// Do runs fn against the session brain and reports the brain state afterwards.
func (s *Session) Do(fn func(b *brain.Brain) (float64, bool)) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastUsed = s.now()
	value, ok := fn(s.brain)
	return resultOf(s.brain, value, ok)
}

func (s *Session) idleSince(t time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return t.Sub(s.lastUsed)
}
