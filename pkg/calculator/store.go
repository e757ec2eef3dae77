package calculator

import (
	"context"
	"sync"
	"time"

	"github.com/charithe/deskcalc/pkg/brain"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.opencensus.io/stats"
	"go.uber.org/zap"
)

const (
	DefaultMaxSessions = 1024
	DefaultSessionTTL  = 30 * time.Minute
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrTooManySessions = errors.New("too many sessions")
)

// SessionStore keeps the sessions of a server in memory.
type SessionStore struct {
	maxSessions int
	ttl         time.Duration
	brainOpts   []brain.Option
	now         func() time.Time

	mu       sync.RWMutex
	sessions map[string]*Session
}

type StoreOption func(*SessionStore)

// WithMaxSessions limits the number of open sessions. Zero means no limit.
func WithMaxSessions(n int) StoreOption {
	return func(s *SessionStore) {
		s.maxSessions = n
	}
}

// WithSessionTTL sets how long a session may stay unused before ExpireIdle
// removes it. Zero disables expiry.
func WithSessionTTL(ttl time.Duration) StoreOption {
	return func(s *SessionStore) {
		s.ttl = ttl
	}
}

// WithBrainOptions sets the options every new brain is created with.
func WithBrainOptions(opts ...brain.Option) StoreOption {
	return func(s *SessionStore) {
		s.brainOpts = opts
	}
}

func withClock(now func() time.Time) StoreOption {
	return func(s *SessionStore) {
		s.now = now
	}
}

func NewSessionStore(opts ...StoreOption) *SessionStore {
	s := &SessionStore{
		maxSessions: DefaultMaxSessions,
		ttl:         DefaultSessionTTL,
		now:         time.Now,
		sessions:    make(map[string]*Session),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// NewBrain creates a brain configured like the ones backing sessions.
func (s *SessionStore) NewBrain() *brain.Brain {
	return brain.New(s.brainOpts...)
}

func (s *SessionStore) Create(ctx context.Context) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.maxSessions > 0 && len(s.sessions) >= s.maxSessions {
		return nil, errors.Wrapf(ErrTooManySessions, "limit of %d reached", s.maxSessions)
	}

	now := s.now()
	sess := &Session{
		id:       uuid.New().String(),
		created:  now,
		now:      s.now,
		brain:    s.NewBrain(),
		lastUsed: now,
	}
	s.sessions[sess.id] = sess

	stats.Record(ctx, MeasureActiveSessions.M(int64(len(s.sessions))))
	zap.S().Debugw("Session created", "session", sess.id)
	return sess, nil
}

func (s *SessionStore) Get(id string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, errors.Wrapf(ErrSessionNotFound, "session %q", id)
	}
	return sess, nil
}

func (s *SessionStore) Close(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return errors.Wrapf(ErrSessionNotFound, "session %q", id)
	}
	delete(s.sessions, id)

	stats.Record(ctx, MeasureActiveSessions.M(int64(len(s.sessions))))
	zap.S().Debugw("Session closed", "session", id)
	return nil
}

func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// ExpireIdle removes the sessions that have not been used for longer than
// the store TTL and returns how many were removed.
func (s *SessionStore) ExpireIdle(ctx context.Context) int {
	if s.ttl <= 0 {
		return 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	expired := 0
	for id, sess := range s.sessions {
		if sess.idleSince(now) > s.ttl {
			delete(s.sessions, id)
			expired++
		}
	}

	if expired > 0 {
		stats.Record(ctx,
			MeasureActiveSessions.M(int64(len(s.sessions))),
			MeasureExpiredSessions.M(int64(expired)),
		)
		zap.S().Infow("Expired idle sessions", "count", expired, "remaining", len(s.sessions))
	}

	return expired
}

// Run calls ExpireIdle every interval until the context is cancelled.
func (s *SessionStore) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.ExpireIdle(ctx)
		}
	}
}
