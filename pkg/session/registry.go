package session

import (
	"sync"
	"sync/atomic"
	"time"

	"onlinetracker/pkg/generator"
)

// DefaultTTL is the maximum idle interval before a session is eligible
// for eviction by Sweep.
const DefaultTTL = 60 * time.Second

// InMemoryRegistry keeps the session table and a per-user session
// refcount behind a single mutex. The distinct-user count is mirrored
// into an atomic so Count never takes the lock; writers update it
// before releasing.
type InMemoryRegistry struct {
	mu       sync.Mutex
	sessions map[string]*Session
	userRefs map[string]int
	online   atomic.Int64

	ttl time.Duration
	now func() time.Time
	ids generator.IDSource
}

type Option func(*InMemoryRegistry)

// WithTTL overrides the idle interval after which Sweep evicts a session.
func WithTTL(ttl time.Duration) Option {
	return func(r *InMemoryRegistry) {
		if ttl > 0 {
			r.ttl = ttl
		}
	}
}

// WithClock overrides the time source. Tests inject a manual clock here.
func WithClock(now func() time.Time) Option {
	return func(r *InMemoryRegistry) {
		if now != nil {
			r.now = now
		}
	}
}

// WithIDSource overrides how session ids are minted.
func WithIDSource(ids generator.IDSource) Option {
	return func(r *InMemoryRegistry) {
		if ids != nil {
			r.ids = ids
		}
	}
}

func NewInMemoryRegistry(opts ...Option) *InMemoryRegistry {
	r := &InMemoryRegistry{
		sessions: make(map[string]*Session),
		userRefs: make(map[string]int),
		ttl:      DefaultTTL,
		now:      time.Now,
		ids:      generator.Legacy{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Login mints a session for userID and returns its id. A user may hold
// any number of concurrent sessions; only the first one changes the
// online count.
func (r *InMemoryRegistry) Login(userID string) (string, error) {
	if userID == "" {
		return "", ErrEmptyUserID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.ids.NewSessionID()
	for _, taken := r.sessions[id]; taken; _, taken = r.sessions[id] {
		id = r.ids.NewSessionID()
	}

	r.sessions[id] = &Session{ID: id, UserID: userID, LastActive: r.now()}
	r.userRefs[userID]++
	r.online.Store(int64(len(r.userRefs)))

	return id, nil
}

// Heartbeat refreshes the session's last-active time. Returns false for
// an unknown id; it never creates sessions.
func (r *InMemoryRegistry) Heartbeat(sessionID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[sessionID]
	if !ok {
		return false
	}
	s.LastActive = r.now()
	return true
}

// Logout removes the session if present. Idempotent: unknown ids are a
// silent no-op.
func (r *InMemoryRegistry) Logout(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[sessionID]
	if !ok {
		return
	}
	r.removeLocked(s)
	r.online.Store(int64(len(r.userRefs)))
}

// Validate reports whether the session exists. It does not refresh it.
func (r *InMemoryRegistry) Validate(sessionID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.sessions[sessionID]
	return ok
}

// Count returns the number of distinct online users without taking the
// registry lock.
func (r *InMemoryRegistry) Count() int {
	return int(r.online.Load())
}

// ListUsers snapshots the distinct user ids currently online, in no
// particular order.
func (r *InMemoryRegistry) ListUsers() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	users := make([]string, 0, len(r.userRefs))
	for userID := range r.userRefs {
		users = append(users, userID)
	}
	return users
}

// Sweep evicts every session idle for longer than the TTL and returns
// how many it removed.
func (r *InMemoryRegistry) Sweep(now time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	evicted := 0
	for _, s := range r.sessions {
		if now.Sub(s.LastActive) > r.ttl {
			r.removeLocked(s)
			evicted++
		}
	}
	if evicted > 0 {
		r.online.Store(int64(len(r.userRefs)))
	}
	return evicted
}

// removeLocked drops a session and, when it was the user's last one,
// the user's online membership. Caller holds the lock.
func (r *InMemoryRegistry) removeLocked(s *Session) {
	delete(r.sessions, s.ID)
	r.userRefs[s.UserID]--
	if r.userRefs[s.UserID] <= 0 {
		delete(r.userRefs, s.UserID)
	}
}
