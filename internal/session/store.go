package session

import (
	"sync"
	"time"

	"RiskBoard/internal/domain/models"
)

type entry struct {
	mu   sync.Mutex // serializes render cycles; guards sess
	sess models.Session
	exp  time.Time // guarded by Store.mu, never by entry.mu
}

// Store keeps per-visitor sessions in process memory with a TTL. Sessions
// are never persisted; an expired or unknown id simply starts a fresh
// unauthenticated session.
type Store struct {
	mu  sync.Mutex
	m   map[string]*entry
	ttl time.Duration
}

// NewStore creates a session store. ttl <= 0 means sessions live for the
// process lifetime.
func NewStore(ttl time.Duration) *Store {
	return &Store{m: make(map[string]*entry), ttl: ttl}
}

// WithSession runs fn with the session for id and stores the returned
// value. Calls for the same id are serialized, so a render cycle is never
// re-entered while one is in flight; distinct sessions proceed in parallel.
func (s *Store) WithSession(id string, fn func(models.Session) models.Session) {
	e := s.acquire(id)
	e.mu.Lock()
	defer e.mu.Unlock()

	e.sess = fn(e.sess)
}

// Peek returns a copy of the current session without running a cycle.
func (s *Store) Peek(id string) (models.Session, bool) {
	s.mu.Lock()
	e, ok := s.m[id]
	if !ok || s.expired(e) {
		s.mu.Unlock()
		return models.Session{}, false
	}
	s.mu.Unlock()

	e.mu.Lock()
	defer e.mu.Unlock()
	return e.sess, true
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, e := range s.m {
		if !s.expired(e) {
			n++
		}
	}
	return n
}

func (s *Store) acquire(id string) *entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.m[id]
	if !ok || s.expired(e) {
		e = &entry{sess: models.NewSession()}
		s.m[id] = e
	}

	// the sliding window advances when the cycle starts; exp stays under
	// the store lock so sweeps and expiry checks never race a cycle
	if s.ttl > 0 {
		e.exp = time.Now().Add(s.ttl)
	}

	// lazy sweep keeps the map bounded without a background goroutine
	if len(s.m) > 1024 {
		for k, v := range s.m {
			if s.expired(v) {
				delete(s.m, k)
			}
		}
	}

	return e
}

func (s *Store) expired(e *entry) bool {
	return !e.exp.IsZero() && time.Now().After(e.exp)
}
