package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Store keeps live sessions in memory. Idle sessions expire after the TTL and
// the least recently used ones are evicted past the size limit.
type Store struct {
	mu    sync.Mutex // serializes GetOrCreate
	cache *expirable.LRU[string, *Session]
}

// NewStore creates an in-memory session store.
func NewStore(maxSessions int, ttl time.Duration) *Store {
	if maxSessions <= 0 {
		maxSessions = DefaultMaxSessions
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		cache: expirable.NewLRU[string, *Session](maxSessions, nil, ttl),
	}
}

// Create starts a new session with a random id.
func (st *Store) Create() *Session {
	s := New(uuid.NewString())
	st.cache.Add(s.ID(), s)
	return s
}

// Get returns the session with the given id and refreshes its TTL.
func (st *Store) Get(id string) (*Session, error) {
	s, ok := st.cache.Get(id)
	if !ok {
		return nil, ErrSessionNotFound
	}
	st.cache.Add(id, s)
	return s, nil
}

// GetOrCreate returns the session keyed by id, creating it when absent.
// Channels with their own conversation key (a Telegram chat) use this.
func (st *Store) GetOrCreate(id string) *Session {
	st.mu.Lock()
	defer st.mu.Unlock()

	if s, ok := st.cache.Get(id); ok {
		st.cache.Add(id, s)
		return s
	}
	s := New(id)
	st.cache.Add(id, s)
	return s
}

// Delete drops a session. It reports whether the session existed.
func (st *Store) Delete(id string) bool {
	return st.cache.Remove(id)
}

// Len returns the number of live sessions.
func (st *Store) Len() int {
	return st.cache.Len()
}
