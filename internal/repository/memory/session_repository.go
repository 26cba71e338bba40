package memory

import (
	"sync"

	"dp-ai-be/pkg/store"

	"github.com/patrickmn/go-cache"
)

// SessionRepository holds per-identity conversation state. Records live for
// the process lifetime (no TTL) and are removed only by an explicit Delete.
//
// All mutation goes through the repository mutex so append-and-truncate is an
// atomic read-modify-write per key: the history bound holds even when two
// requests for the same identity race past the completion call.
type SessionRepository struct {
	mu         sync.Mutex
	cache      *cache.Cache
	maxHistory int
}

func NewSessionRepository(maxHistory int) *SessionRepository {
	return &SessionRepository{
		cache:      cache.New(cache.NoExpiration, 0),
		maxHistory: maxHistory,
	}
}

// GetOrCreate lazily creates the session for key and returns a snapshot of it.
// displayName is only applied on creation; later changes come from explicit
// self-disclosure.
func (r *SessionRepository) GetOrCreate(key, displayName string) *store.Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	sess := r.get(key)
	if sess == nil {
		sess = &store.Session{Key: key, DisplayName: displayName}
		r.cache.Set(key, sess, cache.NoExpiration)
	}
	return snapshot(sess)
}

// Get returns a snapshot of the session for key, if present.
func (r *SessionRepository) Get(key string) (*store.Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sess := r.get(key)
	if sess == nil {
		return nil, false
	}
	return snapshot(sess), true
}

// SetDisplayName records a self-disclosed name on an existing session.
func (r *SessionRepository) SetDisplayName(key, name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if sess := r.get(key); sess != nil {
		sess.DisplayName = name
	}
}

// AddLike appends a preference with exact-string dedup.
func (r *SessionRepository) AddLike(key, like string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if sess := r.get(key); sess != nil {
		sess.AddLike(like)
	}
}

// AppendTurn appends to history and drops the oldest entries once the bound
// is exceeded. FIFO truncation, never reordered.
func (r *SessionRepository) AppendTurn(key string, turn store.Turn) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sess := r.get(key)
	if sess == nil {
		sess = &store.Session{Key: key}
		r.cache.Set(key, sess, cache.NoExpiration)
	}

	sess.History = append(sess.History, turn)
	if overflow := len(sess.History) - r.maxHistory; overflow > 0 {
		sess.History = sess.History[overflow:]
	}
}

// Delete removes the record entirely (logout).
func (r *SessionRepository) Delete(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.cache.Delete(key)
}

func (r *SessionRepository) get(key string) *store.Session {
	if x, found := r.cache.Get(key); found {
		return x.(*store.Session)
	}
	return nil
}

func snapshot(sess *store.Session) *store.Session {
	cp := &store.Session{
		Key:         sess.Key,
		DisplayName: sess.DisplayName,
		Likes:       append([]string(nil), sess.Likes...),
		History:     append([]store.Turn(nil), sess.History...),
	}
	return cp
}
