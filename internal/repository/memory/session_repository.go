package memory

import (
	"time"

	"github.com/patrickmn/go-cache"

	"pdf-chatbot-be/pkg/store"
)

// SessionRepository is the process-wide user_id -> Session registry.
// go-cache guards the map internally, each Put/Get is atomic and a Put
// fully replaces any prior entry for the key. Entries never expire by
// default; the janitor interval only matters once a TTL is configured.
type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository() *SessionRepository {
	c := cache.New(cache.NoExpiration, 10*time.Minute)
	return &SessionRepository{
		cache: c,
	}
}

func (r *SessionRepository) Put(session *store.Session) {
	r.cache.Set(session.UserID, session, cache.DefaultExpiration)
}

func (r *SessionRepository) Get(userID string) (*store.Session, bool) {
	if x, found := r.cache.Get(userID); found {
		return x.(*store.Session), true
	}
	return nil, false
}

func (r *SessionRepository) Delete(userID string) {
	r.cache.Delete(userID)
}
