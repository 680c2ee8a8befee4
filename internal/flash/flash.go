package flash

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// CookieName is the cookie holding the flash session id.
const CookieName = "sr_flash"

const sessionKey = "flash.session"

// Kind is the toast style.
type Kind string

const (
	Success Kind = "success"
	Error   Kind = "error"
)

// Toast is a transient notification shown at the top of a page.
type Toast struct {
	Kind         Kind
	Text         string
	DismissAfter time.Duration
}

// DismissMillis is DismissAfter in milliseconds, for data attributes.
func (t Toast) DismissMillis() int64 {
	return t.DismissAfter.Milliseconds()
}

// Store keeps at most one pending toast per session. A toast expires after
// its dismiss duration whether or not it was shown.
type Store struct {
	mu     sync.Mutex // makes Take a single pop
	toasts *cache.Cache
	ttl    time.Duration
}

// NewStore creates a store whose toasts dismiss after ttl.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		toasts: cache.New(ttl, time.Minute),
		ttl:    ttl,
	}
}

// New builds a toast with the store's dismiss duration without queuing it.
func (s *Store) New(kind Kind, text string) Toast {
	return Toast{Kind: kind, Text: text, DismissAfter: s.ttl}
}

// Show queues a toast for the session, replacing any pending one.
func (s *Store) Show(session string, kind Kind, text string) Toast {
	t := s.New(kind, text)
	s.mu.Lock()
	s.toasts.Set(session, t, s.ttl)
	s.mu.Unlock()
	return t
}

// Take pops the pending toast for the session. Concurrent requests of one
// session see it at most once.
func (s *Store) Take(session string) (Toast, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.toasts.Get(session)
	if !ok {
		return Toast{}, false
	}
	s.toasts.Delete(session)
	return v.(Toast), true
}

// Clear drops the pending toast for the session.
func (s *Store) Clear(session string) {
	s.mu.Lock()
	s.toasts.Delete(session)
	s.mu.Unlock()
}

// Session returns the flash session id of the request, issuing a new
// cookie when there is none.
func Session(c *gin.Context) string {
	if id := c.GetString(sessionKey); id != "" {
		return id
	}
	id, err := c.Cookie(CookieName)
	if err == nil {
		_, err = uuid.Parse(id)
	}
	if err != nil {
		id = uuid.NewString()
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(CookieName, id, 0, "/", "", false, true)
	}
	c.Set(sessionKey, id)
	return id
}
