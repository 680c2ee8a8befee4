package mw

import (
	"bytes"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
)

// CacheHeader reports whether a response came from the cache.
const CacheHeader = "X-Cache"

// snapshot is a stored response.
type snapshot struct {
	status int
	header http.Header
	body   []byte
}

// perRequest reports headers that belong to the live request rather than
// the stored response. CORS middleware sets these for the caller's Origin.
func perRequest(name string) bool {
	switch name {
	case RequestIDHeader, CacheHeader, "Vary":
		return true
	}
	return strings.HasPrefix(name, "Access-Control-")
}

// replay writes the stored response over the headers already set for the
// live request.
func (s snapshot) replay(w gin.ResponseWriter) {
	h := w.Header()
	for name, values := range s.header {
		if perRequest(name) {
			continue
		}
		h[name] = values
	}
	h.Set(CacheHeader, "HIT")
	w.WriteHeader(s.status)
	_, _ = w.Write(s.body)
}

// recorder tees the body written by downstream handlers.
type recorder struct {
	gin.ResponseWriter
	buf bytes.Buffer
}

func (r *recorder) Write(b []byte) (int, error) {
	r.buf.Write(b)
	return r.ResponseWriter.Write(b)
}

func (r *recorder) WriteString(s string) (int, error) {
	r.buf.WriteString(s)
	return r.ResponseWriter.WriteString(s)
}

func (r *recorder) snapshot() (snapshot, bool) {
	code := r.Status()
	if code < 200 || code >= 300 {
		return snapshot{}, false
	}
	return snapshot{status: code, header: r.Header().Clone(), body: bytes.Clone(r.buf.Bytes())}, true
}

// Cache serves GET responses from an in-memory store for ttl. Only 2xx
// responses are stored, keyed by path and query.
func Cache(store *cache.Cache, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		key := c.Request.URL.RequestURI()
		if hit, ok := store.Get(key); ok {
			hit.(snapshot).replay(c.Writer)
			c.Abort()
			return
		}

		c.Header(CacheHeader, "MISS")
		rec := &recorder{ResponseWriter: c.Writer}
		c.Writer = rec
		c.Next()

		if snap, ok := rec.snapshot(); ok {
			store.Set(key, snap, ttl)
		}
	}
}
