package flash

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_ShowTake(t *testing.T) {
	s := NewStore(time.Minute)

	_, ok := s.Take("a")
	assert.False(t, ok)

	s.Show("a", Success, "first")
	s.Show("a", Error, "second")
	s.Show("b", Success, "other session")

	toast, ok := s.Take("a")
	require.True(t, ok)
	assert.Equal(t, Toast{Kind: Error, Text: "second", DismissAfter: time.Minute}, toast, "re-trigger supersedes")
	assert.Equal(t, int64(60000), toast.DismissMillis())

	_, ok = s.Take("a")
	assert.False(t, ok, "a toast is shown once")

	s.Clear("b")
	_, ok = s.Take("b")
	assert.False(t, ok)
}

func TestStore_TakeConcurrent(t *testing.T) {
	s := NewStore(time.Minute)
	s.Show("a", Success, "once")

	var taken atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, ok := s.Take("a"); ok {
				taken.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), taken.Load())
}

func TestStore_Expires(t *testing.T) {
	s := NewStore(30 * time.Millisecond)
	s.Show("a", Success, "gone soon")
	time.Sleep(60 * time.Millisecond)

	_, ok := s.Take("a")
	assert.False(t, ok)
}

func TestSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var first string
	r := gin.New()
	r.GET("/", func(c *gin.Context) {
		id := Session(c)
		assert.Equal(t, id, Session(c), "stable within a request")
		c.String(http.StatusOK, id)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	first = w.Body.String()
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.Equal(t, first, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, first, w.Body.String())
	assert.Empty(t, w.Result().Cookies(), "existing session is reused")

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "forged"})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.NotEqual(t, "forged", w.Body.String())
}
