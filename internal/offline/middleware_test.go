package offline

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeManager struct {
	ready   bool
	entries map[string]*Response
	matched int
}

func (m *fakeManager) Install(context.Context) error  { return nil }
func (m *fakeManager) Activate(context.Context) error { return nil }
func (m *fakeManager) Run(context.Context) error      { return nil }

func (m *fakeManager) Fetch(ctx context.Context, req *http.Request) (*Response, error) {
	resp, _, err := m.Match(ctx, req)
	return resp, err
}

func (m *fakeManager) Match(_ context.Context, req *http.Request) (*Response, bool, error) {
	m.matched++
	resp, ok := m.entries[CacheKey(req.URL)]
	return resp, ok, nil
}

func (m *fakeManager) Status() Status {
	return Status{Ready: m.ready}
}

func newInterceptServer(m ManagerInterface) *echo.Echo {
	e := echo.New()
	e.Use(Intercept(m))
	e.GET("/*", func(c echo.Context) error {
		return c.String(http.StatusOK, "network")
	})
	e.POST("/*", func(c echo.Context) error {
		return c.String(http.StatusCreated, "network")
	})
	return e
}

func cachedIndex() map[string]*Response {
	return map[string]*Response{
		"/": {
			URL:        "/",
			StatusCode: http.StatusOK,
			Header:     http.Header{"Content-Type": []string{"text/html"}},
			Body:       []byte("<html>cached</html>"),
		},
		"/api/expenses": {URL: "/api/expenses", StatusCode: http.StatusOK, Body: []byte("stale")},
	}
}

func TestIntercept_ServesHitVerbatim(t *testing.T) {
	m := &fakeManager{ready: true, entries: cachedIndex()}
	e := newInterceptServer(m)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "<html>cached</html>", rec.Body.String())
	assert.Equal(t, "text/html", rec.Header().Get("Content-Type"))
	assert.Equal(t, "hit", rec.Header().Get("X-Offline-Cache"))
}

func TestIntercept_MissFallsThrough(t *testing.T) {
	m := &fakeManager{ready: true, entries: cachedIndex()}
	e := newInterceptServer(m)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/js/app.js", nil))

	assert.Equal(t, "network", rec.Body.String())
	assert.Empty(t, rec.Header().Get("X-Offline-Cache"))
}

func TestIntercept_NotReadyPassesThrough(t *testing.T) {
	m := &fakeManager{ready: false, entries: cachedIndex()}
	e := newInterceptServer(m)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, "network", rec.Body.String())
	assert.Zero(t, m.matched)
}

func TestIntercept_SkipsAPIAndNonGet(t *testing.T) {
	m := &fakeManager{ready: true, entries: cachedIndex()}
	e := newInterceptServer(m)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/expenses", nil))
	assert.Equal(t, "network", rec.Body.String())

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
	assert.Equal(t, http.StatusCreated, rec.Code)

	assert.Zero(t, m.matched)
}
