package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/driftlab/driftboard/internal/board/cache/memory"
	"github.com/stretchr/testify/require"
)

const testCookie = "qid"

func newTestManager(t *testing.T) (*Manager, *memory.Cache) {
	t.Helper()

	c := memory.New()
	t.Cleanup(func() { _ = c.Close() })

	store := NewCacheStore(c, time.Hour, false, []byte("0123456789abcdef0123456789abcdef"))
	return NewManager(store, testCookie), c
}

// carry copies the Set-Cookie output of a response onto a fresh request,
// simulating the browser sending the cookie back.
func carry(t *testing.T, rec *httptest.ResponseRecorder, req *http.Request) *http.Request {
	t.Helper()

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	return req
}

func TestEstablishThenUserID(t *testing.T) {
	m, _ := newTestManager(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	require.NoError(t, m.Establish(rec, req, 42))

	next := carry(t, rec, httptest.NewRequest(http.MethodGet, "/me", nil))
	userID, ok := m.UserID(next)
	require.True(t, ok)
	require.EqualValues(t, 42, userID)
}

func TestUserIDWithoutCookie(t *testing.T) {
	m, _ := newTestManager(t)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	_, ok := m.UserID(req)
	require.False(t, ok)
}

func TestUserIDWithTamperedCookie(t *testing.T) {
	m, _ := newTestManager(t)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: "forged"})
	_, ok := m.UserID(req)
	require.False(t, ok)
}

func TestDestroyClearsServerRecordAndCookie(t *testing.T) {
	m, _ := newTestManager(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	require.NoError(t, m.Establish(rec, req, 42))

	logoutReq := carry(t, rec, httptest.NewRequest(http.MethodPost, "/logout", nil))
	logoutRec := httptest.NewRecorder()
	require.NoError(t, m.Destroy(logoutRec, logoutReq))

	// Cookie cleared on the client.
	cleared := logoutRec.Result().Cookies()
	require.NotEmpty(t, cleared)
	require.Empty(t, cleared[0].Value)
	require.Negative(t, cleared[0].MaxAge)

	// Replaying the old cookie finds no session server-side.
	replay := carry(t, rec, httptest.NewRequest(http.MethodGet, "/me", nil))
	_, ok := m.UserID(replay)
	require.False(t, ok)
}

func TestSessionExpiresWithCacheTTL(t *testing.T) {
	c := memory.New()
	t.Cleanup(func() { _ = c.Close() })

	store := NewCacheStore(c, 20*time.Millisecond, false, []byte("0123456789abcdef0123456789abcdef"))
	m := NewManager(store, testCookie)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	require.NoError(t, m.Establish(rec, req, 7))

	time.Sleep(40 * time.Millisecond)

	next := carry(t, rec, httptest.NewRequest(http.MethodGet, "/me", nil))
	_, ok := m.UserID(next)
	require.False(t, ok)
}
