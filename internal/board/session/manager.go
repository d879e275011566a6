// Package session binds request cookies to server-side identity records in
// the cache. The cookie value is opaque to clients; the only session value
// kept server-side is the user id.
package session

import (
	"net/http"
	"time"
)

// sessionValueUserID is the key for the user id inside the session values
// map.
const sessionValueUserID = "user_id"

// Manager is the request-scoped session API the handlers use.
type Manager struct {
	store      *CacheStore
	cookieName string
}

// NewManager builds a Manager over an already-configured store. cookieName
// is the client-visible cookie name.
func NewManager(store *CacheStore, cookieName string) *Manager {
	return &Manager{store: store, cookieName: cookieName}
}

// Establish binds the request's session cookie to userID, minting a new
// session when the request carries none.
func (m *Manager) Establish(w http.ResponseWriter, r *http.Request, userID int64) error {
	session, err := m.store.Get(r, m.cookieName)
	if err != nil {
		// A malformed or stale cookie still yields a usable new session.
		session, _ = m.store.New(r, m.cookieName)
	}

	session.Values[sessionValueUserID] = userID
	return m.store.Save(r, w, session)
}

// UserID returns the user id bound to the request's session, or
// (0, false) when there is no valid session.
func (m *Manager) UserID(r *http.Request) (int64, bool) {
	session, err := m.store.Get(r, m.cookieName)
	if err != nil || session.IsNew {
		return 0, false
	}

	userID, ok := session.Values[sessionValueUserID].(int64)
	if !ok {
		return 0, false
	}
	return userID, true
}

// Destroy invalidates the request's session. The client cookie is cleared
// even when the cache-side deletion fails; the error is returned so callers
// can report the logout as failed.
func (m *Manager) Destroy(w http.ResponseWriter, r *http.Request) error {
	session, err := m.store.Get(r, m.cookieName)
	if err != nil {
		// No decodable session; clear the cookie anyway.
		http.SetCookie(w, &http.Cookie{
			Name:     m.cookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			Expires:  time.Unix(0, 0),
			HttpOnly: true,
		})
		return nil
	}

	// Saving with a negative MaxAge deletes the cache record and clears the
	// cookie.
	session.Options.MaxAge = -1
	return m.store.Save(r, w, session)
}
