package session

import (
	"encoding/base32"
	"errors"
	"net/http"
	"time"

	"github.com/driftlab/driftboard/internal/board/cache"
	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
)

// keyPrefix namespaces session records in the shared cache.
const keyPrefix = "sess:"

// CacheStore is a server-side session store backed by the TTL cache. Only an
// encoded session ID travels in the cookie; the session values live in the
// cache under sess:<id> and expire with the cache entry.
//
// CacheStore implements the sessions.Store interface.
type CacheStore struct {
	Codecs  []securecookie.Codec
	Options *sessions.Options

	cache cache.Cache
	ttl   time.Duration
}

// NewCacheStore returns a CacheStore writing sessions to c with the given
// lifetime.
//
// Keys are defined in pairs to allow key rotation: the first key in a pair
// authenticates the cookie and the second, optional one encrypts it. An
// authentication key of 32 or 64 bytes is recommended.
func NewCacheStore(c cache.Cache, ttl time.Duration, secure bool, keyPairs ...[]byte) *CacheStore {
	maxAge := int(ttl.Seconds())

	codecs := securecookie.CodecsFromPairs(keyPairs...)
	for _, codec := range codecs {
		if sc, ok := codec.(*securecookie.SecureCookie); ok {
			sc.MaxAge(maxAge)
		}
	}

	return &CacheStore{
		Codecs: codecs,
		Options: &sessions.Options{
			Path:     "/",
			MaxAge:   maxAge,
			Secure:   secure,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode, // csrf
		},
		cache: c,
		ttl:   ttl,
	}
}

// newSessionID returns a new session ID: a 32 byte base32 string, the same
// form the gorilla/sessions reference implementation uses.
func newSessionID() string {
	return base32.StdEncoding.EncodeToString(securecookie.GenerateRandomKey(32))
}

// Get returns a session for the given name after adding it to the registry.
// A new session is returned if none exists; check IsNew to distinguish.
//
// This function satisfies the sessions.Store interface.
func (s *CacheStore) Get(r *http.Request, name string) (*sessions.Session, error) {
	return sessions.GetRegistry(r).Get(s, name)
}

// New returns a session for the given name without adding it to the
// registry. Per the sessions.Store contract it never returns a nil session,
// even on error.
//
// This function satisfies the sessions.Store interface.
func (s *CacheStore) New(r *http.Request, name string) (*sessions.Session, error) {
	session := sessions.NewSession(s, name)
	opts := *s.Options
	session.Options = &opts
	session.IsNew = true
	session.ID = newSessionID()

	c, err := r.Cookie(name)
	if errors.Is(err, http.ErrNoCookie) {
		return session, nil
	} else if err != nil {
		return session, err
	}

	// The encoded session ID travels in the cookie. Decode it and look the
	// session up in the cache.
	err = securecookie.DecodeMulti(name, c.Value, &session.ID, s.Codecs...)
	if err != nil {
		return session, err
	}

	encoded, err := s.cache.Get(r.Context(), keyPrefix+session.ID)
	switch {
	case err == nil:
		session.IsNew = false
		err = securecookie.DecodeMulti(session.Name(), string(encoded),
			&session.Values, s.Codecs...)
		if err != nil {
			return session, err
		}
	case errors.Is(err, cache.ErrCacheMiss):
		// Expired or destroyed server-side; the fresh session stands.
	default:
		return session, err
	}

	return session, nil
}

// Save writes the session to the cache and updates the response cookie with
// the encoded session ID. A session whose Options.MaxAge is <= 0 is deleted
// from the cache; the cookie is cleared even when that deletion fails, so a
// client never keeps a cookie the server tried to revoke.
//
// This function satisfies the sessions.Store interface.
func (s *CacheStore) Save(r *http.Request, w http.ResponseWriter, session *sessions.Session) error {
	if session.Options.MaxAge <= 0 {
		err := s.cache.Del(r.Context(), keyPrefix+session.ID)
		http.SetCookie(w, sessions.NewCookie(session.Name(), "", session.Options))
		return err
	}

	encodedValues, err := securecookie.EncodeMulti(session.Name(),
		session.Values, s.Codecs...)
	if err != nil {
		return err
	}
	err = s.cache.Set(r.Context(), keyPrefix+session.ID, []byte(encodedValues), s.ttl)
	if err != nil {
		return err
	}

	encodedID, err := securecookie.EncodeMulti(session.Name(), session.ID,
		s.Codecs...)
	if err != nil {
		return err
	}
	http.SetCookie(w, sessions.NewCookie(session.Name(), encodedID, session.Options))

	return nil
}
