package web

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"sync"
	"time"
)

const sessionCookie = "secviz_session"

// sessionStore keeps API keys entered through the form, scoped to a browser
// session. Keys live in memory only and expire with the TTL; nothing is
// persisted.
type sessionStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]sessionEntry
}

type sessionEntry struct {
	apiKey  string
	expires time.Time
}

func newSessionStore(ttl time.Duration) *sessionStore {
	return &sessionStore{
		ttl:     ttl,
		entries: make(map[string]sessionEntry),
	}
}

func (s *sessionStore) Get(token string) (string, bool) {
	if token == "" {
		return "", false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[token]
	if !ok || time.Now().After(e.expires) {
		delete(s.entries, token)
		return "", false
	}
	return e.apiKey, true
}

func (s *sessionStore) Put(token, apiKey string) {
	now := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	for t, e := range s.entries {
		if now.After(e.expires) {
			delete(s.entries, t)
		}
	}
	s.entries[token] = sessionEntry{apiKey: apiKey, expires: now.Add(s.ttl)}
}

func newSessionToken() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return ""
	}
	return hex.EncodeToString(b)
}

// sessionToken returns the request's session token, minting a new one (and
// setting the cookie) if absent.
func sessionToken(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(sessionCookie); err == nil && c.Value != "" {
		return c.Value
	}
	token := newSessionToken()
	if token == "" {
		return ""
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return token
}
