// Package session keeps per-client state in a signed cookie: the logged-in
// username, pending flash messages and the CSRF token.
package session

import (
	"crypto/subtle"

	"github.com/google/uuid"
)

// Session is the decoded cookie state. The zero Username means Anonymous.
type Session struct {
	Username  string
	CSRFToken string
	flashes   []string
}

// newAnonymous starts a fresh session with its own CSRF token.
func newAnonymous() *Session {
	return &Session{CSRFToken: uuid.NewString()}
}

func (s *Session) LoggedIn() bool {
	return s.Username != ""
}

// Login moves the session to Authenticated(username) under a new CSRF token.
func (s *Session) Login(username string) {
	s.Username = username
	s.CSRFToken = uuid.NewString()
}

// Logout moves the session back to Anonymous under a new CSRF token;
// pending flashes are kept.
func (s *Session) Logout() {
	s.Username = ""
	s.CSRFToken = uuid.NewString()
}

// IsOwner reports whether the session is authenticated as owner.
func (s *Session) IsOwner(owner string) bool {
	return s.LoggedIn() && s.Username == owner
}

func (s *Session) AddFlash(msg string) {
	s.flashes = append(s.flashes, msg)
}

// PopFlashes returns pending flashes and clears them.
func (s *Session) PopFlashes() []string {
	out := s.flashes
	s.flashes = nil
	return out
}

// ValidCSRF compares token with the session's CSRF token in constant time.
func (s *Session) ValidCSRF(token string) bool {
	if s.CSRFToken == "" || token == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(s.CSRFToken), []byte(token)) == 1
}
