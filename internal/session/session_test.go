package session

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	m, err := NewManager(Options{Secret: "test-secret"})
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	return m
}

func TestNewManager_RequiresSecret(t *testing.T) {
	if _, err := NewManager(Options{}); err != ErrNoSecret {
		t.Fatalf("expected ErrNoSecret, got %v", err)
	}
}

func TestSession_StateMachine(t *testing.T) {
	s := newAnonymous()
	if s.LoggedIn() || s.IsOwner("alice1") {
		t.Fatalf("anonymous session must not own anything")
	}
	s.Login("alice1")
	if !s.IsOwner("alice1") {
		t.Fatalf("expected alice1 to own her resources")
	}
	if s.IsOwner("bobby1") {
		t.Fatalf("alice1 must not own bobby1's resources")
	}
	s.Logout()
	if s.LoggedIn() || s.IsOwner("alice1") {
		t.Fatalf("logout must return to anonymous")
	}
	// an empty owner never matches an anonymous session
	if s.IsOwner("") {
		t.Fatalf("anonymous session must not match empty owner")
	}
}

func TestSession_LoginAndLogoutRotateCSRFToken(t *testing.T) {
	s := newAnonymous()
	anon := s.CSRFToken

	s.Login("alice1")
	if s.CSRFToken == "" || s.CSRFToken == anon {
		t.Fatalf("login must issue a fresh CSRF token")
	}
	if s.ValidCSRF(anon) {
		t.Fatalf("pre-login token must no longer validate")
	}

	authed := s.CSRFToken
	s.Logout()
	if s.CSRFToken == "" || s.CSRFToken == authed {
		t.Fatalf("logout must issue a fresh CSRF token")
	}
}

func TestSession_Flashes(t *testing.T) {
	s := newAnonymous()
	s.AddFlash("one")
	s.AddFlash("two")
	got := s.PopFlashes()
	if len(got) != 2 || got[0] != "one" || got[1] != "two" {
		t.Fatalf("unexpected flashes: %v", got)
	}
	if again := s.PopFlashes(); len(again) != 0 {
		t.Fatalf("flashes must be shown once, got %v", again)
	}
}

func TestManager_SaveLoadRoundTrip(t *testing.T) {
	m := newTestManager(t)
	s := newAnonymous()
	s.Login("alice1")
	s.AddFlash("Logged in successfully.")

	w := httptest.NewRecorder()
	if err := m.Save(w, s); err != nil {
		t.Fatalf("Save: %v", err)
	}
	cookies := w.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != DefaultCookieName || !cookies[0].HttpOnly {
		t.Fatalf("unexpected cookies: %+v", cookies)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])
	got := m.Load(req)
	if got.Username != "alice1" || got.CSRFToken != s.CSRFToken {
		t.Fatalf("round trip mismatch: %+v vs %+v", got, s)
	}
	if f := got.PopFlashes(); len(f) != 1 || f[0] != "Logged in successfully." {
		t.Fatalf("flashes lost: %v", f)
	}
}

func TestManager_LoadRejectsBadCookies(t *testing.T) {
	m := newTestManager(t)
	s := newAnonymous()
	s.Login("alice1")
	good, err := m.Encode(s)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	other, _ := NewManager(Options{Secret: "different"})
	forged, err := other.Encode(s)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	expired := newTestManager(t)
	expired.now = func() time.Time { return time.Now().Add(-48 * time.Hour) }
	stale, err := expired.Encode(s)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	cases := map[string]string{
		"garbage":   "not-a-token",
		"tampered":  good[:len(good)-2] + "xx",
		"forged":    forged,
		"expired":   stale,
		"none alg":  noneToken(t),
		"truncated": strings.SplitN(good, ".", 2)[0],
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.AddCookie(&http.Cookie{Name: DefaultCookieName, Value: raw})
			got := m.Load(req)
			if got.LoggedIn() {
				t.Fatalf("bad cookie must yield anonymous session, got %+v", got)
			}
			if got.CSRFToken == "" {
				t.Fatalf("fresh session must carry a CSRF token")
			}
		})
	}
}

func TestSession_ValidCSRF(t *testing.T) {
	s := newAnonymous()
	if !s.ValidCSRF(s.CSRFToken) {
		t.Fatalf("own token must validate")
	}
	if s.ValidCSRF("") || s.ValidCSRF("other") {
		t.Fatalf("empty or wrong token must not validate")
	}
}

func noneToken(t *testing.T) string {
	t.Helper()
	tk := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{Username: "alice1", CSRF: "x"})
	s, err := tk.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none token: %v", err)
	}
	return s
}
