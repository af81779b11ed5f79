package handlers

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"feedback_app/internal/logger"
	"feedback_app/internal/repository"
	"feedback_app/internal/repository/db"
	"feedback_app/internal/service"
	"feedback_app/internal/session"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// testClient drives the router like a browser: it keeps the session cookie
// between requests and submits the session's CSRF token with every POST.
type testClient struct {
	t        *testing.T
	router   *gin.Engine
	sessions *session.Manager
	cookie   *http.Cookie
}

type testApp struct {
	db       *sql.DB
	services *service.Service
	sessions *session.Manager
	router   *gin.Engine
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	conn, err := db.Open(context.Background(), repository.DialectSQLite, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	repos := repository.NewRepository(conn, repository.DialectSQLite)
	services := service.NewService(repos, service.NewBcryptHasher(bcrypt.MinCost))
	sessions, err := session.NewManager(session.Options{Secret: "test-secret"})
	if err != nil {
		t.Fatalf("session manager: %v", err)
	}
	h := NewHandler(services, sessions, logger.Nop())
	return &testApp{db: conn, services: services, sessions: sessions, router: h.InitRoutes()}
}

func (a *testApp) client(t *testing.T) *testClient {
	return &testClient{t: t, router: a.router, sessions: a.sessions}
}

func (a *testApp) count(t *testing.T, query string, args ...any) int {
	t.Helper()
	var n int
	if err := a.db.QueryRow(query, args...).Scan(&n); err != nil {
		t.Fatalf("count %q: %v", query, err)
	}
	return n
}

func (c *testClient) do(method, path string, form url.Values) *httptest.ResponseRecorder {
	c.t.Helper()
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if c.cookie != nil {
		req.AddCookie(c.cookie)
	}
	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, req)

	for _, ck := range w.Result().Cookies() {
		if ck.Name == c.sessions.CookieName() {
			c.cookie = ck
		}
	}
	return w
}

func (c *testClient) get(path string) *httptest.ResponseRecorder {
	return c.do(http.MethodGet, path, nil)
}

// post submits form with the current session's CSRF token, fetching a
// session first when the client has none.
func (c *testClient) post(path string, form url.Values) *httptest.ResponseRecorder {
	c.t.Helper()
	if c.cookie == nil {
		c.get("/login")
	}
	if form == nil {
		form = url.Values{}
	}
	form.Set(csrfField, c.session().CSRFToken)
	return c.do(http.MethodPost, path, form)
}

// session decodes the client's current cookie.
func (c *testClient) session() *session.Session {
	c.t.Helper()
	if c.cookie == nil {
		c.t.Fatalf("client has no session cookie")
	}
	s, err := c.sessions.Decode(c.cookie.Value)
	if err != nil {
		c.t.Fatalf("decode session: %v", err)
	}
	return s
}

// flashes pops the messages waiting in the client's session.
func (c *testClient) flashes() []string {
	c.t.Helper()
	s := c.session()
	out := s.PopFlashes()
	c.setSession(s)
	return out
}

func (c *testClient) setSession(s *session.Session) {
	c.t.Helper()
	v, err := c.sessions.Encode(s)
	if err != nil {
		c.t.Fatalf("encode session: %v", err)
	}
	c.cookie = &http.Cookie{Name: c.sessions.CookieName(), Value: v}
}

func registerForm(username, email string) url.Values {
	return url.Values{
		"username":   {username},
		"password":   {"secretpw"},
		"email":      {email},
		"first_name": {"Alice"},
		"last_name":  {"Smith"},
	}
}

// signUp registers username through the HTTP flow and leaves the client logged in.
func (c *testClient) signUp(username string) {
	c.t.Helper()
	w := c.post("/register", registerForm(username, username+"@example.com"))
	if w.Code != http.StatusFound {
		c.t.Fatalf("register %s: status=%d body=%s", username, w.Code, w.Body.String())
	}
	c.flashes()
}

func assertRedirect(t *testing.T, w *httptest.ResponseRecorder, location string) {
	t.Helper()
	if w.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d: %s", w.Code, w.Body.String())
	}
	if got := w.Header().Get("Location"); got != location {
		t.Fatalf("expected redirect to %q, got %q", location, got)
	}
}

func assertFlash(t *testing.T, c *testClient, want string) {
	t.Helper()
	for _, f := range c.flashes() {
		if f == want {
			return
		}
	}
	t.Fatalf("flash %q not found in session", want)
}

func assertBodyContains(t *testing.T, w *httptest.ResponseRecorder, want string) {
	t.Helper()
	if !strings.Contains(w.Body.String(), want) {
		t.Fatalf("body missing %q:\n%s", want, w.Body.String())
	}
}
