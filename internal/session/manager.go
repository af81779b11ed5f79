package session

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	DefaultCookieName = "session"
	DefaultTTL        = 24 * time.Hour
)

var (
	ErrNoSecret     = errors.New("session secret is empty")
	ErrInvalidToken = errors.New("invalid session token")
)

// Claims is the signed cookie payload.
type Claims struct {
	jwt.RegisteredClaims
	Username string   `json:"username,omitempty"`
	Flashes  []string `json:"flashes,omitempty"`
	CSRF     string   `json:"csrf"`
}

// Options configures a Manager.
type Options struct {
	Secret     string
	CookieName string
	TTL        time.Duration
	Secure     bool
}

// Manager encodes sessions into HS256-signed cookies and decodes them back.
type Manager struct {
	secret     []byte
	cookieName string
	ttl        time.Duration
	secure     bool
	now        func() time.Time
}

func NewManager(opts Options) (*Manager, error) {
	if opts.Secret == "" {
		return nil, ErrNoSecret
	}
	if opts.CookieName == "" {
		opts.CookieName = DefaultCookieName
	}
	if opts.TTL <= 0 {
		opts.TTL = DefaultTTL
	}
	return &Manager{
		secret:     []byte(opts.Secret),
		cookieName: opts.CookieName,
		ttl:        opts.TTL,
		secure:     opts.Secure,
		now:        time.Now,
	}, nil
}

func (m *Manager) CookieName() string { return m.cookieName }

// Encode signs s into a token string.
func (m *Manager) Encode(s *Session) (string, error) {
	now := m.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Username: s.Username,
		Flashes:  s.flashes,
		CSRF:     s.CSRFToken,
	})
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign session: %w", err)
	}
	return signed, nil
}

// Decode verifies the signature and expiry of raw and returns the session.
func (m *Manager) Decode(raw string) (*Session, error) {
	token, err := jwt.ParseWithClaims(raw, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Ensure HMAC signing is used
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.now))
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.CSRF == "" {
		return nil, ErrInvalidToken
	}
	return &Session{
		Username:  claims.Username,
		CSRFToken: claims.CSRF,
		flashes:   claims.Flashes,
	}, nil
}

// Load reads the session cookie from r. A missing, expired or tampered
// cookie yields a fresh anonymous session.
func (m *Manager) Load(r *http.Request) *Session {
	c, err := r.Cookie(m.cookieName)
	if err != nil || c.Value == "" {
		return newAnonymous()
	}
	s, err := m.Decode(c.Value)
	if err != nil {
		return newAnonymous()
	}
	return s
}

// Save writes s as the session cookie on w.
func (m *Manager) Save(w http.ResponseWriter, s *Session) error {
	value, err := m.Encode(s)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(m.ttl / time.Second),
		Secure:   m.secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}
