package handlers

import (
	"net/http"
	"time"

	"feedback_app/internal/logger"
	"feedback_app/internal/session"
	"feedback_app/internal/web"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "requestId"
	loggerKey       = "logger"
	sessionKey      = "session"
	csrfField       = "csrf_token"
)

// requestLogger tags every request with an id, exposes a logger carrying it
// and logs one line when the request completes.
func (h *Handler) requestLogger(c *gin.Context) {
	requestID := c.GetHeader(requestIDHeader)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	reqLog := h.log.With("request_id", requestID)
	c.Set(requestIDKey, requestID)
	c.Set(loggerKey, reqLog)
	c.Header(requestIDHeader, requestID)

	start := time.Now()
	c.Next()

	reqLog.Infow("http_request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"status", c.Writer.Status(),
		"latency", time.Since(start),
	)
}

// logFor returns the request-scoped logger, or the handler's logger when
// requestLogger did not run.
func (h *Handler) logFor(c *gin.Context) *logger.Logger {
	if v, ok := c.Get(loggerKey); ok {
		if l, ok := v.(*logger.Logger); ok {
			return l
		}
	}
	return h.log
}

// sessionMiddleware decodes the session cookie into the gin context.
func (h *Handler) sessionMiddleware(c *gin.Context) {
	c.Set(sessionKey, h.sessions.Load(c.Request))
	c.Next()
}

// csrfMiddleware rejects state-changing requests whose csrf_token does not
// match the one stored in the session.
func (h *Handler) csrfMiddleware(c *gin.Context) {
	if c.Request.Method != http.MethodPost {
		c.Next()
		return
	}
	if !currentSession(c).ValidCSRF(c.PostForm(csrfField)) {
		h.logFor(c).Infow("csrf_rejected", "path", c.Request.URL.Path)
		h.render(c, http.StatusBadRequest, web.PageError, web.Page{
			Title:   "Bad Request",
			Message: "The CSRF token is missing or invalid.",
		})
		c.Abort()
		return
	}
	c.Next()
}

// currentSession returns the session loaded by sessionMiddleware.
func currentSession(c *gin.Context) *session.Session {
	if v, ok := c.Get(sessionKey); ok {
		if s, ok := v.(*session.Session); ok {
			return s
		}
	}
	// not reached for routes behind sessionMiddleware
	s := &session.Session{}
	c.Set(sessionKey, s)
	return s
}
