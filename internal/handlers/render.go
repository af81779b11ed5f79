package handlers

import (
	"net/http"
	"net/url"

	"feedback_app/internal/forms"
	"feedback_app/internal/web"

	"github.com/gin-gonic/gin"
)

// saveSession writes the current session cookie. It must run before the
// response body or status is written.
func (h *Handler) saveSession(c *gin.Context) {
	if err := h.sessions.Save(c.Writer, currentSession(c)); err != nil {
		h.logFor(c).Errorw("session_save_failed", "err", err)
	}
}

// render pops pending flashes into page, saves the session and renders the named page.
func (h *Handler) render(c *gin.Context, status int, name string, page web.Page) {
	s := currentSession(c)
	page.CurrentUser = s.Username
	page.CSRFToken = s.CSRFToken
	page.Flashes = s.PopFlashes()
	h.saveSession(c)
	c.HTML(status, name, page)
}

// redirect saves the session and answers with a 302 to location.
func (h *Handler) redirect(c *gin.Context, location string) {
	h.saveSession(c)
	c.Redirect(http.StatusFound, location)
}

// flashRedirect queues msg and redirects.
func (h *Handler) flashRedirect(c *gin.Context, msg, location string) {
	currentSession(c).AddFlash(msg)
	h.redirect(c, location)
}

func (h *Handler) notFound(c *gin.Context) {
	h.render(c, http.StatusNotFound, web.PageNotFound, web.Page{Title: "Not Found"})
}

// internalError logs err under event and renders the generic error page.
func (h *Handler) internalError(c *gin.Context, event string, err error) {
	h.logFor(c).Errorw(event, "err", err, "path", c.Request.URL.Path)
	h.render(c, http.StatusInternalServerError, web.PageError, web.Page{Title: "Error"})
}

func userPath(username string) string {
	return "/users/" + url.PathEscape(username)
}

// fieldSpec describes one input of a rendered form.
type fieldSpec struct {
	name  string
	label string
	typ   string
}

var (
	registerFields = []fieldSpec{
		{"username", "Username", "text"},
		{"password", "Password", "password"},
		{"email", "Email", "email"},
		{"first_name", "First Name", "text"},
		{"last_name", "Last Name", "text"},
	}
	loginFields = []fieldSpec{
		{"username", "Username", "text"},
		{"password", "Password", "password"},
	}
	feedbackFields = []fieldSpec{
		{"title", "Title", "text"},
		{"content", "Content", "textarea"},
	}
)

// buildForm lays out specs with their submitted values and errors.
// Password values are never echoed back.
func buildForm(action, submit string, specs []fieldSpec, values map[string]string, errs forms.Errors) *web.Form {
	f := &web.Form{Action: action, Submit: submit}
	for _, s := range specs {
		field := web.Field{Name: s.name, Label: s.label, Type: s.typ, Errors: errs.Get(s.name)}
		if s.typ != "password" {
			field.Value = values[s.name]
		}
		f.Fields = append(f.Fields, field)
	}
	return f
}
