// Package web holds the embedded HTML templates and a gin renderer for them.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"strings"

	"github.com/gin-gonic/gin/render"

	"feedback_app/internal/models"
)

//go:embed templates
var files embed.FS

// Page names accepted by Renderer.Instance.
const (
	PageRegister       = "register"
	PageLogin          = "login"
	PageUser           = "user"
	PageAddFeedback    = "add_feedback"
	PageUpdateFeedback = "update_feedback"
	PageNotFound       = "not_found"
	PageError          = "error"
)

const layoutName = "layout"

// Page is the data every template receives.
type Page struct {
	Title       string
	CurrentUser string
	CSRFToken   string
	Flashes     []string

	Form     *Form
	Profile  *models.User
	Feedback []models.Feedback
	Message  string
}

// Form describes an HTML form and its fields.
type Form struct {
	Action string
	Submit string
	Fields []Field
}

type Field struct {
	Name   string
	Label  string
	Type   string
	Value  string
	Errors []string
}

// Renderer implements gin's render.HTMLRender with one template set per page,
// so every page can define its own "content" block.
type Renderer struct {
	pages map[string]*template.Template
}

var _ render.HTMLRender = (*Renderer)(nil)

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	base, err := template.New(layoutName).Funcs(funcs).ParseFS(files, "templates/layout.html", "templates/partials/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}

	pageFiles, err := fs.Glob(files, "templates/pages/*.html")
	if err != nil {
		return nil, err
	}

	r := &Renderer{pages: make(map[string]*template.Template, len(pageFiles))}
	for _, f := range pageFiles {
		name := strings.TrimSuffix(path.Base(f), ".html")
		t, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layout for %s: %w", name, err)
		}
		if _, err := t.ParseFS(files, f); err != nil {
			return nil, fmt.Errorf("parse page %s: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

// MustRenderer is like NewRenderer but panics on error.
func MustRenderer() *Renderer {
	r, err := NewRenderer()
	if err != nil {
		panic(err)
	}
	return r
}

// Instance returns the render for page name; unknown names fall back to the error page.
func (r *Renderer) Instance(name string, data any) render.Render {
	t, ok := r.pages[name]
	if !ok {
		t = r.pages[PageError]
	}
	return render.HTML{Template: t, Name: layoutName, Data: data}
}

var funcs = template.FuncMap{
	"inputType": func(f Field) string {
		if f.Type == "" {
			return "text"
		}
		return f.Type
	},
}
