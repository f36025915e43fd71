// Package views holds the embedded page templates and stylesheet and plugs
// them into gin as an HTML renderer.
package views

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"strings"

	"github.com/gin-gonic/gin/render"

	"github.com/yigit/conexao/internal/app/models"
	"github.com/yigit/conexao/internal/app/models/dto"
	"github.com/yigit/conexao/internal/pkg/helpers"
)

//go:embed templates/*.html templates/pages/*.html
var templatesFS embed.FS

// Page is the data every template receives.
type Page struct {
	Title  string
	Path   string
	User   *models.User
	Unread int
	Theme  string
	Flash  *dto.Flash
	Errors *dto.ValidationErrors
	Form   any
	Data   any
}

// IsAdmin reports whether the acting user sees the admin navigation.
func (p *Page) IsAdmin() bool {
	return p.User.IsAdmin()
}

// Renderer implements gin's render.HTMLRender with one template set per page,
// each made of the shared layout, the partials and the page body.
type Renderer struct {
	pages map[string]*template.Template
}

var _ render.HTMLRender = (*Renderer)(nil)

// NewRenderer parses every page template.
func NewRenderer(formatter *helpers.Formatter) (*Renderer, error) {
	files, err := fs.Glob(templatesFS, "templates/pages/*.html")
	if err != nil {
		return nil, fmt.Errorf("list page templates: %w", err)
	}

	funcs := FuncMap(formatter)
	r := &Renderer{pages: make(map[string]*template.Template, len(files))}
	for _, file := range files {
		name := strings.TrimSuffix(path.Base(file), ".html")
		t, err := template.New("layout").Funcs(funcs).ParseFS(templatesFS,
			"templates/layout.html",
			"templates/partials.html",
			file,
		)
		if err != nil {
			return nil, fmt.Errorf("parse page %s: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

// Has reports whether a page template exists.
func (r *Renderer) Has(name string) bool {
	_, ok := r.pages[name]
	return ok
}

// Instance returns the gin render for a page.
func (r *Renderer) Instance(name string, data any) render.Render {
	t, ok := r.pages[name]
	if !ok {
		t = r.pages["error"]
		data = &Page{Title: "Erro", Data: ErrorData{Status: 500, Message: "Página inexistente: " + name}}
	}
	return render.HTML{
		Template: t,
		Name:     "layout",
		Data:     data,
	}
}

// ErrorData is the body of the error page.
type ErrorData struct {
	Status  int
	Code    dto.ErrorCode
	Message string
}
