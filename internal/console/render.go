package console

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/taibuivan/librarydesk/internal/platform/respond"
)

//go:embed templates/*.html
var templateFS embed.FS

// Section is one entry of the navigation shell.
type Section struct {
	Title       string
	Description string
	Path        string
}

// HomeView is the template data of the home page.
type HomeView struct {
	Title    string
	Subtitle string
	Sections []Section
	Nav      []Section
}

// Renderer executes the embedded page templates.
type Renderer struct {
	nav   []Section
	pages map[string]*template.Template
}

// NewRenderer parses the templates; nav is rendered on every page.
func NewRenderer(nav []Section) (*Renderer, error) {
	layout, err := template.New("layout").Funcs(template.FuncMap{
		"add": func(a, b int) int { return a + b },
	}).ParseFS(templateFS, "templates/layout.html")
	if err != nil {
		return nil, fmt.Errorf("console: parse layout: %w", err)
	}

	renderer := &Renderer{nav: nav, pages: make(map[string]*template.Template)}
	for _, name := range []string{"home", "page"} {
		clone, err := layout.Clone()
		if err != nil {
			return nil, fmt.Errorf("console: clone layout: %w", err)
		}
		if renderer.pages[name], err = clone.ParseFS(templateFS, "templates/"+name+".html"); err != nil {
			return nil, fmt.Errorf("console: parse %s: %w", name, err)
		}
	}

	return renderer, nil
}

// Page renders an entity page.
func (r *Renderer) Page(writer http.ResponseWriter, request *http.Request, view PageView) {
	view.Nav = r.nav
	respond.HTML(writer, request, http.StatusOK, r.pages["page"], "layout", view)
}

// Home renders the navigation shell.
func (r *Renderer) Home(writer http.ResponseWriter, request *http.Request, view HomeView) {
	view.Nav = r.nav
	respond.HTML(writer, request, http.StatusOK, r.pages["home"], "layout", view)
}

// HomeHandler serves the home page listing sections.
func HomeHandler(renderer *Renderer, sections []Section) http.HandlerFunc {
	view := HomeView{
		Title:    "Library Management System",
		Subtitle: "Manage publishers, categories, books, authors and borrowings from one place.",
		Sections: sections,
	}
	return func(writer http.ResponseWriter, request *http.Request) {
		renderer.Home(writer, request, view)
	}
}
