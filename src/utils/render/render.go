// Package render draws the server side pages. Templates are embedded in the
// binary; every page is parsed together with the shared layout.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"backoffice/src/menu"
	"backoffice/src/schemas"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = []string{"login", "home", "list", "form", "members", "password", "error"}

// Page is what every template receives. Data holds the page specific view.
type Page struct {
	Title       string
	User        string
	Customer    string
	Menu        []menu.Item
	Crumbs      []menu.Crumb
	Flash       string
	Error       string
	CurrentPath string
	Data        interface{}
}

// ListView feeds the generic maintenance list.
type ListView struct {
	Title     string
	BasePath  string
	Columns   []string
	Rows      []ListRow
	Query     schemas.ListQuery
	CanEdit   bool
	ExportURL string
}

type ListRow struct {
	ID    int64
	Cells []string
}

// FormView feeds the generic maintenance form.
type FormView struct {
	Title      string
	BasePath   string
	ID         int64
	Fields     []schemas.FormField
	CanEdit    bool
	SubRecords bool
	Extra      []Link
}

type Link struct {
	Title string
	URL   string
}

type LoginView struct {
	Next   string
	Fields []schemas.FormField
}

type MembersView struct {
	TeamID   int64
	TeamName string
	Members  interface{}
	Fields   []schemas.FormField
	CanEdit  bool
}

type Renderer struct {
	templates map[string]*template.Template
}

var funcs = template.FuncMap{
	"upper": strings.ToUpper,
	"selected": func(value, option string) bool {
		return strings.EqualFold(value, option)
	},
}

func New() (*Renderer, error) {
	r := &Renderer{templates: make(map[string]*template.Template, len(pages))}
	for _, name := range pages {
		tpl, err := template.New(name).Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		r.templates[name] = tpl
	}
	return r, nil
}

// HTML renders page with the named template. The output is buffered so a
// failing template never leaves a half written response.
func (r *Renderer) HTML(w http.ResponseWriter, status int, name string, page *Page) error {
	tpl, ok := r.templates[name]
	if !ok {
		return fmt.Errorf("unknown template %s", name)
	}
	var output bytes.Buffer
	if err := tpl.ExecuteTemplate(&output, "layout", page); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_, err := output.WriteTo(w)
	return err
}
