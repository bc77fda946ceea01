// Package view renders the HTML pages of the web interface.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"time"

	"github.com/dmitrijs2005/saferoom/internal/common"
	"github.com/dustin/go-humanize"
)

//go:embed templates
var embedded embed.FS

// Notice categories.
const (
	Success = "success"
	Danger  = "danger"
	Warning = "warning"
	Info    = "info"
)

// Notice is a one-shot status message shown at the top of a page.
type Notice struct {
	Category string
	Message  string
}

// Page is the data every template receives.
type Page struct {
	Title   string
	UserID  string
	Notices []Notice
	Data    any
}

// PageRenderer renders web pages through a set of templates, one per page,
// each parsed together with the shared layouts.
type PageRenderer struct {
	templates map[string]*template.Template
}

var funcs = template.FuncMap{
	"stamp": func(t time.Time) string { return t.Format(common.TimestampLayout) },
	"ago":   humanize.Time,
}

// NewPageRenderer parses every *.html in the root of fsys against the
// layouts in fsys/layouts.
func NewPageRenderer(fsys fs.FS) (*PageRenderer, error) {
	layouts, err := fs.Glob(fsys, "layouts/*.html")
	if err != nil {
		return nil, err
	}
	pages, err := fs.Glob(fsys, "*.html")
	if err != nil {
		return nil, err
	}

	templates := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		name := path.Base(page)
		files := append(append([]string{}, layouts...), page)

		t, err := template.New(name).Funcs(funcs).ParseFS(fsys, files...)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", name, err)
		}
		templates[name] = t
	}
	return &PageRenderer{templates: templates}, nil
}

// NewDefaultPageRenderer uses the templates compiled into the binary.
func NewDefaultPageRenderer() (*PageRenderer, error) {
	sub, err := fs.Sub(embedded, "templates")
	if err != nil {
		return nil, err
	}
	return NewPageRenderer(sub)
}

// RenderTemplate renders the page called name. Nothing is written to wr
// when rendering fails.
func (pr *PageRenderer) RenderTemplate(wr io.Writer, name string, data any) error {
	t, ok := pr.templates[name]
	if !ok {
		return fmt.Errorf("template is missing {%s}", name)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, name, data); err != nil {
		return err
	}
	_, err := buf.WriteTo(wr)
	return err
}
