package handler

import (
	"bytes"
	"html"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Astemirdum/locallibrary/catalog/web"
)

// Renderer executes one page template inside the shared layout.
type Renderer struct {
	views map[string]*template.Template
}

var funcs = template.FuncMap{
	// Stored text is already entity-escaped; html/template escapes it again
	// on output, so it is decoded first to avoid double escaping.
	"unescape": html.UnescapeString,
}

func NewRenderer() *Renderer {
	r, err := newRenderer(web.Templates)
	if err != nil {
		panic(err)
	}
	return r
}

func newRenderer(files fs.FS) (*Renderer, error) {
	layout, err := template.New("layout").Funcs(funcs).ParseFS(files, "templates/layout.html")
	if err != nil {
		return nil, errors.Wrap(err, "parse layout")
	}
	pages, err := fs.Glob(files, "templates/*.html")
	if err != nil {
		return nil, err
	}

	r := &Renderer{views: make(map[string]*template.Template, len(pages))}
	for _, p := range pages {
		name := strings.TrimSuffix(path.Base(p), ".html")
		if name == "layout" {
			continue
		}
		view, err := template.Must(layout.Clone()).ParseFS(files, p)
		if err != nil {
			return nil, errors.Wrapf(err, "parse view %s", name)
		}
		r.views[name] = view
	}
	return r, nil
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	view, ok := r.views[name]
	if !ok {
		return errors.Errorf("view %q not found", name)
	}
	var buf bytes.Buffer
	if err := view.ExecuteTemplate(&buf, "layout", data); err != nil {
		return errors.Wrapf(err, "render %s", name)
	}
	_, err := buf.WriteTo(w)
	return err
}
