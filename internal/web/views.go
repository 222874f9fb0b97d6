package web

import (
	"embed"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/nikmy/labforms/internal/assets"
	"github.com/nikmy/labforms/pkg/errors"
	"github.com/nikmy/labforms/pkg/money"
)

//go:embed templates/*.html
var templates embed.FS

const (
	layoutFile = "templates/layout.html"
	layoutName = "layout"
)

var funcs = template.FuncMap{
	"money":   money.Format,
	"short":   money.Short,
	"percent": assets.FormatPercent,
}

// views renders every page inside the shared layout. Each page is parsed
// into its own clone of the layout, so pages may reuse block names.
type views struct {
	fs    fs.FS
	pages map[string]*template.Template
}

func newViews(fsys fs.FS) *views {
	return &views{fs: fsys}
}

func (v *views) Load() error {
	base, err := template.New(layoutName).Funcs(funcs).ParseFS(v.fs, layoutFile)
	if err != nil {
		return errors.WrapFail(err, "parse layout")
	}

	files, err := fs.Glob(v.fs, "templates/*.html")
	if err != nil {
		return errors.WrapFail(err, "list templates")
	}

	pages := make(map[string]*template.Template, len(files))
	for _, file := range files {
		if file == layoutFile {
			continue
		}

		t, err := base.Clone()
		if err != nil {
			return errors.WrapFail(err, "clone layout")
		}

		_, err = t.ParseFS(v.fs, file)
		if err != nil {
			return errors.WrapFailf(err, "parse %s", file)
		}

		pages[strings.TrimSuffix(path.Base(file), ".html")] = t
	}

	v.pages = pages
	return nil
}

func (v *views) Render(w io.Writer, name string, bind any, layouts ...string) error {
	t, ok := v.pages[name]
	if !ok {
		return errors.Errorf("template %q not found", name)
	}

	layout := layoutName
	if len(layouts) > 0 && layouts[0] != "" {
		layout = layouts[0]
	}

	return t.ExecuteTemplate(w, layout, bind)
}
