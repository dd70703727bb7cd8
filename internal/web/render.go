package web

import (
	"embed"
	"html/template"
	"io"
	"time"

	"pet-health-tracker/internal/domain/activities"
	"pet-health-tracker/internal/session"
)

//go:embed templates/*.html
var templateFS embed.FS

// DisplayLayout es el formato legible del log de actividades.
const DisplayLayout = "Jan 2, 2006, 3:04:05 PM"

type pageData struct {
	Draft   session.Draft
	Cards   []session.Card
	Presets []activities.Preset
}

// Renderer dibuja la página principal. loc es la zona horaria de display.
type Renderer struct {
	tmpl *template.Template
}

func NewRenderer(loc *time.Location) (*Renderer, error) {
	if loc == nil {
		loc = time.Local
	}
	funcs := template.FuncMap{
		"localTime": func(t time.Time) string {
			return t.In(loc).Format(DisplayLayout)
		},
	}
	tmpl, err := template.New("index.html").Funcs(funcs).ParseFS(templateFS, "templates/index.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{tmpl: tmpl}, nil
}

func (r *Renderer) Index(w io.Writer, data pageData) error {
	return r.tmpl.ExecuteTemplate(w, "index.html", data)
}
