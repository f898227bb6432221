package web

import (
	"embed"
	"html/template"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"seroter.com/ordersheet/model"
)

//go:embed index.html
var pages embed.FS

type Template struct {
	Templates *template.Template
}

// implement echo interface
func (t *Template) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return t.Templates.ExecuteTemplate(w, name, data)
}

func newTemplate() *Template {
	return &Template{Templates: template.Must(template.ParseFS(pages, "index.html"))}
}

type homePage struct {
	Running bool
	HasRun  bool
	Cursor  string
	Report  model.RunReport
}

// GetHome renders the last export report as a small HTML page.
func (h *Handler) GetHome(c echo.Context) error {
	report, ok := h.exporter.Last()
	cursor, err := h.exporter.Cursor(c.Request().Context())
	if err != nil {
		cursor = "unavailable: " + err.Error()
	}
	return c.Render(http.StatusOK, "home", homePage{
		Running: h.exporter.Running(),
		HasRun:  ok,
		Cursor:  cursor,
		Report:  report,
	})
}
