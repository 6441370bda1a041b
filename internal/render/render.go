// Package render отвечает за HTML-страницы приложения.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/GoArmGo/fyyur/internal/core/ports"
	"github.com/GoArmGo/fyyur/internal/domain"
)

//go:embed templates
var templateFS embed.FS

const (
	layoutFile   = "templates/layouts/main.html"
	partialsGlob = "templates/partials/*.html"
)

// Page — общие данные, которые получает каждый шаблон.
type Page struct {
	Flashes    []ports.Flash
	SearchTerm string
	Form       any
	Data       any
}

// Renderer хранит заранее разобранные шаблоны страниц.
type Renderer struct {
	pages  map[string]*template.Template
	logger *slog.Logger
}

// New разбирает все страницы из встроенной файловой системы.
func New(logger *slog.Logger) (*Renderer, error) {
	funcs := template.FuncMap{
		"datetime":     templateDateTime,
		"join":         strings.Join,
		"contains":     slices.Contains[[]string],
		"genreChoices": func() []string { return domain.GenreChoices },
		"stateChoices": func() []string { return domain.StateChoices },
	}

	r := &Renderer{pages: make(map[string]*template.Template), logger: logger}

	err := fs.WalkDir(templateFS, "templates", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path == "templates/layouts" || path == "templates/partials" {
				return fs.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".html") {
			return nil
		}
		name := strings.TrimPrefix(path, "templates/")
		tmpl, err := template.New("main.html").Funcs(funcs).ParseFS(templateFS, layoutFile, partialsGlob, path)
		if err != nil {
			return fmt.Errorf("parse template %s: %w", name, err)
		}
		r.pages[name] = tmpl
		return nil
	})
	if err != nil {
		return nil, err
	}

	return r, nil
}

// Render выполняет шаблон в буфер и только потом пишет ответ, чтобы ошибка
// шаблона не оставила клиенту половину страницы.
func (r *Renderer) Render(w http.ResponseWriter, status int, name string, data Page) {
	tmpl, ok := r.pages[name]
	if !ok {
		r.logger.Error("template not found", "template", name)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "main.html", data); err != nil {
		r.logger.Error("failed to execute template", "template", name, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		r.logger.Warn("failed to write response", "template", name, "error", err)
	}
}

func (r *Renderer) NotFound(w http.ResponseWriter) {
	r.Render(w, http.StatusNotFound, "errors/404.html", Page{})
}

func (r *Renderer) ServerError(w http.ResponseWriter) {
	r.Render(w, http.StatusInternalServerError, "errors/500.html", Page{})
}
