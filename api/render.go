package api

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/rpupo63/storefront-site-backend/showcase"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageNames = []string{"home", "rich", "fallback", "notfound", "contact"}

// pageData is what every site template receives
type pageData struct {
	SiteName  string
	Title     string
	Year      int
	Notices   []showcase.Notice
	Projects  []ProjectSummary
	Plan      *showcase.RenderPlan
	Segment   string
	ProjectID string
	Message   string
}

type renderer struct {
	siteName string
	pages    map[string]*template.Template
	logger   zerolog.Logger
}

func newRenderer(siteName string) (*renderer, error) {
	funcs := template.FuncMap{
		"join":  strings.Join,
		"lower": strings.ToLower,
	}

	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		t, err := template.New(name).Funcs(funcs).ParseFS(templateFS, "templates/base.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		pages[name] = t
	}

	return &renderer{
		siteName: siteName,
		pages:    pages,
		logger:   log.With().Str("component", "renderer").Logger(),
	}, nil
}

// render executes page into a buffer first so template errors still produce a clean 500
func (r *renderer) render(w http.ResponseWriter, status int, page string, data pageData) {
	t, ok := r.pages[page]
	if !ok {
		r.logger.Error().Str("page", page).Msg("unknown page template")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	data.SiteName = r.siteName
	data.Year = time.Now().Year()
	if data.Title == "" {
		data.Title = r.siteName
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "base", data); err != nil {
		r.logger.Error().Err(err).Str("page", page).Msg("failed to render page")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		r.logger.Error().Err(err).Str("page", page).Msg("failed to write page")
	}
}
