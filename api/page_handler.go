package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rpupo63/storefront-site-backend/database"
	"github.com/rpupo63/storefront-site-backend/showcase"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type pageHandler struct {
	responder   Responder
	logger      zerolog.Logger
	projectRepo *database.ProjectRepo
	loader      *showcase.Loader
	notices     *showcase.NoticeBoard
	renderer    *renderer
}

func newPageHandler(projectRepo *database.ProjectRepo, notices *showcase.NoticeBoard, renderer *renderer) pageHandler {
	logger := log.With().Str("handlerName", "pageHandler").Logger()

	return pageHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		projectRepo: projectRepo,
		loader:      showcase.NewLoader(projectRepo),
		notices:     notices,
		renderer:    renderer,
	}
}

func newPageResponse(page *showcase.Page) PageResponse {
	response := PageResponse{
		Segment: page.Segment,
		State:   page.State,
		Reason:  page.Reason,
		Plan:    page.Plan,
	}
	if page.Project != nil {
		summary := newProjectSummary(page.Project)
		response.Project = &summary
	}
	return response
}

// getPage resolves a URL segment and returns the render plan of its project
// @Summary Project page plan
// @Tags Pages
// @Produce json
// @Param segment path string true "URL segment, e.g. test-app"
// @Success 200 {object} PageResponse
// @Failure 404 {object} PageResponse "Not Found - state is not_found"
// @Router /api/pages/{segment} [get]
func (h pageHandler) getPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := h.loader.Load(chi.URLParam(r, "segment"))

		status := http.StatusOK
		if page.State != showcase.StateFound {
			status = http.StatusNotFound
		}
		h.responder.WriteJSONStatus(w, status, newPageResponse(page))
	}
}

// home renders the catalog
func (h pageHandler) home() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		audience := ensureSession(w, r)
		data := pageData{Notices: h.notices.Drain(audience), Projects: []ProjectSummary{}}

		projects, err := h.projectRepo.FindAll()
		if err != nil {
			h.logger.Error().Err(err).Msg("failed to fetch projects for home page")
			data.Message = "Projects are unavailable right now. Please try again shortly."
		}
		for _, project := range projects {
			data.Projects = append(data.Projects, newProjectSummary(project))
		}

		h.renderer.render(w, http.StatusOK, "home", data)
	}
}

// contact renders the contact form; ?project=<id> ties the message to a project
func (h pageHandler) contact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		audience := ensureSession(w, r)
		data := pageData{Title: "Contact", Notices: h.notices.Drain(audience)}

		if raw := r.URL.Query().Get("project"); raw != "" {
			if id, err := uuid.Parse(raw); err == nil {
				data.ProjectID = id.String()
			}
		}

		h.renderer.render(w, http.StatusOK, "contact", data)
	}
}

// projectPage renders the rich or fallback page of the project at /{segment}
func (h pageHandler) projectPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		audience := ensureSession(w, r)
		segment := chi.URLParam(r, "segment")
		page := h.loader.Load(segment)

		data := pageData{Segment: segment, Notices: h.notices.Drain(audience)}

		if page.State != showcase.StateFound {
			data.Title = "Not found"
			if page.Reason == showcase.ReasonFetchFailed {
				data.Message = "We could not load this project right now. Please try again shortly."
			}
			h.renderer.render(w, http.StatusNotFound, "notfound", data)
			return
		}

		data.Title = page.Plan.Title
		data.Plan = page.Plan
		data.ProjectID = page.Plan.ProjectID.String()
		h.renderer.render(w, http.StatusOK, string(page.Plan.Template), data)
	}
}
