package api

import (
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rpupo63/storefront-site-backend/database"
	"github.com/rpupo63/storefront-site-backend/errs"
	"github.com/rpupo63/storefront-site-backend/models"
	"github.com/rpupo63/storefront-site-backend/showcase"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type projectHandler struct {
	responder   Responder
	logger      zerolog.Logger
	projectRepo *database.ProjectRepo
}

func newProjectHandler(projectRepo *database.ProjectRepo) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		projectRepo: projectRepo,
	}
}

func newProjectResponse(p *models.Project) ProjectResponse {
	return ProjectResponse{Project: *p, ResolvedRoute: showcase.ResolvedRoute(p)}
}

// listProjects is the public catalog
// @Summary List catalog
// @Description Lists every project in resolver order with its resolved route
// @Tags Catalog
// @Produce json
// @Success 200 {array} ProjectSummary
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching projects"
// @Router /api/projects [get]
func (h projectHandler) listProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projectRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "projects", err))
			return
		}

		summaries := make([]ProjectSummary, 0, len(projects))
		for _, project := range projects {
			summaries = append(summaries, newProjectSummary(project))
		}

		h.responder.WriteJSON(w, summaries)
	}
}

// getAllProjects retrieves all projects
// @Summary Get all projects
// @Tags Projects
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ProjectCollection
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching projects"
// @Router /admin/projects [get]
func (h projectHandler) getAllProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projectRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "projects", err))
			return
		}

		response := ProjectCollection{Projects: make([]ProjectResponse, 0, len(projects))}
		for _, project := range projects {
			response.Projects = append(response.Projects, newProjectResponse(project))
		}
		response.Total = len(response.Projects)

		h.responder.WriteJSON(w, response)
	}
}

// getProject retrieves a specific project by ID
// @Summary Get project
// @Tags Projects
// @Produce json
// @Security BearerAuth
// @Param projectID path string true "Project ID" format(uuid)
// @Success 200 {object} ProjectResponse
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid projectID"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Router /admin/projects/{projectID} [get]
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := uuidParam(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}

		h.responder.WriteJSON(w, newProjectResponse(project))
	}
}

// createProject creates a new project
// @Summary Create project
// @Description Explicit routes are normalized the same way derived routes are
// @Tags Projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param project body models.Project true "Project data"
// @Success 201 {object} ProjectResponse
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid project data or reserved route"
// @Failure 409 {object} ErrorResponse "Conflict - Route already used by another project"
// @Router /admin/projects [post]
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var project models.Project
		if err := decodeJSON(r, &project); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project.ID = uuid.Nil
		project.LeadCount = 0
		if err := h.prepare(&project); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.projectRepo.Add(&project); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "project", err))
			return
		}

		h.logger.Info().
			Str("actor", ctxGetUserID(r.Context())).
			Str("projectID", project.ID.String()).
			Str("route", showcase.ResolvedRoute(&project)).
			Msg("project created")

		created, err := h.projectRepo.FindByID(project.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find created", "project", err))
			return
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, newProjectResponse(created))
	}
}

// updateProject replaces the editable fields of a project
// @Summary Update project
// @Description lead_count and created_at are kept from the stored record
// @Tags Projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param projectID path string true "Project ID" format(uuid)
// @Param project body models.Project true "Updated project data"
// @Success 200 {object} ProjectResponse
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid project data or reserved route"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Failure 409 {object} ErrorResponse "Conflict - Route already used by another project"
// @Router /admin/projects/{projectID} [put]
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := uuidParam(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		existing, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}

		var project models.Project
		if err := decodeJSON(r, &project); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project.ID = projectID
		project.LeadCount = existing.LeadCount
		project.CreatedAt = existing.CreatedAt
		if err := h.prepare(&project); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.projectRepo.Update(&project); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "project", err))
			return
		}

		h.logger.Info().
			Str("actor", ctxGetUserID(r.Context())).
			Str("projectID", projectID.String()).
			Msg("project updated")

		updated, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated", "project", err))
			return
		}

		h.responder.WriteJSON(w, newProjectResponse(updated))
	}
}

// deleteProject deletes a project by ID. Its leads stay, detached.
// @Summary Delete project
// @Tags Projects
// @Produce json
// @Security BearerAuth
// @Param projectID path string true "Project ID" format(uuid)
// @Success 200 {object} map[string]string "Success message"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid projectID"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Router /admin/projects/{projectID} [delete]
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := uuidParam(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if _, err := h.projectRepo.FindByID(projectID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}

		if err := h.projectRepo.Delete(projectID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "project", err))
			return
		}

		h.logger.Info().
			Str("actor", ctxGetUserID(r.Context())).
			Str("projectID", projectID.String()).
			Msg("project deleted")

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "project deleted successfully",
		})
	}
}

// prepare validates a project and normalizes its route before it is stored
func (h projectHandler) prepare(project *models.Project) error {
	project.Name = strings.TrimSpace(project.Name)
	if project.Name == "" {
		return errs.NewMissingRequiredFieldError("name")
	}
	if project.Category == "" {
		project.Category = models.CategoryFeatured
	}
	if !project.Category.Valid() {
		return errs.NewInvalidFieldError("category", fmt.Sprintf("unknown category %q", project.Category))
	}
	if project.Status == "" {
		project.Status = models.StatusConcept
	}
	if !project.Status.Valid() {
		return errs.NewInvalidFieldError("status", fmt.Sprintf("unknown status %q", project.Status))
	}

	if project.Route != nil {
		raw := strings.TrimSpace(*project.Route)
		normalized := showcase.NormalizeRoute(raw)
		switch {
		case strings.Trim(raw, "/") == "":
			project.Route = nil
		case normalized == "":
			return errs.NewInvalidFieldError("route", "route must contain letters or digits")
		default:
			project.Route = &normalized
		}
	}

	resolved := showcase.ResolvedRoute(project)
	if showcase.IsReserved(strings.TrimPrefix(resolved, "/")) {
		return errs.NewInvalidFieldError("route", fmt.Sprintf("%s is reserved by the site", resolved))
	}

	projects, err := h.projectRepo.FindAll()
	if err != nil {
		return wrapDatabaseError("find", "projects", err)
	}
	// A project answers on its stored and its derived route; neither may
	// overlap with a route another project already answers on.
	candidate := showcase.MatchableRoutes(project)
	for _, other := range projects {
		if other.ID == project.ID {
			continue
		}
		for _, route := range showcase.MatchableRoutes(other) {
			if slices.Contains(candidate, route) {
				return errs.NewConflictError(fmt.Sprintf("route %s is already used by %s", route, other.Name))
			}
		}
	}

	return nil
}

// uuidParam parses a UUID path parameter
func uuidParam(r *http.Request, name string) (uuid.UUID, error) {
	raw := chi.URLParam(r, name)
	if raw == "" {
		return uuid.Nil, errs.NewBadRequestError("missing " + name)
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errs.NewBadRequestError("invalid " + name)
	}
	return id, nil
}
