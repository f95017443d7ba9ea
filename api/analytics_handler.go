package api

import (
	"net/http"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rpupo63/storefront-site-backend/database"
	"github.com/rpupo63/storefront-site-backend/models"
	"github.com/rpupo63/storefront-site-backend/showcase"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const topProjectsLimit = 5

type analyticsHandler struct {
	responder   Responder
	logger      zerolog.Logger
	projectRepo *database.ProjectRepo
	leadRepo    *database.ProjectLeadRepo
}

func newAnalyticsHandler(projectRepo *database.ProjectRepo, leadRepo *database.ProjectLeadRepo) analyticsHandler {
	logger := log.With().Str("handlerName", "analyticsHandler").Logger()

	return analyticsHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		projectRepo: projectRepo,
		leadRepo:    leadRepo,
	}
}

type ProjectLeadStat struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Route     string    `json:"route"`
	LeadCount int       `json:"lead_count"`
}

type AnalyticsResponse struct {
	TotalProjects      int                        `json:"total_projects"`
	TotalLeads         int                        `json:"total_leads"`
	LeadsByInquiryType map[models.InquiryType]int `json:"leads_by_inquiry_type"`
	LeadsByStatus      map[models.LeadStatus]int  `json:"leads_by_status"`
	ProjectsByCategory map[models.Category]int    `json:"projects_by_category"`
	TopProjects        []ProjectLeadStat          `json:"top_projects"`
	GeneratedAt        time.Time                  `json:"generated_at"`
}

// getAnalytics aggregates the catalog and the lead pipeline
// @Summary Dashboard analytics
// @Tags Analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} AnalyticsResponse
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching data"
// @Router /admin/analytics [get]
func (h analyticsHandler) getAnalytics() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var (
			projects []*models.Project
			leads    []*models.ProjectLead
		)

		var g errgroup.Group
		g.Go(func() error {
			var err error
			projects, err = h.projectRepo.FindAll()
			if err != nil {
				return wrapDatabaseError("find", "projects", err)
			}
			return nil
		})
		g.Go(func() error {
			var err error
			leads, err = h.leadRepo.FindAll(database.LeadFilter{})
			if err != nil {
				return wrapDatabaseError("find", "leads", err)
			}
			return nil
		})
		if err := g.Wait(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, summarize(projects, leads, time.Now().UTC()))
	}
}

func summarize(projects []*models.Project, leads []*models.ProjectLead, now time.Time) AnalyticsResponse {
	response := AnalyticsResponse{
		TotalProjects:      len(projects),
		TotalLeads:         len(leads),
		LeadsByInquiryType: map[models.InquiryType]int{},
		LeadsByStatus:      map[models.LeadStatus]int{},
		ProjectsByCategory: map[models.Category]int{},
		TopProjects:        []ProjectLeadStat{},
		GeneratedAt:        now,
	}

	for _, lead := range leads {
		response.LeadsByInquiryType[lead.InquiryType]++
		response.LeadsByStatus[lead.Status]++
	}

	ranked := make([]*models.Project, 0, len(projects))
	for _, project := range projects {
		response.ProjectsByCategory[project.Category]++
		if project.LeadCount > 0 {
			ranked = append(ranked, project)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].LeadCount != ranked[j].LeadCount {
			return ranked[i].LeadCount > ranked[j].LeadCount
		}
		return ranked[i].Name < ranked[j].Name
	})
	if len(ranked) > topProjectsLimit {
		ranked = ranked[:topProjectsLimit]
	}
	for _, project := range ranked {
		response.TopProjects = append(response.TopProjects, ProjectLeadStat{
			ID:        project.ID,
			Name:      project.Name,
			Route:     showcase.ResolvedRoute(project),
			LeadCount: project.LeadCount,
		})
	}

	return response
}
