package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/rpupo63/storefront-site-backend/models"
	"github.com/rpupo63/storefront-site-backend/showcase"
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	healthHandler    healthHandler
	projectHandler   projectHandler
	pageHandler      pageHandler
	leadHandler      leadHandler
	noticeHandler    noticeHandler
	authHandler      authHandler
	analyticsHandler analyticsHandler
}

// ErrorResponse represents an error response from the API
// @Description Error response structure
type ErrorResponse struct {
	Error   string `json:"error" example:"Internal Server Error"`
	Status  string `json:"status" example:"error"`
	Field   string `json:"field,omitempty" example:"route"`
	Details string `json:"details,omitempty" example:"Additional error details"`
	Cause   string `json:"cause,omitempty" example:"Underlying error cause"`
}

// ProjectSummary is the public catalog entry of a project
type ProjectSummary struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Category     models.Category `json:"category"`
	Status       models.Status   `json:"status"`
	Route        string          `json:"route"`
	HeroImageURL *string         `json:"hero_image_url,omitempty"`
	Price        *float64        `json:"price,omitempty"`
	PriceDisplay string          `json:"price_display,omitempty"`
}

func newProjectSummary(p *models.Project) ProjectSummary {
	summary := ProjectSummary{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Category:     p.Category,
		Status:       p.Status,
		Route:        showcase.ResolvedRoute(p),
		HeroImageURL: p.HeroImageURL,
		Price:        p.Price,
	}
	if p.Price != nil && *p.Price != 0 {
		summary.PriceDisplay = showcase.FormatCurrency(*p.Price)
	}
	return summary
}

// ProjectResponse is a stored project plus the route the resolver answers to
type ProjectResponse struct {
	models.Project
	ResolvedRoute string `json:"resolved_route"`
}

type ProjectCollection struct {
	Projects []ProjectResponse `json:"projects"`
	Total    int               `json:"total"`
}

type LeadCollection struct {
	Leads []*models.ProjectLead `json:"leads"`
	Total int                   `json:"total"`
}

// CaptureResponse acknowledges a queued lead capture
type CaptureResponse struct {
	Status      string             `json:"status"`
	ProjectID   uuid.UUID          `json:"project_id"`
	InquiryType models.InquiryType `json:"inquiry_type"`
}

type PageResponse struct {
	Segment string                  `json:"segment"`
	State   showcase.PageState      `json:"state"`
	Reason  showcase.NotFoundReason `json:"reason,omitempty"`
	Project *ProjectSummary         `json:"project,omitempty"`
	Plan    *showcase.RenderPlan    `json:"plan,omitempty"`
}

type NoticeCollection struct {
	Notices []showcase.Notice `json:"notices"`
}

type LoginRequest struct {
	Password string `json:"password"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type LeadStatusUpdate struct {
	Status models.LeadStatus `json:"status"`
}
