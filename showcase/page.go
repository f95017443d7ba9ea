package showcase

import (
	"fmt"

	"github.com/rpupo63/storefront-site-backend/metrics"
	"github.com/rpupo63/storefront-site-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// PageState is the lifecycle of one project page view
type PageState string

const (
	StateLoading  PageState = "loading"
	StateFound    PageState = "found"
	StateNotFound PageState = "not_found"
)

// NotFoundReason tells apart the ways a page ends up not found
type NotFoundReason string

const (
	ReasonMissing     NotFoundReason = "missing"
	ReasonFetchFailed NotFoundReason = "fetch_failed"
	ReasonReserved    NotFoundReason = "reserved"
)

// Page moves from Loading to exactly one of Found or NotFound and stays
// there until Navigate starts over with a new segment
type Page struct {
	Segment string          `json:"segment"`
	State   PageState       `json:"state"`
	Reason  NotFoundReason  `json:"reason,omitempty"`
	Project *models.Project `json:"-"`
	Plan    *RenderPlan     `json:"plan,omitempty"`
}

func NewPage(segment string) *Page {
	return &Page{Segment: segment, State: StateLoading}
}

// Navigate resets the page to Loading for segment
func (p *Page) Navigate(segment string) {
	*p = Page{Segment: segment, State: StateLoading}
}

func (p *Page) found(project *models.Project, plan RenderPlan) bool {
	if p.State != StateLoading {
		return false
	}
	p.State = StateFound
	p.Project = project
	p.Plan = &plan
	return true
}

func (p *Page) notFound(reason NotFoundReason) bool {
	if p.State != StateLoading {
		return false
	}
	p.State = StateNotFound
	p.Reason = reason
	return true
}

// ProjectSource lists every project the resolver may match
type ProjectSource interface {
	FindAll() ([]*models.Project, error)
}

// Loader runs fetch, resolve, classify and compose for a page, in that order
type Loader struct {
	projects ProjectSource
	logger   zerolog.Logger
}

func NewLoader(projects ProjectSource) *Loader {
	return &Loader{
		projects: projects,
		logger:   log.With().Str("component", "pageLoader").Logger(),
	}
}

// Load returns a settled page for segment. It never fails: fetch errors and
// panics degrade to NotFound after being logged.
func (l *Loader) Load(segment string) *Page {
	page := NewPage(segment)
	l.Run(page)
	return page
}

// Run settles a page that is Loading. Pages in any other state are left alone.
func (l *Loader) Run(page *Page) {
	if page.State != StateLoading {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			l.logger.Error().Err(fmt.Errorf("%v", r)).Str("segment", page.Segment).Msg("page load panicked")
			page.notFound(ReasonFetchFailed)
			metrics.RecordPageResolution(string(ReasonFetchFailed))
		}
	}()

	if IsReserved(page.Segment) {
		l.logger.Warn().Str("segment", page.Segment).Msg("reserved segment reached the project resolver")
		page.notFound(ReasonReserved)
		metrics.RecordPageResolution("not_found")
		return
	}

	projects, err := l.projects.FindAll()
	if err != nil {
		l.logger.Error().Err(err).Str("segment", page.Segment).Msg("failed to fetch projects for page")
		page.notFound(ReasonFetchFailed)
		metrics.RecordPageResolution(string(ReasonFetchFailed))
		return
	}

	project, ok := Resolve(page.Segment, projects)
	if !ok {
		l.logger.Debug().Str("segment", page.Segment).Msg("project not found")
		page.notFound(ReasonMissing)
		metrics.RecordPageResolution("not_found")
		return
	}

	shape := Classify(project)
	page.found(project, Compose(project, shape))
	metrics.RecordPageResolution("found")
	metrics.RecordPageTemplate(string(shape))
}
