package showcase

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rpupo63/storefront-site-backend/metrics"
	"github.com/rpupo63/storefront-site-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticSource struct {
	projects []*models.Project
	err      error
	calls    int
}

func (s *staticSource) FindAll() ([]*models.Project, error) {
	s.calls++
	return s.projects, s.err
}

type panickingSource struct{}

func (panickingSource) FindAll() ([]*models.Project, error) { panic("driver bug") }

func TestLoader_Found(t *testing.T) {
	project := newProject("Test App", withFeatures(models.KeyFeature{Title: "X"}))
	loader := NewLoader(&staticSource{projects: []*models.Project{project}})

	before := testutil.ToFloat64(metrics.PageTemplates.WithLabelValues("rich"))
	page := loader.Load("test-app")

	assert.Equal(t, StateFound, page.State)
	assert.Empty(t, page.Reason)
	assert.Same(t, project, page.Project)
	require.NotNil(t, page.Plan)
	assert.Equal(t, Rich, page.Plan.Template)
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.PageTemplates.WithLabelValues("rich")))
}

func TestLoader_NotFoundReasons(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		page := NewLoader(&staticSource{}).Load("ghost")
		assert.Equal(t, StateNotFound, page.State)
		assert.Equal(t, ReasonMissing, page.Reason)
		assert.Nil(t, page.Plan)
	})

	t.Run("empty segment", func(t *testing.T) {
		page := NewLoader(&staticSource{projects: []*models.Project{newProject("")}}).Load("")
		assert.Equal(t, StateNotFound, page.State)
	})

	t.Run("fetch failed", func(t *testing.T) {
		before := testutil.ToFloat64(metrics.PageResolutions.WithLabelValues("fetch_failed"))
		page := NewLoader(&staticSource{err: errors.New("timeout")}).Load("test-app")
		assert.Equal(t, StateNotFound, page.State)
		assert.Equal(t, ReasonFetchFailed, page.Reason)
		assert.Equal(t, before+1, testutil.ToFloat64(metrics.PageResolutions.WithLabelValues("fetch_failed")))
	})

	t.Run("panic", func(t *testing.T) {
		var page *Page
		assert.NotPanics(t, func() { page = NewLoader(panickingSource{}).Load("test-app") })
		assert.Equal(t, StateNotFound, page.State)
		assert.Equal(t, ReasonFetchFailed, page.Reason)
	})

	t.Run("reserved", func(t *testing.T) {
		source := &staticSource{projects: []*models.Project{newProject("Admin")}}
		page := NewLoader(source).Load("admin")
		assert.Equal(t, StateNotFound, page.State)
		assert.Equal(t, ReasonReserved, page.Reason)
		assert.Zero(t, source.calls)
	})
}

func TestLoader_SettledPageIsNotReloaded(t *testing.T) {
	source := &staticSource{projects: []*models.Project{newProject("Test App")}}
	loader := NewLoader(source)

	page := loader.Load("test-app")
	require.Equal(t, StateFound, page.State)

	loader.Run(page)
	assert.Equal(t, 1, source.calls)
}

func TestPage_NavigateStartsOver(t *testing.T) {
	found := newProject("Test App")
	loader := NewLoader(&staticSource{projects: []*models.Project{found}})

	page := loader.Load("test-app")
	require.Equal(t, StateFound, page.State)

	page.Navigate("other")
	assert.Equal(t, StateLoading, page.State)
	assert.Equal(t, "other", page.Segment)
	assert.Nil(t, page.Project)
	assert.Nil(t, page.Plan)

	loader.Run(page)
	assert.Equal(t, StateNotFound, page.State)
	assert.Equal(t, ReasonMissing, page.Reason)
}

func TestPage_TransitionsOnlyFromLoading(t *testing.T) {
	page := NewPage("x")
	require.True(t, page.notFound(ReasonMissing))
	assert.False(t, page.found(newProject("X"), RenderPlan{}))
	assert.False(t, page.notFound(ReasonFetchFailed))
	assert.Equal(t, ReasonMissing, page.Reason)
}

func TestLoader_FallbackScenario(t *testing.T) {
	project := newProject("Quiet Tool", withCategory(models.CategoryInternal), withPrice(42))
	page := NewLoader(&staticSource{projects: []*models.Project{project}}).Load("quiet-tool")

	require.Equal(t, StateFound, page.State)
	assert.Equal(t, Fallback, page.Plan.Template)
	require.Len(t, page.Plan.Actions, 2)
	assert.Equal(t, "Contact Us", page.Plan.Actions[0].Text)
	assert.Equal(t, "Request Demo", page.Plan.Actions[1].Text)
}
