package api

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/rpupo63/storefront-site-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	var projects []*models.Project
	for i, count := range []int{3, 0, 7, 3, 1, 2, 5} {
		projects = append(projects, &models.Project{
			Name:      fmt.Sprintf("P%d", i),
			Category:  models.CategoryFeatured,
			LeadCount: count,
		})
	}
	projects[1].Category = models.CategoryForSale

	leads := []*models.ProjectLead{
		{InquiryType: models.InquiryDemo, Status: models.LeadStatusNew},
		{InquiryType: models.InquiryDemo, Status: models.LeadStatusWon},
		{InquiryType: models.InquiryPurchase, Status: models.LeadStatusNew},
	}

	got := summarize(projects, leads, now)

	assert.Equal(t, 7, got.TotalProjects)
	assert.Equal(t, 3, got.TotalLeads)
	assert.Equal(t, now, got.GeneratedAt)
	assert.Equal(t, map[models.InquiryType]int{models.InquiryDemo: 2, models.InquiryPurchase: 1}, got.LeadsByInquiryType)
	assert.Equal(t, map[models.LeadStatus]int{models.LeadStatusNew: 2, models.LeadStatusWon: 1}, got.LeadsByStatus)
	assert.Equal(t, map[models.Category]int{models.CategoryFeatured: 6, models.CategoryForSale: 1}, got.ProjectsByCategory)

	require.Len(t, got.TopProjects, 5)
	var names []string
	for _, stat := range got.TopProjects {
		names = append(names, stat.Name)
	}
	// ties on lead_count break by name
	assert.Equal(t, []string{"P2", "P6", "P0", "P3", "P5"}, names)
	assert.Equal(t, "/p2", got.TopProjects[0].Route)
}

func TestSummarize_Empty(t *testing.T) {
	got := summarize(nil, nil, time.Now())

	assert.Zero(t, got.TotalProjects)
	assert.NotNil(t, got.TopProjects)
	assert.Empty(t, got.TopProjects)
}

func TestGetAnalytics(t *testing.T) {
	env := newTestEnv(t)
	project := env.seedProject(testApp())

	for _, inquiry := range []string{"demo", "purchase", "demo"} {
		rec := env.do(http.MethodPost, "/api/projects/"+project.ID.String()+"/inquiries/"+inquiry, nil)
		require.Equal(t, http.StatusAccepted, rec.Code)
	}

	assert.Equal(t, http.StatusUnauthorized, env.do(http.MethodGet, "/admin/analytics", nil).Code)

	rec := env.admin(http.MethodGet, "/admin/analytics", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	got := decode[AnalyticsResponse](t, rec)
	assert.Equal(t, 1, got.TotalProjects)
	assert.Equal(t, 3, got.TotalLeads)
	assert.Equal(t, 2, got.LeadsByInquiryType[models.InquiryDemo])
	assert.Equal(t, 3, got.LeadsByStatus[models.LeadStatusNew])
	require.Len(t, got.TopProjects, 1)
	assert.Equal(t, 3, got.TopProjects[0].LeadCount)
	assert.Equal(t, "/test-app", got.TopProjects[0].Route)
}
