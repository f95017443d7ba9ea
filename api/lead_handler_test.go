package api

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/rpupo63/storefront-site-backend/database"
	"github.com/rpupo63/storefront-site-backend/models"
	"github.com/rpupo63/storefront-site-backend/showcase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaptureInquiry_StoresLeadAndCounts(t *testing.T) {
	env := newTestEnv(t)
	project := env.seedProject(testApp())
	path := "/api/projects/" + project.ID.String() + "/inquiries/demo"

	rec := env.do(http.MethodPost, path, nil)
	require.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())
	assert.Equal(t, "accepted", decode[CaptureResponse](t, rec).Status)
	assert.NotEmpty(t, rec.Result().Cookies(), "capture should issue a session cookie")

	leads := env.leads()
	require.Len(t, leads, 1)
	assert.Equal(t, models.InquiryDemo, leads[0].InquiryType)
	assert.Equal(t, "Demo Request", leads[0].Name)
	assert.Equal(t, "demo@placeholder.com", leads[0].Email)
	assert.Equal(t, "Demo requested for Test App", leads[0].Message)
	assert.Equal(t, models.LeadStatusNew, leads[0].Status)
	assert.Equal(t, 1, env.findProject(project).LeadCount)

	rec = env.do(http.MethodPost, path, nil)
	require.Equal(t, http.StatusAccepted, rec.Code)
	assert.Len(t, env.leads(), 2)
	assert.Equal(t, 2, env.findProject(project).LeadCount)
}

func TestCaptureInquiry_Errors(t *testing.T) {
	env := newTestEnv(t)
	project := env.seedProject(testApp())

	tests := []struct {
		name   string
		path   string
		status int
	}{
		{"unknown inquiry", "/api/projects/" + project.ID.String() + "/inquiries/spam", http.StatusBadRequest},
		{"bad project id", "/api/projects/nope/inquiries/demo", http.StatusBadRequest},
		{"unknown project", "/api/projects/" + uuid.NewString() + "/inquiries/demo", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, env.do(http.MethodPost, tt.path, nil).Code)
		})
	}

	assert.Empty(t, env.leads())
	assert.Zero(t, env.findProject(project).LeadCount)
}

func TestCaptureInquiry_PoolRejects(t *testing.T) {
	env := newTestEnv(t, WithSubmitter(rejectingSubmitter{}))
	project := env.seedProject(testApp())

	rec := env.do(http.MethodPost, "/api/projects/"+project.ID.String()+"/inquiries/purchase", nil)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Empty(t, env.leads())
}

func TestSubmitContact(t *testing.T) {
	env := newTestEnv(t)
	project := env.seedProject(testApp())

	rec := env.do(http.MethodPost, "/api/contact", map[string]any{
		"name":         "Ada Lovelace",
		"email":        "ada@example.com",
		"company":      "Engines Ltd",
		"message":      "Can we get a volume license?",
		"project_id":   project.ID.String(),
		"inquiry_type": "purchase",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	lead := decode[models.ProjectLead](t, rec)
	assert.Equal(t, "Ada Lovelace", lead.Name)
	assert.Equal(t, models.InquiryPurchase, lead.InquiryType)
	require.NotNil(t, lead.ProjectID)
	assert.Equal(t, project.ID, *lead.ProjectID)
	assert.Equal(t, 1, env.findProject(project).LeadCount)

	require.Len(t, env.mailer.sent, 1)
	assert.Equal(t, []string{"sales@example.com"}, env.mailer.sent[0].recipients)
	assert.Contains(t, env.mailer.sent[0].html, "Engines Ltd")
	assert.Contains(t, env.mailer.sent[0].html, "Test App")
}

func TestSubmitContact_WithoutProject(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/api/contact", map[string]any{
		"name":    "Grace",
		"email":   "grace@example.com",
		"message": "Hello",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	lead := decode[models.ProjectLead](t, rec)
	assert.Equal(t, models.InquiryContact, lead.InquiryType)
	assert.Nil(t, lead.ProjectID)
}

func TestSubmitContact_Validation(t *testing.T) {
	env := newTestEnv(t)

	valid := func(overrides map[string]any) map[string]any {
		body := map[string]any{"name": "Ada", "email": "ada@example.com", "message": "Hi"}
		for k, v := range overrides {
			body[k] = v
		}
		return body
	}

	tests := []struct {
		name   string
		body   map[string]any
		status int
		field  string
	}{
		{"missing name", valid(map[string]any{"name": " "}), http.StatusBadRequest, "name"},
		{"missing email", valid(map[string]any{"email": ""}), http.StatusBadRequest, "email"},
		{"bad email", valid(map[string]any{"email": "not-an-email"}), http.StatusBadRequest, "email"},
		{"missing message", valid(map[string]any{"message": ""}), http.StatusBadRequest, "message"},
		{"bad inquiry", valid(map[string]any{"inquiry_type": "spam"}), http.StatusBadRequest, "inquiry_type"},
		{"bad project id", valid(map[string]any{"project_id": "123"}), http.StatusBadRequest, "project_id"},
		{"unknown project", valid(map[string]any{"project_id": uuid.NewString()}), http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(http.MethodPost, "/api/contact", tt.body)
			require.Equal(t, tt.status, rec.Code, rec.Body.String())
			assert.Equal(t, tt.field, decode[ErrorResponse](t, rec).Field)
		})
	}

	assert.Empty(t, env.leads())
	assert.Empty(t, env.mailer.sent)
}

func TestAdminLeads(t *testing.T) {
	env := newTestEnv(t)
	project := env.seedProject(testApp())
	repo := database.NewProjectLeadRepo(env.db)

	demo := showcase.PlaceholderLead(project, models.InquiryDemo)
	require.NoError(t, repo.Add(demo))
	require.NoError(t, repo.Add(showcase.PlaceholderLead(project, models.InquiryPurchase)))
	require.NoError(t, repo.Add(&models.ProjectLead{Name: "Walk-in", Email: "w@example.com", InquiryType: models.InquiryContact}))

	all := decode[LeadCollection](t, env.admin(http.MethodGet, "/admin/leads", nil))
	assert.Equal(t, 3, all.Total)

	byType := decode[LeadCollection](t, env.admin(http.MethodGet, "/admin/leads?inquiry_type=demo", nil))
	require.Equal(t, 1, byType.Total)
	assert.Equal(t, demo.ID, byType.Leads[0].ID)
	require.NotNil(t, byType.Leads[0].Project)
	assert.Equal(t, "Test App", byType.Leads[0].Project.Name)

	byProject := decode[LeadCollection](t, env.admin(http.MethodGet, "/admin/leads?project_id="+project.ID.String(), nil))
	assert.Equal(t, 2, byProject.Total)

	for _, query := range []string{"status=archived", "inquiry_type=spam", "project_id=x"} {
		assert.Equal(t, http.StatusBadRequest, env.admin(http.MethodGet, "/admin/leads?"+query, nil).Code, query)
	}

	path := "/admin/leads/" + demo.ID.String()
	rec := env.admin(http.MethodPatch, path, LeadStatusUpdate{Status: models.LeadStatusQualified})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, models.LeadStatusQualified, decode[models.ProjectLead](t, rec).Status)

	qualified := decode[LeadCollection](t, env.admin(http.MethodGet, "/admin/leads?status=qualified", nil))
	assert.Equal(t, 1, qualified.Total)

	assert.Equal(t, http.StatusBadRequest, env.admin(http.MethodPatch, path, LeadStatusUpdate{Status: "archived"}).Code)
	assert.Equal(t, http.StatusBadRequest, env.admin(http.MethodPatch, path, LeadStatusUpdate{}).Code)
	assert.Equal(t, http.StatusNotFound, env.admin(http.MethodPatch, "/admin/leads/"+uuid.NewString(), LeadStatusUpdate{Status: models.LeadStatusWon}).Code)

	require.Equal(t, http.StatusOK, env.admin(http.MethodDelete, path, nil).Code)
	assert.Equal(t, http.StatusNotFound, env.admin(http.MethodDelete, path, nil).Code)
	assert.Len(t, env.leads(), 2)
}

func TestGetNotices(t *testing.T) {
	env := newTestEnv(t)
	env.notices.Notify("session-a", showcase.Notice{Level: showcase.NoticeError, Message: "We could not record your request"})

	rec := env.do(http.MethodGet, "/api/notices", nil, sessionHeader, "session-a")
	require.Equal(t, http.StatusOK, rec.Code)
	notices := decode[NoticeCollection](t, rec).Notices
	require.Len(t, notices, 1)
	assert.Equal(t, showcase.NoticeError, notices[0].Level)

	again := decode[NoticeCollection](t, env.do(http.MethodGet, "/api/notices", nil, sessionHeader, "session-a"))
	assert.Empty(t, again.Notices)

	anonymous := decode[NoticeCollection](t, env.do(http.MethodGet, "/api/notices", nil))
	assert.NotNil(t, anonymous.Notices)
	assert.Empty(t, anonymous.Notices)
}
