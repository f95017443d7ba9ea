package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/rpupo63/storefront-site-backend/database"
	"github.com/rpupo63/storefront-site-backend/database/databasetest"
	"github.com/rpupo63/storefront-site-backend/models"
	"github.com/rpupo63/storefront-site-backend/showcase"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	testPassword = "correct horse"
	testSecret   = "test-secret"
)

// inlineSubmitter runs tasks before Submit returns so tests see their effects immediately
type inlineSubmitter struct{}

func (inlineSubmitter) Submit(task func()) error {
	task()
	return nil
}

type rejectingSubmitter struct{}

func (rejectingSubmitter) Submit(func()) error { return errPoolFull }

var errPoolFull = errors.New("pool overload")

type sentMail struct {
	subject    string
	html       string
	recipients []string
}

type recordingMailer struct {
	mu   sync.Mutex
	sent []sentMail
}

func (m *recordingMailer) SendEmail(subject, html string, recipients []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, sentMail{subject, html, recipients})
	return nil
}

type testEnv struct {
	t       *testing.T
	db      *gorm.DB
	handler http.Handler
	notices *showcase.NoticeBoard
	mailer  *recordingMailer
}

func newTestEnv(t *testing.T, opts ...RouterOption) *testEnv {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	env := &testEnv{
		t:       t,
		db:      databasetest.New(t),
		notices: showcase.NewNoticeBoard(10),
		mailer:  &recordingMailer{},
	}

	cfg := map[string]string{
		"JWT_SECRET":                testSecret,
		"BACKEND_PASSWORD_HASH":     string(hash),
		"ACCEPTED_ORIGINS":          "https://shop.example.com",
		"SALES_NOTIFICATION_EMAILS": "sales@example.com",
		"SITE_NAME":                 "Storefront",
	}

	all := append([]RouterOption{
		WithConfig(cfg),
		WithSubmitter(inlineSubmitter{}),
		WithMailer(env.mailer),
		WithNoticeBoard(env.notices),
	}, opts...)

	handler, err := newRouter(database.New(env.db), all...)
	require.NoError(t, err)
	env.handler = handler
	return env
}

func (e *testEnv) do(method, path string, body any, headers ...string) *httptest.ResponseRecorder {
	e.t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(e.t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) admin(method, path string, body any) *httptest.ResponseRecorder {
	e.t.Helper()
	token, _, err := issueAdminToken([]byte(testSecret), time.Hour, time.Now())
	require.NoError(e.t, err)
	return e.do(method, path, body, "Authorization", "Bearer "+token)
}

func (e *testEnv) seedProject(p *models.Project) *models.Project {
	e.t.Helper()
	require.NoError(e.t, database.NewProjectRepo(e.db).Add(p))
	return p
}

func (e *testEnv) findProject(p *models.Project) *models.Project {
	e.t.Helper()
	found, err := database.NewProjectRepo(e.db).FindByID(p.ID)
	require.NoError(e.t, err)
	return found
}

func (e *testEnv) leads() []*models.ProjectLead {
	e.t.Helper()
	leads, err := database.NewProjectLeadRepo(e.db).FindAll(database.LeadFilter{})
	require.NoError(e.t, err)
	return leads
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func ptr[T any](v T) *T { return &v }

// testApp is the for-sale project used across the page tests
func testApp() *models.Project {
	return &models.Project{
		Name:     "Test App",
		Category: models.CategoryForSale,
		Status:   models.StatusForSale,
		Price:    ptr(500.0),
		KeyFeatures: datatypes.JSONSlice[models.KeyFeature]{
			{Title: "X", Description: "Y", Icon: "I"},
		},
	}
}
