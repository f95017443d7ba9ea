package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/auth/login", LoginRequest{Password: testPassword})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	login := decode[LoginResponse](t, rec)
	assert.NotEmpty(t, login.Token)
	assert.True(t, login.ExpiresAt.After(time.Now()))

	rec = env.do(http.MethodGet, "/admin/projects", nil, "Authorization", "Bearer "+login.Token)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLogin_Rejections(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/auth/login", LoginRequest{Password: "wrong"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.do(http.MethodPost, "/auth/login", LoginRequest{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "password", decode[ErrorResponse](t, rec).Field)

	rec = env.do(http.MethodPost, "/auth/login", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin_DisabledWithoutHash(t *testing.T) {
	env := newTestEnv(t, WithConfig(map[string]string{"JWT_SECRET": testSecret}))

	rec := env.do(http.MethodPost, "/auth/login", LoginRequest{Password: testPassword})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminRoutesRequireToken(t *testing.T) {
	env := newTestEnv(t)

	expired, _, err := issueAdminToken([]byte(testSecret), time.Hour, time.Now().Add(-2*time.Hour))
	require.NoError(t, err)
	foreign, _, err := issueAdminToken([]byte("someone-else"), time.Hour, time.Now())
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{"missing", ""},
		{"not bearer", "Basic abc"},
		{"empty bearer", "Bearer "},
		{"garbage", "Bearer not-a-jwt"},
		{"expired", "Bearer " + expired},
		{"wrong secret", "Bearer " + foreign},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(http.MethodGet, "/admin/leads", nil, "Authorization", tt.header)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestParseAdminToken(t *testing.T) {
	token, expiresAt, err := issueAdminToken([]byte(testSecret), 12*time.Hour, time.Now())
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(12*time.Hour), expiresAt, 2*time.Second)

	subject, err := parseAdminToken(token, []byte(testSecret))
	require.NoError(t, err)
	assert.Equal(t, adminSubject, subject)
}
