package showcase

import (
	"testing"

	"github.com/rpupo63/storefront-site-backend/models"
	"github.com/stretchr/testify/assert"
)

func TestDeriveSlug(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Test App", "test-app"},
		{"My Cool App!", "my-cool-app-"},
		{"  Spaced  Out  ", "-spaced-out-"},
		{"Ünïcode Tool", "-n-code-tool"},
		{"v2.0 -- Release", "v2-0-release"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveSlug(tt.name))
		})
	}
}

func TestResolvedRoute(t *testing.T) {
	assert.Equal(t, "/custom", ResolvedRoute(newProject("Whatever", withRoute("/custom"))))
	assert.Equal(t, "/test-app", ResolvedRoute(newProject("Test App")))
	assert.Equal(t, "/test-app", ResolvedRoute(newProject("Test App", withRoute(""))))
}

func TestMatchableRoutes(t *testing.T) {
	assert.Equal(t, []string{"/bar", "/foo"}, MatchableRoutes(newProject("Foo", withRoute("/bar"))))
	assert.Equal(t, []string{"/foo"}, MatchableRoutes(newProject("Foo", withRoute("/foo"))))
	assert.Equal(t, []string{"/foo"}, MatchableRoutes(newProject("Foo")))

	// every listed route resolves back to the project
	p := newProject("Foo", withRoute("/bar"))
	for _, route := range MatchableRoutes(p) {
		got, ok := Resolve(route[1:], []*models.Project{p})
		assert.True(t, ok, route)
		assert.Same(t, p, got)
	}
}

func TestNormalizeRoute(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"/agent-kit", "/agent-kit"},
		{"agent-kit", "/agent-kit"},
		{"/Agent Kit/", "/agent-kit"},
		{"  /My Cool App!  ", "/my-cool-app-"},
		{"/", ""},
		{"", ""},
		{"!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeRoute(tt.raw))
		})
	}
}

func TestNormalizedRouteResolvesLikeDerived(t *testing.T) {
	name := "Partner Portal 3000"
	assert.Equal(t, DeriveRoute(name), NormalizeRoute(name))
}

func TestIsReserved(t *testing.T) {
	assert.True(t, IsReserved("admin"))
	assert.True(t, IsReserved("API"))
	assert.True(t, IsReserved("contact"))
	assert.False(t, IsReserved("agent-kit"))
	assert.False(t, IsReserved(""))
	assert.ElementsMatch(t, []string{"admin", "api", "auth", "contact", "health", "metrics"}, ReservedSegments())
}
