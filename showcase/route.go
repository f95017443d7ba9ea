// Package showcase turns stored projects into project pages: it resolves URL
// segments to projects, decides which page template fits their content,
// composes the render plan and captures the leads produced by page actions.
package showcase

import (
	"regexp"
	"strings"

	"github.com/rpupo63/storefront-site-backend/models"
)

var nonSlugRun = regexp.MustCompile(`[^a-z0-9]+`)

// reservedSegments are served by concrete routes and never resolve to a project
var reservedSegments = map[string]bool{
	"admin":   true,
	"api":     true,
	"auth":    true,
	"contact": true,
	"health":  true,
	"metrics": true,
}

// DeriveSlug lower-cases name and collapses every run of characters outside
// [a-z0-9] into a single hyphen. Leading and trailing hyphens are kept.
func DeriveSlug(name string) string {
	return nonSlugRun.ReplaceAllString(strings.ToLower(name), "-")
}

// DeriveRoute is the route a project answers to when it stores none
func DeriveRoute(name string) string {
	return "/" + DeriveSlug(name)
}

// ResolvedRoute is the route the resolver will match first for project:
// the stored route when present, the derived one otherwise
func ResolvedRoute(project *models.Project) string {
	if route := project.RouteValue(); route != "" {
		return route
	}
	return DeriveRoute(project.Name)
}

// MatchableRoutes lists every route Resolve can match project on: the stored
// route when present, then the derived one
func MatchableRoutes(project *models.Project) []string {
	derived := DeriveRoute(project.Name)
	route := project.RouteValue()
	if route == "" || route == derived {
		return []string{derived}
	}
	return []string{route, derived}
}

// NormalizeRoute turns an admin supplied route into the stored form.
// Returns "" when nothing routable is left.
func NormalizeRoute(raw string) string {
	trimmed := strings.Trim(strings.TrimSpace(raw), "/")
	if trimmed == "" {
		return ""
	}
	slug := DeriveSlug(trimmed)
	if strings.Trim(slug, "-") == "" {
		return ""
	}
	return "/" + slug
}

// IsReserved reports whether segment belongs to a concrete route
func IsReserved(segment string) bool {
	return reservedSegments[strings.ToLower(segment)]
}

// ReservedSegments lists the segments owned by concrete routes
func ReservedSegments() []string {
	out := make([]string, 0, len(reservedSegments))
	for segment := range reservedSegments {
		out = append(out, segment)
	}
	return out
}
