package showcase

import "github.com/rpupo63/storefront-site-backend/models"

// Resolve finds the project a URL segment refers to. A project matches when
// its stored route equals "/"+segment or its derived route does; the first
// match in iteration order wins. ok is false when nothing matches.
//
// Stored routes are compared verbatim; only the derived route is normalized.
func Resolve(segment string, projects []*models.Project) (project *models.Project, ok bool) {
	if segment == "" {
		return nil, false
	}

	target := "/" + segment
	for _, p := range projects {
		if p == nil {
			continue
		}
		if p.RouteValue() == target || DeriveRoute(p.Name) == target {
			return p, true
		}
	}
	return nil, false
}
