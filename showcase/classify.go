package showcase

import "github.com/rpupo63/storefront-site-backend/models"

// Shape names the page template a project gets
type Shape string

const (
	Rich     Shape = "rich"
	Fallback Shape = "fallback"
)

// Classify picks Rich when the project has at least one key feature or a
// non-empty overview. Nothing else qualifies a project for the rich page.
func Classify(project *models.Project) Shape {
	if len(project.KeyFeatures) > 0 || project.Content.Data().Overview != "" {
		return Rich
	}
	return Fallback
}
