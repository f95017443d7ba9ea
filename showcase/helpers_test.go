package showcase

import (
	"github.com/google/uuid"
	"github.com/rpupo63/storefront-site-backend/models"
	"gorm.io/datatypes"
)

func ptr[T any](v T) *T { return &v }

func newProject(name string, opts ...func(*models.Project)) *models.Project {
	p := &models.Project{
		ID:       uuid.New(),
		Name:     name,
		Category: models.CategoryFeatured,
		Status:   models.StatusLive,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func withRoute(route string) func(*models.Project) {
	return func(p *models.Project) { p.Route = &route }
}

func withCategory(c models.Category) func(*models.Project) {
	return func(p *models.Project) { p.Category = c }
}

func withStatus(s models.Status) func(*models.Project) {
	return func(p *models.Project) { p.Status = s }
}

func withFeatures(features ...models.KeyFeature) func(*models.Project) {
	return func(p *models.Project) { p.KeyFeatures = datatypes.JSONSlice[models.KeyFeature](features) }
}

func withOverview(title, overview string) func(*models.Project) {
	return func(p *models.Project) {
		p.Content = datatypes.NewJSONType(models.ProjectContent{Title: title, Overview: overview})
	}
}

func withPrice(price float64) func(*models.Project) {
	return func(p *models.Project) { p.Price = &price }
}

func withPurchaseInfo(info models.PurchaseInfo) func(*models.Project) {
	return func(p *models.Project) { p.PurchaseInfo = datatypes.NewJSONType(info) }
}
