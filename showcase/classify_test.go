package showcase

import (
	"testing"

	"github.com/rpupo63/storefront-site-backend/models"
	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func TestClassify(t *testing.T) {
	feature := models.KeyFeature{Icon: "bolt", Title: "X", Description: "Y"}

	tests := []struct {
		name    string
		project *models.Project
		want    Shape
	}{
		{"bare", newProject("Bare"), Fallback},
		{"features only", newProject("F", withFeatures(feature)), Rich},
		{"overview only", newProject("O", withOverview("", "Something")), Rich},
		{"title without overview", newProject("T", withOverview("About", "")), Fallback},
		{"stats and use cases only", newProject("S", func(p *models.Project) {
			p.Stats = datatypes.JSONSlice[models.Stat]{{Label: "Users", Value: "10"}}
			p.UseCases = datatypes.JSONSlice[models.UseCase]{{Title: "Sales"}}
		}), Fallback},
		{"price only", newProject("P", withPrice(100)), Fallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.project))
		})
	}
}

func TestClassify_FeaturesFlipShape(t *testing.T) {
	project := newProject("Flip")
	assert.Equal(t, Fallback, Classify(project))

	project.KeyFeatures = append(project.KeyFeatures, models.KeyFeature{Title: "X"})
	assert.Equal(t, Rich, Classify(project))

	project.KeyFeatures = project.KeyFeatures[:0]
	assert.Equal(t, Fallback, Classify(project))
}
