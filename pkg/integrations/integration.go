package integrations

import (
	"go.uber.org/zap"

	"github.com/DominusMortem/foodgram-project-react/pkg/integrations/schema-org"
	"github.com/DominusMortem/foodgram-project-react/pkg/model"
)

// Integration reads a recipe draft from an external page.
type Integration interface {
	FindRecipe(url string) (*model.ImportedRecipe, error)
}

func GetIntegration(name string, logger *zap.Logger) Integration {
	if name == schemaorg.IntegrationName {
		return schemaorg.NewSchemaOrgIntegration(logger)
	}

	return nil
}
