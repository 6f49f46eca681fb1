package schemaorg

import (
	"github.com/gocolly/colly/v2"
	"go.uber.org/zap"
)

const (
	IntegrationName = "schema_org"
	userAgent       = "Foodgram recipe importer"
)

type SchemaOrgIntegration struct {
	logger *zap.Logger
}

func NewSchemaOrgIntegration(logger *zap.Logger) *SchemaOrgIntegration {
	return &SchemaOrgIntegration{logger: logger}
}

func (s *SchemaOrgIntegration) newCollector() *colly.Collector {
	return colly.NewCollector(
		colly.UserAgent(userAgent),
		colly.MaxDepth(1),
	)
}
