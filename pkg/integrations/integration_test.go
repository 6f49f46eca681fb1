package integrations_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"

	"github.com/DominusMortem/foodgram-project-react/pkg/integrations"
)

func TestGetIntegration(t *testing.T) {
	logger := zaptest.NewLogger(t)

	assert.NotNil(t, integrations.GetIntegration("schema_org", logger))
	assert.Nil(t, integrations.GetIntegration("unknown", logger))
}
