package cmd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/DominusMortem/foodgram-project-react/pkg/model"
)

func TestReadIngredients(t *testing.T) {
	input := `[
		{"name": "абрикосовое варенье", "measurement_unit": "г"},
		{"name": "", "measurement_unit": "г"},
		{"name": "flour", "measurement_unit": "g"}
	]`

	ingredients, err := readIngredients(strings.NewReader(input))

	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 1)
	assert.ErrorContains(t, err, "ingredient 1")
	assert.Equal(t, []model.Ingredient{
		{Name: "абрикосовое варенье", MeasurementUnit: "г"},
		{Name: "flour", MeasurementUnit: "g"},
	}, ingredients)
}

func TestReadIngredients_Malformed(t *testing.T) {
	ingredients, err := readIngredients(strings.NewReader(`{"name": "flour"}`))

	require.Error(t, err)
	assert.Nil(t, ingredients)
}

func TestReadTags(t *testing.T) {
	input := `[
		{"name": "Breakfast", "color": "#E26C2D", "slug": "breakfast"},
		{"name": "Lunch", "color": "green", "slug": "lunch"},
		{"name": "Dinner", "color": "#8775D2", "slug": ""}
	]`

	tags, err := readTags(strings.NewReader(input))

	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 2)
	require.Len(t, tags, 1)
	assert.Equal(t, "breakfast", tags[0].Slug)
}
