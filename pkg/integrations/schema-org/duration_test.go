package schemaorg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDurationMinutes(t *testing.T) {
	tests := map[string]int{
		"":         0,
		"PT45M":    45,
		"PT1H30M":  90,
		"PT2H":     120,
		"P1DT1H":   1500,
		"PT90S":    2,
		"PT0.5S":   1,
		"PT1H5M0S": 65,
	}

	for value, minutes := range tests {
		got, err := parseDurationMinutes(value)
		require.NoError(t, err, value)
		assert.Equal(t, minutes, got, value)
	}
}

func TestParseDurationMinutes_Invalid(t *testing.T) {
	for _, value := range []string{"P", "PT", "45 minutes", "PT-5M", "1H"} {
		_, err := parseDurationMinutes(value)
		require.ErrorIs(t, err, ErrInvalidDuration, value)
	}
}
