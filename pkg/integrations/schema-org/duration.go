package schemaorg

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
)

var (
	ErrInvalidDuration = errors.New("invalid ISO 8601 duration")

	durationPattern = regexp.MustCompile(`^P(?:(\d+)D)?(?:T(?:(\d+)H)?(?:(\d+)M)?(?:(\d+(?:\.\d+)?)S)?)?$`)
)

// parseDurationMinutes converts an ISO 8601 duration such as PT1H30M into
// whole minutes, rounding seconds up. An empty string is zero.
func parseDurationMinutes(value string) (int, error) {
	if len(value) == 0 {
		return 0, nil
	}

	parts := durationPattern.FindStringSubmatch(value)
	if parts == nil || value == "P" || value == "PT" {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, value)
	}

	var minutes float64

	for i, factor := range []float64{24 * 60, 60, 1} {
		if len(parts[i+1]) == 0 {
			continue
		}

		n, err := strconv.Atoi(parts[i+1])
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, value)
		}

		minutes += float64(n) * factor
	}

	if len(parts[4]) > 0 {
		seconds, err := strconv.ParseFloat(parts[4], 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, value)
		}

		minutes += seconds / 60
	}

	return int(math.Ceil(minutes)), nil
}
