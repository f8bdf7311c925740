package theme

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseRange parses a value string from a theme configuration.
// Supports two formats:
//   - Fixed value: "5" → min=5, max=5
//   - Range: "[3 8]" → min=3, max=8
//
// Whitespace inside the brackets is flexible ("[ 3  8 ]" is accepted).
func ParseRange(s string) (min, max float64, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, 0, fmt.Errorf("empty value")
	}

	if strings.HasPrefix(s, "[") {
		if !strings.HasSuffix(s, "]") {
			return 0, 0, fmt.Errorf("unterminated range %q", s)
		}
		parts := strings.Fields(strings.TrimSuffix(strings.TrimPrefix(s, "["), "]"))
		if len(parts) != 2 {
			return 0, 0, fmt.Errorf("range %q must have exactly two bounds", s)
		}
		min, err = strconv.ParseFloat(parts[0], 64)
		if err != nil {
			return 0, 0, fmt.Errorf("range %q: %w", s, err)
		}
		max, err = strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return 0, 0, fmt.Errorf("range %q: %w", s, err)
		}
		if max < min {
			min, max = max, min
		}
		return min, max, nil
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("value %q: %w", s, err)
	}
	return v, v, nil
}
