package mapstyle

import (
	"math"
	"strconv"
	"strings"
)

// parseDash parses a stroke-dasharray attribute: comma-separated alternating
// dash/gap lengths. Negative lengths take their absolute value; a pattern of
// all zeros is treated as no dash. Returns nil (and no error) for an empty
// attribute.
func parseDash(s string) ([]float64, error) {
	if s == "" {
		return nil, nil
	}

	parts := strings.Split(s, ",")
	dash := make([]float64, len(parts))
	nonZero := false
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, err
		}
		dash[i] = math.Abs(v)
		if dash[i] > 0 {
			nonZero = true
		}
	}
	if !nonZero {
		return nil, nil
	}
	return dash, nil
}

// scaleDash returns a copy of dash with every length multiplied by f.
func scaleDash(dash []float64, f float64) []float64 {
	if len(dash) == 0 {
		return nil
	}
	out := make([]float64, len(dash))
	for i, v := range dash {
		out[i] = v * f
	}
	return out
}
