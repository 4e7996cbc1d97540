package mapstyle

import (
	"fmt"
	"math"
)

// baseZoom is the reference zoom level for zoom-dependent scaling. At and
// below baseZoom attributes keep their declared size; above it each zoom
// step doubles the on-screen size of a fixed ground distance.
const baseZoom = 12

// zoomScale returns the size multiplier for zoom-dependent attributes.
func zoomScale(zoom int) float64 {
	if zoom <= baseZoom {
		return 1
	}
	return math.Pow(2, float64(zoom-baseZoom))
}

// ScaleMode selects which attributes of a path grow with the zoom level.
type ScaleMode int

const (
	// ScaleNone keeps all attributes constant in pixels across zoom.
	ScaleNone ScaleMode = iota
	// ScaleStroke scales stroke width and dash lengths (theme default for
	// lines).
	ScaleStroke
	// ScaleAll additionally scales any size attribute the entry carries,
	// such as the perpendicular offset.
	ScaleAll
)

func parseScaleMode(s string) (ScaleMode, error) {
	switch s {
	case "none":
		return ScaleNone, nil
	case "stroke":
		return ScaleStroke, nil
	case "all":
		return ScaleAll, nil
	}
	return 0, fmt.Errorf("unknown scale mode %q", s)
}

// Render is the part common to every render entry: the rule that selects
// it. An entry is attached to exactly one rule for its lifetime.
type Render struct {
	rule Rule
}

// Rule returns the selector that owns this entry. Label and symbol
// consumers re-test it per feature; see the Style label accessors.
func (r *Render) Rule() *Rule { return &r.rule }
