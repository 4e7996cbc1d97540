package mapstyle

import (
	"io"
	"slices"
)

// Style is a loaded render theme: the rule trees' paint, label and symbol
// instructions, bucketed and ordered for the rendering pipeline.
//
// A Style has a single logical owner and no internal locking. Load and
// Clear must not overlap with queries or with each other; after a
// successful Load the structure is immutable and any number of goroutines
// may query it concurrently. The zero Style is valid and answers every
// query with an empty result.
type Style struct {
	background Color
	menu       *Menu

	paths        []PathRender
	circles      []CircleRender
	pathLabels   []TextRender
	pointLabels  []TextRender
	areaLabels   []TextRender
	pointSymbols []Symbol
	areaSymbols  []Symbol
}

// Load parses a render theme and replaces the Style's contents. keys is the
// tag key table shared with the map data decoder; ratio scales absolute
// pixel sizes for high-DPI output (1 means no scaling).
//
// On failure the Style is left cleared: no partial state is ever
// observable, and all query methods keep returning empty results.
func (s *Style) Load(r io.Reader, keys *KeyTable, ratio float64, opts ...LoadOption) error {
	s.Clear()

	if keys == nil {
		return ErrNilKeyTable
	}
	if ratio <= 0 {
		ratio = 1
	}
	o := defaultLoadOptions()
	for _, opt := range opts {
		opt(&o)
	}

	faces := newFaceSet(o.fonts)
	// Caller-supplied font data fails fast, before any parsing.
	for family := range o.fonts {
		if _, err := faces.face(family, StyleNormal); err != nil {
			return err
		}
	}

	b := &themeBuilder{keys: keys, ratio: ratio, opts: o, faces: faces}
	if err := b.run(r); err != nil {
		return err
	}

	// Paths and circles paint in ascending z-order; labels and symbols are
	// kept in priority order for the consumer's declutter pass.
	slices.SortStableFunc(b.paths, func(a, c PathRender) int { return a.zOrder - c.zOrder })
	slices.SortStableFunc(b.circles, func(a, c CircleRender) int { return a.zOrder - c.zOrder })
	byPriority := func(a, c TextRender) int { return a.priority - c.priority }
	slices.SortStableFunc(b.pathLabels, byPriority)
	slices.SortStableFunc(b.pointLabels, byPriority)
	slices.SortStableFunc(b.areaLabels, byPriority)
	symPriority := func(a, c Symbol) int { return a.priority - c.priority }
	slices.SortStableFunc(b.pointSymbols, symPriority)
	slices.SortStableFunc(b.areaSymbols, symPriority)

	s.background = b.background
	s.menu = b.menu
	s.paths = b.paths
	s.circles = b.circles
	s.pathLabels = b.pathLabels
	s.pointLabels = b.pointLabels
	s.areaLabels = b.areaLabels
	s.pointSymbols = b.pointSymbols
	s.areaSymbols = b.areaSymbols

	Logger().Debug("mapstyle: theme loaded",
		"paths", len(s.paths),
		"circles", len(s.circles),
		"pathLabels", len(s.pathLabels),
		"pointLabels", len(s.pointLabels),
		"areaLabels", len(s.areaLabels),
		"pointSymbols", len(s.pointSymbols),
		"areaSymbols", len(s.areaSymbols))
	return nil
}

// Clear discards all loaded rules and render entries. Clear is idempotent.
func (s *Style) Clear() {
	*s = Style{}
}

// Background returns the theme's map background color. A cleared Style
// reports the zero Color.
func (s *Style) Background() Color { return s.background }

// Menu returns the theme's style menu, or nil when the theme declares
// none.
func (s *Style) Menu() *Menu { return s.menu }

// Paths returns the path instructions applicable to a way feature with the
// given closed state and tags at a zoom level, in ascending z-order.
func (s *Style) Paths(zoom int, closed bool, tags []Tag) []*PathRender {
	var out []*PathRender
	cl := closedMaskOf(closed)
	for i := range s.paths {
		p := &s.paths[i]
		if p.rule.matchKind(zoom, maskWay, cl, tags, true) {
			out = append(out, p)
		}
	}
	return out
}

// Circles returns the circle instructions applicable to a node feature with
// the given tags at a zoom level, in ascending z-order. Closed state does
// not apply to point features.
func (s *Style) Circles(zoom int, tags []Tag) []*CircleRender {
	var out []*CircleRender
	for i := range s.circles {
		c := &s.circles[i]
		if c.rule.matchKind(zoom, maskNode, 0, tags, true) {
			out = append(out, c)
		}
	}
	return out
}

// PathLabels returns the way-text instructions whose zoom window contains
// zoom, in priority order. The result is the zoom-eligible candidate set
// only: callers re-test entry.Rule().Match(tags) against each concrete
// feature.
func (s *Style) PathLabels(zoom int) []*TextRender {
	return labelsAt(s.pathLabels, zoom)
}

// PointLabels returns the caption instructions for node features whose zoom
// window contains zoom, in priority order. Same candidate-set contract as
// PathLabels.
func (s *Style) PointLabels(zoom int) []*TextRender {
	return labelsAt(s.pointLabels, zoom)
}

// AreaLabels returns the caption instructions for way features whose zoom
// window contains zoom, in priority order. Same candidate-set contract as
// PathLabels.
func (s *Style) AreaLabels(zoom int) []*TextRender {
	return labelsAt(s.areaLabels, zoom)
}

// PointSymbols returns the symbol instructions for node features whose zoom
// window contains zoom, in priority order. Same candidate-set contract as
// PathLabels.
func (s *Style) PointSymbols(zoom int) []*Symbol {
	return symbolsAt(s.pointSymbols, zoom)
}

// AreaSymbols returns the symbol instructions for way features whose zoom
// window contains zoom, in priority order. Same candidate-set contract as
// PathLabels.
func (s *Style) AreaSymbols(zoom int) []*Symbol {
	return symbolsAt(s.areaSymbols, zoom)
}

func labelsAt(list []TextRender, zoom int) []*TextRender {
	var out []*TextRender
	for i := range list {
		if list[i].rule.zooms.contains(zoom) {
			out = append(out, &list[i])
		}
	}
	return out
}

func symbolsAt(list []Symbol, zoom int) []*Symbol {
	var out []*Symbol
	for i := range list {
		if list[i].rule.zooms.contains(zoom) {
			out = append(out, &list[i])
		}
	}
	return out
}
