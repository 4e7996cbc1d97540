package mapstyle

import "slices"

// Zoom levels valid in a render theme. Zoom windows are always clamped to
// this range.
const (
	MinZoom = 0
	MaxZoom = 127
)

// elementMask is a bit set of feature kinds a rule applies to.
// The zero mask means "any".
type elementMask uint8

const (
	maskNode elementMask = 1 << iota
	maskWay
)

// closedMask is a bit set of closed states a rule applies to.
// The zero mask means "any".
type closedMask uint8

const (
	maskClosed closedMask = 1 << iota
	maskOpen
)

func closedMaskOf(closed bool) closedMask {
	if closed {
		return maskClosed
	}
	return maskOpen
}

// zoomRange is an inclusive zoom window.
type zoomRange struct {
	min, max int
}

func fullZoomRange() zoomRange { return zoomRange{MinZoom, MaxZoom} }

func (z zoomRange) contains(zoom int) bool {
	return zoom >= z.min && zoom <= z.max
}

// Rule selects features by kind, closed state, zoom window and tag filters.
// A rule declared inside another rule inherits the parent's selector and can
// only narrow it: kind and closed masks accumulate by union within one rule
// but intersect down the chain through the match test, the zoom window
// shrinks to the intersection, and filter lists concatenate. The effective
// predicate is flattened into each rule at load time, so matching never
// walks ancestors.
//
// After Load completes a Rule is read-only and safe for concurrent use.
type Rule struct {
	elements elementMask
	closed   closedMask
	zooms    zoomRange
	filters  []filter
}

func newRule() Rule {
	return Rule{zooms: fullZoomRange()}
}

// child returns a copy of r that a nested rule narrows further. The filter
// slice is clipped so appends in the child never alias the parent's backing
// array.
func (r *Rule) child() Rule {
	c := *r
	c.filters = slices.Clip(r.filters)
	return c
}

// setElements widens the rule's kind mask. Repeated declarations targeting
// the same rule accumulate: node then way yields a mask matching both.
func (r *Rule) setElements(m elementMask) { r.elements |= m }

// setClosed widens the rule's closed mask, accumulating like setElements.
func (r *Rule) setClosed(m closedMask) { r.closed |= m }

// setMinZoom raises the window's lower bound; it never widens the window.
func (r *Rule) setMinZoom(zoom int) {
	zoom = clampZoom(zoom)
	if zoom > r.zooms.min {
		r.zooms.min = zoom
	}
}

// setMaxZoom lowers the window's upper bound; it never widens the window.
func (r *Rule) setMaxZoom(zoom int) {
	zoom = clampZoom(zoom)
	if zoom < r.zooms.max {
		r.zooms.max = zoom
	}
}

// addFilter appends a filter clause unless it is a tautology.
func (r *Rule) addFilter(f filter) {
	if !f.isTautology() {
		r.filters = append(r.filters, f)
	}
}

func clampZoom(zoom int) int {
	if zoom < MinZoom {
		return MinZoom
	}
	if zoom > MaxZoom {
		return MaxZoom
	}
	return zoom
}

// ZoomMin returns the effective lower zoom bound.
func (r *Rule) ZoomMin() int { return r.zooms.min }

// ZoomMax returns the effective upper zoom bound.
func (r *Rule) ZoomMax() int { return r.zooms.max }

// Match evaluates the rule's tag filters only. Use it to re-test a label or
// symbol candidate against a concrete feature when kind, closed state and
// zoom are already known to fit.
func (r *Rule) Match(tags []Tag) bool {
	return r.filtersMatch(tags)
}

// MatchClosed adds the closed-state test to Match.
func (r *Rule) MatchClosed(closed bool, tags []Tag) bool {
	return r.matchKind(0, 0, closedMaskOf(closed), tags, false)
}

// MatchZoom adds the zoom containment test to Match.
func (r *Rule) MatchZoom(zoom int, tags []Tag) bool {
	return r.matchKind(zoom, 0, 0, tags, true)
}

// MatchAll combines the zoom, closed-state and tag filter tests. The feature
// kind test is applied by the Style query that selected this rule's bucket.
func (r *Rule) MatchAll(zoom int, closed bool, tags []Tag) bool {
	return r.matchKind(zoom, 0, closedMaskOf(closed), tags, true)
}

// matchKind is the full predicate. A zero el or cl mask means the caller has
// no kind or closed context and skips that test; testZoom gates the zoom
// containment test the same way.
func (r *Rule) matchKind(zoom int, el elementMask, cl closedMask, tags []Tag, testZoom bool) bool {
	if r.elements != 0 && el != 0 && r.elements&el == 0 {
		return false
	}
	if r.closed != 0 && cl != 0 && r.closed&cl == 0 {
		return false
	}
	if testZoom && !r.zooms.contains(zoom) {
		return false
	}
	return r.filtersMatch(tags)
}

func (r *Rule) filtersMatch(tags []Tag) bool {
	for i := range r.filters {
		if !r.filters[i].match(tags) {
			return false
		}
	}
	return true
}
