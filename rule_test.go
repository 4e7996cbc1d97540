package mapstyle

import "testing"

// Declaring node and then way on the same rule accumulates a mask that
// matches both kinds, not neither.
func TestRuleMaskAccumulation(t *testing.T) {
	r := newRule()
	r.setElements(maskNode)
	r.setElements(maskWay)

	if !r.matchKind(0, maskNode, 0, nil, false) {
		t.Error("accumulated mask should match node features")
	}
	if !r.matchKind(0, maskWay, 0, nil, false) {
		t.Error("accumulated mask should match way features")
	}
}

func TestRuleElementMask(t *testing.T) {
	r := newRule()
	r.setElements(maskNode)

	if !r.matchKind(0, maskNode, 0, nil, false) {
		t.Error("node rule should match node")
	}
	if r.matchKind(0, maskWay, 0, nil, false) {
		t.Error("node rule should not match way")
	}

	anyRule := newRule()
	if !anyRule.matchKind(0, maskWay, 0, nil, false) || !anyRule.matchKind(0, maskNode, 0, nil, false) {
		t.Error("any rule should match both kinds")
	}
}

func TestRuleClosedMask(t *testing.T) {
	r := newRule()
	r.setClosed(maskClosed)

	if !r.MatchClosed(true, nil) {
		t.Error("closed rule should match closed way")
	}
	if r.MatchClosed(false, nil) {
		t.Error("closed rule should not match open way")
	}
}

func TestRuleZoomNarrowing(t *testing.T) {
	parent := newRule()
	parent.setMinZoom(5)
	parent.setMaxZoom(12)

	child := parent.child()
	child.setMinZoom(8)
	child.setMaxZoom(20) // cannot widen past the parent's 12

	if got, want := child.ZoomMin(), 8; got != want {
		t.Errorf("ZoomMin = %d, want %d", got, want)
	}
	if got, want := child.ZoomMax(), 12; got != want {
		t.Errorf("ZoomMax = %d, want %d", got, want)
	}

	for zoom := MinZoom; zoom <= 30; zoom++ {
		want := zoom >= 8 && zoom <= 12
		if got := child.MatchZoom(zoom, nil); got != want {
			t.Errorf("MatchZoom(%d) = %v, want %v", zoom, got, want)
		}
	}
}

func TestRuleZoomClamping(t *testing.T) {
	r := newRule()
	r.setMinZoom(-5)
	r.setMaxZoom(500)
	if r.ZoomMin() != MinZoom || r.ZoomMax() != MaxZoom {
		t.Errorf("zoom range = [%d,%d], want [%d,%d]",
			r.ZoomMin(), r.ZoomMax(), MinZoom, MaxZoom)
	}
}

func TestRuleChildFilterConcatenation(t *testing.T) {
	keys := NewKeyTable()
	highway := keys.Intern("highway")
	surface := keys.Intern("surface")

	parent := newRule()
	parent.addFilter(newFilter([]TagKey{highway}, []string{"primary"}, false))

	child := parent.child()
	child.addFilter(newFilter([]TagKey{surface}, []string{"paved"}, false))

	both := []Tag{{Key: highway, Value: "primary"}, {Key: surface, Value: "paved"}}
	one := []Tag{{Key: highway, Value: "primary"}}

	if !child.Match(both) {
		t.Error("child should match when both filters pass")
	}
	if child.Match(one) {
		t.Error("child should require its own filter on top of the parent's")
	}
	// The parent must be unaffected by the child's filter.
	if !parent.Match(one) {
		t.Error("parent should still match with its own filter alone")
	}
}

// Appending a filter to one child must not leak into a sibling created from
// the same parent.
func TestRuleChildIsolation(t *testing.T) {
	keys := NewKeyTable()
	a := keys.Intern("a")
	b := keys.Intern("b")

	parent := newRule()
	parent.addFilter(newFilter([]TagKey{a}, []string{"1"}, false))

	c1 := parent.child()
	c1.addFilter(newFilter([]TagKey{b}, []string{"2"}, false))
	c2 := parent.child()

	tagsA := []Tag{{Key: a, Value: "1"}}
	if !c2.Match(tagsA) {
		t.Error("sibling rule must not inherit the other child's filter")
	}
}

func TestRuleTautologyDropped(t *testing.T) {
	r := newRule()
	r.addFilter(newFilter([]TagKey{WildcardKey}, []string{""}, false))
	if len(r.filters) != 0 {
		t.Errorf("tautological filter retained: %d filters", len(r.filters))
	}

	r.addFilter(newFilter([]TagKey{3}, []string{"x"}, false))
	if len(r.filters) != 1 {
		t.Errorf("real filter dropped: %d filters", len(r.filters))
	}
}

func TestRuleMatchAll(t *testing.T) {
	keys := NewKeyTable()
	highway := keys.Intern("highway")

	r := newRule()
	r.setClosed(maskOpen)
	r.setMinZoom(5)
	r.setMaxZoom(12)
	r.addFilter(newFilter([]TagKey{highway}, []string{"primary"}, false))

	tags := []Tag{{Key: highway, Value: "primary"}}

	if !r.MatchAll(8, false, tags) {
		t.Error("all conditions met, should match")
	}
	if r.MatchAll(8, true, tags) {
		t.Error("closed state excluded, should not match")
	}
	if r.MatchAll(3, false, tags) {
		t.Error("zoom outside window, should not match")
	}
	if r.MatchAll(8, false, nil) {
		t.Error("filters unsatisfied, should not match")
	}
}
