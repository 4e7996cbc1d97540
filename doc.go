// Package mapstyle loads Mapsforge render themes and answers, for a map
// feature at a zoom level, which paint, label and symbol instructions apply.
//
// # Overview
//
// A render theme is a declarative XML style sheet: a tree of selector rules
// (feature type, closed state, zoom window, tag filters) with paint
// instructions attached to the rule that selects them. mapstyle parses the
// theme into an immutable in-memory model and exposes query methods that the
// rendering pipeline calls per feature. mapstyle never draws anything itself;
// it only decides what should be drawn.
//
// # Quick Start
//
//	keys := mapstyle.NewKeyTable()
//	f, _ := os.Open("theme.xml")
//	defer f.Close()
//
//	var style mapstyle.Style
//	if err := style.Load(f, keys, 1.0); err != nil {
//	    log.Fatal(err)
//	}
//
//	tags := []mapstyle.Tag{{Key: keys.Intern("highway"), Value: "primary"}}
//	for _, p := range style.Paths(15, false, tags) {
//	    pen := p.Pen(15)
//	    // hand pen, p.Brush() etc. to the drawing backend
//	}
//
// # Lifecycle
//
// A Style has two phases. During Load it is mutable and must not be queried.
// After Load returns successfully the structure is immutable and safe for
// unlimited concurrent queries from any number of goroutines. To change
// themes while rendering, load into a fresh Style and swap the pointer the
// pipeline holds; never call Load or Clear on a Style that is being queried.
//
// A failed Load leaves the Style cleared: every query method is still safe to
// call and returns an empty result, so a broken theme degrades to an unstyled
// map rather than a crash.
//
// # Categories
//
// Themes may declare a style menu of user-selectable layers, each activating
// a set of categories. Rules and instructions tagged with an inactive
// category are excluded while loading; category selection is a load-time
// decision, not a query-time filter. Use WithLayer to pick a layer, or let
// the theme's default apply.
package mapstyle
