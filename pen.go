package mapstyle

import "fmt"

// LineCap specifies the shape of line endpoints.
type LineCap int

const (
	// LineCapRound specifies a rounded line cap (theme default).
	LineCapRound LineCap = iota
	// LineCapButt specifies a flat line cap.
	LineCapButt
	// LineCapSquare specifies a square line cap.
	LineCapSquare
)

// LineJoin specifies the shape of line joins.
type LineJoin int

const (
	// LineJoinRound specifies a rounded join (theme default).
	LineJoinRound LineJoin = iota
	// LineJoinMiter specifies a sharp (mitered) join.
	LineJoinMiter
	// LineJoinBevel specifies a beveled join.
	LineJoinBevel
)

// Pen describes how a line is stroked. A Pen is a plain value: the drawing
// backend translates it into its own stroke state.
type Pen struct {
	// Color is the stroke color.
	Color Color

	// Width is the stroke width in pixels. Zero width means a hairline.
	Width float64

	// Cap is the line cap style.
	Cap LineCap

	// Join is the line join style.
	Join LineJoin

	// Dash contains alternating dash/gap lengths in pixels, or nil for a
	// solid stroke. Callers must not modify the slice.
	Dash []float64
}

func parseLineCap(s string) (LineCap, error) {
	switch s {
	case "round":
		return LineCapRound, nil
	case "butt":
		return LineCapButt, nil
	case "square":
		return LineCapSquare, nil
	}
	return 0, fmt.Errorf("unknown line cap %q", s)
}

func parseLineJoin(s string) (LineJoin, error) {
	switch s {
	case "round":
		return LineJoinRound, nil
	case "miter":
		return LineJoinMiter, nil
	case "bevel":
		return LineJoinBevel, nil
	}
	return 0, fmt.Errorf("unknown line join %q", s)
}
