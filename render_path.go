package mapstyle

// PathRender is a line stroke or area fill instruction for way features.
type PathRender struct {
	Render

	zOrder      int
	strokeColor Color
	strokeWidth float64
	dash        []float64
	cap         LineCap
	join        LineJoin
	brush       Brush
	area        bool
	curve       bool
	scale       ScaleMode
	dy          float64
}

// ZOrder returns the paint stacking order. When several entries match the
// same feature they are painted in ascending z-order.
func (p *PathRender) ZOrder() int { return p.zOrder }

// Pen returns the stroke pen at a zoom level. Under ScaleStroke and ScaleAll
// the width and dash lengths grow with zoomScale; under ScaleNone the pen is
// constant.
func (p *PathRender) Pen(zoom int) Pen {
	pen := Pen{
		Color: p.strokeColor,
		Width: p.strokeWidth,
		Cap:   p.cap,
		Join:  p.join,
		Dash:  p.dash,
	}
	if p.scale != ScaleNone {
		if f := zoomScale(zoom); f != 1 {
			pen.Width *= f
			pen.Dash = scaleDash(p.dash, f)
		}
	}
	return pen
}

// Brush returns the fill brush, or nil when the path is not filled.
func (p *PathRender) Brush() Brush { return p.brush }

// Area reports whether the instruction fills a polygon rather than stroking
// a line.
func (p *PathRender) Area() bool { return p.area }

// Curve reports whether the way should be smoothed into a curve rather than
// drawn as a polyline.
func (p *PathRender) Curve() bool { return p.curve }

// Dy returns the perpendicular offset for parallel-line rendering at a zoom
// level. The offset scales only under ScaleAll.
func (p *PathRender) Dy(zoom int) float64 {
	if p.scale == ScaleAll {
		return p.dy * zoomScale(zoom)
	}
	return p.dy
}
