package mapstyle

// CircleRender is a circle instruction for node features.
type CircleRender struct {
	Render

	zOrder int
	pen    Pen
	brush  Brush
	radius float64
	scale  bool
}

// ZOrder returns the paint stacking order.
func (c *CircleRender) ZOrder() int { return c.zOrder }

// Pen returns the outline pen. The empty pen (zero width, transparent
// color) means the circle has no outline.
func (c *CircleRender) Pen() Pen { return c.pen }

// Brush returns the fill brush, or nil for an unfilled circle.
func (c *CircleRender) Brush() Brush { return c.brush }

// Radius returns the circle radius at a zoom level. Scaling is gated by the
// instruction's scale-radius flag.
func (c *CircleRender) Radius(zoom int) float64 {
	if c.scale {
		return c.radius * zoomScale(zoom)
	}
	return c.radius
}
