package mapstyle

import (
	"math"
	"testing"
)

func TestZoomScale(t *testing.T) {
	tests := []struct {
		zoom int
		want float64
	}{
		{0, 1},
		{baseZoom, 1},
		{baseZoom + 1, 2},
		{baseZoom + 3, 8},
	}
	for _, tt := range tests {
		if got := zoomScale(tt.zoom); got != tt.want {
			t.Errorf("zoomScale(%d) = %v, want %v", tt.zoom, got, tt.want)
		}
	}
}

func TestPathRenderPenScaling(t *testing.T) {
	p := PathRender{
		strokeColor: Color{0, 0, 1, 1},
		strokeWidth: 2,
		dash:        []float64{4, 2},
		scale:       ScaleStroke,
	}

	pen := p.Pen(baseZoom)
	if pen.Width != 2 {
		t.Errorf("width at base zoom = %v, want 2", pen.Width)
	}

	pen = p.Pen(baseZoom + 2)
	if pen.Width != 8 {
		t.Errorf("width two levels above base = %v, want 8", pen.Width)
	}
	if len(pen.Dash) != 2 || pen.Dash[0] != 16 || pen.Dash[1] != 8 {
		t.Errorf("dash two levels above base = %v, want [16 8]", pen.Dash)
	}
	// Scaling must never mutate the stored pattern.
	if p.dash[0] != 4 || p.dash[1] != 2 {
		t.Errorf("stored dash mutated: %v", p.dash)
	}
}

func TestPathRenderScaleNone(t *testing.T) {
	p := PathRender{strokeWidth: 3, scale: ScaleNone}
	for _, zoom := range []int{0, baseZoom, baseZoom + 5} {
		if w := p.Pen(zoom).Width; w != 3 {
			t.Errorf("ScaleNone width at zoom %d = %v, want 3", zoom, w)
		}
	}
}

func TestPathRenderDy(t *testing.T) {
	stroke := PathRender{dy: 2, scale: ScaleStroke}
	if got := stroke.Dy(baseZoom + 2); got != 2 {
		t.Errorf("Dy under ScaleStroke = %v, want constant 2", got)
	}

	all := PathRender{dy: 2, scale: ScaleAll}
	if got := all.Dy(baseZoom + 2); got != 8 {
		t.Errorf("Dy under ScaleAll = %v, want 8", got)
	}
	if got := all.Dy(baseZoom); got != 2 {
		t.Errorf("Dy at base zoom = %v, want 2", got)
	}
}

func TestCircleRenderRadius(t *testing.T) {
	fixed := CircleRender{radius: 5, scale: false}
	if got := fixed.Radius(baseZoom + 4); got != 5 {
		t.Errorf("unscaled radius = %v, want 5", got)
	}

	scaled := CircleRender{radius: 5, scale: true}
	want := 5 * math.Pow(2, 4)
	if got := scaled.Radius(baseZoom + 4); got != want {
		t.Errorf("scaled radius = %v, want %v", got, want)
	}
}
