package mapstyle

import (
	"image/color"
	"testing"
)

// Verify at compile time that Color implements color.Color.
var _ color.Color = Color{}

func TestParseColor(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Color
	}{
		{"opaque red", "#ff0000", Color{1, 0, 0, 1}},
		{"opaque blue no hash", "0000ff", Color{0, 0, 1, 1}},
		{"white", "#ffffff", Color{1, 1, 1, 1}},
		{"black with alpha", "#80000000", Color{0, 0, 0, 128.0 / 255}},
		{"transparent", "#00000000", Color{0, 0, 0, 0}},
		{"half green", "#ff008000", Color{0, 128.0 / 255, 0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColor(tt.input)
			if err != nil {
				t.Fatalf("ParseColor(%q) error: %v", tt.input, err)
			}
			if !colorNear(got, tt.want) {
				t.Errorf("ParseColor(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseColorInvalid(t *testing.T) {
	for _, input := range []string{"", "#", "#fff", "#ff00", "red", "#gghhii", "#ff0000ff00"} {
		if _, err := ParseColor(input); err == nil {
			t.Errorf("ParseColor(%q) = nil error, want error", input)
		}
	}
}

func TestColorRoundTrip(t *testing.T) {
	c, err := ParseColor("#336699")
	if err != nil {
		t.Fatal(err)
	}
	got := FromColor(c.Color())
	if !colorNear(got, c) {
		t.Errorf("round trip = %+v, want %+v", got, c)
	}
}

func colorNear(a, b Color) bool {
	const eps = 1.0 / 255
	near := func(x, y float64) bool {
		d := x - y
		return d < eps && d > -eps
	}
	return near(a.R, b.R) && near(a.G, b.G) && near(a.B, b.B) && near(a.A, b.A)
}
