package mapstyle

import "image"

// Brush represents what an area is filled with.
// This is a sealed interface - only types in this package implement it.
//
// Supported brush types:
//   - SolidBrush: a single solid color
//   - BitmapBrush: a tiled bitmap pattern
//
// The drawing backend type-switches on the concrete brush type. A nil Brush
// means the shape is not filled at all.
type Brush interface {
	// brushMarker is an unexported method that seals this interface.
	// Only types in this package can implement Brush.
	brushMarker()
}

// SolidBrush is a single-color fill.
type SolidBrush struct {
	// Color is the fill color.
	Color Color
}

// brushMarker implements the sealed Brush interface.
func (SolidBrush) brushMarker() {}

// Solid creates a SolidBrush from a Color.
func Solid(c Color) SolidBrush {
	return SolidBrush{Color: c}
}

// BitmapBrush fills an area by tiling a bitmap. The bitmap is decoded from
// the theme's resource reference at load time and already scaled for the
// display ratio.
type BitmapBrush struct {
	// Img is the tile image. Callers must not modify it.
	Img image.Image
}

// brushMarker implements the sealed Brush interface.
func (BitmapBrush) brushMarker() {}
