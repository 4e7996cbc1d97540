package mapstyle

import "image"

// Symbol is a bitmap icon instruction. The image is decoded and
// ratio-scaled at load time; an instruction whose image cannot be located
// is skipped during Load and never appears here.
type Symbol struct {
	Render

	priority int
	img      image.Image
	src      string
}

// Priority returns the placement precedence among competing symbols.
// Lower values win.
func (s *Symbol) Priority() int { return s.priority }

// Image returns the symbol bitmap. Callers must not modify it.
func (s *Symbol) Image() image.Image { return s.img }

// Source returns the theme's resource reference for the bitmap.
func (s *Symbol) Source() string { return s.src }
