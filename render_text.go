package mapstyle

import "github.com/go-text/typesetting/font"

// TextRender is a caption or path-text instruction. It carries the label's
// paint parameters; the value of the feature tag identified by Key supplies
// the label text.
type TextRender struct {
	Render

	priority    int
	fillColor   Color
	strokeColor Color
	strokeWidth float64
	font        Font
	face        *font.Face
	key         TagKey
}

// Priority returns the placement precedence. Lower values win when labels
// compete for screen space in the consumer's declutter pass.
func (t *TextRender) Priority() int { return t.priority }

// FillColor returns the glyph fill color.
func (t *TextRender) FillColor() Color { return t.fillColor }

// StrokeColor returns the glyph outline (halo) color.
func (t *TextRender) StrokeColor() Color { return t.strokeColor }

// StrokeWidth returns the glyph outline width in pixels.
func (t *TextRender) StrokeWidth() float64 { return t.strokeWidth }

// Font returns the font parameters (family, style, pixel size).
func (t *TextRender) Font() Font { return t.font }

// Face returns the parsed font face backing Font. The face is shared and
// read-only.
func (t *TextRender) Face() *font.Face { return t.face }

// Key returns the tag key whose value supplies the label text.
func (t *TextRender) Key() TagKey { return t.key }
