package mapstyle

import (
	"bytes"
	"fmt"

	"github.com/go-text/typesetting/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
)

// FontFamily identifies a theme font family.
type FontFamily int

const (
	// FamilyDefault is the theme's unspecified family (sans-serif).
	FamilyDefault FontFamily = iota
	// FamilySansSerif selects the sans-serif family.
	FamilySansSerif
	// FamilySerif selects the serif family.
	FamilySerif
	// FamilyMonospace selects the fixed-width family.
	FamilyMonospace
)

func (f FontFamily) String() string {
	switch f {
	case FamilySansSerif:
		return "sans_serif"
	case FamilySerif:
		return "serif"
	case FamilyMonospace:
		return "monospace"
	default:
		return "default"
	}
}

// FontStyle identifies a theme font style.
type FontStyle int

const (
	// StyleNormal is the regular style.
	StyleNormal FontStyle = iota
	// StyleBold is the bold style.
	StyleBold
	// StyleItalic is the italic style.
	StyleItalic
	// StyleBoldItalic combines bold and italic.
	StyleBoldItalic
)

// Font holds the font parameters of a text instruction. Size is in pixels
// and already adjusted for the display ratio.
type Font struct {
	Family FontFamily
	Style  FontStyle
	Size   float64
}

func parseFontFamily(s string) (FontFamily, error) {
	switch s {
	case "default":
		return FamilyDefault, nil
	case "sans_serif":
		return FamilySansSerif, nil
	case "serif":
		return FamilySerif, nil
	case "monospace":
		return FamilyMonospace, nil
	}
	return 0, fmt.Errorf("unknown font family %q", s)
}

func parseFontStyle(s string) (FontStyle, error) {
	switch s {
	case "normal":
		return StyleNormal, nil
	case "bold":
		return StyleBold, nil
	case "italic":
		return StyleItalic, nil
	case "bold_italic":
		return StyleBoldItalic, nil
	}
	return 0, fmt.Errorf("unknown font style %q", s)
}

// fontKey identifies one parsed face.
type fontKey struct {
	family FontFamily
	style  FontStyle
}

// faceSet resolves Font parameters to parsed faces during Load. Builtin
// families come from the embedded Go fonts; WithFontData replaces a family
// with caller-supplied TTF/OTF data. Loading is single-threaded, so the
// cache needs no locking; the resolved faces are read-only afterwards.
type faceSet struct {
	custom map[FontFamily][]byte
	faces  map[fontKey]*font.Face
}

func newFaceSet(custom map[FontFamily][]byte) *faceSet {
	return &faceSet{
		custom: custom,
		faces:  make(map[fontKey]*font.Face),
	}
}

// face returns the parsed face for a family/style pair, parsing and caching
// it on first use.
func (s *faceSet) face(family FontFamily, style FontStyle) (*font.Face, error) {
	key := fontKey{family, style}
	if f, ok := s.faces[key]; ok {
		return f, nil
	}

	data := s.custom[family]
	if data == nil {
		data = builtinFontData(family, style)
	}
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, &FontError{Family: family, Err: err}
	}
	s.faces[key] = face
	return face, nil
}

// builtinFontData returns the embedded Go font for a family/style pair.
// The Go fonts carry no dedicated serif face, so the serif family falls
// back to the regular face.
func builtinFontData(family FontFamily, style FontStyle) []byte {
	if family == FamilyMonospace {
		switch style {
		case StyleBold:
			return gomonobold.TTF
		case StyleItalic:
			return gomonoitalic.TTF
		case StyleBoldItalic:
			return gomonobolditalic.TTF
		default:
			return gomono.TTF
		}
	}
	switch style {
	case StyleBold:
		return gobold.TTF
	case StyleItalic:
		return goitalic.TTF
	case StyleBoldItalic:
		return gobolditalic.TTF
	default:
		return goregular.TTF
	}
}
