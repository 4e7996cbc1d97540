package mapstyle

import "io/fs"

// LoadOption configures a single Style.Load call.
type LoadOption func(*loadOptions)

// loadOptions holds optional configuration for theme loading.
type loadOptions struct {
	layer     string
	resources fs.FS
	fonts     map[FontFamily][]byte
	locale    string
}

func defaultLoadOptions() loadOptions {
	return loadOptions{}
}

// WithLayer selects the style-menu layer whose categories are activated.
// Without it, the theme's declared default layer applies. An unknown id
// falls back to the default rather than failing the load.
func WithLayer(id string) LoadOption {
	return func(o *loadOptions) {
		o.layer = id
	}
}

// WithResources supplies the filesystem against which the theme's src
// references (symbol bitmaps, area fill bitmaps) are resolved. Without it,
// every instruction referencing a resource is skipped as missing.
func WithResources(fsys fs.FS) LoadOption {
	return func(o *loadOptions) {
		o.resources = fsys
	}
}

// WithFontData replaces the builtin face for a font family with
// caller-supplied TTF or OTF data. Unparsable data fails the load.
func WithFontData(family FontFamily, data []byte) LoadOption {
	return func(o *loadOptions) {
		if o.fonts == nil {
			o.fonts = make(map[FontFamily][]byte)
		}
		o.fonts[family] = data
	}
}

// WithLocale prefers localized name tags for captions: a caption bound to
// key "name" binds to "name:lang" instead when the key table already knows
// that key. Features without the localized tag simply produce no label for
// that caption.
func WithLocale(lang string) LoadOption {
	return func(o *loadOptions) {
		o.locale = lang
	}
}
