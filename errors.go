package mapstyle

import (
	"errors"
	"fmt"
)

// Sentinel errors for theme loading.
var (
	// ErrNotRenderTheme is returned when the document's root element is not
	// a rendertheme.
	ErrNotRenderTheme = errors.New("mapstyle: not a rendertheme document")

	// ErrNilKeyTable is returned when Load is called without a key table.
	ErrNilKeyTable = errors.New("mapstyle: nil key table")
)

// ParseError reports malformed or truncated theme markup. The wrapped error
// is the underlying XML decoder error.
type ParseError struct {
	// Offset is the byte offset into the input at which decoding failed.
	Offset int64

	// Err is the underlying decoder error.
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("mapstyle: parse error at offset %d: %v", e.Offset, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// AttributeError reports a theme attribute whose value is not a recognized
// token or is outside its valid domain. Load aborts on AttributeError rather
// than coercing the value, so a theme never renders with an unintended
// default.
type AttributeError struct {
	// Element is the local name of the element carrying the attribute.
	Element string

	// Attr is the attribute name.
	Attr string

	// Value is the rejected attribute value.
	Value string

	// Offset is the byte offset into the input.
	Offset int64
}

func (e *AttributeError) Error() string {
	return fmt.Sprintf("mapstyle: <%s>: invalid %s value %q (offset %d)",
		e.Element, e.Attr, e.Value, e.Offset)
}

// FontError reports caller-supplied font data that could not be parsed.
type FontError struct {
	// Family is the font family the data was registered for.
	Family FontFamily

	// Err is the underlying font parser error.
	Err error
}

func (e *FontError) Error() string {
	return fmt.Sprintf("mapstyle: font data for %s: %v", e.Family, e.Err)
}

func (e *FontError) Unwrap() error { return e.Err }
