package mapstyle

import (
	"encoding/xml"
	"io"
	"strconv"
	"strings"
)

// Render-theme token spellings. Lists in k/v attributes separate entries
// with '|'; '*' is the wildcard entry and '~' in a value list negates the
// clause.
const (
	listSeparator = "|"
	negationToken = "~"
	cubicToken    = "cubic"
)

// themeBuilder accumulates the style model while walking the XML token
// stream. It lives only for the duration of one Load call.
type themeBuilder struct {
	dec   *xml.Decoder
	keys  *KeyTable
	ratio float64
	opts  loadOptions
	faces *faceSet

	// cats is the active category set; nil means every category is active
	// (no style menu seen yet, or none declared).
	cats map[string]struct{}
	menu *Menu

	background Color
	zOrder     int

	paths        []PathRender
	circles      []CircleRender
	pathLabels   []TextRender
	pointLabels  []TextRender
	areaLabels   []TextRender
	pointSymbols []Symbol
	areaSymbols  []Symbol
}

// run decodes one rendertheme document.
func (b *themeBuilder) run(r io.Reader) error {
	b.dec = xml.NewDecoder(r)
	b.background = White

	for {
		tok, err := b.dec.Token()
		if err == io.EOF {
			return ErrNotRenderTheme
		}
		if err != nil {
			return b.parseErr(err)
		}
		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		if se.Name.Local != "rendertheme" {
			return ErrNotRenderTheme
		}
		return b.rendertheme(se)
	}
}

func (b *themeBuilder) rendertheme(se xml.StartElement) error {
	bg, err := b.colorAttr(se, "map-background", White)
	if err != nil {
		return err
	}
	b.background = bg

	for {
		tok, err := b.dec.Token()
		if err != nil {
			return b.parseErr(err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "stylemenu":
				err = b.stylemenu(t)
			case "rule":
				err = b.rule(t, newRule())
			default:
				// Unknown elements and their subtrees are skipped for
				// forward compatibility with newer theme versions.
				err = b.skip()
			}
			if err != nil {
				return err
			}
		case xml.EndElement:
			return nil
		}
	}
}

// stylemenu decodes the layer declarations and resolves the active category
// set for the requested (or default) layer. A stylemenu must precede the
// rules it gates.
func (b *themeBuilder) stylemenu(se xml.StartElement) error {
	def, _ := attrVal(se, "defaultvalue")
	menu := &Menu{defaultValue: def}

	for {
		tok, err := b.dec.Token()
		if err != nil {
			return b.parseErr(err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local != "layer" {
				if err := b.skip(); err != nil {
					return err
				}
				continue
			}
			layer, err := b.layer(t)
			if err != nil {
				return err
			}
			menu.layers = append(menu.layers, layer)
		case xml.EndElement:
			b.menu = menu
			selected := b.opts.layer
			if selected == "" {
				selected = menu.defaultValue
			}
			b.cats = menu.Cats(selected)
			return nil
		}
	}
}

func (b *themeBuilder) layer(se xml.StartElement) (Layer, error) {
	id, _ := attrVal(se, "id")
	parent, _ := attrVal(se, "parent")
	enabled, err := b.boolAttr(se, "enabled", false)
	if err != nil {
		return Layer{}, err
	}
	l := Layer{id: id, parent: parent, enabled: enabled}

	for {
		tok, err := b.dec.Token()
		if err != nil {
			return Layer{}, b.parseErr(err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "cat":
				if id, ok := attrVal(t, "id"); ok {
					l.cats = append(l.cats, id)
				}
			case "overlay":
				if id, ok := attrVal(t, "id"); ok {
					l.overlays = append(l.overlays, id)
				}
			}
			if err := b.skip(); err != nil {
				return Layer{}, err
			}
		case xml.EndElement:
			return l, nil
		}
	}
}

// catActive reports whether a declared category is in the active set. An
// empty category always passes; a nil set means no menu gates the load.
func (b *themeBuilder) catActive(cat string) bool {
	if cat == "" || b.cats == nil {
		return true
	}
	_, ok := b.cats[cat]
	return ok
}

// rule decodes a selector rule and everything nested under it. parent is
// the enclosing rule's flattened predicate; an inactive category excludes
// the rule and its whole subtree from loading.
func (b *themeBuilder) rule(se xml.StartElement, parent Rule) error {
	if cat, _ := attrVal(se, "cat"); !b.catActive(cat) {
		return b.skip()
	}

	r := parent.child()

	if v, ok := attrVal(se, "e"); ok {
		switch v {
		case "node":
			r.setElements(maskNode)
		case "way":
			r.setElements(maskWay)
		case "any":
		default:
			return b.attrErr(se, "e", v)
		}
	}
	if v, ok := attrVal(se, "closed"); ok {
		switch v {
		case "yes":
			r.setClosed(maskClosed)
		case "no":
			r.setClosed(maskOpen)
		case "any":
		default:
			return b.attrErr(se, "closed", v)
		}
	}
	if v, ok := attrVal(se, "zoom-min"); ok {
		z, err := strconv.Atoi(v)
		if err != nil {
			return b.attrErr(se, "zoom-min", v)
		}
		r.setMinZoom(z)
	}
	if v, ok := attrVal(se, "zoom-max"); ok {
		z, err := strconv.Atoi(v)
		if err != nil {
			return b.attrErr(se, "zoom-max", v)
		}
		r.setMaxZoom(z)
	}

	kAttr, hasK := attrVal(se, "k")
	vAttr, hasV := attrVal(se, "v")
	if hasK || hasV {
		r.addFilter(b.filter(kAttr, vAttr))
	}

	for {
		tok, err := b.dec.Token()
		if err != nil {
			return b.parseErr(err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "rule":
				err = b.rule(t, r)
			case "area":
				err = b.area(t, r)
			case "line":
				err = b.line(t, r)
			case "circle":
				err = b.circle(t, r)
			case "caption":
				err = b.text(t, r, false)
			case "pathText":
				err = b.text(t, r, true)
			case "symbol":
				err = b.symbol(t, r)
			default:
				err = b.skip()
			}
			if err != nil {
				return err
			}
		case xml.EndElement:
			return nil
		}
	}
}

// filter builds one filter clause from the k and v attribute lists. A
// missing or empty list is the wildcard; a '~' entry in the value list
// negates the clause.
func (b *themeBuilder) filter(kAttr, vAttr string) filter {
	var keys []TagKey
	if kAttr == "" {
		keys = []TagKey{WildcardKey}
	} else {
		for _, tok := range strings.Split(kAttr, listSeparator) {
			if tok == wildcardToken {
				keys = append(keys, WildcardKey)
			} else {
				keys = append(keys, b.keys.Intern(tok))
			}
		}
	}

	var values []string
	negated := false
	if vAttr == "" {
		values = []string{""}
	} else {
		for _, tok := range strings.Split(vAttr, listSeparator) {
			switch tok {
			case negationToken:
				// The marker stays in the value list: a plain v="~" then
				// matches only features lacking the key entirely, since a
				// present key's value never equals the marker.
				negated = true
				values = append(values, tok)
			case wildcardToken:
				values = append(values, "")
			default:
				values = append(values, tok)
			}
		}
	}

	return newFilter(keys, values, negated)
}

func (b *themeBuilder) line(se xml.StartElement, r Rule) error {
	if cat, _ := attrVal(se, "cat"); !b.catActive(cat) {
		return b.skip()
	}

	p := PathRender{
		Render: Render{rule: r},
		zOrder: b.nextZOrder(),
		cap:    LineCapRound,
		join:   LineJoinRound,
		scale:  ScaleStroke,
	}

	var err error
	if p.strokeColor, err = b.colorAttr(se, "stroke", Transparent); err != nil {
		return err
	}
	if p.strokeWidth, err = b.sizeAttr(se, "stroke-width", 0); err != nil {
		return err
	}
	if v, ok := attrVal(se, "stroke-dasharray"); ok {
		dash, derr := parseDash(v)
		if derr != nil {
			return b.attrErr(se, "stroke-dasharray", v)
		}
		p.dash = scaleDash(dash, b.ratio)
	}
	if v, ok := attrVal(se, "stroke-linecap"); ok {
		if p.cap, err = parseLineCap(v); err != nil {
			return b.attrErr(se, "stroke-linecap", v)
		}
	}
	if v, ok := attrVal(se, "stroke-linejoin"); ok {
		if p.join, err = parseLineJoin(v); err != nil {
			return b.attrErr(se, "stroke-linejoin", v)
		}
	}
	if v, ok := attrVal(se, "dy"); ok {
		dy, derr := strconv.ParseFloat(v, 64)
		if derr != nil {
			return b.attrErr(se, "dy", v)
		}
		p.dy = dy * b.ratio
	}
	if v, ok := attrVal(se, "scale"); ok {
		if p.scale, err = parseScaleMode(v); err != nil {
			return b.attrErr(se, "scale", v)
		}
	}
	if v, ok := attrVal(se, "curve"); ok {
		if v != cubicToken {
			return b.attrErr(se, "curve", v)
		}
		p.curve = true
	}

	b.paths = append(b.paths, p)
	return b.skip()
}

func (b *themeBuilder) area(se xml.StartElement, r Rule) error {
	if cat, _ := attrVal(se, "cat"); !b.catActive(cat) {
		return b.skip()
	}

	p := PathRender{
		Render: Render{rule: r},
		zOrder: b.nextZOrder(),
		cap:    LineCapRound,
		join:   LineJoinRound,
		area:   true,
		scale:  ScaleStroke,
	}

	var err error
	if v, ok := attrVal(se, "fill"); ok {
		c, cerr := ParseColor(v)
		if cerr != nil {
			return b.attrErr(se, "fill", v)
		}
		p.brush = Solid(c)
	}
	if src, ok := attrVal(se, "src"); ok {
		img, loaded := b.loadBitmap(src, 0)
		if !loaded {
			// Missing fill bitmap: drop this one instruction, keep loading.
			return b.skip()
		}
		p.brush = BitmapBrush{Img: img}
	}
	if p.strokeColor, err = b.colorAttr(se, "stroke", Transparent); err != nil {
		return err
	}
	if p.strokeWidth, err = b.sizeAttr(se, "stroke-width", 0); err != nil {
		return err
	}

	b.paths = append(b.paths, p)
	return b.skip()
}

func (b *themeBuilder) circle(se xml.StartElement, r Rule) error {
	if cat, _ := attrVal(se, "cat"); !b.catActive(cat) {
		return b.skip()
	}

	c := CircleRender{
		Render: Render{rule: r},
		zOrder: b.nextZOrder(),
	}

	v, ok := attrVal(se, "r")
	if !ok {
		return b.attrErr(se, "r", "")
	}
	radius, err := strconv.ParseFloat(v, 64)
	if err != nil || radius <= 0 {
		return b.attrErr(se, "r", v)
	}
	c.radius = radius * b.ratio

	if c.scale, err = b.boolAttr(se, "scale-radius", false); err != nil {
		return err
	}
	if v, ok := attrVal(se, "fill"); ok {
		col, cerr := ParseColor(v)
		if cerr != nil {
			return b.attrErr(se, "fill", v)
		}
		c.brush = Solid(col)
	}
	if c.pen.Color, err = b.colorAttr(se, "stroke", Transparent); err != nil {
		return err
	}
	if c.pen.Width, err = b.sizeAttr(se, "stroke-width", 0); err != nil {
		return err
	}

	b.circles = append(b.circles, c)
	return b.skip()
}

func (b *themeBuilder) text(se xml.StartElement, r Rule, pathText bool) error {
	if cat, _ := attrVal(se, "cat"); !b.catActive(cat) {
		return b.skip()
	}

	k, ok := attrVal(se, "k")
	if !ok || k == "" {
		return b.attrErr(se, "k", k)
	}

	t := TextRender{
		Render: Render{rule: r},
		key:    b.captionKey(k),
		font:   Font{Family: FamilyDefault, Style: StyleNormal, Size: 10 * b.ratio},
	}

	var err error
	if t.fillColor, err = b.colorAttr(se, "fill", Black); err != nil {
		return err
	}
	if t.strokeColor, err = b.colorAttr(se, "stroke", Black); err != nil {
		return err
	}
	if t.strokeWidth, err = b.sizeAttr(se, "stroke-width", 0); err != nil {
		return err
	}
	if v, ok := attrVal(se, "font-family"); ok {
		if t.font.Family, err = parseFontFamily(v); err != nil {
			return b.attrErr(se, "font-family", v)
		}
	}
	if v, ok := attrVal(se, "font-style"); ok {
		if t.font.Style, err = parseFontStyle(v); err != nil {
			return b.attrErr(se, "font-style", v)
		}
	}
	if v, ok := attrVal(se, "font-size"); ok {
		size, serr := strconv.ParseFloat(v, 64)
		if serr != nil || size < 0 {
			return b.attrErr(se, "font-size", v)
		}
		t.font.Size = size * b.ratio
	}
	if t.priority, err = b.intAttr(se, "priority", 0); err != nil {
		return err
	}
	if t.face, err = b.faces.face(t.font.Family, t.font.Style); err != nil {
		return err
	}

	switch {
	case pathText:
		b.pathLabels = append(b.pathLabels, t)
	default:
		if r.elements == 0 || r.elements&maskNode != 0 {
			b.pointLabels = append(b.pointLabels, t)
		}
		if r.elements == 0 || r.elements&maskWay != 0 {
			b.areaLabels = append(b.areaLabels, t)
		}
	}
	return b.skip()
}

func (b *themeBuilder) symbol(se xml.StartElement, r Rule) error {
	if cat, _ := attrVal(se, "cat"); !b.catActive(cat) {
		return b.skip()
	}

	src, ok := attrVal(se, "src")
	if !ok || src == "" {
		return b.attrErr(se, "src", src)
	}

	width, err := b.sizeAttr(se, "symbol-width", 0)
	if err != nil {
		return err
	}
	priority, err := b.intAttr(se, "priority", 0)
	if err != nil {
		return err
	}

	img, loaded := b.loadBitmap(src, width)
	if !loaded {
		return b.skip()
	}

	s := Symbol{
		Render:   Render{rule: r},
		priority: priority,
		img:      img,
		src:      src,
	}
	if r.elements == 0 || r.elements&maskNode != 0 {
		b.pointSymbols = append(b.pointSymbols, s)
	}
	if r.elements == 0 || r.elements&maskWay != 0 {
		b.areaSymbols = append(b.areaSymbols, s)
	}
	return b.skip()
}

// captionKey binds a caption's text key, preferring the localized variant
// when WithLocale is set and the decoder already interned it.
func (b *themeBuilder) captionKey(name string) TagKey {
	if b.opts.locale != "" {
		if id, ok := b.keys.Lookup(name + ":" + b.opts.locale); ok {
			return id
		}
	}
	return b.keys.Intern(name)
}

func (b *themeBuilder) nextZOrder() int {
	z := b.zOrder
	b.zOrder++
	return z
}

// skip consumes the current element's subtree.
func (b *themeBuilder) skip() error {
	if err := b.dec.Skip(); err != nil {
		return b.parseErr(err)
	}
	return nil
}

func (b *themeBuilder) parseErr(err error) error {
	return &ParseError{Offset: b.dec.InputOffset(), Err: err}
}

func (b *themeBuilder) attrErr(se xml.StartElement, attr, value string) error {
	return &AttributeError{
		Element: se.Name.Local,
		Attr:    attr,
		Value:   value,
		Offset:  b.dec.InputOffset(),
	}
}

func attrVal(se xml.StartElement, name string) (string, bool) {
	for _, a := range se.Attr {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

func (b *themeBuilder) colorAttr(se xml.StartElement, name string, def Color) (Color, error) {
	v, ok := attrVal(se, name)
	if !ok {
		return def, nil
	}
	c, err := ParseColor(v)
	if err != nil {
		return Color{}, b.attrErr(se, name, v)
	}
	return c, nil
}

// sizeAttr parses a non-negative pixel size and applies the display ratio.
func (b *themeBuilder) sizeAttr(se xml.StartElement, name string, def float64) (float64, error) {
	v, ok := attrVal(se, name)
	if !ok {
		return def * b.ratio, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f < 0 {
		return 0, b.attrErr(se, name, v)
	}
	return f * b.ratio, nil
}

func (b *themeBuilder) intAttr(se xml.StartElement, name string, def int) (int, error) {
	v, ok := attrVal(se, name)
	if !ok {
		return def, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, b.attrErr(se, name, v)
	}
	return i, nil
}

func (b *themeBuilder) boolAttr(se xml.StartElement, name string, def bool) (bool, error) {
	v, ok := attrVal(se, name)
	if !ok {
		return def, nil
	}
	switch v {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, b.attrErr(se, name, v)
}
