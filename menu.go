package mapstyle

// Layer is a user-selectable entry of a theme's style menu. Selecting a
// layer activates its categories plus the categories inherited through its
// parent chain and contributed by its enabled overlays.
type Layer struct {
	id       string
	parent   string
	enabled  bool
	cats     []string
	overlays []string
}

// ID returns the layer identifier.
func (l *Layer) ID() string { return l.id }

// Parent returns the identifier of the layer this one inherits from, or ""
// for a root layer.
func (l *Layer) Parent() string { return l.parent }

// Enabled reports whether the layer is active by default. Overlays only
// contribute their categories when enabled.
func (l *Layer) Enabled() bool { return l.enabled }

// Cats returns the categories the layer activates directly.
func (l *Layer) Cats() []string { return l.cats }

// Overlays returns the identifiers of add-on layers.
func (l *Layer) Overlays() []string { return l.overlays }

// Menu is a theme's style menu: the set of selectable layers and the
// default selection. Its only job is to resolve the active category set
// once per load; it is inert during the query phase.
type Menu struct {
	defaultValue string
	layers       []Layer
}

// DefaultLayer returns the identifier of the theme's default layer.
func (m *Menu) DefaultLayer() string { return m.defaultValue }

// Layers returns the declared layers.
func (m *Menu) Layers() []Layer { return m.layers }

// Cats resolves the active category set for a selected layer: the layer's
// own categories, its ancestor chain's, and those of its enabled overlays.
// An unknown id falls back to the menu's default layer; if that is missing
// too, the set is empty.
func (m *Menu) Cats(layerID string) map[string]struct{} {
	cats := make(map[string]struct{})

	layer := m.findLayer(layerID)
	if layer == nil {
		if layerID != "" && layerID != m.defaultValue {
			Logger().Warn("mapstyle: unknown style-menu layer, using default",
				"layer", layerID, "default", m.defaultValue)
		}
		layer = m.findLayer(m.defaultValue)
	}
	if layer == nil {
		return cats
	}

	m.addCats(layer, cats, make(map[string]struct{}))
	return cats
}

func (m *Menu) findLayer(id string) *Layer {
	if id == "" {
		return nil
	}
	for i := range m.layers {
		if m.layers[i].id == id {
			return &m.layers[i]
		}
	}
	return nil
}

// addCats accumulates a layer's categories and recurses into its parent and
// enabled overlays. visited guards against reference cycles in malformed
// themes.
func (m *Menu) addCats(layer *Layer, cats, visited map[string]struct{}) {
	if _, ok := visited[layer.id]; ok {
		return
	}
	visited[layer.id] = struct{}{}

	for _, c := range layer.cats {
		cats[c] = struct{}{}
	}
	if p := m.findLayer(layer.parent); p != nil {
		m.addCats(p, cats, visited)
	}
	for _, id := range layer.overlays {
		if o := m.findLayer(id); o != nil && o.enabled {
			m.addCats(o, cats, visited)
		}
	}
}
