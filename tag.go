package mapstyle

// TagKey is an interned tag key identifier. Key 0 is reserved as the
// wildcard and matches any key in a filter clause.
type TagKey uint32

// WildcardKey matches any tag key. The empty string is the analogous
// wildcard for tag values.
const WildcardKey TagKey = 0

// wildcardToken is the theme spelling of "any key" / "any value".
const wildcardToken = "*"

// Tag is a single key/value attribute on a map feature, e.g.
// highway=primary. Tags are produced by the map data decoder; mapstyle only
// compares them against filter clauses.
type Tag struct {
	Key   TagKey
	Value string
}

// KeyTable interns tag key strings to small integer ids so that rule
// matching compares integers instead of strings. The map data decoder and
// the theme loader must share one table, otherwise theme keys and feature
// keys land in different id spaces and nothing matches.
//
// A KeyTable is not safe for concurrent mutation; intern all keys before
// the query phase starts. Lookups via Name are read-only.
type KeyTable struct {
	ids   map[string]TagKey
	names []string
}

// NewKeyTable creates a KeyTable with the wildcard key preinterned as id 0.
func NewKeyTable() *KeyTable {
	return &KeyTable{
		ids:   map[string]TagKey{wildcardToken: WildcardKey},
		names: []string{wildcardToken},
	}
}

// Intern returns the id for name, assigning the next free id on first use.
// The wildcard token "*" always interns to WildcardKey.
func (t *KeyTable) Intern(name string) TagKey {
	if id, ok := t.ids[name]; ok {
		return id
	}
	id := TagKey(len(t.names))
	t.ids[name] = id
	t.names = append(t.names, name)
	return id
}

// Lookup returns the id for name without interning it.
func (t *KeyTable) Lookup(name string) (TagKey, bool) {
	id, ok := t.ids[name]
	return id, ok
}

// Name returns the string for an interned key id, or "" if the id is
// unknown.
func (t *KeyTable) Name(id TagKey) string {
	if int(id) >= len(t.names) {
		return ""
	}
	return t.names[id]
}

// Len returns the number of interned keys, including the wildcard.
func (t *KeyTable) Len() int { return len(t.names) }
