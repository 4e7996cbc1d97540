package mapstyle

import "testing"

func TestFilterMatch(t *testing.T) {
	keys := NewKeyTable()
	highway := keys.Intern("highway")
	railway := keys.Intern("railway")
	name := keys.Intern("name")

	tags := []Tag{
		{Key: highway, Value: "primary"},
		{Key: name, Value: "Main Street"},
	}

	tests := []struct {
		name   string
		filter filter
		tags   []Tag
		want   bool
	}{
		{
			"key and value present",
			newFilter([]TagKey{highway}, []string{"primary"}, false),
			tags, true,
		},
		{
			"key present value absent",
			newFilter([]TagKey{highway}, []string{"secondary"}, false),
			tags, false,
		},
		{
			"key absent",
			newFilter([]TagKey{railway}, []string{"primary"}, false),
			tags, false,
		},
		{
			"multi-value or list",
			newFilter([]TagKey{highway}, []string{"secondary", "primary"}, false),
			tags, true,
		},
		{
			"wildcard key",
			newFilter([]TagKey{WildcardKey}, []string{"primary"}, false),
			tags, true,
		},
		{
			"wildcard value",
			newFilter([]TagKey{highway}, []string{""}, false),
			tags, true,
		},
		{
			// Key and value matches are independent over the whole tag
			// set, not pairwise: highway's value never equals "Main
			// Street", but another tag's does.
			"cross-tag key and value match",
			newFilter([]TagKey{highway}, []string{"Main Street"}, false),
			tags, true,
		},
		{
			"wildcard key does not match empty tag set",
			newFilter([]TagKey{WildcardKey}, []string{""}, false),
			nil, false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.match(tt.tags); got != tt.want {
				t.Errorf("match = %v, want %v", got, tt.want)
			}
		})
	}
}

// Negated filters pass vacuously when the key is absent; when the key is
// present the value match decides. This encodes "absent is fine, but if
// present must equal one of these".
func TestFilterNegated(t *testing.T) {
	keys := NewKeyTable()
	access := keys.Intern("access")
	highway := keys.Intern("highway")

	f := newFilter([]TagKey{access}, []string{"yes", "permissive"}, true)

	tests := []struct {
		name string
		tags []Tag
		want bool
	}{
		{"key absent passes vacuously", []Tag{{Key: highway, Value: "path"}}, true},
		{"key present with allowed value", []Tag{{Key: access, Value: "yes"}}, true},
		{"key present with other value", []Tag{{Key: access, Value: "private"}}, false},
		{"empty tag set passes", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.match(tt.tags); got != tt.want {
				t.Errorf("match(%v) = %v, want %v", tt.tags, got, tt.want)
			}
		})
	}
}

func TestFilterTautology(t *testing.T) {
	tests := []struct {
		name   string
		filter filter
		want   bool
	}{
		{"wildcard key and value", newFilter([]TagKey{WildcardKey}, []string{""}, false), true},
		{"wildcard among others", newFilter([]TagKey{WildcardKey, 5}, []string{"x", ""}, false), true},
		{"wildcard key only", newFilter([]TagKey{WildcardKey}, []string{"primary"}, false), false},
		{"wildcard value only", newFilter([]TagKey{3}, []string{""}, false), false},
		{"negated wildcard is not a tautology", newFilter([]TagKey{WildcardKey}, []string{""}, true), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.isTautology(); got != tt.want {
				t.Errorf("isTautology = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilterDeduplicates(t *testing.T) {
	f := newFilter([]TagKey{1, 2, 1}, []string{"a", "a", "b"}, false)
	if len(f.keys) != 2 {
		t.Errorf("keys = %v, want 2 unique entries", f.keys)
	}
	if len(f.values) != 2 {
		t.Errorf("values = %v, want 2 unique entries", f.values)
	}
}
