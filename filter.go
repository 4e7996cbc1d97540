package mapstyle

import "slices"

// filter is a single key/value predicate clause within a rule. A feature
// passes when at least one of its tag keys is in the key set (or the set
// holds the wildcard) and at least one of its tag values is in the value set
// (or the set holds the wildcard). Key and value matches are evaluated
// independently over the whole tag set, not pairwise.
//
// A negated filter passes vacuously when no tag key matches at all;
// otherwise the value match decides. This encodes "the tag may be absent,
// but if present its value must be one of these".
type filter struct {
	keys    []TagKey
	values  []string
	negated bool
}

// newFilter builds a filter from candidate key and value sets. Duplicate
// entries are dropped, preserving first-seen order.
func newFilter(keys []TagKey, values []string, negated bool) filter {
	f := filter{negated: negated}
	for _, k := range keys {
		if !slices.Contains(f.keys, k) {
			f.keys = append(f.keys, k)
		}
	}
	for _, v := range values {
		if !slices.Contains(f.values, v) {
			f.values = append(f.values, v)
		}
	}
	return f
}

func (f *filter) match(tags []Tag) bool {
	if f.negated {
		if !f.keyMatches(tags) {
			return true
		}
		return f.valueMatches(tags)
	}
	return f.keyMatches(tags) && f.valueMatches(tags)
}

// keyMatches reports whether any feature tag key is in the candidate set.
// The wildcard key matches only when the feature has at least one tag.
func (f *filter) keyMatches(tags []Tag) bool {
	for _, key := range f.keys {
		for j := range tags {
			if key == WildcardKey || key == tags[j].Key {
				return true
			}
		}
	}
	return false
}

func (f *filter) valueMatches(tags []Tag) bool {
	for _, val := range f.values {
		for j := range tags {
			if val == "" || val == tags[j].Value {
				return true
			}
		}
	}
	return false
}

// isTautology reports whether the filter can never exclude anything: a
// non-negated clause whose key set holds the wildcard key and whose value
// set holds the wildcard value. Tautologies are dropped at rule
// construction and never retained.
func (f *filter) isTautology() bool {
	return !f.negated &&
		slices.Contains(f.keys, WildcardKey) &&
		slices.Contains(f.values, "")
}
