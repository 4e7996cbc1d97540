package mapstyle

import "testing"

func TestKeyTableIntern(t *testing.T) {
	keys := NewKeyTable()

	highway := keys.Intern("highway")
	if highway == WildcardKey {
		t.Fatal("first interned key must not collide with the wildcard")
	}
	if again := keys.Intern("highway"); again != highway {
		t.Errorf("re-intern = %d, want %d", again, highway)
	}
	if name := keys.Name(highway); name != "highway" {
		t.Errorf("Name = %q, want highway", name)
	}

	if got := keys.Intern(wildcardToken); got != WildcardKey {
		t.Errorf("Intern(*) = %d, want WildcardKey", got)
	}
}

func TestKeyTableLookup(t *testing.T) {
	keys := NewKeyTable()
	keys.Intern("name")

	if _, ok := keys.Lookup("name"); !ok {
		t.Error("Lookup of interned key failed")
	}
	if id, ok := keys.Lookup("missing"); ok {
		t.Errorf("Lookup(missing) = %d, want not found", id)
	}
	if keys.Name(999) != "" {
		t.Error("Name of unknown id should be empty")
	}
	if keys.Len() != 2 { // wildcard + name
		t.Errorf("Len = %d, want 2", keys.Len())
	}
}
