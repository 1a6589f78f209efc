package identity

import (
	"testing"

	ember "github.com/emberlang/ember/internal/runtime"
)

func TestNewMintsDistinctUUIDs(t *testing.T) {
	a := New()
	b := New()
	it := ember.New(nil)

	lookup, err := it.LoadMethod(a, "string")
	if err != nil {
		t.Fatalf("LoadMethod(string): %v", err)
	}
	sa, err := it.CallMethodN(lookup, nil)
	if err != nil {
		t.Fatalf("a.string(): %v", err)
	}

	lookup, err = it.LoadMethod(b, "string")
	if err != nil {
		t.Fatalf("LoadMethod(string): %v", err)
	}
	sb, err := it.CallMethodN(lookup, nil)
	if err != nil {
		t.Fatalf("b.string(): %v", err)
	}

	if sa.(*ember.Str).GoString() == sb.(*ember.Str).GoString() {
		t.Fatalf("two New() calls minted the same uuid: %s", sa.(*ember.Str).GoString())
	}
}

func TestParseRoundTripsString(t *testing.T) {
	a := New()
	it := ember.New(nil)
	lookup, err := it.LoadMethod(a, "string")
	if err != nil {
		t.Fatalf("LoadMethod(string): %v", err)
	}
	s, err := it.CallMethodN(lookup, nil)
	if err != nil {
		t.Fatalf("a.string(): %v", err)
	}

	b, err := Parse(s.(*ember.Str).GoString())
	if err != nil {
		t.Fatalf("Parse(%q): %v", s.(*ember.Str).GoString(), err)
	}

	lookup, err = it.LoadMethod(b, "string")
	if err != nil {
		t.Fatalf("LoadMethod(string) on parsed: %v", err)
	}
	s2, err := it.CallMethodN(lookup, nil)
	if err != nil {
		t.Fatalf("b.string(): %v", err)
	}
	if s.(*ember.Str).GoString() != s2.(*ember.Str).GoString() {
		t.Fatalf("round trip mismatch: %s != %s", s.(*ember.Str).GoString(), s2.(*ember.Str).GoString())
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	if _, err := Parse("not-a-uuid"); err == nil {
		t.Fatalf("expected an error parsing a malformed uuid string")
	}
}

func TestURNMethod(t *testing.T) {
	a := New()
	it := ember.New(nil)
	lookup, err := it.LoadMethod(a, "urn")
	if err != nil {
		t.Fatalf("LoadMethod(urn): %v", err)
	}
	v, err := it.CallMethodN(lookup, nil)
	if err != nil {
		t.Fatalf("a.urn(): %v", err)
	}
	s := v.(*ember.Str).GoString()
	if len(s) < 9 || s[:9] != "urn:uuid:" {
		t.Fatalf("urn() = %q, want a urn:uuid: prefix", s)
	}
}

func TestLoadAttrRejectsUserValue(t *testing.T) {
	// USER-kind values are reachable only via LoadMethod (attr.go's
	// LoadAttr switch has no *User case).
	a := New()
	it := ember.New(nil)
	if _, err := it.LoadAttr(a, "string"); err == nil {
		t.Fatalf("expected LoadAttr on a USER value to fail with AttributeError")
	}
}
