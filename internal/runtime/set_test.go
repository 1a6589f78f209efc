package ember

import "testing"

func TestSetAddAndContains(t *testing.T) {
	s := NewSet()
	if err := s.Add(SmallInt(1)); err != nil {
		t.Fatalf("Add(1): %v", err)
	}
	if err := s.Add(SmallInt(1)); err != nil {
		t.Fatalf("Add(1) again: %v", err)
	}
	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1 (duplicate add must be a no-op)", s.Len())
	}
	ok, err := s.Contains(SmallInt(1))
	if err != nil || !ok {
		t.Fatalf("Contains(1) = %v, %v", ok, err)
	}
	ok, err = s.Contains(SmallInt(2))
	if err != nil || ok {
		t.Fatalf("Contains(2) = %v, %v; want false", ok, err)
	}
}

func TestSetBoolIntIdentityAgreement(t *testing.T) {
	// Hash/Equal must agree (spec.md §3.1): True hashes like 1, so adding
	// both must collapse to one member.
	s := NewSet()
	if err := s.Add(True); err != nil {
		t.Fatalf("Add(True): %v", err)
	}
	if err := s.Add(SmallInt(1)); err != nil {
		t.Fatalf("Add(1): %v", err)
	}
	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1 (True and 1 must collide)", s.Len())
	}
}

func TestSetGrowsPastSeveralRehashes(t *testing.T) {
	s := NewSet()
	const n = 1000
	for i := 0; i < n; i++ {
		if err := s.Add(SmallInt(i)); err != nil {
			t.Fatalf("Add(%d): %v", i, err)
		}
	}
	if s.Len() != n {
		t.Fatalf("Len() = %d, want %d", s.Len(), n)
	}
	for i := 0; i < n; i++ {
		ok, err := s.Contains(SmallInt(i))
		if err != nil || !ok {
			t.Fatalf("Contains(%d) = %v, %v", i, ok, err)
		}
	}
}

func TestSetUnhashableMemberIsTypeError(t *testing.T) {
	s := NewSet()
	if err := s.Add(NewList(nil)); err == nil {
		t.Fatalf("expected TypeError adding an unhashable (LIST) member")
	}
}
