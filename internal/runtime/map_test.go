package ember

import "testing"

func TestMapObjKeyPreservedOnUpdate(t *testing.T) {
	// {True: 'true'}[1] — spec.md §8 key-preservation scenario: inserting
	// with key True then looking up with the Equal-but-distinct key 1 must
	// hit the same slot, and a subsequent SetObj(1, ...) must not replace
	// the stored key.
	m := NewObjMap()
	if err := m.SetObj(True, NewStr("true")); err != nil {
		t.Fatalf("SetObj(True): %v", err)
	}
	v, ok, err := m.GetObj(SmallInt(1))
	if err != nil {
		t.Fatalf("GetObj(1): %v", err)
	}
	if !ok {
		t.Fatalf("expected True and 1 to share a slot")
	}
	s, ok := v.(*Str)
	if !ok || s.GoString() != "true" {
		t.Fatalf("got %v, want 'true'", v)
	}

	if err := m.SetObj(SmallInt(1), NewStr("one")); err != nil {
		t.Fatalf("SetObj(1): %v", err)
	}
	items := m.Items()
	if len(items) != 1 {
		t.Fatalf("expected 1 live entry after overwrite via the equal key, got %d", len(items))
	}
	if items[0].OKey != Value(True) {
		t.Fatalf("expected the original key (True) to survive the update, got %v", items[0].OKey)
	}
}

func TestMapGrowsWithinLoadFactor(t *testing.T) {
	m := NewObjMap()
	const n = 500
	for i := 0; i < n; i++ {
		if err := m.SetObj(SmallInt(i), SmallInt(i*2)); err != nil {
			t.Fatalf("SetObj(%d): %v", i, err)
		}
	}
	if m.Len() != n {
		t.Fatalf("Len() = %d, want %d", m.Len(), n)
	}
	// LookupObj grows before used+1 would reach len(slots); assert the
	// invariant holds post-insert rather than reach into internals.
	if m.used+1 >= len(m.slots) {
		t.Fatalf("map load factor violated: used=%d slots=%d", m.used, len(m.slots))
	}
	for i := 0; i < n; i++ {
		v, ok, err := m.GetObj(SmallInt(i))
		if err != nil || !ok {
			t.Fatalf("GetObj(%d): ok=%v err=%v", i, ok, err)
		}
		if v.(SmallInt) != SmallInt(i*2) {
			t.Fatalf("GetObj(%d) = %v, want %d", i, v, i*2)
		}
	}
}

func TestMapLookupMissReturnsFalse(t *testing.T) {
	m := NewObjMap()
	_, ok, err := m.GetObj(NewStr("absent"))
	if err != nil {
		t.Fatalf("GetObj: %v", err)
	}
	if ok {
		t.Fatalf("expected a miss on an empty map")
	}
}

func TestQSTRMapRoundTrip(t *testing.T) {
	m := NewQSTRMap()
	m.SetQSTR(Intern("x"), SmallInt(42))
	v, ok := m.GetQSTR(Intern("x"))
	if !ok || v.(SmallInt) != 42 {
		t.Fatalf("GetQSTR(x) = %v, ok=%v", v, ok)
	}
	if _, ok := m.GetQSTR(Intern("y")); ok {
		t.Fatalf("expected miss for unset key")
	}
}

func TestUnhashableMapKeyIsTypeError(t *testing.T) {
	m := NewObjMap()
	if err := m.SetObj(NewList(nil), SmallInt(1)); err == nil {
		t.Fatalf("expected TypeError inserting an unhashable (LIST) key")
	}
}
