package ember

import "testing"

func TestRangeIteratorExhaustion(t *testing.T) {
	it := &Interpreter{}
	r := NewRange(0, 3, 1)
	iter, err := GetIter(r)
	if err != nil {
		t.Fatalf("GetIter: %v", err)
	}
	var got []int64
	for {
		v, err := it.IterNext(iter)
		if err != nil {
			t.Fatalf("IterNext: %v", err)
		}
		if v == StopIteration {
			break
		}
		got = append(got, int64(v.(SmallInt)))
	}
	want := []int64{0, 1, 2}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
	// Once exhausted, further calls keep returning StopIteration (§8).
	for i := 0; i < 3; i++ {
		v, err := it.IterNext(iter)
		if err != nil || v != StopIteration {
			t.Fatalf("IterNext after exhaustion = %v, %v; want StopIteration, nil", v, err)
		}
	}
}

func TestListIteratorOrder(t *testing.T) {
	it := &Interpreter{}
	l := NewList([]Value{SmallInt(1), SmallInt(2), SmallInt(3)})
	iter, err := GetIter(l)
	if err != nil {
		t.Fatalf("GetIter: %v", err)
	}
	for i := 1; i <= 3; i++ {
		v, err := it.IterNext(iter)
		if err != nil {
			t.Fatalf("IterNext: %v", err)
		}
		if v.(SmallInt) != SmallInt(i) {
			t.Fatalf("IterNext() = %v, want %d", v, i)
		}
	}
	v, err := it.IterNext(iter)
	if err != nil || v != StopIteration {
		t.Fatalf("IterNext() = %v, %v; want StopIteration, nil", v, err)
	}
}

func TestGetIterRejectsNonIterable(t *testing.T) {
	if _, err := GetIter(SmallInt(1)); err == nil {
		t.Fatalf("expected TypeError iterating a SmallInt")
	}
}

func TestGenNextBuiltinRaisesStopIteration(t *testing.T) {
	it := &Interpreter{}
	g := &GenInstance{Done: true}
	next := it.genNextBuiltin()
	fn, ok := next.(*Fun1)
	if !ok {
		t.Fatalf("genNextBuiltin() did not return a Fun1")
	}
	_, err := fn.Fn(g)
	if err == nil {
		t.Fatalf("expected a raised StopIteration from an exhausted generator's __next__")
	}
	rt, ok := err.(*RuntimeError)
	if !ok {
		t.Fatalf("expected *RuntimeError, got %T", err)
	}
	exc, ok := rt.Exc.(*Exception0)
	if !ok || exc.ClassName() != "StopIteration" {
		t.Fatalf("expected a StopIteration exception, got %v", rt.Exc)
	}
}
