package ember

import "testing"

func TestArgsForwardReversesBuffer(t *testing.T) {
	// argv is stored reverse-order (spec.md §4.4): argv[n-1] is the first
	// logical argument. At()/Forward() must undo that.
	a := Args{SmallInt(3), SmallInt(2), SmallInt(1)} // argv[2]=1 is first
	for i, want := range []int64{1, 2, 3} {
		if got := a.At(i); got.(SmallInt) != SmallInt(want) {
			t.Fatalf("At(%d) = %v, want %d", i, got, want)
		}
	}
	fwd := a.Forward()
	for i, want := range []int64{1, 2, 3} {
		if fwd[i].(SmallInt) != SmallInt(want) {
			t.Fatalf("Forward()[%d] = %v, want %d", i, fwd[i], want)
		}
	}
}

func TestArgsFromForwardRoundTrips(t *testing.T) {
	fwd := []Value{SmallInt(1), SmallInt(2), SmallInt(3)}
	a := ArgsFromForward(fwd)
	if got := a.Forward(); len(got) != len(fwd) {
		t.Fatalf("round trip changed length: %v", got)
	} else {
		for i := range fwd {
			if got[i] != fwd[i] {
				t.Fatalf("round trip mismatch at %d: got %v, want %v", i, got[i], fwd[i])
			}
		}
	}
}

func TestArgsPrependAddsSelfAsFirst(t *testing.T) {
	a := Args{SmallInt(2), SmallInt(1)} // logical (1, 2)
	out := a.Prepend(SmallInt(0))       // logical (0, 1, 2)
	want := []int64{0, 1, 2}
	if out.Len() != len(want) {
		t.Fatalf("Prepend() length = %d, want %d", out.Len(), len(want))
	}
	for i, w := range want {
		if out.At(i).(SmallInt) != SmallInt(w) {
			t.Fatalf("Prepend().At(%d) = %v, want %d", i, out.At(i), w)
		}
	}
}
