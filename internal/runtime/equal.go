package ember

// Equal implements the semantic equality contract of spec.md §3.1. It is
// defined only where it must agree with Hash: small ints compare equal by
// value, the booleans act as 0/1, strings compare equal by interned handle,
// and every other comparison falls back to object identity (pointer
// equality): a value is Equal to itself, but two distinct MAP objects with
// the same contents are not Equal.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case SmallInt:
		switch bv := b.(type) {
		case SmallInt:
			return av == bv
		case *Const:
			return bv == False && av == 0 || bv == True && av == 1
		default:
			return false
		}
	case *Const:
		switch bv := b.(type) {
		case *Const:
			return av == bv
		case SmallInt:
			return av == False && bv == 0 || av == True && bv == 1
		default:
			return false
		}
	case *Str:
		bv, ok := b.(*Str)
		return ok && av.Handle == bv.Handle
	default:
		return a == b
	}
}

// Hash returns the hash of a hashable value per spec.md §3.1. ok is false
// for kinds that are not hashable — attempting to use such a value as a
// map/set key is a caller error (§3.1: "Other kinds are not hashable").
func Hash(v Value) (h int64, ok bool) {
	switch vv := v.(type) {
	case SmallInt:
		return int64(vv), true
	case *Const:
		switch vv {
		case False:
			return 0, true
		case True:
			return 1, true
		default:
			// identity hash for None/StopIteration
			return int64(uintptr(ptrOf(vv))), true
		}
	case *Str:
		return int64(vv.Handle), true
	default:
		return 0, false
	}
}
