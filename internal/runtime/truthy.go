package ember

// Truthy reports whether v is truthy, as consumed by unary `not` and the
// VM's conditional-jump contract. The original prototype (original_source's
// rt_is_true) only ever inspects small-ints, None, False and True; this
// generalizes that table the same narrow way spec.md's own closed kind set
// does, extending it to the empty/non-empty check for the container and
// string kinds the original never saw.
func Truthy(v Value) bool {
	switch vv := v.(type) {
	case SmallInt:
		return vv != 0
	case *Const:
		return vv == True || (vv != None && vv != False && vv != StopIteration)
	case *Float:
		return vv.Value != 0
	case *Str:
		return vv.Handle != 0 && qstrStr(vv.Handle) != ""
	case *Tuple:
		return len(vv.Items) != 0
	case *List:
		return len(vv.Items) != 0
	case *Set:
		return vv.Len() != 0
	case *Map:
		return vv.Len() != 0
	default:
		return true
	}
}

// Len implements the `len` builtin's dispatch. ok is false for kinds len
// does not support (matching the original prototype's TUPLE/LIST/MAP and
// this port's SET extension — see SPEC_FULL.md's supplemented-features
// note; STR is deliberately excluded, exactly as in the original).
func Len(v Value) (n int, ok bool) {
	switch vv := v.(type) {
	case *Tuple:
		return len(vv.Items), true
	case *List:
		return len(vv.Items), true
	case *Map:
		return vv.Len(), true
	case *Set:
		return vv.Len(), true
	default:
		return 0, false
	}
}
