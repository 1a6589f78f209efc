package ember

// NormalizeIndex implements §4.3's tuple/list index normalization: the
// index must be a small-int (booleans count as 0/1 per §3.1), a negative
// index adds length, out-of-range is an IndexError, a non-integer index is
// a TypeError.
func NormalizeIndex(idx Value, length int) (int, error) {
	var i int64
	switch v := idx.(type) {
	case SmallInt:
		i = int64(v)
	case *Const:
		if v == True {
			i = 1
		} else if v == False {
			i = 0
		} else {
			return 0, newTypeError("indices must be integers, not %s", NewStr(idx.Kind().String()))
		}
	default:
		return 0, newTypeError("indices must be integers, not %s", NewStr(idx.Kind().String()))
	}
	if i < 0 {
		i += int64(length)
	}
	if i < 0 || i >= int64(length) {
		return 0, newIndexError("index out of range: requested %s, length %s",
			idx, SmallInt(length))
	}
	return int(i), nil
}
