package ember

// Float is the FLOAT kind: a machine float.
type Float struct {
	Value float64
}

func (*Float) Kind() Kind { return KindFloat }

// NewFloat boxes f.
func NewFloat(f float64) *Float { return &Float{Value: f} }

// Complex is the COMPLEX kind: two machine floats (real, imag).
type Complex struct {
	Real, Imag float64
}

func (*Complex) Kind() Kind { return KindComplex }

// NewComplex boxes (re, im).
func NewComplex(re, im float64) *Complex { return &Complex{Real: re, Imag: im} }

// asFloat coerces a small-int or float Value to float64. ok is false for any
// other kind.
func asFloat(v Value) (f float64, ok bool) {
	switch vv := v.(type) {
	case SmallInt:
		return float64(vv), true
	case *Float:
		return vv.Value, true
	case *Const:
		if vv == True {
			return 1, true
		}
		if vv == False {
			return 0, true
		}
	}
	return 0, false
}

// asComplex coerces a small-int, float, or complex Value to (real, imag).
func asComplex(v Value) (re, im float64, ok bool) {
	if c, isC := v.(*Complex); isC {
		return c.Real, c.Imag, true
	}
	f, isF := asFloat(v)
	return f, 0, isF
}
