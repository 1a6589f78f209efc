package ember

// UnaryOp identifiers (§4.2).
type UnaryOp int

const (
	UnaryNot UnaryOp = iota
	UnaryPos
	UnaryNeg
	UnaryInvert
)

// UnaryOpDispatch implements §4.2's unary dispatch: small-int and float
// cases are explicit, `~` on float fails with TypeError, `not` on any
// truthy value returns the boolean singleton.
func UnaryOpDispatch(op UnaryOp, v Value) (Value, error) {
	if op == UnaryNot {
		return BoolValue(!Truthy(v)), nil
	}
	switch vv := v.(type) {
	case SmallInt:
		switch op {
		case UnaryPos:
			return vv, nil
		case UnaryNeg:
			return -vv, nil
		case UnaryInvert:
			return ^vv, nil
		}
	case *Float:
		switch op {
		case UnaryPos:
			return vv, nil
		case UnaryNeg:
			return NewFloat(-vv.Value), nil
		case UnaryInvert:
			return nil, newTypeError("bad operand type for unary ~: 'float'")
		}
	}
	return nil, newTypeError("bad operand type for unary op: '%s'", NewStr(v.Kind().String()))
}

// BinaryOp identifiers (§4.2). The INPLACE_* variants behave identically to
// their pure counterparts — rebinding is the caller's responsibility.
type BinaryOp int

const (
	BinarySubscr BinaryOp = iota
	BinaryOr
	BinaryXor
	BinaryAnd
	BinaryLshift
	BinaryRshift
	BinaryAdd
	BinarySubtract
	BinaryMultiply
	BinaryFloorDivide
	BinaryTrueDivide
	BinaryModulo
	BinaryPower
	BinaryInplaceOr
	BinaryInplaceXor
	BinaryInplaceAnd
	BinaryInplaceLshift
	BinaryInplaceRshift
	BinaryInplaceAdd
	BinaryInplaceSubtract
	BinaryInplaceMultiply
	BinaryInplaceFloorDivide
	BinaryInplaceTrueDivide
	BinaryInplaceModulo
	BinaryInplacePower
)

func isAdd(op BinaryOp) bool { return op == BinaryAdd || op == BinaryInplaceAdd }

// BinaryOpDispatch implements §4.2's binary dispatch order: SUBSCR first,
// then both-small-int, then either-complex, then either-float, then
// both-string (+ only), else TypeError.
func (it *Interpreter) BinaryOpDispatch(op BinaryOp, lhs, rhs Value) (Value, error) {
	if op == BinarySubscr {
		return it.subscrLoad(lhs, rhs)
	}

	if l, lok := lhs.(SmallInt); lok {
		if r, rok := rhs.(SmallInt); rok {
			return smallIntBinOp(op, l, r)
		}
	}

	if _, lc := lhs.(*Complex); lc {
		return complexBinOp(op, lhs, rhs)
	}
	if _, rc := rhs.(*Complex); rc {
		return complexBinOp(op, lhs, rhs)
	}

	if _, lf := lhs.(*Float); lf {
		return floatBinOp(op, lhs, rhs)
	}
	if _, rf := rhs.(*Float); rf {
		return floatBinOp(op, lhs, rhs)
	}

	if ls, lok := lhs.(*Str); lok {
		if rs, rok := rhs.(*Str); rok && isAdd(op) {
			return NewStr(ls.GoString() + rs.GoString()), nil
		}
	}

	return nil, newTypeError("unsupported operand type(s) for binary op: '%s' and '%s'",
		NewStr(lhs.Kind().String()), NewStr(rhs.Kind().String()))
}

func smallIntBinOp(op BinaryOp, l, r SmallInt) (Value, error) {
	switch op {
	case BinaryOr, BinaryInplaceOr:
		return l | r, nil
	case BinaryXor, BinaryInplaceXor:
		return l ^ r, nil
	case BinaryAnd, BinaryInplaceAnd:
		return l & r, nil
	case BinaryLshift, BinaryInplaceLshift:
		return l << uint(r), nil
	case BinaryRshift, BinaryInplaceRshift:
		return l >> uint(r), nil
	case BinaryAdd, BinaryInplaceAdd:
		return l + r, nil
	case BinarySubtract, BinaryInplaceSubtract:
		return l - r, nil
	case BinaryMultiply, BinaryInplaceMultiply:
		return l * r, nil
	case BinaryFloorDivide, BinaryInplaceFloorDivide:
		if r == 0 {
			return nil, newZeroDivisionError("integer division by zero")
		}
		return floorDiv(l, r), nil
	case BinaryModulo, BinaryInplaceModulo:
		if r == 0 {
			return nil, newZeroDivisionError("integer modulo by zero")
		}
		return floorMod(l, r), nil
	case BinaryTrueDivide, BinaryInplaceTrueDivide:
		if r == 0 {
			return nil, newZeroDivisionError("division by zero")
		}
		// true-div promotes to float, per spec.md §4.2.
		return NewFloat(float64(l) / float64(r)), nil
	case BinaryPower, BinaryInplacePower:
		// Power is provided only for exponent 2 (spec.md §4.2, an
		// explicit TODO for other exponents).
		if r == 2 {
			return l * l, nil
		}
		return nil, newTypeError("pow() with exponent other than 2 is not supported")
	default:
		return nil, newTypeError("unsupported operator for int")
	}
}

// floorDiv implements C-semantics floor division (truncation toward zero),
// matching the original prototype's raw C `/` on two-complement ints.
func floorDiv(l, r SmallInt) SmallInt { return l / r }

// floorMod matches C's `%` (sign follows the dividend), the companion of
// floorDiv.
func floorMod(l, r SmallInt) SmallInt { return l % r }

func complexBinOp(op BinaryOp, lhs, rhs Value) (Value, error) {
	lr, li, ok1 := asComplex(lhs)
	rr, ri, ok2 := asComplex(rhs)
	if !ok1 || !ok2 {
		return nil, newTypeError("unsupported operand type(s) for complex op")
	}
	switch op {
	case BinaryAdd, BinaryInplaceAdd:
		return NewComplex(lr+rr, li+ri), nil
	case BinarySubtract, BinaryInplaceSubtract:
		return NewComplex(lr-rr, li-ri), nil
	case BinaryMultiply, BinaryInplaceMultiply:
		return NewComplex(lr*rr-li*ri, lr*ri+li*rr), nil
	case BinaryTrueDivide, BinaryInplaceTrueDivide:
		// Unimplemented per spec.md §4.2.
		return nil, newTypeError("complex division is not supported")
	default:
		return nil, newTypeError("unsupported operator for complex")
	}
}

func floatBinOp(op BinaryOp, lhs, rhs Value) (Value, error) {
	l, ok1 := asFloat(lhs)
	r, ok2 := asFloat(rhs)
	if !ok1 || !ok2 {
		return nil, newTypeError("unsupported operand type(s) for float op")
	}
	switch op {
	case BinaryAdd, BinaryInplaceAdd:
		return NewFloat(l + r), nil
	case BinarySubtract, BinaryInplaceSubtract:
		return NewFloat(l - r), nil
	case BinaryMultiply, BinaryInplaceMultiply:
		return NewFloat(l * r), nil
	case BinaryTrueDivide, BinaryInplaceTrueDivide:
		if r == 0 {
			return nil, newZeroDivisionError("float division by zero")
		}
		return NewFloat(l / r), nil
	default:
		return nil, newTypeError("unsupported operator for float")
	}
}

// subscrLoad implements the SUBSCR half of binary dispatch: tuple/list
// indexing via §4.3 normalization, map indexing via lookup with KeyError on
// miss.
func (it *Interpreter) subscrLoad(lhs, rhs Value) (Value, error) {
	switch v := lhs.(type) {
	case *Tuple:
		i, err := NormalizeIndex(rhs, len(v.Items))
		if err != nil {
			return nil, err
		}
		return v.Items[i], nil
	case *List:
		i, err := NormalizeIndex(rhs, len(v.Items))
		if err != nil {
			return nil, err
		}
		return v.Items[i], nil
	case *Map:
		val, ok, err := v.GetObj(rhs)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, newKeyError("%s", rhs)
		}
		return val, nil
	default:
		return nil, newTypeError("'%s' object is not subscriptable", NewStr(lhs.Kind().String()))
	}
}

// CompareOp identifiers (§4.2).
type CompareOp int

const (
	CompareEq CompareOp = iota
	CompareNe
	CompareLt
	CompareLe
	CompareGt
	CompareGe
)

// CompareOpDispatch implements §4.2's compare dispatch: ==/!= go through
// §3.1 equality; ordered comparisons are defined for two small-ints or any
// float-coercible pair.
func CompareOpDispatch(op CompareOp, lhs, rhs Value) (Value, error) {
	switch op {
	case CompareEq:
		return BoolValue(Equal(lhs, rhs)), nil
	case CompareNe:
		return BoolValue(!Equal(lhs, rhs)), nil
	}

	if l, lok := lhs.(SmallInt); lok {
		if r, rok := rhs.(SmallInt); rok {
			return BoolValue(orderedInt(op, int64(l), int64(r))), nil
		}
	}
	lf, lok := asFloat(lhs)
	rf, rok := asFloat(rhs)
	if lok && rok {
		return BoolValue(orderedFloat(op, lf, rf)), nil
	}
	return nil, newTypeError("comparison '%s' not supported between %s",
		NewStr(compareSym(op)), NewStr(lhs.Kind().String()+" and "+rhs.Kind().String()))
}

func compareSym(op CompareOp) string {
	switch op {
	case CompareLt:
		return "<"
	case CompareLe:
		return "<="
	case CompareGt:
		return ">"
	case CompareGe:
		return ">="
	default:
		return "?"
	}
}

func orderedInt(op CompareOp, l, r int64) bool {
	switch op {
	case CompareLt:
		return l < r
	case CompareLe:
		return l <= r
	case CompareGt:
		return l > r
	case CompareGe:
		return l >= r
	default:
		return false
	}
}

func orderedFloat(op CompareOp, l, r float64) bool {
	switch op {
	case CompareLt:
		return l < r
	case CompareLe:
		return l <= r
	case CompareGt:
		return l > r
	case CompareGe:
		return l >= r
	default:
		return false
	}
}
