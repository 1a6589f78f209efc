package ember

import "testing"

func TestUnaryOpDispatch(t *testing.T) {
	cases := []struct {
		op   UnaryOp
		in   Value
		want Value
	}{
		{UnaryNeg, SmallInt(5), SmallInt(-5)},
		{UnaryPos, SmallInt(5), SmallInt(5)},
		{UnaryInvert, SmallInt(0), SmallInt(-1)},
		{UnaryNot, SmallInt(0), True},
		{UnaryNot, SmallInt(1), False},
		{UnaryNeg, NewFloat(2.5), NewFloat(-2.5)},
	}
	for _, c := range cases {
		got, err := UnaryOpDispatch(c.op, c.in)
		if err != nil {
			t.Fatalf("UnaryOpDispatch(%v, %s): %v", c.op, Repr(c.in), err)
		}
		if Repr(got) != Repr(c.want) {
			t.Errorf("UnaryOpDispatch(%v, %s) = %s, want %s", c.op, Repr(c.in), Repr(got), Repr(c.want))
		}
	}
}

func TestUnaryInvertRejectsFloat(t *testing.T) {
	if _, err := UnaryOpDispatch(UnaryInvert, NewFloat(1.0)); err == nil {
		t.Fatalf("expected TypeError for ~1.0")
	}
}

func TestBinaryOpDispatchSmallIntOrder(t *testing.T) {
	it := &Interpreter{}
	got, err := it.BinaryOpDispatch(BinaryAdd, SmallInt(2), SmallInt(3))
	if err != nil || got.(SmallInt) != 5 {
		t.Fatalf("2+3 = %v, %v; want 5", got, err)
	}
}

func TestBinaryOpDispatchFloatPromotion(t *testing.T) {
	// An int mixed with a float must promote through the float path even
	// though the left operand is a SmallInt (spec.md §4.2 dispatch order).
	it := &Interpreter{}
	got, err := it.BinaryOpDispatch(BinaryAdd, SmallInt(2), NewFloat(0.5))
	if err != nil {
		t.Fatalf("2+0.5: %v", err)
	}
	f, ok := got.(*Float)
	if !ok || f.Value != 2.5 {
		t.Fatalf("2+0.5 = %v, want 2.5", got)
	}
}

func TestBinaryOpDispatchComplexTakesPriorityOverFloat(t *testing.T) {
	it := &Interpreter{}
	got, err := it.BinaryOpDispatch(BinaryAdd, NewComplex(1, 2), NewFloat(1))
	if err != nil {
		t.Fatalf("(1+2j)+1.0: %v", err)
	}
	c, ok := got.(*Complex)
	if !ok || c.Real != 2 || c.Imag != 2 {
		t.Fatalf("(1+2j)+1.0 = %v, want (2+2j)", got)
	}
}

func TestBinaryOpDispatchStringConcatOnlyForAdd(t *testing.T) {
	it := &Interpreter{}
	got, err := it.BinaryOpDispatch(BinaryAdd, NewStr("a"), NewStr("b"))
	if err != nil || got.(*Str).GoString() != "ab" {
		t.Fatalf("'a'+'b' = %v, %v; want 'ab'", got, err)
	}
	if _, err := it.BinaryOpDispatch(BinarySubtract, NewStr("a"), NewStr("b")); err == nil {
		t.Fatalf("expected TypeError for 'a'-'b'")
	}
}

func TestBinaryOpDispatchTrueDividePromotesToFloat(t *testing.T) {
	it := &Interpreter{}
	got, err := it.BinaryOpDispatch(BinaryTrueDivide, SmallInt(7), SmallInt(2))
	if err != nil {
		t.Fatalf("7/2: %v", err)
	}
	f, ok := got.(*Float)
	if !ok || f.Value != 3.5 {
		t.Fatalf("7/2 = %v, want 3.5", got)
	}
}

func TestBinaryOpDispatchDivisionByZero(t *testing.T) {
	it := &Interpreter{}
	if _, err := it.BinaryOpDispatch(BinaryTrueDivide, SmallInt(1), SmallInt(0)); err == nil {
		t.Fatalf("expected ZeroDivisionError for 1/0")
	}
	if _, err := it.BinaryOpDispatch(BinaryFloorDivide, SmallInt(1), SmallInt(0)); err == nil {
		t.Fatalf("expected ZeroDivisionError for 1//0")
	}
	if _, err := it.BinaryOpDispatch(BinaryModulo, SmallInt(1), SmallInt(0)); err == nil {
		t.Fatalf("expected ZeroDivisionError for 1%%0")
	}
}

func TestBinaryOpDispatchSubscr(t *testing.T) {
	it := &Interpreter{}
	l := NewList([]Value{SmallInt(10), SmallInt(20), SmallInt(30)})
	got, err := it.BinaryOpDispatch(BinarySubscr, l, SmallInt(1))
	if err != nil || got.(SmallInt) != 20 {
		t.Fatalf("l[1] = %v, %v; want 20", got, err)
	}

	m := NewObjMap()
	if err := m.SetObj(NewStr("k"), SmallInt(99)); err != nil {
		t.Fatalf("SetObj: %v", err)
	}
	got, err = it.BinaryOpDispatch(BinarySubscr, m, NewStr("k"))
	if err != nil || got.(SmallInt) != 99 {
		t.Fatalf("m['k'] = %v, %v; want 99", got, err)
	}

	if _, err := it.BinaryOpDispatch(BinarySubscr, m, NewStr("absent")); err == nil {
		t.Fatalf("expected KeyError for missing map key")
	}
}

func TestCompareOpDispatchEquality(t *testing.T) {
	// Equal(True, 1) holds per spec.md §3.1; == must agree.
	got, err := CompareOpDispatch(CompareEq, True, SmallInt(1))
	if err != nil || got != True {
		t.Fatalf("True == 1 => %v, %v; want True", got, err)
	}
	got, err = CompareOpDispatch(CompareNe, NewStr("a"), NewStr("b"))
	if err != nil || got != True {
		t.Fatalf("'a' != 'b' => %v, %v; want True", got, err)
	}
}

func TestCompareOpDispatchOrdering(t *testing.T) {
	cases := []struct {
		op   CompareOp
		l, r Value
		want Value
	}{
		{CompareLt, SmallInt(1), SmallInt(2), True},
		{CompareGe, SmallInt(2), SmallInt(2), True},
		{CompareLt, NewFloat(1.5), SmallInt(2), True},
		{CompareGt, SmallInt(3), NewFloat(2.5), True},
	}
	for _, c := range cases {
		got, err := CompareOpDispatch(c.op, c.l, c.r)
		if err != nil {
			t.Fatalf("CompareOpDispatch(%v, %s, %s): %v", c.op, Repr(c.l), Repr(c.r), err)
		}
		if got != c.want {
			t.Errorf("CompareOpDispatch(%v, %s, %s) = %v, want %v", c.op, Repr(c.l), Repr(c.r), got, c.want)
		}
	}
}

func TestCompareOpDispatchRejectsUnorderedKinds(t *testing.T) {
	if _, err := CompareOpDispatch(CompareLt, NewStr("a"), SmallInt(1)); err == nil {
		t.Fatalf("expected TypeError comparing 'a' < 1")
	}
}
