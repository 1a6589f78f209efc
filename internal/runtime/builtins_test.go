package ember

import "testing"

func callBuiltin(t *testing.T, it *Interpreter, name string, argv Args) Value {
	t.Helper()
	fn, ok := it.Builtins.GetQSTR(Intern(name))
	if !ok {
		t.Fatalf("builtin %q not registered", name)
	}
	v, err := it.Call(fn, argv)
	if err != nil {
		t.Fatalf("%s(...): %v", name, err)
	}
	return v
}

func TestBuiltinLen(t *testing.T) {
	it := New(nil)
	l := NewList([]Value{SmallInt(1), SmallInt(2)})
	v := callBuiltin(t, it, "len", Args{l})
	if v.(SmallInt) != 2 {
		t.Fatalf("len(list) = %v, want 2", v)
	}
}

func TestBuiltinLenRejectsUnsized(t *testing.T) {
	it := New(nil)
	fn, _ := it.Builtins.GetQSTR(Intern("len"))
	if _, err := it.Call(fn, Args{SmallInt(1)}); err == nil {
		t.Fatalf("expected TypeError for len(1)")
	}
}

func TestBuiltinAbs(t *testing.T) {
	it := New(nil)
	cases := []struct {
		in   Value
		want Value
	}{
		{SmallInt(-5), SmallInt(5)},
		{SmallInt(5), SmallInt(5)},
		{NewFloat(-2.5), NewFloat(2.5)},
	}
	for _, c := range cases {
		got := callBuiltin(t, it, "abs", Args{c.in})
		if Repr(got) != Repr(c.want) {
			t.Errorf("abs(%s) = %s, want %s", Repr(c.in), Repr(got), Repr(c.want))
		}
	}
}

func TestBuiltinAbsComplexMagnitude(t *testing.T) {
	it := New(nil)
	got := callBuiltin(t, it, "abs", Args{NewComplex(3, 4)})
	f, ok := got.(*Float)
	if !ok || f.Value != 5 {
		t.Fatalf("abs(3+4j) = %v, want 5.0", got)
	}
}

func TestBuiltinRangeForms(t *testing.T) {
	it := New(nil)

	r := callBuiltin(t, it, "range", Args{SmallInt(3)}).(*Range)
	if r.Start != 0 || r.Stop != 3 || r.Step != 1 {
		t.Fatalf("range(3) = %+v", r)
	}

	// argv is reverse order; range(1, 5) means logical args (1, 5).
	r = callBuiltin(t, it, "range", Args{SmallInt(5), SmallInt(1)}).(*Range)
	if r.Start != 1 || r.Stop != 5 || r.Step != 1 {
		t.Fatalf("range(1, 5) = %+v", r)
	}

	r = callBuiltin(t, it, "range", Args{SmallInt(2), SmallInt(10), SmallInt(0)}).(*Range)
	if r.Start != 0 || r.Stop != 10 || r.Step != 2 {
		t.Fatalf("range(0, 10, 2) = %+v", r)
	}
}

func TestBuiltinRangeRejectsZeroStep(t *testing.T) {
	it := New(nil)
	fn, _ := it.Builtins.GetQSTR(Intern("range"))
	_, err := it.Call(fn, Args{SmallInt(0), SmallInt(10), SmallInt(0)})
	if err == nil {
		t.Fatalf("expected TypeError for range() step=0")
	}
}

func TestStrJoinMethod(t *testing.T) {
	it := New(nil)
	sep := NewStr(", ")
	lookup, err := it.LoadMethod(sep, "join")
	if err != nil {
		t.Fatalf("LoadMethod(join): %v", err)
	}
	parts := NewTuple([]Value{NewStr("a"), NewStr("b"), NewStr("c")})
	v, err := it.CallMethodN(lookup, Args{parts})
	if err != nil {
		t.Fatalf("join(...): %v", err)
	}
	if s := v.(*Str).GoString(); s != "a, b, c" {
		t.Fatalf("join() = %q, want %q", s, "a, b, c")
	}
}

func TestStrFormatMethod(t *testing.T) {
	it := New(nil)
	tmpl := NewStr("hi {} {}")
	lookup, err := it.LoadMethod(tmpl, "format")
	if err != nil {
		t.Fatalf("LoadMethod(format): %v", err)
	}
	// call_method_n prepends self; CallMethodN does that for us.
	v, err := it.CallMethodN(lookup, Args{NewStr("x"), SmallInt(1)})
	if err != nil {
		t.Fatalf("format(...): %v", err)
	}
	if s := v.(*Str).GoString(); s != "hi 1 'x'" {
		t.Fatalf("format() = %q, want %q", s, "hi 1 'x'")
	}
}

func TestListAppendMethod(t *testing.T) {
	it := New(nil)
	l := NewList([]Value{SmallInt(1)})
	lookup, err := it.LoadMethod(l, "append")
	if err != nil {
		t.Fatalf("LoadMethod(append): %v", err)
	}
	if _, err := it.CallMethodN(lookup, Args{SmallInt(2)}); err != nil {
		t.Fatalf("append(2): %v", err)
	}
	if len(l.Items) != 2 || l.Items[1].(SmallInt) != 2 {
		t.Fatalf("list after append = %v", l.Items)
	}
}

func TestLoadConstDec(t *testing.T) {
	cases := []struct {
		lit  string
		repr string
	}{
		{"42", "42"},
		{"3.5", "3.5"},
		{"2j", "2j"},
	}
	for _, c := range cases {
		v, err := LoadConstDec(c.lit)
		if err != nil {
			t.Fatalf("LoadConstDec(%q): %v", c.lit, err)
		}
		if got := Repr(v); got != c.repr {
			t.Errorf("LoadConstDec(%q) repr = %q, want %q", c.lit, got, c.repr)
		}
	}
}

func TestLoadConstDecRejectsGarbage(t *testing.T) {
	if _, err := LoadConstDec("12x"); err == nil {
		t.Fatalf("expected SyntaxError for a malformed numeric literal")
	}
}
