package ember

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// RegisterBuiltins installs the built-ins table (§6): print, len, abs,
// range, __build_class__, __repl_print__.
func RegisterBuiltins(it *Interpreter) {
	reg := func(name string, v Value) { it.Builtins.SetQSTR(Intern(name), v) }

	reg("print", &FunVar{MinArity: 0, Fn: func(args []Value) (Value, error) {
		var b strings.Builder
		Print(&b, args)
		emit(b.String())
		return None, nil
	}})

	reg("len", &Fun1{Fn: func(v Value) (Value, error) {
		n, ok := Len(v)
		if !ok {
			return nil, newTypeError("object of type '%s' has no len()", NewStr(v.Kind().String()))
		}
		return SmallInt(n), nil
	}})

	reg("abs", &Fun1{Fn: builtinAbs})

	reg("range", &FunVar{MinArity: 1, Fn: builtinRange})

	reg("__build_class__", &FunVar{MinArity: 2, Fn: func(args []Value) (Value, error) {
		name, ok := args[1].(*Str)
		if !ok {
			return nil, newTypeError("__build_class__ name must be a str")
		}
		return it.BuildClass(args[0], name.GoString())
	}})

	reg("__repl_print__", &Fun1{Fn: func(v Value) (Value, error) {
		var b strings.Builder
		ReplPrint(&b, v)
		emit(b.String())
		return None, nil
	}})
}

// emit is the host output sink. A freestanding core defaults to stdout, the
// same way the teacher's pkg/cli writes directly via fmt.Print; tests and
// embedders redirect it via SetOutput.
var emit = func(s string) { fmt.Print(s) }

// SetOutput redirects builtin output (print, __repl_print__) to sink.
func SetOutput(sink func(string)) { emit = sink }

func builtinAbs(v Value) (Value, error) {
	switch vv := v.(type) {
	case SmallInt:
		if vv < 0 {
			return -vv, nil
		}
		return vv, nil
	case *Float:
		if vv.Value < 0 {
			return NewFloat(-vv.Value), nil
		}
		return vv, nil
	case *Complex:
		// The original prototype never implements abs() for complex values
		// at all; magnitude is the direct, narrow extension.
		return NewFloat(math.Hypot(vv.Real, vv.Imag)), nil
	default:
		return nil, newTypeError("bad operand type for abs(): '%s'", NewStr(v.Kind().String()))
	}
}

func builtinRange(args []Value) (Value, error) {
	ints := make([]int64, len(args))
	for i, a := range args {
		si, ok := a.(SmallInt)
		if !ok {
			return nil, newTypeError("range() arguments must be int")
		}
		ints[i] = int64(si)
	}
	switch len(ints) {
	case 1:
		return NewRange(0, ints[0], 1), nil
	case 2:
		return NewRange(ints[0], ints[1], 1), nil
	case 3:
		if ints[2] == 0 {
			return nil, newTypeError("range() arg 3 must not be zero")
		}
		return NewRange(ints[0], ints[1], ints[2]), nil
	default:
		return nil, newTypeError("range() expected 1 to 3 arguments, got %s", SmallInt(len(ints)))
	}
}

// str.join / str.format / list.append, wired into load_method (§4.6).
// call_method_n prepends self ahead of the remaining args before calling,
// the same convention BoundMeth uses for OBJ instance methods.
var builtinStrJoin = &Fun2{Fn: func(self, iterable Value) (Value, error) {
	sep, ok := self.(*Str)
	if !ok {
		return nil, newTypeError("join() requires a str receiver")
	}
	parts, err := valuesOf(iterable)
	if err != nil {
		return nil, err
	}
	s, err := Join(sep.GoString(), parts)
	if err != nil {
		return nil, err
	}
	return NewStr(s), nil
}}

var builtinStrFormat = &FunVar{MinArity: 1, Fn: func(args []Value) (Value, error) {
	template, ok := args[0].(*Str)
	if !ok {
		return nil, newTypeError("format() requires a str receiver")
	}
	s, err := Format(template.GoString(), args[1:])
	if err != nil {
		return nil, err
	}
	return NewStr(s), nil
}}

// valuesOf extracts the element slice from a Tuple or List, the only two
// iterables join() accepts without materializing through the generic
// iterator protocol (str.join is always called with a literal sequence).
func valuesOf(v Value) ([]Value, error) {
	switch vv := v.(type) {
	case *Tuple:
		return vv.Items, nil
	case *List:
		return vv.Items, nil
	default:
		return nil, newTypeError("join() argument must be a list or tuple, not '%s'", NewStr(v.Kind().String()))
	}
}

var builtinListAppend = &Fun2{Fn: func(self, v Value) (Value, error) {
	l, ok := self.(*List)
	if !ok {
		return nil, newTypeError("append() requires a list receiver")
	}
	l.Append(v)
	return None, nil
}}

// LoadConstDec implements `load_const_dec` (§6): parses
// <intg>[.<frac>][(e|E)[+|-]<exp>][j|J]. An unknown trailing character is a
// SyntaxError; a j/J suffix yields a complex with real=0.
func LoadConstDec(lit string) (Value, error) {
	s := lit
	imag := false
	if strings.HasSuffix(s, "j") || strings.HasSuffix(s, "J") {
		imag = true
		s = s[:len(s)-1]
	}
	isFloat := strings.ContainsAny(s, ".eE")
	if isFloat || imag {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, newSyntaxError("invalid numeric literal: %s", NewStr(lit))
		}
		if imag {
			return NewComplex(0, f), nil
		}
		return NewFloat(f), nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, newSyntaxError("invalid numeric literal: %s", NewStr(lit))
	}
	return SmallInt(n), nil
}
