package ember

import "fmt"

// Call implements the uniform call entry of spec.md §4.4: dispatch by
// callable kind, argv in reverse order.
func (it *Interpreter) Call(fn Value, argv Args) (Value, error) {
	switch f := fn.(type) {
	case *Fun0:
		if argv.Len() != 0 {
			return nil, arityError(0, argv.Len())
		}
		return f.Fn()
	case *Fun1:
		if argv.Len() != 1 {
			return nil, arityError(1, argv.Len())
		}
		return f.Fn(argv.At(0))
	case *Fun2:
		if argv.Len() != 2 {
			return nil, arityError(2, argv.Len())
		}
		// spec.md §4.4: "FUN_2 passes argv[1], argv[0]" — i.e. the two
		// logical arguments in order.
		return f.Fn(argv.At(0), argv.At(1))
	case *FunN:
		if argv.Len() != f.Arity {
			return nil, arityError(f.Arity, argv.Len())
		}
		return f.Fn(argv.Forward())
	case *FunVar:
		if argv.Len() < f.MinArity {
			return nil, arityError(f.MinArity, argv.Len())
		}
		return f.Fn(argv.Forward())
	case *FunBC:
		if argv.Len() != f.Arity {
			return nil, arityError(f.Arity, argv.Len())
		}
		if it.Engine == nil {
			return nil, fmt.Errorf("ember: no bytecode engine configured")
		}
		return it.Engine.Execute(f.Code, argv, f.StateSize)
	case *FunASM:
		if argv.Len() != f.Arity {
			return nil, arityError(f.Arity, argv.Len())
		}
		if f.Arity > 3 {
			return nil, newTypeError("inline-asm calls support at most 3 arguments")
		}
		return it.callASM(f, argv)
	case *GenWrap:
		return it.instantiateGenerator(f, argv)
	case *BoundMeth:
		if argv.Len() >= 2 {
			return nil, newTypeError("bound methods with 2 or more arguments are not supported")
		}
		return it.Call(f.Callable, argv.Prepend(f.Self))
	case *Class:
		if argv.Len() != 0 {
			return nil, newTypeError("class instantiation with arguments is not supported")
		}
		return NewObj(f), nil
	default:
		return nil, newTypeError("'%s' object is not callable", NewStr(Repr(fn)))
	}
}

func arityError(expected, actual int) error {
	return newTypeError("wrong number of arguments: expected %s, got %s",
		SmallInt(expected), SmallInt(actual))
}

// instantiateGenerator builds the GEN_INSTANCE frame layout spec.md §4.4
// and §8 fix: a fresh state frame of size 1+StateSize, slot 0 holding the
// underlying callable, slots 1..n holding the arguments in forward order,
// ip set to the code entry, sp set to the top of the frame.
func (it *Interpreter) instantiateGenerator(w *GenWrap, argv Args) (Value, error) {
	if argv.Len() != w.Underlying.Arity {
		return nil, arityError(w.Underlying.Arity, argv.Len())
	}
	frame := make([]Value, 1+w.StateSize)
	frame[0] = w.Underlying
	fwd := argv.Forward()
	copy(frame[1:], fwd)
	return &GenInstance{
		State: frame,
		IP:    int(w.Underlying.Code),
		SP:    len(frame),
	}, nil
}

// callASM implements the FUN_ASM call convention: convert each boxed
// argument through the inline-asm boundary (§4.5), invoke the raw entry,
// and re-box the integer result as a small integer.
func (it *Interpreter) callASM(f *FunASM, argv Args) (Value, error) {
	conv := make([]int64, argv.Len())
	for i := 0; i < argv.Len(); i++ {
		conv[i] = ConvertObjForInlineAsm(argv.At(i))
	}
	word := f.Entry(conv...)
	return ConvertValFromInlineAsm(word), nil
}
