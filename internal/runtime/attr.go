package ember

// qAppend and qNext etc. are the interned method names §4.6 dispatches on
// by name before falling through to the general namespace lookups.
var (
	qAppend = Intern("append")
	qJoin   = Intern("join")
	qFormat = Intern("format")
	qNext   = Intern("__next__")
)

// LoadAttr implements §4.6's load_attr.
func (it *Interpreter) LoadAttr(base Value, name string) (Value, error) {
	h := Intern(name)
	switch b := base.(type) {
	case *List:
		if h == qAppend {
			return boundListAppend(b), nil
		}
	case *Class:
		v, ok := b.Namespace.GetQSTR(h)
		if !ok {
			return nil, newAttributeError("type object has no attribute '%s'", NewStr(name))
		}
		return v, nil
	case *Obj:
		if v, ok := b.Members.GetQSTR(h); ok {
			return v, nil
		}
		v, ok := b.Class.Namespace.GetQSTR(h)
		if !ok {
			return nil, newAttributeError("'%s' object has no attribute '%s'",
				NewStr(classQualname(b.Class)), NewStr(name))
		}
		if isCallable(v) {
			return &BoundMeth{Callable: v, Self: b}, nil
		}
		return v, nil
	}
	return nil, newAttributeError("'%s' object has no attribute '%s'", NewStr(base.Kind().String()), NewStr(name))
}

// MethodLookup is the (callable, self) pair load_method writes, so the VM
// can use a single call shape regardless of where the method came from
// (§4.6).
type MethodLookup struct {
	Callable Value
	Self     Value // nil ("null") when the callable needs no self
}

// LoadMethod implements §4.6's load_method.
func (it *Interpreter) LoadMethod(base Value, name string) (MethodLookup, error) {
	h := Intern(name)
	switch b := base.(type) {
	case *Str:
		switch h {
		case qJoin:
			return MethodLookup{Callable: builtinStrJoin, Self: b}, nil
		case qFormat:
			return MethodLookup{Callable: builtinStrFormat, Self: b}, nil
		}
	case *GenInstance:
		if h == qNext {
			return MethodLookup{Callable: it.genNextBuiltin(), Self: b}, nil
		}
	case *List:
		if h == qAppend {
			return MethodLookup{Callable: builtinListAppend, Self: b}, nil
		}
	case *Obj:
		if v, ok := b.Members.GetQSTR(h); ok {
			return MethodLookup{Callable: v, Self: nil}, nil
		}
		v, ok := b.Class.Namespace.GetQSTR(h)
		if !ok {
			return MethodLookup{}, newAttributeError("'%s' object has no attribute '%s'",
				NewStr(classQualname(b.Class)), NewStr(name))
		}
		return MethodLookup{Callable: v, Self: b}, nil
	case *User:
		for _, m := range b.Info.Methods {
			if m.Name == name {
				return MethodLookup{Callable: wrapUserMethod(b, m), Self: nil}, nil
			}
		}
	}
	v, err := it.LoadAttr(base, name)
	if err != nil {
		return MethodLookup{}, err
	}
	return MethodLookup{Callable: v, Self: nil}, nil
}

// StoreAttr implements §4.6's store_attr.
func (it *Interpreter) StoreAttr(base Value, name string, val Value) error {
	h := Intern(name)
	switch b := base.(type) {
	case *Class:
		b.Namespace.SetQSTR(h, val)
		return nil
	case *Obj:
		if _, ok := b.Class.Namespace.GetQSTR(h); ok {
			b.Class.Namespace.SetQSTR(h, val)
			return nil
		}
		b.Members.SetQSTR(h, val)
		return nil
	default:
		return newAttributeError("'%s' object has no attribute '%s'", NewStr(base.Kind().String()), NewStr(name))
	}
}

// StoreSubscr implements store_subscr: list (index normalization) and map
// (insert-or-update).
func (it *Interpreter) StoreSubscr(base, index, val Value) error {
	switch b := base.(type) {
	case *List:
		i, err := NormalizeIndex(index, len(b.Items))
		if err != nil {
			return err
		}
		b.Items[i] = val
		return nil
	case *Map:
		return b.SetObj(index, val)
	default:
		return newTypeError("'%s' object does not support item assignment", NewStr(base.Kind().String()))
	}
}

func isCallable(v Value) bool {
	switch v.(type) {
	case *Fun0, *Fun1, *Fun2, *FunN, *FunVar, *FunBC, *FunASM, *GenWrap, *BoundMeth, *Class:
		return true
	default:
		return false
	}
}

func boundListAppend(l *List) *BoundMeth {
	return &BoundMeth{Callable: builtinListAppend, Self: l}
}

// wrapUserMethod closes over the receiver so load_method can hand back
// Self: nil — per §4.6, USER dispatch "surfaces (callable, self) ...
// directly", but unlike OBJ methods (plain namespace-stored callables that
// need the VM to prepend self), a USER method's self is already bound into
// the wrapper, so the VM's single call shape needs nothing extra. Arity
// counts self: a 1-arg host method (self only) becomes a 0-arg script
// callable; a 2-arg host method (self + one value) becomes a 1-arg one.
func wrapUserMethod(self *User, m UserMethod) Value {
	switch m.Arity {
	case UserMethod1Arg:
		return &Fun0{Fn: func() (Value, error) { return m.Fn1(self) }}
	case UserMethod2Arg:
		return &Fun1{Fn: func(arg Value) (Value, error) { return m.Fn2(self, arg) }}
	default:
		return &Fun0{Fn: func() (Value, error) {
			return nil, newTypeError("malformed user method arity")
		}}
	}
}
