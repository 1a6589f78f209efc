package ember

// ExportTable is the exported dispatch table spec.md §6 calls "a fixed-order
// vector of function pointers": the complete set of operations a bytecode
// emitter binds against. It is expressed as a struct of fields rather than a
// slice so the emitter can bind by name at compile time, with ExportIndex
// below giving the same fixed order as an integer enum for parity with the
// spec's "indices must match a shared enum" ABI requirement.
type ExportTable struct {
	LoadConstDec       func(lit string) (Value, error)
	LoadConstStr       func(s string) Value
	LoadName           func(name string) (Value, error)
	LoadGlobal         func(name string) (Value, error)
	LoadBuildClass     func(body Value, name string) (Value, error)
	LoadAttr           func(base Value, name string) (Value, error)
	LoadMethod         func(base Value, name string) (MethodLookup, error)
	StoreName          func(name string, v Value)
	StoreAttr          func(base Value, name string, v Value) error
	StoreSubscr        func(base, index, val Value) error
	IsTrue             func(v Value) bool
	UnaryOp            func(op UnaryOp, v Value) (Value, error)
	BuildTuple         func(items []Value) *Tuple
	BuildList          func(items []Value) *List
	ListAppend         func(l *List, v Value)
	BuildMap           func(mode MapMode) *Map
	StoreMap           func(m *Map, key, val Value) error
	BuildSet           func() *Set
	StoreSet           func(s *Set, key Value) error
	MakeFunctionFromID func(id CodeID) Value
	CallFunctionN      func(fn Value, argv Args) (Value, error)
	CallMethodN        func(lookup MethodLookup, argv Args) (Value, error)
	BinaryOp           func(op BinaryOp, lhs, rhs Value) (Value, error)
	CompareOp          func(op CompareOp, lhs, rhs Value) (Value, error)
	GetIter            func(v Value) (Value, error)
	IterNext           func(v Value) (Value, error)
}

// ExportIndex is the ABI-mandated integer position of each ExportTable
// field; an emitter that binds by index instead of by name uses these.
type ExportIndex int

const (
	ExportLoadConstDec ExportIndex = iota
	ExportLoadConstStr
	ExportLoadName
	ExportLoadGlobal
	ExportLoadBuildClass
	ExportLoadAttr
	ExportLoadMethod
	ExportStoreName
	ExportStoreAttr
	ExportStoreSubscr
	ExportIsTrue
	ExportUnaryOp
	ExportBuildTuple
	ExportBuildList
	ExportListAppend
	ExportBuildMap
	ExportStoreMap
	ExportBuildSet
	ExportStoreSet
	ExportMakeFunctionFromID
	ExportCallFunctionN
	ExportCallMethodN
	ExportBinaryOp
	ExportCompareOp
	ExportGetIter
	ExportIterNext
	exportCount
)

// NewExportTable binds every operation against it, the interpreter instance
// holding the locals/globals/builtins/code-registry/engine state those
// operations close over.
func (it *Interpreter) NewExportTable() *ExportTable {
	return &ExportTable{
		LoadConstDec:       LoadConstDec,
		LoadConstStr:       func(s string) Value { return NewStr(s) },
		LoadName:           it.LoadName,
		LoadGlobal:         it.LoadGlobal,
		LoadBuildClass:     func(body Value, name string) (Value, error) { return it.BuildClass(body, name) },
		LoadAttr:           it.LoadAttr,
		LoadMethod:         it.LoadMethod,
		StoreName:          it.StoreName,
		StoreAttr:          it.StoreAttr,
		StoreSubscr:        it.StoreSubscr,
		IsTrue:             Truthy,
		UnaryOp:            UnaryOpDispatch,
		BuildTuple:         func(items []Value) *Tuple { return NewTuple(items) },
		BuildList:          func(items []Value) *List { return NewList(items) },
		ListAppend:         func(l *List, v Value) { l.Append(v) },
		BuildMap:           buildMap,
		StoreMap:           func(m *Map, key, val Value) error { return m.SetObj(key, val) },
		BuildSet:           func() *Set { return NewSet() },
		StoreSet:           func(s *Set, key Value) error { return s.Add(key) },
		MakeFunctionFromID: it.Code.MakeFunctionFromID,
		CallFunctionN:      it.Call,
		CallMethodN:        it.CallMethodN,
		BinaryOp:           it.BinaryOpDispatch,
		CompareOp:          CompareOpDispatch,
		GetIter:            GetIter,
		IterNext:           it.IterNext,
	}
}

func buildMap(mode MapMode) *Map {
	if mode == MapModeQSTR {
		return NewQSTRMap()
	}
	return NewObjMap()
}

// CallMethodN implements call_method_n: prepend self ahead of the call's
// remaining arguments (the same self-prepending convention BoundMeth uses
// for OBJ instance methods, spec.md §4.4) when load_method resolved one,
// then dispatch through the ordinary call protocol.
func (it *Interpreter) CallMethodN(lookup MethodLookup, argv Args) (Value, error) {
	if lookup.Self != nil {
		argv = argv.Prepend(lookup.Self)
	}
	return it.Call(lookup.Callable, argv)
}
