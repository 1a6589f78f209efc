// Package ember is the object model and runtime core of the Ember
// interpreter: the tagged value representation, the associative container
// used for every namespace and user mapping, operator/call/attribute
// dispatch, and the iterator protocol. It is the contract every other layer
// (lexer, parser, bytecode emitter, bytecode VM, assemblers) is built
// against; this package never imports any of them.
package ember

// Kind is the closed set of value kinds spec.md §3.1 fixes. Every Value
// implementation reports exactly one Kind, and every switch over Kind in
// this package is exhaustive by construction — adding a kind here changes
// the ABI every other layer depends on, so the set is not meant to grow.
type Kind uint8

const (
	KindSmallInt Kind = iota
	KindConst
	KindStr
	KindFloat
	KindComplex
	KindException0
	KindExceptionN
	KindRange
	KindRangeIt
	KindFun0
	KindFun1
	KindFun2
	KindFunN
	KindFunVar
	KindFunBC
	KindFunASM
	KindGenWrap
	KindGenInstance
	KindBoundMeth
	KindTuple
	KindList
	KindTupleIt
	KindListIt
	KindSet
	KindMap
	KindClass
	KindObj
	KindUser
)

func (k Kind) String() string {
	switch k {
	case KindSmallInt:
		return "int"
	case KindConst:
		return "const"
	case KindStr:
		return "str"
	case KindFloat:
		return "float"
	case KindComplex:
		return "complex"
	case KindException0, KindExceptionN:
		return "exception"
	case KindRange:
		return "range"
	case KindRangeIt:
		return "range_iterator"
	case KindFun0, KindFun1, KindFun2, KindFunN, KindFunVar, KindFunBC, KindFunASM:
		return "function"
	case KindGenWrap:
		return "generator"
	case KindGenInstance:
		return "generator_instance"
	case KindBoundMeth:
		return "bound_method"
	case KindTuple:
		return "tuple"
	case KindList:
		return "list"
	case KindTupleIt, KindListIt:
		return "iterator"
	case KindSet:
		return "set"
	case KindMap:
		return "dict"
	case KindClass:
		return "type"
	case KindObj:
		return "object"
	case KindUser:
		return "user"
	default:
		return "?"
	}
}
