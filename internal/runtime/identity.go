package ember

import (
	"reflect"
	"unsafe"
)

// ptrOf returns p's address as a stable, comparable integer, used only to
// hash the CONST singletons (None, StopIteration) by identity per spec.md
// §3.1 ("For CONST singletons other than booleans, it is the pointer").
func ptrOf(p *Const) unsafe.Pointer { return unsafe.Pointer(p) }

// ptrOfAny returns v's address for the inline-asm boundary's "anything else
// -> pointer to the object" case (§4.5). Every Value variant this package
// defines other than SmallInt is itself a pointer type, so reflect.ValueOf
// always has a Pointer() to give back.
func ptrOfAny(v Value) uintptr {
	return reflect.ValueOf(v).Pointer()
}

// sliceAddr returns the address of a slice's backing array, used for the
// inline-asm "tuple/list -> pointer to items array" conversion (§4.5).
func sliceAddr(items []Value) uintptr {
	if len(items) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(&items[0]))
}
