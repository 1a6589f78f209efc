package ember

import (
	"fmt"

	"github.com/emberlang/ember/internal/qstr"
)

// Exception0 is the EXCEPTION_0 kind: an exception carrying just a class
// name (spec.md §3.1), e.g. the StopIteration-shaped "no message" case for
// a user-raised bare exception class.
type Exception0 struct {
	Class qstr.Handle
}

func (*Exception0) Kind() Kind { return KindException0 }

// ClassName returns the exception's class name.
func (e *Exception0) ClassName() string { return qstrStr(e.Class) }

// ExceptionN is the EXCEPTION_N kind: a class name plus up to three message
// pieces — a printf-style format string and up to two substitution values
// treated as raw pointers (spec.md §3.1).
type ExceptionN struct {
	Class qstr.Handle
	Fmt   string
	Args  [2]Value
	NArgs int
}

func (*ExceptionN) Kind() Kind { return KindExceptionN }

// ClassName returns the exception's class name.
func (e *ExceptionN) ClassName() string { return qstrStr(e.Class) }

// Message renders the format string against its substitution values the way
// the core's printer would: each verb receives the Repr of that argument.
func (e *ExceptionN) Message() string {
	switch e.NArgs {
	case 0:
		return e.Fmt
	case 1:
		return fmt.Sprintf(e.Fmt, formatArg(e.Args[0]))
	default:
		return fmt.Sprintf(e.Fmt, formatArg(e.Args[0]), formatArg(e.Args[1]))
	}
}

func formatArg(v Value) string {
	if v == nil {
		return "<nil>"
	}
	return Repr(v)
}

// The error taxonomy spec.md §7 names, as exception class names. These are
// interned once at package init so constructing an exception never pays an
// interning round-trip on the hot raise path.
var (
	qAttributeError    = Intern("AttributeError")
	qIndexError        = Intern("IndexError")
	qKeyError          = Intern("KeyError")
	qNameError         = Intern("NameError")
	qTypeError         = Intern("TypeError")
	qSyntaxError       = Intern("SyntaxError")
	qZeroDivisionError = Intern("ZeroDivisionError")
)

func newExc0(class qstr.Handle) *Exception0 { return &Exception0{Class: class} }

func newExcN(class qstr.Handle, format string, args ...Value) *ExceptionN {
	e := &ExceptionN{Class: class, Fmt: format, NArgs: len(args)}
	for i, a := range args {
		e.Args[i] = a
	}
	return e
}

func newTypeError(format string, args ...Value) error {
	return AsError(newExcN(qTypeError, format, args...))
}

func newAttributeError(format string, args ...Value) error {
	return AsError(newExcN(qAttributeError, format, args...))
}

func newIndexError(format string, args ...Value) error {
	return AsError(newExcN(qIndexError, format, args...))
}

func newKeyError(format string, args ...Value) error {
	return AsError(newExcN(qKeyError, format, args...))
}

func newNameError(format string, args ...Value) error {
	return AsError(newExcN(qNameError, format, args...))
}

func newSyntaxError(format string, args ...Value) error {
	return AsError(newExcN(qSyntaxError, format, args...))
}

func newZeroDivisionError(format string, args ...Value) error {
	return AsError(newExcN(qZeroDivisionError, format, args...))
}

// Raiser is the non-local-return mechanism spec.md §1 lists as an external
// collaborator: Raise unwinds to the nearest handler with exc as the
// carried value. This package never catches what it raises — the
// raise-and-escape policy of spec.md §7.
type Raiser interface {
	Raise(exc Value)
}

// RuntimeError wraps an EXCEPTION_0/EXCEPTION_N value as a Go error so a
// host that is not itself running a Raiser (e.g. cmd/emberi, or a test
// harness) can use errors.As/errors.Is against it instead of type-asserting
// on the raw Value.
type RuntimeError struct {
	Exc Value
}

func (e *RuntimeError) Error() string {
	switch exc := e.Exc.(type) {
	case *Exception0:
		return exc.ClassName()
	case *ExceptionN:
		return exc.ClassName() + ": " + exc.Message()
	default:
		return "raise: non-exception value"
	}
}

// AsError wraps a raised value as a *RuntimeError for host consumption.
func AsError(exc Value) error { return &RuntimeError{Exc: exc} }
