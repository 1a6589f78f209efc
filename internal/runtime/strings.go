package ember

import "github.com/emberlang/ember/internal/qstr"

// interner is the process-wide qstr service spec.md §1 lists as an external
// collaborator. The core only ever needs Intern/Str through the narrow
// qstr.Table API. There is one table per process, shared by every
// Interpreter; a usable default exists so this package is self-contained
// for tests and the bundled demo host.
var interner = qstr.New()

// SetInterner replaces the process-wide qstr table for every Interpreter
// at once; must be called before any Value is constructed.
func SetInterner(t *qstr.Table) { interner = t }

// Intern returns the qstr handle for s.
func Intern(s string) qstr.Handle { return interner.Intern(s) }

func qstrStr(h qstr.Handle) string { return interner.Str(h) }

// Str is the STR kind: an interned symbol handle. Two Str values are equal
// (§3.1) iff their handles are equal.
type Str struct {
	Handle qstr.Handle
}

func (*Str) Kind() Kind { return KindStr }

// NewStr interns s and returns the corresponding Str value.
func NewStr(s string) *Str { return &Str{Handle: Intern(s)} }

// GoString returns the underlying Go string.
func (s *Str) GoString() string { return qstrStr(s.Handle) }
