// Package qstr implements the interning service the runtime core treats as
// an external collaborator (spec.md §1): a bidirectional mapping between a
// small integer handle and a string, such that two interned strings compare
// equal iff their handles compare equal.
package qstr

import "sync"

// Handle is an interned string's integer handle. The zero Handle is never
// issued by Intern; it is reserved so callers can use it as a "no symbol"
// sentinel.
type Handle int32

// Table is a process-wide (or interpreter-wide) string interner. The zero
// Table is not usable; construct one with New.
type Table struct {
	mu      sync.Mutex
	byName  map[string]Handle
	byHand  []string
	pending bool
}

// New returns an empty interning table.
func New() *Table {
	return &Table{
		byName: make(map[string]Handle),
		// handle 0 is reserved, so byHand[0] is a dummy.
		byHand: []string{""},
	}
}

// Intern returns the handle for s, allocating a new one on first sight.
func (t *Table) Intern(s string) Handle {
	t.mu.Lock()
	defer t.mu.Unlock()
	if h, ok := t.byName[s]; ok {
		return h
	}
	h := Handle(len(t.byHand))
	t.byHand = append(t.byHand, s)
	t.byName[s] = h
	return h
}

// Str returns the string behind h. It panics if h was never interned by this
// table — a caller holding a foreign handle is a programming error, not a
// recoverable one.
func (t *Table) Str(h Handle) string {
	t.mu.Lock()
	defer t.mu.Unlock()
	if int(h) <= 0 || int(h) >= len(t.byHand) {
		panic("qstr: handle not interned in this table")
	}
	return t.byHand[h]
}

// Lookup returns the handle for s without interning it, reporting whether s
// has been interned before.
func (t *Table) Lookup(s string) (Handle, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	h, ok := t.byName[s]
	return h, ok
}
