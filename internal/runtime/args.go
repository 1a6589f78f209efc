package ember

// Args is the call-protocol argument buffer of spec.md §4.4: "argv is in
// reverse order (argv[n-1] is the first argument, argv[0] is the last)".
// This reversal exists because argv aliases the VM's stack, which grows
// downward (spec.md §9) — Args keeps that convention at the call boundary
// and exposes At/Forward so callees that want forward order never have to
// re-derive the index arithmetic themselves.
type Args []Value

// At returns the i-th logical argument (0-based, first argument first).
func (a Args) At(i int) Value { return a[len(a)-1-i] }

// Len returns the argument count.
func (a Args) Len() int { return len(a) }

// Forward returns a freshly allocated forward-ordered copy: Forward()[0] is
// the first argument. Used by FUN_VAR and the generator-frame layout, which
// both want forward order per spec.md §4.4.
func (a Args) Forward() []Value {
	fwd := make([]Value, len(a))
	for i := range fwd {
		fwd[i] = a.At(i)
	}
	return fwd
}

// ArgsFromForward builds a reverse-ordered Args buffer from a forward-order
// slice — the inverse of Forward.
func ArgsFromForward(fwd []Value) Args {
	a := make(Args, len(fwd))
	for i, v := range fwd {
		a[len(fwd)-1-i] = v
	}
	return a
}

// Prepend returns a new Args buffer representing [self, a.At(0), a.At(1),
// ...] in logical order — the operation BOUND_METH's call convention needs
// (spec.md §4.4: "prepends self to argv"). Because self becomes the new
// first logical argument, it lands at the top of the reverse buffer.
func (a Args) Prepend(self Value) Args {
	out := make(Args, len(a)+1)
	copy(out, a)
	out[len(a)] = self
	return out
}
