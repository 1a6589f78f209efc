package ember

// Value is one runtime value. spec.md §3.1 describes a one-machine-word
// representation with a tag bit distinguishing a small integer from a
// pointer to a boxed object header; per spec.md §9's design notes, a sum
// type with identical identity/hash/equality contracts is an equally valid
// implementation, and that is the shape used here — SmallInt is its own
// Value-implementing type rather than an unboxed word, every other kind is
// a pointer to its own struct, and the closed Kind set stands in for the
// header's kind tag.
type Value interface {
	Kind() Kind
}

// SmallInt is a tag-bit-1 value in spec.md's model: a small, boxed-free
// integer. Two SmallInts are identical iff their Value fields are equal —
// there is no separate notion of small-int "identity" distinct from value
// equality, matching §3.1.
type SmallInt int64

func (SmallInt) Kind() Kind { return KindSmallInt }

// Const is a CONST singleton: None, False, True, or the StopIteration
// sentinel. Const values are compared and looked up by pointer identity
// except where §3.1 calls out False/True as acting like integers.
type Const struct {
	name string
}

func (*Const) Kind() Kind { return KindConst }

// Name returns the singleton's id string ("None", "False", "True", or
// "StopIteration").
func (c *Const) Name() string { return c.name }

// The four CONST singletons. They are allocated once; every reference to
// "the None object" anywhere in this package or a host is this pointer.
var (
	None          = &Const{name: "None"}
	False         = &Const{name: "False"}
	True          = &Const{name: "True"}
	StopIteration = &Const{name: "StopIteration"}
)

// BoolValue returns False or True for a Go bool, matching the CONST
// singletons used throughout the core (e.g. as the result of `not`, `==`,
// ordered comparisons).
func BoolValue(b bool) *Const {
	if b {
		return True
	}
	return False
}

// IsTrue reports whether c is the True singleton.
func (c *Const) IsTrue() bool { return c == True }
