package ember

// Tuple is the TUPLE kind: a conceptually immutable (allocated, length,
// items) vector. The backing slice is never grown in place after
// construction — NewTuple takes ownership of items.
type Tuple struct {
	Items []Value
}

func (*Tuple) Kind() Kind { return KindTuple }

// NewTuple wraps items as a Tuple. items is taken by reference, not copied.
func NewTuple(items []Value) *Tuple { return &Tuple{Items: items} }

// List is the LIST kind: a mutable (allocated, length, items) vector.
type List struct {
	Items []Value
}

func (*List) Kind() Kind { return KindList }

// NewList wraps items as a List.
func NewList(items []Value) *List { return &List{Items: items} }

// Append implements the list.append bound method (§4.6).
func (l *List) Append(v Value) { l.Items = append(l.Items, v) }

// TupleIt is the TUPLE_IT kind: a back-reference to a Tuple plus the next
// index to yield.
type TupleIt struct {
	Tuple *Tuple
	Next  int
}

func (*TupleIt) Kind() Kind { return KindTupleIt }

// ListIt is the LIST_IT kind: a back-reference to a List plus the next index
// to yield.
type ListIt struct {
	List *List
	Next int
}

func (*ListIt) Kind() Kind { return KindListIt }
