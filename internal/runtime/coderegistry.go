package ember

// CodeKind is the closed discriminant a code descriptor carries (spec.md
// §3.4).
type CodeKind uint8

const (
	CodeNone CodeKind = iota
	CodeByte
	CodeNative
	CodeInlineASM
)

// CodeDescriptor is one entry of the code registry: a kind, arity, locals
// count, stack depth, generator flag, and a kind-specific payload.
type CodeDescriptor struct {
	Kind      CodeKind
	Arity     int
	NLocals   int
	NStack    int
	Generator bool

	// Payload for CodeByte.
	Bytecode []byte

	// Payload for CodeNative.
	Native func(args []Value) (Value, error)

	// Payload for CodeInlineASM.
	Asm AsmEntry
}

// CodeRegistry is the process-wide growable array of code descriptors,
// addressed by CodeID, that spec.md §3.4 describes. spec.md §9's design
// notes recommend exposing this as a registry object plumbed through the
// interpreter rather than a true global "to enable multiple interpreter
// instances" — that's exactly what this type is for; Interpreter owns one.
type CodeRegistry struct {
	descs    []CodeDescriptor
	reserved []bool
	nextID   CodeID
}

// NewCodeRegistry returns an empty registry. Id 0 is never issued; id 1 is
// reserved for the caller to claim for the top-level module via
// GetUniqueCodeID(true).
func NewCodeRegistry() *CodeRegistry {
	r := &CodeRegistry{}
	r.descs = append(r.descs, CodeDescriptor{}) // index 0 unused
	r.reserved = append(r.reserved, true)
	r.nextID = 2
	return r
}

// GetUniqueCodeID returns 1 iff isMain, else monotonically increasing ids
// (spec.md §6). Each call reserves a new descriptor slot.
func (r *CodeRegistry) GetUniqueCodeID(isMain bool) CodeID {
	if isMain {
		for len(r.descs) <= 1 {
			r.descs = append(r.descs, CodeDescriptor{})
			r.reserved = append(r.reserved, false)
		}
		r.reserved[1] = true
		if r.nextID <= 1 {
			r.nextID = 2
		}
		return 1
	}
	id := r.nextID
	r.nextID++
	for CodeID(len(r.descs)) <= id {
		r.descs = append(r.descs, CodeDescriptor{})
		r.reserved = append(r.reserved, false)
	}
	r.reserved[id] = true
	return id
}

func (r *CodeRegistry) mustReserved(id CodeID) {
	if int(id) <= 0 || int(id) >= len(r.reserved) || !r.reserved[id] {
		panic("ember: code id not reserved")
	}
}

// AssignByteCode populates a reserved id's descriptor with bytecode,
// exactly once (spec.md §3.4's lifecycle).
func (r *CodeRegistry) AssignByteCode(id CodeID, code []byte, nArgs, nLocals, nStack int, isGenerator bool) {
	r.mustReserved(id)
	r.descs[id] = CodeDescriptor{
		Kind: CodeByte, Arity: nArgs, NLocals: nLocals, NStack: nStack,
		Generator: isGenerator, Bytecode: code,
	}
}

// AssignNativeCode populates a reserved id's descriptor with a native
// function.
func (r *CodeRegistry) AssignNativeCode(id CodeID, nArgs int, fn func(args []Value) (Value, error)) {
	r.mustReserved(id)
	r.descs[id] = CodeDescriptor{Kind: CodeNative, Arity: nArgs, Native: fn}
}

// AssignInlineAsmCode populates a reserved id's descriptor with an
// assembled entry point.
func (r *CodeRegistry) AssignInlineAsmCode(id CodeID, nArgs int, entry AsmEntry) {
	r.mustReserved(id)
	r.descs[id] = CodeDescriptor{Kind: CodeInlineASM, Arity: nArgs, Asm: entry}
}

// Descriptor returns the descriptor for id.
func (r *CodeRegistry) Descriptor(id CodeID) *CodeDescriptor {
	r.mustReserved(id)
	return &r.descs[id]
}

// genFrameSize computes the generator state-frame size spec.md §6 fixes:
// max(locals, 3) + stack — "the 3-local floor leaves room for generator
// scratch".
func genFrameSize(nLocals, nStack int) int {
	floor := nLocals
	if floor < 3 {
		floor = 3
	}
	return floor + nStack
}

// MakeFunctionFromID materializes the callable for id — a FunBC, or a
// GenWrap wrapping it when the descriptor is flagged as a generator
// (spec.md §6).
func (r *CodeRegistry) MakeFunctionFromID(id CodeID) Value {
	d := r.Descriptor(id)
	switch d.Kind {
	case CodeByte:
		bc := &FunBC{Arity: d.Arity, StateSize: d.NLocals + d.NStack, Code: id}
		if d.Generator {
			return &GenWrap{StateSize: genFrameSize(d.NLocals, d.NStack), Underlying: bc}
		}
		return bc
	case CodeNative:
		return &FunN{Arity: d.Arity, Fn: d.Native}
	case CodeInlineASM:
		return &FunASM{Arity: d.Arity, Entry: d.Asm}
	default:
		panic("ember: code id not assigned")
	}
}
