package ember

// BuildClass implements `__build_class__` (§4.10): allocates a fresh
// QSTR-map class body, installs it as locals, invokes the class-body
// callable with a sentinel argument, restores the prior locals, and
// returns a new CLASS pointing at the body.
func (it *Interpreter) BuildClass(body Value, name string) (*Class, error) {
	classBody := NewQSTRMap()
	prevLocals := it.Locals
	it.Locals = classBody
	_, err := it.Call(body, Args{None})
	it.Locals = prevLocals
	if err != nil {
		return nil, err
	}
	classBody.SetQSTR(Intern("__qualname__"), NewStr(name))
	return &Class{Namespace: classBody}, nil
}
