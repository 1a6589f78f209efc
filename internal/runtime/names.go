package ember

// LoadName implements §4.8's three-tier lookup: locals, then globals, then
// builtins; miss raises NameError naming the unresolved identifier.
func (it *Interpreter) LoadName(name string) (Value, error) {
	h := Intern(name)
	if v, ok := it.Locals.GetQSTR(h); ok {
		return v, nil
	}
	if v, ok := it.Globals.GetQSTR(h); ok {
		return v, nil
	}
	if v, ok := it.Builtins.GetQSTR(h); ok {
		return v, nil
	}
	return nil, newNameError("name '%s' is not defined", NewStr(name))
}

// LoadGlobal implements §4.8's load_global: skip locals.
func (it *Interpreter) LoadGlobal(name string) (Value, error) {
	h := Intern(name)
	if v, ok := it.Globals.GetQSTR(h); ok {
		return v, nil
	}
	if v, ok := it.Builtins.GetQSTR(h); ok {
		return v, nil
	}
	return nil, newNameError("name '%s' is not defined", NewStr(name))
}

// StoreName implements §4.8's store_name: always locals.
func (it *Interpreter) StoreName(name string, v Value) {
	it.Locals.SetQSTR(Intern(name), v)
}

// StoreGlobal implements §4.8's store_global: always globals.
func (it *Interpreter) StoreGlobal(name string, v Value) {
	it.Globals.SetQSTR(Intern(name), v)
}
