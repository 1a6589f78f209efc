package ember

// GetIter implements §4.7's getiter: maps a value to its iterator.
// GEN_INSTANCE is its own iterator.
func GetIter(v Value) (Value, error) {
	switch vv := v.(type) {
	case *GenInstance:
		return vv, nil
	case *Range:
		return &RangeIt{Cur: vv.Start, Stop: vv.Stop, Step: vv.Step}, nil
	case *Tuple:
		return &TupleIt{Tuple: vv}, nil
	case *List:
		return &ListIt{List: vv}, nil
	default:
		return nil, newTypeError("'%s' object is not iterable", NewStr(v.Kind().String()))
	}
}

// IterNext implements §4.7's iternext: returns the next value, or the
// StopIteration singleton once exhausted. Once exhausted, an iterator keeps
// returning StopIteration on every subsequent call (spec.md §8).
func (it *Interpreter) IterNext(iter Value) (Value, error) {
	switch v := iter.(type) {
	case *RangeIt:
		if v.Step > 0 {
			if v.Cur >= v.Stop {
				return StopIteration, nil
			}
		} else if v.Step < 0 {
			if v.Cur <= v.Stop {
				return StopIteration, nil
			}
		} else {
			return StopIteration, nil
		}
		cur := v.Cur
		v.Cur += v.Step
		return SmallInt(cur), nil
	case *TupleIt:
		if v.Next >= len(v.Tuple.Items) {
			return StopIteration, nil
		}
		val := v.Tuple.Items[v.Next]
		v.Next++
		return val, nil
	case *ListIt:
		if v.Next >= len(v.List.Items) {
			return StopIteration, nil
		}
		val := v.List.Items[v.Next]
		v.Next++
		return val, nil
	case *GenInstance:
		return it.genNext(v)
	default:
		return nil, newTypeError("'%s' object is not an iterator", NewStr(iter.Kind().String()))
	}
}

// genNextBuiltin returns the callable g.__next__() resolves to via
// load_method: unlike the internal iternext opcode (which hands the
// StopIteration sentinel back to a for-loop), the built-in method promotes
// exhaustion to a raised StopIteration, matching Python's __next__.
func (it *Interpreter) genNextBuiltin() Value {
	return &Fun1{Fn: func(self Value) (Value, error) {
		g, ok := self.(*GenInstance)
		if !ok {
			return nil, newTypeError("__next__() requires a generator receiver")
		}
		v, err := it.genNext(g)
		if err != nil {
			return nil, err
		}
		if v == StopIteration {
			return nil, AsError(newExc0(Intern("StopIteration")))
		}
		return v, nil
	}}
}

// genNext resumes a generator instance via the bytecode engine, mapping a
// non-yield None return to StopIteration (returning values from
// generators is a TODO per spec.md §4.7/§9).
func (it *Interpreter) genNext(g *GenInstance) (Value, error) {
	if g.Done {
		return StopIteration, nil
	}
	if it.Engine == nil {
		return nil, newTypeError("no bytecode engine configured to resume generator")
	}
	underlying, ok := g.State[0].(*FunBC)
	if !ok {
		return nil, newTypeError("malformed generator frame")
	}
	res, val, err := it.Engine.Resume(underlying.Code, &g.IP, g.State[1:], &g.SP)
	if err != nil {
		g.Done = true
		return nil, err
	}
	switch res {
	case Yielded:
		return val, nil
	case Returned:
		g.Done = true
		if val == None || val == nil {
			return StopIteration, nil
		}
		return StopIteration, nil
	case Raised:
		g.Done = true
		return nil, AsError(val)
	default:
		g.Done = true
		return StopIteration, nil
	}
}
