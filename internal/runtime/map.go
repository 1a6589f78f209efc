package ember

import "github.com/emberlang/ember/internal/qstr"

// MapMode selects one of the two key regimes a Map owns (spec.md §3.2).
type MapMode uint8

const (
	// MapModeQSTR keys are raw interned symbol handles compared by
	// identity; the hash is the key itself.
	MapModeQSTR MapMode = iota
	// MapModeObj keys are boxed Values compared by §3.1 semantic
	// equality; the hash is §3.1 Hash.
	MapModeObj
)

// mapEntry is one (key, value) slot. present distinguishes an empty slot
// from a slot whose key happens to be the zero value of its stored type
// (spec.md's "NULL key marks an empty slot", adapted since Go's any(0)
// isn't itself a usable sentinel across both key regimes).
type mapEntry struct {
	present bool
	qkey    qstr.Handle
	okey    Value
	value   Value
}

// Map is the MAP kind (spec.md §3.2): an open-addressed, linear-probed
// table in one of two key regimes.
type Map struct {
	Mode  MapMode
	slots []mapEntry
	used  int
}

func (*Map) Kind() Kind { return KindMap }

// NewQSTRMap returns an empty QSTR-keyed map, used for every namespace and
// class body (spec.md §3.3).
func NewQSTRMap() *Map { return newMap(MapModeQSTR) }

// NewObjMap returns an empty value-keyed map, used for every dict.
func NewObjMap() *Map { return newMap(MapModeObj) }

func newMap(mode MapMode) *Map {
	return &Map{Mode: mode, slots: make([]mapEntry, nextSize(1))}
}

// Len returns the number of live entries.
func (m *Map) Len() int { return m.used }

func (m *Map) hashQSTR(h qstr.Handle) int64 { return int64(h) }

// slotHash computes the probe start for a QSTR-mode lookup.
func (m *Map) slotHashQSTR(h qstr.Handle) int {
	idx := int(m.hashQSTR(h) % int64(len(m.slots)))
	if idx < 0 {
		idx += len(m.slots)
	}
	return idx
}

func (m *Map) slotHashObj(v Value) (int, bool) {
	h, ok := Hash(v)
	if !ok {
		return 0, false
	}
	idx := int(h % int64(len(m.slots)))
	if idx < 0 {
		idx += len(m.slots)
	}
	return idx, true
}

// LookupQSTR implements §4.1's lookup algorithm for a QSTR-mode map. create
// controls whether a miss allocates a new (empty-value) slot; the caller
// must set the returned entry's value themselves. Returns ok=false on a
// lookup miss with create=false.
func (m *Map) LookupQSTR(key qstr.Handle, create bool) (*mapEntry, bool) {
	if m.Mode != MapModeQSTR {
		panic("ember: LookupQSTR on an Obj-mode map")
	}
	if create && m.used+1 >= len(m.slots) {
		m.rehash(nextSize(len(m.slots) + 1))
	}
	idx := m.slotHashQSTR(key)
	for {
		e := &m.slots[idx]
		if !e.present {
			if !create {
				return nil, false
			}
			e.present = true
			e.qkey = key
			m.used++
			return e, true
		}
		if e.qkey == key {
			return e, true
		}
		idx++
		if idx == len(m.slots) {
			idx = 0
		}
	}
}

// LookupObj implements §4.1's lookup algorithm for an Obj-mode map.
func (m *Map) LookupObj(key Value, create bool) (*mapEntry, bool, error) {
	if m.Mode != MapModeObj {
		panic("ember: LookupObj on a QSTR-mode map")
	}
	if create && m.used+1 >= len(m.slots) {
		m.rehash(nextSize(len(m.slots) + 1))
	}
	idx, ok := m.slotHashObj(key)
	if !ok {
		return nil, false, newTypeError("unhashable type used as dict key")
	}
	for {
		e := &m.slots[idx]
		if !e.present {
			if !create {
				return nil, false, nil
			}
			e.present = true
			e.okey = key
			m.used++
			return e, true, nil
		}
		if e.okey == key || Equal(e.okey, key) {
			return e, true, nil
		}
		idx++
		if idx == len(m.slots) {
			idx = 0
		}
	}
}

// rehash grows the table to newSize, reinserting every live entry. Any
// *mapEntry pointer a caller is holding into this table is invalidated —
// spec.md §5: "a rehash of a map or set invalidates all outstanding slot
// pointers into it".
func (m *Map) rehash(newSize int) {
	old := m.slots
	m.slots = make([]mapEntry, newSize)
	m.used = 0
	for _, e := range old {
		if !e.present {
			continue
		}
		if m.Mode == MapModeQSTR {
			slot, _ := m.LookupQSTR(e.qkey, true)
			slot.value = e.value
		} else {
			slot, _, _ := m.LookupObj(e.okey, true)
			slot.value = e.value
		}
	}
}

// GetQSTR is a convenience wrapper returning the stored value directly.
func (m *Map) GetQSTR(key qstr.Handle) (Value, bool) {
	e, ok := m.LookupQSTR(key, false)
	if !ok {
		return nil, false
	}
	return e.value, true
}

// SetQSTR inserts or updates key's value.
func (m *Map) SetQSTR(key qstr.Handle, val Value) {
	e, _ := m.LookupQSTR(key, true)
	e.value = val
}

// GetObj is a convenience wrapper returning the stored value directly.
func (m *Map) GetObj(key Value) (Value, bool, error) {
	e, ok, err := m.LookupObj(key, false)
	if err != nil || !ok {
		return nil, false, err
	}
	return e.value, true, nil
}

// SetObj inserts or updates key's value. Per §4.1, the original entry key
// is preserved on a hit — only the value is overwritten.
func (m *Map) SetObj(key Value, val Value) error {
	e, _, err := m.LookupObj(key, true)
	if err != nil {
		return err
	}
	e.value = val
	return nil
}

// MapItem is one live (key, value) pair, used for iteration and printing.
type MapItem struct {
	QKey qstr.Handle
	OKey Value
	Val  Value
}

// Items returns every live entry in slot order (spec.md §3.2: "Iteration
// order is the slot order").
func (m *Map) Items() []MapItem {
	items := make([]MapItem, 0, m.used)
	for _, e := range m.slots {
		if !e.present {
			continue
		}
		if m.Mode == MapModeQSTR {
			items = append(items, MapItem{QKey: e.qkey, Val: e.value})
		} else {
			items = append(items, MapItem{OKey: e.okey, Val: e.value})
		}
	}
	return items
}
