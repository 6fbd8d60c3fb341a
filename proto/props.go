package proto

// props holds an object's own properties. It is a slice of entries rather
// than a map so that keys keep their insertion order, which is the order
// they are printed in.

type entry struct {
	key string
	val Value
}

type props struct {
	entries []entry
}

func (ps *props) find(key string) (uint64, bool) {
	var i = uint64(0)
	l := uint64(len(ps.entries))
	for i < l {
		if ps.entries[i].key == key {
			return i, true
		}
		i++
	}
	return 0, false
}

func (ps *props) Get(key string) (Value, bool) {
	i, ok := ps.find(key)
	if !ok {
		return nil, false
	}
	return ps.entries[i].val, true
}

// Store overwrites an existing key in place, or appends a new one.
func (ps *props) Store(key string, val Value) {
	i, ok := ps.find(key)
	if ok {
		ps.entries[i] = entry{key: key, val: val}
	} else {
		ps.entries = append(ps.entries, entry{key: key, val: val})
	}
}

func (ps *props) Keys() []string {
	var keys = make([]string, 0, len(ps.entries))
	for _, e := range ps.entries {
		keys = append(keys, e.key)
	}
	return keys
}
