// Package proto is a small delegation object model: objects hold their own
// properties and a link to a prototype, and anything missing is looked up
// along that chain of links.
package proto

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrNotFound        = errors.New("property not found")
	ErrNotCallable     = errors.New("property is not a method")
	ErrCyclicPrototype = errors.New("cyclic prototype chain")
	// ErrImmutablePrototype is returned when relinking Root.
	ErrImmutablePrototype = errors.New("immutable prototype")
	ErrBadArgument        = errors.New("bad argument")
)

type Value = any

// A Method runs with this bound to the object it was called on, which is not
// necessarily the object that holds it.
type Method func(this *Object, args ...Value) (Value, error)

type Object struct {
	name  string
	proto *Object
	own   props
}

var root = newRoot()

func newRoot() *Object {
	r := &Object{name: "Object"}
	r.Set("hasOwnProperty", Method(func(this *Object, args ...Value) (Value, error) {
		key, err := argString(args, 0)
		if err != nil {
			return nil, err
		}
		return this.HasOwn(key), nil
	}))
	r.Set("isPrototypeOf", Method(func(this *Object, args ...Value) (Value, error) {
		if len(args) < 1 {
			return nil, fmt.Errorf("isPrototypeOf: missing argument: %w", ErrBadArgument)
		}
		o, ok := args[0].(*Object)
		if !ok {
			return false, nil
		}
		return this.IsPrototypeOf(o), nil
	}))
	return r
}

// Root returns the object at the end of every chain built by this package.
// It is shared process wide: properties set on it are seen by every object
// that delegates to it. Its own link is fixed at nil.
func Root() *Object {
	return root
}

// Create returns a new empty object whose prototype is p. A nil p gives an
// object with no chain at all.
func Create(p *Object) *Object {
	return &Object{proto: p}
}

// NewObject returns an empty object, named for printing, that delegates to
// Root.
func NewObject(name string) *Object {
	return &Object{name: name, proto: root}
}

func (o *Object) Name() string {
	return o.name
}

func (o *Object) Proto() *Object {
	return o.proto
}

// SetProto relinks o. Links that would make o reachable from its own chain
// are rejected, as is relinking Root.
func (o *Object) SetProto(p *Object) error {
	if o == root {
		return ErrImmutablePrototype
	}
	for n := p; n != nil; n = n.proto {
		if n == o {
			return ErrCyclicPrototype
		}
	}
	o.proto = p
	return nil
}

// Set assigns an own property.
func (o *Object) Set(key string, v Value) {
	o.own.Store(key, v)
}

// Get looks key up on o and then along its chain; the nearest definition
// wins.
func (o *Object) Get(key string) (Value, bool) {
	for n := o; n != nil; n = n.proto {
		if v, ok := n.own.Get(key); ok {
			return v, true
		}
	}
	return nil, false
}

func (o *Object) HasOwn(key string) bool {
	_, ok := o.own.find(key)
	return ok
}

func (o *Object) OwnKeys() []string {
	return o.own.Keys()
}

// Chain lists the objects o delegates to, nearest first.
func (o *Object) Chain() []*Object {
	var chain []*Object
	for n := o.proto; n != nil; n = n.proto {
		chain = append(chain, n)
	}
	return chain
}

// IsPrototypeOf reports whether o appears anywhere in other's chain.
// A nil other has no chain.
func (o *Object) IsPrototypeOf(other *Object) bool {
	if other == nil {
		return false
	}
	for n := other.proto; n != nil; n = n.proto {
		if n == o {
			return true
		}
	}
	return false
}

// Call resolves name along the chain and invokes it with this set to o.
func (o *Object) Call(name string, args ...Value) (Value, error) {
	v, ok := o.Get(name)
	if !ok {
		return nil, fmt.Errorf("%s: %w", name, ErrNotFound)
	}
	m, ok := v.(Method)
	if !ok {
		return nil, fmt.Errorf("%s: %w", name, ErrNotCallable)
	}
	return m(o, args...)
}

// String renders o like a console dump: the name of the nearest named object
// followed by the own properties, e.g. Person {firstName: 'Jose', birthYear: 1971}.
// An object nested inside itself prints as [Circular].
func (o *Object) String() string {
	return o.format(map[*Object]bool{})
}

// format renders o; seen holds the objects currently being printed further
// up the nesting.
func (o *Object) format(seen map[*Object]bool) string {
	seen[o] = true
	defer delete(seen, o)

	var b strings.Builder
	if name := o.displayName(); name != "" {
		b.WriteString(name)
		b.WriteString(" ")
	}
	b.WriteString("{")
	for i, e := range o.own.entries {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(e.key)
		b.WriteString(": ")
		b.WriteString(formatValue(e.val, seen))
	}
	b.WriteString("}")
	return b.String()
}

func (o *Object) displayName() string {
	if o.name != "" {
		return o.name
	}
	for n := o.proto; n != nil; n = n.proto {
		if n.name != "" {
			return n.name
		}
	}
	return ""
}

func formatValue(v Value, seen map[*Object]bool) string {
	switch v := v.(type) {
	case string:
		return "'" + v + "'"
	case Method:
		return "ƒ"
	case *Object:
		if v == nil {
			return "null"
		}
		if seen[v] {
			return "[Circular]"
		}
		return v.format(seen)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case nil:
		return "undefined"
	}
	return fmt.Sprint(v)
}
