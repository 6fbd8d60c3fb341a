package proto

import "fmt"

// Constructor pairs an init method with the prototype shared by every
// object it builds.
type Constructor struct {
	Name      string
	Prototype *Object
	init      Method
}

// NewConstructor returns a constructor whose prototype is a fresh object
// delegating to Root. Methods added to Prototype later are visible to
// instances created before the addition.
func NewConstructor(name string, init Method) *Constructor {
	return &Constructor{
		Name:      name,
		Prototype: NewObject(name),
		init:      init,
	}
}

// New creates an empty object, links it to c.Prototype, runs init with this
// bound to the new object and returns it.
func (c *Constructor) New(args ...Value) (*Object, error) {
	o := Create(c.Prototype)
	if c.init != nil {
		if _, err := c.init(o, args...); err != nil {
			return nil, fmt.Errorf("new %s: %w", c.Name, err)
		}
	}
	return o, nil
}

// InstanceOf reports whether c's prototype is on o's chain.
func InstanceOf(o *Object, c *Constructor) bool {
	return c.Prototype.IsPrototypeOf(o)
}
