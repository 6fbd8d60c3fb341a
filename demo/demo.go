// Package demo holds the walkthrough: six independent demonstrations of
// object construction, each printing its results line by line.
package demo

import (
	"errors"
	"fmt"
	"io"
)

var ErrUnknownDemo = errors.New("unknown demo")

const separator = "----------------------------------------"

type Demo struct {
	Name  string
	Title string
	Run   func(w io.Writer) error
}

var demos = []Demo{
	{"constructors", "constructor functions and prototypes", runConstructors},
	{"car", "coding challenge #1: Car", runCar},
	{"classes", "class syntax, static methods", runClasses},
	{"create", "delegation with Object.create", runCreate},
	{"carcl", "coding challenge #2: CarCl with speedUS", runCarCl},
	{"inspect", "prototype links and own properties", runInspect},
}

// All returns every demo in walkthrough order.
func All() []Demo {
	return append([]Demo(nil), demos...)
}

func Lookup(name string) (Demo, bool) {
	for _, d := range demos {
		if d.Name == name {
			return d, true
		}
	}
	return Demo{}, false
}

// Select resolves names to demos, keeping the order given. No names selects
// everything.
func Select(names []string) ([]Demo, error) {
	if len(names) == 0 {
		return All(), nil
	}
	var selected []Demo
	for _, name := range names {
		d, ok := Lookup(name)
		if !ok {
			return nil, fmt.Errorf("%q: %w", name, ErrUnknownDemo)
		}
		selected = append(selected, d)
	}
	return selected, nil
}
