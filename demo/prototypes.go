package demo

import (
	"fmt"
	"io"
	"strings"

	"object_patterns_code/person"
	"object_patterns_code/proto"
)

func initPerson(this *proto.Object, args ...proto.Value) (proto.Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("init wants firstName and birthYear, got %d args: %w", len(args), proto.ErrBadArgument)
	}
	this.Set("firstName", args[0])
	this.Set("birthYear", args[1])
	return nil, nil
}

func calcAge(this *proto.Object, args ...proto.Value) (proto.Value, error) {
	v, _ := this.Get("birthYear")
	year, err := proto.Int(v)
	if err != nil {
		return nil, fmt.Errorf("calcAge: %w", err)
	}
	return person.ReferenceYear - year, nil
}

// newPersonConstructor builds the Person constructor with calcAge on its
// prototype.
func newPersonConstructor() *proto.Constructor {
	ctor := proto.NewConstructor("Person", initPerson)
	ctor.Prototype.Set("calcAge", proto.Method(calcAge))
	return ctor
}

func runConstructors(w io.Writer) error {
	ctor := proto.NewConstructor("Person", initPerson)
	jose, err := ctor.New("Jose", 1971)
	if err != nil {
		return err
	}
	pep, err := ctor.New("Pep", 1975)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, proto.InstanceOf(jose, ctor))

	// jose and pep already exist; they pick calcAge up through the prototype
	ctor.Prototype.Set("calcAge", proto.Method(calcAge))
	fmt.Fprintln(w, ctor.Prototype)

	for _, p := range []*proto.Object{jose, pep} {
		age, err := p.Call("calcAge")
		if err != nil {
			return err
		}
		fmt.Fprintln(w, age)
	}
	fmt.Fprintln(w, jose, pep)
	return nil
}

func runCreate(w io.Writer) error {
	personProto := proto.NewObject("")
	personProto.Set("calcAge", proto.Method(calcAge))
	personProto.Set("init", proto.Method(initPerson))

	steven := proto.Create(personProto)
	if _, err := steven.Call("init", "Steven", 1944); err != nil {
		return err
	}
	age, err := steven.Call("calcAge")
	if err != nil {
		return err
	}
	fmt.Fprintln(w, age)
	return nil
}

func runInspect(w io.Writer) error {
	ctor := newPersonConstructor()
	jose, err := ctor.New("Jose", 1971)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, jose.Proto())
	fmt.Fprintln(w, jose.Proto() == ctor.Prototype)
	for _, key := range []string{"firstName", "calcAge"} {
		own, err := jose.Call("hasOwnProperty", key)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, own)
	}
	fmt.Fprintln(w, jose.Proto().Proto())

	var names []string
	for _, o := range jose.Chain() {
		names = append(names, o.Name())
	}
	fmt.Fprintln(w, strings.Join(names, " -> "))
	return nil
}
