package demo

import (
	"fmt"
	"io"

	"object_patterns_code/car"
	"object_patterns_code/person"
	"object_patterns_code/proto"
)

// snapshot copies fields into a named object so static values dump in the
// same console style as the dynamic ones. fields alternates key and value.
func snapshot(name string, fields ...proto.Value) *proto.Object {
	o := proto.NewObject(name)
	for i := 0; i+1 < len(fields); i += 2 {
		o.Set(fields[i].(string), fields[i+1])
	}
	return o
}

// drive runs ops against d, printing the status after each one.
func drive(w io.Writer, d car.Driver, ops ...func(car.Driver)) {
	for _, op := range ops {
		op(d)
		fmt.Fprintln(w, d.Status())
	}
}

func accelerate(d car.Driver) { d.Accelerate() }
func brake(d car.Driver)      { d.Brake() }

func runCar(w io.Writer) error {
	fmt.Fprintln(w, "CODING CHALLENGE 1:")
	drive(w, car.NewCar("BMW", 120), accelerate, brake)
	drive(w, car.NewCar("Mercedes", 95), brake, accelerate)
	fmt.Fprintln(w, separator)
	return nil
}

func runClasses(w io.Writer) error {
	klopp := person.NewPersonCl("Klopp", 1977)
	fmt.Fprintln(w, snapshot("PersonCl", "firstName", klopp.FirstName, "birthYear", klopp.BirthYear))
	fmt.Fprintln(w, klopp.CalcAge())
	fmt.Fprintln(w, klopp.Greetings())
	fmt.Fprintln(w, person.Hey())
	fmt.Fprintln(w, separator)
	return nil
}

func runCarCl(w io.Writer) error {
	fmt.Fprintln(w, "CODING CHALLENGE 2:")
	ford := car.NewCarCl("Ford", 120)
	fmt.Fprintln(w, car.FormatSpeed(ford.SpeedUS()))
	drive(w, ford, accelerate)
	ford.SetSpeedUS(50)
	fmt.Fprintln(w, snapshot("CarCl", "manufacturer", ford.Manufacturer, "speed", ford.Speed))
	return nil
}
