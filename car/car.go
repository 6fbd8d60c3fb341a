package car

import (
	"fmt"
	"strconv"

	"github.com/goose-lang/primitive"
)

const (
	AccelerateStep = 10
	BrakeStep      = 5
	// KmPerMile converts between the km/h and mi/h speed views.
	KmPerMile = 1.6
)

// Driver is the behavior shared by both car shapes.
type Driver interface {
	Accelerate()
	Brake()
	Status() string
}

// Car tracks a manufacturer and its current speed in km/h.
type Car struct {
	Manufacturer string
	Speed        float64
}

func NewCar(manufacturer string, speed float64) *Car {
	return &Car{Manufacturer: manufacturer, Speed: speed}
}

// Accelerate increases the speed by AccelerateStep.
func (c *Car) Accelerate() {
	c.Speed += AccelerateStep
}

// Brake decreases the speed by BrakeStep. There is no floor: repeated
// braking takes the speed below zero.
func (c *Car) Brake() {
	c.Speed -= BrakeStep
}

func (c *Car) Status() string {
	return fmt.Sprintf("%s is moving at speed of %skm/hr", c.Manufacturer, FormatSpeed(c.Speed))
}

// FormatSpeed prints a speed in its shortest form, so 130 is "130" and not
// "130.000000".
func FormatSpeed(speed float64) string {
	return strconv.FormatFloat(speed, 'f', -1, 64)
}

// UseCars drives the cars from both challenges and checks every speed along
// the way.
func UseCars() {
	bmw := NewCar("BMW", 120)
	bmw.Accelerate()
	primitive.Assert(bmw.Speed == 130)
	bmw.Brake()
	primitive.Assert(bmw.Speed == 125)

	mercedes := NewCar("Mercedes", 95)
	mercedes.Brake()
	primitive.Assert(mercedes.Speed == 90)
	mercedes.Accelerate()
	primitive.Assert(mercedes.Speed == 100)

	ford := NewCarCl("Ford", 120)
	primitive.Assert(FormatSpeed(ford.SpeedUS()) == "75")
	ford.Accelerate()
	primitive.Assert(ford.Speed == 130)
	ford.SetSpeedUS(50)
	primitive.Assert(ford.Speed == 80)
}
