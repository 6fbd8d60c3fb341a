package car

import "fmt"

// CarCl is the class-syntax car. Besides Speed it exposes SpeedUS, a mi/h
// view that is computed from Speed on every read and written back to Speed
// on every write.
type CarCl struct {
	Manufacturer string
	Speed        float64
}

func NewCarCl(manufacturer string, speed float64) *CarCl {
	return &CarCl{Manufacturer: manufacturer, Speed: speed}
}

func (c *CarCl) Accelerate() {
	c.Speed += AccelerateStep
}

func (c *CarCl) Brake() {
	c.Speed -= BrakeStep
}

func (c *CarCl) Status() string {
	return fmt.Sprintf("The %s Car is going at a speed of %skm/hr", c.Manufacturer, FormatSpeed(c.Speed))
}

// SpeedUS returns the current speed in mi/h.
func (c *CarCl) SpeedUS() float64 {
	return c.Speed / KmPerMile
}

// SetSpeedUS sets the speed from a mi/h value. The input is not validated.
func (c *CarCl) SetSpeedUS(mph float64) {
	c.Speed = mph * KmPerMile
}
