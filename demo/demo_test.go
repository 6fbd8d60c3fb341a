package demo

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func runOne(t *testing.T, name string) []string {
	t.Helper()
	d, ok := Lookup(name)
	if !assert.True(t, ok, "demo %s", name) {
		return nil
	}
	var buf bytes.Buffer
	assert.NoError(t, d.Run(&buf))
	return strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
}

func TestConstructors(t *testing.T) {
	assert.Equal(t, []string{
		"true",
		"Person {calcAge: ƒ}",
		"50",
		"46",
		"Person {firstName: 'Jose', birthYear: 1971} Person {firstName: 'Pep', birthYear: 1975}",
	}, runOne(t, "constructors"))
}

func TestCar(t *testing.T) {
	assert.Equal(t, []string{
		"CODING CHALLENGE 1:",
		"BMW is moving at speed of 130km/hr",
		"BMW is moving at speed of 125km/hr",
		"Mercedes is moving at speed of 90km/hr",
		"Mercedes is moving at speed of 100km/hr",
		separator,
	}, runOne(t, "car"))
}

func TestClasses(t *testing.T) {
	assert.Equal(t, []string{
		"PersonCl {firstName: 'Klopp', birthYear: 1977}",
		"44",
		"Hello Klopp!",
		"Hey there",
		separator,
	}, runOne(t, "classes"))
}

func TestCreate(t *testing.T) {
	assert.Equal(t, []string{"77"}, runOne(t, "create"))
}

func TestCarCl(t *testing.T) {
	assert.Equal(t, []string{
		"CODING CHALLENGE 2:",
		"75",
		"The Ford Car is going at a speed of 130km/hr",
		"CarCl {manufacturer: 'Ford', speed: 80}",
	}, runOne(t, "carcl"))
}

func TestInspect(t *testing.T) {
	assert.Equal(t, []string{
		"Person {calcAge: ƒ}",
		"true",
		"true",
		"false",
		"Object {hasOwnProperty: ƒ, isPrototypeOf: ƒ}",
		"Person -> Object",
	}, runOne(t, "inspect"))
}

func TestSelect(t *testing.T) {
	assert := assert.New(t)

	all, err := Select(nil)
	assert.NoError(err)
	var names []string
	for _, d := range all {
		names = append(names, d.Name)
	}
	assert.Equal([]string{"constructors", "car", "classes", "create", "carcl", "inspect"}, names)

	some, err := Select([]string{"inspect", "car"})
	assert.NoError(err)
	if assert.Len(some, 2) {
		assert.Equal("inspect", some[0].Name)
		assert.Equal("car", some[1].Name)
	}

	_, err = Select([]string{"car", "boat"})
	assert.ErrorIs(err, ErrUnknownDemo)
}

func TestAllIsACopy(t *testing.T) {
	all := All()
	all[0].Name = "changed"
	_, ok := Lookup("constructors")
	assert.True(t, ok)
}

func TestRunner(t *testing.T) {
	assert := assert.New(t)

	core, logs := observer.New(zap.DebugLevel)
	var buf bytes.Buffer
	r := NewRunner(&buf, zap.New(core))

	assert.NoError(r.Run("create", "carcl"))
	assert.Equal("77\nCODING CHALLENGE 2:\n75\nThe Ford Car is going at a speed of 130km/hr\nCarCl {manufacturer: 'Ford', speed: 80}\n", buf.String())
	assert.Equal(2, logs.FilterMessage("running demo").Len())
	assert.Equal(1, logs.FilterMessage("demos complete").Len())
}

func TestRunnerAll(t *testing.T) {
	var buf bytes.Buffer
	r := NewRunner(&buf, nil)
	assert.NoError(t, r.Run())
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 5+6+5+1+4+6)
}

func TestRunnerUnknown(t *testing.T) {
	var buf bytes.Buffer
	r := NewRunner(&buf, zap.NewNop())
	err := r.Run("boat")
	assert.ErrorIs(t, err, ErrUnknownDemo)
	assert.Empty(t, buf.String(), "nothing runs when a name is unknown")
}
