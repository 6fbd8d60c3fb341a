package person

import "github.com/goose-lang/primitive"

// ReferenceYear is the fixed year ages are computed against.
const ReferenceYear = 2021

// AgeCalculator is anything that knows its age relative to ReferenceYear.
type AgeCalculator interface {
	CalcAge() int
}

// Person is built with a constructor function; its methods are shared by
// every instance through the method set rather than stored per value.
type Person struct {
	FirstName string
	BirthYear int
}

func NewPerson(firstName string, birthYear int) *Person {
	return &Person{
		FirstName: firstName,
		BirthYear: birthYear,
	}
}

func (p *Person) CalcAge() int {
	return ReferenceYear - p.BirthYear
}

// UsePeople constructs the people from the walkthrough and checks their ages.
func UsePeople() {
	jose := NewPerson("Jose", 1971)
	pep := NewPerson("Pep", 1975)
	klopp := NewPersonCl("Klopp", 1977)

	var people = []AgeCalculator{jose, pep, klopp}
	var ages = []int{50, 46, 44}
	for i, p := range people {
		primitive.Assert(p.CalcAge() == ages[i])
	}
	primitive.Assert(klopp.Greetings() == "Hello Klopp!")
}
