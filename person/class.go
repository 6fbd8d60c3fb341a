package person

// PersonCl is the class-syntax version of Person.
type PersonCl struct {
	FirstName string
	BirthYear int
}

func NewPersonCl(firstName string, birthYear int) *PersonCl {
	return &PersonCl{FirstName: firstName, BirthYear: birthYear}
}

func (p *PersonCl) CalcAge() int {
	return ReferenceYear - p.BirthYear
}

// Greetings was attached to the class after its declaration in the
// walkthrough; declaring it here has the same effect for every instance.
func (p *PersonCl) Greetings() string {
	return "Hello " + p.FirstName + "!"
}

// Hey is a static method: it belongs to PersonCl's package, not to any
// instance.
func Hey() string {
	return "Hey there"
}
