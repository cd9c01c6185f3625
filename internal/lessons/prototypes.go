package lessons

import (
	"strconv"

	"github.com/roach88/jsreview/internal/harness"
)

// person assigns its methods in the constructor, so every instance carries
// its own copies.
type person struct {
	first, last      string
	fullName         func() string
	fullNameReversed func() string
}

func newConstructedPerson(first, last string) *person {
	p := &person{first: first, last: last}
	p.fullName = func() string { return p.first + " " + p.last }
	p.fullNameReversed = func() string { return p.last + " " + p.first }
	return p
}

// anotherPerson gets its behavior from methods shared by every instance,
// the role AnotherPerson.prototype plays.
type anotherPerson struct {
	first, last string
}

func (p *anotherPerson) fullName() string { return p.first + " " + p.last }
func (p *anotherPerson) fullNameReversed() string { return p.last + " " + p.first }

// jsString stands in for String.prototype extensions.
type jsString string

func (s jsString) reversed() string {
	r := []rune(string(s))
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}

type car struct {
	make, model string
	year        int
}

func (c *car) inspect() string {
	return strconv.Itoa(c.year) + " " + c.make + " " + c.model
}

func (c *car) drive() string {
	return "Vrooooom Vrooooom"
}

// customObjects: constructor functions and prototype methods.
func customObjects(out *harness.Sink) error {
	sectionTitle(out, "customObjects")

	s := newConstructedPerson("Bilbo", "Baggins")
	out.Write(s.fullName())
	out.Write(s.fullNameReversed())

	t := &anotherPerson{first: "Frodo", last: "Baggins"}
	out.Write(t.fullName())
	out.Write(t.fullNameReversed())

	out.Write(jsString("This is a string").reversed())

	ford := &car{make: "Ford", model: "Mustang", year: 1969}
	out.Write(ford.inspect())
	out.Write(ford.drive())
	return nil
}

// oopPerson keeps firstName as a value so an unset name prints as undefined.
type oopPerson struct {
	firstName value
}

func (p *oopPerson) sayHello() string {
	return "Hello, my name is " + p.firstName.String()
}

// student inherits from oopPerson by embedding and overrides sayHello.
type student struct {
	*oopPerson
	subject string
}

func newStudent(firstName, subject string) *student {
	return &student{
		oopPerson: &oopPerson{firstName: str(firstName)},
		subject:   subject,
	}
}

func (s *student) sayHello() string {
	return "Hello, my name is " + s.firstName.String() + ". I'm studying " + s.subject
}

// globalObject is what `this` falls back to when a method is called unbound.
var globalObject = &oopPerson{}

// oop: namespaces, methods, unbound calls and inheritance.
func oop(out *harness.Sink) error {
	sectionTitle(out, "Object Oriented Programming")

	person1 := &oopPerson{firstName: str("Alice")}
	person2 := &oopPerson{firstName: str("Bob")}
	out.Write(person1.firstName.String())
	out.Write(person2.firstName.String())

	out.Write(person1.sayHello())

	// A method expression takes the receiver explicitly, like call().
	sayHello := (*oopPerson).sayHello
	out.Write(sayHello(globalObject))
	out.Write(sayHello(person2))

	student1 := newStudent("Charlie", "JavaScript")
	out.Write(student1.firstName.String() + " " + student1.subject)

	student2 := newStudent("Danielle", "Ruby")
	out.Write(student2.sayHello())
	return nil
}
