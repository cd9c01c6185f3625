package lessons

import (
	"strconv"

	"github.com/roach88/jsreview/internal/harness"
)

// object is a plain collection of name-value pairs.
type object map[string]value

func newPerson(name string, age int) object {
	return object{
		"name": str(name),
		"age":  number(float64(age)),
	}
}

// objects: properties are read and written with dot or bracket syntax,
// which are the same map access here.
func objects(out *harness.Sink) error {
	sectionTitle(out, "Objects")

	you := newPerson("you", 24)
	out.Write(you["name"].String() + ", " + you["age"].String())

	you["name"] = str("Bilbo Baggins")
	out.Write(you["name"].String())

	key := "name"
	you[key] = str("Frodo Baggins")
	out.Write(you[key].String())
	return nil
}

// at reads an array element; out of range yields undefined instead of an error.
func at(arr []value, i int) value {
	if i < 0 || i >= len(arr) {
		return undefined
	}
	return arr[i]
}

// arrays: length is one more than the highest index.
func arrays(out *harness.Sink) error {
	sectionTitle(out, "Arrays")

	array := []value{number(0), number(1), number(2)}
	out.Print(len(array) == 3)
	out.Write(at(array, 200).String())

	for i := range array {
		out.Write(array[i].String())
	}

	elements := []int{}
	for i := 0; i < 3; i++ {
		elements = append(elements, i)
	}
	for _, e := range elements {
		out.Write(strconv.Itoa(e))
	}
	return nil
}
