package lessons

import (
	"math"
	"strings"
	"unicode/utf16"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/roach88/jsreview/internal/harness"
)

// numbers: every JavaScript number is an IEEE 754 double.
func numbers(out *harness.Sink) error {
	sectionTitle(out, "Numbers")

	a, b := 0.1, 0.2
	out.Writef("0.1 + 0.2 = %s != 0.3", formatNumber(a+b))

	radius := 1.0
	diameter := math.Pi * radius * radius
	out.Write("diameter = " + formatNumber(diameter))

	// Always pass the base.
	out.Write(formatNumber(parseInt("123", 10)))
	out.Write(formatNumber(parseInt("11", 2)))

	// parseFloat is always base 10.
	out.Write(formatNumber(parseFloat("3.14")))

	notANumber := parseInt("hello", 10)
	out.Write(formatNumber(notANumber))
	out.Write(formatNumber(notANumber + 5))
	out.Print(math.IsNaN(notANumber))

	zero := 0.0
	out.Write(formatNumber(1 / zero))
	out.Write(formatNumber(-1 / zero))
	out.Print(isFinite(1 / zero))
	return nil
}

// upper converts like String.prototype.toUpperCase (locale independent).
var upper = cases.Upper(language.Und)

// jsStrings: strings are sequences of UTF-16 code units.
func jsStrings(out *harness.Sink) error {
	sectionTitle(out, "Strings")

	hello := "Hello"
	out.Print(len(utf16.Encode([]rune(hello))))
	out.Write(string([]rune(hello)[1]))
	out.Write(strings.Replace("Hello, world!", "Hello", "Goodbye", 1))
	out.Write(upper.String("hello"))
	return nil
}

// otherTypes: null vs undefined, and Boolean() conversion.
func otherTypes(out *harness.Sink) error {
	sectionTitle(out, "Other Types")

	var x value
	out.Print(strictEqual(x, null))
	out.Print(strictEqual(x, undefined))

	falsy := []value{boolean(false), number(0), str(""), number(math.NaN()), null, undefined}
	for _, v := range falsy {
		out.Print(v.truthy())
	}

	out.Print(number(123).truthy())
	return nil
}

// variables: var is function scoped, so there is nothing to print. Go
// declarations are block scoped instead.
func variables(out *harness.Sink) error {
	sectionTitle(out, "Variables")
	return nil
}

// operators: == coerces, === does not.
func operators(out *harness.Sink) error {
	sectionTitle(out, "Operators")

	out.Print(looseEqual(str("dog"), str("dog")))
	out.Print(looseEqual(number(1), boolean(true)))

	out.Print(strictEqual(str("dog"), str("dog")))
	out.Print(strictEqual(number(1), boolean(true)))
	out.Print(strictEqual(boolean(true), boolean(true)))

	out.Print(!strictEqual(number(1), boolean(true)))
	return nil
}

// and returns a when it is falsy, otherwise the value produced by b.
// b is only evaluated when needed, like the && operator.
func and(a value, b func() value) value {
	if !a.truthy() {
		return a
	}
	return b()
}

// or returns a when it is truthy, otherwise b.
func or(a, b value) value {
	if a.truthy() {
		return a
	}
	return b
}

// controlStructures: && and || short-circuit and return an operand.
func controlStructures(out *harness.Sink) error {
	sectionTitle(out, "Control Structures")

	var o value
	name := and(o, func() value {
		panic("getName called on undefined")
	})
	out.Write("name = " + name.String())

	otherName := or(name, str("Billy Bob Thorton"))
	out.Write("otherName = " + otherName.String())

	age := 10
	underAge := "yes"
	if age >= 18 {
		underAge = "no"
	}
	out.Write("underAge = " + underAge)
	return nil
}
