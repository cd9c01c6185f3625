package lessons

import (
	"math"
	"strconv"

	"github.com/roach88/jsreview/internal/harness"
)

// rule is the banner line printed around section titles.
const rule = "***************************************"

// sectionTitle writes the three-line banner that opens most lessons.
func sectionTitle(out *harness.Sink, title string) {
	out.Write(rule)
	out.Write(title)
	out.Write(rule)
}

// kind enumerates the handful of JavaScript value kinds the lessons talk about.
type kind int

const (
	undefinedKind kind = iota
	nullKind
	boolKind
	numberKind
	stringKind
)

// value is a tagged JavaScript value. The zero value is undefined.
type value struct {
	kind kind
	b    bool
	n    float64
	s    string
}

var (
	undefined = value{}
	null      = value{kind: nullKind}
)

func boolean(b bool) value { return value{kind: boolKind, b: b} }
func number(n float64) value { return value{kind: numberKind, n: n} }
func str(s string) value { return value{kind: stringKind, s: s} }

// String renders v the way console.log prints it.
func (v value) String() string {
	switch v.kind {
	case nullKind:
		return "null"
	case boolKind:
		return strconv.FormatBool(v.b)
	case numberKind:
		return formatNumber(v.n)
	case stringKind:
		return v.s
	default:
		return "undefined"
	}
}

// truthy applies the Boolean() conversion: false, 0, "", NaN, null and
// undefined are false, everything else is true.
func (v value) truthy() bool {
	switch v.kind {
	case boolKind:
		return v.b
	case numberKind:
		return v.n != 0 && !math.IsNaN(v.n)
	case stringKind:
		return v.s != ""
	default:
		return false
	}
}

// strictEqual is ===: same kind and same payload, NaN never equal.
func strictEqual(a, b value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case boolKind:
		return a.b == b.b
	case numberKind:
		return a.n == b.n
	case stringKind:
		return a.s == b.s
	default:
		return true
	}
}

// looseEqual is == for the operand pairs the operators lesson uses.
// A boolean compared with a number is first converted to 0 or 1.
func looseEqual(a, b value) bool {
	if a.kind == boolKind && b.kind == numberKind {
		return looseEqual(number(boolToNumber(a.b)), b)
	}
	if a.kind == numberKind && b.kind == boolKind {
		return looseEqual(a, number(boolToNumber(b.b)))
	}
	return strictEqual(a, b)
}

func boolToNumber(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// formatNumber prints a float64 like Number.prototype.toString for the
// magnitudes used here.
func formatNumber(n float64) string {
	switch {
	case math.IsNaN(n):
		return "NaN"
	case math.IsInf(n, 1):
		return "Infinity"
	case math.IsInf(n, -1):
		return "-Infinity"
	default:
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
}

// parseInt returns NaN when s is not an integer in base.
func parseInt(s string, base int) float64 {
	n, err := strconv.ParseInt(s, base, 64)
	if err != nil {
		return math.NaN()
	}
	return float64(n)
}

// parseFloat returns NaN when s is not a decimal number.
func parseFloat(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return f
}

func isFinite(n float64) bool {
	return !math.IsNaN(n) && !math.IsInf(n, 0)
}
