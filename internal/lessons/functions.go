package lessons

import "github.com/roach88/jsreview/internal/harness"

// add sums any number of arguments, like a function reading `arguments`.
func add(args ...float64) float64 {
	sum := 0.0
	for _, a := range args {
		sum += a
	}
	return sum
}

// functions: variadic calls, apply, anonymous and named recursive functions.
func functions(out *harness.Sink) error {
	sectionTitle(out, "Functions")

	out.Write(formatNumber(add(3, 2, 1)))

	// add.apply(null, [4, 5, 6])
	total := add([]float64{4, 5, 6}...)
	out.Write(formatNumber(total))

	avg := func(args ...float64) float64 {
		return add(args...) / float64(len(args))
	}
	out.Write(formatNumber(avg(3, 2, 1)))

	// A function literal refers to itself through a variable declared first.
	var fibSeq func(a, b, n int) int
	fibSeq = func(a, b, n int) int {
		if n == 0 {
			return a + b
		}
		return fibSeq(b, a+b, n-1)
	}
	out.Print(fibSeq(1, 1, 5))
	return nil
}

// makeAdder captures x in the returned function's scope.
func makeAdder(x int) func(int) int {
	return func(y int) int {
		return x + y
	}
}

// closures: a closure is a function plus the scope it was created in.
func closures(out *harness.Sink) error {
	sectionTitle(out, "Closures")

	a := makeAdder(1)
	out.Print(a(6))
	return nil
}
