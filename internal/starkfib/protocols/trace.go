package protocols

import "github.com/starkfib/stark-fib/internal/starkfib/core"

// ValidateTrace checks the shape invariants a trace must satisfy before
// proof construction: non-empty, non-ragged rows. Both violations are
// programmer errors (spec §7.1: "ragged trace; zero trace size"), not
// reportable proof failures, so this panics rather than returning an error.
func ValidateTrace(trace [][]*core.FieldElement) {
	if len(trace) == 0 {
		panic("protocols: trace must have at least one row")
	}
	width := len(trace[0])
	if width == 0 {
		panic("protocols: trace rows must have at least one column")
	}
	for _, row := range trace {
		if len(row) != width {
			panic("protocols: ragged trace: row has a different column count than row 0")
		}
	}
}

// FibonacciTrace builds the example 3-column Fibonacci trace this system's
// demo uses: columns are [F(n-2), F(n-1), F(n)]. Row 0 is [0, a, a]; row 1
// is [a, a, a]; row n>=2 continues the recurrence F(n) = F(n-1) + F(n-2).
// This is explicitly an external-caller concern (spec §1: "example trace
// generators ... out of scope" for the core), kept here only as a shared
// helper for the demo and for tests.
func FibonacciTrace(numSteps int, a, _ *core.FieldElement) [][]*core.FieldElement {
	if numSteps <= 0 {
		panic("protocols: FibonacciTrace requires numSteps > 0")
	}
	field := a.Field()
	trace := make([][]*core.FieldElement, numSteps)
	trace[0] = []*core.FieldElement{field.Zero(), a, a}
	if numSteps == 1 {
		return trace
	}
	trace[1] = []*core.FieldElement{a, a, a}
	for i := 2; i < numSteps; i++ {
		prev := trace[i-1]
		trace[i] = []*core.FieldElement{prev[1], prev[2], prev[1].Add(prev[2])}
	}
	return trace
}
