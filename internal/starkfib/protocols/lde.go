package protocols

import "github.com/starkfib/stark-fib/internal/starkfib/core"

// ExtendTrace performs the low-degree extension: for each column, interpolate
// its r original samples at x=0..r-1 into a degree-<r polynomial, then
// evaluate that polynomial over the extended domain 0..r*extensionFactor-1.
// Returns c columns of length r*extensionFactor each; the first r values of
// every extended column equal the original column values.
func ExtendTrace(trace [][]*core.FieldElement, extensionFactor int) ([][]*core.FieldElement, *core.EvaluationDomain) {
	ValidateTrace(trace)
	if extensionFactor <= 1 {
		panic("protocols: extension factor must be greater than 1")
	}

	r := len(trace)
	c := len(trace[0])
	field := trace[0][0].Field()
	original := core.NewLinearDomain(field, r)
	extended := core.NewLinearDomain(field, r*extensionFactor)

	columns := make([][]*core.FieldElement, c)
	for col := 0; col < c; col++ {
		points := make([]core.Point, r)
		for row := 0; row < r; row++ {
			points[row] = core.NewPoint(original.Element(row), trace[row][col])
		}
		poly, err := core.LagrangeInterpolation(points, field)
		if err != nil {
			panic("protocols: unexpected duplicate x-coordinate in trace domain: " + err.Error())
		}
		evals := make([]*core.FieldElement, extended.Size())
		for i := 0; i < extended.Size(); i++ {
			evals[i] = poly.Eval(extended.Element(i))
		}
		columns[col] = evals
	}
	return columns, original
}
