package protocols

import "github.com/starkfib/stark-fib/internal/starkfib/core"

// BuildComposition builds the Fibonacci-specific composition polynomial
// C(x): it vanishes on the trace domain H = {0, ..., r-1} exactly when the
// trace obeys F(s) = F(s-1) + F(s-2) for every s >= 2. Column layout is
// fixed: [F(n-2), F(n-1), F(n)] (see FibonacciTrace), so the residual at row
// s is trace[s][2] - trace[s][1] - trace[s][0]; residuals at s=0 and s=1 are
// defined to be zero (there is no recurrence to check at the boundary).
func BuildComposition(trace [][]*core.FieldElement, domain *core.EvaluationDomain) *core.Polynomial {
	ValidateTrace(trace)
	field := trace[0][0].Field()
	points := make([]core.Point, len(trace))
	for s, row := range trace {
		var residual *core.FieldElement
		if s < 2 {
			residual = field.Zero()
		} else {
			residual = row[2].Sub(row[1]).Sub(row[0])
		}
		points[s] = core.NewPoint(domain.Element(s), residual)
	}
	c, err := core.LagrangeInterpolation(points, field)
	if err != nil {
		panic("protocols: unexpected duplicate trace-domain point: " + err.Error())
	}
	return c
}

// DivideByVanishing divides the composition polynomial by the trace
// domain's vanishing polynomial, returning the quotient Q and the
// remainder. By construction C is interpolated over the same r points as
// Z_H's r roots, so deg(C) <= r-1 < deg(Z_H) = r whenever C is not
// identically zero — this is not the "invalid division" programmer error
// core.Polynomial.Div guards against (that guard protects the
// general-purpose API scenario 3 in spec §8 exercises), it is the expected
// shape of this one quotient computation. A correct trace makes C the zero
// polynomial, so the quotient and remainder are both exactly zero; an
// incorrect trace makes the remainder C itself, reported as a warning by
// the prover rather than treated as fatal (spec §4.8).
func DivideByVanishing(c *core.Polynomial, z *core.Polynomial) (quotient, remainder *core.Polynomial) {
	if z.IsZero() {
		panic("protocols: vanishing polynomial must not be zero")
	}
	if c.IsZero() {
		return core.ZeroPolynomial(c.Field()), core.ZeroPolynomial(c.Field())
	}
	if c.Degree() < z.Degree() {
		return core.ZeroPolynomial(c.Field()), c
	}
	return c.Div(z)
}
