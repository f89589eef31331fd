package core

import (
	"fmt"
	"strings"
)

// Polynomial is a dense coefficient-vector polynomial over a field, constant
// term first. The zero polynomial is represented with a single zero
// coefficient; NewPolynomial trims trailing zeros down to that canonical
// form.
type Polynomial struct {
	coefficients []*FieldElement
	field        *Field
}

// NewPolynomial trims trailing zero coefficients and returns a Polynomial.
// An empty input is treated as the zero polynomial over field.
func NewPolynomial(coefficients []*FieldElement, field *Field) *Polynomial {
	trimmed := trimTrailingZeros(coefficients)
	if len(trimmed) == 0 {
		trimmed = []*FieldElement{field.Zero()}
	}
	return &Polynomial{coefficients: trimmed, field: field}
}

func trimTrailingZeros(coefficients []*FieldElement) []*FieldElement {
	end := len(coefficients)
	for end > 0 && coefficients[end-1].IsZero() {
		end--
	}
	out := make([]*FieldElement, end)
	copy(out, coefficients[:end])
	return out
}

// ZeroPolynomial returns the zero polynomial over field.
func ZeroPolynomial(field *Field) *Polynomial {
	return &Polynomial{coefficients: []*FieldElement{field.Zero()}, field: field}
}

// Field returns the field this polynomial is defined over.
func (p *Polynomial) Field() *Field {
	return p.field
}

// Degree returns the formal degree: the greatest index with a non-zero
// coefficient, or 0 for the zero polynomial.
func (p *Polynomial) Degree() int {
	for i := len(p.coefficients) - 1; i > 0; i-- {
		if !p.coefficients[i].IsZero() {
			return i
		}
	}
	return 0
}

// IsZero reports whether the polynomial is identically zero.
func (p *Polynomial) IsZero() bool {
	for _, c := range p.coefficients {
		if !c.IsZero() {
			return false
		}
	}
	return true
}

// Coefficient returns the coefficient at index i, or zero if i is out of
// range.
func (p *Polynomial) Coefficient(i int) *FieldElement {
	if i < 0 || i >= len(p.coefficients) {
		return p.field.Zero()
	}
	return p.coefficients[i]
}

// Coefficients returns a defensive copy of the coefficient vector.
func (p *Polynomial) Coefficients() []*FieldElement {
	out := make([]*FieldElement, len(p.coefficients))
	copy(out, p.coefficients)
	return out
}

// LeadingCoefficient returns the coefficient of the highest-degree term.
func (p *Polynomial) LeadingCoefficient() *FieldElement {
	return p.coefficients[p.Degree()]
}

// LeadingTerm returns a polynomial with every coefficient zero except the
// leading one.
func (p *Polynomial) LeadingTerm() *Polynomial {
	deg := p.Degree()
	coeffs := make([]*FieldElement, deg+1)
	for i := range coeffs {
		coeffs[i] = p.field.Zero()
	}
	coeffs[deg] = p.coefficients[deg]
	return NewPolynomial(coeffs, p.field)
}

// Eval evaluates the polynomial at x via Horner's method.
func (p *Polynomial) Eval(x *FieldElement) *FieldElement {
	result := p.field.Zero()
	for i := len(p.coefficients) - 1; i >= 0; i-- {
		result = result.Mul(x).Add(p.coefficients[i])
	}
	return result
}

// Add returns p+other, padding the shorter operand with zeros.
func (p *Polynomial) Add(other *Polynomial) *Polynomial {
	n := max(len(p.coefficients), len(other.coefficients))
	out := make([]*FieldElement, n)
	for i := 0; i < n; i++ {
		out[i] = p.Coefficient(i).Add(other.Coefficient(i))
	}
	return NewPolynomial(out, p.field)
}

// Sub returns p-other, padding the shorter operand with zeros.
func (p *Polynomial) Sub(other *Polynomial) *Polynomial {
	n := max(len(p.coefficients), len(other.coefficients))
	out := make([]*FieldElement, n)
	for i := 0; i < n; i++ {
		out[i] = p.Coefficient(i).Sub(other.Coefficient(i))
	}
	return NewPolynomial(out, p.field)
}

// MulScalar multiplies every coefficient by scalar.
func (p *Polynomial) MulScalar(scalar *FieldElement) *Polynomial {
	out := make([]*FieldElement, len(p.coefficients))
	for i, c := range p.coefficients {
		out[i] = c.Mul(scalar)
	}
	return NewPolynomial(out, p.field)
}

// Mul is schoolbook O(d*d') polynomial multiplication.
func (p *Polynomial) Mul(other *Polynomial) *Polynomial {
	if p.IsZero() || other.IsZero() {
		return ZeroPolynomial(p.field)
	}
	out := make([]*FieldElement, len(p.coefficients)+len(other.coefficients)-1)
	for i := range out {
		out[i] = p.field.Zero()
	}
	for i, a := range p.coefficients {
		if a.IsZero() {
			continue
		}
		for j, b := range other.coefficients {
			out[i+j] = out[i+j].Add(a.Mul(b))
		}
	}
	return NewPolynomial(out, p.field)
}

// Pow raises p to a non-negative integer exponent by repeated squaring.
func (p *Polynomial) Pow(exponent int) *Polynomial {
	if exponent < 0 {
		panic("core: negative polynomial exponent")
	}
	result := NewPolynomial([]*FieldElement{p.field.One()}, p.field)
	base := p
	for exponent > 0 {
		if exponent&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
		exponent >>= 1
	}
	return result
}

// Div performs polynomial long division: p = quotient*divisor + remainder
// with deg(remainder) < deg(divisor). It panics when the divisor is
// identically zero or when deg(p) < deg(divisor) — both are programmer
// errors (spec: "division fails when the divisor is identically zero or
// when deg(dividend) < deg(divisor)"), never a recoverable result, and this
// holds even when p is the zero polynomial.
func (p *Polynomial) Div(divisor *Polynomial) (quotient, remainder *Polynomial) {
	if divisor.IsZero() {
		panic("core: division by zero polynomial")
	}
	if p.Degree() < divisor.Degree() {
		panic("core: invalid division: degree(dividend) < degree(divisor)")
	}

	remCoeffs := p.Coefficients()
	divDeg := divisor.Degree()
	leadInv := divisor.LeadingCoefficient().Inverse()
	quotCoeffs := make([]*FieldElement, p.Degree()-divDeg+1)

	for shift := p.Degree() - divDeg; shift >= 0; shift-- {
		curDeg := shift + divDeg
		curLead := elementAt(remCoeffs, curDeg, p.field)
		qCoeff := curLead.Mul(leadInv)
		quotCoeffs[shift] = qCoeff
		if qCoeff.IsZero() {
			continue
		}
		for j := 0; j <= divDeg; j++ {
			idx := shift + j
			remCoeffs[idx] = elementAt(remCoeffs, idx, p.field).Sub(qCoeff.Mul(divisor.Coefficient(j)))
		}
	}

	return NewPolynomial(quotCoeffs, p.field), NewPolynomial(remCoeffs, p.field)
}

func elementAt(coeffs []*FieldElement, i int, field *Field) *FieldElement {
	if i < 0 || i >= len(coeffs) {
		return field.Zero()
	}
	return coeffs[i]
}

// String renders the polynomial in descending-degree form with canonical
// coefficient values joined by "+", e.g. "3x^2+5x+1".
func (p *Polynomial) String() string {
	var b strings.Builder
	first := true
	for i := len(p.coefficients) - 1; i >= 0; i-- {
		c := p.coefficients[i]
		if c.IsZero() && !(i == 0 && first) {
			continue
		}
		if !first {
			b.WriteString("+")
		}
		first = false
		switch i {
		case 0:
			fmt.Fprintf(&b, "%s", c)
		case 1:
			fmt.Fprintf(&b, "%sx", c)
		default:
			fmt.Fprintf(&b, "%sx^%d", c, i)
		}
	}
	return b.String()
}
