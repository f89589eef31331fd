package core

// EvaluationDomain is an ordered set of field points a_0, ..., a_{n-1}.
type EvaluationDomain struct {
	field  *Field
	points []*FieldElement
}

// NewLinearDomain builds the domain a_i = i for i in [0, n). n must be
// positive: a zero-size domain is a programmer error, not a valid empty
// domain.
func NewLinearDomain(field *Field, n int) *EvaluationDomain {
	if n <= 0 {
		panic("core: evaluation domain size must be positive")
	}
	points := make([]*FieldElement, n)
	for i := 0; i < n; i++ {
		points[i] = field.NewElementFromInt64(int64(i))
	}
	return &EvaluationDomain{field: field, points: points}
}

// Size returns the number of points in the domain.
func (d *EvaluationDomain) Size() int {
	return len(d.points)
}

// Element returns the i-th domain point.
func (d *EvaluationDomain) Element(i int) *FieldElement {
	return d.points[i]
}

// Elements returns a defensive copy of all domain points.
func (d *EvaluationDomain) Elements() []*FieldElement {
	out := make([]*FieldElement, len(d.points))
	copy(out, d.points)
	return out
}

// Field returns the field the domain lives over.
func (d *EvaluationDomain) Field() *Field {
	return d.field
}

// EvaluateVanishing computes Z_H(x) = prod (x - a_i), O(n) per call. Z_H
// vanishes exactly on the domain's own points.
func (d *EvaluationDomain) EvaluateVanishing(x *FieldElement) *FieldElement {
	acc := d.field.One()
	for _, a := range d.points {
		acc = acc.Mul(x.Sub(a))
	}
	return acc
}

// VanishingPolynomial builds Z_H(x) explicitly as a Polynomial via repeated
// multiplication. Used by the constraint builder to divide C(x) by Z_H(x).
func (d *EvaluationDomain) VanishingPolynomial() *Polynomial {
	result := NewPolynomial([]*FieldElement{d.field.One()}, d.field)
	for _, a := range d.points {
		term := NewPolynomial([]*FieldElement{a.Neg(), d.field.One()}, d.field)
		result = result.Mul(term)
	}
	return result
}
