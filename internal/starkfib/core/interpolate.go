package core

import "fmt"

// Point is an (x, y) sample used by Lagrange interpolation.
type Point struct {
	X *FieldElement
	Y *FieldElement
}

// NewPoint builds a Point.
func NewPoint(x, y *FieldElement) Point {
	return Point{X: x, Y: y}
}

// LagrangeInterpolation returns the unique polynomial of degree < len(points)
// passing through every given point, using field arithmetic throughout —
// never floating point, which fails at large coordinates. Zero points
// returns the zero polynomial. Duplicated x-coordinates are an error.
func LagrangeInterpolation(points []Point, field *Field) (*Polynomial, error) {
	if len(points) == 0 {
		return ZeroPolynomial(field), nil
	}
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			if points[i].X.Equals(points[j].X) {
				return nil, fmt.Errorf("core: duplicate x-coordinate %s in interpolation input", points[i].X)
			}
		}
	}

	result := ZeroPolynomial(field)
	for i, pi := range points {
		basis := NewPolynomial([]*FieldElement{field.One()}, field)
		denom := field.One()
		for j, pj := range points {
			if i == j {
				continue
			}
			// basis *= (x - x_j)
			term := NewPolynomial([]*FieldElement{pj.X.Neg(), field.One()}, field)
			basis = basis.Mul(term)
			denom = denom.Mul(pi.X.Sub(pj.X))
		}
		scale := pi.Y.Mul(denom.Inverse())
		result = result.Add(basis.MulScalar(scale))
	}
	return result, nil
}
