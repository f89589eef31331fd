package core

import (
	"fmt"
	"math/big"
)

// Field is a prime field F_p, represented by its modulus alone.
type Field struct {
	modulus *big.Int
}

// FieldElement is a value paired with the field it belongs to. The value is
// always kept in canonical form: 0 <= value < modulus.
type FieldElement struct {
	field *Field
	value *big.Int
}

// DefaultPrimeField is the field this system is pinned to: p = 3*2^30 + 1.
var DefaultPrimeField, _ = NewFieldFromUint64(3221225473)

// NewField builds a field from an arbitrary prime modulus. The modulus is
// not checked for primality; callers are trusted to pass a prime.
func NewField(modulus *big.Int) (*Field, error) {
	if modulus == nil || modulus.Sign() <= 0 {
		return nil, fmt.Errorf("core: field modulus must be positive")
	}
	return &Field{modulus: new(big.Int).Set(modulus)}, nil
}

// NewFieldFromUint64 builds a field from a uint64 modulus.
func NewFieldFromUint64(modulus uint64) (*Field, error) {
	return NewField(new(big.Int).SetUint64(modulus))
}

// Modulus returns a copy of the field's prime.
func (f *Field) Modulus() *big.Int {
	return new(big.Int).Set(f.modulus)
}

// Equals reports whether two fields share the same modulus.
func (f *Field) Equals(other *Field) bool {
	if f == nil || other == nil {
		return f == other
	}
	return f.modulus.Cmp(other.modulus) == 0
}

// Zero returns the additive identity of the field.
func (f *Field) Zero() *FieldElement {
	return &FieldElement{field: f, value: big.NewInt(0)}
}

// One returns the multiplicative identity of the field.
func (f *Field) One() *FieldElement {
	return &FieldElement{field: f, value: big.NewInt(1)}
}

// NewElement reduces value mod the field's prime and returns the canonical
// element. Go's big.Int.Mod already returns a non-negative result for a
// positive modulus, so no extra normalization is needed here.
func (f *Field) NewElement(value *big.Int) *FieldElement {
	v := new(big.Int).Mod(value, f.modulus)
	return &FieldElement{field: f, value: v}
}

// NewElementFromInt64 is a convenience wrapper over NewElement.
func (f *Field) NewElementFromInt64(value int64) *FieldElement {
	return f.NewElement(big.NewInt(value))
}

// NewElementFromUint64 is a convenience wrapper over NewElement.
func (f *Field) NewElementFromUint64(value uint64) *FieldElement {
	return f.NewElement(new(big.Int).SetUint64(value))
}

// Field returns the field this element belongs to.
func (e *FieldElement) Field() *Field {
	return e.field
}

// Value returns a copy of the element's canonical value.
func (e *FieldElement) Value() *big.Int {
	return new(big.Int).Set(e.value)
}

// mustSameField panics when two elements do not share a field. Mixing
// primes is a programmer error, never a reportable proof failure.
func mustSameField(a, b *FieldElement) {
	if !a.field.Equals(b.field) {
		panic("core: field elements belong to different fields")
	}
}

// Add returns a+b mod p.
func (a *FieldElement) Add(b *FieldElement) *FieldElement {
	mustSameField(a, b)
	sum := new(big.Int).Add(a.value, b.value)
	sum.Mod(sum, a.field.modulus)
	return &FieldElement{field: a.field, value: sum}
}

// Sub returns a-b mod p, pre-adding p so intermediate values never go
// negative.
func (a *FieldElement) Sub(b *FieldElement) *FieldElement {
	mustSameField(a, b)
	diff := new(big.Int).Add(a.value, a.field.modulus)
	diff.Sub(diff, b.value)
	diff.Mod(diff, a.field.modulus)
	return &FieldElement{field: a.field, value: diff}
}

// Mul returns a*b mod p.
func (a *FieldElement) Mul(b *FieldElement) *FieldElement {
	mustSameField(a, b)
	prod := new(big.Int).Mul(a.value, b.value)
	prod.Mod(prod, a.field.modulus)
	return &FieldElement{field: a.field, value: prod}
}

// Neg returns p-value mod p.
func (a *FieldElement) Neg() *FieldElement {
	if a.value.Sign() == 0 {
		return a.field.Zero()
	}
	n := new(big.Int).Sub(a.field.modulus, a.value)
	return &FieldElement{field: a.field, value: n}
}

// Pow raises a to the exponent e using square-and-multiply. A naive
// repeated-multiplication loop is a defect for the large exponents
// Inverse needs (e = p-2); this implementation is O(log e).
func (a *FieldElement) Pow(e *big.Int) *FieldElement {
	if e.Sign() == 0 {
		return a.field.One()
	}
	result := a.field.One()
	base := a
	exp := new(big.Int).Set(e)
	zero := big.NewInt(0)
	two := big.NewInt(2)
	for exp.Cmp(zero) > 0 {
		if new(big.Int).And(exp, big.NewInt(1)).Sign() != 0 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
		exp.Div(exp, two)
	}
	return result
}

// Inverse returns the multiplicative inverse of a, computed as
// a^(p-2) mod p (Fermat's little theorem). Calling this on the zero element
// is undefined per spec and panics — callers must check IsZero first.
func (a *FieldElement) Inverse() *FieldElement {
	if a.value.Sign() == 0 {
		panic("core: inverse of zero is undefined")
	}
	pMinus2 := new(big.Int).Sub(a.field.modulus, big.NewInt(2))
	return a.Pow(pMinus2)
}

// Div returns a * b^-1.
func (a *FieldElement) Div(b *FieldElement) *FieldElement {
	mustSameField(a, b)
	return a.Mul(b.Inverse())
}

// IsZero reports whether the element is the additive identity.
func (a *FieldElement) IsZero() bool {
	return a.value.Sign() == 0
}

// IsOne reports whether the element is the multiplicative identity.
func (a *FieldElement) IsOne() bool {
	return a.value.Cmp(big.NewInt(1)) == 0
}

// Equals compares both the field and the canonical value.
func (a *FieldElement) Equals(b *FieldElement) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.field.Equals(b.field) && a.value.Cmp(b.value) == 0
}

// Uint64 returns the canonical value as a uint64. Valid for every field this
// system uses, whose modulus always fits in 64 bits.
func (a *FieldElement) Uint64() uint64 {
	return a.value.Uint64()
}

// Hash feeds the element's canonical value through the system's toy hash.
func (a *FieldElement) Hash() uint64 {
	return Hash(a.Uint64())
}

// String renders the element's value.
func (a *FieldElement) String() string {
	return a.value.String()
}
