package core

import "testing"

func TestLinearDomainElements(t *testing.T) {
	field := DefaultPrimeField
	domain := NewLinearDomain(field, 5)
	if domain.Size() != 5 {
		t.Fatalf("Size() = %d, want 5", domain.Size())
	}
	for i := 0; i < 5; i++ {
		if got := domain.Element(i).Value().Int64(); got != int64(i) {
			t.Errorf("Element(%d) = %d, want %d", i, got, i)
		}
	}
}

func TestLinearDomainNonPositiveSizePanics(t *testing.T) {
	field := DefaultPrimeField
	defer func() {
		if recover() == nil {
			t.Fatal("NewLinearDomain(0) should panic")
		}
	}()
	NewLinearDomain(field, 0)
}

func TestVanishingPolynomialVanishesOnDomain(t *testing.T) {
	field := DefaultPrimeField
	domain := NewLinearDomain(field, 6)
	z := domain.VanishingPolynomial()
	for _, a := range domain.Elements() {
		if !z.Eval(a).IsZero() {
			t.Errorf("Z_H(%v) = %v, want 0", a, z.Eval(a))
		}
	}
}

func TestVanishingPolynomialNonzeroOffDomain(t *testing.T) {
	field := DefaultPrimeField
	domain := NewLinearDomain(field, 6)
	off := field.NewElementFromInt64(100)
	if z := domain.EvaluateVanishing(off); z.IsZero() {
		t.Error("Z_H(100) should not be zero for a domain of {0,...,5}")
	}
}

func TestVanishingPolynomialMatchesEvaluateVanishing(t *testing.T) {
	field := DefaultPrimeField
	domain := NewLinearDomain(field, 4)
	z := domain.VanishingPolynomial()
	for _, x := range []int64{0, 1, 7, 42, -3} {
		e := field.NewElementFromInt64(x)
		if got, want := z.Eval(e), domain.EvaluateVanishing(e); !got.Equals(want) {
			t.Errorf("Z_H.Eval(%d) = %v, want %v", x, got, want)
		}
	}
}

func TestVanishingPolynomialDegreeEqualsDomainSize(t *testing.T) {
	field := DefaultPrimeField
	domain := NewLinearDomain(field, 7)
	if got := domain.VanishingPolynomial().Degree(); got != 7 {
		t.Errorf("deg(Z_H) = %d, want 7", got)
	}
}
