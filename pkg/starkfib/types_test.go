package starkfib

import "testing"

func TestFibonacciTraceShape(t *testing.T) {
	field := DefaultPrimeField
	trace := FibonacciTrace(8, field.NewElementFromInt64(1))

	if len(trace) != 8 {
		t.Fatalf("len(trace) = %d, want 8", len(trace))
	}
	for i, row := range trace {
		if len(row) != 3 {
			t.Fatalf("row %d has %d columns, want 3", i, len(row))
		}
	}
}

func TestFibonacciTraceRecurrence(t *testing.T) {
	field := DefaultPrimeField
	trace := FibonacciTrace(8, field.NewElementFromInt64(1))

	for s := 2; s < len(trace); s++ {
		residual := trace[s][2].Sub(trace[s][1]).Sub(trace[s][0])
		if !residual.IsZero() {
			t.Errorf("row %d: F(n)-F(n-1)-F(n-2) = %v, want 0", s, residual)
		}
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig() should be valid: %v", err)
	}
}

func TestDefaultPrimeFieldModulus(t *testing.T) {
	if DefaultPrimeField.Modulus().Int64() != 3221225473 {
		t.Errorf("DefaultPrimeField modulus = %v, want 3221225473", DefaultPrimeField.Modulus())
	}
}
