package starkfib

import "testing"

func TestBuildAndVerifyValidFibonacciProof(t *testing.T) {
	field := DefaultPrimeField
	trace := FibonacciTrace(8, field.NewElementFromInt64(1))
	config := DefaultConfig()

	proof, err := BuildProof(trace, config)
	if err != nil {
		t.Fatalf("BuildProof failed: %v", err)
	}
	proof, err = PopulateSampling(proof, trace, config)
	if err != nil {
		t.Fatalf("PopulateSampling failed: %v", err)
	}

	if !Verify(proof) {
		t.Fatal("Verify() = false, want true for a valid Fibonacci trace")
	}
}

func TestVerifyRejectsTamperedTrace(t *testing.T) {
	field := DefaultPrimeField
	trace := FibonacciTrace(8, field.NewElementFromInt64(1))
	config := DefaultConfig()

	// Break the recurrence at an interior row: F(n) no longer equals
	// F(n-1) + F(n-2).
	trace[4][2] = trace[4][2].Add(field.One())

	proof, err := BuildProof(trace, config)
	if err != nil {
		t.Fatalf("BuildProof failed: %v", err)
	}
	proof, err = PopulateSampling(proof, trace, config)
	if err != nil {
		t.Fatalf("PopulateSampling failed: %v", err)
	}

	if Verify(proof) {
		t.Fatal("Verify() = true, want false for a tampered trace")
	}
}

func TestVerifyRejectsUnpopulatedProof(t *testing.T) {
	field := DefaultPrimeField
	trace := FibonacciTrace(8, field.NewElementFromInt64(1))
	config := DefaultConfig()

	proof, err := BuildProof(trace, config)
	if err != nil {
		t.Fatalf("BuildProof failed: %v", err)
	}

	if Verify(proof) {
		t.Fatal("Verify() = true, want false for a proof with no sampling data")
	}
}

func TestBuildProofRejectsInvalidConfig(t *testing.T) {
	field := DefaultPrimeField
	trace := FibonacciTrace(8, field.NewElementFromInt64(1))
	config := DefaultConfig()
	config.ExtensionFactor = 1

	if _, err := BuildProof(trace, config); err == nil {
		t.Fatal("BuildProof with an invalid config should return an error")
	}
}
