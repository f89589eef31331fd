// Package starkfib is the public API over the Fibonacci STARK system
// implemented in internal/starkfib. It exposes the field, the proof
// artifact, and the three pipeline entry points (BuildProof,
// PopulateSampling, Verify) without exposing the algebra internals.
package starkfib

import (
	"github.com/starkfib/stark-fib/internal/starkfib/core"
	"github.com/starkfib/stark-fib/internal/starkfib/protocols"
	"github.com/starkfib/stark-fib/internal/starkfib/utils"
)

// FieldElement is an element of a prime field.
type FieldElement = core.FieldElement

// Field is a prime field F_p.
type Field = core.Field

// Proof is the verifier-visible artifact a prover emits.
type Proof = protocols.Proof

// SamplingData is the sampled-row portion of a Proof.
type SamplingData = protocols.SamplingData

// Config holds the parameters BuildProof and PopulateSampling need beyond
// the trace itself: LDE blowup, sample count, FRI target length, and a field
// modulus that Validate checks. The field a proof works in is the one the
// trace's elements belong to, not the one named by the modulus.
type Config = utils.Config

// DefaultPrimeField is the field this system is pinned to: p = 3*2^30 + 1.
var DefaultPrimeField = core.DefaultPrimeField

// DefaultConfig returns the configuration used by the Fibonacci demo.
func DefaultConfig() *Config {
	return utils.DefaultConfig()
}

// FibonacciTrace builds the 3-column example trace [F(n-2), F(n-1), F(n)]
// this system's demo and tests use, starting from F(0) = F(1) = a.
func FibonacciTrace(numSteps int, a *FieldElement) [][]*FieldElement {
	return protocols.FibonacciTrace(numSteps, a, nil)
}

// BuildProof runs the prover's pipeline up to (but not including) sampling:
// validate the trace, extend it, commit to the extension, build the
// composition and quotient polynomials, and fold the FRI layers. The only
// error it returns is an invalid Config; shape problems with the trace
// itself are programmer errors and panic (see Config.Validate).
func BuildProof(trace [][]*FieldElement, config *Config) (*Proof, error) {
	proof, err := protocols.BuildProof(trace, config)
	if err != nil {
		return nil, &StarkError{Code: ErrInvalidConfig, Message: "build proof", Cause: err}
	}
	return proof, nil
}

// PopulateSampling samples config.NumSamples rows from the trace's
// committed extension, using positions derived from the proof's own
// commitment, and attaches their values and Merkle proofs to proof.
func PopulateSampling(proof *Proof, trace [][]*FieldElement, config *Config) (*Proof, error) {
	populated, err := protocols.PopulateSampling(proof, trace, config)
	if err != nil {
		return nil, &StarkError{Code: ErrInvalidConfig, Message: "populate sampling", Cause: err}
	}
	return populated, nil
}

// Verify checks a proof end to end. It never panics on an invalid proof —
// invalidity is reported as false, not as an error.
func Verify(proof *Proof) bool {
	return protocols.Verify(proof)
}
