// Package starkfib is an educational zkSTARK prover and verifier for a
// single fixed statement: "this trace is r steps of the Fibonacci
// recurrence F(n) = F(n-1) + F(n-2) over a prime field."
//
// # Quick Start
//
//	field := starkfib.DefaultPrimeField
//	trace := starkfib.FibonacciTrace(8, field.NewElementFromInt64(1))
//
//	config := starkfib.DefaultConfig()
//	proof, err := starkfib.BuildProof(trace, config)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	proof, err = starkfib.PopulateSampling(proof, trace, config)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	if starkfib.Verify(proof) {
//		fmt.Println("proof is valid")
//	}
//
// # Architecture
//
// - pkg/starkfib/: public API (this package)
// - internal/starkfib/core/: field, polynomial, interpolation, evaluation
// domains, the Fiat-Shamir transcript, and the Merkle commitment
// - internal/starkfib/protocols/: the trace model, low-degree extension,
// the Fibonacci constraint builder, FRI folding, and the prover/verifier
// pipelines built from those primitives
//
// Every programmer error (a ragged trace, dividing by a zero polynomial,
// inverting zero, an odd-length FRI fold) panics rather than returning an
// error; only an invalid proof is reported as a plain false from Verify,
// and only an invalid Config is reported as an error from BuildProof and
// PopulateSampling.
//
// # References
//
// - STARK paper: https://eprint.iacr.org/2018/046
// - FRI paper: https://eccc.weizmann.ac.il/report/2017/134/
package starkfib
