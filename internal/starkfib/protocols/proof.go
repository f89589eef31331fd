package protocols

import "github.com/starkfib/stark-fib/internal/starkfib/core"

// SamplingData holds the verifier-facing answers to the sampled positions of
// a proof: the row values at each sampled extended-domain index and the
// Merkle authentication path for that row.
type SamplingData struct {
	// SampleIndices are the sampled extended-domain positions.
	SampleIndices []int

	// SampleValues[i] holds the column values of the row at
	// SampleIndices[i].
	SampleValues [][]*core.FieldElement

	// MerkleProofs[i] is the authentication path for row SampleIndices[i],
	// as returned by core.MerkleTree.Proof.
	MerkleProofs [][]uint64
}

// Proof is the verifier-visible artifact a prover emits: StarkProof in
// spec's Data Model. It owns every polynomial, layer, and sampling datum
// produced during proof construction; the trace itself is not retained.
type Proof struct {
	// TraceCommitment is the Merkle root over extended-row leaf hashes.
	TraceCommitment uint64

	// TraceSize is the original (unextended) trace row count.
	TraceSize int

	// ExtendedSize is the padded Merkle leaf count (trace size * extension
	// factor, rounded up to a power of two).
	ExtendedSize int

	Field *core.Field

	// Domain is the original trace-domain evaluation domain H.
	Domain *core.EvaluationDomain

	Sampling SamplingData

	// FRILayers[0] is the layer-0 evaluation vector (padded to
	// ExtendedSize); each subsequent layer is half the length of the last.
	FRILayers [][]*core.FieldElement

	// FRIBetas are the folding challenges used to produce FRILayers[1:].
	FRIBetas []*core.FieldElement

	// C is the composition polynomial.
	C *core.Polynomial

	// Q is the quotient polynomial C/Z_H.
	Q *core.Polynomial
}

// IsPopulated reports whether sampling data has been filled in.
func (p *Proof) IsPopulated() bool {
	return len(p.Sampling.SampleIndices) > 0
}
