package protocols

import (
	"log"

	"github.com/starkfib/stark-fib/internal/starkfib/core"
	"github.com/starkfib/stark-fib/internal/starkfib/utils"
)

// extendAndCommit runs the low-degree extension and builds the Merkle tree
// over its rows. Both BuildProof and PopulateSampling need this same
// artifact and must derive it identically from the trace, since
// PopulateSampling does not receive BuildProof's intermediate state.
func extendAndCommit(trace [][]*core.FieldElement, extensionFactor int) ([][]*core.FieldElement, *core.EvaluationDomain, *core.MerkleTree) {
	columns, originalDomain := ExtendTrace(trace, extensionFactor)
	extendedSize := len(columns[0])
	leaves := make([]uint64, extendedSize)
	for row := 0; row < extendedSize; row++ {
		values := make([]*core.FieldElement, len(columns))
		for col := range columns {
			values[col] = columns[col][row]
		}
		leaves[row] = core.HashRow(values)
	}
	return columns, originalDomain, core.NewMerkleTree(leaves)
}

// BuildProof runs the prover's pipeline: validate the trace, extend it,
// commit to the extension, build the composition and quotient polynomials,
// and derive FRI layers from the committed extension. It does not fill in
// sampling data; call PopulateSampling afterwards for that.
func BuildProof(trace [][]*core.FieldElement, config *utils.Config) (*Proof, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	ValidateTrace(trace)
	field := trace[0][0].Field()

	columns, originalDomain, tree := extendAndCommit(trace, config.ExtensionFactor)
	commitment := tree.Root()

	c := BuildComposition(trace, originalDomain)
	zh := originalDomain.VanishingPolynomial()
	q, remainder := DivideByVanishing(c, zh)
	if !remainder.IsZero() {
		log.Printf("protocols: warning: C(x)/Z_H(x) leaves a non-zero remainder; the trace breaks the recurrence")
	}

	// FRI folds the last trace column's extended evaluations, padded with
	// zeros to the Merkle leaf count, per the original educational prover:
	// it is the column carrying F(n), the value a correct trace actually
	// needs to be low-degree.
	extendedLast := columns[len(columns)-1]
	lastColumn := make([]*core.FieldElement, tree.LeafCount())
	for i := range lastColumn {
		if i < len(extendedLast) {
			lastColumn[i] = extendedLast[i]
		} else {
			lastColumn[i] = field.Zero()
		}
	}
	numRounds := numFoldingRounds(len(lastColumn), config.FRITargetLength)
	betas := DeriveFRIBetas(commitment, numRounds, field)
	layers := FoldUntil(lastColumn, betas, config.FRITargetLength)

	return &Proof{
		TraceCommitment: commitment,
		TraceSize:       len(trace),
		ExtendedSize:    tree.LeafCount(),
		Field:           field,
		Domain:          originalDomain,
		FRILayers:       layers,
		FRIBetas:        betas,
		C:               c,
		Q:               q,
	}, nil
}

// numFoldingRounds counts how many halvings take n down to target. Mirrors
// the check FoldUntil performs, so BuildProof can request exactly the right
// number of betas up front instead of over- or under-deriving them.
func numFoldingRounds(n, target int) int {
	rounds := 0
	for n > target {
		n /= 2
		rounds++
	}
	return rounds
}

// PopulateSampling re-derives the committed extension from trace, samples
// config.NumSamples rows using points derived from the proof's own
// commitment, and attaches their values and Merkle proofs to proof.
// Re-deriving (rather than threading state from BuildProof) means a proof's
// sampling data is always reproducible from the trace and the proof alone.
func PopulateSampling(proof *Proof, trace [][]*core.FieldElement, config *utils.Config) (*Proof, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	columns, _, tree := extendAndCommit(trace, config.ExtensionFactor)
	if tree.Root() != proof.TraceCommitment {
		panic("protocols: PopulateSampling trace does not match proof's commitment")
	}

	indices := DeriveSamplePoints(proof.TraceCommitment, tree.LeafCount(), config.NumSamples, proof.Field)
	values := make([][]*core.FieldElement, len(indices))
	proofs := make([][]uint64, len(indices))
	for i, idx := range indices {
		row := make([]*core.FieldElement, len(columns))
		for col := range columns {
			row[col] = columns[col][idx]
		}
		values[i] = row
		merkleProof, ok := tree.Proof(idx)
		if !ok {
			panic("protocols: sample index out of range for committed tree")
		}
		proofs[i] = merkleProof
	}

	proof.Sampling = SamplingData{
		SampleIndices: indices,
		SampleValues:  values,
		MerkleProofs:  proofs,
	}
	return proof, nil
}
