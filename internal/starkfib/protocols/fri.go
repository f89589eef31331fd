package protocols

import "github.com/starkfib/stark-fib/internal/starkfib/core"

// FoldOnce halves an evaluation vector: fold(values)[i] = values[i] +
// beta*values[i+n/2]. Panics if values has odd length, matching the
// original prover's fold_once (spec: FRI folding is defined only on
// even-length vectors).
func FoldOnce(values []*core.FieldElement, beta *core.FieldElement) []*core.FieldElement {
	n := len(values)
	if n%2 != 0 {
		panic("protocols: FoldOnce requires an even-length vector")
	}
	half := n / 2
	folded := make([]*core.FieldElement, half)
	for i := 0; i < half; i++ {
		folded[i] = values[i].Add(beta.Mul(values[i+half]))
	}
	return folded
}

// FoldUntil repeats FoldOnce, consuming one beta per round, until the
// vector reaches targetLen. Panics if there are not enough betas to reach
// targetLen, or if targetLen does not evenly divide the starting length by
// a power of two.
func FoldUntil(values []*core.FieldElement, betas []*core.FieldElement, targetLen int) [][]*core.FieldElement {
	if targetLen <= 0 {
		panic("protocols: FoldUntil requires a positive target length")
	}
	layers := make([][]*core.FieldElement, 0, len(betas)+1)
	layers = append(layers, values)
	current := values
	round := 0
	for len(current) > targetLen {
		if round >= len(betas) {
			panic("protocols: FoldUntil ran out of betas before reaching the target length")
		}
		current = FoldOnce(current, betas[round])
		layers = append(layers, current)
		round++
	}
	if len(current) != targetLen {
		panic("protocols: FoldUntil target length is not reachable by repeated halving")
	}
	return layers
}

// DeriveSamplePoints turns a Merkle commitment into a deterministic set of
// distinct sample indices into a leafCount-sized domain. It feeds the
// commitment through the transcript so the same commitment always yields
// the same sample set (the transcript's Fiat-Shamir role: the verifier
// recomputes the identical indices from the proof's own commitment rather
// than trusting prover-supplied indices). leafCount is absorbed too, as an
// independent value from commitment, so two commitments over differently
// sized leaf sets never produce the same challenge stream.
func DeriveSamplePoints(commitment uint64, leafCount, numSamples int, field *core.Field) []int {
	if leafCount <= 0 {
		panic("protocols: DeriveSamplePoints requires a positive leaf count")
	}
	if numSamples <= 0 {
		panic("protocols: DeriveSamplePoints requires a positive sample count")
	}
	transcript := core.NewTranscript()
	transcript.AbsorbUint64(commitment)
	transcript.AbsorbUint64(uint64(leafCount))

	seen := make(map[int]bool, numSamples)
	indices := make([]int, 0, numSamples)
	for len(indices) < numSamples && len(seen) < leafCount {
		challenge := transcript.Challenge(field)
		idx := int(challenge.Uint64() % uint64(leafCount))
		if !seen[idx] {
			seen[idx] = true
			indices = append(indices, idx)
		}
	}
	return indices
}

// DeriveFRIBetas derives numRounds folding challenges from a commitment the
// same way DeriveSamplePoints derives sample indices: deterministically,
// from the transcript, so the verifier can recompute them independently.
func DeriveFRIBetas(commitment uint64, numRounds int, field *core.Field) []*core.FieldElement {
	if numRounds < 0 {
		panic("protocols: DeriveFRIBetas requires a non-negative round count")
	}
	transcript := core.NewTranscript()
	transcript.AbsorbUint64(commitment)
	// Keep the beta stream disjoint from the sample-index stream derived
	// from the same commitment by absorbing a distinct tag first.
	transcript.AbsorbUint64(0xf71)

	betas := make([]*core.FieldElement, numRounds)
	for i := 0; i < numRounds; i++ {
		betas[i] = transcript.Challenge(field)
	}
	return betas
}
