package protocols

import "github.com/starkfib/stark-fib/internal/starkfib/core"

// Verify checks a Proof end to end: sampling indices were honestly derived
// from the commitment, each sampled row's Merkle proof authenticates
// against the committed root, C = Q*Z_H holds at every sampled point and C
// vanishes at the sampled points that lie in the trace domain, and the FRI
// layers are the honest folding of layer 0 under betas derived from the
// same commitment. Any failure simply returns false — proof invalidity is
// never reported by panicking; a panic raised while checking a malformed
// proof is recovered and reported as false.
func Verify(proof *Proof) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	if proof == nil || !proof.IsPopulated() {
		return false
	}
	if !verifySampleIndices(proof) {
		return false
	}
	if !verifyMerkleProofs(proof) {
		return false
	}
	if !verifyComposition(proof) {
		return false
	}
	if !verifyFRILayers(proof) {
		return false
	}
	return true
}

// verifySampleIndices recomputes the sample indices the prover should have
// used, given the proof's own commitment, and checks they match exactly.
// This stops a prover from cherry-picking favorable rows to sample.
func verifySampleIndices(proof *Proof) bool {
	expected := DeriveSamplePoints(proof.TraceCommitment, proof.ExtendedSize, len(proof.Sampling.SampleIndices), proof.Field)
	if len(expected) != len(proof.Sampling.SampleIndices) {
		return false
	}
	for i, idx := range expected {
		if idx != proof.Sampling.SampleIndices[i] {
			return false
		}
	}
	return true
}

// verifyMerkleProofs recomputes each sampled row's leaf hash and checks
// that folding it up the supplied authentication path lands on the root
// embedded in the proof, and that the embedded root is in fact the one the
// proof committed to (an authentication path that checks out against a
// root other than trace_commitment proves nothing).
func verifyMerkleProofs(proof *Proof) bool {
	sampling := proof.Sampling
	if len(sampling.SampleIndices) == 0 {
		return false
	}
	if len(sampling.SampleValues) != len(sampling.SampleIndices) || len(sampling.MerkleProofs) != len(sampling.SampleIndices) {
		return false
	}
	for i, merkleProof := range sampling.MerkleProofs {
		if len(merkleProof) == 0 {
			return false
		}
		if merkleProof[len(merkleProof)-1] != proof.TraceCommitment {
			return false
		}
		leafHash := core.HashRow(sampling.SampleValues[i])
		if !core.VerifyProof(leafHash, merkleProof) {
			return false
		}
	}
	return true
}

// verifyComposition spot-checks the composition identity C(x) = Q(x)*Z_H(x)
// at the sampled extended-domain points only — never over the full
// polynomials. This is what makes the protocol a probabilistic spot-check
// instead of an exhaustive recomputation: a dishonest C or Q that agrees with
// the honest ones at every sampled point passes, by design, with the usual
// soundness-error-in-sample-count tradeoff. At positions that also fall
// within the original (unextended) trace domain, C must additionally
// evaluate to zero there, since those are exactly the points the recurrence
// constraint is defined over.
func verifyComposition(proof *Proof) bool {
	for _, idx := range proof.Sampling.SampleIndices {
		x := proof.Field.NewElementFromInt64(int64(idx))
		cAtX := proof.C.Eval(x)
		qAtX := proof.Q.Eval(x)
		zhAtX := proof.Domain.EvaluateVanishing(x)
		if !cAtX.Equals(qAtX.Mul(zhAtX)) {
			return false
		}
		if idx < proof.TraceSize && !cAtX.IsZero() {
			return false
		}
	}
	return true
}

// verifyFRILayers re-derives the folding betas from the commitment and
// recomputes every layer from layer 0, checking the result matches the
// proof's stored layers exactly.
func verifyFRILayers(proof *Proof) bool {
	if len(proof.FRILayers) == 0 {
		return false
	}
	layer0 := proof.FRILayers[0]
	targetLen := len(proof.FRILayers[len(proof.FRILayers)-1])
	expectedBetas := DeriveFRIBetas(proof.TraceCommitment, len(proof.FRIBetas), proof.Field)
	if len(expectedBetas) != len(proof.FRIBetas) {
		return false
	}
	for i, beta := range expectedBetas {
		if !beta.Equals(proof.FRIBetas[i]) {
			return false
		}
	}

	recomputed := FoldUntil(layer0, proof.FRIBetas, targetLen)
	if len(recomputed) != len(proof.FRILayers) {
		return false
	}
	for i, layer := range recomputed {
		if len(layer) != len(proof.FRILayers[i]) {
			return false
		}
		for j, v := range layer {
			if !v.Equals(proof.FRILayers[i][j]) {
				return false
			}
		}
	}
	return true
}
