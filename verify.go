package ppe

// BatchVerify checks a list of proof systems against the same commitment
// key. Each Equation.Verify computes five BT values (four FVec, one FMat),
// and the per-entry accumulators in the bimodule package batch each BT
// entry's Miller loops into one final exponentiation, so one system costs at
// most 20 final exponentiations independent of the equation's m, n, and k
// systems at most 20k; it stops at the first failing system rather than
// evaluating the rest.
func BatchVerify(cks CommitmentKeys, systems []ProofSystem) bool {
	for _, ps := range systems {
		if !ps.Verify(cks) {
			return false
		}
	}
	return true
}
