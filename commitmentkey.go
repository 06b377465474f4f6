package ppe

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"

	"github.com/AlvinHon/gs-ppe/bimodule"
	"github.com/AlvinHon/gs-ppe/gsrand"
)

// CommitmentKeys holds the SXDH-binding commitment keys u = (u1, u2) ∈ B1²
// and v = (v1, v2) ∈ B2². They are sampled once per proof-system family and
// reused for every commitment, proof construction and verification under
// that family.
type CommitmentKeys struct {
	U [2]bimodule.B1
	V [2]bimodule.B2
}

// GenerateCommitmentKeys samples fresh generators P1 ∈ G1, P2 ∈ G2 and
// nonzero scalars α, t, β, s, then builds:
//
//	u1 = (P1, α·P1),  u2 = t·u1
//	v1 = (P2, β·P2),  v2 = s·v1
//
// u2 being a scalar multiple of u1 (and likewise v2 of v1) is what makes
// the resulting commitment keys SXDH-binding rather than perfectly hiding.
func GenerateCommitmentKeys(rng *gsrand.Rand) (CommitmentKeys, error) {
	p1, err := rng.G1Affine()
	if err != nil {
		return CommitmentKeys{}, err
	}
	p2, err := rng.G2Affine()
	if err != nil {
		return CommitmentKeys{}, err
	}

	alpha, err := rng.NonZeroFr()
	if err != nil {
		return CommitmentKeys{}, err
	}
	t, err := rng.NonZeroFr()
	if err != nil {
		return CommitmentKeys{}, err
	}
	beta, err := rng.NonZeroFr()
	if err != nil {
		return CommitmentKeys{}, err
	}
	s, err := rng.NonZeroFr()
	if err != nil {
		return CommitmentKeys{}, err
	}

	var aP1 bls12381.G1Affine
	aP1.ScalarMultiplication(&p1, frToBigInt(alpha))
	var bP2 bls12381.G2Affine
	bP2.ScalarMultiplication(&p2, frToBigInt(beta))

	u1 := bimodule.NewB1(p1, aP1)
	u2 := u1.ScalarMul(t)
	v1 := bimodule.NewB2(p2, bP2)
	v2 := v1.ScalarMul(s)

	return CommitmentKeys{
		U: [2]bimodule.B1{u1, u2},
		V: [2]bimodule.B2{v1, v2},
	}, nil
}
