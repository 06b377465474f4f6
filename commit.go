package ppe

import (
	"fmt"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/AlvinHon/gs-ppe/bimodule"
	"github.com/AlvinHon/gs-ppe/gsrand"
)

// Randomness is a commitment randomness pair (r1, r2) ∈ 𝔽², used both for
// committing a witness and, later, for the proof's cross terms.
type Randomness struct {
	R0, R1 fr.Element
}

func (r Randomness) Add(o Randomness) Randomness {
	var out Randomness
	out.R0.Add(&r.R0, &o.R0)
	out.R1.Add(&r.R1, &o.R1)
	return out
}

func sampleRandomness(rng *gsrand.Rand) (Randomness, error) {
	r0, err := rng.Fr()
	if err != nil {
		return Randomness{}, fmt.Errorf("ppe: sampling commitment randomness: %w", err)
	}
	r1, err := rng.Fr()
	if err != nil {
		return Randomness{}, fmt.Errorf("ppe: sampling commitment randomness: %w", err)
	}
	return Randomness{R0: r0, R1: r1}, nil
}

// Witness1 is a secret G1 value Xᵢ together with the randomness that will
// be used to commit it, i.e. the paper's variable (X, r).
type Witness1 struct {
	Value bls12381.G1Affine
	Rand  Randomness
}

// Witness2 is the G2 counterpart, the variable (Y, s).
type Witness2 struct {
	Value bls12381.G2Affine
	Rand  Randomness
}

// NewWitness1 samples fresh randomness for X and returns the witness.
func NewWitness1(rng *gsrand.Rand, x bls12381.G1Affine) (Witness1, error) {
	r, err := sampleRandomness(rng)
	if err != nil {
		return Witness1{}, err
	}
	return Witness1{Value: x, Rand: r}, nil
}

// NewWitness2 samples fresh randomness for Y and returns the witness.
func NewWitness2(rng *gsrand.Rand, y bls12381.G2Affine) (Witness2, error) {
	s, err := sampleRandomness(rng)
	if err != nil {
		return Witness2{}, err
	}
	return Witness2{Value: y, Rand: s}, nil
}

// CommitG1 computes c = ι1(X) + r1·u1 + r2·u2 ∈ B1.
func CommitG1(ck CommitmentKeys, w Witness1) bimodule.B1 {
	return bimodule.Iota1(w.Value).
		Add(ck.U[0].ScalarMul(w.Rand.R0)).
		Add(ck.U[1].ScalarMul(w.Rand.R1))
}

// CommitG2 computes d = ι2(Y) + s1·v1 + s2·v2 ∈ B2.
func CommitG2(ck CommitmentKeys, w Witness2) bimodule.B2 {
	return bimodule.Iota2(w.Value).
		Add(ck.V[0].ScalarMul(w.Rand.R0)).
		Add(ck.V[1].ScalarMul(w.Rand.R1))
}

// CommitG1Vec batches CommitG1 over a slice of witnesses.
func CommitG1Vec(ck CommitmentKeys, ws []Witness1) []bimodule.B1 {
	out := make([]bimodule.B1, len(ws))
	for i, w := range ws {
		out[i] = CommitG1(ck, w)
	}
	return out
}

// CommitG2Vec batches CommitG2 over a slice of witnesses.
func CommitG2Vec(ck CommitmentKeys, ws []Witness2) []bimodule.B2 {
	out := make([]bimodule.B2, len(ws))
	for i, w := range ws {
		out[i] = CommitG2(ck, w)
	}
	return out
}
