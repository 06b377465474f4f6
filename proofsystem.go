package ppe

import (
	"fmt"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/AlvinHon/gs-ppe/bimodule"
	"github.com/AlvinHon/gs-ppe/gsrand"
)

// ProofSystem bundles an equation with its commitments and proof: the
// output of Setup, and the unit that Randomize and Add operate on.
type ProofSystem struct {
	Equation Equation
	C        []bimodule.B1
	D        []bimodule.B2
	Proof    Proof
}

// AYPair is a public constant Aⱼ paired with the secret witness Yⱼ for the
// equation's Πⱼ e(Aⱼ, Yⱼ) term.
type AYPair struct {
	A bls12381.G1Affine
	Y bls12381.G2Affine
}

// XBPair is a secret witness Xᵢ paired with a public constant Bᵢ for the
// equation's Πᵢ e(Xᵢ, Bᵢ) term.
type XBPair struct {
	X bls12381.G1Affine
	B bls12381.G2Affine
}

// Setup builds a proof system for the equation
//
//	Πⱼ e(Aⱼ, Yⱼ) · Πᵢ e(Xᵢ, Bᵢ) · Πᵢⱼ e(Xᵢ, Yⱼ)^γᵢⱼ = target
//
// by sampling fresh commitment randomness for every Xᵢ, Yⱼ, computing the
// target from the witnesses so the equation holds by construction, and
// constructing a proof that it does.
func Setup(rng *gsrand.Rand, cks CommitmentKeys, ay []AYPair, xb []XBPair, gamma Matrix[fr.Element]) (ProofSystem, error) {
	if gamma.Rows() != len(xb) {
		return ProofSystem{}, newDimensionError("Gamma.Rows", len(xb), gamma.Rows())
	}
	if gamma.Cols() != len(ay) {
		return ProofSystem{}, newDimensionError("Gamma.Cols", len(ay), gamma.Cols())
	}

	x := make([]Witness1, len(xb))
	b := make([]bls12381.G2Affine, len(xb))
	for i, p := range xb {
		w, err := NewWitness1(rng, p.X)
		if err != nil {
			return ProofSystem{}, err
		}
		x[i] = w
		b[i] = p.B
	}

	y := make([]Witness2, len(ay))
	a := make([]bls12381.G1Affine, len(ay))
	for j, p := range ay {
		w, err := NewWitness2(rng, p.Y)
		if err != nil {
			return ProofSystem{}, err
		}
		y[j] = w
		a[j] = p.A
	}

	target, err := computeTarget(a, y, x, b, gamma)
	if err != nil {
		return ProofSystem{}, fmt.Errorf("ppe: computing target: %w", err)
	}

	equation, err := NewEquation(a, b, gamma, target)
	if err != nil {
		return ProofSystem{}, err
	}

	proof, err := newProof(rng, cks, equation, x, y)
	if err != nil {
		return ProofSystem{}, err
	}

	return ProofSystem{
		Equation: equation,
		C:        CommitG1Vec(cks, x),
		D:        CommitG2Vec(cks, y),
		Proof:    proof,
	}, nil
}

// computeTarget evaluates Πⱼ e(Aⱼ,Yⱼ) · Πᵢ e(Xᵢ,Bᵢ) · Πᵢⱼ e(Xᵢ,Yⱼ)^γᵢⱼ as a
// single multi-pairing call: every term is reduced to a (G1, G2) pair (the
// Γ-weighted cross terms by scaling the G1 side), so the whole target is
// one batched Miller loop and one final exponentiation.
func computeTarget(a []bls12381.G1Affine, y []Witness2, x []Witness1, b []bls12381.G2Affine, gamma Matrix[fr.Element]) (bls12381.GT, error) {
	var g1s []bls12381.G1Affine
	var g2s []bls12381.G2Affine

	g1s = append(g1s, a...)
	for _, yj := range y {
		g2s = append(g2s, yj.Value)
	}
	for _, xi := range x {
		g1s = append(g1s, xi.Value)
	}
	g2s = append(g2s, b...)

	for i, xi := range x {
		for j, yj := range y {
			gij := gamma.At(i, j)
			if gij.IsZero() {
				continue
			}
			var scaled bls12381.G1Affine
			scaled.ScalarMultiplication(&xi.Value, frToBigInt(gij))
			g1s = append(g1s, scaled)
			g2s = append(g2s, yj.Value)
		}
	}

	if len(g1s) == 0 {
		var one bls12381.GT
		one.SetOne()
		return one, nil
	}
	return bls12381.Pair(g1s, g2s)
}

// Randomize rerandomizes every commitment and the proof, yielding an
// independently distributed proof system for the same equation.
func (ps ProofSystem) Randomize(rng *gsrand.Rand, cks CommitmentKeys) (ProofSystem, error) {
	freshR := make([]Randomness, len(ps.C))
	newC := make([]bimodule.B1, len(ps.C))
	for i, c := range ps.C {
		nc, r, err := rdComG1(rng, cks, c)
		if err != nil {
			return ProofSystem{}, err
		}
		newC[i] = nc
		freshR[i] = r
	}

	freshS := make([]Randomness, len(ps.D))
	newD := make([]bimodule.B2, len(ps.D))
	for j, d := range ps.D {
		nd, s, err := rdComG2(rng, cks, d)
		if err != nil {
			return ProofSystem{}, err
		}
		newD[j] = nd
		freshS[j] = s
	}

	newProofVal, err := randomizeProof(rng, cks, ps.Equation, ps.Proof, ps.C, freshR, ps.D, freshS)
	if err != nil {
		return ProofSystem{}, err
	}

	return ProofSystem{
		Equation: ps.Equation,
		C:        newC,
		D:        newD,
		Proof:    newProofVal,
	}, nil
}

// Add composes two proof systems over the same commitment key into a
// proof system for the concatenated equation.
func (ps ProofSystem) Add(o ProofSystem) ProofSystem {
	c := make([]bimodule.B1, 0, len(ps.C)+len(o.C))
	c = append(c, ps.C...)
	c = append(c, o.C...)
	d := make([]bimodule.B2, 0, len(ps.D)+len(o.D))
	d = append(d, ps.D...)
	d = append(d, o.D...)

	return ProofSystem{
		Equation: ps.Equation.Add(o.Equation),
		C:        c,
		D:        d,
		Proof:    ps.Proof.Add(o.Proof),
	}
}

// Verify tests the underlying equation's verification identity against
// this system's commitments and proof.
func (ps ProofSystem) Verify(cks CommitmentKeys) bool {
	return ps.Equation.Verify(cks, ps.C, ps.D, ps.Proof)
}

// rdComG1 implements RdCom(ck, c, r) over B1: it samples fresh randomness,
// returns the rerandomized commitment and the randomness used, so callers
// can fold the same randomness into a proof's RdProof step.
func rdComG1(rng *gsrand.Rand, cks CommitmentKeys, c bimodule.B1) (bimodule.B1, Randomness, error) {
	r, err := sampleRandomness(rng)
	if err != nil {
		return bimodule.B1{}, Randomness{}, err
	}
	newC := c.Add(cks.U[0].ScalarMul(r.R0)).Add(cks.U[1].ScalarMul(r.R1))
	return newC, r, nil
}

func rdComG2(rng *gsrand.Rand, cks CommitmentKeys, d bimodule.B2) (bimodule.B2, Randomness, error) {
	s, err := sampleRandomness(rng)
	if err != nil {
		return bimodule.B2{}, Randomness{}, err
	}
	newD := d.Add(cks.V[0].ScalarMul(s.R0)).Add(cks.V[1].ScalarMul(s.R1))
	return newD, s, nil
}
