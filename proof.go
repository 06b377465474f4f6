package ppe

import (
	"fmt"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/AlvinHon/gs-ppe/bimodule"
	"github.com/AlvinHon/gs-ppe/gsrand"
)

// Proof is the Groth-Sahai proof (π, θ) for a pairing-product equation.
// Pi[k] and Theta[k] are the B2/B1 elements paired against u[k] and v[k]
// respectively in the verification identity.
type Proof struct {
	Pi    [2]bimodule.B2
	Theta [2]bimodule.B1
}

// newProof implements the Prove(ck, E, (X, r), (Y, s)) construction: it
// derives the cross terms t11..t22 from the witnesses' commitment
// randomness and Γ, folds in a fresh 2x2 randomization matrix Z, and
// returns (π, θ) such that Equation.Verify holds whenever x, y satisfy equ.
func newProof(rng *gsrand.Rand, cks CommitmentKeys, equ Equation, x []Witness1, y []Witness2) (Proof, error) {
	if len(equ.A) != len(y) {
		return Proof{}, newDimensionError("len(y)", len(equ.A), len(y))
	}
	if len(equ.B) != len(x) {
		return Proof{}, newDimensionError("len(x)", len(equ.B), len(x))
	}

	z, err := rng.Matrix2x2Fr()
	if err != nil {
		return Proof{}, fmt.Errorf("ppe: sampling proof randomization matrix: %w", err)
	}
	zu := zU(z, cks.U)
	zv := zV(z, cks.V)

	r := make([]Randomness, len(x))
	for i, xi := range x {
		r[i] = xi.Rand
	}
	s := make([]Randomness, len(y))
	for j, yj := range y {
		s[j] = yj.Rand
	}
	t11, t12, t21, t22 := crossTerms(r, s, equ.Gamma)

	xValues := witness1Values(x)
	yValues := witness2Values(y)

	bProduct0 := g2Sum(equ.B, randomnessColumn(r, 0))
	bProduct1 := g2Sum(equ.B, randomnessColumn(r, 1))
	yProduct0 := g2Sum(yValues, gammaWeightedByRow(equ.Gamma, r, 0))
	yProduct1 := g2Sum(yValues, gammaWeightedByRow(equ.Gamma, r, 1))

	aProduct0 := g1Sum(equ.A, randomnessColumn(s, 0))
	aProduct1 := g1Sum(equ.A, randomnessColumn(s, 1))
	xProduct0 := g1Sum(xValues, gammaWeightedByCol(equ.Gamma, s, 0))
	xProduct1 := g1Sum(xValues, gammaWeightedByCol(equ.Gamma, s, 1))

	phiRow0 := cks.V[0].ScalarMul(t11).Add(cks.V[1].ScalarMul(t12)).
		Add(bimodule.Iota2(g2JacAdd(bProduct0, yProduct0)))
	phiRow1 := cks.V[0].ScalarMul(t21).Add(cks.V[1].ScalarMul(t22)).
		Add(bimodule.Iota2(g2JacAdd(bProduct1, yProduct1)))

	thetaRow0 := bimodule.Iota1(g1JacAdd(aProduct0, xProduct0))
	thetaRow1 := bimodule.Iota1(g1JacAdd(aProduct1, xProduct1))

	return Proof{
		Pi:    [2]bimodule.B2{phiRow0.Add(zv[0]), phiRow1.Add(zv[1])},
		Theta: [2]bimodule.B1{thetaRow0.Add(zu[0]), thetaRow1.Add(zu[1])},
	}, nil
}

// randomizeProof implements RdProof(ck, E, (c, r), (d, s)): it rebuilds π
// and θ from the equation's old commitments (c, d), the fresh randomness
// (r, s) used to rerandomize them into new commitments, and a fresh
// randomization matrix, then adds the deltas onto the existing proof.
func randomizeProof(
	rng *gsrand.Rand,
	cks CommitmentKeys,
	equ Equation,
	old Proof,
	oldC []bimodule.B1, freshR []Randomness,
	oldD []bimodule.B2, freshS []Randomness,
) (Proof, error) {
	if len(oldC) != len(equ.B) || len(freshR) != len(equ.B) {
		return Proof{}, newDimensionError("len(oldC)/len(freshR)", len(equ.B), len(oldC))
	}
	if len(oldD) != len(equ.A) || len(freshS) != len(equ.A) {
		return Proof{}, newDimensionError("len(oldD)/len(freshS)", len(equ.A), len(oldD))
	}

	z, err := rng.Matrix2x2Fr()
	if err != nil {
		return Proof{}, fmt.Errorf("ppe: sampling proof randomization matrix: %w", err)
	}
	zu := zU(z, cks.U)
	zv := zV(z, cks.V)

	t11, t12, t21, t22 := crossTerms(freshR, freshS, equ.Gamma)

	bProduct0 := g2Sum(equ.B, randomnessColumn(freshR, 0))
	bProduct1 := g2Sum(equ.B, randomnessColumn(freshR, 1))
	aProduct0 := g1Sum(equ.A, randomnessColumn(freshS, 0))
	aProduct1 := g1Sum(equ.A, randomnessColumn(freshS, 1))

	dProduct0 := sumB2Scaled(oldD, gammaWeightedByRow(equ.Gamma, freshR, 0))
	dProduct1 := sumB2Scaled(oldD, gammaWeightedByRow(equ.Gamma, freshR, 1))
	cProduct0 := sumB1Scaled(oldC, gammaWeightedByCol(equ.Gamma, freshS, 0))
	cProduct1 := sumB1Scaled(oldC, gammaWeightedByCol(equ.Gamma, freshS, 1))

	deltaPhi0 := cks.V[0].ScalarMul(t11).Add(cks.V[1].ScalarMul(t12)).
		Add(dProduct0).Add(bimodule.Iota2(g2JacToAffine(bProduct0)))
	deltaPhi1 := cks.V[0].ScalarMul(t21).Add(cks.V[1].ScalarMul(t22)).
		Add(dProduct1).Add(bimodule.Iota2(g2JacToAffine(bProduct1)))

	deltaTheta0 := cProduct0.Add(bimodule.Iota1(g1JacToAffine(aProduct0)))
	deltaTheta1 := cProduct1.Add(bimodule.Iota1(g1JacToAffine(aProduct1)))

	return Proof{
		Pi:    [2]bimodule.B2{old.Pi[0].Add(deltaPhi0).Add(zv[0]), old.Pi[1].Add(deltaPhi1).Add(zv[1])},
		Theta: [2]bimodule.B1{old.Theta[0].Add(deltaTheta0).Add(zu[0]), old.Theta[1].Add(deltaTheta1).Add(zu[1])},
	}, nil
}

func sumB1Scaled(elems []bimodule.B1, weights []fr.Element) bimodule.B1 {
	acc := bimodule.ZeroB1()
	for i, e := range elems {
		acc = acc.Add(e.ScalarMul(weights[i]))
	}
	return acc
}

func sumB2Scaled(elems []bimodule.B2, weights []fr.Element) bimodule.B2 {
	acc := bimodule.ZeroB2()
	for i, e := range elems {
		acc = acc.Add(e.ScalarMul(weights[i]))
	}
	return acc
}

// Add combines two proofs under the same commitment key; used when
// composing the proof systems that own them.
func (p Proof) Add(o Proof) Proof {
	return Proof{
		Pi:    [2]bimodule.B2{p.Pi[0].Add(o.Pi[0]), p.Pi[1].Add(o.Pi[1])},
		Theta: [2]bimodule.B1{p.Theta[0].Add(o.Theta[0]), p.Theta[1].Add(o.Theta[1])},
	}
}

// zU computes the matrix Z ⊗ u: row k is u1·Z[k][0] + u2·Z[k][1].
func zU(z [2][2]fr.Element, u [2]bimodule.B1) [2]bimodule.B1 {
	var out [2]bimodule.B1
	for k := 0; k < 2; k++ {
		out[k] = u[0].ScalarMul(z[k][0]).Add(u[1].ScalarMul(z[k][1]))
	}
	return out
}

// zV computes the matrix -Zᵗ ⊗ v: row k is -(v1·Z[0][k] + v2·Z[1][k]).
func zV(z [2][2]fr.Element, v [2]bimodule.B2) [2]bimodule.B2 {
	var out [2]bimodule.B2
	for k := 0; k < 2; k++ {
		var neg0, neg1 fr.Element
		neg0.Neg(&z[0][k])
		neg1.Neg(&z[1][k])
		out[k] = v[0].ScalarMul(neg0).Add(v[1].ScalarMul(neg1))
	}
	return out
}

// crossTerms computes t11, t12, t21, t22 as defined by Σᵢⱼ Γᵢⱼ·rᵢ,k·sⱼ,l.
func crossTerms(r, s []Randomness, gamma Matrix[fr.Element]) (t11, t12, t21, t22 fr.Element) {
	for i := range r {
		for j := range s {
			g := gamma.At(i, j)
			var tmp fr.Element

			tmp.Mul(&g, &r[i].R0)
			tmp.Mul(&tmp, &s[j].R0)
			t11.Add(&t11, &tmp)

			tmp.Mul(&g, &r[i].R0)
			tmp.Mul(&tmp, &s[j].R1)
			t12.Add(&t12, &tmp)

			tmp.Mul(&g, &r[i].R1)
			tmp.Mul(&tmp, &s[j].R0)
			t21.Add(&t21, &tmp)

			tmp.Mul(&g, &r[i].R1)
			tmp.Mul(&tmp, &s[j].R1)
			t22.Add(&t22, &tmp)
		}
	}
	return
}

func randomnessColumn(rs []Randomness, col int) []fr.Element {
	out := make([]fr.Element, len(rs))
	for i, r := range rs {
		if col == 0 {
			out[i] = r.R0
		} else {
			out[i] = r.R1
		}
	}
	return out
}

// gammaWeightedByRow returns, for each column j of gamma, Σᵢ Γᵢⱼ·r[i].{col},
// i.e. the exponent that multiplies Yⱼ in the φ construction.
func gammaWeightedByRow(gamma Matrix[fr.Element], r []Randomness, col int) []fr.Element {
	n := gamma.Cols()
	out := make([]fr.Element, n)
	for j := 0; j < n; j++ {
		var acc fr.Element
		for i := range r {
			ri := r[i].R0
			if col == 1 {
				ri = r[i].R1
			}
			g := gamma.At(i, j)
			var tmp fr.Element
			tmp.Mul(&g, &ri)
			acc.Add(&acc, &tmp)
		}
		out[j] = acc
	}
	return out
}

// gammaWeightedByCol returns, for each row i of gamma, Σⱼ Γᵢⱼ·s[j].{col},
// the exponent that multiplies Xᵢ in the θ construction.
func gammaWeightedByCol(gamma Matrix[fr.Element], s []Randomness, col int) []fr.Element {
	m := gamma.Rows()
	out := make([]fr.Element, m)
	for i := 0; i < m; i++ {
		var acc fr.Element
		for j := range s {
			sj := s[j].R0
			if col == 1 {
				sj = s[j].R1
			}
			g := gamma.At(i, j)
			var tmp fr.Element
			tmp.Mul(&g, &sj)
			acc.Add(&acc, &tmp)
		}
		out[i] = acc
	}
	return out
}

func witness1Values(ws []Witness1) []bls12381.G1Affine {
	out := make([]bls12381.G1Affine, len(ws))
	for i, w := range ws {
		out[i] = w.Value
	}
	return out
}

func witness2Values(ws []Witness2) []bls12381.G2Affine {
	out := make([]bls12381.G2Affine, len(ws))
	for i, w := range ws {
		out[i] = w.Value
	}
	return out
}

func g1Sum(points []bls12381.G1Affine, weights []fr.Element) bls12381.G1Jac {
	var acc bls12381.G1Jac
	for i, p := range points {
		var term bls12381.G1Jac
		term.FromAffine(&p)
		term.ScalarMultiplication(&term, frToBigInt(weights[i]))
		acc.AddAssign(&term)
	}
	return acc
}

func g2Sum(points []bls12381.G2Affine, weights []fr.Element) bls12381.G2Jac {
	var acc bls12381.G2Jac
	for i, p := range points {
		var term bls12381.G2Jac
		term.FromAffine(&p)
		term.ScalarMultiplication(&term, frToBigInt(weights[i]))
		acc.AddAssign(&term)
	}
	return acc
}

func g1JacToAffine(a bls12381.G1Jac) bls12381.G1Affine {
	var aff bls12381.G1Affine
	aff.FromJacobian(&a)
	return aff
}

func g2JacToAffine(a bls12381.G2Jac) bls12381.G2Affine {
	var aff bls12381.G2Affine
	aff.FromJacobian(&a)
	return aff
}

func g1JacAdd(a, b bls12381.G1Jac) bls12381.G1Affine {
	var sum bls12381.G1Jac
	sum.Set(&a).AddAssign(&b)
	var aff bls12381.G1Affine
	aff.FromJacobian(&sum)
	return aff
}

func g2JacAdd(a, b bls12381.G2Jac) bls12381.G2Affine {
	var sum bls12381.G2Jac
	sum.Set(&a).AddAssign(&b)
	var aff bls12381.G2Affine
	aff.FromJacobian(&sum)
	return aff
}
