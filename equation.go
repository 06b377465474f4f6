package ppe

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/AlvinHon/gs-ppe/bimodule"
)

// Equation is the public pairing-product equation
//
//	Πⱼ e(Aⱼ, Yⱼ) · Πᵢ e(Xᵢ, Bᵢ) · Πᵢⱼ e(Xᵢ, Yⱼ)^γᵢⱼ = Target
//
// with A of length n, B of length m and Γ of shape m×n.
type Equation struct {
	A      []bls12381.G1Affine
	B      []bls12381.G2Affine
	Gamma  Matrix[fr.Element]
	Target bls12381.GT
}

// NewEquation validates that Γ's shape matches len(B)×len(A) before
// constructing the equation.
func NewEquation(a []bls12381.G1Affine, b []bls12381.G2Affine, gamma Matrix[fr.Element], target bls12381.GT) (Equation, error) {
	if gamma.Rows() != len(b) {
		return Equation{}, newDimensionError("Gamma.Rows", len(b), gamma.Rows())
	}
	if gamma.Cols() != len(a) {
		return Equation{}, newDimensionError("Gamma.Cols", len(a), gamma.Cols())
	}
	return Equation{A: a, B: b, Gamma: gamma, Target: target}, nil
}

// Verify tests the verification identity in B_T:
//
//	F_vec(ι1(A), d) + F_vec(c, ι2(B)) + F_mat(c, Γ, d) = t̂_T + F_vec(u, π) + F_vec(θ, v)
//
// It returns false, never an error, on a dimension mismatch between c, d
// and the equation's A, B.
func (e Equation) Verify(ck CommitmentKeys, c []bimodule.B1, d []bimodule.B2, proof Proof) bool {
	m := len(e.B)
	n := len(e.A)
	if len(c) != m || len(d) != n {
		return false
	}

	iotaA := make([]bimodule.B1, n)
	for j, a := range e.A {
		iotaA[j] = bimodule.Iota1(a)
	}
	iotaB := make([]bimodule.B2, m)
	for i, b := range e.B {
		iotaB[i] = bimodule.Iota2(b)
	}

	term1, err := bimodule.FVec(iotaA, d)
	if err != nil {
		return false
	}
	term2, err := bimodule.FVec(c, iotaB)
	if err != nil {
		return false
	}
	term3, err := bimodule.FMat(c, e.Gamma.Raw(), d)
	if err != nil {
		return false
	}
	lhs := term1.Add(term2).Add(term3)

	uPi, err := bimodule.FVec(ck.U[:], proof.Pi[:])
	if err != nil {
		return false
	}
	thetaV, err := bimodule.FVec(proof.Theta[:], ck.V[:])
	if err != nil {
		return false
	}
	rhs := bimodule.EmbedTarget(e.Target).Add(uPi).Add(thetaV)

	return lhs.Equal(rhs)
}

// Add combines two equations under the same commitment key into the
// equation for the concatenated statement: A and B are concatenated, Γ
// becomes block-diagonal, and Target multiplies (GT's group law is
// multiplicative).
func (e Equation) Add(o Equation) Equation {
	a := make([]bls12381.G1Affine, 0, len(e.A)+len(o.A))
	a = append(a, e.A...)
	a = append(a, o.A...)
	b := make([]bls12381.G2Affine, 0, len(e.B)+len(o.B))
	b = append(b, e.B...)
	b = append(b, o.B...)

	rows := make([][]fr.Element, e.Gamma.Rows()+o.Gamma.Rows())
	cols := e.Gamma.Cols() + o.Gamma.Cols()
	for i := 0; i < e.Gamma.Rows(); i++ {
		row := make([]fr.Element, cols)
		copy(row, e.Gamma.Raw()[i])
		rows[i] = row
	}
	for i := 0; i < o.Gamma.Rows(); i++ {
		row := make([]fr.Element, cols)
		copy(row[e.Gamma.Cols():], o.Gamma.Raw()[i])
		rows[e.Gamma.Rows()+i] = row
	}
	gamma := NewMatrix(rows)

	var target bls12381.GT
	target.Mul(&e.Target, &o.Target)

	return Equation{A: a, B: b, Gamma: gamma, Target: target}
}
