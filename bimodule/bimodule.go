// Package bimodule implements the bilinear B1/B2/BT module structure used by
// the SXDH instantiation of Groth-Sahai proofs: B1 = G1^2, B2 = G2^2 and
// BT = GT^(2x2), together with the canonical embeddings iota1/iota2 and the
// bilinear pairing F: B1 x B2 -> BT.
package bimodule

import (
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// B1 is an element of G1^2, stored in Jacobian form for cheap accumulation.
type B1 struct {
	E0, E1 bls12381.G1Jac
}

// NewB1 builds a B1 element from two affine G1 points.
func NewB1(e0, e1 bls12381.G1Affine) B1 {
	var b B1
	b.E0.FromAffine(&e0)
	b.E1.FromAffine(&e1)
	return b
}

// Iota1 is the canonical injection ι1(X) = (0, X) of G1 into B1.
func Iota1(x bls12381.G1Affine) B1 {
	var b B1
	b.E1.FromAffine(&x)
	return b
}

// ZeroB1 is the identity element of B1.
func ZeroB1() B1 { return B1{} }

func (b B1) Add(o B1) B1 {
	var r B1
	r.E0.Set(&b.E0).AddAssign(&o.E0)
	r.E1.Set(&b.E1).AddAssign(&o.E1)
	return r
}

func (b B1) Neg() B1 {
	var r B1
	r.E0.Neg(&b.E0)
	r.E1.Neg(&b.E1)
	return r
}

func (b B1) ScalarMul(s fr.Element) B1 {
	var r B1
	scalar := frToBigInt(s)
	r.E0.ScalarMultiplication(&b.E0, scalar)
	r.E1.ScalarMultiplication(&b.E1, scalar)
	return r
}

func (b B1) Equal(o B1) bool {
	return b.E0.Equal(&o.E0) && b.E1.Equal(&o.E1)
}

func (b B1) Affine() (bls12381.G1Affine, bls12381.G1Affine) {
	var a0, a1 bls12381.G1Affine
	a0.FromJacobian(&b.E0)
	a1.FromJacobian(&b.E1)
	return a0, a1
}

func (b B1) Bytes() []byte {
	a0, a1 := b.Affine()
	x0 := a0.Bytes()
	x1 := a1.Bytes()
	out := make([]byte, 0, len(x0)+len(x1))
	out = append(out, x0[:]...)
	out = append(out, x1[:]...)
	return out
}

// B2 is an element of G2^2.
type B2 struct {
	E0, E1 bls12381.G2Jac
}

func NewB2(e0, e1 bls12381.G2Affine) B2 {
	var b B2
	b.E0.FromAffine(&e0)
	b.E1.FromAffine(&e1)
	return b
}

// Iota2 is the canonical injection ι2(Y) = (0, Y) of G2 into B2.
func Iota2(y bls12381.G2Affine) B2 {
	var b B2
	b.E1.FromAffine(&y)
	return b
}

func ZeroB2() B2 { return B2{} }

func (b B2) Add(o B2) B2 {
	var r B2
	r.E0.Set(&b.E0).AddAssign(&o.E0)
	r.E1.Set(&b.E1).AddAssign(&o.E1)
	return r
}

func (b B2) Neg() B2 {
	var r B2
	r.E0.Neg(&b.E0)
	r.E1.Neg(&b.E1)
	return r
}

func (b B2) ScalarMul(s fr.Element) B2 {
	var r B2
	scalar := frToBigInt(s)
	r.E0.ScalarMultiplication(&b.E0, scalar)
	r.E1.ScalarMultiplication(&b.E1, scalar)
	return r
}

func (b B2) Equal(o B2) bool {
	return b.E0.Equal(&o.E0) && b.E1.Equal(&o.E1)
}

func (b B2) Affine() (bls12381.G2Affine, bls12381.G2Affine) {
	var a0, a1 bls12381.G2Affine
	a0.FromJacobian(&b.E0)
	a1.FromJacobian(&b.E1)
	return a0, a1
}

func (b B2) Bytes() []byte {
	a0, a1 := b.Affine()
	x0 := a0.Bytes()
	x1 := a1.Bytes()
	out := make([]byte, 0, len(x0)+len(x1))
	out = append(out, x0[:]...)
	out = append(out, x1[:]...)
	return out
}

// BT is an element of GT^(2x2), indexed BT[k][l] = e(x_k, y_l) for x in B1,
// y in B2. The group law is componentwise GT multiplication.
type BT struct {
	M [2][2]bls12381.GT
}

// IdentityBT is the identity of BT, the all-ones 2x2 matrix.
func IdentityBT() BT {
	var bt BT
	bt.M[0][0].SetOne()
	bt.M[0][1].SetOne()
	bt.M[1][0].SetOne()
	bt.M[1][1].SetOne()
	return bt
}

// EmbedTarget places t at BT's (1,1) entry and the identity elsewhere, the
// t_T-hat of the verification identity.
func EmbedTarget(t bls12381.GT) BT {
	bt := IdentityBT()
	bt.M[1][1] = t
	return bt
}

func (bt BT) Add(o BT) BT {
	var r BT
	for k := 0; k < 2; k++ {
		for l := 0; l < 2; l++ {
			r.M[k][l].Mul(&bt.M[k][l], &o.M[k][l])
		}
	}
	return r
}

func (bt BT) Neg() BT {
	var r BT
	for k := 0; k < 2; k++ {
		for l := 0; l < 2; l++ {
			r.M[k][l].Inverse(&bt.M[k][l])
		}
	}
	return r
}

func (bt BT) ScalarMul(s fr.Element) BT {
	var r BT
	scalar := frToBigInt(s)
	for k := 0; k < 2; k++ {
		for l := 0; l < 2; l++ {
			r.M[k][l].Exp(bt.M[k][l], scalar)
		}
	}
	return r
}

func (bt BT) Equal(o BT) bool {
	for k := 0; k < 2; k++ {
		for l := 0; l < 2; l++ {
			if !bt.M[k][l].Equal(&o.M[k][l]) {
				return false
			}
		}
	}
	return true
}

func (bt BT) Bytes() []byte {
	var out []byte
	for k := 0; k < 2; k++ {
		for l := 0; l < 2; l++ {
			b := bt.M[k][l].Bytes()
			out = append(out, b[:]...)
		}
	}
	return out
}

func frToBigInt(s fr.Element) *big.Int {
	var out big.Int
	s.BigInt(&out)
	return &out
}
