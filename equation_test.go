package ppe

import (
	"testing"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/stretchr/testify/require"

	"github.com/AlvinHon/gs-ppe/bimodule"
	"github.com/AlvinHon/gs-ppe/gsrand"
)

func TestNewEquationRejectsMismatchedGamma(t *testing.T) {
	t.Parallel()

	rng, err := gsrand.New(1)
	require.NoError(t, err)

	a1, err := rng.G1Affine()
	require.NoError(t, err)
	a2, err := rng.G1Affine()
	require.NoError(t, err)
	b1, err := rng.G2Affine()
	require.NoError(t, err)

	gamma := NewMatrix([][]fr.Element{{{}}}) // 1x1, but len(a) = 2
	var target bls12381.GT
	target.SetOne()

	_, err = NewEquation([]bls12381.G1Affine{a1, a2}, []bls12381.G2Affine{b1}, gamma, target)
	require.Error(t, err)

	var dimErr *DimensionError
	require.ErrorAs(t, err, &dimErr)
}

func TestSetupVerifySingleWitness(t *testing.T) {
	t.Parallel()

	rng, err := gsrand.New(2)
	require.NoError(t, err)
	cks, err := GenerateCommitmentKeys(rng)
	require.NoError(t, err)

	a, err := rng.G1Affine()
	require.NoError(t, err)
	b, err := rng.G2Affine()
	require.NoError(t, err)
	x, err := rng.G1Affine()
	require.NoError(t, err)
	y, err := rng.G2Affine()
	require.NoError(t, err)

	gamma := NewMatrix([][]fr.Element{{{}}})

	ps, err := Setup(rng, cks, []AYPair{{A: a, Y: y}}, []XBPair{{X: x, B: b}}, gamma)
	require.NoError(t, err)

	require.True(t, ps.Verify(cks))
}

func TestSetupVerifyNonZeroGamma(t *testing.T) {
	t.Parallel()

	rng, err := gsrand.New(3)
	require.NoError(t, err)
	cks, err := GenerateCommitmentKeys(rng)
	require.NoError(t, err)

	a, err := rng.G1Affine()
	require.NoError(t, err)
	b, err := rng.G2Affine()
	require.NoError(t, err)
	x, err := rng.G1Affine()
	require.NoError(t, err)
	y, err := rng.G2Affine()
	require.NoError(t, err)

	var gamma11 fr.Element
	gamma11.SetUint64(2)
	gamma := NewMatrix([][]fr.Element{{gamma11}})

	ps, err := Setup(rng, cks, []AYPair{{A: a, Y: y}}, []XBPair{{X: x, B: b}}, gamma)
	require.NoError(t, err)
	require.True(t, ps.Verify(cks))

	// Replacing γ11 without reproving must break verification.
	var gamma12 fr.Element
	gamma12.SetUint64(3)
	mutated := ps.Equation
	mutated.Gamma = NewMatrix([][]fr.Element{{gamma12}})
	require.False(t, mutated.Verify(cks, ps.C, ps.D, ps.Proof))
}

func TestSetupVerifyMxN(t *testing.T) {
	t.Parallel()

	rng, err := gsrand.New(4)
	require.NoError(t, err)
	cks, err := GenerateCommitmentKeys(rng)
	require.NoError(t, err)

	n, m := 3, 2
	ay := make([]AYPair, n)
	for j := range ay {
		a, err := rng.G1Affine()
		require.NoError(t, err)
		y, err := rng.G2Affine()
		require.NoError(t, err)
		ay[j] = AYPair{A: a, Y: y}
	}
	xb := make([]XBPair, m)
	for i := range xb {
		x, err := rng.G1Affine()
		require.NoError(t, err)
		b, err := rng.G2Affine()
		require.NoError(t, err)
		xb[i] = XBPair{X: x, B: b}
	}
	gammaRows := make([][]fr.Element, m)
	for i := range gammaRows {
		row := make([]fr.Element, n)
		for j := range row {
			fe, err := rng.Fr()
			require.NoError(t, err)
			row[j] = fe
		}
		gammaRows[i] = row
	}
	gamma := NewMatrix(gammaRows)

	ps, err := Setup(rng, cks, ay, xb, gamma)
	require.NoError(t, err)
	require.True(t, ps.Verify(cks))
}

func TestVerifyRejectsMutatedCommitment(t *testing.T) {
	t.Parallel()

	rng, err := gsrand.New(5)
	require.NoError(t, err)
	cks, err := GenerateCommitmentKeys(rng)
	require.NoError(t, err)

	a, err := rng.G1Affine()
	require.NoError(t, err)
	b, err := rng.G2Affine()
	require.NoError(t, err)
	x, err := rng.G1Affine()
	require.NoError(t, err)
	y, err := rng.G2Affine()
	require.NoError(t, err)

	gamma := NewMatrix([][]fr.Element{{{}}})
	ps, err := Setup(rng, cks, []AYPair{{A: a, Y: y}}, []XBPair{{X: x, B: b}}, gamma)
	require.NoError(t, err)
	require.True(t, ps.Verify(cks))

	extraP1, err := rng.G1Affine()
	require.NoError(t, err)

	tampered := ps.C[0].Add(bimodule.Iota1(extraP1))
	badC := []bimodule.B1{tampered}
	require.False(t, ps.Equation.Verify(cks, badC, ps.D, ps.Proof))
}
