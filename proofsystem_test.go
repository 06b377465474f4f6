package ppe

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/stretchr/testify/require"

	"github.com/AlvinHon/gs-ppe/gsrand"
)

func newTestSystem(t *testing.T, seed uint64) (*gsrand.Rand, CommitmentKeys, ProofSystem) {
	t.Helper()

	rng, err := gsrand.New(seed)
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
	gamma11.SetUint64(5)
	gamma := NewMatrix([][]fr.Element{{gamma11}})

	ps, err := Setup(rng, cks, []AYPair{{A: a, Y: y}}, []XBPair{{X: x, B: b}}, gamma)
	require.NoError(t, err)
	require.True(t, ps.Verify(cks))

	return rng, cks, ps
}

func TestRandomizePreservesVerification(t *testing.T) {
	t.Parallel()

	rng, cks, ps := newTestSystem(t, 10)

	randomized, err := ps.Randomize(rng, cks)
	require.NoError(t, err)
	require.True(t, randomized.Verify(cks))

	label := []byte("gs-ppe-test")
	require.NotEqual(t, ps.Fingerprint(label), randomized.Fingerprint(label))
}

func TestRandomizeYieldsPairwiseDistinctSystems(t *testing.T) {
	t.Parallel()

	rng, cks, ps := newTestSystem(t, 11)

	label := []byte("gs-ppe-test")
	seen := map[[32]byte]bool{ps.Fingerprint(label): true}

	for i := 0; i < 5; i++ {
		randomized, err := ps.Randomize(rng, cks)
		require.NoError(t, err)
		require.True(t, randomized.Verify(cks))

		fp := randomized.Fingerprint(label)
		require.False(t, seen[fp], "randomization %d collided with a previous fingerprint", i)
		seen[fp] = true
	}
}

func TestAddComposesAndIsAssociative(t *testing.T) {
	t.Parallel()

	rng, err := gsrand.New(12)
	require.NoError(t, err)
	cks, err := GenerateCommitmentKeys(rng)
	require.NoError(t, err)

	build := func() ProofSystem {
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
		return ps
	}

	ps1 := build()
	ps2 := build()
	ps3 := build()

	require.True(t, ps1.Verify(cks))
	require.True(t, ps2.Verify(cks))
	require.True(t, ps3.Verify(cks))

	combined := ps1.Add(ps2)
	require.True(t, combined.Verify(cks))

	left := ps1.Add(ps2).Add(ps3)
	right := ps1.Add(ps2.Add(ps3))
	require.True(t, left.Verify(cks))
	require.True(t, right.Verify(cks))

	label := []byte("gs-ppe-test")
	require.Equal(t, left.Fingerprint(label), right.Fingerprint(label))
}

func TestVerifyFailsOnWrongWitness(t *testing.T) {
	t.Parallel()

	rng, err := gsrand.New(13)
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
	wrongX, err := rng.G1Affine()
	require.NoError(t, err)

	gamma := NewMatrix([][]fr.Element{{{}}})
	ps, err := Setup(rng, cks, []AYPair{{A: a, Y: y}}, []XBPair{{X: x, B: b}}, gamma)
	require.NoError(t, err)
	require.True(t, ps.Verify(cks))

	wrongWitness, err := NewWitness1(rng, wrongX)
	require.NoError(t, err)
	ps.C[0] = CommitG1(cks, wrongWitness)

	require.False(t, ps.Verify(cks))
}

func TestBatchVerifyFailsIfAnySystemFails(t *testing.T) {
	t.Parallel()

	_, cks1, ps1 := newTestSystem(t, 14)
	_, cks2, ps2 := newTestSystem(t, 15)

	require.True(t, BatchVerify(cks1, []ProofSystem{ps1}))
	require.False(t, BatchVerify(cks1, []ProofSystem{ps1, ps2}))
	require.True(t, BatchVerify(cks2, []ProofSystem{ps2}))
}
