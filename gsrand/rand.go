// Package gsrand provides a deterministic, seeded source of randomness for
// commitment-key generation, commitment randomness and proof
// randomization, modeled on the shake256-backed Rand used throughout the
// rest of this codebase's corpus.
package gsrand

import (
	"encoding/binary"
	"fmt"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"golang.org/x/crypto/sha3"
)

// Rand is a deterministic scalar/point source seeded from a uint64. It is
// not safe for concurrent use: each goroutine constructing or randomizing a
// proof system must own its own instance.
type Rand struct {
	stream sha3.ShakeHash
	g1Gen  bls12381.G1Affine
	g2Gen  bls12381.G2Affine
}

// New seeds a deterministic Rand. The same seed always yields the same
// sequence of scalars and points.
func New(seed uint64) (*Rand, error) {
	var seedBytes [8]byte
	binary.BigEndian.PutUint64(seedBytes[:], seed)

	stream := sha3.NewShake256()
	if _, err := stream.Write(seedBytes[:]); err != nil {
		return nil, fmt.Errorf("gsrand: writing seed: %w", err)
	}
	_, _, g1Gen, g2Gen := bls12381.Generators()
	return &Rand{stream: stream, g1Gen: g1Gen, g2Gen: g2Gen}, nil
}

// Fr draws a uniformly random scalar.
func (r *Rand) Fr() (fr.Element, error) {
	for {
		var buf [fr.Bytes]byte
		if _, err := r.stream.Read(buf[:]); err != nil {
			return fr.Element{}, fmt.Errorf("gsrand: reading scalar bytes: %w", err)
		}
		var fe fr.Element
		if err := fe.SetBytesCanonical(buf[:]); err == nil {
			return fe, nil
		}
	}
}

// NonZeroFr draws a uniformly random nonzero scalar, as required by the
// SXDH commitment-key setup.
func (r *Rand) NonZeroFr() (fr.Element, error) {
	for {
		fe, err := r.Fr()
		if err != nil {
			return fr.Element{}, err
		}
		if !fe.IsZero() {
			return fe, nil
		}
	}
}

// Frs draws n uniformly random scalars.
func (r *Rand) Frs(n int) ([]fr.Element, error) {
	out := make([]fr.Element, n)
	for i := range out {
		fe, err := r.Fr()
		if err != nil {
			return nil, fmt.Errorf("gsrand: scalar %d: %w", i, err)
		}
		out[i] = fe
	}
	return out, nil
}

// Matrix2x2Fr draws a uniformly random 2x2 scalar matrix, used as the fresh
// proof-randomization matrix.
func (r *Rand) Matrix2x2Fr() ([2][2]fr.Element, error) {
	var m [2][2]fr.Element
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			fe, err := r.Fr()
			if err != nil {
				return m, fmt.Errorf("gsrand: matrix entry (%d,%d): %w", i, j, err)
			}
			m[i][j] = fe
		}
	}
	return m, nil
}

// G1Affine draws a uniformly random point of the G1 prime-order subgroup,
// as a random scalar multiple of the curve's fixed generator.
func (r *Rand) G1Affine() (bls12381.G1Affine, error) {
	scalar, err := r.Fr()
	if err != nil {
		return bls12381.G1Affine{}, fmt.Errorf("gsrand: scalar for G1 point: %w", err)
	}
	var scalarBigInt big.Int
	scalar.BigInt(&scalarBigInt)
	var out bls12381.G1Affine
	out.ScalarMultiplication(&r.g1Gen, &scalarBigInt)
	return out, nil
}

// G2Affine draws a uniformly random point of the G2 prime-order subgroup.
func (r *Rand) G2Affine() (bls12381.G2Affine, error) {
	scalar, err := r.Fr()
	if err != nil {
		return bls12381.G2Affine{}, fmt.Errorf("gsrand: scalar for G2 point: %w", err)
	}
	var scalarBigInt big.Int
	scalar.BigInt(&scalarBigInt)
	var out bls12381.G2Affine
	out.ScalarMultiplication(&r.g2Gen, &scalarBigInt)
	return out, nil
}
