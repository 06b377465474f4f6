package bimodule

import (
	"fmt"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// accumulator collects the Miller-loop inputs of one BT entry so that a
// sum of many e(x_i, y_i) pairings costs one final exponentiation instead
// of one per term, mirroring the accumulate-then-verify-once shape of an
// MSM accumulator.
type accumulator struct {
	g1 []bls12381.G1Affine
	g2 []bls12381.G2Affine
}

func (acc *accumulator) add(p bls12381.G1Affine, q bls12381.G2Affine) {
	acc.g1 = append(acc.g1, p)
	acc.g2 = append(acc.g2, q)
}

func (acc *accumulator) addScaled(p bls12381.G1Affine, scalar fr.Element, q bls12381.G2Affine) {
	if scalar.IsZero() {
		return
	}
	var scaled bls12381.G1Affine
	scaled.ScalarMultiplication(&p, frToBigInt(scalar))
	acc.add(scaled, q)
}

func (acc *accumulator) finalize() (bls12381.GT, error) {
	if len(acc.g1) == 0 {
		var one bls12381.GT
		one.SetOne()
		return one, nil
	}
	gt, err := bls12381.Pair(acc.g1, acc.g2)
	if err != nil {
		return bls12381.GT{}, fmt.Errorf("pairing %d terms: %w", len(acc.g1), err)
	}
	return gt, nil
}

// F computes the pairing F(x, y) ∈ BT defined by F(x, y)_{k,l} = e(x_k, y_l).
func F(x B1, y B2) BT {
	x0, x1 := x.Affine()
	y0, y1 := y.Affine()
	var bt BT
	pair := func(p bls12381.G1Affine, q bls12381.G2Affine) bls12381.GT {
		gt, _ := bls12381.Pair([]bls12381.G1Affine{p}, []bls12381.G2Affine{q})
		return gt
	}
	bt.M[0][0] = pair(x0, y0)
	bt.M[0][1] = pair(x0, y1)
	bt.M[1][0] = pair(x1, y0)
	bt.M[1][1] = pair(x1, y1)
	return bt
}

// FVec computes Σ_i F(xs[i], ys[i]), batching the Miller loops of each of
// the four BT entries into a single final exponentiation.
func FVec(xs []B1, ys []B2) (BT, error) {
	if len(xs) != len(ys) {
		return BT{}, fmt.Errorf("bimodule: FVec length mismatch: %d B1 terms, %d B2 terms", len(xs), len(ys))
	}
	var accs [2][2]accumulator
	for i := range xs {
		x0, x1 := xs[i].Affine()
		y0, y1 := ys[i].Affine()
		accs[0][0].add(x0, y0)
		accs[0][1].add(x0, y1)
		accs[1][0].add(x1, y0)
		accs[1][1].add(x1, y1)
	}
	var bt BT
	for k := 0; k < 2; k++ {
		for l := 0; l < 2; l++ {
			gt, err := accs[k][l].finalize()
			if err != nil {
				return BT{}, err
			}
			bt.M[k][l] = gt
		}
	}
	return bt, nil
}

// FMat computes Σ_i Σ_j gamma[i][j] · F(xs[i], ys[j]), the bilinear form
// induced by the equation's Γ matrix.
func FMat(xs []B1, gamma [][]fr.Element, ys []B2) (BT, error) {
	if len(gamma) != len(xs) {
		return BT{}, fmt.Errorf("bimodule: FMat gamma has %d rows, want %d", len(gamma), len(xs))
	}
	var accs [2][2]accumulator
	for i := range xs {
		if len(gamma[i]) != len(ys) {
			return BT{}, fmt.Errorf("bimodule: FMat gamma row %d has %d columns, want %d", i, len(gamma[i]), len(ys))
		}
		x0, x1 := xs[i].Affine()
		for j := range ys {
			y0, y1 := ys[j].Affine()
			accs[0][0].addScaled(x0, gamma[i][j], y0)
			accs[0][1].addScaled(x0, gamma[i][j], y1)
			accs[1][0].addScaled(x1, gamma[i][j], y0)
			accs[1][1].addScaled(x1, gamma[i][j], y1)
		}
	}
	var bt BT
	for k := 0; k < 2; k++ {
		for l := 0; l < 2; l++ {
			gt, err := accs[k][l].finalize()
			if err != nil {
				return BT{}, err
			}
			bt.M[k][l] = gt
		}
	}
	return bt, nil
}
