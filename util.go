package ppe

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

func frToBigInt(s fr.Element) *big.Int {
	var out big.Int
	s.BigInt(&out)
	return &out
}
