package ppe

import (
	transcript "github.com/jsign/merlin"
)

// Bytes returns the canonical componentwise encoding of the commitment
// keys: U[0], U[1], V[0], V[1].
func (cks CommitmentKeys) Bytes() []byte {
	var out []byte
	out = append(out, cks.U[0].Bytes()...)
	out = append(out, cks.U[1].Bytes()...)
	out = append(out, cks.V[0].Bytes()...)
	out = append(out, cks.V[1].Bytes()...)
	return out
}

// Bytes returns the canonical componentwise encoding of the equation: A,
// then B, then Γ's entries in row-major order, then the target.
func (e Equation) Bytes() []byte {
	var out []byte
	for _, a := range e.A {
		b := a.Bytes()
		out = append(out, b[:]...)
	}
	for _, b := range e.B {
		eb := b.Bytes()
		out = append(out, eb[:]...)
	}
	for i := 0; i < e.Gamma.Rows(); i++ {
		for j := 0; j < e.Gamma.Cols(); j++ {
			g := e.Gamma.At(i, j)
			gb := g.Bytes()
			out = append(out, gb[:]...)
		}
	}
	tb := e.Target.Bytes()
	out = append(out, tb[:]...)
	return out
}

// Bytes returns the canonical componentwise encoding of the proof: Pi[0],
// Pi[1], Theta[0], Theta[1].
func (p Proof) Bytes() []byte {
	var out []byte
	out = append(out, p.Pi[0].Bytes()...)
	out = append(out, p.Pi[1].Bytes()...)
	out = append(out, p.Theta[0].Bytes()...)
	out = append(out, p.Theta[1].Bytes()...)
	return out
}

// Bytes returns the canonical componentwise encoding of the proof system:
// equation, then c, then d, then proof.
func (ps ProofSystem) Bytes() []byte {
	var out []byte
	out = append(out, ps.Equation.Bytes()...)
	for _, c := range ps.C {
		out = append(out, c.Bytes()...)
	}
	for _, d := range ps.D {
		out = append(out, d.Bytes()...)
	}
	out = append(out, ps.Proof.Bytes()...)
	return out
}

// Fingerprint hashes the canonical encoding of the proof system through a
// merlin transcript, giving a short digest useful for comparing two proof
// systems for equality (e.g. to check that rerandomization or additive
// composition actually changed the published values) without decoding the
// underlying group elements.
func (ps ProofSystem) Fingerprint(label []byte) [32]byte {
	t := transcript.New(label)
	t.AppendMessage([]byte("proof-system"), ps.Bytes())
	var out [32]byte
	t.ChallengeBytes([]byte("fingerprint"), out[:])
	return out
}
