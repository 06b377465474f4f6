// Package ppe implements the SXDH instantiation of Groth-Sahai
// non-interactive witness-indistinguishable proofs for pairing-product
// equations over BLS12-381:
//
//	Πⱼ e(Aⱼ, Yⱼ) · Πᵢ e(Xᵢ, Bᵢ) · Πᵢⱼ e(Xᵢ, Yⱼ)^γᵢⱼ = t_T
//
// A prover commits to secret X₁,...,Xₘ ∈ G1 and Y₁,...,Yₙ ∈ G2 and produces
// a proof that the equation holds. Commitments and proofs can be
// rerandomized into an independently-distributed proof of the same
// statement, and two proof systems under the same commitment key can be
// composed additively into a proof system for the concatenated equation.
package ppe
