package kzg

import (
	"fmt"
	"time"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	curve "github.com/vocdoni/davinci-kzg/crypto/ecc/bn254"
	"github.com/vocdoni/davinci-kzg/crypto/polynomial"
	"github.com/vocdoni/davinci-kzg/crypto/trustedsetup"
	"github.com/vocdoni/davinci-kzg/log"
)

// Proof is a single-point opening: the commitment C to p, the commitment
// H to the quotient (p - y)/(X - z) and the claimed value y = p(z).
type Proof struct {
	PolynomialCommitment bn254.G1Affine
	QuotientCommitment   bn254.G1Affine
	Y                    fr.Element
}

// Prover holds a committed polynomial and answers opening challenges on it.
// The commitment is computed once, when the prover is created, and shared by
// every proof it emits.
type Prover struct {
	setup      *trustedsetup.Setup
	poly       polynomial.Polynomial
	commitment bn254.G1Affine
}

// NewProver commits to p. The polynomial is copied, so later changes to p do
// not affect the prover.
func NewProver(p polynomial.Polynomial, setup *trustedsetup.Setup) (*Prover, error) {
	poly := p.Trim()
	commitment, err := Commit(poly, setup)
	if err != nil {
		return nil, fmt.Errorf("failed to commit to polynomial: %w", err)
	}
	return &Prover{setup: setup, poly: poly, commitment: commitment}, nil
}

// Commitment returns [p(s)]₁.
func (pr *Prover) Commitment() bn254.G1Affine {
	return pr.commitment
}

// Polynomial returns a copy of the committed polynomial.
func (pr *Prover) Polynomial() polynomial.Polynomial {
	return pr.poly.Clone()
}

// Open proves the evaluation of the committed polynomial at z.
func (pr *Prover) Open(z fr.Element) (*Proof, error) {
	defer log.Elapsed(time.Now(), "single-point proof generated", "degree", pr.poly.Degree())

	y := pr.poly.Eval(&z)
	q, err := quotient(pr.poly.SubConstant(&y), polynomial.Linear(&z))
	if err != nil {
		return nil, err
	}
	h, err := Commit(q, pr.setup)
	if err != nil {
		return nil, fmt.Errorf("failed to commit to quotient: %w", err)
	}
	return &Proof{
		PolynomialCommitment: pr.commitment,
		QuotientCommitment:   h,
		Y:                    y,
	}, nil
}

// ProveSingle commits to p and proves its evaluation at z.
func ProveSingle(p polynomial.Polynomial, z fr.Element, setup *trustedsetup.Setup) (*Proof, error) {
	prover, err := NewProver(p, setup)
	if err != nil {
		return nil, err
	}
	return prover.Open(z)
}

// VerifySingle checks that proof opens its commitment to proof.Y at z:
//
//	e(H, [s]₂ - [z]₂) == e(C - [y]₁, G₂)
//
// A setup without [s]₂ or a pairing failure makes the proof invalid.
func VerifySingle(proof *Proof, z fr.Element, setup *trustedsetup.Setup) bool {
	if proof == nil || setup == nil {
		return false
	}
	if len(setup.G2) < 2 {
		log.Warnw("cannot verify single-point proof", "reason", "setup has no [s]₂", "g2Powers", len(setup.G2))
		return false
	}

	zG2 := curve.ScalarBaseMulG2(&z)
	sMinusZ := curve.SubG2(&setup.G2[1], &zG2)
	yG1 := curve.ScalarBaseMulG1(&proof.Y)
	cMinusY := curve.SubG1(&proof.PolynomialCommitment, &yG1)

	ok, err := curve.PairingEqual(&proof.QuotientCommitment, &sMinusZ, &cMinusY, &setup.G2[0])
	if err != nil {
		log.Warnw("pairing check failed", "error", err.Error())
		return false
	}
	if !ok {
		log.Debugw("single-point proof rejected")
	}
	return ok
}

// quotient divides num by den, failing with ErrInvalidWitness when the
// division leaves a remainder.
func quotient(num, den polynomial.Polynomial) (polynomial.Polynomial, error) {
	q, err := num.DivExact(den)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidWitness, err)
	}
	return q, nil
}
