// Package trustedsetup provides the public parameters of the KZG commitment
// scheme: the powers of a secret s embedded in both source groups,
//
//	G1[i] = [sⁱ]₁ for i = 0..maxDegree
//	G2[i] = [sⁱ]₂ for i = 0..maxOpenings
//
// The provers and verifiers only ever see a *Setup. How it was produced is
// hidden behind the Generator interface, so the single-party Insecure
// generator can be swapped for the output of a real multi-party ceremony
// without touching the protocol code.
package trustedsetup

import (
	"errors"
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	curve "github.com/vocdoni/davinci-kzg/crypto/ecc/bn254"
)

var (
	// ErrInvalidSize is returned when the requested setup sizes are invalid.
	ErrInvalidSize = errors.New("invalid trusted setup size")
	// ErrInconsistentSetup is returned by Verify when the powers do not
	// derive from a single secret.
	ErrInconsistentSetup = errors.New("inconsistent trusted setup")
)

// Setup holds the public parameters. The slices are shared by every caller
// and must be treated as read-only.
type Setup struct {
	G1 []bn254.G1Affine
	G2 []bn254.G2Affine
}

// Generator produces public parameters able to commit to polynomials up to
// maxDegree and to open up to maxOpenings points at once.
type Generator interface {
	Generate(maxDegree, maxOpenings int) (*Setup, error)
}

// MaxDegree returns the highest polynomial degree the setup can commit to.
func (s *Setup) MaxDegree() int {
	return len(s.G1) - 1
}

// MaxOpenings returns the largest number of points a multi-point proof can
// open with this setup.
func (s *Setup) MaxOpenings() int {
	return len(s.G2) - 1
}

// Verify checks that both power vectors start at the generators and derive
// from the same secret:
//
//	e(G1[i+1], G2[0]) == e(G1[i], G2[1])
//	e(G1[0], G2[j+1]) == e(G1[1], G2[j])
//
// It costs two pairings per power and is meant for setups loaded from an
// untrusted source.
func (s *Setup) Verify() error {
	if len(s.G1) < 2 || len(s.G2) < 2 {
		return fmt.Errorf("%w: need at least two powers per group, have %d and %d", ErrInvalidSize, len(s.G1), len(s.G2))
	}
	g1, g2 := curve.G1Generator(), curve.G2Generator()
	if !s.G1[0].Equal(&g1) {
		return fmt.Errorf("%w: G1[0] is not the generator", ErrInconsistentSetup)
	}
	if !s.G2[0].Equal(&g2) {
		return fmt.Errorf("%w: G2[0] is not the generator", ErrInconsistentSetup)
	}
	for i := 0; i+1 < len(s.G1); i++ {
		ok, err := curve.PairingEqual(&s.G1[i+1], &s.G2[0], &s.G1[i], &s.G2[1])
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: G1[%d]", ErrInconsistentSetup, i+1)
		}
	}
	for j := 0; j+1 < len(s.G2); j++ {
		ok, err := curve.PairingEqual(&s.G1[0], &s.G2[j+1], &s.G1[1], &s.G2[j])
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: G2[%d]", ErrInconsistentSetup, j+1)
		}
	}
	return nil
}
