// Package bn254 is the field and group boundary used by the commitment scheme.
// It provides a thin wrapper around the gnark-crypto BN254 implementation:
// generators, scalar multiplication, group addition and the pairing check.
// Nothing above this package touches curve formulas directly.
package bn254

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

var (
	g1Gen bn254.G1Affine
	g2Gen bn254.G2Affine
)

func init() {
	_, _, g1Gen, g2Gen = bn254.Generators()
}

// ScalarField returns the modulus of the BN254 scalar field.
func ScalarField() *big.Int {
	return fr.Modulus()
}

// G1Generator returns the canonical generator of G1.
func G1Generator() bn254.G1Affine {
	return g1Gen
}

// G2Generator returns the canonical generator of G2 (the H of the pairing
// equations).
func G2Generator() bn254.G2Affine {
	return g2Gen
}

// RandomScalar samples a uniformly random element of the scalar field.
func RandomScalar() (fr.Element, error) {
	var s fr.Element
	if _, err := s.SetRandom(); err != nil {
		return fr.Element{}, fmt.Errorf("failed to sample scalar: %w", err)
	}
	return s, nil
}

// ScalarBaseMulG1 returns s·G1.
func ScalarBaseMulG1(s *fr.Element) bn254.G1Affine {
	return ScalarMulG1(&g1Gen, s)
}

// ScalarBaseMulG2 returns s·G2.
func ScalarBaseMulG2(s *fr.Element) bn254.G2Affine {
	return ScalarMulG2(&g2Gen, s)
}

// ScalarMulG1 returns s·p.
func ScalarMulG1(p *bn254.G1Affine, s *fr.Element) bn254.G1Affine {
	var res bn254.G1Affine
	res.ScalarMultiplication(p, s.BigInt(new(big.Int)))
	return res
}

// ScalarMulG2 returns s·p.
func ScalarMulG2(p *bn254.G2Affine, s *fr.Element) bn254.G2Affine {
	var res bn254.G2Affine
	res.ScalarMultiplication(p, s.BigInt(new(big.Int)))
	return res
}

// AddG1 returns a + b.
func AddG1(a, b *bn254.G1Affine) bn254.G1Affine {
	var acc bn254.G1Jac
	acc.FromAffine(a)
	var tmp bn254.G1Jac
	tmp.FromAffine(b)
	acc.AddAssign(&tmp)
	var res bn254.G1Affine
	res.FromJacobian(&acc)
	return res
}

// SubG1 returns a - b.
func SubG1(a, b *bn254.G1Affine) bn254.G1Affine {
	var neg bn254.G1Affine
	neg.Neg(b)
	return AddG1(a, &neg)
}

// AddG2 returns a + b.
func AddG2(a, b *bn254.G2Affine) bn254.G2Affine {
	var acc bn254.G2Jac
	acc.FromAffine(a)
	var tmp bn254.G2Jac
	tmp.FromAffine(b)
	acc.AddAssign(&tmp)
	var res bn254.G2Affine
	res.FromJacobian(&acc)
	return res
}

// SubG2 returns a - b.
func SubG2(a, b *bn254.G2Affine) bn254.G2Affine {
	var neg bn254.G2Affine
	neg.Neg(b)
	return AddG2(a, &neg)
}

// PairingEqual reports whether e(a1, a2) == e(b1, b2). Both pairings are
// folded into a single check e(a1, a2)·e(-b1, b2) == 1, so only one final
// exponentiation is computed.
func PairingEqual(a1 *bn254.G1Affine, a2 *bn254.G2Affine, b1 *bn254.G1Affine, b2 *bn254.G2Affine) (bool, error) {
	var negB1 bn254.G1Affine
	negB1.Neg(b1)
	ok, err := bn254.PairingCheck(
		[]bn254.G1Affine{*a1, negB1},
		[]bn254.G2Affine{*a2, *b2},
	)
	if err != nil {
		return false, fmt.Errorf("pairing check failed: %w", err)
	}
	return ok, nil
}
