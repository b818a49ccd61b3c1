package fft

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/vocdoni/davinci-kzg/crypto/polynomial"
)

// Barycentric evaluates p at x without leaving evaluation form. The
// coefficients are first evaluated over the len(p)-th roots of unity with FFT
// and the result is then computed with BarycentricEvals. len(p) must be a
// power of two and omega a primitive root of that order.
func Barycentric(p polynomial.Polynomial, omega, x fr.Element) (fr.Element, error) {
	if !IsPowerOfTwo(len(p)) {
		return fr.Element{}, fmt.Errorf("%w: %d", ErrNotPowerOfTwo, len(p))
	}
	return BarycentricEvals(FFT(p, omega), omega, x)
}

// BarycentricEvals evaluates at x the polynomial whose values at ω^i are
// evals[i], using
//
//	p(x) = (xⁿ - 1)/n · Σᵢ yᵢ·ωⁱ/(x - ωⁱ)
//
// If x is a domain point ωᵏ the formula would divide by zero, so evals[k] is
// returned directly.
func BarycentricEvals(evals []fr.Element, omega, x fr.Element) (fr.Element, error) {
	n := len(evals)
	if !IsPowerOfTwo(n) {
		return fr.Element{}, fmt.Errorf("%w: %d", ErrNotPowerOfTwo, n)
	}

	// denominators x - ωⁱ, short-circuiting on a domain point
	denoms := make([]fr.Element, n)
	var w fr.Element
	w.SetOne()
	for i := range evals {
		denoms[i].Sub(&x, &w)
		if denoms[i].IsZero() {
			return evals[i], nil
		}
		w.Mul(&w, &omega)
	}
	invDenoms := fr.BatchInvert(denoms)

	var sum, term fr.Element
	w.SetOne()
	for i := range evals {
		if !evals[i].IsZero() {
			term.Mul(&evals[i], &w)
			term.Mul(&term, &invDenoms[i])
			sum.Add(&sum, &term)
		}
		w.Mul(&w, &omega)
	}

	// (xⁿ - 1)/n
	var factor, nElem, one fr.Element
	one.SetOne()
	factor.Exp(x, big.NewInt(int64(n)))
	factor.Sub(&factor, &one)
	nElem.SetUint64(uint64(n))
	nInv, err := polynomial.Inverse(&nElem)
	if err != nil {
		return fr.Element{}, err
	}
	factor.Mul(&factor, &nInv)

	var res fr.Element
	res.Mul(&factor, &sum)
	return res, nil
}
