package polynomial

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Div performs schoolbook long division of p by d, from the top coefficient
// down, and returns the quotient and remainder such that q·d + r == p, with
// both results trimmed.
//
// It fails with ErrDivisionByZero if d is the zero polynomial. If the degree
// of d exceeds the degree of p it fails with ErrDegreeMismatch and returns
// the zero quotient together with p unchanged as remainder. The zero
// polynomial is divisible by any non-zero divisor.
func (p Polynomial) Div(d Polynomial) (Polynomial, Polynomial, error) {
	divisor := d.Trim()
	if divisor.IsZero() {
		return nil, nil, ErrDivisionByZero
	}
	dividend := p.Trim()
	if dividend.IsZero() {
		return Zero(), Zero(), nil
	}
	if divisor.Degree() > dividend.Degree() {
		return Zero(), p.Clone(), fmt.Errorf("%w: %d > %d", ErrDegreeMismatch, divisor.Degree(), dividend.Degree())
	}

	leadInv, err := Inverse(&divisor[len(divisor)-1])
	if err != nil {
		return nil, nil, err
	}

	rem := dividend
	quo := make(Polynomial, len(dividend)-len(divisor)+1)
	var tmp fr.Element
	for i := len(quo) - 1; i >= 0; i-- {
		top := &rem[i+len(divisor)-1]
		if top.IsZero() {
			continue
		}
		quo[i].Mul(top, &leadInv)
		for j := range divisor {
			tmp.Mul(&quo[i], &divisor[j])
			rem[i+j].Sub(&rem[i+j], &tmp)
		}
	}

	if len(divisor) == 1 {
		return quo.Trim(), Zero(), nil
	}
	return quo.Trim(), rem[:len(divisor)-1].Trim(), nil
}

// DivExact divides p by d and fails with ErrNotDivisible when the remainder
// is not zero.
func (p Polynomial) DivExact(d Polynomial) (Polynomial, error) {
	q, r, err := p.Div(d)
	if err != nil {
		return nil, err
	}
	if !r.IsZero() {
		return nil, fmt.Errorf("%w: remainder degree %d", ErrNotDivisible, r.Degree())
	}
	return q, nil
}
