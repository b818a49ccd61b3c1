package polynomial

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Linear returns the monic degree-1 polynomial X - z.
func Linear(z *fr.Element) Polynomial {
	p := make(Polynomial, 2)
	p[0].Neg(z)
	p[1].SetOne()
	return p
}

// Vanishing returns the zero polynomial Z(X) = Π (X - z_i) of the given
// points, built by iterative multiplication. With no points it returns the
// constant 1.
func Vanishing(points []fr.Element) Polynomial {
	res := FromUint64(1)
	for i := range points {
		res = res.Mul(Linear(&points[i]))
	}
	return res
}

// Lagrange returns the unique polynomial of degree < k passing through the k
// pairs (xs[i], ys[i]):
//
//	I(X) = Σᵢ yᵢ · Πⱼ≠ᵢ (X - xⱼ)/(xᵢ - xⱼ)
//
// Each basis numerator is divided by a constant polynomial holding its
// denominator. The cost is O(k²) polynomial multiplications, fine for the
// handful of points of a batch opening. Repeated points fail with
// ErrInterpolationDegeneracy.
func Lagrange(xs, ys []fr.Element) (Polynomial, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("%w: %d points, %d values", ErrLengthMismatch, len(xs), len(ys))
	}

	res := Zero()
	var diff fr.Element
	for i := range xs {
		num := FromUint64(1)
		var den fr.Element
		den.SetOne()
		for j := range xs {
			if j == i {
				continue
			}
			if xs[i].Equal(&xs[j]) {
				return nil, fmt.Errorf("%w: point %d equals point %d", ErrInterpolationDegeneracy, i, j)
			}
			num = num.Mul(Linear(&xs[j]))
			diff.Sub(&xs[i], &xs[j])
			den.Mul(&den, &diff)
		}
		basis, err := num.DivExact(Constant(den))
		if err != nil {
			return nil, fmt.Errorf("failed to compute basis polynomial %d: %w", i, err)
		}
		res = res.Add(basis.Scale(&ys[i]))
	}
	return res.Trim(), nil
}
