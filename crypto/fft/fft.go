package fft

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"golang.org/x/sync/errgroup"
)

// ParallelThreshold is the input length from which the even and odd halves
// of a recursion step are evaluated concurrently.
var ParallelThreshold = 1 << 11

// FFT evaluates the polynomial with the given coefficients at every power of
// omega using the recursive radix-2 Cooley-Tukey butterfly: the even and odd
// coefficients are evaluated at omega², then combined as
//
//	out[i]       = even[i] + ω^i·odd[i]
//	out[i + n/2] = even[i] - ω^i·odd[i]
//
// Entry i of the result is the evaluation at ω^i. The length of coeffs must be
// a power of two and omega a primitive root of that order; otherwise the
// result is meaningless (but FFT does not panic). Callers pad with zeros.
func FFT(coeffs []fr.Element, omega fr.Element) []fr.Element {
	n := len(coeffs)
	if n <= 1 {
		res := make([]fr.Element, n)
		copy(res, coeffs)
		return res
	}

	even := make([]fr.Element, 0, (n+1)/2)
	odd := make([]fr.Element, 0, n/2)
	for i := range coeffs {
		if i%2 == 0 {
			even = append(even, coeffs[i])
		} else {
			odd = append(odd, coeffs[i])
		}
	}

	var omegaSq fr.Element
	omegaSq.Square(&omega)

	var evenEvals, oddEvals []fr.Element
	if n >= ParallelThreshold {
		var g errgroup.Group
		g.Go(func() error {
			evenEvals = FFT(even, omegaSq)
			return nil
		})
		oddEvals = FFT(odd, omegaSq)
		_ = g.Wait()
	} else {
		evenEvals = FFT(even, omegaSq)
		oddEvals = FFT(odd, omegaSq)
	}

	res := make([]fr.Element, n)
	half := n / 2
	var w, t fr.Element
	w.SetOne()
	for i := range half {
		t.Mul(&w, &oddEvals[i])
		res[i].Add(&evenEvals[i], &t)
		res[i+half].Sub(&evenEvals[i], &t)
		w.Mul(&w, &omega)
	}
	return res
}
