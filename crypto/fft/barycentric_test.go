package fft

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	qt "github.com/frankban/quicktest"
	"github.com/vocdoni/davinci-kzg/crypto/polynomial"
)

func TestBarycentricMatchesEval(t *testing.T) {
	c := qt.New(t)

	for _, n := range []int{1, 2, 8, 64} {
		p, err := polynomial.Random(n - 1)
		c.Assert(err, qt.IsNil)
		omega, err := RootOfUnity(uint64(n))
		c.Assert(err, qt.IsNil)

		for range 4 {
			var x fr.Element
			_, err := x.SetRandom()
			c.Assert(err, qt.IsNil)

			got, err := Barycentric(p, omega, x)
			c.Assert(err, qt.IsNil)
			c.Assert(got, qt.Equals, p.Eval(&x), qt.Commentf("n=%d", n))
		}
	}
}

func TestBarycentricOnDomainPoint(t *testing.T) {
	c := qt.New(t)

	d, err := NewDomain(16)
	c.Assert(err, qt.IsNil)
	p, err := polynomial.Random(15)
	c.Assert(err, qt.IsNil)

	for _, i := range []uint64{0, 1, 7, 15} {
		x := d.Point(i)
		got, err := Barycentric(p, d.Generator, x)
		c.Assert(err, qt.IsNil)
		c.Assert(got, qt.Equals, p.Eval(&x), qt.Commentf("domain index %d", i))
	}
}

func TestBarycentricEvals(t *testing.T) {
	c := qt.New(t)

	// values 1..8 on the 8-th roots of unity, as in a blob in evaluation form
	d, err := NewDomain(8)
	c.Assert(err, qt.IsNil)
	evals := make([]fr.Element, d.Size)
	for i := range evals {
		evals[i].SetUint64(uint64(i + 1))
	}
	p, err := d.InverseFFT(evals)
	c.Assert(err, qt.IsNil)

	var x fr.Element
	x.SetUint64(123456789)
	got, err := BarycentricEvals(evals, d.Generator, x)
	c.Assert(err, qt.IsNil)
	c.Assert(got, qt.Equals, p.Eval(&x))

	// zero evaluations are skipped without changing the result
	evals[3].SetZero()
	p, err = d.InverseFFT(evals)
	c.Assert(err, qt.IsNil)
	got, err = BarycentricEvals(evals, d.Generator, x)
	c.Assert(err, qt.IsNil)
	c.Assert(got, qt.Equals, p.Eval(&x))
}

func TestBarycentricRejectsBadLength(t *testing.T) {
	c := qt.New(t)

	omega, err := RootOfUnity(4)
	c.Assert(err, qt.IsNil)
	_, err = Barycentric(polynomial.FromUint64(1, 2, 3), omega, fr.One())
	c.Assert(err, qt.ErrorIs, ErrNotPowerOfTwo)
	_, err = BarycentricEvals(nil, omega, fr.One())
	c.Assert(err, qt.ErrorIs, ErrNotPowerOfTwo)
}
