package polynomial

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	gnarkpoly "github.com/consensys/gnark-crypto/ecc/bn254/fr/polynomial"
	qt "github.com/frankban/quicktest"
)

func element(v uint64) fr.Element {
	var e fr.Element
	e.SetUint64(v)
	return e
}

func randomElement(c *qt.C) fr.Element {
	var e fr.Element
	_, err := e.SetRandom()
	c.Assert(err, qt.IsNil)
	return e
}

func TestDegreeAndTrim(t *testing.T) {
	c := qt.New(t)

	c.Assert(Zero().Degree(), qt.Equals, 0)
	c.Assert(Zero().IsZero(), qt.IsTrue)
	c.Assert(New().Equal(Zero()), qt.IsTrue)

	p := FromUint64(1, 2, 3, 0, 0)
	c.Assert(p.Degree(), qt.Equals, 2)
	c.Assert(p.Trim(), qt.HasLen, 3)
	c.Assert(p, qt.HasLen, 5, qt.Commentf("Trim must not modify the receiver"))
	c.Assert(p.Equal(FromUint64(1, 2, 3)), qt.IsTrue)
	c.Assert(FromUint64(0, 0, 0).Trim(), qt.HasLen, 1)
	c.Assert(p.PadTo(8), qt.HasLen, 8)
	c.Assert(p.PadTo(8).Equal(p), qt.IsTrue)
}

func TestAddSub(t *testing.T) {
	c := qt.New(t)

	a := FromUint64(1, 2, 3)
	b := FromUint64(5, 7)

	sum := a.Add(b)
	c.Assert(sum, qt.HasLen, 3)
	c.Assert(sum.Equal(FromUint64(6, 9, 3)), qt.IsTrue, qt.Commentf("got %s", sum))

	diff := sum.Sub(b)
	c.Assert(diff.Equal(a), qt.IsTrue, qt.Commentf("got %s", diff))

	// subtracting a polynomial from itself leaves trailing zeros behind
	self := a.Sub(a)
	c.Assert(self, qt.HasLen, 3)
	c.Assert(self.IsZero(), qt.IsTrue)
	c.Assert(self.Degree(), qt.Equals, 0)
}

func TestMulLiteral(t *testing.T) {
	c := qt.New(t)

	// (3 + 2X + X²)·(2 + X) = 6 + 7X + 4X² + X³
	got := FromUint64(3, 2, 1).Mul(FromUint64(2, 1))
	c.Assert(got, qt.HasLen, 4)
	c.Assert(got.Equal(FromUint64(6, 7, 4, 1)), qt.IsTrue, qt.Commentf("got %s", got))
}

func TestDivLiteral(t *testing.T) {
	c := qt.New(t)

	// (3 + 2X + X²) / (2 + X) = X, remainder 3
	q, r, err := FromUint64(3, 2, 1).Div(FromUint64(2, 1))
	c.Assert(err, qt.IsNil)
	c.Assert(q.Equal(FromUint64(0, 1)), qt.IsTrue, qt.Commentf("quotient %s", q))
	c.Assert(r.Equal(FromUint64(3)), qt.IsTrue, qt.Commentf("remainder %s", r))
	c.Assert(r, qt.HasLen, 1)
}

func TestDivProperty(t *testing.T) {
	c := qt.New(t)

	for _, tc := range []struct{ num, den int }{
		{7, 1}, {7, 3}, {15, 7}, {4, 4}, {9, 0},
	} {
		n, err := Random(tc.num)
		c.Assert(err, qt.IsNil)
		d, err := Random(tc.den)
		c.Assert(err, qt.IsNil)

		q, r, err := n.Div(d)
		c.Assert(err, qt.IsNil)
		c.Assert(q.Degree(), qt.Equals, tc.num-tc.den)
		if tc.den > 0 {
			c.Assert(r.Degree() < d.Degree(), qt.IsTrue)
		}
		c.Assert(q.Mul(d).Add(r).Equal(n), qt.IsTrue, qt.Commentf("deg n=%d deg d=%d", tc.num, tc.den))
	}
}

func TestDivErrors(t *testing.T) {
	c := qt.New(t)

	p := FromUint64(1, 2, 3)

	_, _, err := p.Div(Zero())
	c.Assert(err, qt.ErrorIs, ErrDivisionByZero)
	_, _, err = p.Div(FromUint64(0, 0))
	c.Assert(err, qt.ErrorIs, ErrDivisionByZero)

	q, r, err := p.Div(FromUint64(1, 1, 1, 1))
	c.Assert(err, qt.ErrorIs, ErrDegreeMismatch)
	c.Assert(q.IsZero(), qt.IsTrue)
	c.Assert(r, qt.DeepEquals, p)
	// the division identity still holds
	c.Assert(q.Mul(FromUint64(1, 1, 1, 1)).Add(r).Equal(p), qt.IsTrue)

	// padded divisors are trimmed before comparing degrees
	_, _, err = p.Div(FromUint64(1, 1, 0, 0, 0))
	c.Assert(err, qt.IsNil)

	q, r, err = Zero().Div(FromUint64(1, 1))
	c.Assert(err, qt.IsNil)
	c.Assert(q.IsZero(), qt.IsTrue)
	c.Assert(r.IsZero(), qt.IsTrue)
}

func TestDivTrimsPaddedDivisor(t *testing.T) {
	c := qt.New(t)

	// a zero leading coefficient in the divisor is padding, not a zero
	// divisor: 2 + X + 0·X² divides as 2 + X
	n := FromUint64(3, 2, 1)
	padded := FromUint64(2, 1, 0)
	q, r, err := n.Div(padded)
	c.Assert(err, qt.IsNil)
	c.Assert(q.Equal(FromUint64(0, 1)), qt.IsTrue)
	c.Assert(r.Equal(FromUint64(3)), qt.IsTrue)

	wantQ, wantR, err := n.Div(FromUint64(2, 1))
	c.Assert(err, qt.IsNil)
	c.Assert(q, qt.DeepEquals, wantQ)
	c.Assert(r, qt.DeepEquals, wantR)
	c.Assert(padded, qt.HasLen, 3)
}

func TestDivExact(t *testing.T) {
	c := qt.New(t)

	a, err := Random(5)
	c.Assert(err, qt.IsNil)
	b, err := Random(3)
	c.Assert(err, qt.IsNil)

	q, err := a.Mul(b).DivExact(b)
	c.Assert(err, qt.IsNil)
	c.Assert(q.Equal(a), qt.IsTrue)

	one := element(1)
	_, err = a.Mul(b).SubConstant(&one).DivExact(b)
	c.Assert(err, qt.ErrorIs, ErrNotDivisible)
}

func TestEvalMatchesGnark(t *testing.T) {
	c := qt.New(t)

	p, err := Random(31)
	c.Assert(err, qt.IsNil)
	ref := gnarkpoly.Polynomial(p.Clone())

	for range 8 {
		x := randomElement(c)
		c.Assert(p.Eval(&x), qt.Equals, ref.Eval(&x))
	}

	// 1 + 2·3 + 3·3² = 34
	x := element(3)
	c.Assert(FromUint64(1, 2, 3).Eval(&x), qt.Equals, element(34))
}

func TestRandomDegree(t *testing.T) {
	c := qt.New(t)

	for _, d := range []int{0, 1, 8, 33} {
		p, err := Random(d)
		c.Assert(err, qt.IsNil)
		c.Assert(p, qt.HasLen, d+1)
		c.Assert(p.Degree(), qt.Equals, d)
	}
	_, err := Random(-1)
	c.Assert(err, qt.IsNotNil)
}

func TestScaleAndSubConstant(t *testing.T) {
	c := qt.New(t)

	p := FromUint64(1, 2, 3)
	two := element(2)
	c.Assert(p.Scale(&two).Equal(FromUint64(2, 4, 6)), qt.IsTrue)

	one := element(1)
	got := p.SubConstant(&one)
	c.Assert(got.Equal(FromUint64(0, 2, 3)), qt.IsTrue)
	c.Assert(p.Equal(FromUint64(1, 2, 3)), qt.IsTrue, qt.Commentf("receiver modified"))
}

func TestInverse(t *testing.T) {
	c := qt.New(t)

	_, err := Inverse(&fr.Element{})
	c.Assert(err, qt.ErrorIs, ErrDivisionByZero)

	x := randomElement(c)
	for x.IsZero() {
		x = randomElement(c)
	}
	inv, err := Inverse(&x)
	c.Assert(err, qt.IsNil)
	var prod fr.Element
	prod.Mul(&x, &inv)
	c.Assert(prod.IsOne(), qt.IsTrue)
}

func TestString(t *testing.T) {
	c := qt.New(t)

	c.Assert(Zero().String(), qt.Equals, "0")
	c.Assert(FromUint64(3, 0, 1).String(), qt.Equals, "3 + 1·X^2")
	c.Assert(FromUint64(0, 5).String(), qt.Equals, "5·X")
}
