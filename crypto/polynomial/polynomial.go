// Package polynomial implements dense univariate polynomials over the BN254
// scalar field.
//
// A Polynomial stores its coefficients in increasing order: p[i] is the
// coefficient of X^i. Trailing zero coefficients are allowed (FFT callers pad
// to a power of two) and are ignored by Degree, Equal and the commitment code.
// Methods never modify the receiver or their arguments; every result is a
// freshly allocated slice.
package polynomial

import (
	"fmt"
	"strings"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Polynomial is a dense polynomial in coefficient form.
type Polynomial []fr.Element

// New returns a polynomial holding a copy of coeffs. With no coefficients it
// returns the zero polynomial.
func New(coeffs ...fr.Element) Polynomial {
	if len(coeffs) == 0 {
		return Zero()
	}
	p := make(Polynomial, len(coeffs))
	copy(p, coeffs)
	return p
}

// FromUint64 builds a polynomial from small integer coefficients.
func FromUint64(coeffs ...uint64) Polynomial {
	if len(coeffs) == 0 {
		return Zero()
	}
	p := make(Polynomial, len(coeffs))
	for i, c := range coeffs {
		p[i].SetUint64(c)
	}
	return p
}

// Zero returns the zero polynomial, a single zero coefficient.
func Zero() Polynomial {
	return make(Polynomial, 1)
}

// Constant returns the degree-0 polynomial c.
func Constant(c fr.Element) Polynomial {
	return Polynomial{c}
}

// Random returns a polynomial of exactly the given degree with uniformly
// random coefficients.
func Random(degree int) (Polynomial, error) {
	if degree < 0 {
		return nil, fmt.Errorf("invalid degree %d", degree)
	}
	p := make(Polynomial, degree+1)
	for i := range p {
		if _, err := p[i].SetRandom(); err != nil {
			return nil, fmt.Errorf("failed to sample coefficient %d: %w", i, err)
		}
	}
	// the leading coefficient must not vanish or the degree would drop
	for p[degree].IsZero() {
		if _, err := p[degree].SetRandom(); err != nil {
			return nil, fmt.Errorf("failed to sample leading coefficient: %w", err)
		}
	}
	return p, nil
}

// Clone returns a deep copy of p.
func (p Polynomial) Clone() Polynomial {
	return New(p...)
}

// Degree returns the index of the highest non-zero coefficient. The zero
// polynomial has degree 0.
func (p Polynomial) Degree() int {
	for i := len(p) - 1; i > 0; i-- {
		if !p[i].IsZero() {
			return i
		}
	}
	return 0
}

// IsZero reports whether every coefficient is zero.
func (p Polynomial) IsZero() bool {
	for i := range p {
		if !p[i].IsZero() {
			return false
		}
	}
	return true
}

// Trim returns a copy of p without trailing zero coefficients. The zero
// polynomial keeps a single zero coefficient.
func (p Polynomial) Trim() Polynomial {
	if len(p) == 0 {
		return Zero()
	}
	return New(p[:p.Degree()+1]...)
}

// Equal reports whether p and q represent the same polynomial, ignoring
// trailing zero coefficients.
func (p Polynomial) Equal(q Polynomial) bool {
	n := max(len(p), len(q))
	for i := range n {
		a, b := p.coeff(i), q.coeff(i)
		if !a.Equal(&b) {
			return false
		}
	}
	return true
}

// coeff returns the i-th coefficient, zero beyond the slice length.
func (p Polynomial) coeff(i int) fr.Element {
	if i < len(p) {
		return p[i]
	}
	return fr.Element{}
}

// Add returns p + q over the longer of both lengths.
func (p Polynomial) Add(q Polynomial) Polynomial {
	res := make(Polynomial, max(len(p), len(q)))
	for i := range res {
		a, b := p.coeff(i), q.coeff(i)
		res[i].Add(&a, &b)
	}
	if len(res) == 0 {
		return Zero()
	}
	return res
}

// Sub returns p - q over the longer of both lengths.
func (p Polynomial) Sub(q Polynomial) Polynomial {
	res := make(Polynomial, max(len(p), len(q)))
	for i := range res {
		a, b := p.coeff(i), q.coeff(i)
		res[i].Sub(&a, &b)
	}
	if len(res) == 0 {
		return Zero()
	}
	return res
}

// Mul returns the product p·q as a discrete convolution; the result has
// len(p)+len(q)-1 coefficients.
func (p Polynomial) Mul(q Polynomial) Polynomial {
	if len(p) == 0 || len(q) == 0 {
		return Zero()
	}
	res := make(Polynomial, len(p)+len(q)-1)
	var tmp fr.Element
	for i := range p {
		if p[i].IsZero() {
			continue
		}
		for j := range q {
			tmp.Mul(&p[i], &q[j])
			res[i+j].Add(&res[i+j], &tmp)
		}
	}
	return res
}

// Scale returns c·p.
func (p Polynomial) Scale(c *fr.Element) Polynomial {
	res := make(Polynomial, len(p))
	for i := range p {
		res[i].Mul(&p[i], c)
	}
	return res
}

// SubConstant returns p - c, touching only the constant term.
func (p Polynomial) SubConstant(c *fr.Element) Polynomial {
	res := p.Clone()
	res[0].Sub(&res[0], c)
	return res
}

// Eval returns p(x) using Horner's rule.
func (p Polynomial) Eval(x *fr.Element) fr.Element {
	var res fr.Element
	for i := len(p) - 1; i >= 0; i-- {
		res.Mul(&res, x)
		res.Add(&res, &p[i])
	}
	return res
}

// PadTo returns a copy of p extended with zero coefficients up to n. If p is
// already at least n long the copy is returned unchanged.
func (p Polynomial) PadTo(n int) Polynomial {
	res := make(Polynomial, max(n, len(p)))
	copy(res, p)
	return res
}

// String renders the polynomial as "c0 + c1·X + c2·X^2 ...", skipping zero
// terms.
func (p Polynomial) String() string {
	var terms []string
	for i := range p {
		if p[i].IsZero() {
			continue
		}
		switch i {
		case 0:
			terms = append(terms, p[i].String())
		case 1:
			terms = append(terms, p[i].String()+"·X")
		default:
			terms = append(terms, fmt.Sprintf("%s·X^%d", p[i].String(), i))
		}
	}
	if len(terms) == 0 {
		return "0"
	}
	return strings.Join(terms, " + ")
}

// Inverse returns 1/x in the scalar field, failing on zero instead of
// returning zero as fr.Element.Inverse does.
func Inverse(x *fr.Element) (fr.Element, error) {
	if x.IsZero() {
		return fr.Element{}, ErrDivisionByZero
	}
	var inv fr.Element
	inv.Inverse(x)
	return inv, nil
}
