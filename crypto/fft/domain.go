// Package fft evaluates polynomials over power-of-two multiplicative subgroups
// of the BN254 scalar field (roots of unity): a recursive radix-2 FFT, its
// inverse, and the barycentric formula for points outside the domain.
package fft

import (
	"errors"
	"fmt"
	"math/big"
	"math/bits"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/vocdoni/davinci-kzg/crypto/polynomial"
)

// MaxLogSize is the 2-adicity of the BN254 scalar field: the largest
// power-of-two subgroup has order 2^28.
const MaxLogSize = 28

var (
	// ErrNotPowerOfTwo is returned when an input length is not a power of two.
	ErrNotPowerOfTwo = errors.New("length is not a power of two")
	// ErrDomainTooLarge is returned when the requested domain exceeds 2^28.
	ErrDomainTooLarge = errors.New("domain exceeds the field 2-adicity")
	// ErrPolynomialTooLarge is returned when a polynomial has more
	// coefficients than the domain has points.
	ErrPolynomialTooLarge = errors.New("polynomial larger than domain")
	// ErrSizeMismatch is returned when an evaluation vector does not match the
	// domain size.
	ErrSizeMismatch = errors.New("evaluations do not match domain size")
)

// rootOfUnity is the canonical primitive 2^28-th root of unity, g^((r-1)/2^28)
// for the smallest quadratic non-residue g.
var rootOfUnity fr.Element

func init() {
	var g, one fr.Element
	one.SetOne()
	g.SetUint64(2)
	for g.Legendre() != -1 {
		g.Add(&g, &one)
	}
	exp := new(big.Int).Sub(fr.Modulus(), big.NewInt(1))
	exp.Rsh(exp, MaxLogSize)
	rootOfUnity.Exp(g, exp)

	// a non-residue guarantees rootOfUnity^(2^27) == -1
	check := rootOfUnity
	for range MaxLogSize - 1 {
		check.Square(&check)
	}
	var minusOne fr.Element
	minusOne.SetOne()
	minusOne.Neg(&minusOne)
	if !check.Equal(&minusOne) {
		panic("fft: root of unity is not primitive")
	}
}

// RootOfUnity returns a primitive n-th root of unity, obtained by repeatedly
// squaring the primitive 2^28-th root down to order n.
func RootOfUnity(n uint64) (fr.Element, error) {
	if !IsPowerOfTwo(n) {
		return fr.Element{}, fmt.Errorf("%w: %d", ErrNotPowerOfTwo, n)
	}
	logN := bits.TrailingZeros64(n)
	if logN > MaxLogSize {
		return fr.Element{}, fmt.Errorf("%w: 2^%d", ErrDomainTooLarge, logN)
	}
	omega := rootOfUnity
	for range MaxLogSize - logN {
		omega.Square(&omega)
	}
	return omega, nil
}

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo[T ~int | ~uint64](n T) bool {
	return n > 0 && n&(n-1) == 0
}

// NextPowerOfTwo returns the smallest power of two >= n (1 for n == 0).
func NextPowerOfTwo(n uint64) uint64 {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len64(n-1)
}

// Domain is the multiplicative subgroup {ω^0, ..., ω^(Size-1)}.
type Domain struct {
	Size         uint64
	LogSize      int
	Generator    fr.Element // ω
	GeneratorInv fr.Element // ω^-1
	SizeInv      fr.Element // 1/Size
}

// NewDomain returns the smallest power-of-two domain holding at least size
// points.
func NewDomain(size uint64) (*Domain, error) {
	n := NextPowerOfTwo(size)
	omega, err := RootOfUnity(n)
	if err != nil {
		return nil, err
	}
	d := &Domain{
		Size:      n,
		LogSize:   bits.TrailingZeros64(n),
		Generator: omega,
	}
	d.GeneratorInv.Inverse(&omega)
	d.SizeInv.SetUint64(n)
	d.SizeInv.Inverse(&d.SizeInv)
	return d, nil
}

// Point returns ω^i.
func (d *Domain) Point(i uint64) fr.Element {
	var res fr.Element
	res.Exp(d.Generator, new(big.Int).SetUint64(i%d.Size))
	return res
}

// Points returns every domain point in natural order.
func (d *Domain) Points() []fr.Element {
	points := make([]fr.Element, d.Size)
	points[0].SetOne()
	for i := uint64(1); i < d.Size; i++ {
		points[i].Mul(&points[i-1], &d.Generator)
	}
	return points
}

// FFT evaluates p at every domain point; entry i holds p(ω^i). Shorter
// polynomials are zero padded.
func (d *Domain) FFT(p polynomial.Polynomial) ([]fr.Element, error) {
	if uint64(len(p)) > d.Size {
		return nil, fmt.Errorf("%w: %d coefficients, domain size %d", ErrPolynomialTooLarge, len(p), d.Size)
	}
	return FFT(p.PadTo(int(d.Size)), d.Generator), nil
}

// InverseFFT interpolates the polynomial whose evaluations at ω^i are
// evals[i].
func (d *Domain) InverseFFT(evals []fr.Element) (polynomial.Polynomial, error) {
	if uint64(len(evals)) != d.Size {
		return nil, fmt.Errorf("%w: %d evaluations, domain size %d", ErrSizeMismatch, len(evals), d.Size)
	}
	coeffs := FFT(evals, d.GeneratorInv)
	return polynomial.Polynomial(coeffs).Scale(&d.SizeInv), nil
}
