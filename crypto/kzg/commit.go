// Package kzg implements KZG polynomial commitments over BN254: committing to
// a polynomial with a single G1 element and proving its evaluation at one
// point or at several points at once with a constant-size proof.
package kzg

import (
	"fmt"
	"math/big"
	"runtime"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/vocdoni/davinci-kzg/crypto/polynomial"
	"github.com/vocdoni/davinci-kzg/crypto/trustedsetup"
	"golang.org/x/sync/errgroup"
)

const (
	// parallelCommitThreshold is the number of coefficients from which the
	// commitment is split into concurrently computed partial sums.
	parallelCommitThreshold = 256
	// minChunkLen is the smallest index range given to a single goroutine.
	minChunkLen = 64
)

// Commit returns [p(s)]₁ = Σ p[i]·G1[i]. Trailing zero coefficients are
// ignored, so only degree(p)+1 powers are required.
func Commit(p polynomial.Polynomial, setup *trustedsetup.Setup) (bn254.G1Affine, error) {
	if setup == nil {
		return bn254.G1Affine{}, fmt.Errorf("%w: no setup", ErrSetupTooSmall)
	}
	coeffs := significant(p)
	if len(coeffs) > len(setup.G1) {
		return bn254.G1Affine{}, fmt.Errorf("%w: degree %d needs %d G1 powers, setup has %d",
			ErrSetupTooSmall, len(coeffs)-1, len(coeffs), len(setup.G1))
	}

	partials := make([]bn254.G1Jac, chunkCount(len(coeffs)))
	err := forEachChunk(len(coeffs), len(partials), func(chunk, start, end int) {
		var term bn254.G1Jac
		var scalar big.Int
		for i := start; i < end; i++ {
			if coeffs[i].IsZero() {
				continue
			}
			term.FromAffine(&setup.G1[i])
			term.ScalarMultiplication(&term, coeffs[i].BigInt(&scalar))
			partials[chunk].AddAssign(&term)
		}
	})
	if err != nil {
		return bn254.G1Affine{}, err
	}

	var sum bn254.G1Jac
	for i := range partials {
		sum.AddAssign(&partials[i])
	}
	var res bn254.G1Affine
	res.FromJacobian(&sum)
	return res, nil
}

// CommitG2 returns [p(s)]₂ = Σ p[i]·G2[i]. It is used for the vanishing
// polynomial of multi-point openings, whose degree is bounded by the number
// of G2 powers in the setup.
func CommitG2(p polynomial.Polynomial, setup *trustedsetup.Setup) (bn254.G2Affine, error) {
	if setup == nil {
		return bn254.G2Affine{}, fmt.Errorf("%w: no setup", ErrSetupTooSmall)
	}
	coeffs := significant(p)
	if len(coeffs) > len(setup.G2) {
		return bn254.G2Affine{}, fmt.Errorf("%w: degree %d needs %d G2 powers, setup has %d",
			ErrSetupTooSmall, len(coeffs)-1, len(coeffs), len(setup.G2))
	}

	partials := make([]bn254.G2Jac, chunkCount(len(coeffs)))
	err := forEachChunk(len(coeffs), len(partials), func(chunk, start, end int) {
		var term bn254.G2Jac
		var scalar big.Int
		for i := start; i < end; i++ {
			if coeffs[i].IsZero() {
				continue
			}
			term.FromAffine(&setup.G2[i])
			term.ScalarMultiplication(&term, coeffs[i].BigInt(&scalar))
			partials[chunk].AddAssign(&term)
		}
	})
	if err != nil {
		return bn254.G2Affine{}, err
	}

	var sum bn254.G2Jac
	for i := range partials {
		sum.AddAssign(&partials[i])
	}
	var res bn254.G2Affine
	res.FromJacobian(&sum)
	return res, nil
}

// significant returns p without trailing zero coefficients, sharing its
// backing array.
func significant(p polynomial.Polynomial) []fr.Element {
	if len(p) == 0 {
		return nil
	}
	return p[:p.Degree()+1]
}

func chunkCount(n int) int {
	if n < parallelCommitThreshold {
		return 1
	}
	return max(1, min(runtime.NumCPU(), n/minChunkLen))
}

// forEachChunk splits [0, n) into chunks contiguous ranges and runs fn on
// each of them concurrently.
func forEachChunk(n, chunks int, fn func(chunk, start, end int)) error {
	if chunks <= 1 {
		fn(0, 0, n)
		return nil
	}
	size := (n + chunks - 1) / chunks
	var g errgroup.Group
	for chunk := range chunks {
		start := chunk * size
		end := min(start+size, n)
		if start >= end {
			continue
		}
		g.Go(func() error {
			fn(chunk, start, end)
			return nil
		})
	}
	return g.Wait()
}
