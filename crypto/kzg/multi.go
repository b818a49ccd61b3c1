package kzg

import (
	"fmt"
	"time"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	curve "github.com/vocdoni/davinci-kzg/crypto/ecc/bn254"
	"github.com/vocdoni/davinci-kzg/crypto/polynomial"
	"github.com/vocdoni/davinci-kzg/crypto/trustedsetup"
	"github.com/vocdoni/davinci-kzg/log"
)

// MultiProof opens a commitment at several points z₀..z_{k-1} at once. Next
// to the commitment C and the quotient commitment π it carries the
// commitment Ĉ to the interpolation polynomial I of the opened values and the
// commitment Ẑ, in G2, to the vanishing polynomial Z = Π(X - zᵢ).
type MultiProof struct {
	PolynomialCommitment     bn254.G1Affine
	QuotientCommitment       bn254.G1Affine
	InterpolationCommitment  bn254.G1Affine
	ZeroPolynomialCommitment bn254.G2Affine
}

// OpenMulti proves the evaluations of the committed polynomial at points and
// returns them together with the proof. The number of points must be at
// least one and lower than the polynomial degree, and the setup must hold
// len(points)+1 G2 powers.
func (pr *Prover) OpenMulti(points []fr.Element) (*MultiProof, []fr.Element, error) {
	if err := checkOpenings(pr.poly.Degree(), len(points), pr.setup); err != nil {
		return nil, nil, err
	}
	defer log.Elapsed(time.Now(), "multi-point proof generated",
		"degree", pr.poly.Degree(), "points", len(points))

	values := make([]fr.Element, len(points))
	for i := range points {
		values[i] = pr.poly.Eval(&points[i])
	}
	interpolation, err := polynomial.Lagrange(points, values)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to interpolate opening points: %w", err)
	}
	zero := polynomial.Vanishing(points)

	q, err := quotient(pr.poly.Sub(interpolation), zero)
	if err != nil {
		return nil, nil, err
	}

	proof := &MultiProof{PolynomialCommitment: pr.commitment}
	if proof.QuotientCommitment, err = Commit(q, pr.setup); err != nil {
		return nil, nil, fmt.Errorf("failed to commit to quotient: %w", err)
	}
	if proof.InterpolationCommitment, err = Commit(interpolation, pr.setup); err != nil {
		return nil, nil, fmt.Errorf("failed to commit to interpolation polynomial: %w", err)
	}
	if proof.ZeroPolynomialCommitment, err = CommitG2(zero, pr.setup); err != nil {
		return nil, nil, fmt.Errorf("failed to commit to vanishing polynomial: %w", err)
	}
	return proof, values, nil
}

// ProveMulti commits to p and proves its evaluations at points.
func ProveMulti(p polynomial.Polynomial, points []fr.Element, setup *trustedsetup.Setup) (*MultiProof, error) {
	if err := checkOpenings(p.Degree(), len(points), setup); err != nil {
		return nil, err
	}
	prover, err := NewProver(p, setup)
	if err != nil {
		return nil, err
	}
	proof, _, err := prover.OpenMulti(points)
	return proof, err
}

// VerifyMulti checks the quotient relation of a multi-point proof:
//
//	e(π, Ẑ) == e(C - Ĉ, G₂)
//
// It only shows that C - Ĉ commits to a multiple of the polynomial committed
// in Ẑ. Binding the proof to concrete points and values requires
// VerifyMultiAt.
func VerifyMulti(proof *MultiProof, setup *trustedsetup.Setup) bool {
	if proof == nil || setup == nil {
		return false
	}
	if len(setup.G2) == 0 {
		log.Warnw("cannot verify multi-point proof", "reason", "empty setup")
		return false
	}

	cMinusI := curve.SubG1(&proof.PolynomialCommitment, &proof.InterpolationCommitment)
	ok, err := curve.PairingEqual(&proof.QuotientCommitment, &proof.ZeroPolynomialCommitment, &cMinusI, &setup.G2[0])
	if err != nil {
		log.Warnw("pairing check failed", "error", err.Error())
		return false
	}
	if !ok {
		log.Debugw("multi-point proof rejected")
	}
	return ok
}

// VerifyMultiAt checks that proof opens its commitment to values at points.
// It recomputes Ĉ and Ẑ from the claimed evaluations, rejects the proof if
// they differ from the ones it carries and then runs VerifyMulti.
func VerifyMultiAt(proof *MultiProof, points, values []fr.Element, setup *trustedsetup.Setup) bool {
	if proof == nil || setup == nil || len(points) == 0 || len(points) != len(values) {
		return false
	}
	interpolation, err := polynomial.Lagrange(points, values)
	if err != nil {
		log.Debugw("multi-point proof rejected", "error", err.Error())
		return false
	}
	ci, err := Commit(interpolation, setup)
	if err != nil {
		log.Debugw("multi-point proof rejected", "error", err.Error())
		return false
	}
	zi, err := CommitG2(polynomial.Vanishing(points), setup)
	if err != nil {
		log.Debugw("multi-point proof rejected", "error", err.Error())
		return false
	}
	if !ci.Equal(&proof.InterpolationCommitment) || !zi.Equal(&proof.ZeroPolynomialCommitment) {
		log.Debugw("multi-point proof rejected", "reason", "claimed evaluations do not match")
		return false
	}
	return VerifyMulti(proof, setup)
}

func checkOpenings(degree, k int, setup *trustedsetup.Setup) error {
	switch {
	case k == 0:
		return ErrNoOpeningPoints
	case k >= degree:
		return fmt.Errorf("%w: %d points for a polynomial of degree %d", ErrTooManyOpeningPoints, k, degree)
	case setup == nil:
		return fmt.Errorf("%w: no setup", ErrSetupTooSmall)
	case len(setup.G2) < k+1:
		return fmt.Errorf("%w: %d points need %d G2 powers, setup has %d",
			ErrSetupTooSmall, k, k+1, len(setup.G2))
	}
	return nil
}
