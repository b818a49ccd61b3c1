package trustedsetup

import (
	"fmt"
	"runtime"
	"time"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	curve "github.com/vocdoni/davinci-kzg/crypto/ecc/bn254"
	"github.com/vocdoni/davinci-kzg/log"
	"golang.org/x/sync/errgroup"
)

// powersPerTask is the number of scalar multiplications a worker performs
// per task.
const powersPerTask = 16

// Insecure generates a setup from a secret sampled by a single party in this
// process. Whoever learns the secret can forge proofs for any evaluation, and
// nothing but good faith guarantees it was discarded. It is unsuitable for
// production use, where the parameters must come from a multi-party ceremony.
//
// The secret and its powers are zeroed before Generate returns and are never
// exposed.
type Insecure struct {
	// Workers bounds the goroutines computing the scalar multiplications.
	// Zero means runtime.NumCPU().
	Workers int
}

var _ Generator = Insecure{}

// Generate is Insecure{}.Generate.
func Generate(maxDegree, maxOpenings int) (*Setup, error) {
	return Insecure{}.Generate(maxDegree, maxOpenings)
}

// Generate samples a fresh secret and returns its powers in G1 (up to
// maxDegree) and G2 (up to maxOpenings).
func (g Insecure) Generate(maxDegree, maxOpenings int) (*Setup, error) {
	if maxDegree < 1 || maxOpenings < 1 {
		return nil, fmt.Errorf("%w: maxDegree=%d maxOpenings=%d", ErrInvalidSize, maxDegree, maxOpenings)
	}
	defer log.Elapsed(time.Now(), "insecure trusted setup generated",
		"maxDegree", maxDegree, "maxOpenings", maxOpenings)

	secret, err := curve.RandomScalar()
	if err != nil {
		return nil, err
	}
	defer secret.SetZero()
	return fromSecret(&secret, maxDegree, maxOpenings, g.Workers)
}

// fromSecret derives the setup for a known secret.
func fromSecret(secret *fr.Element, maxDegree, maxOpenings, workers int) (*Setup, error) {
	powers := make([]fr.Element, max(maxDegree, maxOpenings)+1)
	defer clear(powers)
	powers[0].SetOne()
	for i := 1; i < len(powers); i++ {
		powers[i].Mul(&powers[i-1], secret)
	}

	setup := &Setup{
		G1: make([]bn254.G1Affine, maxDegree+1),
		G2: make([]bn254.G2Affine, maxOpenings+1),
	}

	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	var g errgroup.Group
	g.SetLimit(workers)
	for start := 0; start < len(setup.G1); start += powersPerTask {
		end := min(start+powersPerTask, len(setup.G1))
		g.Go(func() error {
			for i := start; i < end; i++ {
				setup.G1[i] = curve.ScalarBaseMulG1(&powers[i])
			}
			return nil
		})
	}
	for start := 0; start < len(setup.G2); start += powersPerTask {
		end := min(start+powersPerTask, len(setup.G2))
		g.Go(func() error {
			for i := start; i < end; i++ {
				setup.G2[i] = curve.ScalarBaseMulG2(&powers[i])
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to compute setup powers: %w", err)
	}
	return setup, nil
}
