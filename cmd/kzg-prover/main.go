package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/ethereum/go-ethereum/common/hexutil"
	curve "github.com/vocdoni/davinci-kzg/crypto/ecc/bn254"
	"github.com/vocdoni/davinci-kzg/crypto/kzg"
	"github.com/vocdoni/davinci-kzg/crypto/polynomial"
	"github.com/vocdoni/davinci-kzg/crypto/trustedsetup"
	"github.com/vocdoni/davinci-kzg/log"
)

var (
	errProofRejected = errors.New("valid proof rejected")
	errProofAccepted = errors.New("tampered proof accepted")
)

func main() {
	cfg, err := loadConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	if err := validateConfig(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	log.Init(cfg.Log.Level, cfg.Log.Output, nil)
	log.Infow("starting kzg-prover", "version", Version, "degree", cfg.Degree,
		"points", cfg.Points, "runs", cfg.Runs)

	setups, err := trustedsetup.NewCache(trustedsetup.Insecure{Workers: cfg.Workers}, 1)
	if err != nil {
		log.Fatalf("failed to create trusted setup cache: %v", err)
	}

	for run := range cfg.Runs {
		start := time.Now()
		setup, err := setups.Generate(cfg.Degree, cfg.Points)
		if err != nil {
			log.Fatalf("failed to generate trusted setup: %v", err)
		}
		if err := runRound(setup, cfg); err != nil {
			log.Errorw(err, fmt.Sprintf("round %d failed", run+1))
			os.Exit(1)
		}
		log.Infow("round completed", "round", run+1, "elapsed", time.Since(start).String())
	}
	log.Info("all proofs verified")
}

// runRound commits to a fresh random polynomial, proves and verifies a
// single-point and a multi-point opening, and checks that tampered proofs are
// rejected.
func runRound(setup *trustedsetup.Setup, cfg *Config) error {
	p, err := polynomial.Random(cfg.Degree)
	if err != nil {
		return err
	}
	prover, err := kzg.NewProver(p, setup)
	if err != nil {
		return err
	}
	commitment := prover.Commitment()
	log.Debugw("polynomial committed", "commitment", hexPoint(&commitment))

	if err := checkSingle(prover, setup); err != nil {
		return fmt.Errorf("single-point opening: %w", err)
	}
	if err := checkMulti(prover, setup, cfg.Points); err != nil {
		return fmt.Errorf("multi-point opening: %w", err)
	}
	return nil
}

func checkSingle(prover *kzg.Prover, setup *trustedsetup.Setup) error {
	z, err := curve.RandomScalar()
	if err != nil {
		return err
	}
	proof, err := prover.Open(z)
	if err != nil {
		return err
	}
	if !kzg.VerifySingle(proof, z, setup) {
		return errProofRejected
	}
	log.Infow("single-point proof verified", "z", z.String(), "y", proof.Y.String(),
		"proof", hexPoint(&proof.QuotientCommitment))

	one := fr.One()
	tampered := *proof
	tampered.Y.Add(&tampered.Y, &one)
	if kzg.VerifySingle(&tampered, z, setup) {
		return errProofAccepted
	}
	return nil
}

func checkMulti(prover *kzg.Prover, setup *trustedsetup.Setup, k int) error {
	points := make([]fr.Element, k)
	for i := range points {
		var err error
		if points[i], err = curve.RandomScalar(); err != nil {
			return err
		}
	}
	proof, values, err := prover.OpenMulti(points)
	if err != nil {
		return err
	}
	if !kzg.VerifyMulti(proof, setup) || !kzg.VerifyMultiAt(proof, points, values, setup) {
		return errProofRejected
	}
	log.Infow("multi-point proof verified", "points", k, "proof", hexPoint(&proof.QuotientCommitment))

	one := fr.One()
	values[0].Add(&values[0], &one)
	if kzg.VerifyMultiAt(proof, points, values, setup) {
		return errProofAccepted
	}
	return nil
}

func hexPoint(p *bn254.G1Affine) string {
	b := p.Bytes()
	return hexutil.Encode(b[:])
}
