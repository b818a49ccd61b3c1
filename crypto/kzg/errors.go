package kzg

import "errors"

var (
	// ErrInvalidWitness is returned when a quotient polynomial cannot be
	// computed exactly, i.e. the claimed evaluations are not those of the
	// committed polynomial.
	ErrInvalidWitness = errors.New("invalid witness")
	// ErrSetupTooSmall is returned when the trusted setup lacks the powers
	// needed to commit to a polynomial.
	ErrSetupTooSmall = errors.New("trusted setup too small")
	// ErrTooManyOpeningPoints is returned when a multi-point opening asks for
	// as many points as the polynomial degree or more.
	ErrTooManyOpeningPoints = errors.New("too many opening points")
	// ErrNoOpeningPoints is returned by multi-point openings without points.
	ErrNoOpeningPoints = errors.New("no opening points")
)
