package polynomial

import "errors"

var (
	// ErrDivisionByZero is returned when inverting the zero field element or
	// dividing by the zero polynomial.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrDegreeMismatch is returned when the divisor degree exceeds the
	// dividend degree.
	ErrDegreeMismatch = errors.New("divisor degree exceeds dividend degree")
	// ErrNotDivisible is returned by DivExact when the remainder is not zero.
	ErrNotDivisible = errors.New("polynomial division has a non-zero remainder")
	// ErrInterpolationDegeneracy is returned when interpolation points repeat.
	ErrInterpolationDegeneracy = errors.New("duplicate interpolation points")
	// ErrLengthMismatch is returned when the number of points and values differ.
	ErrLengthMismatch = errors.New("points and values length mismatch")
)
