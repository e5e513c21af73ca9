package armangle

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

const (
	// ZeroTol is the near-zero tolerance: values in (-ZeroTol, ZeroTol) are
	// considered zero, e.g. when verifying a candidate root of a joint-limit
	// crossing.
	ZeroTol = 1e-7

	// EqualityTol is the absolute tolerance for scalar equality, e.g. when
	// checking whether an interval bound sits on the +/-pi seam.
	EqualityTol = 1e-7

	// SingularityMargin is half the width of the blocked interval placed
	// around a pivot-joint singularity so that arm angles within rounding
	// error of the singularity are never classified feasible.
	SingularityMargin = 10 * ZeroTol
)

func isZero(f float64) bool {
	return math.Abs(f) <= ZeroTol
}

func isEqual(lhs, rhs float64) bool {
	return scalar.EqualWithinAbs(lhs, rhs, EqualityTol)
}

func greaterThan(lhs, rhs float64) bool {
	return lhs > rhs+EqualityTol
}

func smallerThan(lhs, rhs float64) bool {
	return lhs < rhs-EqualityTol
}
