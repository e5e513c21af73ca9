// Package joints provides joint-space primitives for a seven degree of freedom
// serial manipulator: fixed-size joint angle vectors, limit pairs, and the
// validation used before any kinematics computation.
package joints

import (
	"math"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// Num is the number of joints in the kinematic chain.
const Num = 7

// Joints holds one angle per joint, in radians.
type Joints [Num]float64

// FromSlice copies a slice of joint angles into a Joints vector. The slice
// must contain exactly Num values.
func FromSlice(v []float64) (Joints, error) {
	var j Joints
	if len(v) != Num {
		return j, errors.Errorf("expected %d joint angles, got %d", Num, len(v))
	}
	copy(j[:], v)
	return j, nil
}

// ToSlice returns the joint angles as a freshly allocated slice.
func (j Joints) ToSlice() []float64 {
	s := make([]float64, Num)
	copy(s, j[:])
	return s
}

// AllFinite reports whether every joint angle is a finite number.
func (j Joints) AllFinite() bool {
	for _, v := range j {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// LimitsViolated reports whether any joint angle falls outside its limit pair.
// Angles within tol of a limit are considered inside.
func (j Joints) LimitsViolated(lower, upper Joints, tol float64) bool {
	for i := range j {
		if j[i] < lower[i]-tol || j[i] > upper[i]+tol {
			return true
		}
	}
	return false
}

// Limit is a min/max pair for a single joint, in radians.
type Limit struct {
	Min float64
	Max float64
}

// Limits pairs up lower and upper joint limit vectors.
func Limits(lower, upper Joints) []Limit {
	limits := make([]Limit, Num)
	for i := range limits {
		limits[i] = Limit{Min: lower[i], Max: upper[i]}
	}
	return limits
}

// FromLimits splits a slice of limit pairs back into lower and upper vectors.
func FromLimits(limits []Limit) (Joints, Joints, error) {
	var lower, upper Joints
	if len(limits) != Num {
		return lower, upper, errors.Errorf("expected %d joint limits, got %d", Num, len(limits))
	}
	for i, l := range limits {
		lower[i] = l.Min
		upper[i] = l.Max
	}
	return lower, upper, nil
}

// VerifyLimits checks that a pair of limit vectors describes a usable joint
// range: all values finite and every lower limit at or below its upper limit.
// All violations found are combined into the returned error.
func VerifyLimits(lower, upper Joints) error {
	var err error
	if !lower.AllFinite() {
		err = multierr.Append(err, errors.New("lower joint limits must be finite"))
	}
	if !upper.AllFinite() {
		err = multierr.Append(err, errors.New("upper joint limits must be finite"))
	}
	if err != nil {
		return err
	}
	for i := range lower {
		if lower[i] > upper[i] {
			err = multierr.Append(err,
				errors.Errorf("joint %d: lower limit %f exceeds upper limit %f", i, lower[i], upper[i]))
		}
	}
	return err
}
