package armangle

import "math"

// Interval is a single [lower, upper] range of arm angles. The overlap flag
// records that one of the bounds sits on the +/-pi seam, meaning the interval
// is logically continuous with angles on the other side of the circle and
// queries against it need wraparound handling.
type Interval struct {
	lower   float64
	upper   float64
	overlap bool
}

// NewInterval returns an interval with both bounds set.
func NewInterval(lower, upper float64) Interval {
	var i Interval
	i.SetLimits(lower, upper)
	return i
}

// SetLimits assigns both bounds.
func (i *Interval) SetLimits(lower, upper float64) {
	i.SetLowerLimit(lower)
	i.SetUpperLimit(upper)
}

// SetLowerLimit assigns the lower bound. The overlap flag becomes true when
// the bound lands on -pi and is sticky from then on.
func (i *Interval) SetLowerLimit(lower float64) {
	i.lower = lower
	if !i.overlap {
		i.overlap = isEqual(lower, -math.Pi)
	}
}

// SetUpperLimit assigns the upper bound. The overlap flag becomes true when
// the bound lands on pi and is sticky from then on.
func (i *Interval) SetUpperLimit(upper float64) {
	i.upper = upper
	if !i.overlap {
		i.overlap = isEqual(upper, math.Pi)
	}
}

// LowerLimit returns the lower bound.
func (i Interval) LowerLimit() float64 {
	return i.lower
}

// UpperLimit returns the upper bound.
func (i Interval) UpperLimit() float64 {
	return i.upper
}

// Overlapping reports whether the interval touches the +/-pi seam.
func (i Interval) Overlapping() bool {
	return i.overlap
}

// Midpoint returns the center of the interval.
func (i Interval) Midpoint() float64 {
	return (i.upper + i.lower) / 2
}

// Less orders intervals by lower bound only; ties are broken arbitrarily, so
// a stable sort must be used when determinism across equal lowers matters.
func (i Interval) Less(rhs Interval) bool {
	return i.lower < rhs.lower
}

// intervalLimit is one verified root of "joint angle equals a joint limit" as
// a function of the arm angle, together with the values needed to classify
// the segments on either side of it.
type intervalLimit struct {
	armAngle        float64
	jointAngle      float64
	jointDerivative float64
}
