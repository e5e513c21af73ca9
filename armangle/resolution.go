package armangle

import (
	"math"

	"github.com/Rish619/KUKA-Robotic-Arm-Path-Planning-Project/utils"
)

// ResolutionOptions configure ResolveExp.
type ResolutionOptions struct {
	// PositionExpK scales the repulsive shift away from interval bounds.
	PositionExpK float64
	// PositionExpAlpha controls how sharply the shift decays with distance
	// from a bound.
	PositionExpAlpha float64
}

// DefaultResolutionOptions returns the standard exp-shift parameters.
func DefaultResolutionOptions() ResolutionOptions {
	return ResolutionOptions{
		PositionExpK:     0.016,
		PositionExpAlpha: 4.3,
	}
}

// ResolveExp picks the arm angle to use for the next pose given a seed arm
// angle, nudging it away from the bounds of its feasible interval with an
// exponential repulsive shift so the elbow does not creep into a joint limit
// over consecutive poses. A seed in a blocked interval resolves to the
// fallback angle; a fully feasible circle leaves the seed untouched. The
// result is mapped back into [-pi, pi].
func (ns *NullspaceIntervals) ResolveExp(seed float64, opts ResolutionOptions) (float64, Status) {
	query, status := ns.IntervalForArmAngle(seed)
	if status != Success {
		return query.Fallback, status
	}

	cur := query.Interval
	if cur.Overlapping() &&
		isEqual(cur.LowerLimit(), -math.Pi) && isEqual(cur.UpperLimit(), math.Pi) {
		// no limits anywhere on the circle, keep the seed
		return seed, Success
	}

	shifted := expShift(opts, query.ArmAngle, cur.LowerLimit(), cur.UpperLimit())

	return utils.AngleInPiRange(shifted), Success
}

// expShift moves an arm angle away from the bounds of its interval. The two
// exponential terms cancel at the midpoint and the nearer bound dominates
// elsewhere, so the shift always points inward.
func expShift(opts ResolutionOptions, armAngle, lower, upper float64) float64 {
	k := opts.PositionExpK
	alpha := opts.PositionExpAlpha
	span := upper - lower

	return armAngle + k*span/2.0*
		(math.Exp(-alpha*(armAngle-lower)/span)-math.Exp(-alpha*(upper-armAngle)/span))
}
