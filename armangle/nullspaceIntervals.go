package armangle

import (
	"math"
	"sort"

	"github.com/edaniels/golog"
	"github.com/pkg/errors"

	"github.com/Rish619/KUKA-Robotic-Arm-Path-Planning-Project/joints"
)

// NullspaceIntervals computes which arm angles are reachable for one goal
// pose, given per-joint limits and the pose's closed-form coefficients, and
// answers containment and fallback queries against the result.
//
// ComputeFeasibleIntervals must run to completion before any query; the two
// interval collections are write-once after it returns. Queries are read-only
// and may be issued concurrently, but a recomputation for a new pose must be
// serialized against in-flight queries by the caller.
type NullspaceIntervals struct {
	coeffs Coefficients
	logger golog.Logger

	blocked  []Interval
	feasible []Interval
}

// NewNullspaceIntervals returns a solver for the given pose-specific
// coefficients. The logger may be nil.
func NewNullspaceIntervals(coeffs Coefficients, logger golog.Logger) (*NullspaceIntervals, error) {
	if coeffs == nil {
		return nil, errors.New("coefficients cannot be nil")
	}
	return &NullspaceIntervals{coeffs: coeffs, logger: logger}, nil
}

// ComputeFeasibleIntervals builds the blocked and feasible interval sets from
// the given joint limits and the pose's singularities. Pivot joints occupy
// even chain positions (0, 2, 4, 6) and the two arm-angle-dependent hinge
// joints sit at positions 1 and 5; the elbow joint (position 3) does not
// depend on the arm angle.
//
// Every numeric edge case is absorbed into the blocked/feasible
// classification; only unusable joint limits are rejected.
func (ns *NullspaceIntervals) ComputeFeasibleIntervals(lowerJointLimits, upperJointLimits joints.Joints) Status {
	if err := joints.VerifyLimits(lowerJointLimits, upperJointLimits); err != nil {
		if ns.logger != nil {
			ns.logger.Errorw("rejecting joint limits", "error", err)
		}
		return InvalidInput
	}

	ns.blocked = ns.blocked[:0]
	ns.feasible = ns.feasible[:0]

	for i := 0; i < NumPivotJoints; i++ {
		if psi, ok := ns.coeffs.PivotSingularity(i); ok {
			// blocked interval due to the singularity at psi
			ns.blocked = append(ns.blocked, NewInterval(psi-SingularityMargin, psi+SingularityMargin))
		}

		ns.mapLimitsToArmAngle(PivotJoint, lowerJointLimits[2*i], upperJointLimits[2*i], i)
	}

	for i := 0; i < NumHingeJoints; i++ {
		ns.mapLimitsToArmAngle(HingeJoint, lowerJointLimits[4*i+1], upperJointLimits[4*i+1], i)
	}

	sort.SliceStable(ns.blocked, func(a, b int) bool { return ns.blocked[a].Less(ns.blocked[b]) })
	ns.mergeSortedBlockedIntervals()
	ns.feasibleIntervalsFromBlocked()

	if len(ns.feasible) == 0 && ns.logger != nil {
		ns.logger.Debugw("no feasible arm angle for this pose, entire circle blocked")
	}

	return Success
}

// FeasibleIntervals returns a copy of the feasible interval collection.
func (ns *NullspaceIntervals) FeasibleIntervals() []Interval {
	return append([]Interval(nil), ns.feasible...)
}

// BlockedIntervals returns a copy of the blocked interval collection.
func (ns *NullspaceIntervals) BlockedIntervals() []Interval {
	return append([]Interval(nil), ns.blocked...)
}

// mapLimitsToArmAngle finds the arm angles at which one joint crosses its
// lower or upper limit and classifies the segments between the crossings. If
// the joint never touches a limit, a single evaluation decides whether the
// whole circle is feasible or blocked for this joint.
func (ns *NullspaceIntervals) mapLimitsToArmAngle(jt JointType, lowerJointLimit, upperJointLimit float64, index int) {
	limits := make([]intervalLimit, 0, 4)

	if lower, upper, ok := ns.coeffs.ArmAngleForJointLimit(jt, index, lowerJointLimit); ok {
		limits = ns.insertLimit(limits, jt, lowerJointLimit, lower, index)
		limits = ns.insertLimit(limits, jt, lowerJointLimit, upper, index)
	}

	if lower, upper, ok := ns.coeffs.ArmAngleForJointLimit(jt, index, upperJointLimit); ok {
		limits = ns.insertLimit(limits, jt, upperJointLimit, lower, index)
		limits = ns.insertLimit(limits, jt, upperJointLimit, upper, index)
	}

	if len(limits) == 0 {
		// any arm angle can be used to check if the whole circle is feasible
		jointAngleTest := ns.coeffs.JointAngle(jt, index, 0.0)
		if greaterThan(jointAngleTest, upperJointLimit) || smallerThan(jointAngleTest, lowerJointLimit) {
			ns.blocked = append(ns.blocked, NewInterval(-math.Pi, math.Pi))
		}
		return
	}

	sort.SliceStable(limits, func(a, b int) bool { return limits[a].armAngle < limits[b].armAngle })
	ns.determineBlockedIntervals(limits)
}

// insertLimit appends a crossing candidate after verifying it is a true root:
// the joint angle recomputed at the candidate arm angle must match the
// requested limit value. Spurious candidates are dropped.
func (ns *NullspaceIntervals) insertLimit(
	limits []intervalLimit, jt JointType, jointAngle, armAngle float64, index int,
) []intervalLimit {
	if !isZero(jointAngle - ns.coeffs.JointAngle(jt, index, armAngle)) {
		return limits
	}

	// precalculate the derivative, needed to classify the adjacent segments
	jointDerivative := ns.coeffs.JointDerivative(jt, index, armAngle, jointAngle)

	return append(limits, intervalLimit{
		armAngle:        armAngle,
		jointAngle:      jointAngle,
		jointDerivative: jointDerivative,
	})
}

// determineBlockedIntervals walks the sorted crossings circularly and marks a
// segment as blocked when the sign of the joint angle at its start matches
// the sign of the derivative there, or the signs at its end do not match.
// The sign agreement tells whether the joint is entering or leaving the
// limit-violating region as the arm angle increases. A blocked wrap-around
// segment is emitted as two pieces so the seam stays explicit.
func (ns *NullspaceIntervals) determineBlockedIntervals(limits []intervalLimit) {
	n := len(limits)

	for j := 0; j < n; j++ {
		jNext := (j + 1) % n

		if math.Signbit(limits[j].jointAngle) == math.Signbit(limits[j].jointDerivative) ||
			math.Signbit(limits[jNext].jointAngle) != math.Signbit(limits[jNext].jointDerivative) {
			if j == n-1 {
				// blocked segment wraps from the last crossing through the
				// seam to the first one
				ns.blocked = append(ns.blocked,
					NewInterval(-math.Pi, limits[0].armAngle),
					NewInterval(limits[j].armAngle, math.Pi))
			} else {
				ns.blocked = append(ns.blocked, NewInterval(limits[j].armAngle, limits[j+1].armAngle))
			}
		}
	}
}

// mergeSortedBlockedIntervals collapses the blocked intervals, pre-sorted by
// lower bound, into a disjoint sequence in one left-to-right sweep.
func (ns *NullspaceIntervals) mergeSortedBlockedIntervals() {
	if len(ns.blocked) == 0 {
		return
	}

	merged := make([]Interval, 0, len(ns.blocked))
	merged = append(merged, ns.blocked[0])

	for _, next := range ns.blocked[1:] {
		back := &merged[len(merged)-1]

		switch {
		case back.UpperLimit() < next.LowerLimit():
			// a feasible gap separates them, a new blocked interval starts
			merged = append(merged, next)
		case back.UpperLimit() < next.UpperLimit():
			// overlapping, extend the current interval to the larger upper bound
			back.SetUpperLimit(next.UpperLimit())
		}
	}

	ns.blocked = merged
}

// feasibleIntervalsFromBlocked constructs the feasible set as the circular
// complement of the merged blocked set in one linear pass.
func (ns *NullspaceIntervals) feasibleIntervalsFromBlocked() {
	if len(ns.blocked) == 0 {
		ns.feasible = append(ns.feasible, NewInterval(-math.Pi, math.Pi))
		return
	}

	if len(ns.blocked) == 1 &&
		isEqual(ns.blocked[0].LowerLimit(), -math.Pi) && isEqual(ns.blocked[0].UpperLimit(), math.Pi) {
		// the whole circle is blocked
		return
	}

	if ns.blocked[0].LowerLimit() > -math.Pi {
		ns.feasible = append(ns.feasible, NewInterval(-math.Pi, math.Pi))
	}

	for _, blocked := range ns.blocked {
		if len(ns.feasible) > 0 {
			ns.feasible[len(ns.feasible)-1].SetUpperLimit(blocked.LowerLimit())
		}

		if blocked.UpperLimit() < math.Pi {
			ns.feasible = append(ns.feasible, NewInterval(blocked.UpperLimit(), math.Pi))
		}
	}
}
