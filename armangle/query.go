package armangle

import "math"

// IntervalQuery is the result of looking up an arm angle in the feasible set.
type IntervalQuery struct {
	// Interval is the feasible interval containing the arm angle. When the
	// interval crosses the +/-pi seam it is returned extended into the
	// [pi, 3*pi) range so downstream distance and midpoint math stays linear.
	Interval Interval

	// ArmAngle is the queried angle, remapped into the extended range when
	// the matched interval wraps.
	ArmAngle float64

	// Fallback is the closest feasible arm angle. It is only meaningful when
	// the status is not Success.
	Fallback float64
}

// IntervalForArmAngle looks up the feasible interval containing the given arm
// angle. On a miss it returns ArmAngleNotInInterval together with the nearest
// feasible fallback angle; on an empty feasible set it returns
// NoSolutionForArmAngle with a fallback of zero. The stored intervals are
// never mutated; wraparound remapping happens on the returned copy only.
func (ns *NullspaceIntervals) IntervalForArmAngle(armAngle float64) (IntervalQuery, Status) {
	query := IntervalQuery{ArmAngle: armAngle}

	if len(ns.feasible) == 0 {
		// The pose may be at a redundancy singularity where the arm angle is
		// undefined. A fallback of zero can still yield usable joint angles.
		query.Fallback = 0.0
		return query, NoSolutionForArmAngle
	}

	found := false
	index := -1

	for i := range ns.feasible {
		if armAngle <= ns.feasible[i].UpperLimit() {
			if armAngle >= ns.feasible[i].LowerLimit() {
				found = true
				query.Interval = ns.feasible[i]
			}

			// The arm angle is at or below feasible interval i, so the scan
			// can stop. The index also seeds the fallback search on a miss.
			index = i
			break
		}
	}

	if !found {
		return ns.closestFeasibleArmAngle(index, query)
	}

	cur := &query.Interval
	if !cur.Overlapping() ||
		(isEqual(cur.LowerLimit(), -math.Pi) && isEqual(cur.UpperLimit(), math.Pi)) {
		return query, Success
	}

	switch {
	case isEqual(cur.LowerLimit(), -math.Pi):
		// Overlapping at -pi: angles up to this interval's upper bound are
		// continuous with the last interval across the seam. Remap the query
		// into [pi, 3*pi) and extend the interval accordingly.
		if query.ArmAngle < cur.UpperLimit() {
			query.ArmAngle += 2 * math.Pi
		}
		cur.SetUpperLimit(cur.UpperLimit() + 2*math.Pi)
		cur.SetLowerLimit(ns.feasible[len(ns.feasible)-1].LowerLimit())
	case isEqual(cur.UpperLimit(), math.Pi):
		// Overlapping at pi: the first interval continues this one past the
		// seam. Extend the upper bound past pi and remap the query if it
		// fell inside the first interval.
		cur.SetUpperLimit(ns.feasible[0].UpperLimit() + 2*math.Pi)
		if query.ArmAngle < ns.feasible[0].UpperLimit() {
			query.ArmAngle += 2 * math.Pi
		}
	}

	return query, Success
}

// closestFeasibleArmAngle fills in the fallback arm angle as the midpoint of
// the feasible interval nearest to the query by the circular metric. index is
// the interval the scan stopped at, or -1 when the query exceeded every upper
// bound.
func (ns *NullspaceIntervals) closestFeasibleArmAngle(index int, query IntervalQuery) (IntervalQuery, Status) {
	armAngle := query.ArmAngle

	if index > 0 {
		// strictly between two feasible intervals, no wraparound involved
		middleUpper := ns.feasible[index].Midpoint()
		middleLower := ns.feasible[index-1].Midpoint()

		if middleUpper-armAngle <= armAngle-middleLower {
			query.Fallback = middleUpper
		} else {
			query.Fallback = middleLower
		}

		return query, ArmAngleNotInInterval
	}

	middleFirst := ns.feasible[0].Midpoint()
	middleLast := ns.feasible[len(ns.feasible)-1].Midpoint()

	if index == 0 {
		// below the lowest feasible angle: direct distance to the first
		// midpoint versus going around through the seam to the last one
		if middleFirst-armAngle <= (armAngle+math.Pi)+(math.Pi-middleLast) {
			query.Fallback = middleFirst
		} else {
			query.Fallback = middleLast
		}
	} else {
		// above the highest feasible angle, symmetric circular comparison
		if armAngle-middleLast <= (math.Pi-armAngle)+(middleFirst+math.Pi) {
			query.Fallback = middleLast
		} else {
			query.Fallback = middleFirst
		}
	}

	return query, ArmAngleNotInInterval
}
