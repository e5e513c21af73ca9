package armangle

// Status reports the outcome of a feasibility computation or an arm angle
// query. Values below the error band are successful; warnings such as
// ArmAngleNotInInterval still carry a usable fallback angle.
type Status uint8

const (
	// Success means the operation completed and, for queries, the arm angle
	// lies inside a feasible interval.
	Success Status = iota

	// ArmAngleNotInInterval is a warning: the queried arm angle sits in a
	// blocked interval and the nearest feasible fallback angle was supplied.
	ArmAngleNotInInterval

	// errors follow

	// NoSolutionForArmAngle means the feasible set is empty, so no arm angle
	// is reachable for this pose.
	NoSolutionForArmAngle

	// InvalidInput means the provided joint limits were unusable, e.g.
	// non-finite or inverted.
	InvalidInput
)

// Success reports whether the status is a success or a warning.
func (s Status) Success() bool {
	return s < NoSolutionForArmAngle
}

// Error reports whether the status is in the error band.
func (s Status) Error() bool {
	return s >= NoSolutionForArmAngle
}

func (s Status) String() string {
	switch s {
	case Success:
		return "SUCCESS"
	case ArmAngleNotInInterval:
		return "ARMANGLE_NOT_IN_INTERVAL"
	case NoSolutionForArmAngle:
		return "NO_SOLUTION_FOR_ARMANGLE"
	case InvalidInput:
		return "INVALID_INPUT"
	default:
		return "UNKNOWN_STATUS"
	}
}
