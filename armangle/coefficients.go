package armangle

// JointType selects which of the two closed-form families describes a joint's
// dependence on the arm angle.
type JointType uint8

const (
	// PivotJoint is a joint whose angle follows the atan2-form coefficient
	// functions. Pivot joints can have arm angle singularities.
	PivotJoint JointType = iota
	// HingeJoint is a joint whose angle follows the acos-form coefficient
	// functions. The elbow joint is excluded; it does not depend on the arm
	// angle at all.
	HingeJoint
)

func (t JointType) String() string {
	switch t {
	case PivotJoint:
		return "pivot"
	case HingeJoint:
		return "hinge"
	default:
		return "unknown"
	}
}

const (
	// NumPivotJoints is the number of pivot-type joints in the chain.
	NumPivotJoints = 4
	// NumHingeJoints is the number of hinge-type joints, excluding the elbow.
	NumHingeJoints = 2
)

// Coefficients is the closed-form joint-angle algebra for one goal pose. Every
// joint's angle, its derivative with respect to the arm angle, and the arm
// angles at which it reaches a given value are all available in closed form.
// Implementations are pose-specific and must be side-effect free; all angles
// are in radians.
type Coefficients interface {
	// JointAngle returns the angle of joint i of the given type at the given
	// arm angle.
	JointAngle(t JointType, i int, armAngle float64) float64

	// JointDerivative returns d(jointAngle)/d(armAngle) for joint i at the
	// given arm angle. The joint angle at that point is passed in so
	// implementations can avoid recomputing it.
	JointDerivative(t JointType, i int, armAngle, jointAngle float64) float64

	// ArmAngleForJointLimit returns up to two candidate arm angles at which
	// joint i reaches the given joint angle. Candidates may be spurious and
	// must be verified by recomputing the joint angle; ok is false when the
	// joint never reaches the value.
	ArmAngleForJointLimit(t JointType, i int, jointAngle float64) (lower, upper float64, ok bool)

	// PivotSingularity returns the arm angle at which pivot joint i is
	// singular, if such an arm angle exists for the current pose.
	PivotSingularity(i int) (armAngle float64, ok bool)
}
