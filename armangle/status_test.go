package armangle

import (
	"testing"

	"go.viam.com/test"
)

func TestStatusBands(t *testing.T) {
	test.That(t, Success.Success(), test.ShouldBeTrue)
	test.That(t, Success.Error(), test.ShouldBeFalse)

	// a miss with a fallback is a warning, not an error
	test.That(t, ArmAngleNotInInterval.Success(), test.ShouldBeTrue)
	test.That(t, ArmAngleNotInInterval.Error(), test.ShouldBeFalse)

	test.That(t, NoSolutionForArmAngle.Success(), test.ShouldBeFalse)
	test.That(t, NoSolutionForArmAngle.Error(), test.ShouldBeTrue)
	test.That(t, InvalidInput.Error(), test.ShouldBeTrue)
}

func TestStatusString(t *testing.T) {
	test.That(t, Success.String(), test.ShouldEqual, "SUCCESS")
	test.That(t, ArmAngleNotInInterval.String(), test.ShouldEqual, "ARMANGLE_NOT_IN_INTERVAL")
	test.That(t, NoSolutionForArmAngle.String(), test.ShouldEqual, "NO_SOLUTION_FOR_ARMANGLE")
	test.That(t, InvalidInput.String(), test.ShouldEqual, "INVALID_INPUT")
	test.That(t, Status(77).String(), test.ShouldEqual, "UNKNOWN_STATUS")
}
