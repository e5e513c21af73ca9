package armangle

import (
	"math"
	"testing"

	"go.viam.com/test"

	"github.com/Rish619/KUKA-Robotic-Arm-Path-Planning-Project/utils"
)

// testCurve models one joint's closed-form angle curve over the arm angle.
type testCurve interface {
	angle(armAngle float64) float64
	derivative(armAngle, jointAngle float64) float64
	limitRoots(jointAngle float64) (lower, upper float64, ok bool)
}

// sineCurve is a hinge-like joint curve, theta = amp*sin(armAngle-phase)+offset.
// Both algebraic root candidates are genuine roots.
type sineCurve struct {
	amp    float64
	phase  float64
	offset float64
}

func (c sineCurve) angle(armAngle float64) float64 {
	return c.amp*math.Sin(armAngle-c.phase) + c.offset
}

func (c sineCurve) derivative(armAngle, _ float64) float64 {
	return c.amp * math.Cos(armAngle-c.phase)
}

func (c sineCurve) limitRoots(jointAngle float64) (float64, float64, bool) {
	s := (jointAngle - c.offset) / c.amp
	if math.Abs(s) > 1 {
		return 0, 0, false
	}
	x := math.Asin(s)
	r1 := utils.AngleInPiRange(x + c.phase)
	r2 := utils.AngleInPiRange(math.Pi - x + c.phase)
	if r1 > r2 {
		r1, r2 = r2, r1
	}
	return r1, r2, true
}

// cotCurve is a pivot-like joint curve, theta = scale*cot(armAngle/2). It is
// monotone decreasing on either side of its singularity at zero and
// continuous across the +/-pi seam. Its second root candidate is always
// spurious, exercising the root verification in the builder.
type cotCurve struct {
	scale float64
}

func (c cotCurve) angle(armAngle float64) float64 {
	return c.scale / math.Tan(armAngle/2)
}

func (c cotCurve) derivative(armAngle, _ float64) float64 {
	s := math.Sin(armAngle / 2)
	return -c.scale / (2 * s * s)
}

func (c cotCurve) limitRoots(jointAngle float64) (float64, float64, bool) {
	if jointAngle == 0 {
		return -math.Pi, math.Pi, true
	}
	root := 2 * math.Atan(c.scale/jointAngle)
	alias := utils.AngleInPiRange(root + math.Pi)
	if root > alias {
		root, alias = alias, root
	}
	return root, alias, true
}

// fakeCoeffs implements Coefficients with configurable per-joint curves. The
// defaults are low-amplitude sines that stay well inside any realistic joint
// limits, so joints not under test contribute nothing.
type fakeCoeffs struct {
	pivot         [NumPivotJoints]testCurve
	hinge         [NumHingeJoints]testCurve
	singularities map[int]float64
}

func newFakeCoeffs() *fakeCoeffs {
	fc := &fakeCoeffs{singularities: map[int]float64{}}
	for i := range fc.pivot {
		fc.pivot[i] = sineCurve{amp: 0.1}
	}
	for i := range fc.hinge {
		fc.hinge[i] = sineCurve{amp: 0.1}
	}
	return fc
}

func (fc *fakeCoeffs) curve(t JointType, i int) testCurve {
	if t == PivotJoint {
		return fc.pivot[i]
	}
	return fc.hinge[i]
}

func (fc *fakeCoeffs) JointAngle(t JointType, i int, armAngle float64) float64 {
	return fc.curve(t, i).angle(armAngle)
}

func (fc *fakeCoeffs) JointDerivative(t JointType, i int, armAngle, jointAngle float64) float64 {
	return fc.curve(t, i).derivative(armAngle, jointAngle)
}

func (fc *fakeCoeffs) ArmAngleForJointLimit(t JointType, i int, jointAngle float64) (float64, float64, bool) {
	return fc.curve(t, i).limitRoots(jointAngle)
}

func (fc *fakeCoeffs) PivotSingularity(i int) (float64, bool) {
	v, ok := fc.singularities[i]
	return v, ok
}

func TestSineCurveRoots(t *testing.T) {
	c := sineCurve{amp: 2}

	lower, upper, ok := c.limitRoots(2 * math.Sin(1))
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, lower, test.ShouldAlmostEqual, 1)
	test.That(t, upper, test.ShouldAlmostEqual, math.Pi-1)
	test.That(t, c.angle(lower), test.ShouldAlmostEqual, 2*math.Sin(1))
	test.That(t, c.angle(upper), test.ShouldAlmostEqual, 2*math.Sin(1))

	_, _, ok = c.limitRoots(2.5)
	test.That(t, ok, test.ShouldBeFalse)
}

func TestCotCurveRoots(t *testing.T) {
	c := cotCurve{scale: 1}

	limit := 1 / math.Tan(0.5)
	lower, upper, ok := c.limitRoots(limit)
	test.That(t, ok, test.ShouldBeTrue)

	// exactly one of the two candidates is a true root
	validLower := math.Abs(c.angle(lower)-limit) < 1e-9
	validUpper := math.Abs(c.angle(upper)-limit) < 1e-9
	test.That(t, validLower != validUpper, test.ShouldBeTrue)

	// the curve decreases on both branches
	test.That(t, c.derivative(1, 0), test.ShouldBeLessThan, 0)
	test.That(t, c.derivative(-1, 0), test.ShouldBeLessThan, 0)
}
