// Package armangle resolves the redundancy of a seven degree of freedom
// manipulator whose inverse kinematics is parameterized by a single scalar,
// the arm angle. For a fixed end-effector pose, sweeping the arm angle moves
// the elbow along the self-motion manifold while the tool stays put; each
// joint angle is a closed-form function of the arm angle, supplied by a
// Coefficients implementation.
//
// The package determines which arm angles are reachable under the per-joint
// limits and known singularities, represents the result as disjoint circular
// intervals on [-pi, pi), and answers two queries against it: which feasible
// interval contains a given arm angle, and, if none does, what the nearest
// feasible fallback angle is. Intervals touching the +/-pi seam carry an
// overlap flag and are handled by remapping into an extended [pi, 3*pi)
// coordinate range so distance and midpoint math stays linear.
package armangle
