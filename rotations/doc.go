// Package rotations provides quaternion helpers for IMU orientation
// handling, built on gonum's quat.Number.
//
// # What this package offers
//
//   - Normalize / Inverse / Rotate: unit-quaternion basics.
//   - FromAxisAngle: build a rotation from an axis and an angle.
//   - ShortestRotation: the minimal rotation mapping one vector onto
//     another, with a stable fallback for the antiparallel case.
//   - GravityRotation: the rotation that aligns a measured acceleration
//     vector with gravity (0, 0, 1), used to bootstrap orientation
//     estimation at rest.
//   - RotateSignal / RotateSignalSeries: rotate the acc and gyr vector
//     triples of an imu.Signal with one quaternion per recording or one
//     quaternion per sample.
//   - EulerZYX: intrinsic z-y'-x'' decomposition (yaw, pitch, roll).
//   - TwistAngle: swing-twist angle about an arbitrary axis, stable
//     where Euler decompositions hit gimbal lock.
//   - SagittalAngleCourse: per-sample rotation angle about the
//     medio-lateral axis relative to the first orientation, the basis
//     for foot angle and clearance parameters.
//
// # Conventions
//
// Quaternions are Hamilton quaternions in (w, x, y, z) layout via
// quat.Number{Real, Imag, Jmag, Kmag}. All rotation helpers expect unit
// quaternions; Normalize is the only function that accepts arbitrary
// magnitude. Vectors are [3]float64 in (x, y, z) order. All angles are
// radians.
//
// Every helper is O(1) per quaternion or per sample and allocates only
// its output.
package rotations
