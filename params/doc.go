// Package params computes temporal and spatial gait parameters per
// stride from min_vel stride events and reconstructed trajectories.
//
// # Temporal parameters
//
// Calculated directly from the event list, in seconds:
//
//   - stride time: ic − pre_ic. NaN for strides without a pre_ic.
//   - swing time: ic − tc.
//   - stance time: stride time − swing time.
//
// # Spatial parameters
//
// Calculated from the per-stride position and orientation series
// following Kanzler et al. 2015:
//
//   - stride length: ground-plane (x, y) displacement between stride
//     start and end, in m.
//   - gait velocity: stride length / stride time.
//   - arc length: summed sample-to-sample displacement of the full 3D
//     sensor path.
//   - ic / tc angle: sagittal plane angle at initial and terminal
//     contact, in degrees, negated so dorsiflexion at heel strike
//     yields a negative ic angle.
//   - ic / tc clearance: maximal heel respectively toe clearance over
//     the stride, estimated from the sensor height course and a lever
//     arm calibrated at the contact event.
//   - turning angle: heading change between stride start and end, in
//     degrees.
//
// All per-stride series are expected in the layout produced by the
// trajectory package (stride length + 1 samples).
package params
