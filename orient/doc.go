// Package orient estimates the orientation of an IMU over time from
// its gyroscope (and optionally accelerometer) readings.
//
// # Methods
//
// Every estimator implements Method: given a signal of n samples and an
// initial orientation, Estimate returns n+1 unit quaternions mapping
// the sensor frame into the world frame, the initial orientation
// included as element 0.
//
//   - GyroIntegration integrates the body rates sample by sample:
//     q[i+1] = q[i] ⊗ Δq(ω[i]·dt). Cheap and exact for short windows,
//     but drifts with gyroscope bias.
//   - Madgwick runs the Madgwick AHRS gradient-descent filter: the
//     gyroscope propagation above, corrected each step towards the
//     orientation whose predicted gravity direction matches the
//     measured acceleration. Beta trades correction speed against
//     acceleration noise; the default of 0.2 works well for foot
//     mounted sensors over stride-length windows.
//
// Gyroscope input is expected in deg/s and converted internally.
//
// # Initial orientation
//
// InitialOrientation bootstraps an estimate at a resting sample: the
// median acceleration over a small window around the sample is aligned
// with gravity. Windows that would reach outside the signal are
// clipped.
//
// All estimators run in O(n) time and allocate only the output series.
package orient
