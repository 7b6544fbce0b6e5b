// Package imu defines the central data model of gaitkit: labeled
// multi-axis sensor signals, multi-sensor sets, and stride lists, plus
// the validation helpers the higher-level packages rely on.
//
// # Signals
//
// A Signal is a fixed-rate time series with named axes (columns),
// backed by a gonum dense matrix (rows = samples, cols = axes).
// Two axis conventions exist:
//
//   - sensor frame: acc_x..acc_z, gyr_x..gyr_z — axes as produced by
//     the physical sensor, units m/s² and deg/s.
//   - body frame:   acc_pa/ml/si, gyr_pa/ml/si — anatomical axes
//     (posterior-anterior, medio-lateral, superior-inferior), obtained
//     via the bodyframe package.
//
// Validation helpers check that a Signal carries the full axis set of
// the expected frame before an algorithm consumes it.
//
// # Stride lists
//
// Two stride representations move through the pipeline:
//
//   - Stride — a segmented stride: half-open sample interval
//     [Start, End) plus a stable ID. Produced by dtw.BarthDtw.
//   - StrideEvents — a min-vel stride: the interval runs from one
//     mid-stance (minimal velocity) to the next, annotated with the
//     PreIC, IC, MinVel and TC gait events. Start must equal MinVel.
//     PreIC is NaN for the first stride after a break. Produced by the
//     events package and consumed by trajectory and params.
//
// Multi-sensor variants are plain maps keyed by sensor name; Names()
// style accessors always iterate in sorted order so downstream results
// are deterministic.
package imu
