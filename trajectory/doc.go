// Package trajectory reconstructs the sensor trajectory of every
// stride in a recording.
//
// Each min_vel stride starts and ends at mid-stance, so every stride
// can be handled independently:
//
//  1. Estimate the initial orientation: gravity alignment of the
//     median acceleration in a small window around the stride start
//     (orient.InitialOrientation).
//  2. Run the configured orientation method over the stride data.
//  3. Rotate the stride data sample by sample into the world frame.
//  4. Run the configured position method on the rotated data.
//
// Strides carry no state between each other, so StrideLevelTrajectory
// processes them concurrently with an errgroup; results keep stride
// order. Multi-sensor sets are handled per sensor.
//
// Each per-stride output series holds stride length + 1 samples, the
// initial state (orientation estimate, zero velocity, zero position)
// included.
package trajectory
