// Package position estimates sensor velocity and position over a
// stride from world-frame acceleration.
//
// # Forward-backward integration
//
// A foot-mounted sensor is (nearly) at rest at both ends of a min_vel
// stride. ForwardBackwardIntegration exploits both rest phases:
//
//  1. Remove gravity from the world-frame acceleration.
//  2. Integrate velocity forward assuming zero initial velocity, and
//     backward assuming zero final velocity.
//  3. Blend both with a sigmoidal weight over the stride: the forward
//     pass dominates early samples, the backward pass late samples, so
//     integration drift is anchored at both zero-velocity updates.
//  4. Integrate position from the blended velocity with the
//     trapezoidal rule.
//  5. Under the level-walking assumption, remove the residual linear
//     trend of the vertical position so each stride starts and ends on
//     the same ground level.
//
// Outputs hold len(data)+1 samples, the zero initial state included.
// Runs in O(n) time.
package position
