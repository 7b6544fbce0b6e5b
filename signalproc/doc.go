// Package signalproc provides the scalar signal-processing primitives
// shared by the gait algorithms: moving averages, mean removal,
// per-sample vector norms, linear resampling, autocorrelation, peak
// finding with prominence, zero crossings and sliding windows.
//
// All functions operate on plain []float64 sample slices so they can be
// combined freely with imu.Signal columns.
//
// # Peak prominence
//
// FindPeaks mirrors the usual prominence definition: for a local
// maximum, walk left and right until a higher sample (or the signal
// border) is reached and take the minimum on each side as the base;
// the prominence is the peak height above the higher of the two bases.
//
// Complexity: all helpers are O(n) or O(n·w) in the window/lag size;
// FindPeaks is O(n·p) with p peaks in the worst case.
package signalproc
