// Package gaitdetect finds the gait sequences in a continuous
// body-frame IMU recording, following Ullrich et al. 2020.
//
// # Algorithm
//
// The recording is analyzed in sliding windows (10 s, 50 % overlap by
// default) of one signal channel: gyr_ml, acc_si, or the 3D norm of
// the acc or gyr axes. Every window passes three stages:
//
//  1. Activity: the mean absolute value of the (mean-centered) window
//     must exceed the active signal threshold, otherwise the window is
//     rest.
//  2. Dominant frequency: the peak of the FFT amplitude spectrum
//     restricted to the locomotion band (0.5-3 Hz by default). Walking
//     cadence falls into this band for virtually all subjects.
//  3. Harmonics: gait is an impulsive periodic movement, so its
//     spectrum carries prominent peaks at integer multiples of the
//     dominant frequency. Cyclic non-gait movements (smooth swinging,
//     pedaling) concentrate their energy at the fundamental. A window
//     counts as gait when enough harmonics (2f..6f) have a spectral
//     peak within the harmonic tolerance, and the autocorrelation at
//     the dominant period confirms the periodicity.
//
// Consecutive gait windows are merged into gait sequences. For
// synchronized multi-sensor recordings the per-sensor sequences can be
// merged into one common list.
//
// Complexity is O(w log w) per window for the FFT plus O(w·L) for the
// autocorrelation, with w the window size and L the longest locomotion
// period in samples.
package gaitdetect
