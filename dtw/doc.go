// Package dtw computes Dynamic Time Warping (DTW) distances between
// numeric time series and segments IMU recordings into strides by
// subsequence matching against a stride template.
//
// # Distance
//
// Distance finds the best global alignment between two sequences by
// warping the time axis to minimize cumulative cost:
//
//  1. Let n = len(a), m = len(b). Allocate the (n+1)×(m+1) DP matrix D.
//  2. D[0][0] = 0; first row/column +Inf.
//  3. D[i][j] = |a[i-1]−b[j-1]| + min(D[i-1][j]+p, D[i][j-1]+p, D[i-1][j-1])
//     with slope penalty p, restricted to |i−j| ≤ Window if set.
//  4. distance = D[n][m]; optional backtrace yields the warping path.
//
// Memory modes: FullMatrix (O(n·m), supports path recovery), TwoRows
// (O(m), distance only) and NoMemory (alias of TwoRows kept for
// callers that only ever need the scalar).
//
// # Stride segmentation
//
// BarthDtw matches a stride template against an arbitrarily long
// signal using subsequence DTW: the first template row of the
// accumulated cost matrix is free (a match may start anywhere), and
// the last row is the accumulated cost function over all candidate
// end samples. Local minima of that cost function below MaxCost are
// candidate matches; backtracking each one yields its start sample.
// Postprocessing filters matches by duration, resolves overlaps in
// favor of the cheaper match, and snaps stride borders to the nearest
// gyr_ml minimum.
//
// ConstrainedBarthDtw adds local warping limits: one template sample
// may only absorb a bounded stretch of signal (and vice versa), which
// suppresses degenerate matches on irregular gait.
//
// Complexity: O(n·m) time for both distance and segmentation; memory
// O(n·m) for segmentation (the full matrix is needed for backtracking).
package dtw
