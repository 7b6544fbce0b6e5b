package signalproc

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"
	"gonum.org/v1/gonum/stat"
)

// Sentinel errors for the signal-processing helpers.
var (
	// ErrEmptyInput indicates an empty sample slice.
	ErrEmptyInput = errors.New("signalproc: input must be non-empty")

	// ErrBadWindow indicates a window size that is not positive or does
	// not fit the signal.
	ErrBadWindow = errors.New("signalproc: invalid window size")

	// ErrBadLag indicates a non-positive or overlong autocorrelation lag.
	ErrBadLag = errors.New("signalproc: invalid lag")

	// ErrBadLength indicates an invalid resampling target length or
	// mismatched row lengths.
	ErrBadLength = errors.New("signalproc: invalid length")
)

// Mean returns the arithmetic mean of x.
func Mean(x []float64) float64 { return stat.Mean(x, nil) }

// Center returns x with its mean removed.
func Center(x []float64) []float64 {
	m := stat.Mean(x, nil)
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = v - m
	}

	return out
}

// MovingAverage smooths x with a centered window of the given size.
// Borders use the available (shorter) window.
func MovingAverage(x []float64, window int) ([]float64, error) {
	if len(x) == 0 {
		return nil, ErrEmptyInput
	}
	if window <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadWindow, window)
	}
	half := window / 2
	out := make([]float64, len(x))
	for i := range x {
		lo := max(0, i-half)
		hi := min(len(x), i+half+1)
		out[i] = stat.Mean(x[lo:hi], nil)
	}

	return out, nil
}

// Norm returns the per-sample Euclidean norm across the given columns.
// All columns must have the same length.
func Norm(columns ...[]float64) ([]float64, error) {
	if len(columns) == 0 || len(columns[0]) == 0 {
		return nil, ErrEmptyInput
	}
	n := len(columns[0])
	for _, c := range columns {
		if len(c) != n {
			return nil, fmt.Errorf("%w: ragged columns", ErrBadLength)
		}
	}
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		sum := 0.0
		for _, c := range columns {
			sum += c[i] * c[i]
		}
		out[i] = math.Sqrt(sum)
	}

	return out, nil
}

// Resample linearly resamples x to the target number of samples using
// a piecewise-linear interpolant over the normalized sample positions.
func Resample(x []float64, target int) ([]float64, error) {
	if len(x) == 0 {
		return nil, ErrEmptyInput
	}
	if target <= 0 {
		return nil, fmt.Errorf("%w: target %d", ErrBadLength, target)
	}
	if len(x) == 1 {
		out := make([]float64, target)
		for i := range out {
			out[i] = x[0]
		}

		return out, nil
	}

	xs := make([]float64, len(x))
	floats.Span(xs, 0, 1)
	var pl interp.PiecewiseLinear
	if err := pl.Fit(xs, x); err != nil {
		return nil, fmt.Errorf("signalproc: resample fit: %w", err)
	}

	out := make([]float64, target)
	if target == 1 {
		out[0] = x[0]

		return out, nil
	}
	pos := make([]float64, target)
	floats.Span(pos, 0, 1)
	for i, p := range pos {
		out[i] = pl.Predict(p)
	}

	return out, nil
}

// Detrend removes the least-squares line from x.
func Detrend(x []float64) ([]float64, error) {
	if len(x) == 0 {
		return nil, ErrEmptyInput
	}
	if len(x) == 1 {
		return []float64{0}, nil
	}

	idx := make([]float64, len(x))
	floats.Span(idx, 0, float64(len(x)-1))
	alpha, beta := stat.LinearRegression(idx, x, nil, false)

	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = v - (alpha + beta*idx[i])
	}

	return out, nil
}

// Window is a half-open sample interval [Start, End).
type Window struct {
	Start int
	End   int
}

// SlidingWindows returns the windows of the given size over n samples
// with the given overlap (in samples). Trailing samples that do not
// fill a complete window are dropped.
func SlidingWindows(n, size, overlap int) ([]Window, error) {
	if size <= 0 || size > n {
		return nil, fmt.Errorf("%w: size %d over %d samples", ErrBadWindow, size, n)
	}
	if overlap < 0 || overlap >= size {
		return nil, fmt.Errorf("%w: overlap %d for size %d", ErrBadWindow, overlap, size)
	}
	step := size - overlap
	var out []Window
	for start := 0; start+size <= n; start += step {
		out = append(out, Window{Start: start, End: start + size})
	}

	return out, nil
}

// ZeroCrossings returns the indices i where x crosses zero between
// sample i and i+1 in the given direction: +1 for negative→positive,
// -1 for positive→negative, 0 for both.
func ZeroCrossings(x []float64, direction int) []int {
	var out []int
	for i := 0; i+1 < len(x); i++ {
		negToPos := x[i] < 0 && x[i+1] >= 0
		posToNeg := x[i] > 0 && x[i+1] <= 0
		switch {
		case direction > 0 && negToPos:
			out = append(out, i)
		case direction < 0 && posToNeg:
			out = append(out, i)
		case direction == 0 && (negToPos || posToNeg):
			out = append(out, i)
		}
	}

	return out
}
