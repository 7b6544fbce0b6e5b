package dtw_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaitkit/gaitkit/dtw"
)

// TestDistance_EmptyInput verifies that Distance returns ErrEmptyInput
// when either input sequence is empty.
func TestDistance_EmptyInput(t *testing.T) {
	opts := dtw.DefaultOptions()

	_, _, err := dtw.Distance([]float64{}, []float64{1, 2, 3}, &opts)
	assert.ErrorIs(t, err, dtw.ErrEmptyInput, "empty first sequence should error")

	_, _, err = dtw.Distance([]float64{1, 2, 3}, []float64{}, &opts)
	assert.ErrorIs(t, err, dtw.ErrEmptyInput, "empty second sequence should error")
}

// TestDistance_BadWindowOption ensures that Window < -1 triggers ErrBadInput.
func TestDistance_BadWindowOption(t *testing.T) {
	opts := dtw.DefaultOptions()
	opts.Window = -2

	_, _, err := dtw.Distance([]float64{1}, []float64{1}, &opts)
	assert.ErrorIs(t, err, dtw.ErrBadInput, "Window < -1 must error ErrBadInput")
}

// TestDistance_PathNeedsMatrix ensures ReturnPath=true with a rolling
// memory mode errors.
func TestDistance_PathNeedsMatrix(t *testing.T) {
	opts := dtw.DefaultOptions()
	opts.ReturnPath = true
	opts.MemoryMode = dtw.TwoRows

	_, _, err := dtw.Distance([]float64{1, 2}, []float64{1, 2}, &opts)
	assert.ErrorIs(t, err, dtw.ErrPathNeedsMatrix, "ReturnPath without FullMatrix must error")
}

// TestDistance_BasicDistance verifies that identical sequences have zero
// distance and no path is returned by default.
func TestDistance_BasicDistance(t *testing.T) {
	a := []float64{0, 1, 2}
	b := []float64{0, 1, 2}
	opts := dtw.DefaultOptions()

	dist, path, err := dtw.Distance(a, b, &opts)
	require.NoError(t, err, "identical sequences should not error")
	assert.Equal(t, 0.0, dist, "identical sequences must have zero distance")
	assert.Nil(t, path, "default ReturnPath=false should yield nil path")
}

// TestDistance_SyntheticDistanceAndPath checks a perfect subsequence
// match and that the path covers both sequences monotonically.
func TestDistance_SyntheticDistanceAndPath(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{1, 2, 2, 3}
	opts := dtw.DefaultOptions()
	opts.ReturnPath = true

	dist, path, err := dtw.Distance(a, b, &opts)
	require.NoError(t, err)
	assert.Equal(t, 0.0, dist, "perfect warped match yields zero cost")
	assert.Len(t, path, 4, "path length should be len(a)+(len(b)-len(a))")
	assert.Equal(t, dtw.Coord{I: 0, J: 0}, path[0], "path starts at the origin")
	assert.Equal(t, dtw.Coord{I: 2, J: 3}, path[len(path)-1], "path ends at the last pair")
}

// TestDistance_RollingMatchesFullMatrix checks that TwoRows and
// NoMemory produce the full-matrix distance.
func TestDistance_RollingMatchesFullMatrix(t *testing.T) {
	a := []float64{0, 0, 1, 2, 1, 0}
	b := []float64{0, 1, 1, 1, 0}

	full := dtw.DefaultOptions()
	wantDist, _, err := dtw.Distance(a, b, &full)
	require.NoError(t, err)

	for _, mode := range []dtw.MemoryMode{dtw.TwoRows, dtw.NoMemory} {
		opts := dtw.DefaultOptions()
		opts.MemoryMode = mode
		dist, path, err := dtw.Distance(a, b, &opts)
		require.NoError(t, err)
		assert.Equal(t, wantDist, dist, "mode %v must match full matrix", mode)
		assert.Nil(t, path, "rolling modes never return a path")
	}
}

// TestDistance_StrictWindow checks that a zero Sakoe-Chiba band forces
// +Inf for length-mismatched sequences.
func TestDistance_StrictWindow(t *testing.T) {
	opts := dtw.DefaultOptions()
	opts.Window = 0

	dist, _, err := dtw.Distance([]float64{2, 3, 4}, []float64{2, 3, 4, 5}, &opts)
	require.NoError(t, err)
	assert.True(t, math.IsInf(dist, 1), "diagonal-only window with unequal lengths is infeasible")
}

// TestDistance_SlopePenalty verifies that the penalty is charged for
// each insertion/deletion step.
func TestDistance_SlopePenalty(t *testing.T) {
	a := []float64{10, 11, 12, 13, 14, 15}
	b := []float64{10, 11, 13, 14, 15}
	opts := dtw.DefaultOptions()
	opts.SlopePenalty = 1.0

	dist, _, err := dtw.Distance(a, b, &opts)
	require.NoError(t, err)
	// One element of a has no partner: one non-diagonal step at cost
	// penalty(1) + local cost(1) = 2... or absorbed as a repeat match
	// with local cost 1 + penalty 1.
	assert.InDelta(t, 2.0, dist, 1e-12, "one stretched step pays penalty plus local cost")
}

// TestDistance_PathRespectsSlopePenalty verifies that the warping path
// accumulates to the reported distance even when the predecessor chosen
// by a raw-value comparison would be a cheaper cell but a worse move.
func TestDistance_PathRespectsSlopePenalty(t *testing.T) {
	a := []float64{0, 1, 1, 0}
	b := []float64{0, -2}
	opts := dtw.DefaultOptions()
	opts.SlopePenalty = 3.0
	opts.ReturnPath = true

	dist, path, err := dtw.Distance(a, b, &opts)
	require.NoError(t, err)
	assert.InDelta(t, 10.0, dist, 1e-12)

	// Hand-derived optimal path: stay in the first column, then move
	// diagonally into the last cell.
	require.Equal(t, []dtw.Coord{{I: 0, J: 0}, {I: 1, J: 0}, {I: 2, J: 0}, {I: 3, J: 1}}, path)

	// The path cost (local costs plus a penalty per non-diagonal step)
	// must reproduce the distance exactly.
	cost := math.Abs(a[path[0].I] - b[path[0].J])
	for k := 1; k < len(path); k++ {
		cost += math.Abs(a[path[k].I] - b[path[k].J])
		if path[k].I-path[k-1].I+path[k].J-path[k-1].J != 2 {
			cost += opts.SlopePenalty
		}
	}
	assert.InDelta(t, dist, cost, 1e-12, "path must explain the distance")
}
