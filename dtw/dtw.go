package dtw

import (
	"fmt"
	"math"
)

// Distance computes the Dynamic Time Warping distance between a and b.
// Returns (distance, path, error); path is nil unless opts.ReturnPath
// is set. A nil opts uses DefaultOptions.
//
// Example:
//
//	opts := dtw.DefaultOptions()
//	opts.ReturnPath = true
//	dist, path, err := dtw.Distance(seqA, seqB, &opts)
func Distance(a, b []float64, opts *Options) (float64, []Coord, error) {
	n, m := len(a), len(b)
	if n == 0 || m == 0 {
		return 0, nil, ErrEmptyInput
	}

	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.Window < -1 {
		return 0, nil, fmt.Errorf("%w: Window=%d", ErrBadInput, o.Window)
	}
	rolling := o.MemoryMode != FullMatrix
	if o.ReturnPath && rolling {
		return 0, nil, ErrPathNeedsMatrix
	}

	inf := math.Inf(1)

	// DP storage: full (n+1) rows, or two rolling rows.
	var dp [][]float64
	if rolling {
		dp = make([][]float64, 2)
		dp[0] = make([]float64, m+1)
		dp[1] = make([]float64, m+1)
	} else {
		dp = make([][]float64, n+1)
		for i := range dp {
			dp[i] = make([]float64, m+1)
		}
	}
	for j := 1; j <= m; j++ {
		dp[0][j] = inf
	}

	for i := 1; i <= n; i++ {
		rowCur, rowPrev := dp[i%2], dp[(i-1)%2]
		if !rolling {
			rowCur, rowPrev = dp[i], dp[i-1]
		}
		rowCur[0] = inf
		for j := 1; j <= m; j++ {
			if o.Window >= 0 && absInt(i-j) > o.Window {
				rowCur[j] = inf

				continue
			}
			cost := math.Abs(a[i-1] - b[j-1])
			best := min3(
				rowPrev[j]+o.SlopePenalty,
				rowCur[j-1]+o.SlopePenalty,
				rowPrev[j-1],
			)
			rowCur[j] = cost + best
		}
	}

	var distance float64
	if rolling {
		distance = dp[n%2][m]
	} else {
		distance = dp[n][m]
	}

	var path []Coord
	if o.ReturnPath && !math.IsInf(distance, 1) {
		path = backtrack(dp, n, m, o.SlopePenalty)
	}

	return distance, path, nil
}

// backtrack recovers the optimal warping path from a full DP matrix.
// The slope penalty enters the predecessor comparison exactly as it
// entered the forward pass, so the path always explains the distance.
func backtrack(dp [][]float64, n, m int, slopePenalty float64) []Coord {
	path := []Coord{{I: n - 1, J: m - 1}}
	i, j := n, m
	for i > 1 || j > 1 {
		switch {
		case i == 1:
			j--
		case j == 1:
			i--
		default:
			diag, up, left := dp[i-1][j-1], dp[i-1][j]+slopePenalty, dp[i][j-1]+slopePenalty
			if diag <= up && diag <= left {
				i--
				j--
			} else if up <= left {
				i--
			} else {
				j--
			}
		}
		path = append(path, Coord{I: i - 1, J: j - 1})
	}
	reverse(path)

	return path
}

// reverse flips a path in place.
func reverse(p []Coord) {
	for l, r := 0, len(p)-1; l < r; l, r = l+1, r-1 {
		p[l], p[r] = p[r], p[l]
	}
}

// absInt returns the absolute value of an int.
func absInt(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

// min3 returns the minimum of three float64 values.
func min3(a, b, c float64) float64 {
	if a < b {
		if a < c {
			return a
		}

		return c
	}
	if b < c {
		return b
	}

	return c
}
