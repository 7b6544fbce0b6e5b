package dtw

import "math"

// subsequenceMatrix computes the accumulated cost matrix of
// subsequence DTW: template rows (axis-major, n samples) against
// signal rows (same axes, m samples). The first template row is free,
// so a match may start at any signal sample. Per-cell cost is the
// Euclidean distance across axes.
//
// maxTmplStretch / maxSigStretch (in samples, 0 = unconstrained) cap
// the number of consecutive vertical/horizontal DP steps, i.e. how
// long a single signal sample may absorb template samples and vice
// versa.
func subsequenceMatrix(tmpl, sig [][]float64, maxTmplStretch, maxSigStretch int) [][]float64 {
	n, m := len(tmpl[0]), len(sig[0])
	inf := math.Inf(1)

	acc := make([][]float64, n)
	for i := range acc {
		acc[i] = make([]float64, m)
	}

	// Stretch bookkeeping: consecutive vertical / horizontal steps
	// that led into each cell.
	var vRun, hRun [][]int
	constrained := maxTmplStretch > 0 || maxSigStretch > 0
	if constrained {
		vRun = make([][]int, n)
		hRun = make([][]int, n)
		for i := range vRun {
			vRun[i] = make([]int, m)
			hRun[i] = make([]int, m)
		}
	}

	for j := 0; j < m; j++ {
		acc[0][j] = cellCost(tmpl, sig, 0, j)
	}
	for i := 1; i < n; i++ {
		acc[i][0] = acc[i-1][0] + cellCost(tmpl, sig, i, 0)
		if constrained {
			vRun[i][0] = vRun[i-1][0] + 1
			if maxTmplStretch > 0 && vRun[i][0] > maxTmplStretch {
				acc[i][0] = inf
			}
		}
	}

	for i := 1; i < n; i++ {
		for j := 1; j < m; j++ {
			diag := acc[i-1][j-1]
			up := acc[i-1][j]
			left := acc[i][j-1]

			if constrained {
				if maxTmplStretch > 0 && vRun[i-1][j]+1 > maxTmplStretch {
					up = inf
				}
				if maxSigStretch > 0 && hRun[i][j-1]+1 > maxSigStretch {
					left = inf
				}
			}

			best := min3(diag, up, left)
			acc[i][j] = cellCost(tmpl, sig, i, j) + best
			if constrained {
				switch best {
				case diag:
					// diagonal resets both runs
				case up:
					vRun[i][j] = vRun[i-1][j] + 1
				default:
					hRun[i][j] = hRun[i][j-1] + 1
				}
			}
		}
	}

	return acc
}

// cellCost is the Euclidean distance between template sample i and
// signal sample j across all axes.
func cellCost(tmpl, sig [][]float64, i, j int) float64 {
	sum := 0.0
	for a := range tmpl {
		d := tmpl[a][i] - sig[a][j]
		sum += d * d
	}

	return math.Sqrt(sum)
}

// findMatchEnds returns the local minima of the accumulated cost
// function (the last matrix row) that lie below maxCost, keeping only
// the lowest minimum within any minDistance samples.
func findMatchEnds(costRow []float64, maxCost float64, minDistance int) []int {
	var candidates []int
	for j := range costRow {
		if costRow[j] > maxCost || math.IsInf(costRow[j], 1) {
			continue
		}
		left := j == 0 || costRow[j-1] >= costRow[j]
		right := j == len(costRow)-1 || costRow[j+1] > costRow[j]
		if left && right {
			candidates = append(candidates, j)
		}
	}

	if minDistance <= 1 || len(candidates) < 2 {
		return candidates
	}

	// Greedy: keep the cheapest candidate of each close cluster.
	kept := candidates[:0]
	for _, c := range candidates {
		if len(kept) > 0 && c-kept[len(kept)-1] < minDistance {
			if costRow[c] < costRow[kept[len(kept)-1]] {
				kept[len(kept)-1] = c
			}

			continue
		}
		kept = append(kept, c)
	}

	return kept
}

// backtrackStart walks an accumulated cost matrix from (last row, end)
// to the free first row and returns the start column of the match.
func backtrackStart(acc [][]float64, end int) int {
	i, j := len(acc)-1, end
	for i > 0 {
		switch {
		case j == 0:
			i--
		default:
			diag, up, left := acc[i-1][j-1], acc[i-1][j], acc[i][j-1]
			if diag <= up && diag <= left {
				i--
				j--
			} else if up <= left {
				i--
			} else {
				j--
			}
		}
	}

	return j
}
