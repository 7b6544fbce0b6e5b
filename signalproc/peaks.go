package signalproc

import "sort"

// Peak describes one detected local maximum.
type Peak struct {
	// Index is the sample position of the maximum.
	Index int

	// Prominence is the height of the peak above the higher of its two
	// bases (see package doc).
	Prominence float64
}

// FindPeaks returns the local maxima of x with at least the given
// prominence, separated by at least minDistance samples. When two
// peaks are closer than minDistance, the higher one wins. The result
// is sorted by index.
func FindPeaks(x []float64, minProminence float64, minDistance int) ([]Peak, error) {
	if len(x) == 0 {
		return nil, ErrEmptyInput
	}

	var candidates []Peak
	for i := 1; i+1 < len(x); i++ {
		if !(x[i] > x[i-1] && x[i] >= x[i+1]) {
			continue
		}
		p := prominence(x, i)
		if p >= minProminence {
			candidates = append(candidates, Peak{Index: i, Prominence: p})
		}
	}

	if minDistance > 1 && len(candidates) > 1 {
		candidates = enforceDistance(x, candidates, minDistance)
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].Index < candidates[j].Index })

	return candidates, nil
}

// prominence computes the prominence of the local maximum at i.
func prominence(x []float64, i int) float64 {
	leftBase := x[i]
	for j := i - 1; j >= 0; j-- {
		if x[j] > x[i] {
			break
		}
		if x[j] < leftBase {
			leftBase = x[j]
		}
	}
	rightBase := x[i]
	for j := i + 1; j < len(x); j++ {
		if x[j] > x[i] {
			break
		}
		if x[j] < rightBase {
			rightBase = x[j]
		}
	}

	base := leftBase
	if rightBase > base {
		base = rightBase
	}

	return x[i] - base
}

// enforceDistance keeps the higher peak of any pair closer than dist.
func enforceDistance(x []float64, peaks []Peak, dist int) []Peak {
	// Visit peaks from highest to lowest; drop any peak within dist of
	// an already accepted one.
	order := make([]Peak, len(peaks))
	copy(order, peaks)
	sort.Slice(order, func(i, j int) bool { return x[order[i].Index] > x[order[j].Index] })

	accepted := make([]Peak, 0, len(order))
	for _, p := range order {
		ok := true
		for _, a := range accepted {
			if abs(a.Index-p.Index) < dist {
				ok = false

				break
			}
		}
		if ok {
			accepted = append(accepted, p)
		}
	}

	return accepted
}

// abs returns the absolute value of an int.
func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
