package evalutils

import (
	"errors"
	"sort"

	"github.com/gaitkit/gaitkit/imu"
)

// ErrBadTolerance is returned for a negative matching tolerance.
var ErrBadTolerance = errors.New("evalutils: tolerance must be >= 0")

// MatchPair references one matched stride in both lists by index.
type MatchPair struct {
	Calculated int
	Reference  int
}

// Matches is the result of a one-to-one stride list comparison.
type Matches struct {
	// TruePositives are the matched pairs, ordered by calculated index.
	TruePositives []MatchPair

	// FalsePositives are indices of unmatched calculated strides.
	FalsePositives []int

	// FalseNegatives are indices of unmatched reference strides.
	FalseNegatives []int
}

// Scores holds the classification scores of a stride list match.
type Scores struct {
	Precision float64
	Recall    float64
	F1        float64
}

// MatchStrideLists pairs calculated strides with reference strides.
// Two strides are match candidates when both their start and end
// samples agree within tolerance samples; candidates are paired
// closest first, one-to-one.
func MatchStrideLists(calculated, reference []imu.Stride, tolerance int) (Matches, error) {
	if tolerance < 0 {
		return Matches{}, ErrBadTolerance
	}
	if err := imu.ValidateStrides(calculated); err != nil {
		return Matches{}, err
	}
	if err := imu.ValidateStrides(reference); err != nil {
		return Matches{}, err
	}

	type candidate struct {
		calc, ref, dist int
	}
	var candidates []candidate
	for i, c := range calculated {
		for j, r := range reference {
			ds := absInt(c.Start - r.Start)
			de := absInt(c.End - r.End)
			if ds <= tolerance && de <= tolerance {
				candidates = append(candidates, candidate{calc: i, ref: j, dist: ds + de})
			}
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].dist < candidates[j].dist })

	usedCalc := make([]bool, len(calculated))
	usedRef := make([]bool, len(reference))
	var m Matches
	for _, c := range candidates {
		if usedCalc[c.calc] || usedRef[c.ref] {
			continue
		}
		usedCalc[c.calc] = true
		usedRef[c.ref] = true
		m.TruePositives = append(m.TruePositives, MatchPair{Calculated: c.calc, Reference: c.ref})
	}
	sort.Slice(m.TruePositives, func(i, j int) bool {
		return m.TruePositives[i].Calculated < m.TruePositives[j].Calculated
	})

	for i := range calculated {
		if !usedCalc[i] {
			m.FalsePositives = append(m.FalsePositives, i)
		}
	}
	for j := range reference {
		if !usedRef[j] {
			m.FalseNegatives = append(m.FalseNegatives, j)
		}
	}

	return m, nil
}

// Scores derives precision, recall and F1 from the match counts.
// Scores involving an empty denominator are 0.
func (m Matches) Scores() Scores {
	tp := float64(len(m.TruePositives))
	fp := float64(len(m.FalsePositives))
	fn := float64(len(m.FalseNegatives))

	var s Scores
	if tp+fp > 0 {
		s.Precision = tp / (tp + fp)
	}
	if tp+fn > 0 {
		s.Recall = tp / (tp + fn)
	}
	if s.Precision+s.Recall > 0 {
		s.F1 = 2 * s.Precision * s.Recall / (s.Precision + s.Recall)
	}

	return s
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
