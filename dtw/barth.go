package dtw

import (
	"fmt"
	"math"
	"sort"

	"github.com/gaitkit/gaitkit/imu"
	"github.com/gaitkit/gaitkit/transform"
)

// Segmentation defaults. MaxCost assumes the BarthOriginalTemplate
// amplitude normalization.
const (
	DefaultMaxCost         = 4.0
	DefaultMinMatchLengthS = 0.6
	DefaultMaxMatchLengthS = 3.0
	DefaultSnapToMinWinMS  = 300.0

	// DefaultMaxStretchMS is the local warping cap of the constrained
	// variant.
	DefaultMaxStretchMS = 120.0
)

// Match is one raw template match: the half-open signal interval
// [Start, End) and its accumulated DTW cost.
type Match struct {
	Start int
	End   int
	Cost  float64
}

// Segmentation is the result of one BarthDtw run on a single sensor.
type Segmentation struct {
	// Strides are the post-processed matches in stride-list form,
	// sorted by start sample with IDs assigned in that order.
	Strides []imu.Stride

	// Matches are the raw threshold matches before duration filtering,
	// conflict resolution and snapping.
	Matches []Match

	// CostFunction is the accumulated subsequence cost per candidate
	// end sample (the last row of the cost matrix).
	CostFunction []float64
}

// BarthDtw segments a continuous recording into strides by matching a
// stride template with subsequence DTW (see package doc).
//
// The zero value is not usable; construct via NewBarthDtw or
// NewConstrainedBarthDtw and adjust fields as needed.
type BarthDtw struct {
	// Template is the stride prototype to match.
	Template *Template

	// MaxCost is the accumulated-cost threshold for match candidates.
	MaxCost float64

	// MinMatchLengthS / MaxMatchLengthS bound the accepted stride
	// duration in seconds. Zero disables the respective bound.
	MinMatchLengthS float64
	MaxMatchLengthS float64

	// SnapToMinAxis snaps stride borders to the nearest minimum of
	// this axis ("" disables snapping).
	SnapToMinAxis string

	// SnapToMinWinMS is the width of the snapping search window.
	SnapToMinWinMS float64

	// ConflictResolution removes overlapping matches, keeping the
	// cheaper one.
	ConflictResolution bool

	// MaxTemplateStretchMS / MaxSignalStretchMS cap local warping
	// (0 = unconstrained); see the constrained variant.
	MaxTemplateStretchMS float64
	MaxSignalStretchMS   float64
}

// NewBarthDtw returns a segmenter with the canonical template and the
// documented defaults.
func NewBarthDtw() *BarthDtw {
	return &BarthDtw{
		Template:           BarthOriginalTemplate(),
		MaxCost:            DefaultMaxCost,
		MinMatchLengthS:    DefaultMinMatchLengthS,
		MaxMatchLengthS:    DefaultMaxMatchLengthS,
		SnapToMinAxis:      imu.GyrML,
		SnapToMinWinMS:     DefaultSnapToMinWinMS,
		ConflictResolution: true,
	}
}

// NewConstrainedBarthDtw returns a segmenter with local warping caps
// enabled, which avoids degenerate matches on irregular gait.
func NewConstrainedBarthDtw() *BarthDtw {
	b := NewBarthDtw()
	b.MaxTemplateStretchMS = DefaultMaxStretchMS
	b.MaxSignalStretchMS = DefaultMaxStretchMS

	return b
}

// Segment matches the template against one sensor signal and returns
// the segmentation.
func (b *BarthDtw) Segment(s *imu.Signal) (*Segmentation, error) {
	if b.Template == nil {
		return nil, ErrNoTemplate
	}
	if b.MaxCost < 0 {
		return nil, fmt.Errorf("%w: MaxCost=%v", ErrBadInput, b.MaxCost)
	}
	if s.Len() == 0 {
		return nil, ErrEmptyInput
	}

	rate := s.SamplingRate()
	tmpl, err := b.Template.withRate(rate)
	if err != nil {
		return nil, err
	}
	if tmpl.Len() > s.Len() {
		return nil, fmt.Errorf("%w: template (%d samples) longer than signal (%d)", ErrBadInput, tmpl.Len(), s.Len())
	}

	sig, err := b.scaledColumns(s, tmpl)
	if err != nil {
		return nil, err
	}

	maxTmplStretch, err := stretchSamples(b.MaxTemplateStretchMS, rate)
	if err != nil {
		return nil, err
	}
	maxSigStretch, err := stretchSamples(b.MaxSignalStretchMS, rate)
	if err != nil {
		return nil, err
	}

	acc := subsequenceMatrix(tmpl.data, sig, maxTmplStretch, maxSigStretch)
	costFn := append([]float64(nil), acc[len(acc)-1]...)

	matches := b.rawMatches(acc, costFn, tmpl.Len())
	strides, err := b.postprocess(s, matches, rate)
	if err != nil {
		return nil, err
	}

	return &Segmentation{Strides: strides, Matches: matches, CostFunction: costFn}, nil
}

// SegmentSet runs Segment on every sensor of a set.
func (b *BarthDtw) SegmentSet(set imu.SensorSet) (map[string]*Segmentation, error) {
	if len(set) == 0 {
		return nil, imu.ErrNoSensors
	}
	out := make(map[string]*Segmentation, len(set))
	for _, name := range set.Names() {
		seg, err := b.Segment(set[name])
		if err != nil {
			return nil, fmt.Errorf("sensor %q: %w", name, err)
		}
		out[name] = seg
	}

	return out, nil
}

// scaledColumns extracts the template axes from the signal, divided by
// the template scale factor.
func (b *BarthDtw) scaledColumns(s *imu.Signal, tmpl *Template) ([][]float64, error) {
	scaler := transform.Fixed{Scale: tmpl.ScaleFactor()}
	out := make([][]float64, len(tmpl.axes))
	for i, axis := range tmpl.axes {
		if !s.HasAxis(axis) {
			return nil, fmt.Errorf("%w: %q", ErrAxisMismatch, axis)
		}
		col, err := s.Col(axis)
		if err != nil {
			return nil, err
		}
		scaled, err := scaler.Transform(mustSingleAxis(axis, col, s.SamplingRate()))
		if err != nil {
			return nil, err
		}
		sc, err := scaled.Col(axis)
		if err != nil {
			return nil, err
		}
		out[i] = sc
	}

	return out, nil
}

// mustSingleAxis wraps one column into a Signal for the scaler.
func mustSingleAxis(axis string, col []float64, rate float64) *imu.Signal {
	s, err := imu.SignalFromColumns([]string{axis}, [][]float64{col}, rate)
	if err != nil {
		panic(err) // column taken from a valid signal
	}

	return s
}

// rawMatches extracts all threshold matches from the cost matrix.
func (b *BarthDtw) rawMatches(acc [][]float64, costFn []float64, tmplLen int) []Match {
	ends := findMatchEnds(costFn, b.MaxCost, tmplLen/2)
	matches := make([]Match, 0, len(ends))
	for _, end := range ends {
		start := backtrackStart(acc, end)
		matches = append(matches, Match{Start: start, End: end + 1, Cost: costFn[end]})
	}

	return matches
}

// postprocess turns raw matches into the final stride list.
func (b *BarthDtw) postprocess(s *imu.Signal, matches []Match, rate float64) ([]imu.Stride, error) {
	kept := make([]Match, 0, len(matches))
	minLen := int(math.Round(b.MinMatchLengthS * rate))
	maxLen := int(math.Round(b.MaxMatchLengthS * rate))
	for _, m := range matches {
		l := m.End - m.Start
		if b.MinMatchLengthS > 0 && l < minLen {
			continue
		}
		if b.MaxMatchLengthS > 0 && l > maxLen {
			continue
		}
		kept = append(kept, m)
	}

	if b.ConflictResolution {
		kept = resolveConflicts(kept)
	}

	if b.SnapToMinAxis != "" && len(kept) > 0 {
		if err := b.snapToMin(s, kept, rate); err != nil {
			return nil, err
		}
	}

	sort.Slice(kept, func(i, j int) bool { return kept[i].Start < kept[j].Start })
	strides := make([]imu.Stride, 0, len(kept))
	for _, m := range kept {
		if m.End <= m.Start {
			continue
		}
		strides = append(strides, imu.Stride{ID: len(strides), Start: m.Start, End: m.End})
	}

	return strides, nil
}

// resolveConflicts drops overlapping matches, cheaper cost wins.
func resolveConflicts(matches []Match) []Match {
	byCost := make([]Match, len(matches))
	copy(byCost, matches)
	sort.Slice(byCost, func(i, j int) bool { return byCost[i].Cost < byCost[j].Cost })

	accepted := make([]Match, 0, len(byCost))
	for _, m := range byCost {
		overlaps := false
		for _, a := range accepted {
			if m.Start < a.End && a.Start < m.End {
				overlaps = true

				break
			}
		}
		if !overlaps {
			accepted = append(accepted, m)
		}
	}

	return accepted
}

// snapToMin moves every stride border to the minimum of the snap axis
// within a centered search window.
func (b *BarthDtw) snapToMin(s *imu.Signal, matches []Match, rate float64) error {
	col, err := s.Col(b.SnapToMinAxis)
	if err != nil {
		return fmt.Errorf("%w: snap axis %q", ErrAxisMismatch, b.SnapToMinAxis)
	}
	half := int(math.Round(b.SnapToMinWinMS / 1000 * rate / 2))
	if half <= 0 {
		return nil
	}
	for i := range matches {
		matches[i].Start = snapIndex(col, matches[i].Start, half)
		// End is exclusive; snap the last contained sample.
		matches[i].End = snapIndex(col, matches[i].End-1, half) + 1
	}

	return nil
}

// snapIndex returns the argmin of col within [i-half, i+half].
func snapIndex(col []float64, i, half int) int {
	lo := max(0, i-half)
	hi := min(len(col), i+half+1)
	best := i
	for j := lo; j < hi; j++ {
		if col[j] < col[best] {
			best = j
		}
	}

	return best
}

// stretchSamples converts a stretch cap from ms to samples.
func stretchSamples(ms, rate float64) (int, error) {
	if ms == 0 {
		return 0, nil
	}
	n := int(math.Round(ms / 1000 * rate))
	if n < 1 {
		return 0, fmt.Errorf("%w: stretch %vms is below one sample at %vHz", ErrBadInput, ms, rate)
	}

	return n, nil
}
