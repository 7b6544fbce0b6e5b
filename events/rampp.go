package events

import (
	"errors"
	"fmt"
	"math"

	"github.com/gaitkit/gaitkit/imu"
	"github.com/gaitkit/gaitkit/signalproc"
)

var (
	// ErrBadSearchRegion is returned for a non-positive ic search
	// region.
	ErrBadSearchRegion = errors.New("events: ic search region must be > 0")

	// ErrBadMinVelWindow is returned for a non-positive min_vel search
	// window.
	ErrBadMinVelWindow = errors.New("events: min_vel search window must be > 0")
)

// Defaults for Rampp, in milliseconds.
const (
	DefaultICSearchBeforeMS = 80
	DefaultICSearchAfterMS  = 50
	DefaultMinVelWinMS      = 100
)

// SegmentedStrideEvents holds the raw events detected within one
// segmented stride. Event values are absolute sample indices; NaN
// marks an event that could not be detected.
type SegmentedStrideEvents struct {
	ID    int
	Start int
	End   int

	IC     float64
	TC     float64
	MinVel float64
}

// Result is the output of Rampp event detection on one sensor.
type Result struct {
	// Segmented holds the raw events per input stride, in input order.
	Segmented []SegmentedStrideEvents

	// MinVel is the derived min_vel stride list: strides running from
	// one mid-stance to the next, with sequential IDs.
	MinVel []imu.StrideEvents
}

// Rampp detects ic, tc and min_vel within segmented strides from
// body-frame data.
type Rampp struct {
	// ICSearchBeforeMS / ICSearchAfterMS bound the acc_pa minimum
	// search around the steepest gyr_ml slope after the swing peak.
	ICSearchBeforeMS float64
	ICSearchAfterMS  float64

	// MinVelWinMS is the width of the energy window used to locate
	// the mid-stance.
	MinVelWinMS float64
}

// NewRampp returns a detector with the canonical search regions.
func NewRampp() *Rampp {
	return &Rampp{
		ICSearchBeforeMS: DefaultICSearchBeforeMS,
		ICSearchAfterMS:  DefaultICSearchAfterMS,
		MinVelWinMS:      DefaultMinVelWinMS,
	}
}

// Detect finds the gait events of every stride on a single body-frame
// sensor and builds the min_vel stride list.
func (r *Rampp) Detect(s *imu.Signal, strides []imu.Stride) (*Result, error) {
	if r.ICSearchBeforeMS <= 0 || r.ICSearchAfterMS <= 0 {
		return nil, ErrBadSearchRegion
	}
	if r.MinVelWinMS <= 0 {
		return nil, ErrBadMinVelWindow
	}
	if err := s.Validate(imu.FrameBody, true, true); err != nil {
		return nil, err
	}
	if err := imu.ValidateStrides(strides); err != nil {
		return nil, err
	}
	for _, st := range strides {
		if st.End > s.Len() {
			return nil, fmt.Errorf("%w: stride %d [%d, %d) on %d samples", imu.ErrOutOfRange, st.ID, st.Start, st.End, s.Len())
		}
	}

	gyrML, err := s.Col(imu.GyrML)
	if err != nil {
		return nil, err
	}
	accPA, err := s.Col(imu.AccPA)
	if err != nil {
		return nil, err
	}
	gyrPA, _ := s.Col(imu.GyrPA)
	gyrSI, _ := s.Col(imu.GyrSI)
	gyrNorm, err := signalproc.Norm(gyrPA, gyrML, gyrSI)
	if err != nil {
		return nil, err
	}

	res := &Result{Segmented: make([]SegmentedStrideEvents, len(strides))}
	for i, st := range strides {
		res.Segmented[i] = r.detectStride(st, gyrML, accPA, gyrNorm, s.SamplingRate())
	}
	res.MinVel = buildMinVelStrides(res.Segmented)

	return res, nil
}

// DetectSet runs Detect per sensor.
func (r *Rampp) DetectSet(set imu.SensorSet, strides imu.MultiSensorStrides) (map[string]*Result, error) {
	out := make(map[string]*Result, len(strides))
	for _, name := range set.Names() {
		sts, ok := strides[name]
		if !ok {
			continue
		}
		s, err := set.Get(name)
		if err != nil {
			return nil, err
		}
		res, err := r.Detect(s, sts)
		if err != nil {
			return nil, fmt.Errorf("sensor %s: %w", name, err)
		}
		out[name] = res
	}

	return out, nil
}

func (r *Rampp) detectStride(st imu.Stride, gyrML, accPA, gyrNorm []float64, rate float64) SegmentedStrideEvents {
	out := SegmentedStrideEvents{
		ID: st.ID, Start: st.Start, End: st.End,
		IC: math.NaN(), TC: math.NaN(), MinVel: math.NaN(),
	}
	seg := gyrML[st.Start:st.End]

	peak := argmax(seg)
	out.TC = detectTC(seg, peak, st.Start)
	out.IC = r.detectIC(seg, accPA[st.Start:st.End], peak, st.Start, rate)
	out.MinVel = detectMinVel(gyrNorm[st.Start:st.End], st.Start, int(r.MinVelWinMS/1000*rate))

	return out
}

// detectTC returns the last negative-to-positive gyr_ml zero crossing
// before the swing peak.
func detectTC(seg []float64, peak, offset int) float64 {
	crossings := signalproc.ZeroCrossings(seg[:peak+1], +1)
	if len(crossings) == 0 {
		return math.NaN()
	}

	return float64(offset + crossings[len(crossings)-1])
}

// detectIC searches the acc_pa minimum around the steepest negative
// gyr_ml slope after the swing peak.
func (r *Rampp) detectIC(seg, acc []float64, peak, offset int, rate float64) float64 {
	if peak+1 >= len(seg) {
		return math.NaN()
	}
	steepest, slope := peak, math.Inf(1)
	for i := peak; i+1 < len(seg); i++ {
		if d := seg[i+1] - seg[i]; d < slope {
			slope = d
			steepest = i
		}
	}
	if slope >= 0 {
		return math.NaN()
	}

	lo := steepest - int(r.ICSearchBeforeMS/1000*rate)
	if lo < peak {
		lo = peak
	}
	hi := steepest + int(r.ICSearchAfterMS/1000*rate) + 1
	if hi > len(seg) {
		hi = len(seg)
	}

	return float64(offset + lo + argmin(acc[lo:hi]))
}

// detectMinVel returns the center of the lowest-energy gyroscope norm
// window within the stride.
func detectMinVel(norm []float64, offset, win int) float64 {
	if win < 1 {
		win = 1
	}
	if win > len(norm) {
		win = len(norm)
	}

	energy := 0.0
	for i := 0; i < win; i++ {
		energy += norm[i] * norm[i]
	}
	best, bestEnergy := 0, energy
	for start := 1; start+win <= len(norm); start++ {
		energy += norm[start+win-1]*norm[start+win-1] - norm[start-1]*norm[start-1]
		if energy < bestEnergy {
			bestEnergy = energy
			best = start
		}
	}

	return float64(offset + best + win/2)
}

// buildMinVelStrides re-slices the segmented strides into min_vel to
// min_vel strides, skipping invalid strides and sequence breaks.
func buildMinVelStrides(segmented []SegmentedStrideEvents) []imu.StrideEvents {
	var out []imu.StrideEvents
	id := 0
	for k := 0; k+1 < len(segmented); k++ {
		cur, next := segmented[k], segmented[k+1]
		if cur.End != next.Start {
			continue // break in the stride sequence
		}
		if anyNaN(cur.IC, cur.TC, cur.MinVel) || math.IsNaN(next.MinVel) {
			continue
		}
		start := int(cur.MinVel)
		end := int(next.MinVel)
		if !(float64(start) <= cur.TC && cur.TC <= cur.IC && cur.IC < float64(end)) {
			continue
		}

		preIC := math.NaN()
		if k > 0 {
			prev := segmented[k-1]
			if prev.End == cur.Start && !math.IsNaN(prev.IC) && prev.IC < float64(start) {
				preIC = prev.IC
			}
		}

		out = append(out, imu.StrideEvents{
			ID:     id,
			Start:  start,
			End:    end,
			PreIC:  preIC,
			IC:     cur.IC,
			MinVel: float64(start),
			TC:     cur.TC,
		})
		id++
	}

	return out
}

func argmax(x []float64) int {
	best := 0
	for i, v := range x {
		if v > x[best] {
			best = i
		}
	}

	return best
}

func argmin(x []float64) int {
	best := 0
	for i, v := range x {
		if v < x[best] {
			best = i
		}
	}

	return best
}

func anyNaN(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) {
			return true
		}
	}

	return false
}
