package gaitdetect

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
	"sort"

	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/gaitkit/gaitkit/imu"
	"github.com/gaitkit/gaitkit/signalproc"
)

var (
	// ErrBadChannelConfig is returned for an unknown sensor channel
	// configuration.
	ErrBadChannelConfig = errors.New("gaitdetect: invalid sensor channel config")

	// ErrBadWindow is returned when the window size is not positive or
	// exceeds the signal length.
	ErrBadWindow = errors.New("gaitdetect: invalid window size")

	// ErrBadLocomotionBand is returned when the locomotion band is not
	// an increasing positive frequency pair.
	ErrBadLocomotionBand = errors.New("gaitdetect: invalid locomotion band")

	// ErrBandAboveNyquist is returned when the upper band edge leaves
	// no room for the first harmonic below the Nyquist frequency.
	ErrBandAboveNyquist = errors.New("gaitdetect: locomotion band too close to the Nyquist frequency")

	// ErrBadHarmonicTolerance is returned for a non-positive harmonic
	// tolerance.
	ErrBadHarmonicTolerance = errors.New("gaitdetect: harmonic tolerance must be > 0")

	// ErrNotSynced is returned when sequences of differently sized
	// signals should be merged across sensors.
	ErrNotSynced = errors.New("gaitdetect: merging requires synchronized signals of equal length")
)

// ChannelConfig selects the signal channel the detection runs on.
type ChannelConfig string

const (
	ConfigGyrML   ChannelConfig = "gyr_ml"
	ConfigAccSI   ChannelConfig = "acc_si"
	ConfigAccNorm ChannelConfig = "acc"
	ConfigGyrNorm ChannelConfig = "gyr"
)

// Defaults for Ullrich.
const (
	DefaultWindowSizeS         = 10.0
	DefaultLocomotionBandLow   = 0.5
	DefaultLocomotionBandHigh  = 3.0
	DefaultHarmonicToleranceHz = 0.3
	DefaultMinHarmonics        = 2
)

// configDefaults maps each channel config to its tuned peak prominence
// and active signal threshold (deg/s for gyr, m/s² for acc channels).
var configDefaults = map[ChannelConfig]struct{ prominence, activeThreshold float64 }{
	ConfigGyrML:   {17, 50},
	ConfigAccSI:   {8, 0.5},
	ConfigAccNorm: {13, 0.5},
	ConfigGyrNorm: {11, 50},
}

// Sequence is a detected gait sequence: the half-open sample interval
// [Start, End).
type Sequence struct {
	Start int
	End   int
}

// Ullrich detects gait sequences by windowed frequency analysis.
type Ullrich struct {
	// ChannelConfig selects the analyzed channel.
	ChannelConfig ChannelConfig

	// PeakProminence is the minimal prominence of a spectral peak, in
	// the channel's signal units.
	PeakProminence float64

	// ActiveSignalThreshold is the minimal mean absolute value of a
	// centered window to count as active.
	ActiveSignalThreshold float64

	// WindowSizeS is the analysis window length in seconds. Windows
	// overlap by half their size.
	WindowSizeS float64

	// LocomotionBand bounds the dominant frequency search, in Hz.
	LocomotionBand [2]float64

	// HarmonicToleranceHz is the maximal distance between an expected
	// harmonic and a spectral peak to count as a match.
	HarmonicToleranceHz float64

	// MinHarmonics is the number of matched harmonics needed to accept
	// a window as gait.
	MinHarmonics int

	// MergeSensors merges the sequences of all sensors of a
	// synchronized set into one common list.
	MergeSensors bool
}

// NewUllrich returns a detector on gyr_ml with the canonical defaults.
func NewUllrich() *Ullrich {
	u, _ := NewUllrichFor(ConfigGyrML)

	return u
}

// NewUllrichFor returns a detector on the given channel config with
// the prominence and activity threshold tuned for that channel.
func NewUllrichFor(cfg ChannelConfig) (*Ullrich, error) {
	d, ok := configDefaults[cfg]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrBadChannelConfig, cfg)
	}

	return &Ullrich{
		ChannelConfig:         cfg,
		PeakProminence:        d.prominence,
		ActiveSignalThreshold: d.activeThreshold,
		WindowSizeS:           DefaultWindowSizeS,
		LocomotionBand:        [2]float64{DefaultLocomotionBandLow, DefaultLocomotionBandHigh},
		HarmonicToleranceHz:   DefaultHarmonicToleranceHz,
		MinHarmonics:          DefaultMinHarmonics,
	}, nil
}

// minPeriodicity is the minimal normalized autocorrelation at the
// dominant period for a window to count as periodic.
const minPeriodicity = 0.2

// Detect returns the gait sequences of a single body-frame sensor.
func (u *Ullrich) Detect(s *imu.Signal) ([]Sequence, error) {
	sig, err := u.channelSignal(s)
	if err != nil {
		return nil, err
	}
	rate := s.SamplingRate()
	if err := u.validate(len(sig), rate); err != nil {
		return nil, err
	}

	winSize := int(u.WindowSizeS * rate)
	windows, err := signalproc.SlidingWindows(len(sig), winSize, winSize/2)
	if err != nil {
		return nil, fmt.Errorf("gaitdetect: %w", err)
	}

	// Center all windows first so the autocorrelation of every active
	// window can be computed in one pass.
	centered := make([][]float64, len(windows))
	active := make([]bool, len(windows))
	for i, w := range windows {
		centered[i] = signalproc.Center(sig[w.Start:w.End])
		active[i] = meanAbs(centered[i]) >= u.ActiveSignalThreshold
	}
	maxLag := winSize - 1
	if l := int(rate / u.LocomotionBand[0]); l < maxLag {
		maxLag = l
	}
	autocorr, err := signalproc.RowWiseAutocorrelation(centered, maxLag)
	if err != nil {
		return nil, fmt.Errorf("gaitdetect: %w", err)
	}

	fft := fourier.NewFFT(winSize)
	var gait []Sequence
	for i, w := range windows {
		if !active[i] {
			continue
		}
		if u.isGaitWindow(fft, centered[i], autocorr[i], rate) {
			gait = append(gait, Sequence{Start: w.Start, End: w.End})
		}
	}

	return mergeSequences(gait), nil
}

// DetectSet runs Detect per sensor. With MergeSensors set, all sensors
// must hold synchronized signals of equal length and share the merged
// sequence list.
func (u *Ullrich) DetectSet(set imu.SensorSet) (map[string][]Sequence, error) {
	names := set.Names()
	if u.MergeSensors {
		n := -1
		for _, name := range names {
			if n == -1 {
				n = set[name].Len()
			} else if set[name].Len() != n {
				return nil, ErrNotSynced
			}
		}
	}

	out := make(map[string][]Sequence, len(names))
	var all []Sequence
	for _, name := range names {
		seqs, err := u.Detect(set[name])
		if err != nil {
			return nil, fmt.Errorf("sensor %s: %w", name, err)
		}
		out[name] = seqs
		all = append(all, seqs...)
	}

	if u.MergeSensors {
		merged := mergeSequences(sortSequences(all))
		for _, name := range names {
			out[name] = merged
		}
	}

	return out, nil
}

// isGaitWindow runs the dominant frequency, harmonic and periodicity
// checks on one active window.
func (u *Ullrich) isGaitWindow(fft *fourier.FFT, window, autocorr []float64, rate float64) bool {
	n := len(window)
	coeffs := fft.Coefficients(nil, window)
	mag := make([]float64, len(coeffs))
	for k, c := range coeffs {
		mag[k] = 2 * cmplx.Abs(c) / float64(n)
	}

	binHz := rate / float64(n)
	lo := int(math.Ceil(u.LocomotionBand[0] / binHz))
	hi := int(math.Floor(u.LocomotionBand[1] / binHz))
	if lo < 1 {
		lo = 1
	}
	if hi >= len(mag) {
		hi = len(mag) - 1
	}
	dom := lo
	for k := lo; k <= hi; k++ {
		if mag[k] > mag[dom] {
			dom = k
		}
	}
	domFreq := float64(dom) * binHz

	peaks, err := signalproc.FindPeaks(mag, u.PeakProminence, 1)
	if err != nil {
		return false
	}
	matched := 0
	for k := 2; k <= 6; k++ {
		harmonic := float64(k) * domFreq
		for _, p := range peaks {
			if math.Abs(float64(p.Index)*binHz-harmonic) <= u.HarmonicToleranceHz {
				matched++

				break
			}
		}
	}
	if matched < u.MinHarmonics {
		return false
	}

	// Confirm the periodicity at the dominant period.
	lag := int(math.Round(rate / domFreq))
	if lag >= len(autocorr) || autocorr[0] <= 0 {
		return false
	}
	best := 0.0
	for l := lag - 2; l <= lag+2; l++ {
		if l > 0 && l < len(autocorr) && autocorr[l] > best {
			best = autocorr[l]
		}
	}

	return best/autocorr[0] >= minPeriodicity
}

func (u *Ullrich) channelSignal(s *imu.Signal) ([]float64, error) {
	switch u.ChannelConfig {
	case ConfigGyrML:
		if err := s.Validate(imu.FrameBody, false, true); err != nil {
			return nil, err
		}

		return s.Col(imu.GyrML)
	case ConfigAccSI:
		if err := s.Validate(imu.FrameBody, true, false); err != nil {
			return nil, err
		}

		return s.Col(imu.AccSI)
	case ConfigAccNorm:
		if err := s.Validate(imu.FrameBody, true, false); err != nil {
			return nil, err
		}
		pa, _ := s.Col(imu.AccPA)
		ml, _ := s.Col(imu.AccML)
		si, _ := s.Col(imu.AccSI)

		return signalproc.Norm(pa, ml, si)
	case ConfigGyrNorm:
		if err := s.Validate(imu.FrameBody, false, true); err != nil {
			return nil, err
		}
		pa, _ := s.Col(imu.GyrPA)
		ml, _ := s.Col(imu.GyrML)
		si, _ := s.Col(imu.GyrSI)

		return signalproc.Norm(pa, ml, si)
	}

	return nil, fmt.Errorf("%w: %q", ErrBadChannelConfig, u.ChannelConfig)
}

func (u *Ullrich) validate(samples int, rate float64) error {
	winSize := int(u.WindowSizeS * rate)
	if winSize <= 0 || winSize > samples {
		return fmt.Errorf("%w: %d samples for a %d sample signal", ErrBadWindow, winSize, samples)
	}
	lo, hi := u.LocomotionBand[0], u.LocomotionBand[1]
	if lo <= 0 || hi <= lo {
		return fmt.Errorf("%w: [%g, %g]", ErrBadLocomotionBand, lo, hi)
	}
	// The first harmonic of the upper band edge must stay observable.
	if 2*hi > rate/2 {
		return fmt.Errorf("%w: upper edge %g Hz at %g Hz sampling rate", ErrBandAboveNyquist, hi, rate)
	}
	if u.HarmonicToleranceHz <= 0 {
		return ErrBadHarmonicTolerance
	}

	return nil
}

func meanAbs(x []float64) float64 {
	sum := 0.0
	for _, v := range x {
		sum += math.Abs(v)
	}

	return sum / float64(len(x))
}

// mergeSequences merges overlapping or adjacent sequences. The input
// must be sorted by start sample.
func mergeSequences(seqs []Sequence) []Sequence {
	if len(seqs) == 0 {
		return nil
	}
	out := []Sequence{seqs[0]}
	for _, s := range seqs[1:] {
		last := &out[len(out)-1]
		if s.Start <= last.End {
			if s.End > last.End {
				last.End = s.End
			}

			continue
		}
		out = append(out, s)
	}

	return out
}

func sortSequences(seqs []Sequence) []Sequence {
	out := append([]Sequence(nil), seqs...)
	sort.Slice(out, func(i, j int) bool { return out[i].Start < out[j].Start })

	return out
}
