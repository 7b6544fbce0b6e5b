package transform

import (
	"errors"
	"fmt"
	"math"

	"github.com/gaitkit/gaitkit/imu"
)

// Sentinel errors of the transform package.
var (
	// ErrNotFitted indicates a trainable transformer used before Fit.
	ErrNotFitted = errors.New("transform: transformer is not fitted")

	// ErrNoTrainingData indicates Fit was called without signals.
	ErrNoTrainingData = errors.New("transform: no training data")

	// ErrBadRange indicates a feature range with min >= max.
	ErrBadRange = errors.New("transform: invalid feature range")

	// ErrDuplicateColumn indicates an axis mapped twice in a Grouped
	// transformer.
	ErrDuplicateColumn = errors.New("transform: axis mapped more than once")

	// ErrUnknownColumn indicates a mapped axis missing from the data.
	ErrUnknownColumn = errors.New("transform: mapped axis not in data")
)

// Transformer scales a Signal and returns the transformed copy.
// Implementations never modify the input.
type Transformer interface {
	Transform(s *imu.Signal) (*imu.Signal, error)
}

// Trainable is implemented by transformers whose parameters are
// learned from training signals.
type Trainable interface {
	Transformer

	// Fit learns the scaling parameters from the given signals.
	Fit(data []*imu.Signal) error
}

// Identity passes the data through unchanged.
type Identity struct{}

// Transform returns a copy of s.
func (Identity) Transform(s *imu.Signal) (*imu.Signal, error) { return s.Clone(), nil }

// Fixed applies a fixed offset and scale: y = (x − Offset) / Scale.
type Fixed struct {
	// Scale divides the data; must be non-zero. Zero means 1.
	Scale float64

	// Offset is subtracted before scaling.
	Offset float64
}

// Transform scales the data.
func (f Fixed) Transform(s *imu.Signal) (*imu.Signal, error) {
	scale := f.Scale
	if scale == 0 {
		scale = 1
	}

	return apply(s, func(v float64) float64 { return (v - f.Offset) / scale })
}

// AbsMax scales the data so its global absolute maximum equals
// FeatureMax.
type AbsMax struct {
	// FeatureMax is the target absolute maximum. Zero means 1.
	FeatureMax float64
}

// Transform scales the data by its own absolute maximum.
func (a AbsMax) Transform(s *imu.Signal) (*imu.Signal, error) {
	return scaleByAbsMax(s, a.FeatureMax, globalAbsMax(s))
}

// TrainableAbsMax scales by an absolute maximum learned from training
// data. Without Fit, Transform fails with ErrNotFitted.
type TrainableAbsMax struct {
	// FeatureMax is the target absolute maximum. Zero means 1.
	FeatureMax float64

	// DataMax is the learned absolute maximum (NaN/zero before Fit).
	DataMax float64
}

// Fit learns DataMax as the maximum of the per-signal absolute maxima.
func (a *TrainableAbsMax) Fit(data []*imu.Signal) error {
	if len(data) == 0 {
		return ErrNoTrainingData
	}
	m := math.Inf(-1)
	for _, d := range data {
		if v := globalAbsMax(d); v > m {
			m = v
		}
	}
	a.DataMax = m

	return nil
}

// Transform scales the data by the learned maximum.
func (a *TrainableAbsMax) Transform(s *imu.Signal) (*imu.Signal, error) {
	if a.DataMax == 0 || math.IsNaN(a.DataMax) || math.IsInf(a.DataMax, 0) {
		return nil, ErrNotFitted
	}

	return scaleByAbsMax(s, a.FeatureMax, a.DataMax)
}

// MinMax maps the global data range onto [Min, Max].
type MinMax struct {
	// Min and Max define the target feature range. Both zero means [0, 1].
	Min float64
	Max float64
}

// Transform scales the data by its own min/max range.
func (m MinMax) Transform(s *imu.Signal) (*imu.Signal, error) {
	lo, hi, err := m.featureRange()
	if err != nil {
		return nil, err
	}
	dataLo, dataHi := globalRange(s)

	return scaleToRange(s, lo, hi, dataLo, dataHi)
}

func (m MinMax) featureRange() (float64, float64, error) {
	lo, hi := m.Min, m.Max
	if lo == 0 && hi == 0 {
		hi = 1
	}
	if lo >= hi {
		return 0, 0, fmt.Errorf("%w: [%v, %v]", ErrBadRange, lo, hi)
	}

	return lo, hi, nil
}

// TrainableMinMax maps a data range learned from training data onto
// the feature range. Without Fit, Transform fails with ErrNotFitted.
type TrainableMinMax struct {
	// Min and Max define the target feature range. Both zero means [0, 1].
	Min float64
	Max float64

	// DataMin/DataMax is the learned data range.
	DataMin float64
	DataMax float64

	fitted bool
}

// Fit learns the global data range over all training signals.
func (m *TrainableMinMax) Fit(data []*imu.Signal) error {
	if len(data) == 0 {
		return ErrNoTrainingData
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, d := range data {
		dLo, dHi := globalRange(d)
		lo = math.Min(lo, dLo)
		hi = math.Max(hi, dHi)
	}
	m.DataMin, m.DataMax = lo, hi
	m.fitted = true

	return nil
}

// Transform applies the learned range mapping.
func (m *TrainableMinMax) Transform(s *imu.Signal) (*imu.Signal, error) {
	if !m.fitted {
		return nil, ErrNotFitted
	}
	lo, hi, err := MinMax{Min: m.Min, Max: m.Max}.featureRange()
	if err != nil {
		return nil, err
	}

	return scaleToRange(s, lo, hi, m.DataMin, m.DataMax)
}

// ---- shared numeric helpers ----

// apply returns a copy of s with fn applied to every sample.
func apply(s *imu.Signal, fn func(float64) float64) (*imu.Signal, error) {
	out := s.Clone()
	for _, axis := range out.Axes() {
		col, err := out.Col(axis)
		if err != nil {
			return nil, err
		}
		for i := range col {
			col[i] = fn(col[i])
		}
		if err := out.SetCol(axis, col); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// globalAbsMax returns max(|x|) over all axes, ignoring NaN.
func globalAbsMax(s *imu.Signal) float64 {
	m := 0.0
	for _, axis := range s.Axes() {
		col, _ := s.Col(axis)
		for _, v := range col {
			if a := math.Abs(v); !math.IsNaN(a) && a > m {
				m = a
			}
		}
	}

	return m
}

// globalRange returns (min, max) over all axes, ignoring NaN.
func globalRange(s *imu.Signal) (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, axis := range s.Axes() {
		col, _ := s.Col(axis)
		for _, v := range col {
			if math.IsNaN(v) {
				continue
			}
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}

	return lo, hi
}

func scaleByAbsMax(s *imu.Signal, featureMax, absMax float64) (*imu.Signal, error) {
	if featureMax == 0 {
		featureMax = 1
	}
	if absMax == 0 {
		// All-zero data stays all-zero.
		return s.Clone(), nil
	}
	factor := featureMax / absMax

	return apply(s, func(v float64) float64 { return v * factor })
}

func scaleToRange(s *imu.Signal, lo, hi, dataLo, dataHi float64) (*imu.Signal, error) {
	span := dataHi - dataLo
	if span == 0 {
		span = 1
	}
	scale := (hi - lo) / span
	offset := lo - dataLo*scale

	return apply(s, func(v float64) float64 { return v*scale + offset })
}
