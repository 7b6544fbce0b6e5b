package dtw

import (
	"fmt"
	"math"

	"github.com/gaitkit/gaitkit/imu"
	"github.com/gaitkit/gaitkit/signalproc"
)

// Template is a stride prototype used for subsequence matching: one or
// more axes of equal length, recorded at a known sampling rate.
//
// ScaleFactor describes the amplitude normalization of the template
// data: the signal is divided by ScaleFactor before matching, so a
// template stored with unit amplitude pairs with a factor in the order
// of the raw signal amplitude (deg/s for gyroscope axes).
type Template struct {
	axes  []string
	data  [][]float64
	rate  float64
	scale float64
}

// NewTemplate builds a template from per-axis sample slices. All axes
// must have equal, non-zero length. A scale factor of 0 means 1.
func NewTemplate(axes []string, data [][]float64, rateHz, scaleFactor float64) (*Template, error) {
	if len(axes) == 0 || len(data) != len(axes) {
		return nil, fmt.Errorf("%w: %d axes, %d data columns", ErrBadInput, len(axes), len(data))
	}
	if rateHz <= 0 {
		return nil, fmt.Errorf("%w: sampling rate %v", ErrBadInput, rateHz)
	}
	n := len(data[0])
	if n == 0 {
		return nil, ErrEmptyInput
	}
	for i, d := range data {
		if len(d) != n {
			return nil, fmt.Errorf("%w: axis %q has %d samples, want %d", ErrBadInput, axes[i], len(d), n)
		}
	}
	if scaleFactor == 0 {
		scaleFactor = 1
	}

	cp := make([][]float64, len(data))
	for i, d := range data {
		cp[i] = append([]float64(nil), d...)
	}

	return &Template{
		axes:  append([]string(nil), axes...),
		data:  cp,
		rate:  rateHz,
		scale: scaleFactor,
	}, nil
}

// Axes returns the template axis names.
func (t *Template) Axes() []string { return append([]string(nil), t.axes...) }

// Len returns the template length in samples.
func (t *Template) Len() int { return len(t.data[0]) }

// SamplingRate returns the template sampling rate in Hz.
func (t *Template) SamplingRate() float64 { return t.rate }

// ScaleFactor returns the amplitude normalization factor.
func (t *Template) ScaleFactor() float64 { return t.scale }

// Data returns a copy of one axis of the template.
func (t *Template) Data(axis string) ([]float64, error) {
	for i, a := range t.axes {
		if a == axis {
			return append([]float64(nil), t.data[i]...), nil
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrAxisMismatch, axis)
}

// withRate returns the template resampled to the given sampling rate.
// The template itself is returned if the rates already match.
func (t *Template) withRate(rateHz float64) (*Template, error) {
	if rateHz == t.rate {
		return t, nil
	}
	target := int(math.Round(float64(t.Len()) * rateHz / t.rate))
	if target < 2 {
		target = 2
	}
	data := make([][]float64, len(t.data))
	for i, d := range t.data {
		r, err := signalproc.Resample(d, target)
		if err != nil {
			return nil, fmt.Errorf("dtw: resample template: %w", err)
		}
		data[i] = r
	}

	return &Template{axes: t.axes, data: data, rate: rateHz, scale: t.scale}, nil
}

// barthTemplateLen is the canonical template length at barthTemplateRate.
const (
	barthTemplateLen  = 200
	barthTemplateRate = 204.8
)

// BarthOriginalTemplate returns the canonical single-axis gyr_ml stride
// prototype: the stride runs from one pre-swing minimum to the next,
// with the dominant positive swing peak in the first half and the
// sharp negative heel-strike dip after it. The template is stored with
// unit amplitude and a scale factor of 500 deg/s.
//
// Matching works best on body-frame data (see bodyframe) with
// MaxCost around 4.
func BarthOriginalTemplate() *Template {
	data := make([]float64, barthTemplateLen)
	n := float64(barthTemplateLen)
	for i := range data {
		x := float64(i)
		data[i] = -0.5*gauss(x, 0.00*n, 0.035*n) +
			1.0*gauss(x, 0.22*n, 0.085*n) -
			0.6*gauss(x, 0.48*n, 0.040*n) -
			0.5*gauss(x, 0.99*n, 0.035*n)
	}

	t, err := NewTemplate([]string{imu.GyrML}, [][]float64{data}, barthTemplateRate, 500)
	if err != nil {
		panic(err) // static data, cannot fail
	}

	return t
}

// gauss is an unnormalized Gaussian bump.
func gauss(x, mu, sigma float64) float64 {
	d := (x - mu) / sigma

	return math.Exp(-0.5 * d * d)
}

// InterpolatedTemplate derives a template from labeled example strides:
// every stride is cut from the signal, linearly resampled to a common
// length and averaged per axis. With samples <= 0 the mean stride
// length is used. The resulting template carries scale factor 1 —
// combine with a transform scaler if amplitude normalization is
// wanted.
func InterpolatedTemplate(s *imu.Signal, axes []string, strides []imu.Stride, samples int) (*Template, error) {
	if len(strides) == 0 {
		return nil, ErrEmptyInput
	}
	if err := imu.ValidateStrides(strides); err != nil {
		return nil, err
	}
	for _, axis := range axes {
		if !s.HasAxis(axis) {
			return nil, fmt.Errorf("%w: %q", ErrAxisMismatch, axis)
		}
	}

	if samples <= 0 {
		total := 0
		for _, st := range strides {
			total += st.Len()
		}
		samples = total / len(strides)
	}
	if samples < 2 {
		return nil, fmt.Errorf("%w: template length %d", ErrBadInput, samples)
	}

	data := make([][]float64, len(axes))
	for ai, axis := range axes {
		acc := make([]float64, samples)
		for _, st := range strides {
			cut, err := s.Slice(st.Start, st.End)
			if err != nil {
				return nil, err
			}
			col, err := cut.Col(axis)
			if err != nil {
				return nil, err
			}
			res, err := signalproc.Resample(col, samples)
			if err != nil {
				return nil, err
			}
			for i, v := range res {
				acc[i] += v
			}
		}
		for i := range acc {
			acc[i] /= float64(len(strides))
		}
		data[ai] = acc
	}

	return NewTemplate(axes, data, s.SamplingRate(), 1)
}
