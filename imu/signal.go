package imu

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Signal is a fixed-rate, multi-axis time series.
//
// Data is stored column-major by axis in a dense matrix: row i holds
// sample i across all axes. Axis order is fixed at construction and
// preserved by Clone and Slice.
type Signal struct {
	axes []string
	col  map[string]int
	data *mat.Dense
	rate float64
}

// NewSignal allocates a zero-filled Signal with the given axes, number
// of samples and sampling rate in Hz.
func NewSignal(axes []string, samples int, rateHz float64) (*Signal, error) {
	if rateHz <= 0 {
		return nil, ErrBadSamplingRate
	}
	if len(axes) == 0 {
		return nil, ErrNoAxes
	}
	if samples < 0 {
		return nil, ErrOutOfRange
	}

	col := make(map[string]int, len(axes))
	for i, a := range axes {
		if _, dup := col[a]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateAxis, a)
		}
		col[a] = i
	}

	// mat.NewDense panics on zero rows; keep an explicit nil matrix for
	// the empty signal and guard the accessors.
	var d *mat.Dense
	if samples > 0 {
		d = mat.NewDense(samples, len(axes), nil)
	}

	return &Signal{axes: append([]string(nil), axes...), col: col, data: d, rate: rateHz}, nil
}

// SignalFromColumns builds a Signal from per-axis sample slices.
// All columns must have equal length. The column data is copied.
func SignalFromColumns(axes []string, columns [][]float64, rateHz float64) (*Signal, error) {
	if len(axes) != len(columns) {
		return nil, fmt.Errorf("%w: %d axes, %d columns", ErrLengthMismatch, len(axes), len(columns))
	}
	n := 0
	if len(columns) > 0 {
		n = len(columns[0])
	}
	for i, c := range columns {
		if len(c) != n {
			return nil, fmt.Errorf("%w: axis %q has %d samples, want %d", ErrLengthMismatch, axes[i], len(c), n)
		}
	}

	s, err := NewSignal(axes, n, rateHz)
	if err != nil {
		return nil, err
	}
	for i, c := range columns {
		for r, v := range c {
			s.data.Set(r, i, v)
		}
	}

	return s, nil
}

// Len returns the number of samples.
func (s *Signal) Len() int {
	if s.data == nil {
		return 0
	}
	r, _ := s.data.Dims()

	return r
}

// SamplingRate returns the sampling rate in Hz.
func (s *Signal) SamplingRate() float64 { return s.rate }

// Axes returns the axis names in column order. The slice is a copy.
func (s *Signal) Axes() []string { return append([]string(nil), s.axes...) }

// HasAxis reports whether the Signal carries the named axis.
func (s *Signal) HasAxis(axis string) bool {
	_, ok := s.col[axis]

	return ok
}

// Col returns a copy of the samples of one axis.
func (s *Signal) Col(axis string) ([]float64, error) {
	j, ok := s.col[axis]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAxis, axis)
	}
	out := make([]float64, s.Len())
	if s.data != nil {
		mat.Col(out, j, s.data)
	}

	return out, nil
}

// At returns the value of one axis at sample i.
func (s *Signal) At(i int, axis string) (float64, error) {
	j, ok := s.col[axis]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownAxis, axis)
	}
	if i < 0 || i >= s.Len() {
		return 0, fmt.Errorf("%w: sample %d of %d", ErrOutOfRange, i, s.Len())
	}

	return s.data.At(i, j), nil
}

// SetCol overwrites the samples of one axis. The value slice must match
// the signal length.
func (s *Signal) SetCol(axis string, values []float64) error {
	j, ok := s.col[axis]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownAxis, axis)
	}
	if len(values) != s.Len() {
		return fmt.Errorf("%w: got %d values, signal has %d samples", ErrLengthMismatch, len(values), s.Len())
	}
	for r, v := range values {
		s.data.Set(r, j, v)
	}

	return nil
}

// Set writes the value of one axis at sample i.
func (s *Signal) Set(i int, axis string, v float64) error {
	j, ok := s.col[axis]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownAxis, axis)
	}
	if i < 0 || i >= s.Len() {
		return fmt.Errorf("%w: sample %d of %d", ErrOutOfRange, i, s.Len())
	}
	s.data.Set(i, j, v)

	return nil
}

// Row returns a copy of all axis values at sample i, in axis order.
func (s *Signal) Row(i int) ([]float64, error) {
	if i < 0 || i >= s.Len() {
		return nil, fmt.Errorf("%w: sample %d of %d", ErrOutOfRange, i, s.Len())
	}
	out := make([]float64, len(s.axes))
	mat.Row(out, i, s.data)

	return out, nil
}

// Slice returns a copy of the half-open sample range [start, end) with
// the same axes and sampling rate.
func (s *Signal) Slice(start, end int) (*Signal, error) {
	if start < 0 || end > s.Len() || start > end {
		return nil, fmt.Errorf("%w: slice [%d, %d) of %d samples", ErrOutOfRange, start, end, s.Len())
	}
	out, err := NewSignal(s.axes, end-start, s.rate)
	if err != nil {
		return nil, err
	}
	if end > start {
		out.data.Copy(s.data.Slice(start, end, 0, len(s.axes)))
	}

	return out, nil
}

// Clone returns a deep copy of the Signal.
func (s *Signal) Clone() *Signal {
	return mustSlice(s, 0, s.Len())
}

// mustSlice is Slice with bounds already known to be valid.
func mustSlice(s *Signal, start, end int) *Signal {
	out, err := s.Slice(start, end)
	if err != nil {
		panic(err) // unreachable for valid bounds
	}

	return out
}

// Frame detects the axis convention of the Signal: FrameSensor or
// FrameBody if the full respective axis set is present, FrameAny
// otherwise.
func (s *Signal) Frame() Frame {
	if hasAxes(s.col, SensorFrameAxes) {
		return FrameSensor
	}
	if hasAxes(s.col, BodyFrameAxes) {
		return FrameBody
	}

	return FrameAny
}

// Validate checks that the Signal carries the axes required by the
// expected frame. With checkAcc/checkGyr the acc or gyr group can be
// excluded from the check. FrameAny passes if either full frame
// (restricted to the requested groups) is present.
func (s *Signal) Validate(frame Frame, checkAcc, checkGyr bool) error {
	ok := false
	switch frame {
	case FrameSensor, FrameBody:
		ok = s.matchesFrame(frame, checkAcc, checkGyr)
	default:
		ok = s.matchesFrame(FrameSensor, checkAcc, checkGyr) || s.matchesFrame(FrameBody, checkAcc, checkGyr)
	}
	if !ok {
		return fmt.Errorf("%w: want %s frame, have axes %v", ErrWrongFrame, frame, s.axes)
	}

	return nil
}

func (s *Signal) matchesFrame(frame Frame, checkAcc, checkGyr bool) bool {
	acc, gyr := frameAxes(frame)
	if checkAcc && !hasAxes(s.col, acc) {
		return false
	}
	if checkGyr && !hasAxes(s.col, gyr) {
		return false
	}

	return true
}
