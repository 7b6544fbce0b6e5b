package bodyframe

import (
	"errors"
	"fmt"

	"github.com/gaitkit/gaitkit/imu"
)

// Sentinel errors of the body frame conversion.
var (
	// ErrUnknownSensor indicates a left/right name not present in the set.
	ErrUnknownSensor = errors.New("bodyframe: sensor name not in set")

	// ErrNotSensorFrame indicates input data that is not in the sensor frame.
	ErrNotSensorFrame = errors.New("bodyframe: input must be in the sensor frame")
)

// axisMap describes one body-frame axis as a signed sensor-frame axis.
type axisMap struct {
	src  string
	sign float64
}

// Left/right conversion tables (see package doc for the mirror rules).
var (
	leftFoot = map[string]axisMap{
		imu.AccPA: {imu.AccX, +1}, imu.AccML: {imu.AccY, +1}, imu.AccSI: {imu.AccZ, +1},
		imu.GyrPA: {imu.GyrX, +1}, imu.GyrML: {imu.GyrY, +1}, imu.GyrSI: {imu.GyrZ, +1},
	}
	rightFoot = map[string]axisMap{
		imu.AccPA: {imu.AccX, +1}, imu.AccML: {imu.AccY, -1}, imu.AccSI: {imu.AccZ, +1},
		imu.GyrPA: {imu.GyrX, -1}, imu.GyrML: {imu.GyrY, +1}, imu.GyrSI: {imu.GyrZ, -1},
	}
)

// ConvertLeft converts a single left-foot sensor-frame Signal into the
// body frame.
func ConvertLeft(s *imu.Signal) (*imu.Signal, error) { return convert(s, leftFoot) }

// ConvertRight converts a single right-foot sensor-frame Signal into
// the body frame.
func ConvertRight(s *imu.Signal) (*imu.Signal, error) { return convert(s, rightFoot) }

// ToBodyFrame converts the named left and right sensors of a SensorSet
// into the body frame. Sensors not listed are passed through
// unchanged. The input signals are not modified.
func ToBodyFrame(set imu.SensorSet, left, right []string) (imu.SensorSet, error) {
	out := make(imu.SensorSet, len(set))
	for name, s := range set {
		out[name] = s
	}

	for _, name := range left {
		s, ok := set[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownSensor, name)
		}
		conv, err := ConvertLeft(s)
		if err != nil {
			return nil, fmt.Errorf("sensor %q: %w", name, err)
		}
		out[name] = conv
	}
	for _, name := range right {
		s, ok := set[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownSensor, name)
		}
		conv, err := ConvertRight(s)
		if err != nil {
			return nil, fmt.Errorf("sensor %q: %w", name, err)
		}
		out[name] = conv
	}

	return out, nil
}

func convert(s *imu.Signal, table map[string]axisMap) (*imu.Signal, error) {
	if err := s.Validate(imu.FrameSensor, true, true); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotSensorFrame, err)
	}

	out, err := imu.NewSignal(imu.BodyFrameAxes, s.Len(), s.SamplingRate())
	if err != nil {
		return nil, err
	}
	for _, axis := range imu.BodyFrameAxes {
		m := table[axis]
		col, err := s.Col(m.src)
		if err != nil {
			return nil, err
		}
		if m.sign < 0 {
			for i := range col {
				col[i] = -col[i]
			}
		}
		if err := out.SetCol(axis, col); err != nil {
			return nil, err
		}
	}

	return out, nil
}
