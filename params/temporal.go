package params

import (
	"github.com/gaitkit/gaitkit/imu"
)

// TemporalParameters holds the temporal gait parameters of one stride,
// in seconds.
type TemporalParameters struct {
	ID         int
	StrideTime float64
	SwingTime  float64
	StanceTime float64
}

// Temporal calculates the temporal parameters of every stride in a
// min_vel event list. Strides without a pre_ic yield NaN stride and
// stance times.
func Temporal(events []imu.StrideEvents, rateHz float64) ([]TemporalParameters, error) {
	if rateHz <= 0 {
		return nil, imu.ErrBadSamplingRate
	}
	if err := imu.ValidateMinVelStrides(events); err != nil {
		return nil, err
	}

	out := make([]TemporalParameters, len(events))
	for i, ev := range events {
		stride := (ev.IC - ev.PreIC) / rateHz
		swing := (ev.IC - ev.TC) / rateHz
		out[i] = TemporalParameters{
			ID:         ev.ID,
			StrideTime: stride,
			SwingTime:  swing,
			StanceTime: stride - swing,
		}
	}

	return out, nil
}

// TemporalSet runs Temporal per sensor.
func TemporalSet(events imu.MultiSensorEvents, rateHz float64) (map[string][]TemporalParameters, error) {
	out := make(map[string][]TemporalParameters, len(events))
	for name, evs := range events {
		params, err := Temporal(evs, rateHz)
		if err != nil {
			return nil, err
		}
		out[name] = params
	}

	return out, nil
}
