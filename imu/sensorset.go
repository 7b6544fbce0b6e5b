package imu

import (
	"fmt"
	"sort"
)

// SensorSet is a multi-sensor recording: one Signal per sensor name
// (for gait typically "left_sensor" and "right_sensor").
//
// A SensorSet is a plain map; use Names for deterministic iteration.
type SensorSet map[string]*Signal

// Names returns the sensor names in sorted order.
func (set SensorSet) Names() []string {
	names := make([]string, 0, len(set))
	for n := range set {
		names = append(names, n)
	}
	sort.Strings(names)

	return names
}

// Get returns the Signal of one sensor.
func (set SensorSet) Get(name string) (*Signal, error) {
	s, ok := set[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSensor, name)
	}

	return s, nil
}

// Validate checks every contained Signal against the expected frame.
// An empty set is invalid.
func (set SensorSet) Validate(frame Frame, checkAcc, checkGyr bool) error {
	if len(set) == 0 {
		return ErrNoSensors
	}
	for _, name := range set.Names() {
		if err := set[name].Validate(frame, checkAcc, checkGyr); err != nil {
			return fmt.Errorf("sensor %q: %w", name, err)
		}
	}

	return nil
}
