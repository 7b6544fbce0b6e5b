package imu

import "errors"

// Sentinel errors for the imu data model. All gaitkit packages return
// these (possibly wrapped with fmt.Errorf("...: %w", ...)) and tests
// match them via errors.Is.
var (
	// ErrBadSamplingRate indicates a sampling rate <= 0.
	ErrBadSamplingRate = errors.New("imu: sampling rate must be positive")

	// ErrNoAxes indicates a Signal was constructed without any axes.
	ErrNoAxes = errors.New("imu: signal needs at least one axis")

	// ErrDuplicateAxis indicates the same axis name was given twice.
	ErrDuplicateAxis = errors.New("imu: duplicate axis name")

	// ErrUnknownAxis indicates an axis name not present in the Signal.
	ErrUnknownAxis = errors.New("imu: unknown axis")

	// ErrLengthMismatch indicates column data with inconsistent lengths.
	ErrLengthMismatch = errors.New("imu: column length mismatch")

	// ErrOutOfRange indicates a sample index or slice outside [0, Len()).
	ErrOutOfRange = errors.New("imu: sample index out of range")

	// ErrWrongFrame indicates a Signal that does not carry the axis set
	// required for the expected frame.
	ErrWrongFrame = errors.New("imu: signal does not match expected frame")

	// ErrNoSensors indicates an empty SensorSet.
	ErrNoSensors = errors.New("imu: sensor set is empty")

	// ErrUnknownSensor indicates a sensor name not present in a SensorSet.
	ErrUnknownSensor = errors.New("imu: unknown sensor")

	// ErrBadStrideBounds indicates a stride with Start >= End or a
	// negative bound.
	ErrBadStrideBounds = errors.New("imu: stride bounds invalid")

	// ErrNotMinVelStrides indicates a stride-event list violating the
	// min-vel convention (Start must equal MinVel, events must lie
	// inside the stride, only PreIC may be NaN).
	ErrNotMinVelStrides = errors.New("imu: stride list is not a valid min-vel stride list")
)
