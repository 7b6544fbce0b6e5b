package imu

// Sensor frame axis names, as produced by the physical IMU.
// Acceleration in m/s², angular rate in deg/s.
const (
	AccX = "acc_x"
	AccY = "acc_y"
	AccZ = "acc_z"
	GyrX = "gyr_x"
	GyrY = "gyr_y"
	GyrZ = "gyr_z"
)

// Body frame axis names: posterior-anterior (PA), medio-lateral (ML)
// and superior-inferior (SI) anatomical directions of the foot.
const (
	AccPA = "acc_pa"
	AccML = "acc_ml"
	AccSI = "acc_si"
	GyrPA = "gyr_pa"
	GyrML = "gyr_ml"
	GyrSI = "gyr_si"
)

// Axis groups. Callers must not mutate these slices.
var (
	SensorFrameAcc  = []string{AccX, AccY, AccZ}
	SensorFrameGyr  = []string{GyrX, GyrY, GyrZ}
	SensorFrameAxes = []string{AccX, AccY, AccZ, GyrX, GyrY, GyrZ}

	BodyFrameAcc  = []string{AccPA, AccML, AccSI}
	BodyFrameGyr  = []string{GyrPA, GyrML, GyrSI}
	BodyFrameAxes = []string{AccPA, AccML, AccSI, GyrPA, GyrML, GyrSI}
)

// Frame identifies the axis convention a Signal is expected to follow.
type Frame int

const (
	// FrameAny accepts either the sensor or the body frame.
	FrameAny Frame = iota

	// FrameSensor requires the acc_x..gyr_z axis set.
	FrameSensor

	// FrameBody requires the acc_pa..gyr_si axis set.
	FrameBody
)

// String returns a human-readable frame name.
func (f Frame) String() string {
	switch f {
	case FrameSensor:
		return "sensor"
	case FrameBody:
		return "body"
	default:
		return "any"
	}
}

// hasAxes reports whether want is a subset of have.
func hasAxes(have map[string]int, want []string) bool {
	for _, a := range want {
		if _, ok := have[a]; !ok {
			return false
		}
	}

	return true
}

// frameAxes returns the acc/gyr axis groups for a concrete frame.
func frameAxes(f Frame) (acc, gyr []string) {
	if f == FrameBody {
		return BodyFrameAcc, BodyFrameGyr
	}

	return SensorFrameAcc, SensorFrameGyr
}
