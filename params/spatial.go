package params

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/num/quat"

	"github.com/gaitkit/gaitkit/imu"
	"github.com/gaitkit/gaitkit/rotations"
	"github.com/gaitkit/gaitkit/trajectory"
)

var (
	// ErrTrajectoryMismatch is returned when the event list and the
	// trajectory list do not describe the same strides.
	ErrTrajectoryMismatch = errors.New("params: event list and trajectories do not match")

	// ErrShortTrajectory is returned when a trajectory series does not
	// cover its stride.
	ErrShortTrajectory = errors.New("params: trajectory shorter than its stride")
)

// SpatialParameters holds the spatial gait parameters of one stride.
// Lengths are in m, angles in degrees.
type SpatialParameters struct {
	ID           int
	StrideLength float64
	GaitVelocity float64
	ICAngle      float64
	TCAngle      float64
	ICClearance  float64
	TCClearance  float64
	TurningAngle float64
	ArcLength    float64
}

// Spatial calculates the spatial parameters of every stride. events
// and trajs must describe the same strides in the same order, as
// produced by the events and trajectory packages.
func Spatial(events []imu.StrideEvents, trajs []trajectory.StrideTrajectory, rateHz float64) ([]SpatialParameters, error) {
	if rateHz <= 0 {
		return nil, imu.ErrBadSamplingRate
	}
	if err := imu.ValidateMinVelStrides(events); err != nil {
		return nil, err
	}
	if len(events) != len(trajs) {
		return nil, fmt.Errorf("%w: %d strides vs %d trajectories", ErrTrajectoryMismatch, len(events), len(trajs))
	}

	out := make([]SpatialParameters, len(events))
	for i, ev := range events {
		tr := trajs[i]
		if tr.ID != ev.ID {
			return nil, fmt.Errorf("%w: stride %d vs trajectory %d at index %d", ErrTrajectoryMismatch, ev.ID, tr.ID, i)
		}
		want := ev.End - ev.Start + 1
		if len(tr.Position) < want || len(tr.Orientation) < want {
			return nil, fmt.Errorf("%w: stride %d", ErrShortTrajectory, ev.ID)
		}

		out[i] = singleStride(ev, tr, rateHz)
	}

	return out, nil
}

// SpatialSet runs Spatial per sensor.
func SpatialSet(events imu.MultiSensorEvents, trajs map[string][]trajectory.StrideTrajectory, rateHz float64) (map[string][]SpatialParameters, error) {
	out := make(map[string][]SpatialParameters, len(events))
	for name, evs := range events {
		tr, ok := trajs[name]
		if !ok {
			return nil, fmt.Errorf("%w: no trajectories for sensor %q", ErrTrajectoryMismatch, name)
		}
		params, err := Spatial(evs, tr, rateHz)
		if err != nil {
			return nil, fmt.Errorf("sensor %s: %w", name, err)
		}
		out[name] = params
	}

	return out, nil
}

func singleStride(ev imu.StrideEvents, tr trajectory.StrideTrajectory, rateHz float64) SpatialParameters {
	pos := tr.Position
	last := pos[len(pos)-1]

	length := math.Hypot(last[0], last[1])
	strideTime := (ev.IC - ev.PreIC) / rateHz

	course := rotations.SagittalAngleCourse(tr.Orientation)
	icRel := int(ev.IC) - ev.Start
	tcRel := int(ev.TC) - ev.Start

	return SpatialParameters{
		ID:           ev.ID,
		StrideLength: length,
		GaitVelocity: length / strideTime,
		ICAngle:      -deg(course[icRel]),
		TCAngle:      -deg(course[tcRel]),
		ICClearance:  maxClearance(pos, course, icRel),
		TCClearance:  maxClearance(pos, course, tcRel),
		TurningAngle: turningAngle(tr.Orientation),
		ArcLength:    arcLength(pos),
	}
}

// maxClearance estimates the maximal ground clearance over the stride.
// The lever arm between the sensor and the relevant foot point is
// calibrated at the contact event, where that point touches the
// ground (Kanzler et al. 2015).
func maxClearance(pos [][3]float64, course []float64, eventRel int) float64 {
	sinAtEvent := math.Sin(course[eventRel])
	if sinAtEvent == 0 {
		return math.NaN()
	}
	lever := pos[eventRel][2] / sinAtEvent

	best := math.Inf(-1)
	for i := range pos {
		sgn := sign(course[i])
		c := -pos[i][2] + sgn*lever*math.Sin(course[i])
		if c > best {
			best = c
		}
	}

	return best
}

// turningAngle is the heading change between stride start and end.
func turningAngle(ori []quat.Number) float64 {
	rel := quat.Mul(ori[len(ori)-1], quat.Conj(ori[0]))
	angle, err := rotations.TwistAngle(rel, [3]float64{0, 0, 1})
	if err != nil {
		return math.NaN()
	}

	return deg(angle)
}

func arcLength(pos [][3]float64) float64 {
	sum := 0.0
	for i := 0; i+1 < len(pos); i++ {
		dx := pos[i+1][0] - pos[i][0]
		dy := pos[i+1][1] - pos[i][1]
		dz := pos[i+1][2] - pos[i][2]
		sum += math.Sqrt(dx*dx + dy*dy + dz*dz)
	}

	return sum
}

func deg(rad float64) float64 { return rad * 180 / math.Pi }

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}

	return 0
}
