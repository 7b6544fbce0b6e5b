package trajectory

import (
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/num/quat"

	"github.com/gaitkit/gaitkit/imu"
	"github.com/gaitkit/gaitkit/orient"
	"github.com/gaitkit/gaitkit/position"
	"github.com/gaitkit/gaitkit/rotations"
)

var (
	// ErrNoOriMethod is returned when no orientation method is set.
	ErrNoOriMethod = errors.New("trajectory: orientation method is nil")

	// ErrNoPosMethod is returned when no position method is set.
	ErrNoPosMethod = errors.New("trajectory: position method is nil")

	// ErrBadAlignWindow is returned for a non-positive alignment window.
	ErrBadAlignWindow = errors.New("trajectory: align window width must be > 0")

	// ErrStrideOutOfRange is returned when a stride reaches beyond the
	// signal it refers to.
	ErrStrideOutOfRange = errors.New("trajectory: stride out of signal range")
)

// DefaultAlignWindowWidth is the gravity alignment window used by
// NewStrideLevelTrajectory, in samples.
const DefaultAlignWindowWidth = 8

// StrideTrajectory is the reconstructed trajectory of one stride. All
// series hold stride length + 1 samples; element 0 is the initial
// state.
type StrideTrajectory struct {
	ID          int
	Orientation []quat.Number
	Velocity    [][3]float64
	Position    [][3]float64
}

// StrideLevelTrajectory applies an orientation and a position method
// to each stride of a min_vel stride list.
type StrideLevelTrajectory struct {
	// OriMethod estimates the per-stride orientation series.
	OriMethod orient.Method
	// PosMethod estimates velocity and position from the rotated
	// stride data.
	PosMethod position.Method
	// AlignWindowWidth is the window (in samples, centered on the
	// stride start) used for the initial gravity alignment.
	AlignWindowWidth int
}

// NewStrideLevelTrajectory returns a wrapper with gyroscope
// integration, forward-backward position integration and the default
// alignment window.
func NewStrideLevelTrajectory() *StrideLevelTrajectory {
	return &StrideLevelTrajectory{
		OriMethod:        orient.NewGyroIntegration(),
		PosMethod:        position.NewForwardBackwardIntegration(),
		AlignWindowWidth: DefaultAlignWindowWidth,
	}
}

// Estimate reconstructs the trajectory of every stride in events on a
// single sensor signal. Strides are processed concurrently; the result
// keeps the order of events.
func (t *StrideLevelTrajectory) Estimate(s *imu.Signal, events []imu.StrideEvents) ([]StrideTrajectory, error) {
	if err := t.validate(); err != nil {
		return nil, err
	}
	if err := imu.ValidateMinVelStrides(events); err != nil {
		return nil, err
	}
	for _, ev := range events {
		if ev.End > s.Len() {
			return nil, fmt.Errorf("%w: stride %d ends at %d, signal has %d samples", ErrStrideOutOfRange, ev.ID, ev.End, s.Len())
		}
	}

	out := make([]StrideTrajectory, len(events))
	var g errgroup.Group
	for i, ev := range events {
		i, ev := i, ev
		g.Go(func() error {
			st, err := t.estimateStride(s, ev)
			if err != nil {
				return fmt.Errorf("stride %d: %w", ev.ID, err)
			}
			out[i] = st

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// EstimateSet runs Estimate per sensor. Sensors without an entry in
// events are skipped.
func (t *StrideLevelTrajectory) EstimateSet(set imu.SensorSet, events imu.MultiSensorEvents) (map[string][]StrideTrajectory, error) {
	out := make(map[string][]StrideTrajectory, len(events))
	for _, name := range set.Names() {
		evs, ok := events[name]
		if !ok {
			continue
		}
		s, err := set.Get(name)
		if err != nil {
			return nil, err
		}
		trajs, err := t.Estimate(s, evs)
		if err != nil {
			return nil, fmt.Errorf("sensor %s: %w", name, err)
		}
		out[name] = trajs
	}

	return out, nil
}

func (t *StrideLevelTrajectory) estimateStride(s *imu.Signal, ev imu.StrideEvents) (StrideTrajectory, error) {
	stride, err := s.Slice(ev.Start, ev.End)
	if err != nil {
		return StrideTrajectory{}, err
	}

	initial, err := orient.InitialOrientation(s, ev.Start, t.AlignWindowWidth)
	if err != nil {
		return StrideTrajectory{}, err
	}
	ori, err := t.OriMethod.Estimate(stride, initial)
	if err != nil {
		return StrideTrajectory{}, err
	}

	world, err := rotations.RotateSignalSeries(stride, ori[:len(ori)-1])
	if err != nil {
		return StrideTrajectory{}, err
	}
	vel, pos, err := t.PosMethod.Estimate(world)
	if err != nil {
		return StrideTrajectory{}, err
	}

	return StrideTrajectory{ID: ev.ID, Orientation: ori, Velocity: vel, Position: pos}, nil
}

func (t *StrideLevelTrajectory) validate() error {
	if t.OriMethod == nil {
		return ErrNoOriMethod
	}
	if t.PosMethod == nil {
		return ErrNoPosMethod
	}
	if t.AlignWindowWidth <= 0 {
		return ErrBadAlignWindow
	}

	return nil
}
