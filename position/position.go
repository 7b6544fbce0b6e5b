package position

import (
	"errors"
	"math"

	"github.com/gaitkit/gaitkit/imu"
)

var (
	// ErrMissingAcc is returned when a signal lacks a complete 3D
	// accelerometer axis triple.
	ErrMissingAcc = errors.New("position: signal has no complete accelerometer triple")

	// ErrBadTurningPoint is returned when the sigmoid center lies
	// outside [0, 1].
	ErrBadTurningPoint = errors.New("position: turning point must be in [0, 1]")

	// ErrBadSteepness is returned for a non-positive sigmoid steepness.
	ErrBadSteepness = errors.New("position: steepness must be > 0")
)

// Defaults for ForwardBackwardIntegration.
const (
	DefaultTurningPoint = 0.5
	DefaultSteepness    = 0.08
	GravityMS2          = 9.81
)

// Method estimates velocity and position over one stride of
// world-frame data. Both outputs hold s.Len()+1 samples starting at
// zero.
type Method interface {
	Estimate(s *imu.Signal) (velocity, position [][3]float64, err error)
}

// ForwardBackwardIntegration implements Method with a combined
// forward/backward velocity integration anchored at the zero-velocity
// phases at both stride ends.
type ForwardBackwardIntegration struct {
	// TurningPoint is the relative stride position where the blend
	// switches from the forward to the backward pass.
	TurningPoint float64
	// Steepness controls how sharp that switch is.
	Steepness float64
	// Gravity is subtracted from the world-frame acceleration.
	Gravity [3]float64
	// LevelWalking removes the linear trend of the vertical position,
	// forcing each stride to end on its starting ground level.
	LevelWalking bool
}

// NewForwardBackwardIntegration returns an estimator with the default
// sigmoid, standard gravity and the level-walking assumption enabled.
func NewForwardBackwardIntegration() *ForwardBackwardIntegration {
	return &ForwardBackwardIntegration{
		TurningPoint: DefaultTurningPoint,
		Steepness:    DefaultSteepness,
		Gravity:      [3]float64{0, 0, GravityMS2},
		LevelWalking: true,
	}
}

// Estimate implements Method. s must hold world-frame data with a
// complete accelerometer triple.
func (f *ForwardBackwardIntegration) Estimate(s *imu.Signal) ([][3]float64, [][3]float64, error) {
	if f.TurningPoint < 0 || f.TurningPoint > 1 {
		return nil, nil, ErrBadTurningPoint
	}
	if f.Steepness <= 0 {
		return nil, nil, ErrBadSteepness
	}
	acc, err := accColumns(s)
	if err != nil {
		return nil, nil, err
	}

	n := s.Len()
	if n == 0 {
		return [][3]float64{{}}, [][3]float64{{}}, nil
	}
	dt := 1 / s.SamplingRate()
	for i := 0; i < n; i++ {
		for k := 0; k < 3; k++ {
			acc[k][i] -= f.Gravity[k]
		}
	}

	velocity := make([][3]float64, n+1)
	for k := 0; k < 3; k++ {
		fwd := make([]float64, n+1)
		for i := 0; i < n; i++ {
			fwd[i+1] = fwd[i] + acc[k][i]*dt
		}
		bwd := make([]float64, n+1)
		for i := n - 1; i >= 0; i-- {
			bwd[i] = bwd[i+1] - acc[k][i]*dt
		}
		for i := 0; i <= n; i++ {
			w := f.weight(float64(i) / float64(n))
			velocity[i][k] = (1-w)*fwd[i] + w*bwd[i]
		}
	}

	position := make([][3]float64, n+1)
	for i := 0; i < n; i++ {
		for k := 0; k < 3; k++ {
			position[i+1][k] = position[i][k] + dt*(velocity[i][k]+velocity[i+1][k])/2
		}
	}
	if f.LevelWalking {
		drift := position[n][2]
		for i := 0; i <= n; i++ {
			position[i][2] -= drift * float64(i) / float64(n)
		}
	}

	return velocity, position, nil
}

func (f *ForwardBackwardIntegration) weight(x float64) float64 {
	return 1 / (1 + math.Exp(-(x-f.TurningPoint)/f.Steepness))
}

func accColumns(s *imu.Signal) ([3][]float64, error) {
	var cols [3][]float64
	for _, t := range [][3]string{
		{imu.AccX, imu.AccY, imu.AccZ},
		{imu.AccPA, imu.AccML, imu.AccSI},
	} {
		if s.HasAxis(t[0]) && s.HasAxis(t[1]) && s.HasAxis(t[2]) {
			for k, axis := range t {
				col, err := s.Col(axis)
				if err != nil {
					return cols, err
				}
				cols[k] = col
			}

			return cols, nil
		}
	}

	return cols, ErrMissingAcc
}
