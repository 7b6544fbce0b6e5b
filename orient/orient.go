package orient

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/num/quat"

	"github.com/gaitkit/gaitkit/imu"
	"github.com/gaitkit/gaitkit/rotations"
)

var (
	// ErrMissingGyr is returned when a signal lacks a complete 3D
	// gyroscope axis triple.
	ErrMissingGyr = errors.New("orient: signal has no complete gyroscope triple")

	// ErrMissingAcc is returned when a signal lacks a complete 3D
	// accelerometer axis triple.
	ErrMissingAcc = errors.New("orient: signal has no complete accelerometer triple")

	// ErrBadBeta is returned for a negative Madgwick gain.
	ErrBadBeta = errors.New("orient: beta must be >= 0")
)

// DefaultBeta is the Madgwick filter gain used by NewMadgwick.
const DefaultBeta = 0.2

// Method estimates a sensor-to-world orientation series. The result
// holds s.Len()+1 unit quaternions, the initial orientation first.
type Method interface {
	Estimate(s *imu.Signal, initial quat.Number) ([]quat.Number, error)
}

// GyroIntegration estimates orientation by pure quaternion integration
// of the gyroscope rate.
type GyroIntegration struct{}

// NewGyroIntegration returns a gyroscope integration estimator.
func NewGyroIntegration() *GyroIntegration { return &GyroIntegration{} }

// Estimate implements Method.
func (g *GyroIntegration) Estimate(s *imu.Signal, initial quat.Number) ([]quat.Number, error) {
	gyr, err := gyrTriple(s)
	if err != nil {
		return nil, err
	}
	dt := 1 / s.SamplingRate()

	out := make([]quat.Number, s.Len()+1)
	out[0] = initial
	for i := 0; i < s.Len(); i++ {
		out[i+1] = integrateRate(out[i], sampleVector(s, gyr, i), dt)
	}

	return out, nil
}

// Madgwick estimates orientation with the Madgwick AHRS filter:
// gyroscope integration corrected towards gravity as measured by the
// accelerometer.
type Madgwick struct {
	// Beta is the gradient-descent gain. Higher values track the
	// accelerometer faster at the cost of more motion artifacts.
	Beta float64
}

// NewMadgwick returns a Madgwick estimator with the default gain.
func NewMadgwick() *Madgwick {
	return &Madgwick{Beta: DefaultBeta}
}

// Estimate implements Method.
func (m *Madgwick) Estimate(s *imu.Signal, initial quat.Number) ([]quat.Number, error) {
	if m.Beta < 0 {
		return nil, ErrBadBeta
	}
	gyr, err := gyrTriple(s)
	if err != nil {
		return nil, err
	}
	acc, err := accTriple(s)
	if err != nil {
		return nil, err
	}
	dt := 1 / s.SamplingRate()

	out := make([]quat.Number, s.Len()+1)
	out[0] = initial
	for i := 0; i < s.Len(); i++ {
		out[i+1] = m.update(out[i], sampleVector(s, gyr, i), sampleVector(s, acc, i), dt)
	}

	return out, nil
}

// update performs one Madgwick filter step. q maps sensor to world, w
// is the body rate in deg/s and a the measured acceleration.
func (m *Madgwick) update(q quat.Number, w, a [3]float64, dt float64) quat.Number {
	const degToRad = math.Pi / 180
	rate := quat.Number{Imag: w[0] * degToRad, Jmag: w[1] * degToRad, Kmag: w[2] * degToRad}
	qDot := quat.Scale(0.5, quat.Mul(q, rate))

	if an := math.Sqrt(a[0]*a[0] + a[1]*a[1] + a[2]*a[2]); an > 0 {
		ax, ay, az := a[0]/an, a[1]/an, a[2]/an
		q0, q1, q2, q3 := q.Real, q.Imag, q.Jmag, q.Kmag

		// Objective: gravity rotated into the sensor frame minus the
		// measured direction.
		f1 := 2*(q1*q3-q0*q2) - ax
		f2 := 2*(q0*q1+q2*q3) - ay
		f3 := 2*(0.5-q1*q1-q2*q2) - az

		// Jacobian transpose times f.
		s0 := -2*q2*f1 + 2*q1*f2
		s1 := 2*q3*f1 + 2*q0*f2 - 4*q1*f3
		s2 := -2*q0*f1 + 2*q3*f2 - 4*q2*f3
		s3 := 2*q1*f1 + 2*q2*f2

		if sn := math.Sqrt(s0*s0 + s1*s1 + s2*s2 + s3*s3); sn > 1e-12 {
			qDot = quat.Sub(qDot, quat.Scale(m.Beta/sn, quat.Number{Real: s0, Imag: s1, Jmag: s2, Kmag: s3}))
		}
	}

	q = quat.Add(q, quat.Scale(dt, qDot))
	n, err := rotations.Normalize(q)
	if err != nil {
		return rotations.Identity()
	}

	return n
}

// integrateRate advances q by one sample of body rate w (deg/s).
func integrateRate(q quat.Number, w [3]float64, dt float64) quat.Number {
	const degToRad = math.Pi / 180
	wn := math.Sqrt(w[0]*w[0] + w[1]*w[1] + w[2]*w[2])
	if wn == 0 {
		return q
	}
	step, err := rotations.FromAxisAngle(w, wn*degToRad*dt)
	if err != nil {
		return q
	}

	return quat.Mul(q, step)
}

func gyrTriple(s *imu.Signal) ([3]string, error) {
	for _, t := range [][3]string{
		{imu.GyrX, imu.GyrY, imu.GyrZ},
		{imu.GyrPA, imu.GyrML, imu.GyrSI},
	} {
		if s.HasAxis(t[0]) && s.HasAxis(t[1]) && s.HasAxis(t[2]) {
			return t, nil
		}
	}

	return [3]string{}, ErrMissingGyr
}

func accTriple(s *imu.Signal) ([3]string, error) {
	for _, t := range [][3]string{
		{imu.AccX, imu.AccY, imu.AccZ},
		{imu.AccPA, imu.AccML, imu.AccSI},
	} {
		if s.HasAxis(t[0]) && s.HasAxis(t[1]) && s.HasAxis(t[2]) {
			return t, nil
		}
	}

	return [3]string{}, ErrMissingAcc
}

func sampleVector(s *imu.Signal, t [3]string, i int) [3]float64 {
	x, _ := s.At(i, t[0])
	y, _ := s.At(i, t[1])
	z, _ := s.At(i, t[2])

	return [3]float64{x, y, z}
}
