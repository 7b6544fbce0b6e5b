package rotations

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/num/quat"
)

var (
	// ErrZeroQuaternion is returned when a zero-magnitude quaternion
	// cannot be normalized.
	ErrZeroQuaternion = errors.New("rotations: zero-magnitude quaternion")

	// ErrZeroVector is returned when a rotation is requested from or
	// towards a zero-length vector.
	ErrZeroVector = errors.New("rotations: zero-length vector")

	// ErrLengthMismatch is returned when a quaternion series does not
	// match the number of samples it is applied to.
	ErrLengthMismatch = errors.New("rotations: series length mismatch")

	// ErrNoVectorAxes is returned when a signal contains no complete
	// 3D acc or gyr axis triple to rotate.
	ErrNoVectorAxes = errors.New("rotations: signal has no complete 3D axis triple")
)

// Identity returns the identity rotation.
func Identity() quat.Number {
	return quat.Number{Real: 1}
}

// Normalize scales q to unit magnitude.
func Normalize(q quat.Number) (quat.Number, error) {
	n := quat.Abs(q)
	if n == 0 || math.IsNaN(n) {
		return quat.Number{}, ErrZeroQuaternion
	}

	return quat.Scale(1/n, q), nil
}

// Inverse returns the inverse rotation of a unit quaternion.
func Inverse(q quat.Number) quat.Number {
	return quat.Conj(q)
}

// Rotate applies the unit quaternion q to the vector v via q·v·q*.
func Rotate(q quat.Number, v [3]float64) [3]float64 {
	p := quat.Number{Imag: v[0], Jmag: v[1], Kmag: v[2]}
	r := quat.Mul(quat.Mul(q, p), quat.Conj(q))

	return [3]float64{r.Imag, r.Jmag, r.Kmag}
}

// FromAxisAngle builds the rotation of angle radians around axis.
func FromAxisAngle(axis [3]float64, angle float64) (quat.Number, error) {
	n := math.Sqrt(axis[0]*axis[0] + axis[1]*axis[1] + axis[2]*axis[2])
	if n == 0 {
		return quat.Number{}, ErrZeroVector
	}
	s := math.Sin(angle/2) / n

	return quat.Number{
		Real: math.Cos(angle / 2),
		Imag: axis[0] * s,
		Jmag: axis[1] * s,
		Kmag: axis[2] * s,
	}, nil
}

// ShortestRotation returns the minimal rotation that maps the direction
// of a onto the direction of b. For antiparallel inputs the rotation
// axis is ambiguous; an arbitrary axis orthogonal to a is used.
func ShortestRotation(a, b [3]float64) (quat.Number, error) {
	ua, err := unit(a)
	if err != nil {
		return quat.Number{}, err
	}
	ub, err := unit(b)
	if err != nil {
		return quat.Number{}, err
	}

	d := ua[0]*ub[0] + ua[1]*ub[1] + ua[2]*ub[2]
	if d < -1+1e-9 {
		// 180 degree turn around any axis orthogonal to a.
		axis := cross(ua, [3]float64{1, 0, 0})
		if axis[0]*axis[0]+axis[1]*axis[1]+axis[2]*axis[2] < 1e-12 {
			axis = cross(ua, [3]float64{0, 1, 0})
		}

		return FromAxisAngle(axis, math.Pi)
	}

	axis := cross(ua, ub)
	q := quat.Number{Real: 1 + d, Imag: axis[0], Jmag: axis[1], Kmag: axis[2]}

	return Normalize(q)
}

// GravityRotation returns the rotation that aligns the measured
// acceleration vector acc with gravity (0, 0, 1). Applying the result
// to a resting sensor's acc readout yields a purely vertical vector.
func GravityRotation(acc [3]float64) (quat.Number, error) {
	return ShortestRotation(acc, [3]float64{0, 0, 1})
}

// EulerZYX decomposes a unit quaternion into intrinsic z-y'-x'' Euler
// angles and returns [yaw, pitch, roll] in radians. Pitch is clamped
// to ±π/2 at the gimbal-lock singularity.
func EulerZYX(q quat.Number) [3]float64 {
	w, x, y, z := q.Real, q.Imag, q.Jmag, q.Kmag

	yaw := math.Atan2(2*(w*z+x*y), 1-2*(y*y+z*z))

	sinPitch := 2 * (w*y - z*x)
	var pitch float64
	if sinPitch >= 1 {
		pitch = math.Pi / 2
	} else if sinPitch <= -1 {
		pitch = -math.Pi / 2
	} else {
		pitch = math.Asin(sinPitch)
	}

	roll := math.Atan2(2*(w*x+y*z), 1-2*(x*x+y*y))

	return [3]float64{yaw, pitch, roll}
}

// TwistAngle returns the rotation angle of the unit quaternion q about
// the given axis, obtained by swing-twist decomposition. Unlike an
// Euler decomposition this stays well defined for angles up to ±π,
// which foot rotations during swing can approach.
func TwistAngle(q quat.Number, axis [3]float64) (float64, error) {
	u, err := unit(axis)
	if err != nil {
		return 0, err
	}
	proj := q.Imag*u[0] + q.Jmag*u[1] + q.Kmag*u[2]

	angle := 2 * math.Atan2(proj, q.Real)
	if angle > math.Pi {
		angle -= 2 * math.Pi
	} else if angle <= -math.Pi {
		angle += 2 * math.Pi
	}

	return angle, nil
}

// SagittalAngleCourse returns, for every orientation in qs, the
// rotation angle about the medio-lateral (y) axis relative to the
// first orientation, in radians. The angle is the twist of q0⁻¹·q
// about y; positive values mean a dorsal tilt of the sensor relative
// to its starting pose.
func SagittalAngleCourse(qs []quat.Number) []float64 {
	if len(qs) == 0 {
		return nil
	}
	inv0 := quat.Conj(qs[0])

	course := make([]float64, len(qs))
	for i, q := range qs {
		rel := quat.Mul(inv0, q)
		course[i], _ = TwistAngle(rel, [3]float64{0, 1, 0})
	}

	return course
}

func unit(v [3]float64) ([3]float64, error) {
	n := math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
	if n == 0 || math.IsNaN(n) {
		return [3]float64{}, ErrZeroVector
	}

	return [3]float64{v[0] / n, v[1] / n, v[2] / n}, nil
}

func cross(a, b [3]float64) [3]float64 {
	return [3]float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}
