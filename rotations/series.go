package rotations

import (
	"gonum.org/v1/gonum/num/quat"

	"github.com/gaitkit/gaitkit/imu"
)

// vectorTriples lists the 3D axis groups a rotation applies to. Both
// frames are covered so rotated body-frame data keeps its axis names.
var vectorTriples = [][3]string{
	{imu.AccX, imu.AccY, imu.AccZ},
	{imu.GyrX, imu.GyrY, imu.GyrZ},
	{imu.AccPA, imu.AccML, imu.AccSI},
	{imu.GyrPA, imu.GyrML, imu.GyrSI},
}

// RotateSignal rotates every complete acc and gyr axis triple of s by
// the single unit quaternion q and returns the rotated copy. Axes that
// are not part of a complete triple pass through unchanged.
func RotateSignal(s *imu.Signal, q quat.Number) (*imu.Signal, error) {
	triples, err := presentTriples(s)
	if err != nil {
		return nil, err
	}

	out := s.Clone()
	for i := 0; i < out.Len(); i++ {
		for _, t := range triples {
			v := Rotate(q, sampleVector(s, t, i))
			setSampleVector(out, t, i, v)
		}
	}

	return out, nil
}

// RotateSignalSeries rotates sample i of every complete acc and gyr
// axis triple of s by qs[i]. len(qs) must equal s.Len().
func RotateSignalSeries(s *imu.Signal, qs []quat.Number) (*imu.Signal, error) {
	if len(qs) != s.Len() {
		return nil, ErrLengthMismatch
	}
	triples, err := presentTriples(s)
	if err != nil {
		return nil, err
	}

	out := s.Clone()
	for i := 0; i < out.Len(); i++ {
		for _, t := range triples {
			v := Rotate(qs[i], sampleVector(s, t, i))
			setSampleVector(out, t, i, v)
		}
	}

	return out, nil
}

func presentTriples(s *imu.Signal) ([][3]string, error) {
	var triples [][3]string
	for _, t := range vectorTriples {
		if s.HasAxis(t[0]) && s.HasAxis(t[1]) && s.HasAxis(t[2]) {
			triples = append(triples, t)
		}
	}
	if len(triples) == 0 {
		return nil, ErrNoVectorAxes
	}

	return triples, nil
}

func sampleVector(s *imu.Signal, t [3]string, i int) [3]float64 {
	x, _ := s.At(i, t[0])
	y, _ := s.At(i, t[1])
	z, _ := s.At(i, t[2])

	return [3]float64{x, y, z}
}

func setSampleVector(s *imu.Signal, t [3]string, i int, v [3]float64) {
	_ = s.Set(i, t[0], v[0])
	_ = s.Set(i, t[1], v[1])
	_ = s.Set(i, t[2], v[2])
}
