package orient

import (
	"errors"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/num/quat"

	"github.com/gaitkit/gaitkit/imu"
	"github.com/gaitkit/gaitkit/rotations"
)

// ErrBadAlignWindow is returned when the gravity alignment window
// around the requested sample contains no data.
var ErrBadAlignWindow = errors.New("orient: empty gravity alignment window")

// InitialOrientation estimates the orientation at sample start by
// aligning the median acceleration over a window of windowWidth
// samples centered on start with gravity. The window is clipped at the
// signal borders. The sample at start is assumed to lie in a resting
// phase, e.g. the min_vel instant of a stride.
func InitialOrientation(s *imu.Signal, start, windowWidth int) (quat.Number, error) {
	acc, err := accTriple(s)
	if err != nil {
		return quat.Number{}, err
	}

	half := windowWidth / 2
	lo := start - half
	if lo < 0 {
		lo = 0
	}
	hi := start + half
	if hi > s.Len() {
		hi = s.Len()
	}
	if lo >= hi {
		return quat.Number{}, ErrBadAlignWindow
	}

	var med [3]float64
	for k, axis := range acc {
		col, err := s.Col(axis)
		if err != nil {
			return quat.Number{}, err
		}
		med[k], err = stats.Median(col[lo:hi])
		if err != nil {
			return quat.Number{}, err
		}
	}

	q, err := rotations.GravityRotation(med)
	if err != nil {
		return quat.Number{}, err
	}

	return q, nil
}
