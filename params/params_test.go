package params_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/num/quat"

	"github.com/gaitkit/gaitkit/imu"
	"github.com/gaitkit/gaitkit/params"
	"github.com/gaitkit/gaitkit/rotations"
	"github.com/gaitkit/gaitkit/trajectory"
)

func TestTemporal_MinVelEvents(t *testing.T) {
	events := []imu.StrideEvents{
		{ID: 0, Start: 100, End: 200, MinVel: 100, PreIC: 50, TC: 110, IC: 150},
	}

	out, err := params.Temporal(events, 100)
	require.NoError(t, err)
	require.Len(t, out, 1)

	assert.Equal(t, 0, out[0].ID)
	assert.InDelta(t, 1.0, out[0].StrideTime, 1e-12, "ic - pre_ic")
	assert.InDelta(t, 0.4, out[0].SwingTime, 1e-12, "ic - tc")
	assert.InDelta(t, 0.6, out[0].StanceTime, 1e-12, "stride - swing")
}

func TestTemporal_MissingPreIC(t *testing.T) {
	events := []imu.StrideEvents{
		{ID: 3, Start: 100, End: 200, MinVel: 100, PreIC: math.NaN(), TC: 110, IC: 150},
	}

	out, err := params.Temporal(events, 100)
	require.NoError(t, err)
	require.Len(t, out, 1)

	assert.True(t, math.IsNaN(out[0].StrideTime))
	assert.True(t, math.IsNaN(out[0].StanceTime))
	assert.InDelta(t, 0.4, out[0].SwingTime, 1e-12, "swing time needs no pre_ic")
}

func TestTemporal_Validation(t *testing.T) {
	events := []imu.StrideEvents{
		{ID: 0, Start: 100, End: 200, MinVel: 100, PreIC: 50, TC: 110, IC: 150},
	}

	_, err := params.Temporal(events, 0)
	assert.ErrorIs(t, err, imu.ErrBadSamplingRate)

	bad := events
	bad[0].MinVel = 101
	_, err = params.Temporal(bad, 100)
	assert.ErrorIs(t, err, imu.ErrNotMinVelStrides)
}

func TestTemporalSet(t *testing.T) {
	events := imu.MultiSensorEvents{
		"left_sensor": {
			{ID: 0, Start: 0, End: 100, MinVel: 0, PreIC: math.NaN(), TC: 10, IC: 50},
			{ID: 1, Start: 100, End: 200, MinVel: 100, PreIC: 50, TC: 110, IC: 150},
		},
	}

	out, err := params.TemporalSet(events, 100)
	require.NoError(t, err)
	require.Len(t, out["left_sensor"], 2)
	assert.InDelta(t, 1.0, out["left_sensor"][1].StrideTime, 1e-12)
}

// walkingStride builds a 10 sample stride whose sensor moves 1 m along
// x at 0.05 m height while pitching forward about the ml axis by
// 0.1 rad per sample.
func walkingStride(t *testing.T, id int) trajectory.StrideTrajectory {
	t.Helper()
	ori := make([]quat.Number, 11)
	pos := make([][3]float64, 11)
	for i := 0; i <= 10; i++ {
		q, err := rotations.FromAxisAngle([3]float64{0, 1, 0}, 0.1*float64(i))
		require.NoError(t, err)
		ori[i] = q
		pos[i] = [3]float64{0.1 * float64(i), 0, 0.05}
	}

	return trajectory.StrideTrajectory{ID: id, Orientation: ori, Position: pos}
}

func walkingEvents(id int) imu.StrideEvents {
	return imu.StrideEvents{ID: id, Start: 10, End: 20, MinVel: 10, PreIC: 5, TC: 12, IC: 17}
}

func TestSpatial_StrideGeometry(t *testing.T) {
	events := []imu.StrideEvents{walkingEvents(0)}
	trajs := []trajectory.StrideTrajectory{walkingStride(t, 0)}

	out, err := params.Spatial(events, trajs, 100)
	require.NoError(t, err)
	require.Len(t, out, 1)
	p := out[0]

	assert.InDelta(t, 1.0, p.StrideLength, 1e-9, "ground plane displacement")
	// stride time = (17 - 5) / 100 = 0.12 s
	assert.InDelta(t, 1.0/0.12, p.GaitVelocity, 1e-9)
	assert.InDelta(t, 1.0, p.ArcLength, 1e-9, "straight level path")
	assert.InDelta(t, 0, p.TurningAngle, 1e-9, "pure sagittal movement does not turn")

	// Sagittal angle at ic (relative sample 7) is 0.7 rad, at tc 0.2 rad.
	assert.InDelta(t, -0.7*180/math.Pi, p.ICAngle, 1e-9)
	assert.InDelta(t, -0.2*180/math.Pi, p.TCAngle, 1e-9)

	// Lever arm at ic: 0.05 / sin(0.7). Maximal clearance at the last
	// sample where the sagittal angle is largest.
	lIC := 0.05 / math.Sin(0.7)
	assert.InDelta(t, -0.05+lIC*math.Sin(1.0), p.ICClearance, 1e-9)
	lTC := 0.05 / math.Sin(0.2)
	assert.InDelta(t, -0.05+lTC*math.Sin(1.0), p.TCClearance, 1e-9)
}

func TestSpatial_TurningStride(t *testing.T) {
	ori := make([]quat.Number, 11)
	pos := make([][3]float64, 11)
	for i := 0; i <= 10; i++ {
		q, err := rotations.FromAxisAngle([3]float64{0, 0, 1}, 0.02*float64(i))
		require.NoError(t, err)
		ori[i] = q
		pos[i] = [3]float64{0.1 * float64(i), 0, 0}
	}
	events := []imu.StrideEvents{walkingEvents(0)}
	trajs := []trajectory.StrideTrajectory{{ID: 0, Orientation: ori, Position: pos}}

	out, err := params.Spatial(events, trajs, 100)
	require.NoError(t, err)
	assert.InDelta(t, 0.2*180/math.Pi, out[0].TurningAngle, 1e-9, "heading change over the stride")
	assert.True(t, math.IsNaN(out[0].ICClearance), "flat sagittal angle leaves the lever arm undefined")
}

func TestSpatial_MismatchedInputs(t *testing.T) {
	events := []imu.StrideEvents{walkingEvents(0)}

	_, err := params.Spatial(events, nil, 100)
	assert.ErrorIs(t, err, params.ErrTrajectoryMismatch, "length mismatch")

	trajs := []trajectory.StrideTrajectory{walkingStride(t, 5)}
	_, err = params.Spatial(events, trajs, 100)
	assert.ErrorIs(t, err, params.ErrTrajectoryMismatch, "id mismatch")

	short := walkingStride(t, 0)
	short.Position = short.Position[:5]
	_, err = params.Spatial(events, []trajectory.StrideTrajectory{short}, 100)
	assert.ErrorIs(t, err, params.ErrShortTrajectory)
}

func TestSpatialSet(t *testing.T) {
	events := imu.MultiSensorEvents{"left_sensor": {walkingEvents(0)}}
	trajs := map[string][]trajectory.StrideTrajectory{
		"left_sensor": {walkingStride(t, 0)},
	}

	out, err := params.SpatialSet(events, trajs, 100)
	require.NoError(t, err)
	require.Len(t, out["left_sensor"], 1)
	assert.InDelta(t, 1.0, out["left_sensor"][0].StrideLength, 1e-9)

	_, err = params.SpatialSet(events, map[string][]trajectory.StrideTrajectory{}, 100)
	assert.ErrorIs(t, err, params.ErrTrajectoryMismatch)
}
