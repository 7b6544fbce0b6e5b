package events_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaitkit/gaitkit/events"
	"github.com/gaitkit/gaitkit/imu"
)

const strideLen = 100

// strideShape returns one synthetic stride of gyr_ml data with known
// event locations: a quiet stance phase, a toe-off zero crossing at
// sample 30, the swing peak at sample 50 and a sharp negative slope
// afterwards.
func strideShape() []float64 {
	shape := make([]float64, strideLen)
	for j := 0; j < 30; j++ {
		shape[j] = -5
	}
	for j := 30; j <= 50; j++ {
		shape[j] = -5 + float64(j-30)*5.25
	}
	drop := []float64{60, 20, -20, -60, -80}
	copy(shape[51:], drop)
	for j := 56; j < strideLen; j++ {
		shape[j] = -80 + float64(j-55)*75/44
	}

	return shape
}

// gaitSignal tiles n synthetic strides into a body-frame signal at
// 100 Hz. acc_pa dips at sample 54 of each stride to mark the initial
// contact.
func gaitSignal(t *testing.T, n int) *imu.Signal {
	t.Helper()
	shape := strideShape()
	total := n * strideLen

	gyrML := make([]float64, total)
	accPA := make([]float64, total)
	for k := 0; k < n; k++ {
		copy(gyrML[k*strideLen:], shape)
		for j := 0; j < strideLen; j++ {
			accPA[k*strideLen+j] = 5
		}
		accPA[k*strideLen+54] = -10
	}

	zeros := make([]float64, total)
	si := make([]float64, total)
	for i := range si {
		si[i] = 9.81
	}
	s, err := imu.SignalFromColumns(
		[]string{imu.AccPA, imu.AccML, imu.AccSI, imu.GyrPA, imu.GyrML, imu.GyrSI},
		[][]float64{accPA, zeros, si, zeros, gyrML, zeros},
		100,
	)
	require.NoError(t, err)

	return s
}

func tiledStrides(n int) []imu.Stride {
	out := make([]imu.Stride, n)
	for k := 0; k < n; k++ {
		out[k] = imu.Stride{ID: k, Start: k * strideLen, End: (k + 1) * strideLen}
	}

	return out
}

func TestRampp_Defaults(t *testing.T) {
	r := events.NewRampp()
	assert.Equal(t, float64(events.DefaultICSearchBeforeMS), r.ICSearchBeforeMS)
	assert.Equal(t, float64(events.DefaultICSearchAfterMS), r.ICSearchAfterMS)
	assert.Equal(t, float64(events.DefaultMinVelWinMS), r.MinVelWinMS)
}

func TestRampp_SegmentedEvents(t *testing.T) {
	s := gaitSignal(t, 3)

	res, err := events.NewRampp().Detect(s, tiledStrides(3))
	require.NoError(t, err)
	require.Len(t, res.Segmented, 3)

	for k, ev := range res.Segmented {
		base := float64(k * strideLen)
		assert.Equal(t, k, ev.ID)
		assert.InDelta(t, base+30, ev.TC, 0.5, "toe off at the zero crossing before the swing peak")
		assert.InDelta(t, base+54, ev.IC, 0.5, "initial contact at the acc_pa minimum")
		assert.InDelta(t, base+5, ev.MinVel, 0.5, "mid-stance in the quiet phase")
	}
}

func TestRampp_MinVelStrideList(t *testing.T) {
	s := gaitSignal(t, 3)

	res, err := events.NewRampp().Detect(s, tiledStrides(3))
	require.NoError(t, err)
	require.Len(t, res.MinVel, 2, "n adjacent segmented strides yield n-1 min_vel strides")
	require.NoError(t, imu.ValidateMinVelStrides(res.MinVel))

	first := res.MinVel[0]
	assert.Equal(t, 0, first.ID)
	assert.Equal(t, 5, first.Start)
	assert.Equal(t, 105, first.End)
	assert.True(t, math.IsNaN(first.PreIC), "first stride has no preceding ic")
	assert.InDelta(t, 30, first.TC, 0.5)
	assert.InDelta(t, 54, first.IC, 0.5)

	second := res.MinVel[1]
	assert.Equal(t, 1, second.ID)
	assert.Equal(t, 105, second.Start)
	assert.Equal(t, 205, second.End)
	assert.InDelta(t, 54, second.PreIC, 0.5, "pre_ic is the ic of the previous stride")
	assert.InDelta(t, 130, second.TC, 0.5)
	assert.InDelta(t, 154, second.IC, 0.5)
}

func TestRampp_BreakInStrideSequence(t *testing.T) {
	s := gaitSignal(t, 4)
	// Strides 0 and 1 are adjacent, stride 2 is skipped: the pair
	// (1, 2) must not span the gap.
	strides := []imu.Stride{
		{ID: 0, Start: 0, End: strideLen},
		{ID: 1, Start: strideLen, End: 2 * strideLen},
		{ID: 3, Start: 3 * strideLen, End: 4 * strideLen},
	}

	res, err := events.NewRampp().Detect(s, strides)
	require.NoError(t, err)
	require.Len(t, res.MinVel, 1, "only the adjacent pair forms a min_vel stride")
	assert.Equal(t, 5, res.MinVel[0].Start)
	assert.Equal(t, 105, res.MinVel[0].End)
}

func TestRampp_FlatStrideYieldsNaN(t *testing.T) {
	// A constant signal has no zero crossing and no negative slope.
	n := strideLen
	flat := make([]float64, n)
	si := make([]float64, n)
	for i := range flat {
		flat[i] = 1
		si[i] = 9.81
	}
	zeros := make([]float64, n)
	s, err := imu.SignalFromColumns(
		[]string{imu.AccPA, imu.AccML, imu.AccSI, imu.GyrPA, imu.GyrML, imu.GyrSI},
		[][]float64{zeros, zeros, si, zeros, flat, zeros},
		100,
	)
	require.NoError(t, err)

	res, err := events.NewRampp().Detect(s, tiledStrides(1))
	require.NoError(t, err)
	require.Len(t, res.Segmented, 1)
	assert.True(t, math.IsNaN(res.Segmented[0].TC))
	assert.True(t, math.IsNaN(res.Segmented[0].IC))
	assert.False(t, math.IsNaN(res.Segmented[0].MinVel), "min_vel exists even on flat data")
	assert.Empty(t, res.MinVel)
}

func TestRampp_RequiresBodyFrame(t *testing.T) {
	cols := make([][]float64, 6)
	for i := range cols {
		cols[i] = make([]float64, 10)
	}
	s, err := imu.SignalFromColumns(
		[]string{imu.AccX, imu.AccY, imu.AccZ, imu.GyrX, imu.GyrY, imu.GyrZ},
		cols, 100,
	)
	require.NoError(t, err)

	_, err = events.NewRampp().Detect(s, []imu.Stride{{Start: 0, End: 10}})
	assert.Error(t, err, "sensor-frame data must be rejected")
}

func TestRampp_ParameterValidation(t *testing.T) {
	s := gaitSignal(t, 1)

	r := events.NewRampp()
	r.ICSearchBeforeMS = 0
	_, err := r.Detect(s, tiledStrides(1))
	assert.ErrorIs(t, err, events.ErrBadSearchRegion)

	r = events.NewRampp()
	r.MinVelWinMS = -1
	_, err = r.Detect(s, tiledStrides(1))
	assert.ErrorIs(t, err, events.ErrBadMinVelWindow)
}

func TestRampp_StrideOutOfRange(t *testing.T) {
	s := gaitSignal(t, 1)

	_, err := events.NewRampp().Detect(s, []imu.Stride{{Start: 0, End: strideLen + 1}})
	assert.ErrorIs(t, err, imu.ErrOutOfRange)
}

func TestRampp_DetectSet(t *testing.T) {
	set := imu.SensorSet{
		"left_sensor":  gaitSignal(t, 3),
		"right_sensor": gaitSignal(t, 2),
	}
	strides := imu.MultiSensorStrides{
		"left_sensor":  tiledStrides(3),
		"right_sensor": tiledStrides(2),
	}

	out, err := events.NewRampp().DetectSet(set, strides)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Len(t, out["left_sensor"].MinVel, 2)
	assert.Len(t, out["right_sensor"].MinVel, 1)
}
