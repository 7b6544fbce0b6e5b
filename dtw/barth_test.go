package dtw_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaitkit/gaitkit/dtw"
	"github.com/gaitkit/gaitkit/imu"
)

// syntheticGait tiles the canonical template into a gyr_ml recording:
// rest padding, n strides, rest padding. Returns the signal and the
// first stride's start sample.
func syntheticGait(t *testing.T, n, pad int) (*imu.Signal, int) {
	t.Helper()
	tpl := dtw.BarthOriginalTemplate()
	data, err := tpl.Data(imu.GyrML)
	require.NoError(t, err)

	col := make([]float64, 0, 2*pad+n*len(data))
	col = append(col, make([]float64, pad)...)
	for i := 0; i < n; i++ {
		for _, v := range data {
			col = append(col, v*tpl.ScaleFactor())
		}
	}
	col = append(col, make([]float64, pad)...)

	s, err := imu.SignalFromColumns([]string{imu.GyrML}, [][]float64{col}, tpl.SamplingRate())
	require.NoError(t, err)

	return s, pad
}

// TestBarthDtw_SegmentSynthetic verifies that tiled template repeats
// are recovered as individual strides.
func TestBarthDtw_SegmentSynthetic(t *testing.T) {
	s, pad := syntheticGait(t, 3, 100)
	tplLen := dtw.BarthOriginalTemplate().Len()

	b := dtw.NewBarthDtw()
	seg, err := b.Segment(s)
	require.NoError(t, err)

	require.Len(t, seg.Strides, 3, "three tiled strides must be found")
	for i, st := range seg.Strides {
		assert.Equal(t, i, st.ID, "IDs assigned in start order")
		assert.InDelta(t, pad+i*tplLen, st.Start, 10, "stride %d start", i)
		assert.InDelta(t, pad+(i+1)*tplLen, st.End, 10, "stride %d end", i)
	}
	assert.Equal(t, s.Len(), len(seg.CostFunction), "cost function covers every end sample")
	assert.NotEmpty(t, seg.Matches, "raw matches preserved")
}

// TestBarthDtw_NoGait checks that a flat signal yields no strides.
func TestBarthDtw_NoGait(t *testing.T) {
	s, err := imu.SignalFromColumns([]string{imu.GyrML}, [][]float64{make([]float64, 1024)}, 204.8)
	require.NoError(t, err)

	seg, err := dtw.NewBarthDtw().Segment(s)
	require.NoError(t, err)
	assert.Empty(t, seg.Strides, "rest signal has no strides")
}

// TestBarthDtw_TinyTemplate mirrors the minimal meta check: a 3-sample
// template against a 4-sample signal.
func TestBarthDtw_TinyTemplate(t *testing.T) {
	tpl, err := dtw.NewTemplate([]string{imu.GyrML}, [][]float64{{0, 1, 0}}, 100, 1)
	require.NoError(t, err)

	s, err := imu.SignalFromColumns([]string{imu.GyrML}, [][]float64{{0, 1, 0, 0}}, 100)
	require.NoError(t, err)

	b := &dtw.BarthDtw{Template: tpl, MaxCost: 0.5, ConflictResolution: true}
	seg, err := b.Segment(s)
	require.NoError(t, err)

	require.Len(t, seg.Strides, 1, "the single pulse matches once")
	assert.Equal(t, 0, seg.Strides[0].Start, "match starts at the pulse")
	assert.GreaterOrEqual(t, seg.Strides[0].End, 3, "match covers the template")
}

// TestBarthDtw_Validation covers configuration errors.
func TestBarthDtw_Validation(t *testing.T) {
	s, _ := syntheticGait(t, 1, 0)

	_, err := (&dtw.BarthDtw{}).Segment(s)
	assert.ErrorIs(t, err, dtw.ErrNoTemplate, "missing template must error")

	b := dtw.NewBarthDtw()
	b.MaxCost = -1
	_, err = b.Segment(s)
	assert.ErrorIs(t, err, dtw.ErrBadInput, "negative MaxCost must error")

	b = dtw.NewBarthDtw()
	short, err := imu.SignalFromColumns([]string{imu.GyrML}, [][]float64{{1, 2, 3}}, 204.8)
	require.NoError(t, err)
	_, err = b.Segment(short)
	assert.ErrorIs(t, err, dtw.ErrBadInput, "template longer than signal must error")

	acc, err := imu.SignalFromColumns([]string{imu.AccPA}, [][]float64{make([]float64, 500)}, 204.8)
	require.NoError(t, err)
	_, err = b.Segment(acc)
	assert.ErrorIs(t, err, dtw.ErrAxisMismatch, "signal without template axis must error")
}

// TestConstrainedBarthDtw_DefaultsAndEquivalence checks the
// constrained defaults and that constraints do not change the result
// on clean data.
func TestConstrainedBarthDtw_DefaultsAndEquivalence(t *testing.T) {
	c := dtw.NewConstrainedBarthDtw()
	assert.Equal(t, dtw.DefaultMaxStretchMS, c.MaxTemplateStretchMS)
	assert.Equal(t, dtw.DefaultMaxStretchMS, c.MaxSignalStretchMS)

	s, _ := syntheticGait(t, 2, 64)
	plain, err := dtw.NewBarthDtw().Segment(s)
	require.NoError(t, err)
	constrained, err := c.Segment(s)
	require.NoError(t, err)

	require.Len(t, constrained.Strides, len(plain.Strides), "clean data: same stride count")
	for i := range plain.Strides {
		assert.InDelta(t, plain.Strides[i].Start, constrained.Strides[i].Start, 5, "stride %d start", i)
	}
}

// TestBarthDtw_SegmentSet runs segmentation across a two-sensor set.
func TestBarthDtw_SegmentSet(t *testing.T) {
	left, _ := syntheticGait(t, 2, 50)
	right, _ := syntheticGait(t, 3, 50)
	set := imu.SensorSet{"left_sensor": left, "right_sensor": right}

	out, err := dtw.NewBarthDtw().SegmentSet(set)
	require.NoError(t, err)
	assert.Len(t, out["left_sensor"].Strides, 2)
	assert.Len(t, out["right_sensor"].Strides, 3)

	_, err = dtw.NewBarthDtw().SegmentSet(imu.SensorSet{})
	assert.ErrorIs(t, err, imu.ErrNoSensors)
}
