package dtw

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaitkit/gaitkit/imu"
)

// TestPostprocess_SequentialIDsAfterCollapse verifies that matches
// whose borders collapse onto each other are dropped without leaving
// gaps in the surviving stride IDs.
func TestPostprocess_SequentialIDsAfterCollapse(t *testing.T) {
	s, err := imu.SignalFromColumns([]string{imu.GyrML}, [][]float64{make([]float64, 300)}, 204.8)
	require.NoError(t, err)

	b := &BarthDtw{Template: BarthOriginalTemplate()}
	matches := []Match{
		{Start: 0, End: 100},
		{Start: 100, End: 100}, // collapsed border pair
		{Start: 100, End: 200},
	}

	strides, err := b.postprocess(s, matches, s.SamplingRate())
	require.NoError(t, err)

	require.Len(t, strides, 2)
	assert.Equal(t, imu.Stride{ID: 0, Start: 0, End: 100}, strides[0])
	assert.Equal(t, imu.Stride{ID: 1, Start: 100, End: 200}, strides[1], "IDs stay sequential across a dropped match")
}
