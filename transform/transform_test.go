package transform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaitkit/gaitkit/imu"
	"github.com/gaitkit/gaitkit/transform"
)

func twoAxisSignal(t *testing.T, a, b []float64) *imu.Signal {
	t.Helper()
	s, err := imu.SignalFromColumns([]string{imu.GyrML, imu.GyrSI}, [][]float64{a, b}, 100)
	require.NoError(t, err)

	return s
}

func column(t *testing.T, s *imu.Signal, axis string) []float64 {
	t.Helper()
	col, err := s.Col(axis)
	require.NoError(t, err)

	return col
}

func TestIdentity(t *testing.T) {
	s := twoAxisSignal(t, []float64{1, 2}, []float64{3, 4})
	out, err := transform.Identity{}.Transform(s)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, column(t, out, imu.GyrML), "identity keeps values")
}

func TestFixed(t *testing.T) {
	s := twoAxisSignal(t, []float64{2, 4}, []float64{6, 8})
	out, err := transform.Fixed{Scale: 2, Offset: 2}.Transform(s)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1}, column(t, out, imu.GyrML), "(x-2)/2")
	assert.Equal(t, []float64{2, 3}, column(t, out, imu.GyrSI))
}

func TestAbsMax_GlobalFactor(t *testing.T) {
	// Global |max| is 8 (on gyr_si); both axes share the factor.
	s := twoAxisSignal(t, []float64{2, -4}, []float64{-8, 1})
	out, err := transform.AbsMax{FeatureMax: 1}.Transform(s)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.25, -0.5}, column(t, out, imu.GyrML), 1e-12)
	assert.InDeltaSlice(t, []float64{-1, 0.125}, column(t, out, imu.GyrSI), 1e-12, "abs max maps to feature max")
}

func TestTrainableAbsMax(t *testing.T) {
	scaler := &transform.TrainableAbsMax{FeatureMax: 1}

	_, err := scaler.Transform(twoAxisSignal(t, []float64{1, 2}, []float64{3, 4}))
	assert.ErrorIs(t, err, transform.ErrNotFitted, "transform before fit must error")

	train := []*imu.Signal{
		twoAxisSignal(t, []float64{1, -2}, []float64{0, 0}),
		twoAxisSignal(t, []float64{0, 10}, []float64{-5, 0}),
	}
	require.NoError(t, scaler.Fit(train))
	assert.Equal(t, 10.0, scaler.DataMax, "data max is the max over all sequences")

	out, err := scaler.Transform(twoAxisSignal(t, []float64{5, 20}, []float64{0, 0}))
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.5, 2}, column(t, out, imu.GyrML), 1e-12,
		"learned factor is applied, new data may exceed the feature max")

	assert.ErrorIs(t, scaler.Fit(nil), transform.ErrNoTrainingData)
}

func TestMinMax(t *testing.T) {
	s := twoAxisSignal(t, []float64{0, 10}, []float64{5, 10})
	out, err := transform.MinMax{}.Transform(s) // default [0, 1]
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 1}, column(t, out, imu.GyrML), 1e-12)
	assert.InDeltaSlice(t, []float64{0.5, 1}, column(t, out, imu.GyrSI), 1e-12, "global range shared by axes")

	_, err = transform.MinMax{Min: 1, Max: 1}.Transform(s)
	assert.ErrorIs(t, err, transform.ErrBadRange)
}

func TestTrainableMinMax(t *testing.T) {
	scaler := &transform.TrainableMinMax{Min: -1, Max: 1}

	_, err := scaler.Transform(twoAxisSignal(t, []float64{0}, []float64{0}))
	assert.ErrorIs(t, err, transform.ErrNotFitted)

	require.NoError(t, scaler.Fit([]*imu.Signal{
		twoAxisSignal(t, []float64{0, 4}, []float64{2, 2}),
		twoAxisSignal(t, []float64{-4, 0}, []float64{0, 0}),
	}))
	assert.Equal(t, -4.0, scaler.DataMin)
	assert.Equal(t, 4.0, scaler.DataMax)

	out, err := scaler.Transform(twoAxisSignal(t, []float64{-4, 4}, []float64{0, 0}))
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{-1, 1}, column(t, out, imu.GyrML), 1e-12, "learned range maps onto [-1, 1]")
}

func TestGrouped(t *testing.T) {
	s := twoAxisSignal(t, []float64{2, -4}, []float64{1, 3})

	g := &transform.Grouped{
		Groups: []transform.Group{
			{Axes: []string{imu.GyrML}, Transformer: transform.AbsMax{FeatureMax: 1}},
		},
	}
	out, err := g.Transform(s)
	require.NoError(t, err)
	assert.Equal(t, []string{imu.GyrML}, out.Axes(), "without KeepAll only mapped axes survive")
	assert.InDeltaSlice(t, []float64{0.5, -1}, column(t, out, imu.GyrML), 1e-12)

	g.KeepAll = true
	out, err = g.Transform(s)
	require.NoError(t, err)
	assert.Equal(t, []string{imu.GyrML, imu.GyrSI}, out.Axes(), "KeepAll preserves axis order")
	assert.Equal(t, []float64{1, 3}, column(t, out, imu.GyrSI), "unmapped axis unchanged")
}

func TestGrouped_Validation(t *testing.T) {
	dup := &transform.Grouped{Groups: []transform.Group{
		{Axes: []string{imu.GyrML}, Transformer: transform.Identity{}},
		{Axes: []string{imu.GyrML}, Transformer: transform.Identity{}},
	}}
	_, err := dup.Transform(twoAxisSignal(t, []float64{1}, []float64{1}))
	assert.ErrorIs(t, err, transform.ErrDuplicateColumn, "axis mapped twice must error")

	missing := &transform.Grouped{Groups: []transform.Group{
		{Axes: []string{imu.AccPA}, Transformer: transform.Identity{}},
	}}
	_, err = missing.Transform(twoAxisSignal(t, []float64{1}, []float64{1}))
	assert.ErrorIs(t, err, transform.ErrUnknownColumn, "mapping an absent axis must error")
}

func TestGrouped_FitTrainsGroups(t *testing.T) {
	inner := &transform.TrainableAbsMax{FeatureMax: 1}
	g := &transform.Grouped{Groups: []transform.Group{
		{Axes: []string{imu.GyrML}, Transformer: inner},
	}}

	require.NoError(t, g.Fit([]*imu.Signal{
		twoAxisSignal(t, []float64{2, -6}, []float64{100, 100}),
	}))
	// Only the mapped axis feeds the fit: gyr_si's 100 must not leak in.
	assert.Equal(t, 6.0, inner.DataMax, "fit sees only the group's axes")
}
