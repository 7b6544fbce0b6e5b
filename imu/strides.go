package imu

import (
	"fmt"
	"math"
)

// Stride is a segmented stride: the half-open sample interval
// [Start, End) within a recording, plus a stable ID.
type Stride struct {
	// ID identifies the stride within its list.
	ID int

	// Start is the first sample of the stride (inclusive).
	Start int

	// End is the sample after the last stride sample (exclusive).
	End int
}

// Len returns the stride length in samples.
func (s Stride) Len() int { return s.End - s.Start }

// StrideEvents is a min-vel stride: it runs from one mid-stance
// (minimal velocity) to the next and is annotated with the gait events
// relevant for parameter calculation. All event values are sample
// indices into the recording the stride was detected on; they are
// float64 so a missing PreIC can be NaN.
//
// Event order within a valid stride: Start == MinVel <= TC <= IC < End,
// with PreIC < Start (or NaN for the first stride after a break).
type StrideEvents struct {
	ID    int
	Start int
	End   int

	// PreIC is the initial contact preceding this stride (NaN if the
	// stride follows a break or is the first of the recording).
	PreIC float64

	// IC is the initial contact (heel strike) within this stride.
	IC float64

	// MinVel is the minimal-velocity sample; equals Start by convention.
	MinVel float64

	// TC is the terminal contact (toe off) within this stride.
	TC float64
}

// Multi-sensor stride list variants, keyed by sensor name.
type (
	MultiSensorStrides map[string][]Stride
	MultiSensorEvents  map[string][]StrideEvents
)

// ValidateStrides checks a segmented stride list: non-negative bounds
// and Start < End for every stride.
func ValidateStrides(strides []Stride) error {
	for _, s := range strides {
		if s.Start < 0 || s.End <= s.Start {
			return fmt.Errorf("%w: stride %d [%d, %d)", ErrBadStrideBounds, s.ID, s.Start, s.End)
		}
	}

	return nil
}

// ValidateMinVelStrides checks the min-vel stride list convention:
//
//   - valid segmented bounds,
//   - Start == MinVel,
//   - TC and IC inside [Start, End) with TC <= IC,
//   - PreIC < Start, or NaN.
func ValidateMinVelStrides(strides []StrideEvents) error {
	for _, s := range strides {
		if s.Start < 0 || s.End <= s.Start {
			return fmt.Errorf("%w: stride %d [%d, %d)", ErrBadStrideBounds, s.ID, s.Start, s.End)
		}
		if s.MinVel != float64(s.Start) {
			return fmt.Errorf("%w: stride %d: start %d != min_vel %v", ErrNotMinVelStrides, s.ID, s.Start, s.MinVel)
		}
		if math.IsNaN(s.TC) || math.IsNaN(s.IC) {
			return fmt.Errorf("%w: stride %d: tc/ic must not be NaN", ErrNotMinVelStrides, s.ID)
		}
		if s.TC < float64(s.Start) || s.IC < s.TC || s.IC >= float64(s.End) {
			return fmt.Errorf("%w: stride %d: event order violated", ErrNotMinVelStrides, s.ID)
		}
		if !math.IsNaN(s.PreIC) && s.PreIC >= float64(s.Start) {
			return fmt.Errorf("%w: stride %d: pre_ic %v not before start %d", ErrNotMinVelStrides, s.ID, s.PreIC, s.Start)
		}
	}

	return nil
}
