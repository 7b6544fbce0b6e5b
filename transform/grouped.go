package transform

import (
	"fmt"

	"github.com/gaitkit/gaitkit/imu"
)

// Group assigns one Transformer to a set of axes.
type Group struct {
	// Axes are the axis names the transformer is applied to, together
	// (a shared scaling factor across the group).
	Axes []string

	// Transformer scales the group.
	Transformer Transformer
}

// Grouped applies different transformers to different axis groups of
// one Signal.
//
// Each axis may appear in at most one group. With KeepAll, axes not
// mentioned in any group are passed through unchanged; otherwise the
// output contains only the mapped axes. Axis order of the input is
// preserved in the output.
type Grouped struct {
	Groups []Group

	// KeepAll keeps unmapped axes (unchanged) in the output.
	KeepAll bool
}

// Fit trains every trainable group transformer on the respective axis
// subset of the training signals.
func (g *Grouped) Fit(data []*imu.Signal) error {
	if len(data) == 0 {
		return ErrNoTrainingData
	}
	if _, err := g.mappedAxes(); err != nil {
		return err
	}
	for gi, grp := range g.Groups {
		trainable, ok := grp.Transformer.(Trainable)
		if !ok {
			continue
		}
		sub := make([]*imu.Signal, len(data))
		for i, d := range data {
			s, err := subSignal(d, grp.Axes)
			if err != nil {
				return fmt.Errorf("group %d: %w", gi, err)
			}
			sub[i] = s
		}
		if err := trainable.Fit(sub); err != nil {
			return fmt.Errorf("group %d: %w", gi, err)
		}
	}

	return nil
}

// Transform applies every group transformer to its axis subset and
// reassembles the signal.
func (g *Grouped) Transform(s *imu.Signal) (*imu.Signal, error) {
	mapped, err := g.mappedAxes()
	if err != nil {
		return nil, err
	}
	for axis := range mapped {
		if !s.HasAxis(axis) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, axis)
		}
	}

	// Transform each group subset, remember the result per axis.
	byAxis := make(map[string][]float64, len(mapped))
	for gi, grp := range g.Groups {
		sub, err := subSignal(s, grp.Axes)
		if err != nil {
			return nil, fmt.Errorf("group %d: %w", gi, err)
		}
		res, err := grp.Transformer.Transform(sub)
		if err != nil {
			return nil, fmt.Errorf("group %d: %w", gi, err)
		}
		for _, axis := range grp.Axes {
			col, err := res.Col(axis)
			if err != nil {
				return nil, err
			}
			byAxis[axis] = col
		}
	}

	// Reassemble in input axis order.
	var axes []string
	var cols [][]float64
	for _, axis := range s.Axes() {
		col, mappedHere := byAxis[axis]
		switch {
		case mappedHere:
			axes = append(axes, axis)
			cols = append(cols, col)
		case g.KeepAll:
			raw, err := s.Col(axis)
			if err != nil {
				return nil, err
			}
			axes = append(axes, axis)
			cols = append(cols, raw)
		}
	}

	return imu.SignalFromColumns(axes, cols, s.SamplingRate())
}

// mappedAxes validates the mapping and returns the set of mapped axes.
func (g *Grouped) mappedAxes() (map[string]struct{}, error) {
	seen := make(map[string]struct{})
	for _, grp := range g.Groups {
		for _, axis := range grp.Axes {
			if _, dup := seen[axis]; dup {
				return nil, fmt.Errorf("%w: %q", ErrDuplicateColumn, axis)
			}
			seen[axis] = struct{}{}
		}
	}

	return seen, nil
}

// subSignal extracts the named axes of s into a new Signal.
func subSignal(s *imu.Signal, axes []string) (*imu.Signal, error) {
	cols := make([][]float64, len(axes))
	for i, axis := range axes {
		col, err := s.Col(axis)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, axis)
		}
		cols[i] = col
	}

	return imu.SignalFromColumns(axes, cols, s.SamplingRate())
}
