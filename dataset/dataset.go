package dataset

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyIndex is returned when an index is built without levels
	// or without rows.
	ErrEmptyIndex = errors.New("dataset: index must have at least one level and one row")

	// ErrRaggedRow is returned when a row length differs from the
	// number of levels.
	ErrRaggedRow = errors.New("dataset: row length must match level count")

	// ErrUnknownLevel is returned when a level name is not part of the
	// index.
	ErrUnknownLevel = errors.New("dataset: unknown level")

	// ErrUnknownLabel is returned when a label does not occur in the
	// selected level.
	ErrUnknownLabel = errors.New("dataset: unknown label")

	// ErrOutOfRange is returned when a row position is outside the
	// index.
	ErrOutOfRange = errors.New("dataset: row position out of range")
)

// Index is a labeled table over recordings: one row per recording, one
// column per level (e.g. participant, test, repetition). One level is
// selected at a time; grouping and label lookup operate on it.
type Index struct {
	levels   []string
	rows     [][]string
	selected int
}

// Group is one category of the selected level together with the row
// positions belonging to it.
type Group struct {
	Label string
	Rows  []int
}

// NewIndex builds an index from level names and rows. Every row must
// have exactly one value per level. The first level starts selected.
func NewIndex(levels []string, rows [][]string) (*Index, error) {
	if len(levels) == 0 || len(rows) == 0 {
		return nil, ErrEmptyIndex
	}
	idx := &Index{
		levels: append([]string(nil), levels...),
		rows:   make([][]string, len(rows)),
	}
	for i, row := range rows {
		if len(row) != len(levels) {
			return nil, fmt.Errorf("%w: row %d has %d values, want %d", ErrRaggedRow, i, len(row), len(levels))
		}
		idx.rows[i] = append([]string(nil), row...)
	}

	return idx, nil
}

// Len returns the number of rows.
func (x *Index) Len() int { return len(x.rows) }

// Levels returns the level names in column order.
func (x *Index) Levels() []string { return append([]string(nil), x.levels...) }

// SelectedLevel returns the name of the currently selected level.
func (x *Index) SelectedLevel() string { return x.levels[x.selected] }

// Select switches the selected level by name.
func (x *Index) Select(level string) error {
	for i, name := range x.levels {
		if name == level {
			x.selected = i

			return nil
		}
	}

	return fmt.Errorf("%w: %q (have %s)", ErrUnknownLevel, level, strings.Join(x.levels, ", "))
}

// Row returns a copy of the row at position i.
func (x *Index) Row(i int) ([]string, error) {
	if i < 0 || i >= len(x.rows) {
		return nil, fmt.Errorf("%w: %d", ErrOutOfRange, i)
	}

	return append([]string(nil), x.rows[i]...), nil
}

// Label returns the selected-level value of the row at position i.
func (x *Index) Label(i int) (string, error) {
	if i < 0 || i >= len(x.rows) {
		return "", fmt.Errorf("%w: %d", ErrOutOfRange, i)
	}

	return x.rows[i][x.selected], nil
}

// Groups returns the categories of the selected level in
// first-appearance order, each with the row positions belonging to it.
func (x *Index) Groups() []Group {
	order := make(map[string]int)
	var out []Group
	for i, row := range x.rows {
		label := row[x.selected]
		at, ok := order[label]
		if !ok {
			at = len(out)
			order[label] = at
			out = append(out, Group{Label: label})
		}
		out[at].Rows = append(out[at].Rows, i)
	}

	return out
}

// Get returns the subset of rows whose selected-level value matches
// any of the given labels, preserving row order. The selected level
// carries over.
func (x *Index) Get(labels ...string) (*Index, error) {
	want := make(map[string]bool, len(labels))
	for _, l := range labels {
		want[l] = true
	}
	seen := make(map[string]bool, len(labels))

	var rows [][]string
	for _, row := range x.rows {
		if want[row[x.selected]] {
			seen[row[x.selected]] = true
			rows = append(rows, row)
		}
	}
	for _, l := range labels {
		if !seen[l] {
			return nil, fmt.Errorf("%w: %q in level %q", ErrUnknownLabel, l, x.SelectedLevel())
		}
	}

	return x.subset(rows), nil
}

// At returns the subset of rows at the given positions, in the given
// order. The selected level carries over.
func (x *Index) At(positions ...int) (*Index, error) {
	rows := make([][]string, 0, len(positions))
	for _, p := range positions {
		if p < 0 || p >= len(x.rows) {
			return nil, fmt.Errorf("%w: %d", ErrOutOfRange, p)
		}
		rows = append(rows, x.rows[p])
	}
	if len(rows) == 0 {
		return nil, ErrEmptyIndex
	}

	return x.subset(rows), nil
}

// Walk visits every group of the selected level in first-appearance
// order, passing the group label and its subset. A non-nil error from
// fn stops the walk and is returned.
func (x *Index) Walk(fn func(label string, sub *Index) error) error {
	for _, g := range x.Groups() {
		sub, err := x.At(g.Rows...)
		if err != nil {
			return err
		}
		if err := fn(g.Label, sub); err != nil {
			return err
		}
	}

	return nil
}

// String renders the index as a small aligned table.
func (x *Index) String() string {
	widths := make([]int, len(x.levels))
	for i, name := range x.levels {
		widths[i] = len(name)
	}
	for _, row := range x.rows {
		for i, v := range row {
			if len(v) > widths[i] {
				widths[i] = len(v)
			}
		}
	}

	var b strings.Builder
	writeRow := func(cells []string) {
		for i, v := range cells {
			if i > 0 {
				b.WriteString("  ")
			}
			fmt.Fprintf(&b, "%-*s", widths[i], v)
		}
		b.WriteByte('\n')
	}
	writeRow(x.levels)
	for _, row := range x.rows {
		writeRow(row)
	}

	return b.String()
}

func (x *Index) subset(rows [][]string) *Index {
	out := &Index{
		levels:   append([]string(nil), x.levels...),
		rows:     make([][]string, len(rows)),
		selected: x.selected,
	}
	for i, row := range rows {
		out.rows[i] = append([]string(nil), row...)
	}

	return out
}
