// Package dataset provides a labeled index over gait recordings.
//
// A study typically stores many recordings, organized by levels such
// as participant, test and repetition. Index keeps that structure as a
// small table: one row per recording, one column per level. Pipelines
// use it to pick the recordings they should run on without touching
// the signal data itself.
//
// # What this package offers
//
//   - Index - an immutable label table built by NewIndex.
//   - Select - choose the level used for grouping and label lookup.
//   - Groups / Walk - deterministic iteration over the groups of the
//     selected level, in first-appearance order.
//   - Get / At - subset by group label(s) or by row positions; both
//     return a new Index sharing no state with the source.
//
// # Determinism
//
// Group order is the order in which labels first appear in the index,
// and every subset preserves the original row order. Iterating the
// same Index twice yields identical results.
//
// All operations are O(rows × levels) or better; an Index is cheap
// enough to rebuild per subset.
package dataset
