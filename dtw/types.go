package dtw

import "errors"

// Sentinel errors of the dtw package.
var (
	// ErrEmptyInput indicates one or both input sequences are empty.
	ErrEmptyInput = errors.New("dtw: input sequences must be non-empty")

	// ErrBadInput indicates an invalid option value (e.g. Window < -1,
	// negative MaxCost, or a stretch limit shorter than one sample).
	ErrBadInput = errors.New("dtw: invalid option value")

	// ErrPathNeedsMatrix indicates ReturnPath=true with a memory mode
	// that cannot backtrack.
	ErrPathNeedsMatrix = errors.New("dtw: ReturnPath requires MemoryMode=FullMatrix")

	// ErrNoTemplate indicates segmentation without a template.
	ErrNoTemplate = errors.New("dtw: no template configured")

	// ErrAxisMismatch indicates a signal missing a template axis.
	ErrAxisMismatch = errors.New("dtw: signal misses template axis")
)

// MemoryMode controls how Distance stores its DP matrix.
type MemoryMode int

const (
	// FullMatrix stores all rows, supports path recovery. Memory O(n·m).
	FullMatrix MemoryMode = iota

	// TwoRows keeps only the current and previous row. Memory O(m),
	// no path recovery.
	TwoRows

	// NoMemory is equivalent to TwoRows; kept as an explicit signal
	// that the caller only wants the scalar distance.
	NoMemory
)

// Coord is one step of a warping path: template index I against
// signal index J.
type Coord struct {
	I int
	J int
}

// Options configures Distance.
//
// Fields:
//   - Window       — Sakoe–Chiba band: maximum |i−j| deviation.
//     -1 disables the constraint, 0 allows only the diagonal.
//   - SlopePenalty — additional cost for insertion/deletion steps.
//   - ReturnPath   — also backtrack and return the warping path
//     (requires FullMatrix).
//   - MemoryMode   — DP storage strategy.
type Options struct {
	Window       int
	SlopePenalty float64
	ReturnPath   bool
	MemoryMode   MemoryMode
}

// DefaultOptions returns the documented defaults: no window
// constraint, no slope penalty, no path, full matrix.
func DefaultOptions() Options {
	return Options{Window: -1, SlopePenalty: 0, ReturnPath: false, MemoryMode: FullMatrix}
}
