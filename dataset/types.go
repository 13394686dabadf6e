// Package dataset: options, the segment ledger, and sentinel errors for
// the dataset subpackage of github.com/katalvlaran/colloc.
package dataset

import (
	"errors"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/colloc/geometry"
)

// Sentinel errors for dataset operations.
var (
	// ErrNilGeometry indicates a dataset was built without a geometry.
	ErrNilGeometry = errors.New("dataset: geometry must be non-nil")
	// ErrNegativeCount indicates a negative sampling count in Options.
	ErrNegativeCount = errors.New("dataset: point counts must be non-negative")
	// ErrInitialWithoutTime indicates NumInitial > 0 on a stationary dataset.
	ErrInitialWithoutTime = errors.New("dataset: initial points require a time-augmented dataset")
	// ErrEmptyTrainingSet indicates a configuration that samples zero points.
	ErrEmptyTrainingSet = errors.New("dataset: configuration samples no training points")
	// ErrUnknownScheme indicates a Scheme value outside the known set.
	ErrUnknownScheme = errors.New("dataset: unknown training scheme")
	// ErrNilAnchors indicates AddAnchors was called with nil points.
	ErrNilAnchors = errors.New("dataset: anchor points must be non-nil")
	// ErrAnchorDim indicates anchor points of the wrong width.
	ErrAnchorDim = errors.New("dataset: anchor columns must match the geometry dimension")
	// ErrConditionFailed wraps a condition selector failure during generation.
	ErrConditionFailed = errors.New("dataset: condition point selection failed")
)

// tagCategories is the number of one-hot columns the auxiliary point tag
// appends to every row when Options.AuxTag is on.
const tagCategories = 3

// Scheme selects how the training points are drawn.
type Scheme int

const (
	// Uniform places training points on even grids.
	Uniform Scheme = iota
	// Quasirandom draws training points from a low-discrepancy
	// (Owen-scrambled Halton) sequence.
	Quasirandom
)

// String returns the lower-case name of the scheme.
func (s Scheme) String() string {
	switch s {
	case Uniform:
		return "uniform"
	case Quasirandom:
		return "quasirandom"
	default:
		return "unknown"
	}
}

// Options configures a collocation dataset.
//
// Fields:
//   - NumDomain   — interior points per generation.
//   - NumBoundary — boundary points offered to the condition selectors.
//   - NumInitial  — initial-time points (time-augmented datasets only).
//   - TrainScheme — Uniform or Quasirandom placement of training points.
//   - NumTest     — independent uniform test points; 0 reuses the
//     training suffix after the condition segments.
//   - Anchors     — optional user points prepended on every generation.
//   - Solution    — optional ground truth, evaluated at every generated
//     point to produce target values.
//   - AuxTag      — append a 3-way one-hot random category tag to every
//     stacked row. Off by default; selectors and Solution always see
//     untagged coordinates.
//   - Seed        — seeds the dataset's tag/sampling randomness.
type Options struct {
	NumDomain   int
	NumBoundary int
	NumInitial  int
	TrainScheme Scheme
	NumTest     int
	Anchors     *mat.Dense
	Solution    func(x *mat.Dense) *mat.Dense
	AuxTag      bool
	Seed        uint64
}

// DefaultOptions returns Options with Quasirandom training placement,
// no test resampling, no tag, and the package default seed.
func DefaultOptions() Options {
	return Options{
		TrainScheme: Quasirandom,
		Seed:        geometry.DefaultSeed,
	}
}

// Segment is one condition's half-open row range [Start, End) in the
// stacked training array. Segments are precomputed from the ledger once
// per generation so loss assembly never recomputes cumulative sums.
type Segment struct {
	Start, End int
}

// Len reports the number of rows in the segment.
func (s Segment) Len() int { return s.End - s.Start }

// buildSegments converts per-condition counts into contiguous [Start, End)
// ranges starting at row 0. The result always partitions exactly the
// first sum(counts) rows: no gaps, no overlap.
func buildSegments(counts []int) []Segment {
	segs := make([]Segment, len(counts))
	off := 0
	for i, c := range counts {
		segs[i] = Segment{Start: off, End: off + c}
		off += c
	}
	return segs
}
