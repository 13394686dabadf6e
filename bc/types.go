// Package bc: condition contracts and sentinel errors for the bc
// subpackage of github.com/katalvlaran/colloc.
package bc

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors for condition operations.
var (
	// ErrNilGeometry indicates a condition was built without a geometry.
	ErrNilGeometry = errors.New("bc: geometry must be non-nil")
	// ErrNilValue indicates a condition was built without a value function.
	ErrNilValue = errors.New("bc: value function must be non-nil")
	// ErrNilFunc indicates an operator condition was built without a residual function.
	ErrNilFunc = errors.New("bc: operator function must be non-nil")
	// ErrNilPoints indicates a point-set condition was built without points.
	ErrNilPoints = errors.New("bc: point set must be non-nil")
	// ErrValueCount indicates a point-set whose values do not match its points.
	ErrValueCount = errors.New("bc: one target value required per point")
	// ErrSliceRange indicates an Error slice [beg, end) outside the output rows.
	ErrSliceRange = errors.New("bc: slice range outside output rows")
)

// Condition constrains the network on a geometric subset. A Condition
// selects its own collocation points from a candidate array and computes
// a pointwise error over its [beg, end) slice of the stacked training
// array. Both sides of the contract operate on gonum matrices with one
// point per row.
type Condition interface {
	// CollocationPoints selects this condition's points from candidates.
	// A nil result means zero points were selected.
	CollocationPoints(candidates *mat.Dense) (*mat.Dense, error)
	// Error computes the pointwise residual over rows [beg, end) of the
	// stacked array. points holds the full stacked coordinates, inputs the
	// array fed to the network, outputs the network values at those rows.
	// A nil result means an empty slice (end == beg).
	Error(points, inputs, outputs *mat.Dense, beg, end int) (*mat.VecDense, error)
}

// Predicate decides whether a candidate coordinate belongs to a
// condition. x holds the point's coordinates; member is the geometry's
// own membership answer (on-boundary or on-initial) for x, so a nil
// Predicate defaults to the geometry's verdict.
type Predicate func(x []float64, member bool) bool

// selectRows returns the rows of candidates (restricted to the first dim
// columns) for which keep returns true. Returns nil when nothing matches.
func selectRows(candidates *mat.Dense, dim int, keep func(x []float64) bool) *mat.Dense {
	if candidates == nil {
		return nil
	}
	rows, cols := candidates.Dims()
	if dim > cols {
		dim = cols
	}
	var picked []int
	for i := 0; i < rows; i++ {
		if keep(candidates.RawRowView(i)[:dim]) {
			picked = append(picked, i)
		}
	}
	if len(picked) == 0 {
		return nil
	}
	out := mat.NewDense(len(picked), dim, nil)
	for j, i := range picked {
		for k := 0; k < dim; k++ {
			out.Set(j, k, candidates.At(i, k))
		}
	}
	return out
}

// checkSlice validates [beg, end) against the output rows.
func checkSlice(outputs *mat.Dense, beg, end int) error {
	rows := 0
	if outputs != nil {
		rows, _ = outputs.Dims()
	}
	if beg < 0 || end < beg || end > rows {
		return ErrSliceRange
	}
	return nil
}
