package bc

import (
	"github.com/katalvlaran/colloc/geometry"
	"gonum.org/v1/gonum/mat"
)

// OperatorFunc computes an arbitrary pointwise residual over rows
// [beg, end) of the stacked array. It receives the full stacked
// coordinates, the array fed to the network, and the network outputs.
type OperatorFunc func(points, inputs, outputs *mat.Dense, beg, end int) (*mat.VecDense, error)

// Operator constrains the network through a user-supplied residual —
// the escape hatch for constraints the value-targeted conditions cannot
// express (flux balances, user-computed derivatives, couplings between
// output components).
type Operator struct {
	// On narrows the constrained boundary subset; nil keeps every
	// boundary point.
	On Predicate

	geom geometry.Geometry
	fn   OperatorFunc
}

// NewOperator builds an operator condition on geom's boundary. on may be
// nil to constrain the whole boundary.
func NewOperator(geom geometry.Geometry, fn OperatorFunc, on Predicate) (*Operator, error) {
	if geom == nil {
		return nil, ErrNilGeometry
	}
	if fn == nil {
		return nil, ErrNilFunc
	}
	return &Operator{On: on, geom: geom, fn: fn}, nil
}

// CollocationPoints selects the candidate rows on the constrained boundary subset.
func (op *Operator) CollocationPoints(candidates *mat.Dense) (*mat.Dense, error) {
	return selectRows(candidates, op.geom.Dim(), func(x []float64) bool {
		member := op.geom.OnBoundary(x)
		if op.On != nil {
			return op.On(x, member)
		}
		return member
	}), nil
}

// Error delegates to the user residual after validating the slice range.
func (op *Operator) Error(points, inputs, outputs *mat.Dense, beg, end int) (*mat.VecDense, error) {
	if err := checkSlice(outputs, beg, end); err != nil {
		return nil, err
	}
	if end == beg {
		return nil, nil
	}
	return op.fn(points, inputs, outputs, beg, end)
}
