package bc

import (
	"github.com/katalvlaran/colloc/geometry"
	"gonum.org/v1/gonum/mat"
)

// Dirichlet constrains one output component to a target value on the
// geometry boundary: error_i = outputs[i, Component] − Value(x_i).
type Dirichlet struct {
	// Value returns the target for the constrained component at x.
	Value func(x []float64) float64
	// On narrows the constrained boundary subset; nil keeps every
	// boundary point.
	On Predicate
	// Component selects the output column the condition applies to.
	Component int

	geom geometry.Geometry
}

// NewDirichlet builds a Dirichlet condition on geom's boundary. on may
// be nil to constrain the whole boundary.
func NewDirichlet(geom geometry.Geometry, value func(x []float64) float64, on Predicate) (*Dirichlet, error) {
	if geom == nil {
		return nil, ErrNilGeometry
	}
	if value == nil {
		return nil, ErrNilValue
	}
	return &Dirichlet{Value: value, On: on, geom: geom}, nil
}

// CollocationPoints selects the candidate rows on the constrained boundary subset.
func (d *Dirichlet) CollocationPoints(candidates *mat.Dense) (*mat.Dense, error) {
	return selectRows(candidates, d.geom.Dim(), func(x []float64) bool {
		member := d.geom.OnBoundary(x)
		if d.On != nil {
			return d.On(x, member)
		}
		return member
	}), nil
}

// Error computes outputs[i, Component] − Value(x_i) for rows [beg, end).
func (d *Dirichlet) Error(points, inputs, outputs *mat.Dense, beg, end int) (*mat.VecDense, error) {
	return valueError(points, outputs, beg, end, d.geom.Dim(), d.Component, d.Value)
}

// valueError is the shared pointwise error of value-targeted conditions.
func valueError(points, outputs *mat.Dense, beg, end, dim, component int, value func(x []float64) float64) (*mat.VecDense, error) {
	if err := checkSlice(outputs, beg, end); err != nil {
		return nil, err
	}
	if end == beg {
		return nil, nil
	}
	out := mat.NewVecDense(end-beg, nil)
	for i := beg; i < end; i++ {
		x := points.RawRowView(i)
		if dim < len(x) {
			x = x[:dim]
		}
		out.SetVec(i-beg, outputs.At(i, component)-value(x))
	}
	return out, nil
}
