package bc

import (
	"github.com/katalvlaran/colloc/geometry"
	"gonum.org/v1/gonum/mat"
)

// Initial constrains one output component to a target value on the
// initial-time slice of a space×time domain:
// error_i = outputs[i, Component] − Value(x_i).
type Initial struct {
	// Value returns the target for the constrained component at x.
	Value func(x []float64) float64
	// On narrows the constrained initial subset; nil keeps every
	// initial-slice point.
	On Predicate
	// Component selects the output column the condition applies to.
	Component int

	geom geometry.TimeGeometry
}

// NewInitial builds an initial condition on geom's t = t0 slice. on may
// be nil to constrain the whole slice.
func NewInitial(geom geometry.TimeGeometry, value func(x []float64) float64, on Predicate) (*Initial, error) {
	if geom == nil {
		return nil, ErrNilGeometry
	}
	if value == nil {
		return nil, ErrNilValue
	}
	return &Initial{Value: value, On: on, geom: geom}, nil
}

// CollocationPoints selects the candidate rows on the initial-time slice.
func (ic *Initial) CollocationPoints(candidates *mat.Dense) (*mat.Dense, error) {
	return selectRows(candidates, ic.geom.Dim(), func(x []float64) bool {
		member := ic.geom.OnInitial(x)
		if ic.On != nil {
			return ic.On(x, member)
		}
		return member
	}), nil
}

// Error computes outputs[i, Component] − Value(x_i) for rows [beg, end).
func (ic *Initial) Error(points, inputs, outputs *mat.Dense, beg, end int) (*mat.VecDense, error) {
	return valueError(points, outputs, beg, end, ic.geom.Dim(), ic.Component, ic.Value)
}
