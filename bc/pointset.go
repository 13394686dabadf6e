package bc

import (
	"gonum.org/v1/gonum/mat"
)

// PointSet pins one output component to known values at fixed points.
// Unlike boundary-filtered conditions it ignores the candidate array and
// always contributes exactly its own points, which makes it the natural
// companion of dataset anchors: anchor the points, pin their values.
type PointSet struct {
	// Component selects the output column the condition applies to.
	Component int

	points *mat.Dense
	values *mat.VecDense
}

// NewPointSet builds a point-set condition with one target value per point.
func NewPointSet(points *mat.Dense, values *mat.VecDense) (*PointSet, error) {
	if points == nil {
		return nil, ErrNilPoints
	}
	rows, _ := points.Dims()
	if values == nil || values.Len() != rows {
		return nil, ErrValueCount
	}
	return &PointSet{points: mat.DenseCopyOf(points), values: mat.VecDenseCopyOf(values)}, nil
}

// CollocationPoints returns the fixed point set, regardless of candidates.
func (ps *PointSet) CollocationPoints(candidates *mat.Dense) (*mat.Dense, error) {
	return mat.DenseCopyOf(ps.points), nil
}

// Error computes outputs[i, Component] − values[i−beg] for rows [beg, end).
func (ps *PointSet) Error(points, inputs, outputs *mat.Dense, beg, end int) (*mat.VecDense, error) {
	if err := checkSlice(outputs, beg, end); err != nil {
		return nil, err
	}
	if end-beg != ps.values.Len() {
		return nil, ErrSliceRange
	}
	if end == beg {
		return nil, nil
	}
	out := mat.NewVecDense(end-beg, nil)
	for i := beg; i < end; i++ {
		out.SetVec(i-beg, outputs.At(i, ps.Component)-ps.values.AtVec(i-beg))
	}
	return out, nil
}
