// Package bc defines boundary and initial conditions for
// physics-informed learning problems.
//
// 🚀 What is a condition?
//
//	A Condition owns two narrow capabilities used by the dataset and
//	loss layers:
//	  • CollocationPoints — pick its own points from a candidate array
//	  • Error             — pointwise residual over its [beg, end) slice
//	    of the stacked training array
//
// ✨ Implementations:
//   - Dirichlet — pin an output component to a value on the boundary
//   - Initial   — pin an output component to a value at t = t0
//   - PointSet  — pin an output component at fixed user points
//   - Operator  — arbitrary user residual over the selected slice
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/colloc/bc"
//	  "github.com/katalvlaran/colloc/geometry"
//	)
//
//	iv, _ := geometry.NewInterval(0, 1)
//	zero := func(x []float64) float64 { return 0 }
//	cond, err := bc.NewDirichlet(iv, zero, nil) // u = 0 on both endpoints
//
// The order in which conditions are handed to a dataset defines the
// order of their segments in the stacked array and of their losses in
// the assembled loss list.
package bc
