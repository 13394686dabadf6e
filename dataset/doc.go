// Package dataset assembles the collocation point arrays of a
// physics-informed learning problem: interior points, condition
// segments, initial-time points, and user anchors, stacked into one
// flat array with an explicit segment ledger.
//
// 🚀 What is a Dataset?
//
//	The bookkeeping heart of the training loop:
//	  • samples candidate points from a geometry (even grids or
//	    low-discrepancy sequences)
//	  • lets every condition select its own collocation points and
//	    stacks those segments ahead of the candidates
//	  • records the [Start, End) row range of every segment so losses
//	    can be sliced without recomputing cumulative sums
//	  • memoizes the generated arrays until explicitly invalidated
//	  • merges user anchors into every regeneration, and supports
//	    targeted augmentation that reuses — never resamples — the
//	    previously generated points
//
// Two variants share one type: New builds a stationary dataset, NewTime
// a time-augmented one that additionally samples the initial-time slice.
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/colloc/bc"
//	  "github.com/katalvlaran/colloc/dataset"
//	  "github.com/katalvlaran/colloc/geometry"
//	)
//
//	iv, _ := geometry.NewInterval(0, 1)
//	cond, _ := bc.NewDirichlet(iv, func(x []float64) float64 { return 0 }, nil)
//
//	opts := dataset.DefaultOptions()
//	opts.NumDomain = 10
//	opts.NumBoundary = 2
//	opts.TrainScheme = dataset.Uniform
//
//	ds, err := dataset.New(iv, opts, cond)
//	x, y, err := ds.TrainBatch() // cached after the first call
//	segs := ds.Segments()        // one [Start, End) range per condition
//
// Invariants, maintained on every generation:
//   - sum(NumBCs()) ≤ rows(train); the remainder are anchor/initial/domain rows
//   - Segments() partitions exactly the first sum(NumBCs()) rows
//   - the ledger is recomputed atomically with the array — a stale
//     ledger is unrepresentable
//   - anchors, once set, are merged into every future regeneration
package dataset
