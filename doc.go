// Package colloc assembles the training and evaluation data for
// physics-informed learning problems — collocation point sets over a
// geometric domain, plus the composite residual loss that enforces a
// differential-equation residual together with boundary and initial
// conditions.
//
// 🚀 What is colloc?
//
//	A deterministic, single-threaded library that brings together:
//		• Geometries: intervals, rectangles and space×time products with
//		  uniform, pseudo-random, Halton and Latin-hypercube sampling
//		• Conditions: Dirichlet, point-set, operator and initial-time
//		  constraints with their own collocation-point selectors
//		• Datasets: cached, segment-ledgered stacked point arrays for
//		  stationary and time-dependent problems, with anchor augmentation
//		• Losses: phase-selected (train/test) residual loss assembly over
//		  the dataset's segment ledger
//
// ✨ Why choose colloc?
//
//   - Explicit bookkeeping – one flat point array plus an offset table,
//     recomputed on every regeneration, never silently stale
//   - Deterministic – every sampler takes an explicit seed or source,
//     no global randomness
//   - Pure Go on gonum – point arrays are gonum mat.Dense, sampling is
//     gonum stat/samplemv
//
// Everything is organized under four subpackages:
//
//	geometry/ — sampling contracts and reference geometries
//	bc/       — boundary/initial condition contracts and implementations
//	dataset/  — collocation datasets, caching, segment ledger, anchors
//	loss/     — metrics and the phase-dispatched residual loss assembler
//
// Data flows leaf-first: a geometry samples candidate points, the dataset
// stacks condition segments ahead of them and records the segment ledger,
// the network evaluates the stacked array, and the loss assembler slices
// network outputs per segment to emit one ordered loss list.
//
//	go get github.com/katalvlaran/colloc
package colloc
