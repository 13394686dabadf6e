// Package geometry: sampling contracts, distributions, and sentinel errors
// for the geometry subpackage of github.com/katalvlaran/colloc.
package geometry

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors for geometry operations.
var (
	// ErrNonPositiveCount indicates a requested point count n ≤ 0.
	ErrNonPositiveCount = errors.New("geometry: point count must be positive")
	// ErrInvalidBounds indicates degenerate or inverted domain bounds.
	ErrInvalidBounds = errors.New("geometry: lower bound must be strictly below upper bound")
	// ErrUnknownDistribution indicates a Distribution value outside the known set.
	ErrUnknownDistribution = errors.New("geometry: unknown sampling distribution")
	// ErrDimensionMismatch indicates a coordinate slice of the wrong length.
	ErrDimensionMismatch = errors.New("geometry: coordinate dimension mismatch")
	// ErrNilGeometry indicates a nil spatial geometry in a product construction.
	ErrNilGeometry = errors.New("geometry: spatial geometry must be non-nil")
)

// Eps is the absolute tolerance used by boundary and initial-time membership checks.
const Eps = 1e-9

// DefaultSeed seeds samplers whose Source was left nil. Fixed so that
// repeated runs with default construction produce identical point sets.
const DefaultSeed uint64 = 1

// Distribution selects the random sampling scheme used by RandomPoints,
// RandomBoundaryPoints and RandomInitialPoints.
//
//   - Pseudo         — plain pseudo-random uniform draws.
//   - Halton         — Owen-scrambled Halton sequence: low-discrepancy
//     coverage of the domain, the usual choice for collocation points.
//   - LatinHypercube — stratified one-point-per-slice coverage.
type Distribution int

const (
	// Pseudo draws i.i.d. uniform pseudo-random points.
	Pseudo Distribution = iota
	// Halton draws an Owen-scrambled Halton low-discrepancy sequence.
	Halton
	// LatinHypercube draws a Latin-hypercube stratified sample.
	LatinHypercube
)

// String returns the lower-case name of the distribution.
func (d Distribution) String() string {
	switch d {
	case Pseudo:
		return "pseudo"
	case Halton:
		return "halton"
	case LatinHypercube:
		return "latin-hypercube"
	default:
		return "unknown"
	}
}

// Geometry is the capability contract every spatial domain must satisfy.
// All sampling methods return a matrix with one point per row and Dim()
// columns, and fail with ErrNonPositiveCount for n ≤ 0.
type Geometry interface {
	// Dim reports the spatial dimension of the domain.
	Dim() int
	// OnBoundary reports whether x (length Dim) lies on the domain boundary,
	// within the Eps tolerance.
	OnBoundary(x []float64) bool
	// UniformPoints samples n evenly spaced points. With boundary=true the
	// sample may include boundary points; with boundary=false every point
	// is strictly interior.
	UniformPoints(n int, boundary bool) (*mat.Dense, error)
	// RandomPoints samples n points from the full domain under d.
	RandomPoints(n int, d Distribution) (*mat.Dense, error)
	// UniformBoundaryPoints samples n evenly spaced points on the boundary.
	UniformBoundaryPoints(n int) (*mat.Dense, error)
	// RandomBoundaryPoints samples n random points on the boundary under d.
	RandomBoundaryPoints(n int, d Distribution) (*mat.Dense, error)
}

// TimeGeometry extends Geometry with an initial-time slice. The time
// coordinate occupies the last column of every sampled point.
type TimeGeometry interface {
	Geometry
	// OnInitial reports whether x (length Dim) lies on the initial-time
	// slice, within the Eps tolerance.
	OnInitial(x []float64) bool
	// UniformInitialPoints samples n evenly spaced points at the initial time.
	UniformInitialPoints(n int) (*mat.Dense, error)
	// RandomInitialPoints samples n random points at the initial time under d.
	RandomInitialPoints(n int, d Distribution) (*mat.Dense, error)
}
