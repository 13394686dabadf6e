package geometry

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
)

// Interval is the closed 1-D domain [A, B]. Its boundary is the two
// endpoints. Src seeds the random samplers; leave nil for a fixed
// DefaultSeed source.
type Interval struct {
	A, B float64
	Src  rand.Source
}

// NewInterval builds the interval [a, b].
// Returns ErrInvalidBounds unless a < b.
func NewInterval(a, b float64) (*Interval, error) {
	if !(a < b) {
		return nil, fmt.Errorf("%w: [%g, %g]", ErrInvalidBounds, a, b)
	}
	return &Interval{A: a, B: b}, nil
}

// Dim reports the spatial dimension, always 1.
func (iv *Interval) Dim() int { return 1 }

func (iv *Interval) bounds() (lo, hi []float64) {
	return []float64{iv.A}, []float64{iv.B}
}

// OnBoundary reports whether x[0] coincides with either endpoint.
func (iv *Interval) OnBoundary(x []float64) bool {
	if len(x) < 1 {
		return false
	}
	return near(x[0], iv.A) || near(x[0], iv.B)
}

// UniformPoints samples n evenly spaced points over [A, B]. With
// boundary=false all points are strictly inside (A, B).
func (iv *Interval) UniformPoints(n int, boundary bool) (*mat.Dense, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrNonPositiveCount, n)
	}
	return column(linspace(iv.A, iv.B, n, boundary)), nil
}

// RandomPoints samples n points from [A, B] under d.
func (iv *Interval) RandomPoints(n int, d Distribution) (*mat.Dense, error) {
	return sampleBox(n, []float64{iv.A}, []float64{iv.B}, d, sourceOrDefault(iv.Src))
}

// UniformBoundaryPoints splits n points between the two endpoints:
// ⌊n/2⌋ copies of A followed by the remaining copies of B.
func (iv *Interval) UniformBoundaryPoints(n int) (*mat.Dense, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrNonPositiveCount, n)
	}
	out := mat.NewDense(n, 1, nil)
	for i := 0; i < n; i++ {
		if i < n/2 {
			out.Set(i, 0, iv.A)
		} else {
			out.Set(i, 0, iv.B)
		}
	}
	return out, nil
}

// RandomBoundaryPoints picks each of the n points as A or B with equal
// probability. The distribution argument is accepted for contract
// symmetry; a two-point boundary has no low-discrepancy refinement.
func (iv *Interval) RandomBoundaryPoints(n int, d Distribution) (*mat.Dense, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrNonPositiveCount, n)
	}
	if d != Pseudo && d != Halton && d != LatinHypercube {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDistribution, int(d))
	}
	rng := rand.New(sourceOrDefault(iv.Src))
	out := mat.NewDense(n, 1, nil)
	for i := 0; i < n; i++ {
		if rng.Intn(2) == 0 {
			out.Set(i, 0, iv.A)
		} else {
			out.Set(i, 0, iv.B)
		}
	}
	return out, nil
}
