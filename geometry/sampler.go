package geometry

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r1"
	"gonum.org/v1/gonum/stat/distmv"
	"gonum.org/v1/gonum/stat/samplemv"
)

// sampleBox draws n points from the axis-aligned box [lo, hi] under the
// given distribution. Rows are points, columns are axes. The source must
// be non-nil; geometries normalize a nil Source before calling here.
func sampleBox(n int, lo, hi []float64, d Distribution, src rand.Source) (*mat.Dense, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrNonPositiveCount, n)
	}
	if len(lo) != len(hi) {
		return nil, fmt.Errorf("%w: %d vs %d bounds", ErrDimensionMismatch, len(lo), len(hi))
	}
	bnds := make([]r1.Interval, len(lo))
	for i := range lo {
		bnds[i] = r1.Interval{Min: lo[i], Max: hi[i]}
	}
	u := distmv.NewUniform(bnds, src)
	batch := mat.NewDense(n, len(lo), nil)
	switch d {
	case Pseudo:
		samplemv.IID{Dist: u}.Sample(batch)
	case Halton:
		samplemv.Halton{Kind: samplemv.Owen, Q: u, Src: src}.Sample(batch)
	case LatinHypercube:
		samplemv.LatinHypercube{Q: u, Src: src}.Sample(batch)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownDistribution, int(d))
	}
	return batch, nil
}

// linspace returns n evenly spaced values over [a, b].
// boundary=true includes both endpoints; boundary=false places the n
// values strictly inside (a, b) at a + (i+1)·(b−a)/(n+1).
func linspace(a, b float64, n int, boundary bool) []float64 {
	out := make([]float64, n)
	if boundary {
		if n == 1 {
			out[0] = a
			return out
		}
		step := (b - a) / float64(n-1)
		for i := range out {
			out[i] = a + float64(i)*step
		}
		// Pin the last value so accumulated rounding never overshoots b.
		out[n-1] = b
		return out
	}
	step := (b - a) / float64(n+1)
	for i := range out {
		out[i] = a + float64(i+1)*step
	}
	return out
}

// sourceOrDefault returns src, or a DefaultSeed-seeded source when src is nil.
func sourceOrDefault(src rand.Source) rand.Source {
	if src != nil {
		return src
	}
	return rand.NewSource(DefaultSeed)
}

// column wraps a 1-D value slice as an n×1 matrix.
func column(vals []float64) *mat.Dense {
	out := mat.NewDense(len(vals), 1, nil)
	for i, v := range vals {
		out.Set(i, 0, v)
	}
	return out
}

// hstack joins two blocks side by side.
func hstack(a, b *mat.Dense) *mat.Dense {
	var out mat.Dense
	out.Augment(a, b)
	return &out
}

// vstack concatenates row blocks top to bottom, skipping nil blocks.
// Returns nil when every block is nil.
func vstack(blocks ...*mat.Dense) *mat.Dense {
	var out *mat.Dense
	for _, b := range blocks {
		if b == nil {
			continue
		}
		if out == nil {
			out = mat.DenseCopyOf(b)
			continue
		}
		var s mat.Dense
		s.Stack(out, b)
		out = &s
	}
	return out
}

// near reports |a−b| ≤ Eps.
func near(a, b float64) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff <= Eps
}
