package geometry

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
)

// GeometryXTime is the product of a spatial geometry and the time
// interval [T0, T1]. Sampled points carry the spatial coordinates first
// and the time coordinate in the last column. Its boundary is the
// spatial boundary swept through time; its initial slice is t = T0.
type GeometryXTime struct {
	Space  Geometry
	T0, T1 float64
	Src    rand.Source
}

// boxBounded is satisfied by the axis-aligned geometries. Product
// domains use it to sample space and time jointly from one box draw.
type boxBounded interface {
	bounds() (lo, hi []float64)
}

// NewGeometryXTime builds the product domain space × [t0, t1].
func NewGeometryXTime(space Geometry, t0, t1 float64) (*GeometryXTime, error) {
	if space == nil {
		return nil, ErrNilGeometry
	}
	if !(t0 < t1) {
		return nil, fmt.Errorf("%w: [%g, %g]", ErrInvalidBounds, t0, t1)
	}
	return &GeometryXTime{Space: space, T0: t0, T1: t1}, nil
}

// Dim reports the spatial dimension plus one for time.
func (g *GeometryXTime) Dim() int { return g.Space.Dim() + 1 }

// OnBoundary reports whether the spatial part of x lies on the spatial boundary.
func (g *GeometryXTime) OnBoundary(x []float64) bool {
	if len(x) < g.Dim() {
		return false
	}
	return g.Space.OnBoundary(x[:g.Space.Dim()])
}

// OnInitial reports whether the time coordinate of x equals T0.
func (g *GeometryXTime) OnInitial(x []float64) bool {
	if len(x) < g.Dim() {
		return false
	}
	return near(x[g.Space.Dim()], g.T0)
}

// UniformPoints samples the cartesian product of nt evenly spaced time
// slices with nx evenly spaced spatial points, truncated to exactly n
// rows. nt = ⌈n^(1/(sd+1))⌉ for spatial dimension sd, nx = ⌈n/nt⌉, so
// the per-axis resolution stays balanced. boundary applies to both axes.
func (g *GeometryXTime) UniformPoints(n int, boundary bool) (*mat.Dense, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrNonPositiveCount, n)
	}
	sd := g.Space.Dim()
	nt := int(math.Ceil(math.Pow(float64(n), 1/float64(sd+1))))
	if nt < 1 {
		nt = 1
	}
	nx := (n + nt - 1) / nt
	xs, err := g.Space.UniformPoints(nx, boundary)
	if err != nil {
		return nil, err
	}
	ts := linspace(g.T0, g.T1, nt, boundary)
	out := mat.NewDense(n, sd+1, nil)
	row := 0
	for _, t := range ts {
		for i := 0; i < nx; i++ {
			if row == n {
				return out, nil
			}
			for j := 0; j < sd; j++ {
				out.Set(row, j, xs.At(i, j))
			}
			out.Set(row, sd, t)
			row++
		}
	}
	return out, nil
}

// RandomPoints samples n points from the space×time product under d.
// An axis-aligned space is sampled jointly with time in one box draw,
// so a low-discrepancy sequence covers all axes together. Any other
// space contributes its own spatial draw, paired with times from a
// separate stream.
func (g *GeometryXTime) RandomPoints(n int, d Distribution) (*mat.Dense, error) {
	if box, ok := g.Space.(boxBounded); ok {
		lo, hi := box.bounds()
		lo = append(append([]float64(nil), lo...), g.T0)
		hi = append(append([]float64(nil), hi...), g.T1)
		return sampleBox(n, lo, hi, d, sourceOrDefault(g.Src))
	}
	xs, err := g.Space.RandomPoints(n, d)
	if err != nil {
		return nil, err
	}
	ts, err := sampleBox(n, []float64{g.T0}, []float64{g.T1}, d, g.timeSource())
	if err != nil {
		return nil, err
	}
	return hstack(xs, ts), nil
}

// UniformBoundaryPoints samples the product of evenly spaced spatial
// boundary points with evenly spaced time slices, truncated to exactly
// n rows, so every boundary point recurs across the whole time span.
// A 1-D space contributes its two endpoints per slice; higher
// dimensions get ⌈√n⌉ boundary points per slice.
func (g *GeometryXTime) UniformBoundaryPoints(n int) (*mat.Dense, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrNonPositiveCount, n)
	}
	sd := g.Space.Dim()
	nx := 2
	if sd > 1 {
		nx = int(math.Ceil(math.Sqrt(float64(n))))
	}
	if nx > n {
		nx = n
	}
	nt := (n + nx - 1) / nx
	xs, err := g.Space.UniformBoundaryPoints(nx)
	if err != nil {
		return nil, err
	}
	ts := linspace(g.T0, g.T1, nt, true)
	out := mat.NewDense(n, sd+1, nil)
	row := 0
	for _, t := range ts {
		for i := 0; i < nx; i++ {
			if row == n {
				return out, nil
			}
			for j := 0; j < sd; j++ {
				out.Set(row, j, xs.At(i, j))
			}
			out.Set(row, sd, t)
			row++
		}
	}
	return out, nil
}

// RandomBoundaryPoints pairs n random spatial boundary points with n
// random times, both under d.
func (g *GeometryXTime) RandomBoundaryPoints(n int, d Distribution) (*mat.Dense, error) {
	xs, err := g.Space.RandomBoundaryPoints(n, d)
	if err != nil {
		return nil, err
	}
	ts, err := sampleBox(n, []float64{g.T0}, []float64{g.T1}, d, g.timeSource())
	if err != nil {
		return nil, err
	}
	return hstack(xs, ts), nil
}

// timeSource returns the source for standalone time draws. The nil
// default is seeded differently from the spatial samplers' fallback, so
// a paired space column and time column never replay the same stream.
func (g *GeometryXTime) timeSource() rand.Source {
	if g.Src != nil {
		return g.Src
	}
	return rand.NewSource(DefaultSeed + 1)
}

// UniformInitialPoints samples n evenly spaced spatial points at t = T0.
func (g *GeometryXTime) UniformInitialPoints(n int) (*mat.Dense, error) {
	xs, err := g.Space.UniformPoints(n, true)
	if err != nil {
		return nil, err
	}
	return g.atInitial(xs), nil
}

// RandomInitialPoints samples n random spatial points at t = T0 under d.
func (g *GeometryXTime) RandomInitialPoints(n int, d Distribution) (*mat.Dense, error) {
	xs, err := g.Space.RandomPoints(n, d)
	if err != nil {
		return nil, err
	}
	return g.atInitial(xs), nil
}

// atInitial appends a constant t = T0 column to spatial points.
func (g *GeometryXTime) atInitial(xs *mat.Dense) *mat.Dense {
	rows, _ := xs.Dims()
	ts := make([]float64, rows)
	for i := range ts {
		ts[i] = g.T0
	}
	return hstack(xs, column(ts))
}
