package geometry

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
)

// Rectangle is the axis-aligned 2-D box [Xmin, Xmax] × [Ymin, Ymax].
// Its boundary is the perimeter. Src seeds the random samplers; leave
// nil for a fixed DefaultSeed source.
type Rectangle struct {
	Xmin, Ymin float64
	Xmax, Ymax float64
	Src        rand.Source
}

// NewRectangle builds the box [xmin, xmax] × [ymin, ymax].
// Returns ErrInvalidBounds unless both axes have positive extent.
func NewRectangle(xmin, ymin, xmax, ymax float64) (*Rectangle, error) {
	if !(xmin < xmax) || !(ymin < ymax) {
		return nil, fmt.Errorf("%w: [%g, %g]×[%g, %g]", ErrInvalidBounds, xmin, xmax, ymin, ymax)
	}
	return &Rectangle{Xmin: xmin, Ymin: ymin, Xmax: xmax, Ymax: ymax}, nil
}

// Dim reports the spatial dimension, always 2.
func (r *Rectangle) Dim() int { return 2 }

func (r *Rectangle) bounds() (lo, hi []float64) {
	return []float64{r.Xmin, r.Ymin}, []float64{r.Xmax, r.Ymax}
}

// OnBoundary reports whether (x[0], x[1]) lies on the perimeter.
func (r *Rectangle) OnBoundary(x []float64) bool {
	if len(x) < 2 {
		return false
	}
	inX := x[0] >= r.Xmin-Eps && x[0] <= r.Xmax+Eps
	inY := x[1] >= r.Ymin-Eps && x[1] <= r.Ymax+Eps
	if !inX || !inY {
		return false
	}
	return near(x[0], r.Xmin) || near(x[0], r.Xmax) || near(x[1], r.Ymin) || near(x[1], r.Ymax)
}

// UniformPoints samples a near-square grid of at least n points,
// truncated to exactly n rows in row-major (y-outer) order. The per-axis
// counts are balanced by the aspect ratio of the box. With
// boundary=false every grid line is strictly interior.
func (r *Rectangle) UniformPoints(n int, boundary bool) (*mat.Dense, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrNonPositiveCount, n)
	}
	w, h := r.Xmax-r.Xmin, r.Ymax-r.Ymin
	nx := int(math.Ceil(math.Sqrt(float64(n) * w / h)))
	if nx < 1 {
		nx = 1
	}
	ny := (n + nx - 1) / nx
	xs := linspace(r.Xmin, r.Xmax, nx, boundary)
	ys := linspace(r.Ymin, r.Ymax, ny, boundary)
	out := mat.NewDense(n, 2, nil)
	row := 0
	for _, y := range ys {
		for _, x := range xs {
			if row == n {
				return out, nil
			}
			out.Set(row, 0, x)
			out.Set(row, 1, y)
			row++
		}
	}
	return out, nil
}

// RandomPoints samples n points from the box under d.
func (r *Rectangle) RandomPoints(n int, d Distribution) (*mat.Dense, error) {
	return sampleBox(n,
		[]float64{r.Xmin, r.Ymin},
		[]float64{r.Xmax, r.Ymax},
		d, sourceOrDefault(r.Src))
}

// UniformBoundaryPoints walks the perimeter counter-clockwise from
// (Xmin, Ymin) with even spacing L/n, where L is the perimeter length.
func (r *Rectangle) UniformBoundaryPoints(n int) (*mat.Dense, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrNonPositiveCount, n)
	}
	l := r.perimeter()
	out := mat.NewDense(n, 2, nil)
	for i := 0; i < n; i++ {
		x, y := r.perimeterPoint(float64(i) * l / float64(n))
		out.Set(i, 0, x)
		out.Set(i, 1, y)
	}
	return out, nil
}

// RandomBoundaryPoints samples n arc-length positions on the perimeter
// under d and maps them to coordinates.
func (r *Rectangle) RandomBoundaryPoints(n int, d Distribution) (*mat.Dense, error) {
	u, err := sampleBox(n, []float64{0}, []float64{r.perimeter()}, d, sourceOrDefault(r.Src))
	if err != nil {
		return nil, err
	}
	out := mat.NewDense(n, 2, nil)
	for i := 0; i < n; i++ {
		x, y := r.perimeterPoint(u.At(i, 0))
		out.Set(i, 0, x)
		out.Set(i, 1, y)
	}
	return out, nil
}

func (r *Rectangle) perimeter() float64 {
	return 2 * ((r.Xmax - r.Xmin) + (r.Ymax - r.Ymin))
}

// perimeterPoint maps arc length s ∈ [0, L) to perimeter coordinates,
// walking bottom → right → top → left from (Xmin, Ymin).
func (r *Rectangle) perimeterPoint(s float64) (x, y float64) {
	w, h := r.Xmax-r.Xmin, r.Ymax-r.Ymin
	switch {
	case s < w:
		return r.Xmin + s, r.Ymin
	case s < w+h:
		return r.Xmax, r.Ymin + (s - w)
	case s < 2*w+h:
		return r.Xmax - (s - w - h), r.Ymax
	default:
		return r.Xmin, r.Ymax - (s - 2*w - h)
	}
}
