package geometry_test

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/colloc/geometry"
)

func unitSpaceTime(t *testing.T) *geometry.GeometryXTime {
	t.Helper()
	iv, err := geometry.NewInterval(0, 1)
	if err != nil {
		t.Fatalf("NewInterval error: %v", err)
	}
	g, err := geometry.NewGeometryXTime(iv, 0, 1)
	if err != nil {
		t.Fatalf("NewGeometryXTime error: %v", err)
	}
	return g
}

// TestNewGeometryXTime_Errors rejects nil spaces and degenerate time spans.
func TestNewGeometryXTime_Errors(t *testing.T) {
	iv, _ := geometry.NewInterval(0, 1)
	if _, err := geometry.NewGeometryXTime(nil, 0, 1); !errors.Is(err, geometry.ErrNilGeometry) {
		t.Errorf("nil space error = %v; want ErrNilGeometry", err)
	}
	if _, err := geometry.NewGeometryXTime(iv, 1, 1); !errors.Is(err, geometry.ErrInvalidBounds) {
		t.Errorf("flat time error = %v; want ErrInvalidBounds", err)
	}
}

// TestGeometryXTime_Membership checks boundary and initial-slice predicates.
func TestGeometryXTime_Membership(t *testing.T) {
	g := unitSpaceTime(t)
	if g.Dim() != 2 {
		t.Fatalf("Dim() = %d; want 2", g.Dim())
	}
	if !g.OnBoundary([]float64{0, 0.5}) || !g.OnBoundary([]float64{1, 0.2}) {
		t.Error("spatial endpoints should be on the boundary at any time")
	}
	if g.OnBoundary([]float64{0.5, 0}) {
		t.Error("interior space at t=0 is not on the boundary")
	}
	if !g.OnInitial([]float64{0.5, 0}) {
		t.Error("t=0 should be on the initial slice")
	}
	if g.OnInitial([]float64{0.5, 0.5}) {
		t.Error("t=0.5 is not on the initial slice")
	}
}

// TestGeometryXTime_UniformPoints verifies the balanced product grid.
func TestGeometryXTime_UniformPoints(t *testing.T) {
	g := unitSpaceTime(t)
	pts, err := g.UniformPoints(9, true)
	if err != nil {
		t.Fatalf("UniformPoints error: %v", err)
	}
	rows, cols := pts.Dims()
	if rows != 9 || cols != 2 {
		t.Fatalf("dims = %d×%d; want 9×2", rows, cols)
	}
	// 3 time slices × 3 spatial points, time in the last column.
	wantT := []float64{0, 0, 0, 0.5, 0.5, 0.5, 1, 1, 1}
	for i, w := range wantT {
		if got := pts.At(i, 1); got != w {
			t.Errorf("row %d time = %g; want %g", i, got, w)
		}
	}
}

// TestGeometryXTime_InitialPoints pins every sampled point to t = t0.
func TestGeometryXTime_InitialPoints(t *testing.T) {
	g := unitSpaceTime(t)

	pts, err := g.UniformInitialPoints(5)
	if err != nil {
		t.Fatalf("UniformInitialPoints error: %v", err)
	}
	rows, _ := pts.Dims()
	if rows != 5 {
		t.Fatalf("rows = %d; want 5", rows)
	}
	for i := 0; i < rows; i++ {
		if pts.At(i, 1) != 0 {
			t.Errorf("row %d time = %g; want 0", i, pts.At(i, 1))
		}
		if !g.OnInitial(pts.RawRowView(i)) {
			t.Errorf("row %d not on the initial slice", i)
		}
	}

	rnd, err := g.RandomInitialPoints(8, geometry.Halton)
	if err != nil {
		t.Fatalf("RandomInitialPoints error: %v", err)
	}
	rows, _ = rnd.Dims()
	for i := 0; i < rows; i++ {
		if rnd.At(i, 1) != 0 {
			t.Errorf("random row %d time = %g; want 0", i, rnd.At(i, 1))
		}
	}
}

// TestGeometryXTime_RandomPoints_SpaceTimeIndependent guards against the
// space and time columns replaying one identically seeded stream: under
// default seeding the sampled rows must not collapse onto the x = t
// diagonal.
func TestGeometryXTime_RandomPoints_SpaceTimeIndependent(t *testing.T) {
	g := unitSpaceTime(t)
	for _, d := range []geometry.Distribution{geometry.Pseudo, geometry.Halton, geometry.LatinHypercube} {
		pts, err := g.RandomPoints(16, d)
		if err != nil {
			t.Fatalf("%v: RandomPoints error: %v", d, err)
		}
		rows, _ := pts.Dims()
		diagonal := 0
		for i := 0; i < rows; i++ {
			if pts.At(i, 0) == pts.At(i, 1) {
				diagonal++
			}
		}
		if diagonal == rows {
			t.Errorf("%v: all %d rows sit on the x = t diagonal", d, rows)
		}
	}
}

// opaqueSpace forwards to an interval without exposing its axis bounds,
// exercising the paired space/time sampling path of the product domain.
type opaqueSpace struct{ iv *geometry.Interval }

func (s opaqueSpace) Dim() int                    { return s.iv.Dim() }
func (s opaqueSpace) OnBoundary(x []float64) bool { return s.iv.OnBoundary(x) }
func (s opaqueSpace) UniformPoints(n int, boundary bool) (*mat.Dense, error) {
	return s.iv.UniformPoints(n, boundary)
}
func (s opaqueSpace) RandomPoints(n int, d geometry.Distribution) (*mat.Dense, error) {
	return s.iv.RandomPoints(n, d)
}
func (s opaqueSpace) UniformBoundaryPoints(n int) (*mat.Dense, error) {
	return s.iv.UniformBoundaryPoints(n)
}
func (s opaqueSpace) RandomBoundaryPoints(n int, d geometry.Distribution) (*mat.Dense, error) {
	return s.iv.RandomBoundaryPoints(n, d)
}

// TestGeometryXTime_RandomPoints_PairedSpace covers non-box spaces: the
// paired draw must also keep the time column off the x = t diagonal.
func TestGeometryXTime_RandomPoints_PairedSpace(t *testing.T) {
	iv, err := geometry.NewInterval(0, 1)
	if err != nil {
		t.Fatalf("NewInterval error: %v", err)
	}
	g, err := geometry.NewGeometryXTime(opaqueSpace{iv: iv}, 0, 1)
	if err != nil {
		t.Fatalf("NewGeometryXTime error: %v", err)
	}
	pts, err := g.RandomPoints(16, geometry.Halton)
	if err != nil {
		t.Fatalf("RandomPoints error: %v", err)
	}
	rows, _ := pts.Dims()
	diagonal := 0
	for i := 0; i < rows; i++ {
		if pts.At(i, 0) == pts.At(i, 1) {
			diagonal++
		}
	}
	if diagonal == rows {
		t.Errorf("all %d rows sit on the x = t diagonal", rows)
	}
}

// TestGeometryXTime_BoundaryPoints keeps the spatial part on the boundary.
func TestGeometryXTime_BoundaryPoints(t *testing.T) {
	g := unitSpaceTime(t)

	pts, err := g.UniformBoundaryPoints(4)
	if err != nil {
		t.Fatalf("UniformBoundaryPoints error: %v", err)
	}
	rows, _ := pts.Dims()
	for i := 0; i < rows; i++ {
		if x := pts.At(i, 0); x != 0 && x != 1 {
			t.Errorf("row %d space = %g; want an endpoint", i, x)
		}
		if tm := pts.At(i, 1); tm < 0 || tm > 1 {
			t.Errorf("row %d time = %g; want within [0, 1]", i, tm)
		}
	}

	rnd, err := g.RandomBoundaryPoints(12, geometry.Pseudo)
	if err != nil {
		t.Fatalf("RandomBoundaryPoints error: %v", err)
	}
	rows, _ = rnd.Dims()
	for i := 0; i < rows; i++ {
		if !g.OnBoundary(rnd.RawRowView(i)) {
			t.Errorf("random row %d not on the boundary", i)
		}
	}
}

// TestGeometryXTime_UniformBoundaryPoints_Product pins the product
// construction: each spatial endpoint must recur at every time slice,
// never pair off with only one end of the time span.
func TestGeometryXTime_UniformBoundaryPoints_Product(t *testing.T) {
	g := unitSpaceTime(t)
	pts, err := g.UniformBoundaryPoints(4)
	if err != nil {
		t.Fatalf("UniformBoundaryPoints error: %v", err)
	}
	want := [][2]float64{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	for i, w := range want {
		if pts.At(i, 0) != w[0] || pts.At(i, 1) != w[1] {
			t.Errorf("row %d = (%g, %g); want (%g, %g)",
				i, pts.At(i, 0), pts.At(i, 1), w[0], w[1])
		}
	}
}
