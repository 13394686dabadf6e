package dataset

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/colloc/bc"
	"github.com/katalvlaran/colloc/geometry"
)

// Dataset produces and caches the stacked collocation point arrays of
// one physics-informed learning problem.
//
// The training array is laid out as
//
//	[condition segments..., anchors, initial points, domain points]
//
// where each condition's segment holds the rows its own selector picked
// from the candidate array, and the segment ledger (NumBCs / Segments)
// records the partition. Boundary samples exist only as selector
// candidates; the rows after the segments are exactly the anchor,
// initial and domain points, which is also what the test array reuses
// when no independent test count is configured.
//
// Generation is memoized: TrainBatch and TestBatch run their sampling
// body once and then return the cached pair until InvalidateTrain,
// InvalidateTest or Regenerate clears them. AddAnchors is the one
// mutating exception: it rebuilds the condition segments against the
// new anchors plus the previously sampled points, without resampling.
//
// A Dataset is not safe for concurrent use; all preparation is
// single-threaded by design.
type Dataset struct {
	geom     geometry.Geometry
	timeGeom geometry.TimeGeometry // non-nil only for time-augmented datasets
	conds    []bc.Condition
	opts     Options

	anchors *mat.Dense
	residue *mat.Dense // anchors ++ initial ++ domain from the last generation, untagged
	numBCs  []int
	segs    []Segment

	train cached
	test  cached
	rng   *rand.Rand
}

// New builds a stationary collocation dataset and eagerly performs one
// generation of training and test data. Conditions are optional; their
// order defines segment order in the stacked array.
func New(geom geometry.Geometry, opts Options, conds ...bc.Condition) (*Dataset, error) {
	if opts.NumInitial != 0 {
		return nil, ErrInitialWithoutTime
	}
	return newDataset(geom, nil, opts, conds)
}

// NewTime builds a time-augmented collocation dataset, which additionally
// samples NumInitial points on the initial-time slice, and eagerly
// performs one generation of training and test data.
func NewTime(geom geometry.TimeGeometry, opts Options, conds ...bc.Condition) (*Dataset, error) {
	if geom == nil {
		return nil, ErrNilGeometry
	}
	return newDataset(geom, geom, opts, conds)
}

func newDataset(geom geometry.Geometry, timeGeom geometry.TimeGeometry, opts Options, conds []bc.Condition) (*Dataset, error) {
	if geom == nil {
		return nil, ErrNilGeometry
	}
	if opts.NumDomain < 0 || opts.NumBoundary < 0 || opts.NumInitial < 0 || opts.NumTest < 0 {
		return nil, ErrNegativeCount
	}
	if opts.TrainScheme != Uniform && opts.TrainScheme != Quasirandom {
		return nil, fmt.Errorf("%w: %d", ErrUnknownScheme, int(opts.TrainScheme))
	}
	d := &Dataset{
		geom:     geom,
		timeGeom: timeGeom,
		conds:    append([]bc.Condition(nil), conds...),
		opts:     opts,
		rng:      rand.New(rand.NewSource(opts.Seed)),
	}
	if opts.Anchors != nil {
		if _, cols := opts.Anchors.Dims(); cols != geom.Dim() {
			return nil, fmt.Errorf("%w: got %d columns, want %d", ErrAnchorDim, cols, geom.Dim())
		}
		d.anchors = mat.DenseCopyOf(opts.Anchors)
	}
	if _, _, err := d.TrainBatch(); err != nil {
		return nil, err
	}
	if _, _, err := d.TestBatch(); err != nil {
		return nil, err
	}
	return d, nil
}

// TrainBatch returns the stacked training points and, when a Solution is
// configured, the target values at those points (nil otherwise). The
// sampling body runs only when no cached pair exists; repeated calls
// return the identical cached arrays.
func (d *Dataset) TrainBatch() (x, y *mat.Dense, err error) {
	if d.train.ok() {
		return d.train.x, d.train.y, nil
	}
	sel, residue, err := d.sampleTrain()
	if err != nil {
		return nil, nil, err
	}
	d.residue = residue
	return d.assemble(sel)
}

// TestBatch returns the evaluation points and targets. With NumTest == 0
// it reuses the training suffix after the condition segments — exactly
// the anchor/initial/domain rows, never condition rows. With NumTest > 0
// it samples that many uniform points independently. Memoized like
// TrainBatch.
func (d *Dataset) TestBatch() (x, y *mat.Dense, err error) {
	if d.test.ok() {
		return d.test.x, d.test.y, nil
	}
	if d.opts.NumTest == 0 {
		tx, ty, err := d.TrainBatch()
		if err != nil {
			return nil, nil, err
		}
		skip := d.prefixRows()
		rows, cols := tx.Dims()
		if skip >= rows {
			return nil, nil, ErrEmptyTrainingSet
		}
		x = tx.Slice(skip, rows, 0, cols).(*mat.Dense)
		if ty != nil {
			_, yc := ty.Dims()
			y = ty.Slice(skip, rows, 0, yc).(*mat.Dense)
		}
		d.test.set(x, y)
		return x, y, nil
	}
	pts, err := d.geom.UniformPoints(d.opts.NumTest, true)
	if err != nil {
		return nil, nil, err
	}
	x = pts
	if d.opts.AuxTag {
		x = oneHotTag(pts, d.rng.Intn)
	}
	if d.opts.Solution != nil {
		y = d.opts.Solution(pts)
	}
	d.test.set(x, y)
	return x, y, nil
}

// AddAnchors prepends points to the anchor set and rebuilds the training
// array: the condition selectors re-run against the new anchors plus the
// previously generated anchor/initial/domain rows, which are reused, not
// resampled. The segment ledger and the targets are recomputed. The test
// cache is left untouched.
func (d *Dataset) AddAnchors(points *mat.Dense) error {
	if points == nil {
		return ErrNilAnchors
	}
	if _, cols := points.Dims(); cols != d.geom.Dim() {
		return fmt.Errorf("%w: got %d columns, want %d", ErrAnchorDim, cols, d.geom.Dim())
	}
	// The previous residue must exist before it can be reused.
	if !d.train.ok() {
		if _, _, err := d.TrainBatch(); err != nil {
			return err
		}
	}
	fresh := mat.DenseCopyOf(points)
	d.anchors = vstack(fresh, d.anchors)
	d.residue = vstack(fresh, d.residue)
	d.train.clear()
	_, _, err := d.assemble(d.residue)
	return err
}

// InvalidateTrain clears the cached training pair; the next TrainBatch
// resamples and recomputes the segment ledger.
func (d *Dataset) InvalidateTrain() { d.train.clear() }

// InvalidateTest clears the cached test pair.
func (d *Dataset) InvalidateTest() { d.test.clear() }

// Regenerate clears both caches and immediately performs a fresh
// generation of training and test data.
func (d *Dataset) Regenerate() error {
	d.train.clear()
	d.test.clear()
	d.residue = nil
	if _, _, err := d.TrainBatch(); err != nil {
		return err
	}
	_, _, err := d.TestBatch()
	return err
}

// NumBCs returns a copy of the segment-size ledger: one row count per
// condition, in condition order, valid for the current training array.
func (d *Dataset) NumBCs() []int {
	return append([]int(nil), d.numBCs...)
}

// Segments returns a copy of the condition row ranges of the current
// training array. Nil until the first generation.
func (d *Dataset) Segments() []Segment {
	if d.segs == nil {
		return nil
	}
	// A generated but condition-free ledger must stay distinguishable
	// from a never-generated one, so the copy is never nil here.
	out := make([]Segment, len(d.segs))
	copy(out, d.segs)
	return out
}

// Conditions returns a copy of the condition sequence, in segment order.
func (d *Dataset) Conditions() []bc.Condition {
	return append([]bc.Condition(nil), d.conds...)
}

// Geometry returns the dataset's domain.
func (d *Dataset) Geometry() geometry.Geometry { return d.geom }

// Anchors returns the current anchor points, nil when none are set.
func (d *Dataset) Anchors() *mat.Dense { return d.anchors }

// prefixRows reports the total rows of the condition segments.
func (d *Dataset) prefixRows() int {
	if len(d.segs) == 0 {
		return 0
	}
	return d.segs[len(d.segs)-1].End
}

// sampleTrain draws one fresh set of candidates. sel is the selection
// array offered to the condition selectors (anchors, initial, boundary,
// domain, in that order); residue is the same stack without the boundary
// block — the rows that survive into the final training array.
func (d *Dataset) sampleTrain() (sel, residue *mat.Dense, err error) {
	var domain, boundary, initial *mat.Dense
	if d.opts.NumDomain > 0 {
		if domain, err = d.domainPoints(d.opts.NumDomain); err != nil {
			return nil, nil, err
		}
	}
	if d.opts.NumBoundary > 0 {
		if boundary, err = d.boundaryPoints(d.opts.NumBoundary); err != nil {
			return nil, nil, err
		}
	}
	if d.opts.NumInitial > 0 {
		if initial, err = d.initialPoints(d.opts.NumInitial); err != nil {
			return nil, nil, err
		}
	}
	sel = vstack(d.anchors, initial, boundary, domain)
	residue = vstack(d.anchors, initial, domain)
	return sel, residue, nil
}

// assemble builds the final training pair from the current residue: the
// condition prefix selected from candidates is stacked ahead of the
// residue, the ledger is recomputed, and the optional tag and targets
// are derived from the untagged stack.
func (d *Dataset) assemble(candidates *mat.Dense) (x, y *mat.Dense, err error) {
	prefix, counts, err := d.conditionPrefix(candidates)
	if err != nil {
		return nil, nil, err
	}
	raw := vstack(prefix, d.residue)
	if raw == nil {
		return nil, nil, ErrEmptyTrainingSet
	}
	d.numBCs = counts
	d.segs = buildSegments(counts)
	x = raw
	if d.opts.AuxTag {
		x = oneHotTag(raw, d.rng.Intn)
	}
	if d.opts.Solution != nil {
		y = d.opts.Solution(raw)
	}
	d.train.set(x, y)
	return x, y, nil
}

// conditionPrefix asks every condition for its collocation points from
// candidates, records the per-condition counts, and returns the stacked
// prefix. The returned counts always satisfy sum(counts) == rows(prefix).
func (d *Dataset) conditionPrefix(candidates *mat.Dense) (*mat.Dense, []int, error) {
	counts := make([]int, len(d.conds))
	var prefix *mat.Dense
	for i, c := range d.conds {
		pts, err := c.CollocationPoints(candidates)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: condition %d: %w", ErrConditionFailed, i, err)
		}
		if pts != nil {
			rows, _ := pts.Dims()
			counts[i] = rows
		}
		prefix = vstack(prefix, pts)
	}
	return prefix, counts, nil
}

func (d *Dataset) domainPoints(n int) (*mat.Dense, error) {
	if d.opts.TrainScheme == Uniform {
		return d.geom.UniformPoints(n, false)
	}
	return d.geom.RandomPoints(n, geometry.Halton)
}

func (d *Dataset) boundaryPoints(n int) (*mat.Dense, error) {
	if d.opts.TrainScheme == Uniform {
		return d.geom.UniformBoundaryPoints(n)
	}
	return d.geom.RandomBoundaryPoints(n, geometry.Halton)
}

func (d *Dataset) initialPoints(n int) (*mat.Dense, error) {
	if d.opts.TrainScheme == Uniform {
		return d.timeGeom.UniformInitialPoints(n)
	}
	return d.timeGeom.RandomInitialPoints(n, geometry.Halton)
}
