package loss

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/colloc/bc"
	"github.com/katalvlaran/colloc/dataset"
)

// Source is the narrow view of a collocation dataset the assembler
// needs: the cached point arrays, the segment ledger, and the condition
// sequence in segment order. *dataset.Dataset satisfies it.
type Source interface {
	TrainBatch() (x, y *mat.Dense, err error)
	TestBatch() (x, y *mat.Dense, err error)
	Segments() []dataset.Segment
	Conditions() []bc.Condition
}

// Config configures an Assembler.
//
// Exactly one of Residual and ResidualAt may be set; both may be nil
// only when the source carries at least one condition. Metric defaults
// to MSE.
type Config struct {
	Source     Source
	Residual   ResidualFunc
	ResidualAt PointResidualFunc
	Metric     Metric
}

// Assembler turns network outputs into one ordered list of scalar
// losses: every residual component first, then one loss per condition,
// in condition order. The same order and length hold under both phases,
// so downstream weighting and aggregation stay phase-agnostic.
type Assembler struct {
	src        Source
	residual   ResidualFunc
	residualAt PointResidualFunc
	conds      []bc.Condition
	metric     Metric
}

// New validates cfg and builds an Assembler. Conditions and their order
// come from the source, never separately, so the loss list can not drift
// from the dataset's segment ledger.
func New(cfg Config) (*Assembler, error) {
	if cfg.Source == nil {
		return nil, ErrNilSource
	}
	if cfg.Residual != nil && cfg.ResidualAt != nil {
		return nil, ErrBothResiduals
	}
	conds := cfg.Source.Conditions()
	if cfg.Residual == nil && cfg.ResidualAt == nil && len(conds) == 0 {
		return nil, ErrNoTerms
	}
	metric := cfg.Metric
	if metric == nil {
		metric = MSE
	}
	return &Assembler{
		src:        cfg.Source,
		residual:   cfg.Residual,
		residualAt: cfg.ResidualAt,
		conds:      conds,
		metric:     metric,
	}, nil
}

// Losses computes the loss list for one phase. inputs is the point array
// the network consumed, outputs the network values at those rows. The
// phase selects one of two pure branches; no state is shared between
// them beyond the dataset's cached arrays.
func (a *Assembler) Losses(phase Phase, inputs, outputs *mat.Dense) ([]float64, error) {
	switch phase {
	case Train:
		return a.trainLosses(inputs, outputs)
	case Test:
		return a.testLosses(inputs, outputs)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownPhase, int(phase))
	}
}

// trainLosses restricts every residual component to the rows after the
// condition segments, then evaluates every condition on its own
// [Start, End) slice, each against an all-zero target.
func (a *Assembler) trainLosses(inputs, outputs *mat.Dense) ([]float64, error) {
	trainX, _, err := a.src.TrainBatch()
	if err != nil {
		return nil, err
	}
	segs := a.src.Segments()
	if segs == nil {
		return nil, ErrNoSegments
	}
	prefix := 0
	if len(segs) > 0 {
		prefix = segs[len(segs)-1].End
	}
	rows, _ := outputs.Dims()
	if prefix > rows {
		return nil, fmt.Errorf("%w: %d segment rows exceed %d output rows", ErrShapeMismatch, prefix, rows)
	}

	comps, err := a.eval(inputs, outputs, trainX)
	if err != nil {
		return nil, err
	}
	out := make([]float64, 0, len(comps)+len(a.conds))
	for i, fi := range comps {
		if err := checkComponent(i, fi, rows); err != nil {
			return nil, err
		}
		tail := sliceTail(fi, prefix)
		l, err := a.metric(zeros(rows-prefix), tail)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	for i, c := range a.conds {
		e, err := c.Error(trainX, inputs, outputs, segs[i].Start, segs[i].End)
		if err != nil {
			return nil, fmt.Errorf("%w: condition %d: %w", ErrConditionFailed, i, err)
		}
		n := 0
		if e != nil {
			n = e.Len()
		}
		l, err := a.metric(zeros(n), e)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, nil
}

// testLosses evaluates every residual component over the entire
// evaluation array and emits one exact-zero placeholder per condition —
// conditions are not checked at evaluation time, but their slots keep
// the list length and order identical to the training phase.
func (a *Assembler) testLosses(inputs, outputs *mat.Dense) ([]float64, error) {
	testX, _, err := a.src.TestBatch()
	if err != nil {
		return nil, err
	}
	rows, _ := outputs.Dims()
	comps, err := a.eval(inputs, outputs, testX)
	if err != nil {
		return nil, err
	}
	out := make([]float64, 0, len(comps)+len(a.conds))
	for i, fi := range comps {
		if err := checkComponent(i, fi, rows); err != nil {
			return nil, err
		}
		l, err := a.metric(zeros(rows), fi)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	for range a.conds {
		out = append(out, 0)
	}
	return out, nil
}

// eval runs whichever residual signature is configured. ResidualAt
// receives the phase's concrete point array; Residual is
// phase-independent. With neither configured the component list is empty.
func (a *Assembler) eval(inputs, outputs, points *mat.Dense) ([]*mat.VecDense, error) {
	var (
		comps []*mat.VecDense
		err   error
	)
	switch {
	case a.residualAt != nil:
		comps, err = a.residualAt(inputs, outputs, points)
	case a.residual != nil:
		comps, err = a.residual(inputs, outputs)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrResidualFailed, err)
	}
	return comps, nil
}

// checkComponent validates that component i carries one value per output row.
func checkComponent(i int, fi *mat.VecDense, rows int) error {
	n := 0
	if fi != nil {
		n = fi.Len()
	}
	if n != rows {
		return fmt.Errorf("%w: residual component %d has %d values for %d rows", ErrShapeMismatch, i, n, rows)
	}
	return nil
}

// zeros returns an all-zero target of length n, nil when n == 0.
func zeros(n int) *mat.VecDense {
	if n == 0 {
		return nil
	}
	return mat.NewVecDense(n, nil)
}

// sliceTail returns the rows of v from index from on, nil when empty.
func sliceTail(v *mat.VecDense, from int) *mat.VecDense {
	if v == nil || from >= v.Len() {
		return nil
	}
	return v.SliceVec(from, v.Len()).(*mat.VecDense)
}
