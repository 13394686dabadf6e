package loss_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/colloc/bc"
	"github.com/katalvlaran/colloc/dataset"
	"github.com/katalvlaran/colloc/geometry"
	"github.com/katalvlaran/colloc/loss"
)

// newUnitDataset builds a one-condition dataset on [0, 1] with the
// layout [2 boundary rows, 10 interior rows].
func newUnitDataset(t *testing.T) *dataset.Dataset {
	t.Helper()
	iv, err := geometry.NewInterval(0, 1)
	require.NoError(t, err)
	cond, err := bc.NewDirichlet(iv, func(x []float64) float64 { return 0 }, nil)
	require.NoError(t, err)
	opts := dataset.DefaultOptions()
	opts.NumDomain = 10
	opts.NumBoundary = 2
	ds, err := dataset.New(iv, opts, cond)
	require.NoError(t, err)
	return ds
}

// constantResidual reports one component holding c at every output row.
func constantResidual(c float64) loss.ResidualFunc {
	return func(inputs, outputs *mat.Dense) ([]*mat.VecDense, error) {
		rows, _ := outputs.Dims()
		v := mat.NewVecDense(rows, nil)
		for i := 0; i < rows; i++ {
			v.SetVec(i, c)
		}
		return []*mat.VecDense{v}, nil
	}
}

func TestAssembler_TrainLosses(t *testing.T) {
	ds := newUnitDataset(t)
	asm, err := loss.New(loss.Config{Source: ds, Residual: constantResidual(2)})
	require.NoError(t, err)

	trainX, _, err := ds.TrainBatch()
	require.NoError(t, err)
	rows, _ := trainX.Dims()
	require.Equal(t, 12, rows)

	// The two condition rows carry output 3 against a zero target; the
	// residual holds 2 on every of the ten interior rows.
	outputs := mat.NewDense(rows, 1, nil)
	outputs.Set(0, 0, 3)
	outputs.Set(1, 0, 3)

	losses, err := asm.Losses(loss.Train, trainX, outputs)
	require.NoError(t, err)
	require.Len(t, losses, 2)
	assert.InDelta(t, 4.0, losses[0], 1e-12)
	assert.InDelta(t, 9.0, losses[1], 1e-12)
}

func TestAssembler_TestLosses(t *testing.T) {
	ds := newUnitDataset(t)
	asm, err := loss.New(loss.Config{Source: ds, Residual: constantResidual(2)})
	require.NoError(t, err)

	testX, _, err := ds.TestBatch()
	require.NoError(t, err)
	rows, _ := testX.Dims()
	require.Equal(t, 10, rows)

	// Condition slots stay in the list but hold exactly zero, whatever
	// the outputs are.
	outputs := mat.NewDense(rows, 1, nil)
	for i := 0; i < rows; i++ {
		outputs.Set(i, 0, 7)
	}

	losses, err := asm.Losses(loss.Test, testX, outputs)
	require.NoError(t, err)
	require.Len(t, losses, 2)
	assert.InDelta(t, 4.0, losses[0], 1e-12)
	assert.Zero(t, losses[1])
}

func TestAssembler_PointResidual(t *testing.T) {
	ds := newUnitDataset(t)

	var gotPoints *mat.Dense
	resAt := func(inputs, outputs, points *mat.Dense) ([]*mat.VecDense, error) {
		gotPoints = points
		rows, _ := outputs.Dims()
		return []*mat.VecDense{mat.NewVecDense(rows, nil)}, nil
	}
	asm, err := loss.New(loss.Config{Source: ds, ResidualAt: resAt})
	require.NoError(t, err)

	trainX, _, err := ds.TrainBatch()
	require.NoError(t, err)
	rows, _ := trainX.Dims()
	_, err = asm.Losses(loss.Train, trainX, mat.NewDense(rows, 1, nil))
	require.NoError(t, err)
	assert.Same(t, trainX, gotPoints)

	testX, _, err := ds.TestBatch()
	require.NoError(t, err)
	rows, _ = testX.Dims()
	_, err = asm.Losses(loss.Test, testX, mat.NewDense(rows, 1, nil))
	require.NoError(t, err)
	assert.Same(t, testX, gotPoints)
}

func TestAssembler_ConditionsOnly(t *testing.T) {
	ds := newUnitDataset(t)
	asm, err := loss.New(loss.Config{Source: ds})
	require.NoError(t, err)

	trainX, _, err := ds.TrainBatch()
	require.NoError(t, err)
	rows, _ := trainX.Dims()
	outputs := mat.NewDense(rows, 1, nil)
	outputs.Set(0, 0, 3)
	outputs.Set(1, 0, 3)

	losses, err := asm.Losses(loss.Train, trainX, outputs)
	require.NoError(t, err)
	require.Len(t, losses, 1)
	assert.InDelta(t, 9.0, losses[0], 1e-12)

	testX, _, err := ds.TestBatch()
	require.NoError(t, err)
	rows, _ = testX.Dims()
	losses, err = asm.Losses(loss.Test, testX, mat.NewDense(rows, 1, nil))
	require.NoError(t, err)
	assert.Equal(t, []float64{0}, losses)
}

func TestAssembler_MetricOverride(t *testing.T) {
	ds := newUnitDataset(t)
	asm, err := loss.New(loss.Config{Source: ds, Residual: constantResidual(2), Metric: loss.MAE})
	require.NoError(t, err)

	trainX, _, err := ds.TrainBatch()
	require.NoError(t, err)
	rows, _ := trainX.Dims()
	outputs := mat.NewDense(rows, 1, nil)
	outputs.Set(0, 0, 3)
	outputs.Set(1, 0, 3)

	losses, err := asm.Losses(loss.Train, trainX, outputs)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, losses[0], 1e-12)
	assert.InDelta(t, 3.0, losses[1], 1e-12)
}

func TestNew_Errors(t *testing.T) {
	ds := newUnitDataset(t)

	_, err := loss.New(loss.Config{})
	assert.True(t, errors.Is(err, loss.ErrNilSource))

	_, err = loss.New(loss.Config{
		Source:     ds,
		Residual:   constantResidual(0),
		ResidualAt: func(inputs, outputs, points *mat.Dense) ([]*mat.VecDense, error) { return nil, nil },
	})
	assert.True(t, errors.Is(err, loss.ErrBothResiduals))

	iv, err := geometry.NewInterval(0, 1)
	require.NoError(t, err)
	opts := dataset.DefaultOptions()
	opts.NumDomain = 5
	bare, err := dataset.New(iv, opts)
	require.NoError(t, err)
	_, err = loss.New(loss.Config{Source: bare})
	assert.True(t, errors.Is(err, loss.ErrNoTerms))
}

func TestAssembler_UnknownPhase(t *testing.T) {
	ds := newUnitDataset(t)
	asm, err := loss.New(loss.Config{Source: ds})
	require.NoError(t, err)

	trainX, _, err := ds.TrainBatch()
	require.NoError(t, err)
	rows, _ := trainX.Dims()
	_, err = asm.Losses(loss.Phase(9), trainX, mat.NewDense(rows, 1, nil))
	assert.True(t, errors.Is(err, loss.ErrUnknownPhase))
}

func TestAssembler_ResidualShapeMismatch(t *testing.T) {
	ds := newUnitDataset(t)
	short := func(inputs, outputs *mat.Dense) ([]*mat.VecDense, error) {
		return []*mat.VecDense{mat.NewVecDense(3, nil)}, nil
	}
	asm, err := loss.New(loss.Config{Source: ds, Residual: short})
	require.NoError(t, err)

	trainX, _, err := ds.TrainBatch()
	require.NoError(t, err)
	rows, _ := trainX.Dims()
	_, err = asm.Losses(loss.Train, trainX, mat.NewDense(rows, 1, nil))
	assert.True(t, errors.Is(err, loss.ErrShapeMismatch))
}

func TestAssembler_OutputsShorterThanSegments(t *testing.T) {
	ds := newUnitDataset(t)
	asm, err := loss.New(loss.Config{Source: ds})
	require.NoError(t, err)

	trainX, _, err := ds.TrainBatch()
	require.NoError(t, err)
	_, err = asm.Losses(loss.Train, trainX, mat.NewDense(1, 1, nil))
	assert.True(t, errors.Is(err, loss.ErrShapeMismatch))
}

func TestAssembler_ResidualFailure(t *testing.T) {
	ds := newUnitDataset(t)
	boom := errors.New("divergent stencil")
	failing := func(inputs, outputs *mat.Dense) ([]*mat.VecDense, error) { return nil, boom }
	asm, err := loss.New(loss.Config{Source: ds, Residual: failing})
	require.NoError(t, err)

	trainX, _, err := ds.TrainBatch()
	require.NoError(t, err)
	rows, _ := trainX.Dims()
	_, err = asm.Losses(loss.Train, trainX, mat.NewDense(rows, 1, nil))
	assert.True(t, errors.Is(err, loss.ErrResidualFailed))
	assert.True(t, errors.Is(err, boom))
}

func TestAssembler_ConditionFailure(t *testing.T) {
	iv, err := geometry.NewInterval(0, 1)
	require.NoError(t, err)
	boom := errors.New("flux unavailable")
	op, err := bc.NewOperator(iv, func(points, inputs, outputs *mat.Dense, beg, end int) (*mat.VecDense, error) {
		return nil, boom
	}, nil)
	require.NoError(t, err)
	opts := dataset.DefaultOptions()
	opts.NumDomain = 10
	opts.NumBoundary = 2
	ds, err := dataset.New(iv, opts, op)
	require.NoError(t, err)

	asm, err := loss.New(loss.Config{Source: ds})
	require.NoError(t, err)
	trainX, _, err := ds.TrainBatch()
	require.NoError(t, err)
	rows, _ := trainX.Dims()
	_, err = asm.Losses(loss.Train, trainX, mat.NewDense(rows, 1, nil))
	assert.True(t, errors.Is(err, loss.ErrConditionFailed))
	assert.True(t, errors.Is(err, boom))
}

// ledgerlessSource satisfies Source but never generates a segment
// ledger, the state a dataset is in before its first training batch.
type ledgerlessSource struct{ x *mat.Dense }

func (s ledgerlessSource) TrainBatch() (*mat.Dense, *mat.Dense, error) { return s.x, nil, nil }
func (s ledgerlessSource) TestBatch() (*mat.Dense, *mat.Dense, error)  { return s.x, nil, nil }
func (s ledgerlessSource) Segments() []dataset.Segment                 { return nil }
func (s ledgerlessSource) Conditions() []bc.Condition                  { return nil }

func TestAssembler_NoSegments(t *testing.T) {
	src := ledgerlessSource{x: mat.NewDense(4, 1, nil)}
	asm, err := loss.New(loss.Config{Source: src, Residual: constantResidual(1)})
	require.NoError(t, err)

	_, err = asm.Losses(loss.Train, src.x, mat.NewDense(4, 1, nil))
	assert.True(t, errors.Is(err, loss.ErrNoSegments))
}

func TestPhase_String(t *testing.T) {
	assert.Equal(t, "train", loss.Train.String())
	assert.Equal(t, "test", loss.Test.String())
	assert.Equal(t, "unknown", loss.Phase(9).String())
}
