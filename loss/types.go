// Package loss: phases, residual signatures, metrics, and sentinel
// errors for the loss subpackage of github.com/katalvlaran/colloc.
package loss

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors for loss assembly.
var (
	// ErrNilSource indicates an assembler was built without a dataset source.
	ErrNilSource = errors.New("loss: dataset source must be non-nil")
	// ErrBothResiduals indicates both residual signatures were configured.
	ErrBothResiduals = errors.New("loss: configure Residual or ResidualAt, not both")
	// ErrNoTerms indicates no residual function and no conditions — nothing to assemble.
	ErrNoTerms = errors.New("loss: residual function and condition list are both empty")
	// ErrNoSegments indicates the segment ledger is absent: the dataset
	// never generated its training array.
	ErrNoSegments = errors.New("loss: segment ledger absent; generate training data first")
	// ErrUnknownPhase indicates a Phase value outside {Train, Test}.
	ErrUnknownPhase = errors.New("loss: unknown phase")
	// ErrShapeMismatch indicates residual or target shapes that do not agree.
	ErrShapeMismatch = errors.New("loss: shape mismatch")
	// ErrConditionFailed wraps a condition error-function failure.
	ErrConditionFailed = errors.New("loss: condition error evaluation failed")
	// ErrResidualFailed wraps a residual-function failure.
	ErrResidualFailed = errors.New("loss: residual evaluation failed")
)

// Phase selects which loss branch the assembler evaluates. It replaces
// runtime graph conditionals with explicit dispatch: exactly one pure
// branch runs per call, and both branches produce loss lists of
// identical length and order.
type Phase int

const (
	// Train evaluates residuals on the post-segment rows and every
	// condition on its own segment.
	Train Phase = iota
	// Test evaluates residuals on the whole evaluation array and emits a
	// zero placeholder per condition.
	Test
)

// String returns "train" or "test".
func (p Phase) String() string {
	switch p {
	case Train:
		return "train"
	case Test:
		return "test"
	default:
		return "unknown"
	}
}

// ResidualFunc evaluates the PDE residual components from the network
// inputs and outputs alone. It is phase-independent: the assembler
// evaluates it once per call and restricts rows as the phase demands.
// Each component must hold one value per output row.
type ResidualFunc func(inputs, outputs *mat.Dense) ([]*mat.VecDense, error)

// PointResidualFunc evaluates the PDE residual components with access to
// the concrete point array, which differs between the training and test
// phases; the assembler re-evaluates it per phase with that phase's
// points. Each component must hold one value per point row.
type PointResidualFunc func(inputs, outputs, points *mat.Dense) ([]*mat.VecDense, error)

// Metric reduces a pointwise error vector against its target to one
// scalar loss. Implementations must reject length disagreements with
// ErrShapeMismatch and treat nil vectors as empty.
type Metric func(target, actual *mat.VecDense) (float64, error)
