// Package loss assembles the composite residual loss of a
// physics-informed learning problem from a collocation dataset and
// network outputs.
//
// 🚀 What is the assembler?
//
//	Given the dataset's stacked point array, its segment ledger, and the
//	network outputs at those rows, the Assembler emits one ordered list
//	of scalar losses:
//	  1. one loss per PDE residual component
//	  2. one loss per condition, in condition order
//
//	The list has the same length and order under both phases:
//	  • Train — residuals on the rows after the condition segments,
//	    conditions on their own [Start, End) slices
//	  • Test  — residuals on the whole evaluation array, exact-zero
//	    placeholders for the conditions
//
// ✨ Key features:
//   - explicit Phase dispatch: one pure branch per call, no conditional
//     graph construction
//   - two residual signatures: ResidualFunc (inputs, outputs) evaluated
//     once, or PointResidualFunc (inputs, outputs, points) re-evaluated
//     with each phase's concrete point array
//   - metrics with shape validation at the boundary: MSE, MAE, MaxAbsError
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/colloc/loss"
//
//	asm, err := loss.New(loss.Config{
//	  Source:   ds, // *dataset.Dataset
//	  Residual: residual,
//	  Metric:   loss.MSE,
//	})
//	losses, err := asm.Losses(loss.Train, x, outputs)
//
// Every surfaced error aborts the current step; nothing is retried or
// silently continued.
package loss
