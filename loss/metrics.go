package loss

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// MSE is the mean squared error metric. Empty vectors reduce to 0.
func MSE(target, actual *mat.VecDense) (float64, error) {
	n, err := checkLens(target, actual)
	if err != nil || n == 0 {
		return 0, err
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		d := actual.AtVec(i) - target.AtVec(i)
		sum += d * d
	}
	return sum / float64(n), nil
}

// MAE is the mean absolute error metric. Empty vectors reduce to 0.
func MAE(target, actual *mat.VecDense) (float64, error) {
	n, err := checkLens(target, actual)
	if err != nil || n == 0 {
		return 0, err
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += math.Abs(actual.AtVec(i) - target.AtVec(i))
	}
	return sum / float64(n), nil
}

// MaxAbsError is the worst-case pointwise error metric. Empty vectors
// reduce to 0.
func MaxAbsError(target, actual *mat.VecDense) (float64, error) {
	n, err := checkLens(target, actual)
	if err != nil || n == 0 {
		return 0, err
	}
	worst := 0.0
	for i := 0; i < n; i++ {
		if d := math.Abs(actual.AtVec(i) - target.AtVec(i)); d > worst {
			worst = d
		}
	}
	return worst, nil
}

// checkLens validates that target and actual agree in length, treating
// nil as length 0, and returns the common length.
func checkLens(target, actual *mat.VecDense) (int, error) {
	tn, an := 0, 0
	if target != nil {
		tn = target.Len()
	}
	if actual != nil {
		an = actual.Len()
	}
	if tn != an {
		return 0, fmt.Errorf("%w: target length %d, actual length %d", ErrShapeMismatch, tn, an)
	}
	return an, nil
}
