package dataset

import "gonum.org/v1/gonum/mat"

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

// oneHotTag appends tagCategories one-hot columns to raw, drawing each
// row's category independently and uniformly from intn.
func oneHotTag(raw *mat.Dense, intn func(n int) int) *mat.Dense {
	rows, _ := raw.Dims()
	hot := mat.NewDense(rows, tagCategories, nil)
	for i := 0; i < rows; i++ {
		hot.Set(i, intn(tagCategories), 1)
	}
	var out mat.Dense
	out.Augment(raw, hot)
	return &out
}
