package dataset

import "gonum.org/v1/gonum/mat"

// cached is one memoized (points, targets) pair. The explicit generated
// flag, rather than a nil check on the fields, lets a generation count
// as done even when it legitimately produced a nil target (no solution
// configured).
type cached struct {
	x, y      *mat.Dense
	generated bool
}

func (c *cached) ok() bool { return c.generated }

func (c *cached) set(x, y *mat.Dense) {
	c.x, c.y, c.generated = x, y, true
}

func (c *cached) clear() {
	c.x, c.y, c.generated = nil, nil, false
}
