// Package geometry defines the sampling contracts and reference domains
// used to place collocation points for physics-informed learning.
//
// 🚀 What is geometry?
//
//	A geometry answers two questions for the dataset layer:
//	  • where may a point live (interior, boundary, initial-time slice)?
//	  • how are n points drawn there (even spacing or a random scheme)?
//
// ✨ Key features:
//   - Geometry / TimeGeometry capability contracts on gonum mat.Dense
//   - Interval (1-D) and Rectangle (2-D) reference domains
//   - GeometryXTime: any spatial domain crossed with a time interval,
//     adding the initial-time slice required by time-dependent problems
//   - Distribution schemes: Pseudo, Owen-scrambled Halton, LatinHypercube
//     (gonum stat/samplemv over stat/distmv uniform boxes)
//   - Deterministic: each domain carries an explicit rand.Source; a nil
//     source falls back to a fixed DefaultSeed
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/colloc/geometry"
//
//	iv, err := geometry.NewInterval(0, 1)
//	interior, err := iv.UniformPoints(10, false) // strictly inside (0, 1)
//	ends, err := iv.UniformBoundaryPoints(2)     // {0} and {1}
//	quasi, err := iv.RandomPoints(64, geometry.Halton)
//
// All sampling methods return one point per row with Dim() columns and
// reject n ≤ 0 with ErrNonPositiveCount.
package geometry
