package optimizer

import (
	"math"
	"math/rand"

	"symreg/internal/expr"
	"symreg/internal/matrix"
	"symreg/internal/metrics"
)

// NaiveMonteCarlo is the non-evolving baseline: each iteration generates one
// fresh random tree and keeps it only if it beats the best loss seen so far.
// A candidate producing a NaN prediction on any row is discarded outright
// rather than scored; ±Inf predictions are scored like any other value. Unlike the reference implementation this
// iterates every row, not rows-2 — that truncation was an off-by-two bug,
// not a deliberate holdout.
func NaiveMonteCarlo(iterations int, x *matrix.Matrix[float64], y []float64, rng *rand.Rand, maxDepth, nInputs int, alpha float64) (float64, *expr.Expr) {
	rows, _ := x.Shape()

	bestLoss := math.Inf(1)
	bestExpr := expr.New(nInputs)

outer:
	for i := 0; i < iterations; i++ {
		e := expr.New(nInputs)
		e.RandomTree(rng, maxDepth)

		preds := make([]float64, 0, rows)
		trues := make([]float64, 0, rows)

		for r := 0; r < rows; r++ {
			row, _ := x.Row(r)
			result := e.Evaluate(row)
			if math.IsNaN(result) {
				continue outer
			}
			preds = append(preds, result)
			trues = append(trues, y[r])
		}

		loss := metrics.MSE(preds, trues) + metrics.Regularize(e, alpha)
		if loss < bestLoss {
			bestLoss = loss
			bestExpr = e
		}
	}

	return bestLoss, bestExpr
}
