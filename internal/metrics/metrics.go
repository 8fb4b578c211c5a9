// Package metrics scores predictions against ground truth and penalises
// expression complexity for the regularised fitness used by the optimizer.
package metrics

import "symreg/internal/expr"

// MAE is the mean absolute error, kept as a diagnostic alongside MSE — the
// optimizer selects on MSE, never on this.
func MAE(yPred, yTrue []float64) float64 {
	if len(yPred) != len(yTrue) {
		panic("metrics: yPred and yTrue have different lengths")
	}

	var sum float64
	for i := range yPred {
		d := yTrue[i] - yPred[i]
		if d < 0 {
			d = -d
		}
		sum += d
	}
	return sum / float64(len(yPred))
}

// MSE is the mean squared error between predicted and true values. Panics if
// the slices differ in length or are empty.
func MSE(yPred, yTrue []float64) float64 {
	if len(yPred) != len(yTrue) {
		panic("metrics: yPred and yTrue have different lengths")
	}
	if len(yPred) == 0 {
		panic("metrics: MSE of empty slices")
	}

	var sum float64
	for i := range yPred {
		d := yTrue[i] - yPred[i]
		sum += d * d
	}
	return sum / float64(len(yPred))
}

// nodeCost assigns each node kind a fixed cost: leaves are cheap, transcendental
// functions are expensive, matching the original cost table node for node.
func nodeCost(n expr.Node) float64 {
	switch n.Kind {
	case expr.KindNumber:
		return 1.0
	case expr.KindVariable:
		return 2.0
	case expr.KindUnOp:
		switch n.UnOp {
		case expr.Neg:
			return 1.0
		case expr.Abs:
			return 2.0
		default:
			return 5.0
		}
	case expr.KindBinOp:
		switch n.BinOp {
		case expr.Add, expr.Sub:
			return 1.0
		case expr.Mul, expr.Div:
			return 2.0
		case expr.Pow:
			return 3.0
		}
	}
	return 0
}

// Complexity sums nodeCost over every node in the arena.
func Complexity(e *expr.Expr) float64 {
	var total float64
	for _, n := range e.Nodes {
		total += nodeCost(n)
	}
	return total
}

// Regularize is alpha * Complexity(e), the penalty term added to MSE to
// form an individual's loss.
func Regularize(e *expr.Expr, alpha float64) float64 {
	return alpha * Complexity(e)
}
