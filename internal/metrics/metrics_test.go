package metrics

import (
	"math"
	"testing"

	"symreg/internal/expr"
)

func TestMSEBoundary(t *testing.T) {
	yPred := []float64{1, 2, 3}
	yTrue := []float64{1, 2, 3}
	if got := MSE(yPred, yTrue); got != 0 {
		t.Fatalf("MSE of identical slices = %v, want 0", got)
	}
}

func TestMSEKnownValue(t *testing.T) {
	yPred := []float64{0, 0}
	yTrue := []float64{1, 2}
	got := MSE(yPred, yTrue)
	want := (1.0 + 4.0) / 2.0
	if got != want {
		t.Fatalf("MSE = %v, want %v", got, want)
	}
}

func TestMAEKnownValue(t *testing.T) {
	yPred := []float64{0, 0}
	yTrue := []float64{1, -2}
	got := MAE(yPred, yTrue)
	want := (1.0 + 2.0) / 2.0
	if got != want {
		t.Fatalf("MAE = %v, want %v", got, want)
	}
}

func TestComplexitySingleNumberLeaf(t *testing.T) {
	e := expr.New(0)
	e.Root = e.Push(expr.Node{Kind: expr.KindNumber, Number: 3})

	if got := Complexity(e); got != 1.0 {
		t.Fatalf("Complexity(single number) = %v, want 1.0", got)
	}
}

func TestComplexityAddsAcrossNodes(t *testing.T) {
	e := expr.New(1)
	xi := e.Push(expr.Node{Kind: expr.KindVariable, Index: 0})
	twoi := e.Push(expr.Node{Kind: expr.KindNumber, Number: 2})
	e.Root = e.Push(expr.Node{Kind: expr.KindBinOp, BinOp: expr.Mul, A: xi, B: twoi})

	// variable(2.0) + number(1.0) + mul(2.0)
	want := 5.0
	if got := Complexity(e); got != want {
		t.Fatalf("Complexity = %v, want %v", got, want)
	}
}

func TestRegularizeScalesByAlpha(t *testing.T) {
	e := expr.New(0)
	e.Root = e.Push(expr.Node{Kind: expr.KindNumber, Number: 1})

	got := Regularize(e, 0.005)
	want := 0.005 * 1.0
	if math.Abs(got-want) > 1e-12 {
		t.Fatalf("Regularize = %v, want %v", got, want)
	}
}
