package compiler

import (
	"math/rand"
	"testing"

	"github.com/kr/pretty"

	"symreg/internal/bytecode"
	"symreg/internal/expr"
	"symreg/internal/vm"
)

func TestCompileAgreesWithDirectEvaluate(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 2000; trial++ {
		e := expr.New(5)
		e.RandomTree(rng, 6)

		inputs := make([]float64, 5)
		for i := range inputs {
			inputs[i] = rng.Float64()*20 - 10
		}

		want := e.Evaluate(inputs)
		chunk := Compile(e)
		got, ok := vm.Eval(chunk, inputs)

		if !ok {
			t.Fatalf("trial %d: vm.Eval reported failure for chunk %# v", trial, pretty.Formatter(chunk))
		}
		if want != got && !(isNaN(want) && isNaN(got)) {
			t.Fatalf("trial %d: direct=%v compiled=%v rpn=%q", trial, want, got, e.RPN())
		}
	}
}

// TestCompileAgreesWithDirectEvaluateDepth10 is the depth-10/10-input-variable
// compiler/interpreter agreement check named explicitly by the spec's
// end-to-end scenarios. A depth-10 tree can hold more than 256 Number
// literals, the regime where a one-byte OpPushConst operand would wrap
// around and read the wrong constant, but random trees at this depth rarely
// come near it; the test logs when no trial crossed 256. The two-byte index
// itself is covered directly by the bytecode and vm package tests.
func TestCompileAgreesWithDirectEvaluateDepth10(t *testing.T) {
	rng := rand.New(rand.NewSource(99))

	const trials = 10000
	maxConstantsSeen := 0

	for trial := 0; trial < trials; trial++ {
		e := expr.New(10)
		e.RandomTree(rng, 10)

		inputs := make([]float64, 10)
		for i := range inputs {
			inputs[i] = rng.Float64()*20 - 10
		}

		want := e.Evaluate(inputs)
		chunk := Compile(e)
		if len(chunk.Constants) > maxConstantsSeen {
			maxConstantsSeen = len(chunk.Constants)
		}

		got, ok := vm.Eval(chunk, inputs)
		if !ok {
			t.Fatalf("trial %d: vm.Eval reported failure for chunk %# v", trial, pretty.Formatter(chunk))
		}
		if want != got && !(isNaN(want) && isNaN(got)) {
			t.Fatalf("trial %d: direct=%v compiled=%v rpn=%q", trial, want, got, e.RPN())
		}
	}

	if maxConstantsSeen <= 256 {
		t.Logf("warning: no trial exceeded 256 constants (max seen %d); the two-byte operand path went unexercised", maxConstantsSeen)
	}
}

func TestCompileSimpleExpr(t *testing.T) {
	e := expr.New(1)
	xi := e.Push(expr.Node{Kind: expr.KindVariable, Index: 0})
	one := e.Push(expr.Node{Kind: expr.KindNumber, Number: 1})
	e.Root = e.Push(expr.Node{Kind: expr.KindBinOp, BinOp: expr.Add, A: xi, B: one})

	chunk := Compile(e)

	wantCode := []byte{
		byte(bytecode.OpPushVar), 0,
		byte(bytecode.OpPushConst), 0, 0,
		byte(bytecode.OpAdd),
	}
	if len(chunk.Code) != len(wantCode) {
		t.Fatalf("Code = %v, want %v", chunk.Code, wantCode)
	}
	for i := range wantCode {
		if chunk.Code[i] != wantCode[i] {
			t.Fatalf("Code = %v, want %v", chunk.Code, wantCode)
		}
	}

	got, ok := vm.Eval(chunk, []float64{4})
	if !ok || got != 5 {
		t.Fatalf("Eval = (%v, %v), want (5, true)", got, ok)
	}
}

func isNaN(f float64) bool { return f != f }
