// Package compiler linearises an expression arena into a stack-VM chunk by
// recursively post-order-walking it: each node emits its children
// left-then-right, then its own opcode.
package compiler

import (
	"symreg/internal/bytecode"
	"symreg/internal/expr"
)

// Compile flattens e into a Chunk. Because the walk emits a before b for a
// binary node, the run-time pop order (b then a) restores the original
// operand order.
func Compile(e *expr.Expr) *bytecode.Chunk {
	c := bytecode.NewChunk()
	flatten(c, e, e.Root)
	return c
}

func flatten(c *bytecode.Chunk, e *expr.Expr, i int) {
	n := &e.Nodes[i]

	switch n.Kind {
	case expr.KindNumber:
		idx := c.AddConstant(n.Number)
		c.WriteOp(bytecode.OpPushConst)
		c.WriteUint16(uint16(idx))

	case expr.KindVariable:
		c.WriteOp(bytecode.OpPushVar)
		c.WriteByte(byte(n.Index))

	case expr.KindBinOp:
		flatten(c, e, n.A)
		flatten(c, e, n.B)
		c.WriteOp(binOpcode(n.BinOp))

	case expr.KindUnOp:
		flatten(c, e, n.A)
		if n.UnOp == expr.Neg {
			c.WriteOp(bytecode.OpNeg)
			return
		}
		c.WriteOp(bytecode.OpCall)
		c.WriteByte(byte(unOpFunc(n.UnOp)))
	}
}

func binOpcode(op expr.BinaryOp) bytecode.OpCode {
	switch op {
	case expr.Add:
		return bytecode.OpAdd
	case expr.Sub:
		return bytecode.OpSub
	case expr.Mul:
		return bytecode.OpMul
	case expr.Div:
		return bytecode.OpDiv
	case expr.Pow:
		return bytecode.OpPow
	default:
		panic("compiler: unknown binary operator")
	}
}

func unOpFunc(op expr.UnaryOp) bytecode.Func {
	switch op {
	case expr.Abs:
		return bytecode.FuncAbs
	case expr.Loge:
		return bytecode.FuncLoge
	case expr.Log2:
		return bytecode.FuncLog2
	case expr.Log10:
		return bytecode.FuncLog10
	case expr.Sin:
		return bytecode.FuncSin
	case expr.Cos:
		return bytecode.FuncCos
	case expr.Tan:
		return bytecode.FuncTan
	default:
		panic("compiler: unknown unary function")
	}
}
