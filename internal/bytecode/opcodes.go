// Package bytecode defines the stack-VM's linear, control-flow-free opcode
// set and the flat instruction buffer it is written into.
package bytecode

// OpCode is a single stack-VM instruction tag.
type OpCode byte

const (
	// OpPushConst pushes Constants[operand] (a two-byte big-endian
	// constant-pool index).
	OpPushConst OpCode = iota
	// OpPushVar pushes inputs[operand] (a one-byte variable index).
	OpPushVar
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpPow
	OpNeg
	// OpCall pops one value, applies the builtin named by the following
	// operand byte, and pushes the result.
	OpCall
)

// Func selects the builtin invoked by OpCall.
type Func byte

const (
	FuncAbs Func = iota
	FuncLoge
	FuncLog2
	FuncLog10
	FuncSin
	FuncCos
	FuncTan
)

func (f Func) String() string {
	switch f {
	case FuncAbs:
		return "$abs"
	case FuncLoge:
		return "$loge"
	case FuncLog2:
		return "$log2"
	case FuncLog10:
		return "$log10"
	case FuncSin:
		return "$sin"
	case FuncCos:
		return "$cos"
	case FuncTan:
		return "$tan"
	default:
		return "$?"
	}
}
