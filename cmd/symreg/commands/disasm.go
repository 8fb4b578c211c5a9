// cmd/symreg/commands/disasm.go
package commands

import (
	"flag"
	"fmt"
	"math/rand"
	"time"

	"symreg/internal/compiler"
	"symreg/internal/expr"
	"symreg/internal/vm"
)

// DisasmCommand generates one random expression and prints its RPN form
// alongside the compiled chunk's disassembly, for inspecting what the
// compiler emits without running a full optimisation.
func DisasmCommand(args []string) error {
	fs := flag.NewFlagSet("disasm", flag.ExitOnError)
	nInputs := fs.Int("inputs", 3, "number of input variables the expression may reference")
	depth := fs.Int("depth", 4, "max tree depth")
	seed := fs.Int64("seed", 0, "RNG seed; 0 derives a seed from the current time")
	if err := fs.Parse(args); err != nil {
		return err
	}

	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(s))

	e := expr.New(*nInputs)
	e.RandomTree(rng, *depth)

	chunk := compiler.Compile(e)

	fmt.Printf("rpn: %s\n", e.RPN())
	fmt.Print(vm.Disassemble(chunk))
	return nil
}
