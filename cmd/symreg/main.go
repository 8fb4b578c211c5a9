// cmd/symreg/main.go
package main

import (
	"fmt"
	"os"

	"symreg/cmd/symreg/commands"
)

const version = "0.1.0"

// commandAliases mirrors the short-form aliases users reach for first.
var commandAliases = map[string]string{
	"r": "run",
	"n": "naive",
	"d": "disasm",
}

func main() {
	os.Exit(run(os.Args[1:]))
}

// run dispatches args to a subcommand and returns the process exit code.
// Split out from main so the CLI can be driven in-process by testscript.
func run(args []string) int {
	if len(args) == 0 {
		showUsage()
		return 1
	}

	cmd := args[0]
	if alias, ok := commandAliases[cmd]; ok {
		cmd = alias
	}
	rest := args[1:]

	var err error
	switch cmd {
	case "run":
		err = commands.RunCommand(rest)
	case "naive":
		err = commands.NaiveCommand(rest)
	case "disasm":
		err = commands.DisasmCommand(rest)
	case "--help", "-h", "help":
		showUsage()
		return 0
	case "--version", "-v", "version":
		fmt.Println("symreg " + version)
		return 0
	default:
		fmt.Fprintf(os.Stderr, "symreg: unknown command %q\n", args[0])
		showUsage()
		return 1
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "symreg: %v\n", err)
		return 1
	}
	return 0
}

func showUsage() {
	fmt.Println(`symreg — symbolic regression via genetic programming

Usage:
  symreg run [-data path.csv] [-population N] [-generations N] ...
  symreg naive [-data path.csv] [-iterations N] ...
  symreg disasm [-inputs N] [-depth N]

Run "symreg <command> -h" for a command's flags.`)
}
