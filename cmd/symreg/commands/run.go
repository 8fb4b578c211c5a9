// cmd/symreg/commands/run.go
package commands

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"time"

	"symreg/internal/compiler"
	"symreg/internal/dataset"
	"symreg/internal/logx"
	"symreg/internal/optimizer"
	"symreg/internal/vm"
)

// RunCommand evolves a population against a CSV dataset and reports the best
// expression found.
func RunCommand(args []string) error {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	dataPath := fs.String("data", "", "path to a CSV dataset (required)")
	population := fs.Int("population", 1000, "population size")
	cutoff := fs.Float64("cutoff", 0.1, "fraction of the sorted population eligible as parents")
	mutationRate := fs.Float64("mutation-rate", 0.01, "per-node mutation probability")
	generations := fs.Int("generations", 100, "number of generations to evolve")
	alpha := fs.Float64("alpha", 0.001, "complexity regularisation weight")
	initDepth := fs.Int("init-depth", 10, "max depth of the first generation's random trees")
	seed := fs.Int64("seed", 0, "RNG seed; 0 derives a seed from the current time")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *dataPath == "" {
		return fmt.Errorf("run: -data is required")
	}

	log := logx.Default()

	x, y, err := dataset.Load(*dataPath)
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}
	rows, cols := x.Shape()
	log.Info("loaded %s rows x %s cols from %s", logx.Count(rows), logx.Count(cols), *dataPath)

	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(s))

	params := optimizer.GeneticParameters{
		PopulationSize: *population,
		Cutoff:         *cutoff,
		MutationRate:   *mutationRate,
		Generations:    *generations,
		Alpha:          *alpha,
		InitDepth:      *initDepth,
	}

	runID := optimizer.RunID()
	log.Info("starting run %s: population=%s generations=%d", runID, logx.Count(*population), *generations)

	start := time.Now()
	best, err := optimizer.Run(context.Background(), x, y, params, rng, func(r optimizer.Result) {
		log.Info("Generation %d, best loss: %0.4f, best expr: %s", r.Generation, r.Best.Loss, r.Best.Expr.RPN())
	})
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}

	log.Info("run %s finished in %s: loss=%0.6f expr=%s", runID, logx.Duration(time.Since(start)), best.Loss, best.Expr.RPN())
	fmt.Print(vm.Disassemble(compiler.Compile(best.Expr)))
	return nil
}

// NaiveCommand runs the non-evolving Monte Carlo baseline for comparison.
func NaiveCommand(args []string) error {
	fs := flag.NewFlagSet("naive", flag.ExitOnError)
	dataPath := fs.String("data", "", "path to a CSV dataset (required)")
	iterations := fs.Int("iterations", 100000, "number of random candidates to try")
	maxDepth := fs.Int("max-depth", 10, "max depth of each random candidate tree")
	alpha := fs.Float64("alpha", 0.005, "complexity regularisation weight")
	seed := fs.Int64("seed", 0, "RNG seed; 0 derives a seed from the current time")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *dataPath == "" {
		return fmt.Errorf("naive: -data is required")
	}

	log := logx.Default()

	x, y, err := dataset.Load(*dataPath)
	if err != nil {
		return fmt.Errorf("naive: %w", err)
	}
	_, cols := x.Shape()

	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(s))

	loss, best := optimizer.NaiveMonteCarlo(*iterations, x, y, rng, *maxDepth, cols, *alpha)
	log.Info("naive baseline: loss=%0.6f expr=%s", loss, best.RPN())
	return nil
}
