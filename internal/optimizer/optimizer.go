// Package optimizer evolves a population of expressions toward a regularised
// MSE minimum using truncation selection and mutation-only reproduction: no
// crossover, no elitism beyond the cutoff's implicit protection of the best
// individuals.
package optimizer

import (
	"context"
	"math"
	"math/rand"
	"runtime"

	"github.com/google/uuid"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"

	"symreg/internal/compiler"
	"symreg/internal/expr"
	"symreg/internal/matrix"
	"symreg/internal/metrics"
	"symreg/internal/vm"
)

// GeneticParameters configures a Run. Zero-value fields are not valid;
// use DefaultParameters as a starting point.
type GeneticParameters struct {
	PopulationSize int
	Cutoff         float64 // fraction of the sorted population eligible as parents
	MutationRate   float64
	Generations    int
	Alpha          float64 // complexity-regularisation weight
	InitDepth      int     // max depth for the first generation's random trees
}

// DefaultParameters mirrors the reference implementation's defaults, scaled
// down to a population size practical for a single process.
func DefaultParameters() GeneticParameters {
	return GeneticParameters{
		PopulationSize: 1000,
		Cutoff:         0.1,
		MutationRate:   0.01,
		Generations:    100,
		Alpha:          0.001,
		InitDepth:      10,
	}
}

// Individual pairs an expression with its most recently evaluated loss.
type Individual struct {
	Expr *expr.Expr
	Loss float64
}

// Result is a generation's summary, passed to OnGeneration.
type Result struct {
	Generation int
	Best       Individual
}

// Run evolves a population against x (features) and y (target) for
// params.Generations rounds, calling onGeneration after each round's fitness
// and sort complete (may be nil). It returns the top-ranked individual of the
// last generation evaluated before ctx was cancelled or the loop ran out (not
// the best seen over all generations), and an error only if the context was
// cancelled before a single generation completed.
func Run(ctx context.Context, x *matrix.Matrix[float64], y []float64, params GeneticParameters, rng *rand.Rand, onGeneration func(Result)) (Individual, error) {
	rows, cols := x.Shape()
	if params.PopulationSize <= 0 {
		panic("optimizer: PopulationSize must be positive")
	}

	nSelected := int(float64(params.PopulationSize) * params.Cutoff)
	if nSelected < 1 {
		panic("optimizer: PopulationSize * Cutoff selects no parents")
	}

	pop := make([]Individual, params.PopulationSize)
	for i := range pop {
		e := expr.New(cols)
		e.RandomTree(rng, params.InitDepth)
		pop[i] = Individual{Expr: e, Loss: math.Inf(1)}
	}

	best := Individual{Expr: expr.New(cols), Loss: math.Inf(1)}
	haveResult := false

	for gen := 0; gen < params.Generations; gen++ {
		if err := ctx.Err(); err != nil {
			if haveResult {
				return best, nil
			}
			return Individual{}, err
		}

		if err := evaluateFitness(ctx, pop, x, y, rows, params.Alpha); err != nil {
			if haveResult {
				return best, nil
			}
			return Individual{}, err
		}

		slices.SortFunc(pop, func(a, b Individual) int {
			return totalOrderCompare(a.Loss, b.Loss)
		})

		best = pop[0]
		haveResult = true

		if onGeneration != nil {
			onGeneration(Result{Generation: gen + 1, Best: best})
		}

		next := make([]Individual, params.PopulationSize)
		for i := range next {
			parent := pop[rng.Intn(nSelected)]
			next[i] = Individual{Expr: parent.Expr.Mutate(rng, params.MutationRate), Loss: math.Inf(1)}
		}
		pop = next
	}

	return best, nil
}

// evaluateFitness scores every individual's loss in parallel, bounded by
// GOMAXPROCS, with one goroutine per individual: each goroutine compiles and
// scores its own individual and writes only that individual's Loss.
func evaluateFitness(ctx context.Context, pop []Individual, x *matrix.Matrix[float64], y []float64, rows int, alpha float64) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i := range pop {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			ev := vm.NewEvaluator()
			chunk := compiler.Compile(pop[i].Expr)

			preds := make([]float64, rows)
			trues := make([]float64, rows)
			for r := 0; r < rows; r++ {
				row, _ := x.Row(r)
				result, ok := ev.Run(chunk, row)
				if !ok {
					result = math.NaN()
				}
				preds[r] = result
				trues[r] = y[r]
			}

			loss := metrics.MSE(preds, trues) + metrics.Regularize(pop[i].Expr, alpha)
			if math.IsNaN(loss) {
				loss = math.Inf(1)
			}
			pop[i].Loss = loss
			return nil
		})
	}

	return g.Wait()
}

// totalOrderCompare orders by Loss with NaN (which should never occur — see
// evaluateFitness) sorting last rather than corrupting the comparator.
// Returns -1, 0, or 1 per slices.SortFunc's comparator contract.
func totalOrderCompare(a, b float64) int {
	aNaN, bNaN := math.IsNaN(a), math.IsNaN(b)
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return 1
	case bNaN:
		return -1
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// RunID generates an identifier for a single optimizer invocation, used to
// correlate log lines and output artifacts across a run.
func RunID() string {
	return uuid.NewString()
}
