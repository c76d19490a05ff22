// Package genepool is a generic genetic algorithm engine for Go. It
// evolves populations of fixed-shape specimens against a caller-supplied
// fitness function, and ships with a handful of classic problems, an
// experiment runner, and a CLI.
//
// The engine is deliberately small: a problem is anything that can say
// what its specimens look like and how good one is, and the engine owns
// everything else, from crossover and mutation to elitism and culling.
//
// Key Components:
//
//   - Evolution: The core engine. A Phenotype describes the search space
//     (Shape) and scores candidates (Fitness); a GenePool evolves
//     populations of specimens drawn from that space:
//     * New: Validated construction with functional options for culling,
//     elite children, and seeded randomness
//     * Evolve: One generational step of elitism, culling, and breeding
//     * Generations: A pull-based, logically infinite sequence of
//     populations; callers stop pulling when satisfied
//     * Fittest: Scan a population for its best specimen
//
//   - Problems: Ready-made phenotypes for exploring the engine:
//     * OneMax: Evolve a bit string into all ones
//     * Phrase: Recover a target phrase letter by letter
//     * Introns: Silence bases of a DNA sequence until every read maps
//
//   - Runner: Drives a pool for a fixed number of generations and reports
//     the outcome, with optional fitness trajectory sampling and
//     concurrent independent trials of the same search.
//
//   - Journal: A SQLite-backed log of past runs and their trajectories,
//     for comparing engine settings across experiments.
//
//   - Config: YAML experiment files with validation, so runs are
//     reproducible and shareable.
//
// Simple Example:
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/machinery-systems/genepool-go/pkg/evolution"
//	    "github.com/machinery-systems/genepool-go/pkg/problems"
//	)
//
//	func main() {
//	    // A phenotype defines the search space and the goal
//	    phenotype, err := problems.NewOneMax(32)
//	    if err != nil {
//	        log.Fatalf("Failed to create problem: %v", err)
//	    }
//
//	    // A pool evolves populations drawn from it
//	    pool, err := evolution.New[int](phenotype, 50, 0.02,
//	        evolution.WithEliteChildren(2))
//	    if err != nil {
//	        log.Fatalf("Failed to create gene pool: %v", err)
//	    }
//
//	    // Pull generations until one is good enough
//	    sequence := pool.Generations()
//	    for i := 0; i < 100; i++ {
//	        winner, score := evolution.Fittest(phenotype, sequence.Next())
//	        if score == 32 {
//	            fmt.Printf("solved in %d generations: %s\n", i, phenotype.Decode(winner))
//	            return
//	        }
//	    }
//	}
//
// Advanced Features:
//
//   - Structured Logging: Severity-filtered logging with console and
//     JSON-file outputs; run metadata flows through context.
//
//   - Error Handling: Code-classified errors with structured fields, so
//     callers can branch on what failed rather than on message text.
//
//   - Reproducibility: Seeded pools replay exactly; trial batches derive
//     one seed per replicate from a base seed.
//
// For more examples see the examples directory and the genepool-cli
// command.
//
// genepool-go is released under the MIT License.
package genepool
