// Package runner drives gene pools through a fixed number of generations
// and reports the outcome. It owns the experiment loop so callers only
// describe what to run: a phenotype, an engine and a budget.
package runner

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/machinery-systems/genepool-go/pkg/errors"
	"github.com/machinery-systems/genepool-go/pkg/evolution"
	"github.com/machinery-systems/genepool-go/pkg/logging"
)

// Config describes a single run.
type Config struct {
	// Problem labels the run in logs and results. Optional.
	Problem string

	// Generations is the number of populations to pull from the pool,
	// counting the initial one. Must be at least 1.
	Generations int

	// SampleEvery records a trajectory point every N generations.
	// Zero disables sampling.
	SampleEvery int
}

// Result is the outcome of a run.
type Result[T any] struct {
	RunID       string
	Problem     string
	Winner      evolution.Specimen[T]
	BestFitness float64
	BestDecoded string
	Generations int
	Duration    time.Duration
	Trajectory  []Sample
}

// Sample is the best fitness observed at one generation.
type Sample struct {
	Generation  int
	BestFitness float64
}

// Decoder renders a specimen as a human-readable string. Phenotypes may
// implement it; the runner falls back to fmt formatting when they don't.
type Decoder[T any] interface {
	Decode(specimen evolution.Specimen[T]) string
}

// DecodeSpecimen renders a specimen through the phenotype's Decoder when
// it has one.
func DecodeSpecimen[T any](phenotype evolution.Phenotype[T], specimen evolution.Specimen[T]) string {
	if decoder, ok := phenotype.(Decoder[T]); ok {
		return decoder.Decode(specimen)
	}
	return fmt.Sprintf("%v", specimen)
}

// Run evolves the pool for cfg.Generations generations and returns the
// fittest specimen of the final one. The context is checked between
// generations, so long runs stop promptly on cancellation.
func Run[T any](ctx context.Context, phenotype evolution.Phenotype[T], pool *evolution.GenePool[T], cfg Config) (*Result[T], error) {
	if phenotype == nil {
		return nil, errors.New(errors.InvalidInput, "run requires a phenotype")
	}
	if pool == nil {
		return nil, errors.New(errors.InvalidInput, "run requires a gene pool")
	}
	if cfg.Generations < 1 {
		return nil, errors.WithFields(
			errors.New(errors.InvalidInput, "run requires at least one generation"),
			errors.Fields{"generations": cfg.Generations},
		)
	}

	runID := uuid.New().String()
	ctx = logging.WithRunID(ctx, runID)
	if cfg.Problem != "" {
		ctx = logging.WithProblem(ctx, cfg.Problem)
	}
	logger := logging.GetLogger()

	start := time.Now()
	generations := pool.Generations()

	var current evolution.Population[T]
	var trajectory []Sample
	for g := 0; g < cfg.Generations; g++ {
		if err := errors.CheckContext(ctx, "evolution run"); err != nil {
			return nil, err
		}
		current = generations.Next()

		if cfg.SampleEvery > 0 && g%cfg.SampleEvery == 0 {
			best, score := evolution.Fittest(phenotype, current)
			trajectory = append(trajectory, Sample{Generation: g, BestFitness: score})
			logger.Generation(ctx, g, score, DecodeSpecimen(phenotype, best))
		}
	}

	winner, score := evolution.Fittest(phenotype, current)
	result := &Result[T]{
		RunID:       runID,
		Problem:     cfg.Problem,
		Winner:      winner,
		BestFitness: score,
		BestDecoded: DecodeSpecimen(phenotype, winner),
		Generations: cfg.Generations,
		Duration:    time.Since(start),
		Trajectory:  trajectory,
	}

	logger.Info(ctx, "run complete: best fitness %.4f after %d generations in %s",
		result.BestFitness, result.Generations, result.Duration.Round(time.Millisecond))
	return result, nil
}
