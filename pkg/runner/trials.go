package runner

import (
	"context"
	"time"

	"github.com/sourcegraph/conc/pool"

	"github.com/machinery-systems/genepool-go/pkg/errors"
	"github.com/machinery-systems/genepool-go/pkg/evolution"
	"github.com/machinery-systems/genepool-go/pkg/logging"
)

// TrialsConfig describes a batch of independent replicates of one run.
type TrialsConfig struct {
	// Run is the configuration shared by every trial.
	Run Config

	// Trials is the number of replicates. Must be at least 1.
	Trials int

	// Concurrency bounds how many trials run at once. Values below 1
	// mean sequential.
	Concurrency int

	// Seed, when set, makes the batch reproducible: trial i runs with
	// seed Seed+i. When nil the batch seeds itself from the clock.
	Seed *int64
}

// TrialsResult collects every trial outcome plus the best among them.
type TrialsResult[T any] struct {
	Results []*Result[T]
	Best    *Result[T]

	// BestTrial is the index into Results of the best outcome.
	BestTrial int
}

// Trials runs cfg.Trials independent replicates, each on a fresh gene
// pool built by newPool with a distinct seed. Replicates run concurrently
// up to cfg.Concurrency. The first trial failure aborts the batch.
func Trials[T any](ctx context.Context, phenotype evolution.Phenotype[T], cfg TrialsConfig, newPool func(seed int64) (*evolution.GenePool[T], error)) (*TrialsResult[T], error) {
	if newPool == nil {
		return nil, errors.New(errors.InvalidInput, "trials require a pool constructor")
	}
	if cfg.Trials < 1 {
		return nil, errors.WithFields(
			errors.New(errors.InvalidInput, "trials require at least one replicate"),
			errors.Fields{"trials": cfg.Trials},
		)
	}
	concurrency := cfg.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}
	baseSeed := time.Now().UnixNano()
	if cfg.Seed != nil {
		baseSeed = *cfg.Seed
	}
	logger := logging.GetLogger()

	results := make([]*Result[T], cfg.Trials)
	trialErrs := make([]error, cfg.Trials)

	p := pool.New().WithMaxGoroutines(concurrency)
	for i := 0; i < cfg.Trials; i++ {
		i := i // per-iteration copy; required while go.mod declares go < 1.22
		seed := baseSeed + int64(i)
		p.Go(func() {
			if err := errors.CheckContext(ctx, "trial batch"); err != nil {
				trialErrs[i] = err
				return
			}
			genePool, err := newPool(seed)
			if err != nil {
				trialErrs[i] = errors.WithFields(
					errors.Wrap(err, errors.InvalidConfiguration, "failed to build gene pool for trial"),
					errors.Fields{"trial": i, "seed": seed},
				)
				return
			}
			result, err := Run(ctx, phenotype, genePool, cfg.Run)
			if err != nil {
				trialErrs[i] = errors.WithFields(err, errors.Fields{"trial": i})
				return
			}
			results[i] = result
			logger.Debug(ctx, "trial %d finished with best fitness %.4f", i, result.BestFitness)
		})
	}
	p.Wait()

	for _, err := range trialErrs {
		if err != nil {
			return nil, err
		}
	}

	batch := &TrialsResult[T]{Results: results, Best: results[0]}
	for i, result := range results {
		if result.BestFitness > batch.Best.BestFitness {
			batch.Best = result
			batch.BestTrial = i
		}
	}
	return batch, nil
}
