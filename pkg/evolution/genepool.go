package evolution

import (
	"context"
	"math/rand"
	"time"

	"github.com/machinery-systems/genepool-go/pkg/errors"
	"github.com/machinery-systems/genepool-go/pkg/logging"
)

// GenePool evolves populations of candidate solutions for one phenotype.
// A pool is single-caller: one evolution step at a time, with all random
// draws flowing through the pool's own source.
type GenePool[T any] struct {
	phenotype           Phenotype[T]
	populationSize      int
	mutationProbability float64
	cullThreshold       float64
	doesCull            bool
	eliteChildren       int
	rng                 *rand.Rand
}

type options struct {
	cullThreshold *float64
	eliteChildren *int
	rng           *rand.Rand
}

// Option configures optional GenePool behavior.
type Option func(*options)

// WithCullThreshold sets a minimum fitness for mating. Specimens whose
// fitness does not strictly exceed threshold are not selected as parents.
func WithCullThreshold(threshold float64) Option {
	return func(o *options) {
		o.cullThreshold = &threshold
	}
}

// WithEliteChildren copies the n highest-scoring specimens of each
// generation directly into the next one, before culling applies. They stay
// eligible for breeding. n must be even; 0 disables the feature.
func WithEliteChildren(n int) Option {
	return func(o *options) {
		o.eliteChildren = &n
	}
}

// WithSeed fixes the pool's random source so runs are reproducible.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand supplies the random source directly. The pool assumes sole
// ownership; sharing the source with other goroutines is unsafe.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) {
		o.rng = rng
	}
}

// New creates a GenePool for evolving solutions to the given phenotype.
//
// populationSize is how many specimens each generation holds and must be a
// positive even number. mutationProbability is the chance that any single
// slot of a bred child is redrawn at random; it is deliberately not range
// checked, since values at or below 0 simply never mutate and values at or
// above 1 always do.
func New[T any](phenotype Phenotype[T], populationSize int, mutationProbability float64, opts ...Option) (*GenePool[T], error) {
	if phenotype == nil {
		return nil, errors.New(errors.InvalidConfiguration, "phenotype must not be nil")
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if populationSize <= 0 || populationSize%2 != 0 {
		return nil, errors.WithFields(
			errors.New(errors.InvalidConfiguration, "population size must be a positive even number"),
			errors.Fields{"population_size": populationSize})
	}

	pool := &GenePool[T]{
		phenotype:           phenotype,
		populationSize:      populationSize,
		mutationProbability: mutationProbability,
		rng:                 o.rng,
	}

	// There is no sane default threshold without constraining consumers to
	// a particular score range, so culling unpacks into a flag plus a
	// primitive instead of a pointer chased on every generation.
	if o.cullThreshold != nil {
		pool.cullThreshold = *o.cullThreshold
		pool.doesCull = true
	}

	// Zero elite children is the same as disabling the feature.
	if o.eliteChildren != nil {
		n := *o.eliteChildren
		if n < 0 || n%2 != 0 {
			return nil, errors.WithFields(
				errors.New(errors.InvalidConfiguration, "elite children must be a non-negative even number"),
				errors.Fields{"elite_children": n})
		}
		pool.eliteChildren = n
	}

	if pool.rng == nil {
		pool.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	logging.GetLogger().Debug(context.Background(),
		"gene pool ready: population_size=%d, mutation_probability=%g, elite_children=%d, culling=%t",
		populationSize, mutationProbability, pool.eliteChildren, pool.doesCull)

	return pool, nil
}

// InitialPopulation generates a full population, drawing every slot value
// uniformly from that slot's admissible set.
func (gp *GenePool[T]) InitialPopulation() Population[T] {
	population := make(Population[T], 0, gp.populationSize)
	for i := 0; i < gp.populationSize; i++ {
		population = append(population, gp.randomSpecimen())
	}
	return population
}

func (gp *GenePool[T]) randomSpecimen() Specimen[T] {
	shape := gp.phenotype.Shape()
	specimen := make(Specimen[T], 0, len(shape))
	for _, candidates := range shape {
		specimen = append(specimen, candidates[gp.rng.Intn(len(candidates))])
	}
	return specimen
}

// Evolve produces the next generation from the current one: elite
// carry-overs first when configured, then children bred from the surviving
// parents until the population is back at full size.
func (gp *GenePool[T]) Evolve(current Population[T]) Population[T] {
	next := make(Population[T], 0, gp.populationSize)
	if gp.eliteChildren > 0 {
		next = gp.copyElite(current, next)
	}

	parents := current
	if gp.doesCull {
		// May make sense to fold into the elite scan. For now it is a
		// second pass.
		parents = gp.cull(current)
	}
	// It is possible to cull *everything*, and callers may hand in an
	// empty population. Restart from fresh stock rather than dying out.
	if len(parents) == 0 {
		logging.GetLogger().Debug(context.Background(),
			"no viable parents in generation, drawing a fresh population")
		parents = gp.InitialPopulation()
	}

	return gp.breed(parents, next)
}

// copyElite appends the eliteChildren highest-scoring members of current to
// next. A single pass with a bounded heap keeps this O(n log k) instead of
// sorting the whole population. Order among equal scores is unspecified.
func (gp *GenePool[T]) copyElite(current, next Population[T]) Population[T] {
	elite := &eliteHeap[T]{phenotype: gp.phenotype}
	for _, specimen := range current {
		if elite.Len() < gp.eliteChildren {
			elite.push(specimen)
			continue
		}
		if gp.phenotype.Fitness(specimen) > gp.phenotype.Fitness(elite.weakest()) {
			elite.replaceWeakest(specimen)
		}
	}
	return append(next, elite.members...)
}

// cull filters current down to the specimens fit to breed. Survival
// requires strictly exceeding the threshold.
func (gp *GenePool[T]) cull(current Population[T]) Population[T] {
	survivors := make(Population[T], 0, len(current))
	for _, specimen := range current {
		if gp.phenotype.Fitness(specimen) > gp.cullThreshold {
			survivors = append(survivors, specimen)
		}
	}
	return survivors
}

// breed tops next up to the configured population size with children of
// parents drawn uniformly with replacement. A specimen may mate with
// itself. When one child would overshoot the size, it is dropped.
func (gp *GenePool[T]) breed(parents, next Population[T]) Population[T] {
	parentsSize := len(parents)
	for len(next) < gp.populationSize {
		parent1 := parents[gp.rng.Intn(parentsSize)]
		parent2 := parents[gp.rng.Intn(parentsSize)]
		child1, child2 := gp.mate(parent1, parent2)
		next = append(next, child1)
		if len(next) < gp.populationSize {
			next = append(next, child2)
		}
	}
	return next
}

// mate breeds two children by single-point crossover: child1 takes
// parent1's values up to the crossover index and parent2's from there on,
// child2 the complement. Every inherited value is then subject to mutation.
func (gp *GenePool[T]) mate(parent1, parent2 Specimen[T]) (Specimen[T], Specimen[T]) {
	shape := gp.phenotype.Shape()
	size := len(shape)
	child1 := make(Specimen[T], 0, size)
	child2 := make(Specimen[T], 0, size)
	crossover := gp.rng.Intn(size)

	for i := 0; i < crossover; i++ {
		candidates := shape[i]
		child1 = append(child1, gp.maybeMutate(parent1[i], candidates))
		child2 = append(child2, gp.maybeMutate(parent2[i], candidates))
	}
	for i := crossover; i < size; i++ {
		candidates := shape[i]
		child1 = append(child1, gp.maybeMutate(parent2[i], candidates))
		child2 = append(child2, gp.maybeMutate(parent1[i], candidates))
	}
	return child1, child2
}

func (gp *GenePool[T]) maybeMutate(inherited T, candidates []T) T {
	if gp.rng.Float64() < gp.mutationProbability {
		return candidates[gp.rng.Intn(len(candidates))]
	}
	return inherited
}
