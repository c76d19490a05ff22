// Package evolution implements a genetic algorithm over fixed-shape
// specimens. Callers describe a search space as a Phenotype, configure a
// GenePool, and pull successive generations until a satisfying specimen
// appears.
package evolution

// Specimen is one candidate solution: a value for every slot of the shape
// that produced it. Specimens are never modified once bred.
type Specimen[T any] []T

// Population is the collection of specimens comprising one generation.
// Order carries no meaning.
type Population[T any] []Specimen[T]

// Phenotype specifies a problem for a GenePool to search.
// T is the value type each position of a solution can take.
type Phenotype[T any] interface {
	// Shape specifies which values may appear at which positions. The
	// slice at index i lists every value admissible in slot i of a
	// specimen. The shape must be stable across calls; the engine reads
	// it often and never revalidates it.
	Shape() [][]T

	// Fitness scores the provided specimen. All specimens passed in have
	// the same length as Shape(). The score must be non-negative; higher
	// is better. The engine never caches scores, so mutating shared state
	// here is unsafe and slow implementations cost every generation.
	Fitness(specimen Specimen[T]) float64
}
