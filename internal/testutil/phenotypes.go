// Package testutil provides shared test doubles for packages built on top
// of the evolution engine.
package testutil

import (
	"sync"

	"github.com/machinery-systems/genepool-go/pkg/evolution"
)

// IntPhenotype is a stub problem over integer slots with a pluggable
// fitness function. Scoring is recorded and safe for concurrent use, since
// trial runners share one phenotype across goroutines.
type IntPhenotype struct {
	ShapeValue  [][]int
	FitnessFunc func(evolution.Specimen[int]) float64

	mu     sync.Mutex
	scored int
}

func (p *IntPhenotype) Shape() [][]int {
	return p.ShapeValue
}

func (p *IntPhenotype) Fitness(specimen evolution.Specimen[int]) float64 {
	p.mu.Lock()
	p.scored++
	p.mu.Unlock()

	if p.FitnessFunc == nil {
		return 0
	}
	return p.FitnessFunc(specimen)
}

// ScoredCount reports how many times Fitness has been called.
func (p *IntPhenotype) ScoredCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.scored
}

// UniformShape builds a shape with the value set {0..values-1} in every
// slot.
func UniformShape(slots, values int) [][]int {
	candidates := make([]int, values)
	for v := range candidates {
		candidates[v] = v
	}
	shape := make([][]int, slots)
	for i := range shape {
		shape[i] = candidates
	}
	return shape
}

// ConstantSpecimen builds a specimen holding the same value in every slot.
func ConstantSpecimen(length, value int) evolution.Specimen[int] {
	specimen := make(evolution.Specimen[int], length)
	for i := range specimen {
		specimen[i] = value
	}
	return specimen
}

// SumFitness scores a specimen as the sum of its values.
func SumFitness(specimen evolution.Specimen[int]) float64 {
	total := 0.0
	for _, v := range specimen {
		total += float64(v)
	}
	return total
}
