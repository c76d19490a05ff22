package evolution

// Fittest scans a population for its best specimen, re-evaluating every
// member, and returns the winner together with its score. The earliest of
// equally fit specimens wins. An empty population yields nil and a
// negative score.
func Fittest[T any](phenotype Phenotype[T], population Population[T]) (Specimen[T], float64) {
	var best Specimen[T]
	bestScore := -1.0
	for _, specimen := range population {
		if score := phenotype.Fitness(specimen); score > bestScore {
			best = specimen
			bestScore = score
		}
	}
	return best, bestScore
}
