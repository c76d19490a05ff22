package evolution

// Generations is a pull-based view of the evolution sequence. It is
// logically infinite: each call to Next applies one more evolution step,
// and the caller decides when to stop pulling. Only the current population
// is retained; there is no buffering and no rewind.
type Generations[T any] struct {
	pool    *GenePool[T]
	current Population[T]
	seeded  bool
	started bool
}

// Generations returns the evolution sequence for this pool, starting from
// an initial population generated lazily on the first pull.
func (gp *GenePool[T]) Generations() *Generations[T] {
	return &Generations[T]{pool: gp}
}

// GenerationsFrom returns the evolution sequence starting from the given
// seed population.
func (gp *GenePool[T]) GenerationsFrom(seed Population[T]) *Generations[T] {
	return &Generations[T]{pool: gp, current: seed, seeded: true}
}

// Next returns the next population in the sequence. The first call yields
// the starting population as-is; every later call evolves it one step.
func (g *Generations[T]) Next() Population[T] {
	if !g.started {
		g.started = true
		if !g.seeded {
			g.current = g.pool.InitialPopulation()
		}
		return g.current
	}
	g.current = g.pool.Evolve(g.current)
	return g.current
}

// Current returns the population most recently returned by Next without
// advancing the sequence. It is nil before the first pull.
func (g *Generations[T]) Current() Population[T] {
	if !g.started {
		return nil
	}
	return g.current
}
