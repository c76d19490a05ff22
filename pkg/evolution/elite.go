package evolution

import "container/heap"

// eliteHeap is a bounded min-heap of specimens ordered by fitness, so the
// root is always the weakest member held and a stronger candidate can
// displace it in O(log k). Scores are recomputed on every comparison; the
// phenotype stays the single source of truth.
type eliteHeap[T any] struct {
	phenotype Phenotype[T]
	members   []Specimen[T]
}

func (h *eliteHeap[T]) Len() int { return len(h.members) }

func (h *eliteHeap[T]) Less(i, j int) bool {
	return h.phenotype.Fitness(h.members[i]) < h.phenotype.Fitness(h.members[j])
}

func (h *eliteHeap[T]) Swap(i, j int) {
	h.members[i], h.members[j] = h.members[j], h.members[i]
}

func (h *eliteHeap[T]) Push(x interface{}) {
	h.members = append(h.members, x.(Specimen[T]))
}

func (h *eliteHeap[T]) Pop() interface{} {
	old := h.members
	n := len(old)
	member := old[n-1]
	old[n-1] = nil
	h.members = old[:n-1]
	return member
}

func (h *eliteHeap[T]) push(specimen Specimen[T]) {
	heap.Push(h, specimen)
}

// weakest returns the lowest-scoring specimen currently held. The heap
// must not be empty.
func (h *eliteHeap[T]) weakest() Specimen[T] {
	return h.members[0]
}

// replaceWeakest swaps the root for the given specimen and restores heap
// order, avoiding the separate pop and push.
func (h *eliteHeap[T]) replaceWeakest(specimen Specimen[T]) {
	h.members[0] = specimen
	heap.Fix(h, 0)
}
