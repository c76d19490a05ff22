// Package problems ships ready-made phenotypes for the evolution engine:
// a binary toy problem, a phrase matcher, and the introns puzzle the
// engine was originally built to crack.
package problems

import (
	"strings"

	"github.com/machinery-systems/genepool-go/pkg/errors"
	"github.com/machinery-systems/genepool-go/pkg/evolution"
)

// OneMax is the classic warm-up problem: binary slots, and fitness counts
// the ones. The optimum is the all-ones specimen.
type OneMax struct {
	length int
	shape  [][]int
}

// NewOneMax creates a OneMax problem over length binary slots.
func NewOneMax(length int) (*OneMax, error) {
	if length <= 0 {
		return nil, errors.WithFields(
			errors.New(errors.InvalidInput, "length must be positive"),
			errors.Fields{"length": length})
	}

	slot := []int{0, 1}
	shape := make([][]int, length)
	for i := range shape {
		shape[i] = slot
	}

	return &OneMax{length: length, shape: shape}, nil
}

func (p *OneMax) Shape() [][]int {
	return p.shape
}

// Fitness counts the slots set to one.
func (p *OneMax) Fitness(specimen evolution.Specimen[int]) float64 {
	p.mustMatchShape(specimen)

	ones := 0
	for _, v := range specimen {
		if v == 1 {
			ones++
		}
	}
	return float64(ones)
}

// Decode renders the specimen as a bit string.
func (p *OneMax) Decode(specimen evolution.Specimen[int]) string {
	p.mustMatchShape(specimen)

	var b strings.Builder
	for _, v := range specimen {
		b.WriteByte('0' + byte(v))
	}
	return b.String()
}

func (p *OneMax) mustMatchShape(specimen evolution.Specimen[int]) {
	if len(specimen) != p.length {
		panic(errors.WithFields(
			errors.New(errors.InvalidEncoding, "specimen length does not match shape"),
			errors.Fields{"want": p.length, "got": len(specimen)}))
	}
}
