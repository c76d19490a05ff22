package problems

import (
	"github.com/machinery-systems/genepool-go/pkg/errors"
	"github.com/machinery-systems/genepool-go/pkg/evolution"
)

// Phrase searches for a target string: one slot per character, drawing
// from a shared alphabet, with fitness counting positions that already
// match. It exercises slots with many admissible values.
type Phrase struct {
	target []rune
	shape  [][]rune
}

// NewPhrase creates a phrase-matching problem. When alphabet is empty, the
// distinct runes of the target are used. An alphabet missing some target
// rune is accepted; it just caps the attainable score.
func NewPhrase(target string, alphabet []rune) (*Phrase, error) {
	runes := []rune(target)
	if len(runes) == 0 {
		return nil, errors.New(errors.InvalidInput, "target must not be empty")
	}

	if len(alphabet) == 0 {
		alphabet = distinctRunes(runes)
	} else {
		alphabet = append([]rune(nil), alphabet...)
	}

	shape := make([][]rune, len(runes))
	for i := range shape {
		shape[i] = alphabet
	}

	return &Phrase{target: runes, shape: shape}, nil
}

// EnglishAlphabet returns lowercase and uppercase letters plus a space,
// a reasonable alphabet for demo phrases.
func EnglishAlphabet() []rune {
	return []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ ")
}

func (p *Phrase) Shape() [][]rune {
	return p.shape
}

// Fitness counts the positions whose value equals the target character.
func (p *Phrase) Fitness(specimen evolution.Specimen[rune]) float64 {
	p.mustMatchShape(specimen)

	matches := 0
	for i, r := range specimen {
		if r == p.target[i] {
			matches++
		}
	}
	return float64(matches)
}

// Decode renders the specimen as a string.
func (p *Phrase) Decode(specimen evolution.Specimen[rune]) string {
	p.mustMatchShape(specimen)
	return string(specimen)
}

func (p *Phrase) mustMatchShape(specimen evolution.Specimen[rune]) {
	if len(specimen) != len(p.target) {
		panic(errors.WithFields(
			errors.New(errors.InvalidEncoding, "specimen length does not match shape"),
			errors.Fields{"want": len(p.target), "got": len(specimen)}))
	}
}

func distinctRunes(runes []rune) []rune {
	seen := make(map[rune]struct{}, len(runes))
	distinct := make([]rune, 0, len(runes))
	for _, r := range runes {
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		distinct = append(distinct, r)
	}
	return distinct
}
