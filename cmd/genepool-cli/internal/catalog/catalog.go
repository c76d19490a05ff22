// Package catalog describes the built-in problems so CLI commands can
// list and explain them without constructing phenotypes.
package catalog

import (
	"sort"

	"github.com/machinery-systems/genepool-go/pkg/errors"
)

// Problem is the catalog entry for one built-in problem.
type Problem struct {
	Name        string
	DisplayName string
	Summary     string
	Description string
	Fitness     string
	Flags       []string
	Example     string
}

var problems = map[string]Problem{
	"onemax": {
		Name:        "onemax",
		DisplayName: "OneMax",
		Summary:     "Evolve a bit string into all ones",
		Description: `The classic hello-world of genetic algorithms. Specimens are bit
strings of a fixed length, and evolution pushes them toward the string
of all ones. Useful for sanity-checking engine settings because the
optimum and its fitness are known in advance.`,
		Fitness: "Number of one bits; the maximum equals the string length.",
		Flags:   []string{"--length"},
		Example: "genepool-cli solve onemax --length 32 --generations 60",
	},
	"phrase": {
		Name:        "phrase",
		DisplayName: "Phrase",
		Summary:     "Recover a target phrase letter by letter",
		Description: `Specimens are strings over the English alphabet (letters and
space) with the same length as the target phrase. Evolution rewards
every position that already holds the right character, so the phrase
assembles gradually out of noise.`,
		Fitness: "Number of positions matching the target phrase.",
		Flags:   []string{"--target"},
		Example: `genepool-cli solve phrase --target "to be or not to be" --population 200`,
	},
	"introns": {
		Name:        "introns",
		DisplayName: "Introns",
		Summary:     "Silence bases of a DNA sequence until every read maps",
		Description: `Given a DNA sequence and a set of short reads, evolution searches
for which bases to keep expressed so that every read appears in the
expressed subsequence. Each slot of a specimen silences or expresses
one base. Puzzles are read from a file or stdin: the sequence on the
first line, a read count on the second, then one read per line.`,
		Fitness: "Percentage of reads contained in the expressed sequence; 100 means every read maps.",
		Flags:   []string{"--input"},
		Example: "genepool-cli solve introns --input puzzle.txt --generations 200",
	},
}

// Get looks a problem up by its lowercase name.
func Get(name string) (Problem, error) {
	problem, ok := problems[name]
	if !ok {
		return Problem{}, errors.WithFields(
			errors.Newf(errors.InvalidInput, "unknown problem %q", name),
			errors.Fields{"available": Names()},
		)
	}
	return problem, nil
}

// All returns every catalog entry, ordered by name.
func All() []Problem {
	all := make([]Problem, 0, len(problems))
	for _, name := range Names() {
		all = append(all, problems[name])
	}
	return all
}

// Names returns the problem names in sorted order.
func Names() []string {
	names := make([]string, 0, len(problems))
	for name := range problems {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
