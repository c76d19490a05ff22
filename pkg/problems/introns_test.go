package problems

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/machinery-systems/genepool-go/pkg/errors"
	"github.com/machinery-systems/genepool-go/pkg/evolution"
)

// specimenFromPattern builds a specimen from a string of '.' (silent) and
// 'X' (expressed) markers.
func specimenFromPattern(pattern string) evolution.Specimen[Expression] {
	specimen := make(evolution.Specimen[Expression], len(pattern))
	for i, c := range pattern {
		if c == 'X' {
			specimen[i] = Expressed
		}
	}
	return specimen
}

func TestNewIntronsValidation(t *testing.T) {
	_, err := NewIntrons("", []string{"AC"})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.InvalidInput))

	_, err = NewIntrons("TAGC", nil)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.InvalidInput))
}

func TestIntronsShape(t *testing.T) {
	problem, err := NewIntrons("TAGC", []string{"AG"})
	require.NoError(t, err)

	shape := problem.Shape()
	require.Len(t, shape, 4)
	for _, slot := range shape {
		assert.Equal(t, []Expression{Silent, Expressed}, slot)
	}
}

func TestIntronsDecode(t *testing.T) {
	problem, err := NewIntrons("TAGCGCGT", []string{"AC"})
	require.NoError(t, err)

	tests := []struct {
		pattern string
		want    string
	}{
		{"XXXXXXXX", "TAGCGCGT"},
		{"........", ""},
		{".X.X..XX", "ACGT"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, problem.Decode(specimenFromPattern(tt.pattern)), "pattern %s", tt.pattern)
	}
}

func TestIntronsFitness(t *testing.T) {
	// The contest example: reads AC, CGCG and GT against TAGCGCGT.
	problem, err := NewIntrons("TAGCGCGT", []string{"AC", "CGCG", "GT"})
	require.NoError(t, err)

	// ACGT contains AC and GT but not CGCG.
	assert.InDelta(t, 200.0/3.0, problem.Fitness(specimenFromPattern(".X.X..XX")), 1e-9)

	// ACGCGT contains all three reads.
	assert.Equal(t, 100.0, problem.Fitness(specimenFromPattern(".X.XXXXX")))

	// Nothing expressed contains nothing.
	assert.Equal(t, 0.0, problem.Fitness(specimenFromPattern("........")))
}

func TestIntronsRejectsForeignSpecimens(t *testing.T) {
	problem, err := NewIntrons("TAGC", []string{"AG"})
	require.NoError(t, err)

	requireInvalidEncodingPanic(t, func() {
		problem.Fitness(specimenFromPattern(".."))
	})
	requireInvalidEncodingPanic(t, func() {
		problem.Decode(specimenFromPattern("......"))
	})
}

func TestIntronsAccessors(t *testing.T) {
	reads := []string{"AC", "GT"}
	problem, err := NewIntrons("TAGC", reads)
	require.NoError(t, err)

	assert.Equal(t, "TAGC", problem.Sequence())
	assert.Equal(t, reads, problem.Reads())

	// Mutating either slice must not affect the problem.
	problem.Reads()[0] = "zz"
	reads[1] = "zz"
	assert.Equal(t, []string{"AC", "GT"}, problem.Reads())
}

func TestParseIntronsPuzzle(t *testing.T) {
	input := "TAGCGCGT\n3\nAC\nCGCG\nGT\n"

	problem, err := ParseIntronsPuzzle(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, "TAGCGCGT", problem.Sequence())
	assert.Equal(t, []string{"AC", "CGCG", "GT"}, problem.Reads())
}

func TestParseIntronsPuzzleHandlesCarriageReturns(t *testing.T) {
	input := "TAGCGCGT\r\n2\r\nAC\r\nGT\r\n"

	problem, err := ParseIntronsPuzzle(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, "TAGCGCGT", problem.Sequence())
	assert.Equal(t, []string{"AC", "GT"}, problem.Reads())
}

func TestParseIntronsPuzzleErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty input", ""},
		{"missing count", "TAGC\n"},
		{"count not a number", "TAGC\nthree\nAC\n"},
		{"count not positive", "TAGC\n0\n"},
		{"missing reads", "TAGC\n3\nAC\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseIntronsPuzzle(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, errors.InvalidInput))
		})
	}
}
