package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/machinery-systems/genepool-go/pkg/errors"
)

func TestGetKnownProblems(t *testing.T) {
	for _, name := range []string{"onemax", "phrase", "introns"} {
		problem, err := Get(name)
		require.NoError(t, err)
		assert.Equal(t, name, problem.Name)
		assert.NotEmpty(t, problem.Summary)
		assert.NotEmpty(t, problem.Example)
	}
}

func TestGetUnknownProblem(t *testing.T) {
	_, err := Get("sudoku")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.InvalidInput))
}

func TestNamesSortedAndComplete(t *testing.T) {
	assert.Equal(t, []string{"introns", "onemax", "phrase"}, Names())
}

func TestAllMatchesNames(t *testing.T) {
	all := All()
	names := Names()
	require.Len(t, all, len(names))
	for i, problem := range all {
		assert.Equal(t, names[i], problem.Name)
	}
}
