package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/machinery-systems/genepool-go/pkg/errors"
)

func TestParseAppliesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
problem:
  name: onemax
  length: 8
`))
	require.NoError(t, err)

	assert.Equal(t, "onemax", cfg.Problem.Name)
	assert.Equal(t, 8, cfg.Problem.Length)
	assert.Equal(t, 100, cfg.Engine.PopulationSize)
	assert.Equal(t, 0.05, cfg.Engine.MutationProbability)
	assert.Equal(t, 2, cfg.Engine.EliteChildren)
	assert.Nil(t, cfg.Engine.CullThreshold)
	assert.Nil(t, cfg.Engine.Seed)
	assert.Equal(t, 100, cfg.Run.Generations)
	assert.Equal(t, 1, cfg.Run.Trials)
	assert.Equal(t, 1, cfg.Run.Concurrency)
	assert.Equal(t, "INFO", cfg.Logging.Level)
	assert.Empty(t, cfg.Journal.Path)
}

func TestParseOverridesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
problem:
  name: introns
  input: puzzle.txt
engine:
  population_size: 10000
  mutation_probability: 0.25
  cull_threshold: 40
  elite_children: 2
  seed: 1234
run:
  generations: 1000
  sample_every: 100
  trials: 4
  concurrency: 2
logging:
  level: debug
journal:
  path: runs.db
`))
	require.NoError(t, err)

	assert.Equal(t, "introns", cfg.Problem.Name)
	assert.Equal(t, "puzzle.txt", cfg.Problem.Input)
	assert.Equal(t, 10000, cfg.Engine.PopulationSize)
	assert.Equal(t, 0.25, cfg.Engine.MutationProbability)
	require.NotNil(t, cfg.Engine.CullThreshold)
	assert.Equal(t, 40.0, *cfg.Engine.CullThreshold)
	require.NotNil(t, cfg.Engine.Seed)
	assert.Equal(t, int64(1234), *cfg.Engine.Seed)
	assert.Equal(t, 1000, cfg.Run.Generations)
	assert.Equal(t, 100, cfg.Run.SampleEvery)
	assert.Equal(t, 4, cfg.Run.Trials)
	assert.Equal(t, 2, cfg.Run.Concurrency)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "runs.db", cfg.Journal.Path)
}

func TestParseExplicitZeroBeatsDefault(t *testing.T) {
	cfg, err := Parse([]byte(`
problem:
  name: phrase
  target: hi
engine:
  population_size: 10
  mutation_probability: 0
  elite_children: 0
`))
	require.NoError(t, err)

	assert.Equal(t, 0.0, cfg.Engine.MutationProbability)
	assert.Equal(t, 0, cfg.Engine.EliteChildren)
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("problem: [unclosed"))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.InvalidInput))
}

func TestParseRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown problem", "problem:\n  name: sudoku\n"},
		{"odd population", "problem:\n  name: onemax\n  length: 4\nengine:\n  population_size: 7\n"},
		{"odd elite children", "problem:\n  name: onemax\n  length: 4\nengine:\n  population_size: 10\n  elite_children: 3\n"},
		{"onemax without length", "problem:\n  name: onemax\n"},
		{"phrase without target", "problem:\n  name: phrase\n"},
		{"zero generations", "problem:\n  name: onemax\n  length: 4\nrun:\n  generations: 0\n"},
		{"bad log level", "problem:\n  name: onemax\n  length: 4\nlogging:\n  level: verbose\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, errors.InvalidInput))
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "experiment.yaml")
	content := "problem:\n  name: phrase\n  target: hello\nengine:\n  population_size: 50\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "phrase", cfg.Problem.Name)
	assert.Equal(t, 50, cfg.Engine.PopulationSize)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.InvalidInput))
}
