// Package config loads and validates YAML experiment files for the CLI and
// other file-driven callers. Engines constructed directly in code do not
// need it; they validate their own options.
package config

// Config describes one experiment: which problem to search, how the engine
// is configured, and how the run is driven.
type Config struct {
	// Problem selects and parameterizes the search problem
	Problem ProblemConfig `yaml:"problem" validate:"required"`

	// Engine configures the gene pool
	Engine EngineConfig `yaml:"engine" validate:"required"`

	// Run drives the evolution loop
	Run RunConfig `yaml:"run,omitempty"`

	// Logging configures log output
	Logging LoggingConfig `yaml:"logging,omitempty"`

	// Journal optionally records results
	Journal JournalConfig `yaml:"journal,omitempty"`
}

// ProblemConfig selects one of the built-in problems. Fields other than
// Name apply only to the problem they parameterize.
type ProblemConfig struct {
	// Name of the built-in problem
	Name string `yaml:"name" validate:"required,problem_name"`

	// Input is the puzzle file for introns; empty means stdin
	Input string `yaml:"input,omitempty"`

	// Length is the number of slots for onemax
	Length int `yaml:"length,omitempty" validate:"omitempty,min=1"`

	// Target is the phrase to search for
	Target string `yaml:"target,omitempty"`
}

// EngineConfig mirrors the gene pool construction parameters. The engine
// re-checks these at construction; validating here reports file problems
// before any work starts.
type EngineConfig struct {
	// PopulationSize must be a positive even number
	PopulationSize int `yaml:"population_size" validate:"required,min=2,even"`

	// MutationProbability is deliberately not range checked
	MutationProbability float64 `yaml:"mutation_probability"`

	// CullThreshold is optional; absent means no culling
	CullThreshold *float64 `yaml:"cull_threshold,omitempty"`

	// EliteChildren must be even; 0 disables the feature
	EliteChildren int `yaml:"elite_children,omitempty" validate:"min=0,even"`

	// Seed fixes the random source for reproducible runs
	Seed *int64 `yaml:"seed,omitempty"`
}

// RunConfig drives the evolution loop around the engine.
type RunConfig struct {
	// Generations to evolve past the initial population
	Generations int `yaml:"generations,omitempty" validate:"min=1"`

	// SampleEvery records the best fitness every n generations; 0 disables
	SampleEvery int `yaml:"sample_every,omitempty" validate:"min=0"`

	// Trials is the number of independent replicates
	Trials int `yaml:"trials,omitempty" validate:"min=1"`

	// Concurrency bounds how many trials run at once
	Concurrency int `yaml:"concurrency,omitempty" validate:"min=1"`
}

// LoggingConfig configures log output for the run.
type LoggingConfig struct {
	// Level is one of DEBUG, INFO, WARN, ERROR, FATAL
	Level string `yaml:"level,omitempty" validate:"omitempty,log_level"`

	// File receives JSON-line logs in addition to the console when set
	File string `yaml:"file,omitempty"`
}

// JournalConfig configures result recording.
type JournalConfig struct {
	// Path to the sqlite journal; empty disables recording
	Path string `yaml:"path,omitempty"`
}
