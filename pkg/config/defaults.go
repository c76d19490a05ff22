package config

// GetDefaultConfig returns the baseline experiment configuration. Loaded
// files are merged on top of it, so absent fields keep these values.
func GetDefaultConfig() *Config {
	return &Config{
		Engine: EngineConfig{
			PopulationSize:      100,
			MutationProbability: 0.05,
			EliteChildren:       2,
		},
		Run: RunConfig{
			Generations: 100,
			SampleEvery: 0,
			Trials:      1,
			Concurrency: 1,
		},
		Logging: LoggingConfig{
			Level: "INFO",
		},
	}
}
