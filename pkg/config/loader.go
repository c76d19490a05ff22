package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/machinery-systems/genepool-go/pkg/errors"
)

// Load reads, merges and validates an experiment file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WithFields(
			errors.Wrap(err, errors.InvalidInput, "reading experiment file"),
			errors.Fields{"path": path})
	}
	return Parse(data)
}

// Parse merges the experiment data over the defaults and validates the
// result. Fields absent from the data keep their default values.
func Parse(data []byte) (*Config, error) {
	config := &Config{}
	if err := loadDefaults(config); err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, errors.Wrap(err, errors.InvalidInput, "parsing experiment file")
	}

	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(err, errors.InvalidInput, "experiment validation failed")
	}

	return config, nil
}

// loadDefaults seeds config with the default values. The YAML round-trip
// keeps the merge semantics identical to loading a file.
func loadDefaults(config *Config) error {
	data, err := yaml.Marshal(GetDefaultConfig())
	if err != nil {
		return errors.Wrap(err, errors.Unknown, "marshaling default configuration")
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return errors.Wrap(err, errors.Unknown, "unmarshaling default configuration")
	}

	return nil
}
