package model

// Config holds the complete run configuration
type Config struct {
	Rules       RulesConfig       `yaml:"rules" json:"rules"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" json:"concurrency"`
	Output      OutputConfig      `yaml:"output" json:"output"`
}

// RulesConfig configures the rule directories for ingestion
type RulesConfig struct {
	InternalDir  string `yaml:"internal_dir" json:"internal_dir"`   // Built-in rule root
	ExternalDir  string `yaml:"external_dir" json:"external_dir"`   // User-supplied rule root (optional)
	SkipInternal bool   `yaml:"skip_internal" json:"skip_internal"` // Run without built-in rules
}

// ConcurrencyConfig bounds parallel work during ingestion
type ConcurrencyConfig struct {
	ParseWorkers int `yaml:"parse_workers" json:"parse_workers"` // Concurrent document parsers per root
}

// OutputConfig controls diagnostics verbosity
type OutputConfig struct {
	Verbose bool `yaml:"verbose" json:"verbose"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Rules: RulesConfig{
			InternalDir:  "",
			ExternalDir:  "",
			SkipInternal: false,
		},
		Concurrency: ConcurrencyConfig{
			ParseWorkers: 8,
		},
		Output: OutputConfig{
			Verbose: false,
		},
	}
}
