package config

// BenchConfig represents the execbench configuration file structure
type BenchConfig struct {
	// Problem describes the SAXPY inputs
	Problem ProblemConfig `yaml:"problem,omitempty" json:"problem,omitempty"`

	// Run controls how cases are timed
	Run RunConfig `yaml:"run,omitempty" json:"run,omitempty"`

	// Defaults contains default settings for output
	Defaults DefaultsConfig `yaml:"defaults,omitempty" json:"defaults,omitempty"`
}

// ProblemConfig describes the vectors z = a*x + y is computed over
type ProblemConfig struct {
	// Size is the number of elements in each vector
	Size int `yaml:"size,omitempty" json:"size,omitempty"`

	// A is the scalar multiplier
	A float64 `yaml:"a,omitempty" json:"a,omitempty"`

	// XFill is the value every element of x starts with
	XFill float64 `yaml:"xFill,omitempty" json:"xFill,omitempty"`

	// YFill is the value every element of y starts with
	YFill float64 `yaml:"yFill,omitempty" json:"yFill,omitempty"`
}

// RunConfig controls the timing loop
type RunConfig struct {
	// Trials is the number of timed passes per case
	Trials int `yaml:"trials,omitempty" json:"trials,omitempty"`

	// Warmup is the number of untimed passes per case
	Warmup int `yaml:"warmup,omitempty" json:"warmup,omitempty"`

	// Cases selects which kernels run (empty means all)
	Cases []string `yaml:"cases,omitempty" json:"cases,omitempty"`
}

// DefaultsConfig contains default configuration values
type DefaultsConfig struct {
	// OutputFormat is the default output format (table, json, yaml)
	OutputFormat string `yaml:"outputFormat,omitempty" json:"outputFormat,omitempty"`

	// NoColor disables colored output
	NoColor bool `yaml:"noColor,omitempty" json:"noColor,omitempty"`
}
