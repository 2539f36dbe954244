package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/aryankumar/execbench/internal/util"
)

const (
	defaultConfigName = ".execbench"
	defaultConfigDir  = ".execbench"
)

// Default values applied to unset fields
const (
	DefaultSize         = 1 << 25
	DefaultA            = 42
	DefaultXFill        = 7
	DefaultYFill        = 13
	DefaultTrials       = 100
	DefaultWarmup       = 1
	DefaultOutputFormat = "table"
)

var validOutputFormats = map[string]bool{
	"table": true,
	"json":  true,
	"yaml":  true,
}

// envKeys lists every BenchConfig key so environment variables apply even when
// the key is absent from the file
var envKeys = []string{
	"problem.size",
	"problem.a",
	"problem.xFill",
	"problem.yFill",
	"run.trials",
	"run.warmup",
	"run.cases",
	"defaults.outputFormat",
	"defaults.noColor",
}

// Manager handles execbench configuration
type Manager struct {
	configPath string
	config     *BenchConfig
	viper      *viper.Viper
}

// NewManager creates a new configuration manager
func NewManager(configPath string) *Manager {
	return &Manager{
		configPath: configPath,
		viper:      viper.New(),
		config:     &BenchConfig{},
	}
}

// Load loads the configuration from file
// A missing file is not an error; defaults are applied either way
func (m *Manager) Load() (*BenchConfig, error) {
	if m.configPath != "" {
		m.viper.SetConfigFile(m.configPath)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}

		// Check ~/.execbench/.execbench.yaml, then ~/.execbench.yaml
		m.viper.AddConfigPath(filepath.Join(home, defaultConfigDir))
		m.viper.AddConfigPath(home)
		m.viper.SetConfigName(defaultConfigName)
		m.viper.SetConfigType("yaml")
	}

	// EXECBENCH_RUN_TRIALS overrides run.trials
	m.viper.SetEnvPrefix("EXECBENCH")
	m.viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	m.viper.AutomaticEnv()
	for _, key := range envKeys {
		if err := m.viper.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind environment for %s: %w", key, err)
		}
	}

	m.config = &BenchConfig{}

	if err := m.viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if err := m.viper.Unmarshal(m.config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	m.applyDefaults()

	return m.config, nil
}

// Save writes the current configuration to file
func (m *Manager) Save() error {
	path, err := m.WritePath()
	if err != nil {
		return err
	}
	m.configPath = path

	dir := filepath.Dir(m.configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	m.viper.Set("problem", m.config.Problem)
	m.viper.Set("run", m.config.Run)
	m.viper.Set("defaults", m.config.Defaults)

	if err := m.viper.WriteConfigAs(m.configPath); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// WritePath returns the file Save writes to
// Without an explicit path this is ~/.execbench/.execbench.yaml, the first place Load looks
func (m *Manager) WritePath() (string, error) {
	if m.configPath != "" {
		return m.configPath, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, defaultConfigDir, defaultConfigName+".yaml"), nil
}

// GetConfig returns the current configuration
func (m *Manager) GetConfig() *BenchConfig {
	return m.config
}

// SetConfig replaces the current configuration; defaults fill unset fields
func (m *Manager) SetConfig(cfg BenchConfig) {
	m.config = &cfg
	m.applyDefaults()
}

// Path returns the config file in use, or "" if none was found
func (m *Manager) Path() string {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	return m.configPath
}

// applyDefaults sets default values for configuration
func (m *Manager) applyDefaults() {
	if m.config == nil {
		return
	}

	if m.config.Problem.Size == 0 {
		m.config.Problem.Size = DefaultSize
	}
	if m.config.Problem.A == 0 {
		m.config.Problem.A = DefaultA
	}
	if m.config.Problem.XFill == 0 {
		m.config.Problem.XFill = DefaultXFill
	}
	if m.config.Problem.YFill == 0 {
		m.config.Problem.YFill = DefaultYFill
	}

	if m.config.Run.Trials == 0 {
		m.config.Run.Trials = DefaultTrials
	}
	if m.config.Run.Warmup == 0 {
		m.config.Run.Warmup = DefaultWarmup
	}

	if m.config.Defaults.OutputFormat == "" {
		m.config.Defaults.OutputFormat = DefaultOutputFormat
	}
}

// Validate checks a configuration for values the benchmark cannot run with
func Validate(cfg *BenchConfig) error {
	if cfg == nil {
		return util.NewValidationError("config", nil, "configuration is required")
	}

	errs := &util.MultiError{}
	if cfg.Problem.Size < 0 {
		errs.Add(util.NewValidationError("problem.size", cfg.Problem.Size, "must be >= 0"))
	}
	if cfg.Run.Trials < 1 {
		errs.Add(util.NewValidationError("run.trials", cfg.Run.Trials, "must be >= 1"))
	}
	if cfg.Run.Warmup < 0 {
		errs.Add(util.NewValidationError("run.warmup", cfg.Run.Warmup, "must be >= 0"))
	}
	if !validOutputFormats[cfg.Defaults.OutputFormat] {
		errs.Add(util.NewValidationError("defaults.outputFormat", cfg.Defaults.OutputFormat, "must be one of table, json, yaml"))
	}

	return errs.ErrorOrNil()
}
