package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config is the complete solver configuration.
type Config struct {
	Dictionary string `yaml:"dictionary" mapstructure:"dictionary"`
	Start      string `yaml:"start" mapstructure:"start"`
	Target     string `yaml:"target" mapstructure:"target"`
	ReportDir  string `yaml:"report_dir,omitempty" mapstructure:"report_dir"`

	Cache     CacheConfig     `yaml:"cache" mapstructure:"cache"`
	Builder   BuilderConfig   `yaml:"builder" mapstructure:"builder"`
	Tokenizer TokenizerConfig `yaml:"tokenizer" mapstructure:"tokenizer"`
	Solver    SolverConfig    `yaml:"solver" mapstructure:"solver"`
	Logging   LoggingConfig   `yaml:"logging" mapstructure:"logging"`
}

// CacheConfig controls the graph cache.
type CacheConfig struct {
	Enabled bool   `yaml:"enabled" mapstructure:"enabled"`
	Backend string `yaml:"backend" mapstructure:"backend"`
}

// BuilderConfig controls dictionary parsing.
type BuilderConfig struct {
	SkipMalformed bool `yaml:"skip_malformed" mapstructure:"skip_malformed"`
}

// TokenizerConfig selects the kagome dictionary used to read kanji input.
type TokenizerConfig struct {
	Dict string `yaml:"dict" mapstructure:"dict"`
}

// SolverConfig controls batch solving.
type SolverConfig struct {
	Workers int `yaml:"workers" mapstructure:"workers"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Dictionary: "noun.csv",
		Start:      "チキュウ",
		Target:     "ツキノイシ",
		Cache: CacheConfig{
			Enabled: true,
			Backend: "gob",
		},
		Tokenizer: TokenizerConfig{Dict: "ipa"},
		Solver:    SolverConfig{Workers: 0},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads the YAML file at path over the defaults. A missing file is not
// an error. SHIRITORI_* environment variables override both, e.g.
// SHIRITORI_CACHE_BACKEND=sqlite.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	v.SetEnvPrefix("shiritori")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
				return nil, err
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("dictionary", d.Dictionary)
	v.SetDefault("start", d.Start)
	v.SetDefault("target", d.Target)
	v.SetDefault("report_dir", d.ReportDir)
	v.SetDefault("cache.enabled", d.Cache.Enabled)
	v.SetDefault("cache.backend", d.Cache.Backend)
	v.SetDefault("builder.skip_malformed", d.Builder.SkipMalformed)
	v.SetDefault("tokenizer.dict", d.Tokenizer.Dict)
	v.SetDefault("solver.workers", d.Solver.Workers)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Dictionary == "" {
		return &ConfigError{Field: "dictionary", Message: "must not be empty"}
	}
	switch c.Cache.Backend {
	case "gob", "sqlite":
	default:
		return &ConfigError{Field: "cache.backend", Message: "must be gob or sqlite"}
	}
	switch c.Tokenizer.Dict {
	case "ipa", "uni":
	default:
		return &ConfigError{Field: "tokenizer.dict", Message: "must be ipa or uni"}
	}
	if c.Solver.Workers < 0 {
		return &ConfigError{Field: "solver.workers", Message: "must not be negative"}
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return &ConfigError{Field: "logging.format", Message: "must be console or json"}
	}
	return nil
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error in field '" + e.Field + "': " + e.Message
}
