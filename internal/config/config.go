package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// StoreFileName is the vocabulary file looked for in the working directory
// and in the data directory.
const StoreFileName = "main.clvdb"

type Config struct {
	Language string    `yaml:"language" mapstructure:"language"`
	Input    string    `yaml:"input" mapstructure:"input"`
	Output   string    `yaml:"output" mapstructure:"output"`
	Log      LogConfig `yaml:"log" mapstructure:"log"`
}

type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

func DefaultConfig() *Config {
	return &Config{
		Language: "en",
		Log: LogConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

// Path returns the default config file location.
func Path() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "clv", "config.yaml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "clv", "config.yaml")
}

// DataDir returns the per-user directory holding the default store.
func DataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "clv")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "clv")
}

// Load reads the config file at path (Path() when empty) and applies CLV_*
// environment overrides on top of the defaults. A missing file is not an
// error.
func Load(path string) (*Config, error) {
	if path == "" {
		path = Path()
	}
	cfg := DefaultConfig()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetDefault("language", cfg.Language)
	v.SetDefault("input", cfg.Input)
	v.SetDefault("output", cfg.Output)
	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("log.format", cfg.Log.Format)

	v.SetEnvPrefix("CLV")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: %w", err)
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Language) == "" {
		return fmt.Errorf("config: language must not be empty")
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: log.level %q is invalid (must be debug, info, warn or error)", c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "console", "json":
	default:
		return fmt.Errorf("config: log.format %q is invalid (must be console or json)", c.Log.Format)
	}
	return nil
}

// StorePaths resolves the input and output store locations. Explicit
// overrides win over the config; without either, a main.clvdb in the working
// directory is used when present, else the one in DataDir. Output defaults
// to the resolved input.
func (c *Config) StorePaths(inputOverride, outputOverride string) (input, output string) {
	input = firstNonEmpty(inputOverride, c.Input)
	if input == "" {
		input = defaultStorePath()
	}
	output = firstNonEmpty(outputOverride, c.Output, input)
	return input, output
}

func defaultStorePath() string {
	if _, err := os.Stat(StoreFileName); err == nil {
		return StoreFileName
	}
	return filepath.Join(DataDir(), StoreFileName)
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
