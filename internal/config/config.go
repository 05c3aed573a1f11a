// Package config loads the toyrobot CLI configuration from config.yaml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	KeyDataDir = "data_dir"
	KeyStore   = "store"
	KeyBoard   = "board"
	KeyOutput  = "output"

	// DefaultDir is used when neither --config-dir nor TOYROBOT_CONFIG_DIR is set.
	DefaultDir = ".toyrobot"

	OutputText = "text"
	OutputJSON = "json"
)

// defaultConfigYAML is written to config.yaml on first run.
const defaultConfigYAML = `# toyrobot configuration

# Directory holding toyrobot.db (relative paths are taken from the working directory)
data_dir: .toyrobot

# Persist every run so "toyrobot show" and "toyrobot history" can find it
store: true

# Draw the table after each run
board: false

# Output format for run results: text or json
output: text
`

var ErrInvalidOutput = errors.New("invalid output format")

// Config is the resolved CLI configuration.
type Config struct {
	Dir     string
	DataDir string
	Store   bool
	Board   bool
	Output  string
}

// Load reads config.yaml from dir, creating the directory and a default file
// on first run. A missing config.yaml is not an error.
func Load(dir string) (*Config, error) {
	v, err := read(dir)
	if err != nil {
		return nil, err
	}
	cfg := &Config{
		Dir:     dir,
		DataDir: v.GetString(KeyDataDir),
		Store:   v.GetBool(KeyStore),
		Board:   v.GetBool(KeyBoard),
		Output:  v.GetString(KeyOutput),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Output {
	case OutputText, OutputJSON:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidOutput, c.Output)
}

func read(dir string) (*viper.Viper, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}
	if err := ensureDefaultConfigFile(dir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(KeyDataDir, DefaultDir)
	v.SetDefault(KeyStore, true)
	v.SetDefault(KeyBoard, false)
	v.SetDefault(KeyOutput, OutputText)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(dir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

func ensureDefaultConfigFile(dir string) error {
	path := filepath.Join(dir, configFileExt)
	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}
	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
