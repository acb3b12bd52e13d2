package main

import (
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Config represents the binum configuration file (~/.config/binum/config.yaml).
// Option fields are pointers so "not set" can be told apart from false.
type Config struct {
	// Value defaults
	Endian string `yaml:"endian"`

	// Hex display defaults
	Uppercase *bool `yaml:"uppercase"`
	Prefix    *bool `yaml:"prefix"`
	Padded    *bool `yaml:"padded"`

	// Output
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`

	// Server
	ServerAddress string `yaml:"server_address"`
}

func configPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "binum", "config.yaml")
}

// LoadConfig reads the config file. Returns a zero Config if the file doesn't
// exist or cannot be parsed.
func LoadConfig() Config {
	path := configPath()
	if path == "" {
		return Config{}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}
	}
	return cfg
}

// applyValueConfig applies config file defaults to the shared value flags
// when the corresponding CLI flag was not explicitly set.
func applyValueConfig(c *cli.Command, cfg Config) {
	if cfg.Endian != "" && !c.IsSet("endian") {
		endian = cfg.Endian
	}
	if cfg.LogLevel != "" && !c.IsSet("log-level") {
		logLevel = cfg.LogLevel
	}
	if cfg.LogFormat != "" && !c.IsSet("log-format") {
		logFormat = cfg.LogFormat
	}
}

// applyHexConfig applies hex option defaults from the config file.
func applyHexConfig(c *cli.Command, cfg Config, uppercase, prefix, padded *bool) {
	if cfg.Uppercase != nil && !c.IsSet("uppercase") {
		*uppercase = *cfg.Uppercase
	}
	if cfg.Prefix != nil && !c.IsSet("no-prefix") {
		*prefix = *cfg.Prefix
	}
	if cfg.Padded != nil && !c.IsSet("no-pad") {
		*padded = *cfg.Padded
	}
}

// applyServeConfig applies server defaults from the config file.
func applyServeConfig(c *cli.Command, cfg Config, addr *string) {
	if cfg.ServerAddress != "" && !c.IsSet("addr") {
		*addr = cfg.ServerAddress
	}
	if cfg.LogLevel != "" && !c.IsSet("log-level") {
		logLevel = cfg.LogLevel
	}
	if cfg.LogFormat != "" && !c.IsSet("log-format") {
		logFormat = cfg.LogFormat
	}
}
