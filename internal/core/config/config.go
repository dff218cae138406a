// Package config handles configuration loading and validation for traduz.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"traduz/internal/core/styles"
)

// Defaults applied to zero-value fields after loading.
const (
	DefaultLocale           = "en"
	DefaultPattern          = "*.json"
	DefaultTranslatedSuffix = "_translated"
)

// Config holds the application configuration.
type Config struct {
	Locale    string    `yaml:"locale"`
	Theme     string    `yaml:"theme"`
	Documents Documents `yaml:"documents"`
}

// Documents configures where source documents live and how translated
// outputs are named.
type Documents struct {
	Dir              string `yaml:"dir"`
	Pattern          string `yaml:"pattern"`
	TranslatedSuffix string `yaml:"translated_suffix"`
}

// Default returns a configuration with all defaults applied.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads the config file at path. A missing file yields defaults; a
// present but unreadable or invalid file is an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

func (c *Config) applyDefaults() {
	if c.Locale == "" {
		c.Locale = DefaultLocale
	}
	if c.Theme == "" {
		c.Theme = styles.DefaultTheme
	}
	if c.Documents.Dir == "" {
		c.Documents.Dir = "."
	}
	if c.Documents.Pattern == "" {
		c.Documents.Pattern = DefaultPattern
	}
	if c.Documents.TranslatedSuffix == "" {
		c.Documents.TranslatedSuffix = DefaultTranslatedSuffix
	}
}
