// Package config loads the optional terra-save CLI/editor configuration
// file (catalog directory, log level, default output suffixes). It never
// touches save-file data; that stays entirely inside internal/codec.
package config

import (
	"os"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Config is the on-disk shape of a terra-save config file, using YAML
// rather than JSON.
type Config struct {
	CatalogDir       string `yaml:"catalogDir"`
	LogLevel         string `yaml:"logLevel"`
	PlaintextSuffix  string `yaml:"plaintextSuffix"`
	EncryptedSuffix  string `yaml:"encryptedSuffix"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		CatalogDir:      "catalog",
		LogLevel:        "info",
		PlaintextSuffix: ".dplr",
		EncryptedSuffix: ".plr",
	}
}

// Load reads and parses a YAML config file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "reading config %s", path)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "parsing config %s", path)
	}
	return cfg, nil
}

// Save writes cfg to path as YAML.
func (c Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "marshaling config")
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, "writing config %s", path)
	}
	return nil
}
