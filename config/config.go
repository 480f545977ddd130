// Package config holds the flashcard tool settings.
package config

import (
	"fmt"
	"os"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/viranchils96/slovak-flashcards/stemmer"
)

type Config struct {
	// Language of the card keys; selects the stemmer and stopwords.
	Language string `yaml:"language"`
	// Stem matches imported words against known cards by stem instead of
	// the exact lower-cased form.
	Stem bool `yaml:"stem"`
	// Shuffle reorders the deck by note priority.
	Shuffle bool `yaml:"shuffle"`
	// Trivials drops cards whose key equals the translation.
	Trivials bool `yaml:"trivials"`

	Import     string   `yaml:"import"`
	Dedup      []string `yaml:"dedup"`
	Search     string   `yaml:"search"`
	MaxResults int      `yaml:"max_results"`
	Shards     int      `yaml:"shards"`
	// Seed fixes the shuffle order; 0 picks a random one.
	Seed    uint64 `yaml:"seed"`
	Verbose bool   `yaml:"verbose"`
}

func Default() Config {
	return Config{
		Language:   "slovak",
		Stem:       true,
		Shuffle:    true,
		Trivials:   true,
		MaxResults: 10,
		Shards:     16,
	}
}

// Load reads a YAML file over the defaults. An empty path returns the
// defaults.
func Load(path string) (Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("parse %s: %w", path, err)
	}
	return c, nil
}

func (c Config) Validate() (err error) {
	if _, e := stemmer.Canonical(c.Language); e != nil {
		err = multierr.Append(err, e)
	}
	if c.MaxResults < 1 {
		err = multierr.Append(err, fmt.Errorf("max_results must be positive, got %d", c.MaxResults))
	}
	if c.Shards < 1 {
		err = multierr.Append(err, fmt.Errorf("shards must be positive, got %d", c.Shards))
	}
	return err
}
