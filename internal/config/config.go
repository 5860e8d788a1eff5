package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the tunable thresholds for an analysis run. Values come from
// .prosecheck.yaml when present; flags may override them.
type Config struct {
	// MinSentenceLength is the trimmed rune count a sentence candidate
	// must exceed to survive segmentation
	MinSentenceLength int `yaml:"min_sentence_length"`

	// MinSentenceTokens is the minimum whitespace-separated token count
	MinSentenceTokens int `yaml:"min_sentence_tokens"`

	// ShortBlockLimit is the block length under which the whole block
	// fragment is kept for every sentence
	ShortBlockLimit int `yaml:"short_block_limit"`

	// MaxSentenceWords is the long-sentence rule's word limit
	MaxSentenceWords int `yaml:"max_sentence_words"`

	// RuleTimeout bounds a single rule invocation
	RuleTimeout Duration `yaml:"rule_timeout"`

	// Workers bounds concurrent rule invocations
	Workers int `yaml:"workers"`

	// DisabledRules lists rule IDs or families to skip
	DisabledRules []string `yaml:"disabled_rules"`

	// StatsDB is the path of the usage analytics database; empty disables
	StatsDB string `yaml:"stats_db"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		MinSentenceLength: 4,
		MinSentenceTokens: 2,
		ShortBlockLimit:   120,
		MaxSentenceWords:  40,
		RuleTimeout:       Duration(10 * time.Second),
		Workers:           4,
	}
}

// Load reads configuration from path, falling back to defaults when the
// file does not exist.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	return cfg, nil
}

// Duration is a time.Duration that unmarshals from YAML strings like "10s"
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the standard library duration
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}
