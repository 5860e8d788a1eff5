package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.MinSentenceLength != 4 {
		t.Errorf("MinSentenceLength = %d, want 4", cfg.MinSentenceLength)
	}
	if cfg.MinSentenceTokens != 2 {
		t.Errorf("MinSentenceTokens = %d, want 2", cfg.MinSentenceTokens)
	}
	if cfg.RuleTimeout.Std() != 10*time.Second {
		t.Errorf("RuleTimeout = %v, want 10s", cfg.RuleTimeout.Std())
	}
	if cfg.Workers != 4 {
		t.Errorf("Workers = %d, want 4", cfg.Workers)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.MinSentenceLength != Default().MinSentenceLength {
		t.Error("missing file did not fall back to defaults")
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".prosecheck.yaml")
	content := `
min_sentence_length: 6
rule_timeout: 2s
workers: 2
disabled_rules:
  - style/adverb
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.MinSentenceLength != 6 {
		t.Errorf("MinSentenceLength = %d, want 6", cfg.MinSentenceLength)
	}
	if cfg.RuleTimeout.Std() != 2*time.Second {
		t.Errorf("RuleTimeout = %v, want 2s", cfg.RuleTimeout.Std())
	}
	if cfg.Workers != 2 {
		t.Errorf("Workers = %d, want 2", cfg.Workers)
	}
	if len(cfg.DisabledRules) != 1 || cfg.DisabledRules[0] != "style/adverb" {
		t.Errorf("DisabledRules = %v", cfg.DisabledRules)
	}
	// Values not present keep their defaults.
	if cfg.MinSentenceTokens != 2 {
		t.Errorf("MinSentenceTokens = %d, want default 2", cfg.MinSentenceTokens)
	}
}

func TestLoadBadDuration(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".prosecheck.yaml")
	if err := os.WriteFile(path, []byte("rule_timeout: nonsense\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() accepted an invalid duration")
	}
}
