package server

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfigDefaults(t *testing.T) {
	cfg := (&Config{}).WithDefaults()
	if cfg.Search.Region != "zh-cn" {
		t.Fatalf("got region %q", cfg.Search.Region)
	}
	if cfg.Search.SafeSearch != "MODERATE" {
		t.Fatalf("got safeSearch %q", cfg.Search.SafeSearch)
	}
	if cfg.Search.NumResults != 50 {
		t.Fatalf("got numResults %d", cfg.Search.NumResults)
	}
	if cfg.Provider.TimeoutSecs != 10 {
		t.Fatalf("got timeout %d", cfg.Provider.TimeoutSecs)
	}
	if cfg.Logging.Level != "info" {
		t.Fatalf("got level %q", cfg.Logging.Level)
	}
	if cfg.Logging.Pretty == nil || !*cfg.Logging.Pretty {
		t.Fatalf("got pretty %v", cfg.Logging.Pretty)
	}
}

func TestLoadConfigYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "search:\n    region: us-en\n    num_results: 10\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Search.Region != "us-en" {
		t.Fatalf("got region %q", cfg.Search.Region)
	}
	if cfg.Search.NumResults != 10 {
		t.Fatalf("got numResults %d", cfg.Search.NumResults)
	}
	// Unset fields still default.
	if cfg.Search.SafeSearch != "MODERATE" {
		t.Fatalf("got safeSearch %q", cfg.Search.SafeSearch)
	}
}

func TestLoadConfigJSON5(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json5")
	content := `{
	// comments are allowed in json5
	search: {region: "jp-jp"},
	logging: {level: "debug"},
}`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Search.Region != "jp-jp" {
		t.Fatalf("got region %q", cfg.Search.Region)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("got level %q", cfg.Logging.Level)
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("WEBSEARCH_REGION", "uk-en")
	t.Setenv("WEBSEARCH_NUM_RESULTS", "7")

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Search.Region != "uk-en" {
		t.Fatalf("got region %q", cfg.Search.Region)
	}
	if cfg.Search.NumResults != 7 {
		t.Fatalf("got numResults %d", cfg.Search.NumResults)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestExampleConfigParses(t *testing.T) {
	path := filepath.Join(t.TempDir(), "example.yaml")
	if err := os.WriteFile(path, []byte(ExampleConfig), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("example config should parse: %v", err)
	}
	if cfg.Search.Region != "zh-cn" {
		t.Fatalf("got region %q", cfg.Search.Region)
	}
}
