package server

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/yosuke-furukawa/json5/encoding/json5"
	"go.mau.fi/util/ptr"
	"gopkg.in/yaml.v3"

	"github.com/beeper/websearch-mcp/pkg/shared/stringutil"
	"github.com/beeper/websearch-mcp/pkg/shared/toolspec"
)

//go:embed example-config.yaml
var ExampleConfig string

// Config is the server configuration. Every field has a working default;
// a config file and WEBSEARCH_* environment variables override them.
type Config struct {
	Search   SearchConfig   `yaml:"search" json:"search"`
	Provider ProviderConfig `yaml:"provider" json:"provider"`
	Logging  LoggingConfig  `yaml:"logging" json:"logging"`
}

// SearchConfig holds the per-request defaults applied when the caller omits
// the corresponding option.
type SearchConfig struct {
	Region     string `yaml:"region" json:"region"`
	SafeSearch string `yaml:"safe_search" json:"safe_search"`
	NumResults int    `yaml:"num_results" json:"num_results"`
}

// ProviderConfig configures the DuckDuckGo client.
type ProviderConfig struct {
	Endpoint    string `yaml:"endpoint" json:"endpoint"`
	TimeoutSecs int    `yaml:"timeout_seconds" json:"timeout_seconds"`
}

// LoggingConfig configures the process logger. Logs go to stderr; stdout
// belongs to the MCP stdio transport.
type LoggingConfig struct {
	Level  string `yaml:"level" json:"level"`
	Pretty *bool  `yaml:"pretty" json:"pretty"`
}

// WithDefaults fills unset fields in place and returns the config.
func (c *Config) WithDefaults() *Config {
	if c == nil {
		c = &Config{}
	}
	if c.Search.Region == "" {
		c.Search.Region = toolspec.DefaultRegion
	}
	if c.Search.SafeSearch == "" {
		c.Search.SafeSearch = toolspec.DefaultSafeSearch
	}
	if c.Search.NumResults <= 0 {
		c.Search.NumResults = toolspec.DefaultNumResults
	}
	if c.Provider.TimeoutSecs <= 0 {
		c.Provider.TimeoutSecs = 10
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Pretty == nil {
		c.Logging.Pretty = ptr.Ptr(true)
	}
	return c
}

// LoadConfig reads an optional config file (YAML by default, JSON5 for
// .json/.json5 paths), layers environment overrides on top, and fills
// defaults. An empty path loads defaults and environment only.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".json", ".json5":
			if err := json5.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing config: %w", err)
			}
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing config: %w", err)
			}
		}
	}
	cfg.applyEnv()
	return cfg.WithDefaults(), nil
}

func (c *Config) applyEnv() {
	c.Search.Region = stringutil.EnvOr(c.Search.Region, os.Getenv("WEBSEARCH_REGION"))
	c.Search.SafeSearch = stringutil.EnvOr(c.Search.SafeSearch, os.Getenv("WEBSEARCH_SAFE_SEARCH"))
	if raw := strings.TrimSpace(os.Getenv("WEBSEARCH_NUM_RESULTS")); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			c.Search.NumResults = n
		}
	}
	c.Provider.Endpoint = stringutil.EnvOr(c.Provider.Endpoint, os.Getenv("WEBSEARCH_ENDPOINT"))
	c.Logging.Level = stringutil.EnvOr(c.Logging.Level, os.Getenv("WEBSEARCH_LOG_LEVEL"))
}
