package app

import (
	"os"
	"strings"
	"time"

	"github.com/hyperifyio/goshopsearch/internal/search"
)

// DefaultUserAgent identifies the CLI to the backend unless overridden by
// flag, env or config file.
const DefaultUserAgent = "goshopsearch/1.0 (+https://github.com/hyperifyio/goshopsearch)"

// Config holds runtime configuration for one search invocation.
type Config struct {
	// Request
	Query        string
	MaxPrice     float64 // 0 means unbounded
	Sites        []string
	K            int
	CategoryHint string

	// Backend
	BaseURL        string
	UserAgent      string
	FileSearchPath string // when set, the offline file backend is used

	// Output
	OutputPath    string // empty means stdout
	OutputPDFPath string
	Format        string

	// Behavior
	Timeout time.Duration
	Verbose bool
}

// ApplyConfigDefaults fills unset/zero fields of cfg from d. main resolves
// file config and env into d first, then overlays it under the flag-built
// cfg, which keeps explicit flags highest precedence. The stock User-Agent
// counts as unset so lower layers can replace it.
func ApplyConfigDefaults(cfg *Config, d Config) {
	if cfg == nil {
		return
	}
	if cfg.Query == "" {
		cfg.Query = d.Query
	}
	if cfg.MaxPrice == 0 {
		cfg.MaxPrice = d.MaxPrice
	}
	if len(cfg.Sites) == 0 {
		cfg.Sites = d.Sites
	}
	if cfg.K == 0 {
		cfg.K = d.K
	}
	if cfg.CategoryHint == "" {
		cfg.CategoryHint = d.CategoryHint
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = d.BaseURL
	}
	if (cfg.UserAgent == "" || cfg.UserAgent == DefaultUserAgent) && d.UserAgent != "" {
		cfg.UserAgent = d.UserAgent
	}
	if cfg.FileSearchPath == "" {
		cfg.FileSearchPath = d.FileSearchPath
	}
	if cfg.OutputPath == "" {
		cfg.OutputPath = d.OutputPath
	}
	if cfg.OutputPDFPath == "" {
		cfg.OutputPDFPath = d.OutputPDFPath
	}
	if cfg.Format == "" {
		cfg.Format = d.Format
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = d.Timeout
	}
	if !cfg.Verbose && d.Verbose {
		cfg.Verbose = true
	}
}

// BaseURLFromEnv resolves the backend endpoint from the environment, falling
// back to the fixed default. The value is read once when the config is built
// and never mutated afterwards.
func BaseURLFromEnv() string {
	if v := strings.TrimSpace(os.Getenv("SHOP_API_URL")); v != "" {
		return v
	}
	return search.DefaultBaseURL
}
