package app

import (
    "encoding/json"
    "errors"
    "fmt"
    "os"
    "path/filepath"
    "strings"
    "time"

    yaml "gopkg.in/yaml.v3"

    "github.com/hyperifyio/goshopsearch/internal/report"
)

// FileConfig represents the single-file configuration schema. Nested sections
// map naturally to flags/env.
type FileConfig struct {
    Query    string   `yaml:"query" json:"query"`
    MaxPrice float64  `yaml:"maxPrice" json:"maxPrice"`
    Sites    []string `yaml:"sites" json:"sites"`
    K        int      `yaml:"k" json:"k"`
    Hint     string   `yaml:"hint" json:"hint"`

    API struct {
        URL string `yaml:"url" json:"url"`
        UA  string `yaml:"ua" json:"ua"`
    } `yaml:"api" json:"api"`

    Search struct {
        File string `yaml:"file" json:"file"`
    } `yaml:"search" json:"search"`

    Output    string        `yaml:"output" json:"output"`
    OutputPDF string        `yaml:"outputPDF" json:"outputPDF"`
    Format    string        `yaml:"format" json:"format"`
    Timeout   time.Duration `yaml:"timeout" json:"timeout"`
    Verbose   bool          `yaml:"verbose" json:"verbose"`
}

// LoadConfigFile reads YAML or JSON into FileConfig.
func LoadConfigFile(path string) (FileConfig, error) {
    var fc FileConfig
    b, err := os.ReadFile(path)
    if err != nil {
        return fc, err
    }
    switch ext := filepath.Ext(path); ext {
    case ".yaml", ".yml":
        if err := yaml.Unmarshal(b, &fc); err != nil {
            return fc, fmt.Errorf("parse yaml: %w", err)
        }
    case ".json":
        if err := json.Unmarshal(b, &fc); err != nil {
            return fc, fmt.Errorf("parse json: %w", err)
        }
    default:
        // Try YAML then JSON
        if err := yaml.Unmarshal(b, &fc); err != nil {
            if jerr := json.Unmarshal(b, &fc); jerr != nil {
                return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
            }
        }
    }
    return fc, nil
}

// ApplyFileConfig overlays values from FileConfig into cfg for any fields that
// are currently unset/zero in cfg. Flags should already have been parsed; this
// lets file config supply defaults while preserving explicit flags.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
    if cfg == nil { return }

    if cfg.Query == "" && fc.Query != "" { cfg.Query = fc.Query }
    if cfg.MaxPrice == 0 && fc.MaxPrice > 0 { cfg.MaxPrice = fc.MaxPrice }
    if len(cfg.Sites) == 0 && len(fc.Sites) > 0 { cfg.Sites = append([]string{}, fc.Sites...) }
    if cfg.K == 0 && fc.K > 0 { cfg.K = fc.K }
    if cfg.CategoryHint == "" && fc.Hint != "" { cfg.CategoryHint = fc.Hint }

    if cfg.BaseURL == "" && fc.API.URL != "" { cfg.BaseURL = fc.API.URL }
    if (cfg.UserAgent == "" || cfg.UserAgent == DefaultUserAgent) && fc.API.UA != "" { cfg.UserAgent = fc.API.UA }
    if cfg.FileSearchPath == "" && fc.Search.File != "" { cfg.FileSearchPath = fc.Search.File }

    if cfg.OutputPath == "" && fc.Output != "" { cfg.OutputPath = fc.Output }
    if cfg.OutputPDFPath == "" && fc.OutputPDF != "" { cfg.OutputPDFPath = fc.OutputPDF }
    if cfg.Format == "" && fc.Format != "" { cfg.Format = fc.Format }
    if cfg.Timeout == 0 && fc.Timeout > 0 { cfg.Timeout = fc.Timeout }
    if !cfg.Verbose && fc.Verbose { cfg.Verbose = true }
}

// ValidateConfig performs minimal schema validation for required settings.
// The search client itself sends requests as built; the checks here only stop
// invocations that could never succeed.
func ValidateConfig(cfg Config) error {
    if strings.TrimSpace(cfg.Query) == "" {
        return errors.New("config: query is required")
    }
    if cfg.K < 0 {
        return errors.New("config: negative result count is not allowed")
    }
    if cfg.MaxPrice < 0 {
        return errors.New("config: negative max price is not allowed")
    }
    if cfg.Format != "" && !report.KnownFormat(report.Format(cfg.Format)) {
        return fmt.Errorf("config: unknown format %q", cfg.Format)
    }
    return nil
}
