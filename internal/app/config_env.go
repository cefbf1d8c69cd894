package app

import (
    "os"
    "strconv"
    "strings"
    "time"
)

// ApplyEnvToConfig populates unset fields of cfg from environment variables.
// Explicit cfg values take precedence over env.
func ApplyEnvToConfig(cfg *Config) {
    if cfg == nil { return }

    if cfg.BaseURL == "" {
        cfg.BaseURL = os.Getenv("SHOP_API_URL")
    }
    // The stock User-Agent counts as unset; see ApplyConfigDefaults.
    if cfg.UserAgent == "" || cfg.UserAgent == DefaultUserAgent {
        if v := os.Getenv("SHOP_API_UA"); v != "" {
            cfg.UserAgent = v
        }
    }
    if cfg.FileSearchPath == "" {
        cfg.FileSearchPath = os.Getenv("SEARCH_FILE")
    }

    if len(cfg.Sites) == 0 {
        cfg.Sites = splitList(os.Getenv("SHOP_SITES"))
    }
    if cfg.MaxPrice == 0 {
        if f, err := strconv.ParseFloat(strings.TrimSpace(os.Getenv("SHOP_MAX_PRICE")), 64); err == nil && f > 0 {
            cfg.MaxPrice = f
        }
    }
    if cfg.K == 0 {
        if n, err := strconv.Atoi(strings.TrimSpace(os.Getenv("SHOP_K"))); err == nil && n > 0 {
            cfg.K = n
        }
    }
    if cfg.Timeout == 0 {
        if d, err := time.ParseDuration(os.Getenv("SHOP_TIMEOUT")); err == nil && d > 0 {
            cfg.Timeout = d
        }
    }

    if !cfg.Verbose {
        if s := strings.ToLower(strings.TrimSpace(os.Getenv("VERBOSE"))); s != "" {
            if s == "1" || s == "true" || s == "yes" || s == "on" {
                cfg.Verbose = true
            }
        }
    }
}

// ApplyEnvOverrides forcefully overrides cfg fields with environment variables
// when the corresponding env vars are set. main applies it to the baseline
// built from the config file, before that baseline is overlaid under the
// flag values, so env beats file config while flags remain highest.
func ApplyEnvOverrides(cfg *Config) {
    if cfg == nil { return }

    if v := os.Getenv("SHOP_API_URL"); v != "" { cfg.BaseURL = v }
    if v := os.Getenv("SHOP_API_UA"); v != "" { cfg.UserAgent = v }
    if v := os.Getenv("SEARCH_FILE"); v != "" { cfg.FileSearchPath = v }

    if v := splitList(os.Getenv("SHOP_SITES")); len(v) > 0 { cfg.Sites = v }
    if f, err := strconv.ParseFloat(strings.TrimSpace(os.Getenv("SHOP_MAX_PRICE")), 64); err == nil && f > 0 {
        cfg.MaxPrice = f
    }
    if n, err := strconv.Atoi(strings.TrimSpace(os.Getenv("SHOP_K"))); err == nil && n > 0 {
        cfg.K = n
    }
    if d, err := time.ParseDuration(os.Getenv("SHOP_TIMEOUT")); err == nil && d > 0 {
        cfg.Timeout = d
    }

    if s := strings.ToLower(strings.TrimSpace(os.Getenv("VERBOSE"))); s != "" {
        switch s {
        case "1", "true", "yes", "on":
            cfg.Verbose = true
        case "0", "false", "no", "off":
            cfg.Verbose = false
        }
    }
}

// splitList parses a comma-separated value into trimmed, non-empty items.
func splitList(s string) []string {
    parts := strings.Split(s, ",")
    out := make([]string, 0, len(parts))
    for _, p := range parts {
        if p = strings.TrimSpace(p); p != "" {
            out = append(out, p)
        }
    }
    if len(out) == 0 { return nil }
    return out
}
