package app

import (
    "os"
    "strings"
)

// LoadEnvFiles applies KEY=VALUE pairs from dotenv files to the process
// environment, so SHOP_* settings can live next to a project instead of a
// shell profile. Later files win on duplicate keys; files that do not exist
// are skipped. Values are taken literally, with one layer of surrounding
// quotes removed; no variable expansion.
func LoadEnvFiles(paths ...string) error {
    for _, p := range paths {
        if strings.TrimSpace(p) == "" {
            continue
        }
        b, err := os.ReadFile(p)
        if err != nil {
            if os.IsNotExist(err) {
                continue
            }
            return err
        }
        for _, line := range strings.Split(string(b), "\n") {
            line = strings.TrimSpace(line)
            if line == "" || strings.HasPrefix(line, "#") {
                continue
            }
            key, val, ok := strings.Cut(line, "=")
            key = strings.TrimSpace(key)
            if !ok || key == "" {
                // not a KEY=VALUE line; skip silently
                continue
            }
            val = strings.TrimSpace(val)
            if n := len(val); n >= 2 {
                if (val[0] == '"' && val[n-1] == '"') || (val[0] == '\'' && val[n-1] == '\'') {
                    val = val[1 : n-1]
                }
            }
            _ = os.Setenv(key, val)
        }
    }
    return nil
}
