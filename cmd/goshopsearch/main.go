package main

import (
	"context"
	"flag"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/goshopsearch/internal/app"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		query      string
		maxPrice   float64
		sites      string
		k          int
		hint       string
		apiURL     string
		apiUA      string
		searchFile string
		outputPath string
		outputPDF  string
		format     string
		timeout    time.Duration
		configPath string
		envFiles   string
		verbose    bool
	)

	flag.StringVar(&query, "query", "", "Search phrase to send to the backend")
	flag.Float64Var(&maxPrice, "max-price", 0, "Optional budget cap; 0 means unbounded")
	flag.StringVar(&sites, "sites", "", "Comma-separated source sites to restrict the search to (default: all)")
	flag.IntVar(&k, "k", 0, "Requested result count (backend default applies when 0)")
	flag.StringVar(&hint, "hint", "", "Optional category hint to bias classification")
	flag.StringVar(&apiURL, "api.url", "", "Search backend base URL (default: SHOP_API_URL or http://127.0.0.1:8000)")
	flag.StringVar(&apiUA, "api.ua", app.DefaultUserAgent, "Custom User-Agent for backend requests")
	flag.StringVar(&searchFile, "search.file", "", "Path to JSON file for the offline file-based search backend")
	flag.StringVar(&outputPath, "output", "", "Path to write the report; empty writes to stdout")
	flag.StringVar(&outputPDF, "output.pdf", "", "Optional path to also write a PDF report")
	flag.StringVar(&format, "format", "", "Report format: text, markdown or json (default text)")
	flag.DurationVar(&timeout, "timeout", 0, "Overall timeout for the search round-trip (e.g. 15s); 0 disables")
	flag.StringVar(&configPath, "config", "", "Path to YAML or JSON config file")
	flag.StringVar(&envFiles, "env", "", "Comma-separated dotenv files to load before resolving config")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()

	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if envFiles != "" {
		if err := app.LoadEnvFiles(strings.Split(envFiles, ",")...); err != nil {
			log.Fatal().Err(err).Msg("load env files")
		}
	}

	cfg := app.Config{
		Query:        query,
		MaxPrice:     maxPrice,
		Sites:        splitSites(sites),
		K:            k,
		CategoryHint: hint,
		BaseURL:      apiURL,
		UserAgent:    apiUA,
		FileSearchPath: searchFile,
		OutputPath:    outputPath,
		OutputPDFPath: outputPDF,
		Format:        format,
		Timeout:       timeout,
		Verbose:       verbose,
	}
	// Precedence: flags > env > config file > defaults. Env and file config
	// are resolved into a baseline first, then overlaid under the flag
	// values so explicitly flagged fields are never clobbered.
	if configPath != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", configPath).Msg("load config file")
		}
		var base app.Config
		app.ApplyFileConfig(&base, fc)
		app.ApplyEnvOverrides(&base)
		app.ApplyConfigDefaults(&cfg, base)
	} else {
		app.ApplyEnvToConfig(&cfg)
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = app.BaseURLFromEnv()
	}
	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if err := app.ValidateConfig(cfg); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	if err := run(cfg); err != nil {
		log.Error().Err(err).Msg("search failed")
		os.Exit(1)
	}
}

func run(cfg app.Config) error {
	return app.New(cfg).Run(context.Background())
}

func splitSites(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
