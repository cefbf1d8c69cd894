package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/goshopsearch/internal/report"
	"github.com/hyperifyio/goshopsearch/internal/search"
)

// ErrNoResults is returned when the backend answers successfully but with an
// empty result list. Per the exit code policy, this condition should result
// in a non-zero process exit after the (empty) report is still written.
var ErrNoResults = errors.New("no results")

// App wires a configured search backend to the report output.
type App struct {
	cfg     Config
	backend search.Backend
}

// New builds an App from cfg. A FileSearchPath selects the offline file
// backend; otherwise the HTTP client is used against cfg.BaseURL.
func New(cfg Config) *App {
	var b search.Backend
	if cfg.FileSearchPath != "" {
		b = &search.FileBackend{Path: cfg.FileSearchPath}
	} else {
		b = &search.Client{
			BaseURL:    cfg.BaseURL,
			HTTPClient: newSearchHTTPClient(cfg.Timeout),
			UserAgent:  cfg.UserAgent,
		}
	}
	return &App{cfg: cfg, backend: b}
}

// Run performs one search and writes the rendered report to the configured
// outputs. The single network round-trip is bounded by cfg.Timeout when set.
func (a *App) Run(ctx context.Context) error {
	if a.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.cfg.Timeout)
		defer cancel()
	}

	req := a.buildRequest()
	start := time.Now()
	resp, err := a.backend.Search(ctx, req)
	if err != nil {
		return fmt.Errorf("search via %s backend: %w", a.backend.Name(), err)
	}
	log.Info().
		Str("backend", a.backend.Name()).
		Int("results", len(resp.Results)).
		Dur("elapsed", time.Since(start)).
		Msg("search complete")

	out, err := report.Render(a.cfg.Query, resp, report.Format(a.cfg.Format))
	if err != nil {
		return err
	}
	if err := a.writeOutput(out); err != nil {
		return err
	}
	if a.cfg.OutputPDFPath != "" {
		if err := writeResultsPDF(a.cfg.Query, resp, a.cfg.OutputPDFPath); err != nil {
			return fmt.Errorf("write pdf: %w", err)
		}
		log.Debug().Str("path", a.cfg.OutputPDFPath).Msg("wrote pdf report")
	}

	if len(resp.Results) == 0 {
		return ErrNoResults
	}
	return nil
}

// buildRequest translates the flat config into the wire request. Zero-valued
// optionals are omitted; a blank hint is sent as an explicit null.
func (a *App) buildRequest() *search.SearchRequest {
	req := &search.SearchRequest{Query: a.cfg.Query}
	if a.cfg.MaxPrice > 0 {
		v := a.cfg.MaxPrice
		req.MaxPrice = &v
	}
	if len(a.cfg.Sites) > 0 {
		req.Sites = a.cfg.Sites
	}
	if a.cfg.K > 0 {
		req.K = a.cfg.K
	}
	if hint := strings.TrimSpace(a.cfg.CategoryHint); hint != "" {
		req.CategoryHint = &hint
	}
	return req
}

func (a *App) writeOutput(out string) error {
	if a.cfg.OutputPath == "" {
		_, err := os.Stdout.WriteString(out)
		return err
	}
	if err := os.WriteFile(a.cfg.OutputPath, []byte(out), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	log.Debug().Str("path", a.cfg.OutputPath).Msg("wrote report")
	return nil
}
