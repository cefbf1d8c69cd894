package app

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const cannedResponse = `{
	"results":[{"name":"Widget","price":"₹48,990","specifications":["8GB RAM"],"link":"http://x","source":"siteA"}],
	"summary":"one widget",
	"debug":{},
	"top_k":[]
}`

func TestApp_Run_WritesNormalizedReport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/search" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(cannedResponse))
	}))
	defer srv.Close()

	out := filepath.Join(t.TempDir(), "out.md")
	cfg := Config{
		Query:      "widget",
		BaseURL:    srv.URL,
		OutputPath: out,
		Format:     "markdown",
	}
	if err := New(cfg).Run(context.Background()); err != nil {
		t.Fatalf("run error: %v", err)
	}
	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(b), "48990") {
		t.Fatalf("report missing normalized price:\n%s", b)
	}
	if strings.Contains(string(b), "₹") {
		t.Fatalf("currency symbol survived normalization:\n%s", b)
	}
}

func TestApp_Run_EmptyResultsIsErrNoResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"results":[],"summary":"","debug":{},"top_k":[]}`))
	}))
	defer srv.Close()

	out := filepath.Join(t.TempDir(), "out.txt")
	cfg := Config{Query: "widget", BaseURL: srv.URL, OutputPath: out}
	err := New(cfg).Run(context.Background())
	if !errors.Is(err, ErrNoResults) {
		t.Fatalf("expected ErrNoResults, got %v", err)
	}
	// The empty report is still written before the exit-policy error.
	if _, statErr := os.Stat(out); statErr != nil {
		t.Fatalf("report not written: %v", statErr)
	}
}

func TestApp_Run_BackendFailureSurfaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("server error"))
	}))
	defer srv.Close()

	cfg := Config{Query: "widget", BaseURL: srv.URL, OutputPath: filepath.Join(t.TempDir(), "out.txt")}
	err := New(cfg).Run(context.Background())
	if err == nil || !strings.Contains(err.Error(), "server error") {
		t.Fatalf("expected wrapped backend error, got %v", err)
	}
}

func TestApp_Run_FileBackend(t *testing.T) {
	dir := t.TempDir()
	fixture := filepath.Join(dir, "results.json")
	if err := os.WriteFile(fixture, []byte(cannedResponse), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	out := filepath.Join(dir, "out.json")
	cfg := Config{Query: "widget", FileSearchPath: fixture, OutputPath: out, Format: "json"}
	if err := New(cfg).Run(context.Background()); err != nil {
		t.Fatalf("run error: %v", err)
	}
	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(b), `"price": "48990"`) {
		t.Fatalf("json report missing normalized price:\n%s", b)
	}
}

func TestApp_Run_WritesPDF(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(cannedResponse))
	}))
	defer srv.Close()

	dir := t.TempDir()
	cfg := Config{
		Query:         "widget",
		BaseURL:       srv.URL,
		OutputPath:    filepath.Join(dir, "out.txt"),
		OutputPDFPath: filepath.Join(dir, "out.pdf"),
	}
	if err := New(cfg).Run(context.Background()); err != nil {
		t.Fatalf("run error: %v", err)
	}
	info, err := os.Stat(cfg.OutputPDFPath)
	if err != nil || info.Size() == 0 {
		t.Fatalf("expected non-empty pdf, err=%v", err)
	}
}
