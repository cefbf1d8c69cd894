package search

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestFileBackend_Search_FiltersAndNormalizes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "results.json")
	body := `{
		"results":[
			{"name":"Running Shoes","price":"₹2,499","specifications":["mesh upper"],"link":"http://a","source":"amazon"},
			{"name":"Dress Shoes","price":"₹4,999","specifications":[],"link":"http://b","source":"flipkart"},
			{"name":"Water Bottle","price":"₹299","specifications":[],"link":"http://c","source":"amazon"}
		],
		"summary":"canned",
		"debug":{"mode":"offline"},
		"top_k":[]
	}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	fb := &FileBackend{Path: path}
	resp, err := fb.Search(context.Background(), &SearchRequest{Query: "shoes", K: 2})
	if err != nil {
		t.Fatalf("search error: %v", err)
	}
	if len(resp.Results) != 2 {
		t.Fatalf("expected 2 matching results, got %d", len(resp.Results))
	}
	if resp.Results[0].Price != "2499" || resp.Results[1].Price != "4999" {
		t.Fatalf("prices not normalized: %q %q", resp.Results[0].Price, resp.Results[1].Price)
	}
	if resp.Summary != "canned" {
		t.Fatalf("summary lost: %q", resp.Summary)
	}
}

func TestFileBackend_Search_EmptyPath(t *testing.T) {
	fb := &FileBackend{}
	if _, err := fb.Search(context.Background(), &SearchRequest{Query: "q"}); err == nil {
		t.Fatal("expected error for empty path")
	}
}
