package report

import (
	"strings"
	"testing"

	"github.com/hyperifyio/goshopsearch/internal/search"
)

func sample() *search.SearchResponse {
	rating := 4.3
	reviews := 12345
	return &search.SearchResponse{
		Results: []search.UIProduct{{
			Name:           "Widget",
			Price:          "48990",
			Rating:         &rating,
			ReviewCount:    &reviews,
			Specifications: []string{"8GB RAM"},
			Link:           "http://x",
			Source:         "siteA",
		}},
		Summary: "one good widget",
	}
}

func TestRender_Markdown(t *testing.T) {
	out, err := Render("widget", sample(), FormatMarkdown)
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	for _, want := range []string{
		"# Search results: widget",
		"one good widget",
		"## 1. Widget",
		"- Price: 48990",
		"Rating: 4.3 (12,345 reviews)",
		"[View product](http://x)",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("markdown missing %q:\n%s", want, out)
		}
	}
}

func TestRender_TextEmptyResults(t *testing.T) {
	out, err := Render("q", &search.SearchResponse{Summary: "nothing"}, FormatText)
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	if !strings.Contains(out, "nothing") || !strings.Contains(out, "no results") {
		t.Fatalf("unexpected text output:\n%s", out)
	}
}

func TestRender_JSONRoundTrips(t *testing.T) {
	out, err := Render("q", sample(), FormatJSON)
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	if !strings.Contains(out, `"price": "48990"`) || !strings.Contains(out, `"summary": "one good widget"`) {
		t.Fatalf("json output missing fields:\n%s", out)
	}
}

func TestRender_UnknownFormat(t *testing.T) {
	if _, err := Render("q", sample(), Format("xml")); err == nil {
		t.Fatal("expected error for unknown format")
	}
	if KnownFormat(Format("xml")) {
		t.Fatal("xml should not be a known format")
	}
}
