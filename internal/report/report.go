// Package report renders a search response for terminal or document output.
// The search client itself never formats anything; presentation belongs here.
package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/hyperifyio/goshopsearch/internal/search"
)

// Format selects the rendering applied to a search response.
type Format string

const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
)

// KnownFormat reports whether f is one of the supported output formats.
func KnownFormat(f Format) bool {
	switch f {
	case FormatText, FormatMarkdown, FormatJSON:
		return true
	}
	return false
}

// printer groups digits in counts for display. Result prices are left exactly
// as the client normalized them.
var printer = message.NewPrinter(language.English)

// Render produces the textual report for resp. JSON output re-encodes the
// response as received (prices already normalized); text and markdown lay out
// the summary followed by the ranked results.
func Render(query string, resp *search.SearchResponse, f Format) (string, error) {
	switch f {
	case FormatJSON:
		b, err := json.MarshalIndent(resp, "", "  ")
		if err != nil {
			return "", err
		}
		return string(b) + "\n", nil
	case FormatMarkdown:
		return renderMarkdown(query, resp), nil
	case FormatText, "":
		return renderText(resp), nil
	default:
		return "", fmt.Errorf("unknown output format %q", f)
	}
}

func renderText(resp *search.SearchResponse) string {
	var b strings.Builder
	if s := strings.TrimSpace(resp.Summary); s != "" {
		b.WriteString(s)
		b.WriteString("\n\n")
	}
	for i, p := range resp.Results {
		fmt.Fprintf(&b, "%d. %s", i+1, p.Name)
		if p.Price != "" {
			fmt.Fprintf(&b, " — %s", p.Price)
		}
		fmt.Fprintf(&b, " (%s)\n", p.Source)
		if line := ratingLine(p); line != "" {
			fmt.Fprintf(&b, "   %s\n", line)
		}
		for _, s := range p.Specifications {
			fmt.Fprintf(&b, "   - %s\n", s)
		}
		if p.Link != "" {
			fmt.Fprintf(&b, "   %s\n", p.Link)
		}
	}
	if len(resp.Results) == 0 {
		b.WriteString("no results\n")
	}
	return b.String()
}

func renderMarkdown(query string, resp *search.SearchResponse) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Search results: %s\n\n", query)
	if s := strings.TrimSpace(resp.Summary); s != "" {
		b.WriteString(s)
		b.WriteString("\n\n")
	}
	for i, p := range resp.Results {
		fmt.Fprintf(&b, "## %d. %s\n\n", i+1, p.Name)
		if p.Price != "" {
			fmt.Fprintf(&b, "- Price: %s\n", p.Price)
		}
		if line := ratingLine(p); line != "" {
			fmt.Fprintf(&b, "- %s\n", line)
		}
		if p.Category != "" {
			fmt.Fprintf(&b, "- Category: %s\n", p.Category)
		}
		for _, s := range p.Specifications {
			fmt.Fprintf(&b, "- %s\n", s)
		}
		fmt.Fprintf(&b, "- Source: %s\n", p.Source)
		if p.Link != "" {
			fmt.Fprintf(&b, "- [View product](%s)\n", p.Link)
		}
		b.WriteString("\n")
	}
	if len(resp.Results) == 0 {
		b.WriteString("No results.\n")
	}
	return b.String()
}

// ratingLine renders "Rating: 4.3 (12,345 reviews)" from the optional fields,
// or "" when neither is present.
func ratingLine(p search.UIProduct) string {
	switch {
	case p.Rating != nil && p.ReviewCount != nil:
		return printer.Sprintf("Rating: %.1f (%d reviews)", *p.Rating, *p.ReviewCount)
	case p.Rating != nil:
		return fmt.Sprintf("Rating: %.1f", *p.Rating)
	case p.ReviewCount != nil:
		return printer.Sprintf("%d reviews", *p.ReviewCount)
	}
	return ""
}
