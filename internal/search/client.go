package search

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultBaseURL is the backend endpoint used when no override is configured.
const DefaultBaseURL = "http://127.0.0.1:8000"

// Client implements Backend against the product-search backend's /api/search
// endpoint. The zero value works: an empty BaseURL falls back to
// DefaultBaseURL and a nil HTTPClient gets a default with a timeout.
//
// The client is stateless and reentrant; concurrent Search calls are
// independent. It performs exactly one outbound request per call, with no
// retry, no caching and no logging of its own. Cancellation and deadlines
// come solely from ctx and the supplied HTTPClient.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	UserAgent  string // optional custom UA
}

func (c *Client) Name() string { return "http" }

// Search posts req as JSON to <base>/api/search and returns the decoded
// response with every result price reduced to digits and at most one decimal
// point. Results keep their length and ranked order; summary, debug and top_k
// pass through exactly as received. An absent results field decodes to an
// empty slice, not an error.
func (c *Client) Search(ctx context.Context, req *SearchRequest) (*SearchResponse, error) {
	if req == nil {
		return nil, errors.New("nil search request")
	}
	base := strings.TrimRight(c.BaseURL, "/")
	if base == "" {
		base = DefaultBaseURL
	}
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, base+"/api/search", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.UserAgent != "" {
		httpReq.Header.Set("User-Agent", c.UserAgent)
	}
	hc := c.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: 30 * time.Second}
	}
	resp, err := hc.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.New(errorMessage(resp))
	}
	var sr SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}
	normalizeResponse(&sr)
	return &sr, nil
}

// errorMessage describes a non-2xx response: the body text when readable and
// non-empty, else the status's reason phrase, else a bare "HTTP <code>".
// Error bodies are treated as plain text even when they happen to be JSON.
func errorMessage(resp *http.Response) string {
	if b, err := io.ReadAll(resp.Body); err == nil {
		if msg := strings.TrimSpace(string(b)); msg != "" {
			return msg
		}
	}
	if reason := http.StatusText(resp.StatusCode); reason != "" {
		return reason
	}
	return fmt.Sprintf("HTTP %d", resp.StatusCode)
}
