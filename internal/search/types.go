package search

import "encoding/json"

// SearchRequest is the body posted to the backend's /api/search endpoint.
// Field names mirror the backend schema verbatim. The client sends the
// request as built by the caller; validation, if any, belongs to the backend.
type SearchRequest struct {
	// Query is the user's search phrase.
	Query string `json:"query"`
	// MaxPrice caps the budget; nil means unbounded.
	MaxPrice *float64 `json:"max_price,omitempty"`
	// Sites restricts the search to the named source sites, in order;
	// nil means all sites.
	Sites []string `json:"sites,omitempty"`
	// K is the requested result count.
	K int `json:"k,omitempty"`
	// CategoryHint biases the backend's category classification. Serialized
	// without omitempty so an explicit null reaches the backend as "no hint".
	CategoryHint *string `json:"category_hint"`
}

// UIProduct is one search result in the shape the UI consumes. After Search
// returns, Price contains only digits and at most one decimal point; every
// other field is exactly as the backend sent it.
type UIProduct struct {
	Name           string   `json:"name"`
	Price          string   `json:"price"`
	Rating         *float64 `json:"rating,omitempty"`
	Specifications []string `json:"specifications"`
	Link           string   `json:"link"`
	Image          string   `json:"image,omitempty"`
	Source         string   `json:"source"`
	ReviewCount    *int     `json:"reviewCount,omitempty"`
	RawTitle       string   `json:"rawTitle,omitempty"`
	Category       string   `json:"category,omitempty"`
}

// SearchResponse is the backend's reply. Debug and TopK are opaque to this
// client: Debug is an open key/value mapping and TopK a sequence of internal
// ranking objects, both passed through undecoded and unmodified for callers
// that want them.
type SearchResponse struct {
	Results []UIProduct       `json:"results"`
	Summary string            `json:"summary"`
	Debug   map[string]any    `json:"debug,omitempty"`
	TopK    []json.RawMessage `json:"top_k,omitempty"`
}
