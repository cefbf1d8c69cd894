package search

import "regexp"

var nonPriceChars = regexp.MustCompile(`[^0-9.]+`)

// NormalizePrice strips currency symbols, grouping separators and any other
// character outside [0-9.] from a wire-format price such as "₹48,990".
// Total and idempotent: any string is accepted, and re-normalizing the output
// returns it unchanged.
func NormalizePrice(s string) string {
	return nonPriceChars.ReplaceAllString(s, "")
}

// normalizeResponse rewrites result prices in place and guarantees a non-nil
// Results slice, leaving order and every other field as decoded.
func normalizeResponse(sr *SearchResponse) {
	if sr.Results == nil {
		sr.Results = []UIProduct{}
		return
	}
	for i := range sr.Results {
		sr.Results[i].Price = NormalizePrice(sr.Results[i].Price)
	}
}
