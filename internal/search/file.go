package search

import (
    "context"
    "encoding/json"
    "errors"
    "os"
    "strings"
)

// FileBackend serves search results from a local JSON file for offline use
// and testing. The file holds a single SearchResponse object in the same
// shape the backend returns over the wire; prices may still carry currency
// formatting and are normalized exactly like live responses.
type FileBackend struct {
    Path string
}

func (f *FileBackend) Name() string { return "file" }

func (f *FileBackend) Search(_ context.Context, req *SearchRequest) (*SearchResponse, error) {
    if strings.TrimSpace(f.Path) == "" {
        return nil, errors.New("file backend path is empty")
    }
    b, err := os.ReadFile(f.Path)
    if err != nil {
        return nil, err
    }
    var sr SearchResponse
    if err := json.Unmarshal(b, &sr); err != nil {
        return nil, err
    }
    q := ""
    k := 0
    if req != nil {
        q = strings.ToLower(strings.TrimSpace(req.Query))
        k = req.K
    }
    kept := make([]UIProduct, 0, len(sr.Results))
    for _, p := range sr.Results {
        if q == "" || strings.Contains(strings.ToLower(p.Name), q) || strings.Contains(strings.ToLower(p.RawTitle), q) {
            kept = append(kept, p)
            if k > 0 && len(kept) >= k {
                break
            }
        }
    }
    sr.Results = kept
    normalizeResponse(&sr)
    return &sr, nil
}
