package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/hyperifyio/goshopsearch/internal/app"
	"github.com/hyperifyio/goshopsearch/internal/search"
)

func main() {
	base := app.BaseURLFromEnv()
	q := "wireless mouse"
	if len(os.Args) > 1 { q = os.Args[1] }
	client := &search.Client{
		BaseURL:    base,
		HTTPClient: &http.Client{Timeout: 20 * time.Second},
		UserAgent:  "debugsearch/1.0",
	}
	ctx, cancel := context.WithTimeout(context.Background(), 25*time.Second)
	defer cancel()
	res, err := client.Search(ctx, &search.SearchRequest{Query: q, K: 5})
	fmt.Println("err:", err)
	if err != nil { return }
	fmt.Println("summary:", res.Summary)
	for i, p := range res.Results {
		fmt.Printf("%d. %s — %s — %s\n", i+1, p.Name, p.Price, p.Link)
	}
}
