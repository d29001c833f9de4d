package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"collegeevents/internal/domain"
)

type httpFetcher struct {
	client *http.Client
	url    string
}

// NewHTTPFetcher returns a fetcher that downloads the catalog as a JSON array
// of events from url.
func NewHTTPFetcher(client *http.Client, url string) domain.CatalogFetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &httpFetcher{client: client, url: url}
}

func (f *httpFetcher) Fetch(ctx context.Context) ([]domain.Event, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog feed returned status: %d", resp.StatusCode)
	}

	var events []domain.Event
	if err := json.NewDecoder(resp.Body).Decode(&events); err != nil {
		return nil, fmt.Errorf("failed to decode catalog feed: %w", err)
	}
	return events, nil
}
