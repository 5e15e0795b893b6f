package websearch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// organicResult is one raw hit from the Serper search API.
type organicResult struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	Link    string `json:"link"`
}

// serperClient calls the Serper search API over HTTP.
type serperClient struct {
	url        string
	apiKey     string
	httpClient *http.Client
}

func newSerperClient(url, apiKey string) *serperClient {
	return &serperClient{
		url:        url,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 8 * time.Second},
	}
}

func (c *serperClient) search(ctx context.Context, query string, num int) ([]organicResult, error) {
	if c.apiKey == "" {
		return nil, errors.New("serper api key not configured")
	}

	body, _ := json.Marshal(map[string]interface{}{"q": query, "num": num})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("serper request: %w", err)
	}
	req.Header.Set("X-API-KEY", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("serper search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("serper search returned %d", resp.StatusCode)
	}

	var result struct {
		Organic []organicResult `json:"organic"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("serper search: decode: %w", err)
	}
	return result.Organic, nil
}
