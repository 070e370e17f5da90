// Package fetch provides a small generic helper for fetching and
// decoding JSON over HTTP.
//
// The event manager core never touches the network; this helper exists
// for UI layers that want to pull auxiliary data (e.g. holiday lists)
// into typed values without repeating the request/decode/close dance.
package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// StatusError indicates a non-2xx HTTP response.
type StatusError struct {
	StatusCode int
	URL        string
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d from %s", e.StatusCode, e.URL)
}

// Get fetches url and decodes the JSON response body into T.
// A nil client falls back to http.DefaultClient.
func Get[T any](ctx context.Context, client *http.Client, url string) (T, error) {
	var zero T

	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return zero, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return zero, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return zero, &StatusError{StatusCode: resp.StatusCode, URL: url}
	}

	var out T
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return zero, fmt.Errorf("decode response: %w", err)
	}
	return out, nil
}
