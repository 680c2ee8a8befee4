package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client fetches bookings from a remote lookup API.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the lookup API rooted at baseURL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// Fetch implements Fetcher with GET {base}/api/booking/{id}.
func (c *Client) Fetch(ctx context.Context, id string) (Record, error) {
	endpoint := c.baseURL + "/api/booking/" + url.PathEscape(id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Record{}, &UnavailableError{ID: id, Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return Record{}, ctx.Err()
		}
		return Record{}, &UnavailableError{ID: id, Err: fmt.Errorf("http request failed: %w", err)}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return Record{}, ErrNotFound
	case resp.StatusCode != http.StatusOK:
		return Record{}, &UnavailableError{ID: id, Err: fmt.Errorf("received non-200 status code: %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Record{}, &UnavailableError{ID: id, Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	var payload struct {
		Record
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return Record{}, &UnavailableError{ID: id, Err: fmt.Errorf("failed to unmarshal booking: %w", err)}
	}
	if payload.Error != "" {
		return Record{}, ErrNotFound
	}

	rec := payload.Record
	rec.ID = id
	return rec, nil
}
