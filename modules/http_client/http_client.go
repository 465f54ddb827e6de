// Package http_client fetches relation tables from HTTP endpoints.
package http_client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/upcAutoLang/rezero-dynamic-summary/internal/ctxlog"
)

// DefaultTimeout applies when a relation sets no timeout.
const DefaultTimeout = 30 * time.Second

// NewClient creates a client shared by every relation fetch of a run.
func NewClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
		},
	}
}

// Fetch GETs url and returns the response body. Any status outside 2xx is an
// error.
func Fetch(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Making HTTP request.", "method", http.MethodGet, "url", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json, application/yaml")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	logger.Debug("Received HTTP response.", "status", resp.Status)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %s from %s", resp.Status, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return body, nil
}
