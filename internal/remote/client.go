// Package remote talks to the testimonial collection endpoint.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	applog "opina/internal/log"
	"opina/models"
)

const (
	defaultTimeout = 15 * time.Second

	submitPath = "/opiniones"
)

// Config describes how the collection client should be initialised.
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client submits accepted testimonials to the remote collection endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a Client for the configured collection endpoint.
func NewClient(cfg Config) (*Client, error) {
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		return nil, errors.New("remote: base URL must not be empty")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: timeout,
		}
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}, nil
}

// Submit posts one testimonial as JSON. Any OK-class status counts as
// success; every other status or transport failure is returned as an error.
// The response body is not consumed. No retries are attempted.
func (c *Client) Submit(ctx context.Context, t models.Testimonial) error {
	body, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("remote: encode testimonial: %w", err)
	}

	// Correlation id for the log trail only; it is not part of the wire
	// contract and never reaches the UI.
	attemptID := uuid.NewString()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+submitPath, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("remote: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	applog.Debug(ctx, "submitting testimonial", "attemptID", attemptID, "rating", t.Rating)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		applog.Error(ctx, "testimonial submission failed", "attemptID", attemptID, "error", err)
		return fmt.Errorf("remote: post testimonial: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		applog.Error(ctx, "collection endpoint rejected testimonial", "attemptID", attemptID, "status", resp.StatusCode)
		return fmt.Errorf("remote: collection endpoint returned status %s", resp.Status)
	}

	applog.Info(ctx, "testimonial submitted", "attemptID", attemptID)
	return nil
}
