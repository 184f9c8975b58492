// Package sheets forwards quote submissions to the Google Apps Script
// endpoints that append them to the retailer's spreadsheets. The browser
// never talks to Google directly; routing through the server keeps the
// script URLs private and sidesteps cross-origin restrictions.
package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

var (
	// ErrTimeout is returned when the spreadsheet endpoint does not answer
	// within the configured deadline.
	ErrTimeout = errors.New("spreadsheet request timed out")

	// ErrUpstream is returned when the endpoint answers but reports or
	// implies failure.
	ErrUpstream = errors.New("spreadsheet rejected submission")
)

// Client posts submissions to Apps Script endpoints. Safe for concurrent use.
type Client struct {
	httpClient *http.Client
	timeout    time.Duration
}

// NewClient builds a client with the given per-submission timeout.
func NewClient(timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		timeout:    timeout,
	}
}

// appsScriptResult covers the two acknowledgement shapes the deployed
// scripts answer with: {"result":"success"} and {"success":true}.
type appsScriptResult struct {
	Result  string `json:"result"`
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

// Submit posts the payload as JSON to the endpoint URL and interprets the
// acknowledgement. A response that is not JSON, or that reports failure,
// returns ErrUpstream; a missed deadline returns ErrTimeout. There is no
// retry: the scripts are not idempotent and a retry could append a duplicate
// row.
func (c *Client) Submit(ctx context.Context, url string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal submission: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return ErrTimeout
		}
		var urlErr interface{ Timeout() bool }
		if errors.As(err, &urlErr) && urlErr.Timeout() {
			return ErrTimeout
		}
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	// Apps Script answers 200 or 302 on success; read the body either way.
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	var ack appsScriptResult
	if err := json.Unmarshal(raw, &ack); err != nil {
		return fmt.Errorf("%w: non-JSON response (status %d)", ErrUpstream, resp.StatusCode)
	}

	if ack.Result == "success" || ack.Success {
		return nil
	}

	reason := ack.Error
	if reason == "" {
		reason = ack.Message
	}
	if reason == "" {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	return fmt.Errorf("%w: %s", ErrUpstream, reason)
}
