// Package client is a typed gateway to the community-hub HTTP API. It
// mirrors the backend's wire shapes so callers never build requests by hand.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/stellar-europe/community-hub/internal/types"
)

const DefaultBaseURL = "http://127.0.0.1:8081"

type Client struct {
	baseURL    string
	httpClient *http.Client
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		c.httpClient = h
	}
}

func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	c := &Client{
		baseURL:    baseURL,
		httpClient: http.DefaultClient,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// apiError turns a non-2xx response into an error carrying the body text,
// falling back to the status when the body is unreadable.
func apiError(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)

	if err != nil || len(body) == 0 {
		return fmt.Errorf("HTTP error: %s", resp.Status)
	}

	return fmt.Errorf("%s", string(body))
}

func (c *Client) postJSON(ctx context.Context, path string, payload interface{}) (*http.Response, error) {
	body, err := json.Marshal(payload)

	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))

	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")

	return c.httpClient.Do(req)
}

// Signup registers a new member.
func (c *Client) Signup(ctx context.Context, req types.SignUpRequest) (*types.SignUpResponse, error) {
	resp, err := c.postJSON(ctx, "/api/signup", req)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apiError(resp)
	}

	var out types.SignUpResponse

	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return &out, nil
}

// CreateEvent submits an event with its KPI planning block and returns the
// backend's success message.
func (c *Client) CreateEvent(ctx context.Context, req types.EventRequest) (string, error) {
	resp, err := c.postJSON(ctx, "/api/events", req)

	if err != nil {
		return "", err
	}

	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", apiError(resp)
	}

	var message string

	if err := json.NewDecoder(resp.Body).Decode(&message); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	return message, nil
}

// ListEvents fetches events. Nil limit or offset leave the backend defaults
// (50, 0) in effect.
func (c *Client) ListEvents(ctx context.Context, limit, offset *int) (*types.EventListResponse, error) {
	u := c.baseURL + "/api/events"

	params := url.Values{}

	if limit != nil {
		params.Set("limit", strconv.Itoa(*limit))
	}

	if offset != nil {
		params.Set("offset", strconv.Itoa(*offset))
	}

	if encoded := params.Encode(); encoded != "" {
		u += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)

	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apiError(resp)
	}

	var out types.EventListResponse

	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return &out, nil
}

// Health probes the backend liveness endpoint.
func (c *Client) Health(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)

	if err != nil {
		return "", err
	}

	resp, err := c.httpClient.Do(req)

	if err != nil {
		return "", err
	}

	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("HTTP error: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)

	if err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	return string(body), nil
}
