// Package api talks to the blueprints backend over its REST contract:
// list by author, create, and update.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"blueprints/internal/blueprint"
)

// DefaultBaseURL is where the backend listens unless configured otherwise.
const DefaultBaseURL = "http://localhost:8080"

// maxErrorBody caps how much of a rejected response is kept for diagnostics.
const maxErrorBody = 4 << 10

// Client is a JSON client for the blueprints backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for baseURL. A zero timeout leaves requests
// bounded only by the caller's context.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// StatusError is returned when the backend answers with a non-2xx status.
type StatusError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("%s: server returned %d %s", e.Op, e.StatusCode, http.StatusText(e.StatusCode))
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

// updateRequest is the PUT body; the author travels in the path.
type updateRequest struct {
	Name   string            `json:"name"`
	Points []blueprint.Point `json:"points"`
}

// List returns every blueprint of author, in server order.
func (c *Client) List(ctx context.Context, author string) ([]blueprint.Blueprint, error) {
	var out []blueprint.Blueprint
	if err := c.do(ctx, "list blueprints", http.MethodGet, "/blueprints/"+url.PathEscape(author), nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []blueprint.Blueprint{}
	}
	return out, nil
}

// Create registers a new blueprint. The response body is ignored.
func (c *Client) Create(ctx context.Context, bp blueprint.Blueprint) error {
	if bp.Points == nil {
		bp.Points = []blueprint.Point{}
	}
	return c.do(ctx, "create blueprint", http.MethodPost, "/blueprints", bp, nil)
}

// Update replaces the points of author's blueprint name. The response body
// is ignored.
func (c *Client) Update(ctx context.Context, author, name string, points []blueprint.Point) error {
	body := updateRequest{Name: name, Points: points}
	if body.Points == nil {
		body.Points = []blueprint.Point{}
	}
	path := "/blueprints/" + url.PathEscape(author) + "/" + url.PathEscape(name)
	return c.do(ctx, "update blueprint", http.MethodPut, path, body, nil)
}

func (c *Client) do(ctx context.Context, op, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%s: marshal request: %w", op, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("%s: create request: %w", op, err)
	}
	reqID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", reqID)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("api: %s %s id=%s failed: %v", method, path, reqID, err)
		return fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()
	log.Printf("api: %s %s id=%s status=%d took=%v", method, path, reqID, resp.StatusCode, time.Since(start).Round(time.Millisecond))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{Op: op, StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(msg))}
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decode response: %w", op, err)
	}
	return nil
}
