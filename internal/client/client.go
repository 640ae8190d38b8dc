// Package client talks to the careerOS HTTP API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/abhishek622/careerOS/pkg/model"
)

// APIError is a non-ok envelope returned by the server.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (%d): %s", e.Status, e.Message)
}

type Client struct {
	base string
	http *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		base: strings.TrimRight(baseURL, "/"),
		http: &http.Client{Timeout: timeout},
	}
}

type envelope struct {
	OK    bool            `json:"ok"`
	Item  json.RawMessage `json:"item"`
	Items json.RawMessage `json:"items"`
	Error string          `json:"error"`
}

func (c *Client) GenerateDraft(ctx context.Context, text string) (model.GenerateDraftRes, error) {
	var res model.GenerateDraftRes
	b, err := c.do(ctx, http.MethodPost, "/api/generate-draft", map[string]string{"text": text})
	if err != nil {
		return res, err
	}
	if err := json.Unmarshal(b, &res); err != nil {
		return res, fmt.Errorf("decode draft: %w", err)
	}
	return res, nil
}

func (c *Client) ListEntries(ctx context.Context) ([]model.Entry, error) {
	env, err := c.envelope(ctx, http.MethodGet, "/api/entries", nil)
	if err != nil {
		return nil, err
	}
	var items []model.Entry
	if err := json.Unmarshal(env.Items, &items); err != nil {
		return nil, fmt.Errorf("decode entries: %w", err)
	}
	return items, nil
}

func (c *Client) GetEntry(ctx context.Context, id int64) (model.EntryDetail, error) {
	var item model.EntryDetail
	env, err := c.envelope(ctx, http.MethodGet, fmt.Sprintf("/api/entries/%d", id), nil)
	if err != nil {
		return item, err
	}
	if err := json.Unmarshal(env.Item, &item); err != nil {
		return item, fmt.Errorf("decode entry: %w", err)
	}
	return item, nil
}

func (c *Client) CreateEntry(ctx context.Context, title, markdown string) (model.Entry, error) {
	var item model.Entry
	env, err := c.envelope(ctx, http.MethodPost, "/api/entries", model.CreateEntryReq{Title: title, Markdown: markdown})
	if err != nil {
		return item, err
	}
	if err := json.Unmarshal(env.Item, &item); err != nil {
		return item, fmt.Errorf("decode entry: %w", err)
	}
	return item, nil
}

func (c *Client) envelope(ctx context.Context, method, path string, body any) (envelope, error) {
	var env envelope
	b, err := c.do(ctx, method, path, body)
	if err != nil {
		return env, err
	}
	if err := json.Unmarshal(b, &env); err != nil {
		return env, fmt.Errorf("decode response: %w", err)
	}
	if !env.OK {
		return env, &APIError{Status: http.StatusOK, Message: env.Error}
	}
	return env, nil
}

func (c *Client) do(ctx context.Context, method, path string, body any) ([]byte, error) {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, rd)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		var env envelope
		if json.Unmarshal(b, &env) == nil && env.Error != "" {
			return nil, &APIError{Status: resp.StatusCode, Message: env.Error}
		}
		return nil, &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	}
	return b, nil
}

// IsValidation reports whether err is a 400 from the server.
func IsValidation(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusBadRequest
}
